// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/realgas/mdl/eos"
)

// Nasa implements the 7-coefficients NASA polynomial [2] (one temperature range)
//  Note: this is the older form with a6 and a7 as integration constants of h0 and s0;
//        the 9-coefficients NASA Glenn form is not supported
//   cp0/R = a1 + a2 T + a3 T² + a4 T³ + a5 T⁴
//   h0/R  = a1 T + a2 T²/2 + a3 T³/3 + a4 T⁴/4 + a5 T⁵/5 + a6
//   s0/R  = a1 ln T + a2 T + a3 T²/2 + a4 T³/3 + a5 T⁴/4 + a7
type Nasa struct {
	A   [7]float64 // coefficients a1...a7
	cte eos.Constants
}

// add model to factory
func init() {
	allocators["nasa"] = func() IdealGas { return new(Nasa) }
}

// Init initialises model
func (o *Nasa) Init(prms dbf.Params, cte eos.Constants) (err error) {
	o.cte = cte
	var found [7]bool
	for _, p := range prms {
		var i int
		if len(p.N) == 2 && p.N[0] == 'a' && p.N[1] >= '1' && p.N[1] <= '7' {
			i = int(p.N[1] - '1')
		} else {
			return chk.Err("nasa: parameter named %q is incorrect\n", p.N)
		}
		o.A[i] = p.V
		found[i] = true
	}
	for i, ok := range found {
		if !ok {
			return chk.Err("nasa: coefficient a%d is missing\n", i+1)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
//  Note: the example corresponds to carbon dioxide in the range 200 to 1000 K
func (o Nasa) GetPrms(example bool) dbf.Params {
	a := o.A
	if example {
		a = [7]float64{2.35677352, 8.98459677e-3, -7.12356269e-6, 2.45919022e-9, -1.43699548e-13, -4.83719697e4, 9.90105222}
	}
	prms := make(dbf.Params, 7)
	for i := 0; i < 7; i++ {
		prms[i] = &dbf.P{N: io.Sf("a%d", i+1), V: a[i]}
	}
	return prms
}

// Cp0 computes the heat capacity at constant pressure
func (o *Nasa) Cp0(T float64) float64 {
	a := &o.A
	return o.cte.R * (a[0] + T*(a[1]+T*(a[2]+T*(a[3]+T*a[4]))))
}

// Cv0 computes the heat capacity at constant volume
func (o *Nasa) Cv0(T float64) float64 {
	return o.Cp0(T) - o.cte.R
}

// H0 computes the enthalpy
func (o *Nasa) H0(T float64) float64 {
	a := &o.A
	return o.cte.R * (T*(a[0]+T*(a[1]/2.0+T*(a[2]/3.0+T*(a[3]/4.0+T*a[4]/5.0)))) + a[5])
}

// E0 computes the internal energy
func (o *Nasa) E0(T float64) float64 {
	return o.H0(T) - o.cte.R*T
}

// S0 computes the entropy at standard pressure
func (o *Nasa) S0(T float64) float64 {
	a := &o.A
	return o.cte.R * (a[0]*math.Log(T) + T*(a[1]+T*(a[2]/2.0+T*(a[3]/3.0+T*a[4]/4.0))) + a[6])
}
