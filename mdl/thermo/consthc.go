// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/realgas/mdl/eos"
)

// ConstCp implements an ideal gas with constant heat capacity
//   h0(T) = hstd + cp (T - Tstd)     s0(T) = sstd + cp ln(T/Tstd)
type ConstCp struct {
	Cp   float64 // heat capacity at constant pressure [J/(mol・K)]
	Hstd float64 // enthalpy at standard temperature [J/mol]
	Sstd float64 // entropy at standard state [J/(mol・K)]
	cte  eos.Constants
}

// add model to factory
func init() {
	allocators["consthc"] = func() IdealGas { return new(ConstCp) }
}

// Init initialises model
func (o *ConstCp) Init(prms dbf.Params, cte eos.Constants) (err error) {
	o.cte = cte
	for _, p := range prms {
		switch p.N {
		case "cp":
			o.Cp = p.V
		case "hstd":
			o.Hstd = p.V
		case "sstd":
			o.Sstd = p.V
		default:
			return chk.Err("consthc: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Cp <= cte.R {
		return chk.Err("consthc: cp must be greater than R. cp=%g\n", o.Cp)
	}
	return
}

// GetPrms gets (an example) of parameters
//  Note: the example corresponds to carbon dioxide
func (o ConstCp) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "cp", V: 37.135},    // [J/(mol・K)]
			&dbf.P{N: "hstd", V: -393510}, // [J/mol]
			&dbf.P{N: "sstd", V: 213.785}, // [J/(mol・K)]
		}
	}
	return dbf.Params{
		&dbf.P{N: "cp", V: o.Cp},
		&dbf.P{N: "hstd", V: o.Hstd},
		&dbf.P{N: "sstd", V: o.Sstd},
	}
}

// Cp0 computes the heat capacity at constant pressure
func (o *ConstCp) Cp0(T float64) float64 {
	return o.Cp
}

// Cv0 computes the heat capacity at constant volume
func (o *ConstCp) Cv0(T float64) float64 {
	return o.Cp - o.cte.R
}

// H0 computes the enthalpy
func (o *ConstCp) H0(T float64) float64 {
	return o.Hstd + o.Cp*(T-o.cte.Tstd)
}

// E0 computes the internal energy
func (o *ConstCp) E0(T float64) float64 {
	return o.H0(T) - o.cte.R*T
}

// S0 computes the entropy at standard pressure
func (o *ConstCp) S0(T float64) float64 {
	return o.Sstd + o.Cp*math.Log(T/o.cte.Tstd)
}
