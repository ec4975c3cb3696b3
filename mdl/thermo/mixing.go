// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/realgas/mdl/eos"
	"gonum.org/v1/gonum/floats"
)

// IdealMix implements the ideal gas properties of a mixture as the mole fraction weighted
// sum of the properties of its components
//  Note: the entropy of mixing is not included
type IdealMix struct {
	Comps []IdealGas // components
	X     []float64  // mole fractions
	cte   eos.Constants
	buf   []float64 // values of components
}

// NewIdealMix returns a new ideal gas mixture with the given mole amounts
func NewIdealMix(comps []IdealGas, moles []float64, cte eos.Constants) (o *IdealMix, err error) {
	if len(comps) == 0 || len(comps) != len(moles) {
		return nil, chk.Err("idealmix: number of components and mole amounts must be equal and positive. %d != %d\n", len(comps), len(moles))
	}
	ntot := floats.Sum(moles)
	if ntot <= 0 || floats.Min(moles) < 0 {
		return nil, chk.Err("idealmix: mole amounts must be non-negative with positive sum. moles=%v\n", moles)
	}
	o = &IdealMix{Comps: comps, X: make([]float64, len(moles)), cte: cte, buf: make([]float64, len(moles))}
	floats.ScaleTo(o.X, 1.0/ntot, moles)
	return
}

// Init initialises model
//  Note: parameters are given to the components
func (o *IdealMix) Init(prms dbf.Params, cte eos.Constants) (err error) {
	if len(prms) > 0 {
		return chk.Err("idealmix: parameters must be given to the components\n")
	}
	o.cte = cte
	return
}

// GetPrms returns the mole fractions
func (o IdealMix) GetPrms(example bool) dbf.Params {
	prms := make(dbf.Params, len(o.X))
	for i, x := range o.X {
		prms[i] = &dbf.P{N: "x", V: x}
	}
	return prms
}

// weighted computes Σ xᵢ fᵢ(T)
func (o *IdealMix) weighted(T float64, f func(c IdealGas, T float64) float64) float64 {
	for i, c := range o.Comps {
		o.buf[i] = f(c, T)
	}
	return floats.Dot(o.X, o.buf)
}

// Cp0 computes the heat capacity at constant pressure
func (o *IdealMix) Cp0(T float64) float64 {
	return o.weighted(T, IdealGas.Cp0)
}

// Cv0 computes the heat capacity at constant volume
func (o *IdealMix) Cv0(T float64) float64 {
	return o.Cp0(T) - o.cte.R
}

// H0 computes the enthalpy
func (o *IdealMix) H0(T float64) float64 {
	return o.weighted(T, IdealGas.H0)
}

// E0 computes the internal energy
func (o *IdealMix) E0(T float64) float64 {
	return o.H0(T) - o.cte.R*T
}

// S0 computes the entropy at standard pressure
func (o *IdealMix) S0(T float64) float64 {
	return o.weighted(T, IdealGas.S0)
}
