// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Substance implements a cubic EOS for one chemical species
type Substance struct {
	core

	// variant
	Kind Variant // member of the cubic family

	// parameters
	Pc    float64 // critical pressure [Pa]
	Tc    float64 // critical temperature [K]
	Rhoc  float64 // critical density [kg/m³]; required by Aungier's variant only
	Omega float64 // acentric factor [-]

	// derived
	A0  float64 // a0: attraction coefficient at the critical temperature
	N   float64 // n: exponent/slope of the temperature function
	cte Constants

	// auxiliary
	cache coefCache // a(T) and derivatives at the last temperature
}

// Init initialises this structure
func (o *Substance) Init(prms dbf.Params, cte Constants) (err error) {

	// constants
	o.cte = cte
	o.rr = cte.R
	o.u, o.w = o.Kind.shape()
	o.Solver = DefaultSolverPrms()
	o.rhoMin, o.rhoMax = 1e-3, 1500.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "W":
			o.mw = p.V
		case "pc":
			o.Pc = p.V
		case "Tc":
			o.Tc = p.V
		case "rhoc":
			o.Rhoc = p.V
		case "omega":
			o.Omega = p.V
		case "rhoMin":
			o.rhoMin = p.V
		case "rhoMax":
			o.rhoMax = p.V
		default:
			if !o.Solver.setPrm(p.N, p.V) {
				return chk.Err("%s: parameter named %q is incorrect\n", o.Kind, p.N)
			}
		}
	}
	return o.setup()
}

// SetName sets the name of this substance
func (o *Substance) SetName(name string) {
	o.name = name
}

// setup checks the parameters and computes the derived coefficients
func (o *Substance) setup() (err error) {

	// check
	if o.mw <= 0 || o.Pc <= 0 || o.Tc <= 0 {
		return chk.Err("%s: W, pc and Tc must be positive. W=%g, pc=%g, Tc=%g\n", o.Kind, o.mw, o.Pc, o.Tc)
	}
	if o.Kind == AungierRedlichKwong && o.Rhoc <= 0 {
		return chk.Err("%s: critical density rhoc must be positive. rhoc=%g\n", o.Kind, o.Rhoc)
	}
	if err = o.Solver.check(); err != nil {
		return chk.Err("%s: %v", o.Kind, err)
	}
	if o.rhoMin <= 0 || o.rhoMin >= o.rhoMax {
		return chk.Err("%s: density bracket is invalid: 0 < rhoMin < rhoMax is required. rhoMin=%g, rhoMax=%g\n", o.Kind, o.rhoMin, o.rhoMax)
	}

	// coefficients
	var vc float64
	if o.Rhoc > 0 {
		vc = o.mw / o.Rhoc
	}
	var b, c float64
	o.A0, b, c, o.N = o.Kind.coefficients(o.rr, o.Pc, o.Tc, vc, o.Omega)
	o.setCovolume(b, c)

	// cache
	o.cache.reset()
	o.update = o.refresh

	// density at standard conditions
	o.rhostd, err = o.RhoIdeal(o.cte.Pstd, o.cte.Tstd)
	if err != nil {
		return chk.Err("%s: cannot compute density at standard conditions:\n%v", o.Kind, err)
	}
	return
}

// GetPrms gets (an example) of parameters
//  Note: the example corresponds to carbon dioxide
func (o Substance) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "W", V: 0.04401},     // [kg/mol]
			&dbf.P{N: "pc", V: 7.3773e6},   // [Pa]
			&dbf.P{N: "Tc", V: 304.13},     // [K]
			&dbf.P{N: "rhoc", V: 467.6},    // [kg/m³]
			&dbf.P{N: "omega", V: 0.22394}, // [-]
			&dbf.P{N: "rhoMin", V: 1e-3},   // [kg/m³]
			&dbf.P{N: "rhoMax", V: 1500},   // [kg/m³]
		}
	}
	prms := dbf.Params{
		&dbf.P{N: "W", V: o.mw},
		&dbf.P{N: "pc", V: o.Pc},
		&dbf.P{N: "Tc", V: o.Tc},
		&dbf.P{N: "rhoc", V: o.Rhoc},
		&dbf.P{N: "omega", V: o.Omega},
		&dbf.P{N: "rhoMin", V: o.rhoMin},
		&dbf.P{N: "rhoMax", V: o.rhoMax},
	}
	return append(prms, o.Solver.getPrms()...)
}

// Constants returns the physical constants used to build this substance
func (o *Substance) Constants() Constants {
	return o.cte
}

// Updates returns the number of times a(T), da/dT and d²a/dT² have been recomputed
func (o *Substance) Updates() int {
	return o.cache.nup
}

// Clone returns an independent copy with an empty cache
func (o *Substance) Clone() *Substance {
	c := *o
	c.cache = coefCache{}
	c.update = c.refresh
	return &c
}

// refresh recomputes a(T), da/dT and d²a/dT² if T differs from the cached temperature
func (o *Substance) refresh(T float64) *coefCache {
	if o.cache.stale(T) {
		a, da, d2a := o.Kind.alpha(o.A0, o.N, o.Tc, T)
		o.cache.set(T, a, da, d2a)
	}
	return &o.cache
}
