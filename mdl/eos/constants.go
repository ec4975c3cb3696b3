// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Constants holds the physical constants used to construct models
type Constants struct {
	R    float64 // universal gas constant [J/(mol・K)]
	Pstd float64 // standard pressure [Pa]
	Tstd float64 // standard temperature [K]
}

// DefaultConstants returns SI values of the universal gas constant and standard state
func DefaultConstants() Constants {
	return Constants{
		R:    8.314462618,
		Pstd: 101325.0,
		Tstd: 298.15,
	}
}

// SolverPrms holds the tunables of the density solver
type SolverPrms struct {
	MaxIt       int     // max number of outer iterations; exceeding it is fatal
	MaxHalvings int     // max number of step halvings in damped Newton before bisection
	MaxBisect   int     // max number of bisection iterations
	Tol         float64 // relative tolerance
}

// DefaultSolverPrms returns the default tunables of the density solver
func DefaultSolverPrms() SolverPrms {
	return SolverPrms{
		MaxIt:       400,
		MaxHalvings: 8,
		MaxBisect:   200,
		Tol:         1e-8,
	}
}

// setPrm sets one solver tunable and returns false if name is not a solver parameter
func (o *SolverPrms) setPrm(name string, val float64) bool {
	switch name {
	case "maxIt":
		o.MaxIt = int(val)
	case "maxHalv":
		o.MaxHalvings = int(val)
	case "maxBisect":
		o.MaxBisect = int(val)
	case "tol":
		o.Tol = val
	default:
		return false
	}
	return true
}

// check returns an error if the tunables cannot drive the solver to a root
func (o SolverPrms) check() error {
	if o.MaxIt < 1 || o.MaxHalvings < 0 || o.MaxBisect < 0 || !(o.Tol > 0) {
		return chk.Err("density solver: maxIt ≥ 1, maxHalv ≥ 0, maxBisect ≥ 0 and tol > 0 are required. maxIt=%d, maxHalv=%d, maxBisect=%d, tol=%g\n", o.MaxIt, o.MaxHalvings, o.MaxBisect, o.Tol)
	}
	return nil
}

// getPrms returns the tunables that differ from the default ones
func (o SolverPrms) getPrms() (prms dbf.Params) {
	d := DefaultSolverPrms()
	if o.MaxIt != d.MaxIt {
		prms = append(prms, &dbf.P{N: "maxIt", V: float64(o.MaxIt)})
	}
	if o.MaxHalvings != d.MaxHalvings {
		prms = append(prms, &dbf.P{N: "maxHalv", V: float64(o.MaxHalvings)})
	}
	if o.MaxBisect != d.MaxBisect {
		prms = append(prms, &dbf.P{N: "maxBisect", V: float64(o.MaxBisect)})
	}
	if o.Tol != d.Tol {
		prms = append(prms, &dbf.P{N: "tol", V: o.Tol})
	}
	return
}
