// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	goio "io"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// State holds real gas properties at one (p,T) point
type State struct {
	P     float64 // pressure
	T     float64 // temperature
	Rho   float64 // density
	Z     float64 // compressibility factor
	E     float64 // internal energy
	H     float64 // enthalpy
	S     float64 // entropy
	Cv    float64 // heat capacity at constant volume
	Cp    float64 // heat capacity at constant pressure (limited)
	Gamma float64 // cp/cv
	C     float64 // speed of sound
}

// Driver computes real gas properties along a path of (p,T) points
type Driver struct {

	// input
	Mdl *Thermo // thermo model

	// settings
	TolCp float64 // relative tolerance to check cp = ∂h/∂T|p
	TolCv float64 // relative tolerance to check cv = ∂e/∂T|v
	VerD  bool    // verbose check of derivatives

	// check derivatives
	TstD *testing.T // if != nil, do check heat capacities

	// results
	Res []*State // results
}

// Init initialises driver
func (o *Driver) Init(mdl *Thermo) (err error) {
	if mdl == nil {
		return chk.Err("driver: thermo model must be given\n")
	}
	o.Mdl = mdl
	o.TolCp = 1e-6
	o.TolCv = 1e-6
	o.VerD = chk.Verbose
	return
}

// NewState computes properties at (p,T) starting the density search at rho0
//  Note: rho0 ≤ 0 means the ideal gas density
func (o *Driver) NewState(p, T, rho0 float64) (s *State, err error) {
	m := o.Mdl
	var rho float64
	if rho0 > 0 {
		rho, err = m.Eos.Rho(p, T, rho0)
	} else {
		rho, err = m.Eos.RhoIdeal(p, T)
	}
	if err != nil {
		return
	}
	s = &State{P: p, T: T, Rho: rho}
	s.Z = p * m.W() / (m.cte.R * T * rho)
	s.E = m.E(rho, T)
	s.H = m.H(rho, T)
	s.S = m.S(rho, T)
	s.Cv = m.Cv(rho, T)
	s.Cp = m.Cp(rho, T)
	s.Gamma = s.Cp / s.Cv
	s.C = m.SoundSpeed(rho, T)
	return
}

// Run computes states along the path defined by P and T
//  Note: P and T must have the same length; the previous density is used as initial value.
//        With TstD != nil, density errors met while checking cp are returned too
func (o *Driver) Run(P, T []float64) (err error) {

	// check
	np := len(P)
	if len(T) != np {
		return chk.Err("driver: P and T must have the same length. %d != %d\n", np, len(T))
	}

	// states
	o.Res = make([]*State, np)
	var rho0 float64
	for i := 0; i < np; i++ {
		o.Res[i], err = o.NewState(P[i], T[i], rho0)
		if err != nil {
			return
		}
		rho0 = o.Res[i].Rho

		// check heat capacities
		if o.TstD != nil {
			err = o.checkDerivs(o.Res[i])
			if err != nil {
				return
			}
		}
	}
	return
}

// checkDerivs checks cp and cv against numerical derivatives of h and e
//  Note: TolCp and TolCv are relative to the analytical values. The density at every
//        point of the stencil must be found; otherwise the solver error is returned
func (o *Driver) checkDerivs(s *State) (err error) {
	m := o.Mdl
	h := 1e-2
	if s.Cp == m.CpNonLimited(s.Rho, s.T) {
		for _, x := range []float64{s.T - 2*h, s.T - h, s.T + h, s.T + 2*h} {
			_, err = m.Eos.Rho(s.P, x, s.Rho)
			if err != nil {
				return
			}
		}
		chk.DerivScaSca(o.TstD, io.Sf("cp = ∂h/∂T|p @ %g,%g", s.P, s.T), o.TolCp*math.Abs(s.Cp), s.Cp, s.T, h, o.VerD, func(x float64) float64 {
			rho, e := m.Eos.Rho(s.P, x, s.Rho)
			if e != nil {
				o.TstD.Errorf("cp = ∂h/∂T|p @ %g,%g: cannot compute density at T=%g:\n%v", s.P, s.T, x, e)
			}
			return m.H(rho, x)
		})
	}
	chk.DerivScaSca(o.TstD, io.Sf("cv = ∂e/∂T|v @ %g,%g", s.P, s.T), o.TolCv*math.Abs(s.Cv), s.Cv, s.T, h, o.VerD, func(x float64) float64 {
		return m.E(s.Rho, x)
	})
	return
}

// Write writes a table with the results
func (o *Driver) Write(w goio.Writer) (err error) {
	_, err = goio.WriteString(w, io.Sf("%13s%13s%13s%13s%15s%15s%13s%13s%13s%13s%13s\n",
		"p", "T", "rho", "Z", "e", "h", "s", "cv", "cp", "gamma", "c"))
	if err != nil {
		return
	}
	for _, s := range o.Res {
		_, err = goio.WriteString(w, io.Sf("%13.6g%13.6g%13.6g%13.6g%15.8g%15.8g%13.6g%13.6g%13.6g%13.6g%13.6g\n",
			s.P, s.T, s.Rho, s.Z, s.E, s.H, s.S, s.Cv, s.Cp, s.Gamma, s.C))
		if err != nil {
			return
		}
	}
	return
}
