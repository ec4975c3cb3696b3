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

// Thermo implements real gas properties as the ideal gas ones plus the departure functions
// of a cubic equation of state. With v = W/ρ:
//
//   e(ρ,T) = e0(T) + [T ∫∂p/∂T dv - ∫p dv](ρ,T) - [T ∫∂p/∂T dv - ∫p dv]std
//   h(ρ,T) = e(ρ,T) + p v
//   s(ρ,T) = s0(T) + [∫∂p/∂T dv - R ln(R T/pstd)](ρ,T) - [∫∂p/∂T dv - R ln(R T/pstd)]std
//   cv(ρ,T) = cv0(T) + T ∫∂²p/∂T² dv
//   cp(ρ,T) = cv(ρ,T) - T (∂p/∂T)² / (∂p/∂v)
//
//  where "std" means evaluated at the standard temperature and corresponding density.
//  All quantities are molar.
type Thermo struct {

	// models
	Eos   eos.Model // equation of state of substance or mixture
	Ideal IdealGas  // ideal gas model

	// parameters
	CpMaxRatio float64 // cp is limited to CpMaxRatio・cp(std)
	MaxIt      int     // max number of iterations when inverting for temperature
	Tol        float64 // tolerance when inverting for temperature

	// constants and state at standard conditions
	cte          eos.Constants
	rhoStd       float64 // density at standard conditions
	e0Std        float64 // ideal internal energy at standard temperature
	s0Std        float64 // ideal entropy at standard temperature
	intPdvStd    float64 // ∫p dv at standard conditions
	intDpdTdvStd float64 // ∫∂p/∂T dv at standard conditions
	cpStd        float64 // cp at standard conditions (not limited)
}

// Init initialises this structure
func (o *Thermo) Init(prms dbf.Params, model eos.Model, ideal IdealGas, cte eos.Constants) (err error) {

	// models
	if model == nil || ideal == nil {
		return chk.Err("thermo: equation of state and ideal gas models must be given\n")
	}
	o.Eos, o.Ideal, o.cte = model, ideal, cte

	// parameters
	o.CpMaxRatio, o.MaxIt, o.Tol = 100, 50, 1e-9
	for _, p := range prms {
		switch p.N {
		case "cpMaxRatio":
			o.CpMaxRatio = p.V
		case "maxIt":
			o.MaxIt = int(p.V)
		case "tol":
			o.Tol = p.V
		default:
			return chk.Err("thermo: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.CpMaxRatio <= 1 {
		return chk.Err("thermo: cpMaxRatio must be greater than one. cpMaxRatio=%g\n", o.CpMaxRatio)
	}

	// standard state
	o.rhoStd = model.RhoStd()
	o.e0Std = ideal.E0(cte.Tstd)
	o.s0Std = ideal.S0(cte.Tstd)
	o.intPdvStd = model.IntPdv(o.rhoStd, cte.Tstd)
	o.intDpdTdvStd = model.IntDpDTdv(o.rhoStd, cte.Tstd)
	o.cpStd = o.CpNonLimited(o.rhoStd, cte.Tstd)
	if !(o.cpStd > 0) || math.IsInf(o.cpStd, 0) {
		return chk.Err("thermo: heat capacity at standard conditions is invalid. cp=%g\n", o.cpStd)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Thermo) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "cpMaxRatio", V: 100},
			&dbf.P{N: "maxIt", V: 50},
			&dbf.P{N: "tol", V: 1e-9},
		}
	}
	return dbf.Params{
		&dbf.P{N: "cpMaxRatio", V: o.CpMaxRatio},
		&dbf.P{N: "maxIt", V: float64(o.MaxIt)},
		&dbf.P{N: "tol", V: o.Tol},
	}
}

// W returns the molar mass
func (o *Thermo) W() float64 {
	return o.Eos.W()
}

// Constants returns the physical constants
func (o *Thermo) Constants() eos.Constants {
	return o.cte
}

// RhoStd returns the density at standard conditions
func (o *Thermo) RhoStd() float64 {
	return o.rhoStd
}

// departures //////////////////////////////////////////////////////////////////////////////////

// EDeparture computes the internal energy departure T ∫∂p/∂T dv - ∫p dv
func (o *Thermo) EDeparture(rho, T float64) float64 {
	return T*o.Eos.IntDpDTdv(rho, T) - o.Eos.IntPdv(rho, T)
}

// HDeparture computes the enthalpy departure
func (o *Thermo) HDeparture(rho, T float64) float64 {
	return o.EDeparture(rho, T) + o.Eos.P(rho, T)*o.Eos.W()/rho - o.cte.R*T
}

// SDeparture computes the entropy departure ∫∂p/∂T dv - R ln(R T/pstd)
func (o *Thermo) SDeparture(rho, T float64) float64 {
	return o.Eos.IntDpDTdv(rho, T) - o.cte.R*math.Log(o.cte.R*T/o.cte.Pstd)
}

// eDepStd returns the internal energy departure at standard conditions
func (o *Thermo) eDepStd() float64 {
	return o.cte.Tstd*o.intDpdTdvStd - o.intPdvStd
}

// sDepStd returns the entropy departure at standard conditions
func (o *Thermo) sDepStd() float64 {
	return o.intDpdTdvStd - o.cte.R*math.Log(o.cte.R*o.cte.Tstd/o.cte.Pstd)
}

// properties //////////////////////////////////////////////////////////////////////////////////

// E computes the internal energy
func (o *Thermo) E(rho, T float64) float64 {
	return o.e0Std + (o.Ideal.E0(T) - o.Ideal.E0(o.cte.Tstd)) + o.EDeparture(rho, T) - o.eDepStd()
}

// H computes the enthalpy
func (o *Thermo) H(rho, T float64) float64 {
	return o.E(rho, T) + o.Eos.P(rho, T)*o.Eos.W()/rho
}

// S computes the entropy
func (o *Thermo) S(rho, T float64) float64 {
	return o.s0Std + (o.Ideal.S0(T) - o.Ideal.S0(o.cte.Tstd)) + o.SDeparture(rho, T) - o.sDepStd()
}

// Cv computes the heat capacity at constant volume
func (o *Thermo) Cv(rho, T float64) float64 {
	return o.Ideal.Cv0(T) + T*o.Eos.IntD2pDT2dv(rho, T)
}

// CpNonLimited computes the heat capacity at constant pressure
//  Note: it diverges near the critical point
func (o *Thermo) CpNonLimited(rho, T float64) float64 {
	dpdT := o.Eos.DpDT(rho, T)
	return o.Cv(rho, T) - T*dpdT*dpdT/o.Eos.DpDv(rho, T)
}

// Cp computes the heat capacity at constant pressure limited to CpMaxRatio・cp(std)
//  Note: non-finite and non-positive values are also replaced by the limit
func (o *Thermo) Cp(rho, T float64) float64 {
	cp := o.CpNonLimited(rho, T)
	cpMax := o.CpMaxRatio * o.cpStd
	if !(cp > 0) || cp > cpMax {
		return cpMax
	}
	return cp
}

// Gamma computes the ratio of heat capacities cp/cv
func (o *Thermo) Gamma(rho, T float64) float64 {
	return o.Cp(rho, T) / o.Cv(rho, T)
}

// SoundSpeed computes the speed of sound c = √(γ ∂p/∂ρ|T)
func (o *Thermo) SoundSpeed(rho, T float64) float64 {
	W := o.Eos.W()
	return math.Sqrt(-o.Gamma(rho, T) * o.Eos.DpDv(rho, T) * W / (rho * rho))
}

// DrhoDh computes ∂ρ/∂h at constant pressure
func (o *Thermo) DrhoDh(rho, T float64) float64 {
	return -rho * rho / o.Eos.W() * o.Eos.DvDT(rho, T) / o.Cp(rho, T)
}

// inversions //////////////////////////////////////////////////////////////////////////////////

// THp computes the temperature corresponding to enthalpy h at pressure p
//  Input:
//   h  -- molar enthalpy
//   p  -- pressure
//   T0 -- initial temperature
//  Output:
//   T   -- temperature
//   rho -- density at (p,T)
func (o *Thermo) THp(h, p, T0 float64) (T, rho float64, err error) {
	T = T0
	rho, err = o.Eos.RhoIdeal(p, T)
	if err != nil {
		return
	}
	for it := 0; it < o.MaxIt; it++ {
		ΔT := (o.H(rho, T) - h) / o.Cp(rho, T)
		T -= ΔT
		if !(T > 0) {
			return 0, 0, chk.Err("thermo: temperature became non-positive when inverting h=%g at p=%g\n", h, p)
		}
		rho, err = o.Eos.Rho(p, T, rho)
		if err != nil {
			return
		}
		if math.Abs(ΔT) < o.Tol*T {
			return
		}
	}
	return 0, 0, chk.Err("thermo: cannot find temperature corresponding to h=%g and p=%g after %d iterations\n", h, p, o.MaxIt)
}

// TErho computes the temperature corresponding to internal energy e at density rho
func (o *Thermo) TErho(e, rho, T0 float64) (T float64, err error) {
	T = T0
	for it := 0; it < o.MaxIt; it++ {
		ΔT := (o.E(rho, T) - e) / o.Cv(rho, T)
		T -= ΔT
		if !(T > 0) {
			return 0, chk.Err("thermo: temperature became non-positive when inverting e=%g at rho=%g\n", e, rho)
		}
		if math.Abs(ΔT) < o.Tol*T {
			return
		}
	}
	return 0, chk.Err("thermo: cannot find temperature corresponding to e=%g and rho=%g after %d iterations\n", e, rho, o.MaxIt)
}
