// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

// core implements Model on top of coefficients refreshed by update
//  Note: update must return a cache valid at the given temperature; substances refresh
//        their own cache while mixtures apply the mixing rule first
type core struct {
	cubic
	name   string                    // name of substance or mixture
	rhostd float64                   // density at standard conditions
	Solver SolverPrms                // density solver tunables
	update func(T float64) *coefCache // refreshes a(T), da/dT and d²a/dT²
}

// Name returns the name of substance or mixture
func (o *core) Name() string {
	return o.name
}

// W returns the molar mass
func (o *core) W() float64 {
	return o.mw
}

// RhoStd returns the density at standard conditions
func (o *core) RhoStd() float64 {
	return o.rhostd
}

// Bracket returns the density search bounds
func (o *core) Bracket() (rhoMin, rhoMax float64) {
	return o.rhoMin, o.rhoMax
}

// B returns the co-volume
func (o *core) B() float64 {
	return o.b
}

// C returns the volume translation
func (o *core) C() float64 {
	return o.c
}

// A computes the attraction coefficient a(T)
func (o *core) A(T float64) float64 {
	return o.update(T).a
}

// DaDT computes da/dT
func (o *core) DaDT(T float64) float64 {
	return o.update(T).da
}

// D2aDT2 computes d²a/dT²
func (o *core) D2aDT2(T float64) float64 {
	return o.update(T).d2a
}

// P computes the pressure
func (o *core) P(rho, T float64) float64 {
	return o.p(o.update(T), rho, T)
}

// DpDv computes ∂p/∂v at constant T
func (o *core) DpDv(rho, T float64) float64 {
	return o.dpdv(o.update(T), rho, T)
}

// DpDT computes ∂p/∂T at constant v
func (o *core) DpDT(rho, T float64) float64 {
	return o.dpdT(o.update(T), rho, T)
}

// DvDT computes ∂v/∂T at constant p by implicit differentiation
func (o *core) DvDT(rho, T float64) float64 {
	k := o.update(T)
	return -o.dpdT(k, rho, T) / o.dpdv(k, rho, T)
}

// DvDp computes ∂v/∂p at constant T
func (o *core) DvDp(rho, T float64) float64 {
	return 1.0 / o.dpdv(o.update(T), rho, T)
}

// D2pDv2 computes ∂²p/∂v²
func (o *core) D2pDv2(rho, T float64) float64 {
	return o.d2pdv2(o.update(T), rho, T)
}

// D2pDT2 computes ∂²p/∂T²
func (o *core) D2pDT2(rho, T float64) float64 {
	return o.d2pdT2(o.update(T), rho, T)
}

// D2pDvDT computes ∂²p/(∂v ∂T)
func (o *core) D2pDvDT(rho, T float64) float64 {
	return o.d2pdvdT(o.update(T), rho, T)
}

// D2vDT2 computes ∂²v/∂T² at constant p by second order implicit differentiation of
// p(v(T),T) = const
func (o *core) D2vDT2(rho, T float64) float64 {
	k := o.update(T)
	pv := o.dpdv(k, rho, T)
	pT := o.dpdT(k, rho, T)
	pvv := o.d2pdv2(k, rho, T)
	pTT := o.d2pdT2(k, rho, T)
	pvT := o.d2pdvdT(k, rho, T)
	return -(pT*pT*pvv + pv*pv*pTT - 2.0*pv*pT*pvT) / (pv * pv * pv)
}

// IntPdv computes ∫ p dv (used for the internal energy)
func (o *core) IntPdv(rho, T float64) float64 {
	return o.intPdv(o.update(T), rho, T)
}

// IntDpDTdv computes ∫ ∂p/∂T dv (used for the entropy)
func (o *core) IntDpDTdv(rho, T float64) float64 {
	return o.intDpdTdv(o.update(T), rho, T)
}

// IntD2pDT2dv computes ∫ ∂²p/∂T² dv (used for the heat capacities)
func (o *core) IntD2pDT2dv(rho, T float64) float64 {
	return o.intD2pdT2dv(o.update(T), rho, T)
}

// Psi computes the compressibility ∂ρ/∂p at constant T
func (o *core) Psi(rho, T float64) float64 {
	return -o.DvDp(rho, T) * rho * rho / o.mw
}

// IsobarExpCoef computes β = (1/v) ∂v/∂T at constant p
func (o *core) IsobarExpCoef(rho, T float64) float64 {
	return o.DvDT(rho, T) * rho / o.mw
}

// IsothermalCompressibility computes κ = β / (∂p/∂T)
func (o *core) IsothermalCompressibility(rho, T float64) float64 {
	return o.IsobarExpCoef(rho, T) / o.DpDT(rho, T)
}

// Rho computes the density corresponding to p and T, starting at rho0
func (o *core) Rho(p, T, rho0 float64) (float64, error) {
	return SolveDensity(o, p, T, rho0, o.Solver)
}

// RhoIdeal computes the density corresponding to p and T, starting at the ideal gas density
func (o *core) RhoIdeal(p, T float64) (float64, error) {
	return o.Rho(p, T, p*o.mw/(o.rr*T))
}

// Z computes the compressibility factor
func (o *core) Z(p, T, rho0 float64) (float64, error) {
	rho, err := o.Rho(p, T, rho0)
	if err != nil {
		return 0, err
	}
	return p * o.mw / (o.rr * T * rho), nil
}

