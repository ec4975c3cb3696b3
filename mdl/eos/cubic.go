// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// cubic holds the temperature independent coefficients of
//   p = R T / (v - b + c)  -  a(T) / (v² + u b v + w b²)
//  Note: the attraction denominator is factorised as (v - r1)(v - r2) with r1 > r2,
//        thus ∫ dv / (v² + u b v + w b²) = ln((v - r1)/(v - r2)) / (r1 - r2)
type cubic struct {
	rr   float64 // universal gas constant
	mw   float64 // molar mass
	u, w float64 // shape of the attraction denominator
	b, c float64 // co-volume and volume translation
	bb   float64 // b²
	bmc  float64 // b - c
	s    float64 // r1 - r2 = b √(u² - 4w)
	r1   float64 // larger root of v² + u b v + w b²
	r2   float64 // smaller root of v² + u b v + w b²

	// bracket of densities for the bisection method
	rhoMin float64
	rhoMax float64
}

// setCovolume sets b and c and the derived powers and roots
func (o *cubic) setCovolume(b, c float64) {
	o.b, o.c = b, c
	o.bb = b * b
	o.bmc = b - c
	o.s = b * math.Sqrt(o.u*o.u-4.0*o.w)
	o.r1 = (o.s - o.u*b) / 2.0
	o.r2 = (-o.s - o.u*b) / 2.0
}

// den returns v² + u b v + w b²
func (o *cubic) den(v float64) float64 {
	return v*v + o.u*o.b*v + o.w*o.bb
}

// dden returns d(den)/dv
func (o *cubic) dden(v float64) float64 {
	return 2.0*v + o.u*o.b
}

// logden returns ∫ dv / den
func (o *cubic) logden(v float64) float64 {
	return math.Log((v-o.r1)/(v-o.r2)) / o.s
}

// p computes the pressure
func (o *cubic) p(k *coefCache, rho, T float64) float64 {
	v := o.mw / rho
	return o.rr*T/(v-o.bmc) - k.a/o.den(v)
}

// dpdv computes ∂p/∂v
func (o *cubic) dpdv(k *coefCache, rho, T float64) float64 {
	v := o.mw / rho
	x := v - o.bmc
	d := o.den(v)
	return -o.rr*T/(x*x) + k.a*o.dden(v)/(d*d)
}

// dpdT computes ∂p/∂T
func (o *cubic) dpdT(k *coefCache, rho, T float64) float64 {
	v := o.mw / rho
	return o.rr/(v-o.bmc) - k.da/o.den(v)
}

// d2pdv2 computes ∂²p/∂v²
func (o *cubic) d2pdv2(k *coefCache, rho, T float64) float64 {
	v := o.mw / rho
	x := v - o.bmc
	d := o.den(v)
	dd := o.dden(v)
	return 2.0*o.rr*T/(x*x*x) + 2.0*k.a*(d-dd*dd)/(d*d*d)
}

// d2pdT2 computes ∂²p/∂T²
func (o *cubic) d2pdT2(k *coefCache, rho, T float64) float64 {
	v := o.mw / rho
	return -k.d2a / o.den(v)
}

// d2pdvdT computes ∂²p/(∂v ∂T)
func (o *cubic) d2pdvdT(k *coefCache, rho, T float64) float64 {
	v := o.mw / rho
	x := v - o.bmc
	d := o.den(v)
	return -o.rr/(x*x) + k.da*o.dden(v)/(d*d)
}

// intPdv computes ∫ p dv
func (o *cubic) intPdv(k *coefCache, rho, T float64) float64 {
	v := o.mw / rho
	return o.rr*T*math.Log(v-o.bmc) - k.a*o.logden(v)
}

// intDpdTdv computes ∫ ∂p/∂T dv
func (o *cubic) intDpdTdv(k *coefCache, rho, T float64) float64 {
	v := o.mw / rho
	return o.rr*math.Log(v-o.bmc) - k.da*o.logden(v)
}

// intD2pdT2dv computes ∫ ∂²p/∂T² dv
func (o *cubic) intD2pdT2dv(k *coefCache, rho, T float64) float64 {
	v := o.mw / rho
	return -k.d2a * o.logden(v)
}
