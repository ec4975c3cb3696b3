// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// Variant tags one member of the cubic EOS family
type Variant int

// variants
const (
	RedlichKwong        Variant = iota // Redlich-Kwong [1]
	SoaveRedlichKwong                  // Soave-Redlich-Kwong [2]
	AungierRedlichKwong                // Aungier-Redlich-Kwong [3]
	PengRobinson                       // Peng-Robinson [4]
)

// variantNames holds the names used in input files
var variantNames = []string{
	"redlichKwong",
	"soaveRedlichKwong",
	"aungierRedlichKwong",
	"pengRobinson",
}

// add models to factory
func init() {
	for i, name := range variantNames {
		kind := Variant(i)
		allocators[name] = func() *Substance { return &Substance{Kind: kind} }
	}
}

// String returns the name of the variant
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return "unknown"
	}
	return variantNames[v]
}

// shape returns the coefficients (u,w) of the attraction denominator v² + u b v + w b²
func (v Variant) shape() (u, w float64) {
	if v == PengRobinson {
		return 2, -1
	}
	return 1, 0
}

// coefficients computes a0, b, c and n from the critical constants
//  vc is the critical molar volume; it is only required by Aungier's variant
func (v Variant) coefficients(R, pc, Tc, vc, ω float64) (a0, b, c, n float64) {
	switch v {
	case RedlichKwong:
		a0 = 0.42747 * R * R * Tc * Tc / pc
		b = 0.08664 * R * Tc / pc
		n = 0.5
	case SoaveRedlichKwong:
		a0 = 0.42747 * R * R * Tc * Tc / pc
		b = 0.08664 * R * Tc / pc
		n = 0.48 + 1.574*ω - 0.176*ω*ω
	case AungierRedlichKwong:
		a0 = 0.42747 * R * R * Tc * Tc / pc
		b = 0.08664 * R * Tc / pc
		c = R*Tc/(pc+a0/(vc*(vc+b))) + b - vc
		n = 0.4986 + 1.2735*ω + 0.4754*ω*ω
	case PengRobinson:
		a0 = 0.457235 * R * R * Tc * Tc / pc
		b = 0.077796 * R * Tc / pc
		n = 0.37464 + 1.54226*ω - 0.26992*ω*ω
	}
	return
}

// alpha computes a(T), da/dT and d²a/dT²
//  Redlich-Kwong and Aungier:  a = a0 (T/Tc)⁻ⁿ
//  Soave and Peng-Robinson:    a = a0 (1 + n (1 - √(T/Tc)))²
func (v Variant) alpha(a0, n, Tc, T float64) (a, da, d2a float64) {
	switch v {
	case SoaveRedlichKwong, PengRobinson:
		s := math.Sqrt(T / Tc)
		f := 1.0 + n*(1.0-s)
		a = a0 * f * f
		da = a0 * n * (n*s - n - 1.0) * s / T
		d2a = a0 * n * (n + 1.0) * s / (2.0 * T * T)
	default:
		a = a0 * math.Pow(T/Tc, -n)
		da = -n * a / T
		d2a = n * (n + 1.0) * a / (T * T)
	}
	return
}
