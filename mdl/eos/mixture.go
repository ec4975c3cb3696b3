// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// Mixture implements the van der Waals mixing rule for substances of the same variant
//
//   a(T) = Σᵢ Σⱼ xᵢ xⱼ √(aᵢ(T) aⱼ(T)) (1 - kᵢⱼ)     b = Σᵢ xᵢ bᵢ     c = Σᵢ xᵢ cᵢ
//
//  where xᵢ are the mole fractions and kᵢⱼ the optional binary interaction coefficients.
//  Components are owned by the mixture and referenced by their index.
type Mixture struct {
	core

	// variant
	Kind Variant // member of the cubic family; equal for all components

	// components
	comps   []*Substance // arena of components; slots [0,ncomp) are valid
	weights []float64    // mole amounts (not necessarily normalised)
	ncomp   int          // number of components
	single  bool         // wraps one component only; skip the mixing rule

	// binary interaction
	kij []float64 // flattened coefficients for pairs i < j; nil if disabled

	// auxiliary
	cte    Constants
	x      []float64 // mole fractions
	cache  coefCache // mixture a(T) and derivatives
	ncache int       // number of components when cache was filled
}

// NewMixture returns a mixture wrapping a single component with the given mole amount
//  Note: the component is cloned
func NewMixture(name string, sp *Substance, moles float64) (o *Mixture, err error) {
	o = new(Mixture)
	o.name = name
	o.Kind = sp.Kind
	o.cte = sp.cte
	o.cubic = sp.cubic
	o.Solver = sp.Solver
	o.comps = make([]*Substance, 1)
	o.weights = make([]float64, 1)
	o.comps[0] = sp.Clone()
	o.weights[0] = moles
	o.ncomp = 1
	o.single = true
	o.update = o.refresh
	err = o.recompute()
	return
}

// Add appends a component with the given mole amount
//  Note: the component is cloned. The capacity is doubled when exceeded and the cache is
//        invalidated. The density bracket is widened to contain the component's one.
//        Binary interaction coefficients are cleared.
func (o *Mixture) Add(sp *Substance, moles float64) (err error) {

	// check
	if sp.Kind != o.Kind {
		return chk.Err("mixture %q: cannot mix %s with %s\n", o.name, sp.Kind, o.Kind)
	}
	if moles < 0 {
		return chk.Err("mixture %q: mole amount must be non-negative. moles=%g\n", o.name, moles)
	}

	// resize
	if o.ncomp+1 > len(o.comps) {
		ncap := 2 * len(o.comps)
		comps := make([]*Substance, ncap)
		weights := make([]float64, ncap)
		copy(comps, o.comps[:o.ncomp])
		copy(weights, o.weights[:o.ncomp])
		o.comps, o.weights = comps, weights
	}

	// append
	o.comps[o.ncomp] = sp.Clone()
	o.weights[o.ncomp] = moles
	o.ncomp++
	o.single = false
	o.kij = nil

	// bracket
	rhoMin, rhoMax := sp.Bracket()
	o.rhoMin = math.Min(o.rhoMin, rhoMin)
	o.rhoMax = math.Max(o.rhoMax, rhoMax)
	return o.recompute()
}

// Reweight sets the mole amount of component i
func (o *Mixture) Reweight(i int, moles float64) (err error) {
	if i < 0 || i >= o.ncomp {
		return chk.Err("mixture %q: component index %d is out of range [0,%d)\n", o.name, i, o.ncomp)
	}
	if moles < 0 {
		return chk.Err("mixture %q: mole amount must be non-negative. moles=%g\n", o.name, moles)
	}
	o.weights[i] = moles
	return o.recompute()
}

// Scale multiplies all mole amounts by s
//  Note: the composition does not change
func (o *Mixture) Scale(s float64) (err error) {
	if s <= 0 {
		return chk.Err("mixture %q: scale factor must be positive. s=%g\n", o.name, s)
	}
	floats.Scale(s, o.weights[:o.ncomp])
	return o.recompute()
}

// SetKij sets the binary interaction coefficient of components i and j
//  Note: kᵢᵢ cannot be set since diagonal terms are never corrected
func (o *Mixture) SetKij(i, j int, k float64) (err error) {
	if i == j || i < 0 || j < 0 || i >= o.ncomp || j >= o.ncomp {
		return chk.Err("mixture %q: indices of binary interaction coefficient are invalid. i=%d, j=%d, ncomp=%d\n", o.name, i, j, o.ncomp)
	}
	if o.kij == nil {
		o.kij = make([]float64, o.ncomp*(o.ncomp-1)/2)
	}
	o.kij[pairIndex(i, j, o.ncomp)] = k
	o.cache.reset()
	return
}

// SetKijTable sets all binary interaction coefficients ordered as
//   k01, k02, ..., k0(n-1), k12, ..., k(n-2)(n-1)
func (o *Mixture) SetKijTable(table []float64) (err error) {
	npairs := o.ncomp * (o.ncomp - 1) / 2
	if len(table) != npairs {
		return chk.Err("mixture %q: number of binary interaction coefficients must be %d for %d components. %d were given\n", o.name, npairs, o.ncomp, len(table))
	}
	o.kij = make([]float64, npairs)
	copy(o.kij, table)
	o.cache.reset()
	return
}

// Kij returns the binary interaction coefficient of components i and j
func (o *Mixture) Kij(i, j int) float64 {
	if o.kij == nil || i == j {
		return 0
	}
	return o.kij[pairIndex(i, j, o.ncomp)]
}

// KijTable returns a copy of the flattened binary interaction coefficients; nil if disabled
func (o *Mixture) KijTable() []float64 {
	if o.kij == nil {
		return nil
	}
	return append([]float64{}, o.kij...)
}

// Ncomp returns the number of components
func (o *Mixture) Ncomp() int {
	return o.ncomp
}

// Single tells whether this mixture wraps one component only
func (o *Mixture) Single() bool {
	return o.single
}

// Component returns component i
func (o *Mixture) Component(i int) *Substance {
	return o.comps[i]
}

// Moles returns the mole amount of component i
func (o *Mixture) Moles(i int) float64 {
	return o.weights[i]
}

// MoleFraction returns the mole fraction of component i
func (o *Mixture) MoleFraction(i int) float64 {
	if o.single {
		return 1
	}
	return o.x[i]
}

// Updates returns the number of times the mixture a(T), da/dT and d²a/dT² have been computed
func (o *Mixture) Updates() int {
	if o.single {
		return o.comps[0].Updates()
	}
	return o.cache.nup
}

// Clone returns an independent copy with empty caches
func (o *Mixture) Clone() *Mixture {
	c := *o
	c.comps = make([]*Substance, len(o.comps))
	for i := 0; i < o.ncomp; i++ {
		c.comps[i] = o.comps[i].Clone()
	}
	c.weights = append([]float64{}, o.weights...)
	c.x = append([]float64{}, o.x...)
	c.kij = o.KijTable()
	c.cache = coefCache{}
	c.update = c.refresh
	return &c
}

// Amix returns the (i,j) term of the mixture a(T), without binary interaction correction
func (o *Mixture) Amix(T float64, i, j int) float64 {
	ai := o.comps[i].A(T)
	aj := o.comps[j].A(T)
	return o.x[i] * o.x[j] * math.Sqrt(ai*aj)
}

// DaDTmix returns the (i,j) term of the mixture da/dT, without binary interaction correction
func (o *Mixture) DaDTmix(T float64, i, j int) float64 {
	ai, dai := o.comps[i].A(T), o.comps[i].DaDT(T)
	aj, daj := o.comps[j].A(T), o.comps[j].DaDT(T)
	return 0.5 * o.x[i] * o.x[j] * (math.Sqrt(ai/aj)*daj + math.Sqrt(aj/ai)*dai)
}

// D2aDT2mix returns the (i,j) term of the mixture d²a/dT², without binary interaction correction
func (o *Mixture) D2aDT2mix(T float64, i, j int) float64 {
	ai, dai, d2ai := o.comps[i].A(T), o.comps[i].DaDT(T), o.comps[i].D2aDT2(T)
	aj, daj, d2aj := o.comps[j].A(T), o.comps[j].DaDT(T), o.comps[j].D2aDT2(T)
	rij := math.Sqrt(ai / aj)
	rji := math.Sqrt(aj / ai)
	return 0.5 * o.x[i] * o.x[j] * ((rij*d2aj + rji*d2ai) + dai*daj/math.Sqrt(ai*aj) -
		0.5*(rij*daj*daj/aj+rji*dai*dai/ai))
}

// recompute computes the mole fractions, molar mass, co-volumes and density at standard
// conditions after a change of composition
func (o *Mixture) recompute() (err error) {

	// mole fractions
	w := o.weights[:o.ncomp]
	ntot := floats.Sum(w)
	if ntot <= 0 {
		return chk.Err("mixture %q: total mole amount must be positive\n", o.name)
	}
	if len(o.x) != o.ncomp {
		o.x = make([]float64, o.ncomp)
	}
	floats.ScaleTo(o.x, 1.0/ntot, w)

	// molar mass and co-volumes
	var mw, b, c float64
	for i := 0; i < o.ncomp; i++ {
		mw += o.x[i] * o.comps[i].W()
		b += o.x[i] * o.comps[i].B()
		c += o.x[i] * o.comps[i].C()
	}
	o.mw = mw
	if o.single {
		o.setCovolume(o.comps[0].B(), o.comps[0].C())
	} else {
		o.setCovolume(b, c)
	}

	// cache
	o.cache.reset()
	o.ncache = 0

	// density at standard conditions
	o.rhostd, err = o.RhoIdeal(o.cte.Pstd, o.cte.Tstd)
	if err != nil {
		return chk.Err("mixture %q: cannot compute density at standard conditions:\n%v", o.name, err)
	}
	return
}

// refresh applies the mixing rule if T differs from the cached temperature or if the
// number of components has changed
func (o *Mixture) refresh(T float64) *coefCache {
	if o.single {
		return o.comps[0].refresh(T)
	}
	if !o.cache.stale(T) && o.ncache == o.ncomp {
		return &o.cache
	}
	var a, da, d2a float64
	for i := 0; i < o.ncomp; i++ {
		for j := 0; j < o.ncomp; j++ {
			f := 1.0
			if i != j && o.kij != nil {
				f = 1.0 - o.kij[pairIndex(i, j, o.ncomp)]
			}
			a += o.Amix(T, i, j) * f
			da += o.DaDTmix(T, i, j) * f
			d2a += o.D2aDT2mix(T, i, j) * f
		}
	}
	o.cache.set(T, a, da, d2a)
	o.ncache = o.ncomp
	return &o.cache
}

// pairIndex returns the position of the unordered pair (i,j), i ≠ j, in the flattened
// upper triangle of an n×n matrix
func pairIndex(i, j, n int) int {
	if i > j {
		i, j = j, i
	}
	return i*(2*n-i-1)/2 + j - i - 1
}
