// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

// coefCache holds a(T), da/dT and d²a/dT² valid at temperature T
//  Note: the zero value is empty; any temperature, including T = 0, triggers a recomputation
type coefCache struct {
	T     float64 // temperature at which the values are valid
	a     float64 // a(T)
	da    float64 // da/dT
	d2a   float64 // d²a/dT²
	valid bool    // values correspond to T
	nup   int     // number of updates
}

// stale tells whether the values must be recomputed for temperature T
func (o *coefCache) stale(T float64) bool {
	return !o.valid || o.T != T
}

// set stores the values computed at temperature T
func (o *coefCache) set(T, a, da, d2a float64) {
	o.T, o.a, o.da, o.d2a = T, a, da, d2a
	o.valid = true
	o.nup++
}

// reset invalidates the cache
func (o *coefCache) reset() {
	o.T, o.a, o.da, o.d2a = 0, 0, 0, 0
	o.valid = false
}
