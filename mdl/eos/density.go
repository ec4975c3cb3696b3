// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// pressureModel defines what the density solver needs from a model
type pressureModel interface {
	W() float64
	P(rho, T float64) float64
	DpDv(rho, T float64) float64
	Bracket() (rhoMin, rhoMax float64)
}

// DensityError is returned when the density solver exceeds the max number of outer iterations
//  Note: this is a fatal error; it indicates that there is no root within the density bracket
//        or that the bracket is misconfigured
type DensityError struct {
	P, T           float64 // requested state
	RhoMin, RhoMax float64 // density bracket
	MaxIt          int     // max number of iterations
}

// Error returns the error message
func (o *DensityError) Error() string {
	return io.Sf("density solver: max number of iterations (%d) exceeded for p=%g and T=%g. rhoMin=%g and rhoMax=%g may not bracket the solution", o.MaxIt, o.P, o.T, o.RhoMin, o.RhoMax)
}

// SolveDensity computes the density ρ such that p(ρ,T) = p
//  A damped Newton method on the molar volume is used with bisection as fallback:
//   1) Newton step Δv = (p(v) - p)/(∂p/∂v) scaled by 1/2ⁱ, i = 0...MaxHalvings,
//      accepted as soon as the residual does not increase
//   2) after MaxHalvings halvings, bisection on [rhoMin, rhoMax] for at most MaxBisect
//      iterations; accepted when |p(ρ) - p| < Tol・p
//  Both paths are checked by the outer test |Δv| ≤ Tol・W/rho0.
func SolveDensity(m pressureModel, p, T, rho0 float64, prms SolverPrms) (rho float64, err error) {

	// check
	if err = prms.check(); err != nil {
		return
	}

	// auxiliary
	W := m.W()
	rhoMin, rhoMax := m.Bracket()
	residual := func(v float64) float64 {
		return m.P(W/v, T) - p
	}

	// bisection bracket; kept through all iterations
	rho1, rho2 := rhoMax, rhoMin

	// outer iterations
	var vPrev float64
	v := W / rho0
	for it := 0; ; it++ {
		vPrev = v

		// damped Newton with bisection as backup
		for i := 0; ; i++ {
			if i <= prms.MaxHalvings {
				v = vPrev - (residual(vPrev)/m.DpDv(W/vPrev, T))/math.Pow(2, float64(i))
			}
			if i == prms.MaxHalvings {
				converged := false
				for k := 0; k < prms.MaxBisect; k++ {
					f1 := m.P(rho1, T) - p
					f2 := m.P(rho2, T) - p
					rho3 := (rho1 + rho2) / 2.0
					f3 := m.P(rho3, T) - p
					if (f2 < 0 && f3 > 0) || (f2 > 0 && f3 < 0) {
						rho1 = rho3
					} else if (f1 < 0 && f3 > 0) || (f1 > 0 && f3 < 0) {
						rho2 = rho3
					} else {
						rho2 = (rho2 + rho3) / 2.0
					}
					if math.Abs(f3) < p*prms.Tol {
						v = W / rho3
						vPrev = v
						converged = true
						break
					}
					vPrev = W / rho3
				}
				if !converged {
					// restart Newton from the last midpoint; the bracket is kept
					v, vPrev = vPrev, v
					break
				}
			}
			if math.Abs(residual(v)) <= math.Abs(residual(vPrev)) {
				break
			}
		}

		// check
		if it >= prms.MaxIt {
			return 0, &DensityError{p, T, rhoMin, rhoMax, prms.MaxIt}
		}
		if math.Abs(vPrev-v) <= prms.Tol*W/rho0 {
			break
		}
	}
	return W / v, nil
}
