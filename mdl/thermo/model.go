// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermo implements ideal gas heat capacity models and real gas properties computed
// from the departure functions of cubic equations of state
//  References:
//   [1] Poling BE, Prausnitz JM and O'Connell JP (2001) The properties of gases and liquids.
//       5th edition. McGraw-Hill
//   [2] McBride BJ, Gordon S and Reno MA (1993) Coefficients for calculating thermodynamic and
//       transport properties of individual species. NASA/TM-4513
package thermo

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/realgas/mdl/eos"
)

// IdealGas defines ideal gas (zero density limit) properties
//  Note: all quantities are molar; e.g. [J/mol] and [J/(mol・K)]
type IdealGas interface {
	Init(prms dbf.Params, cte eos.Constants) error // initialises model
	GetPrms(example bool) dbf.Params               // gets (an example) of parameters
	Cp0(T float64) float64                         // heat capacity at constant pressure
	Cv0(T float64) float64                         // heat capacity at constant volume
	H0(T float64) float64                          // enthalpy
	E0(T float64) float64                          // internal energy
	S0(T float64) float64                          // entropy at standard pressure
}

// New returns new ideal gas model
func New(name string) (model IdealGas, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'thermo' database", name)
	}
	return allocator(), nil
}

// NewIdealGas allocates and initialises an ideal gas model
func NewIdealGas(name string, prms dbf.Params, cte eos.Constants) (model IdealGas, err error) {
	model, err = New(name)
	if err != nil {
		return
	}
	err = model.Init(prms, cte)
	if err != nil {
		return nil, err
	}
	return
}

// allocators holds all available models
var allocators = map[string]func() IdealGas{}
