// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/realgas/mdl/eos"
	"github.com/cpmech/realgas/mdl/thermo"
)

// Gas holds the data of one chemical species
type Gas struct {

	// input
	Name   string     `json:"name"`   // name of gas; e.g. "CO2"
	Model  string     `json:"model"`  // name of EOS model; e.g. "pengRobinson"
	Thermo string     `json:"thermo"` // name of ideal gas model; e.g. "nasa", "consthc"
	Extra  string     `json:"extra"`  // extra information about this gas
	Prms   dbf.Params `json:"prms"`   // EOS parameters
	Cprms  dbf.Params `json:"cprms"`  // ideal gas parameters

	// derived
	Eos   *eos.Substance  // equation of state
	Ideal thermo.IdealGas // ideal gas model
}

// Mixture holds the data of one mixture of gases
type Mixture struct {

	// input
	Name       string    `json:"name"`       // name of mixture
	Components []string  `json:"components"` // names of gases
	Moles      []float64 `json:"moles"`      // mole amounts of components
	Kij        []float64 `json:"kij"`        // binary interaction coefficients k01, k02, ..., k12, ... [optional]

	// derived
	Eos   *eos.Mixture     // equation of state
	Ideal *thermo.IdealMix // ideal gas model
}

// GasesData holds gases
type GasesData []*Gas

// MixturesData holds mixtures
type MixturesData []*Mixture

// GasDb implements a database of gases and mixtures
type GasDb struct {

	// input
	Constants dbf.Params   `json:"constants"` // R, pstd and Tstd [optional]
	Thermo    dbf.Params   `json:"thermo"`    // parameters of real gas properties; e.g. cpMaxRatio [optional]
	Gases     GasesData    `json:"gases"`     // all gases
	Mixtures  MixturesData `json:"mixtures"`  // all mixtures

	// derived
	Cte eos.Constants // physical constants
}

// ReadGasDb reads all gases and mixtures from a .gas JSON file
func ReadGasDb(dir, fn string) (gdb *GasDb, err error) {

	// new database
	gdb = new(GasDb)

	// read file
	b, err := readFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, gdb)
	if err != nil {
		return nil, chk.Err("cannot decode gas database %q:\n%v", fn, err)
	}
	err = gdb.Init()
	if err != nil {
		return nil, err
	}
	return
}

// readFile reads a whole file
//  Note: io.ReadFile panics on failure
func readFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("cannot read file %q:\n%v", fn, r)
		}
	}()
	b = io.ReadFile(fn)
	return
}

// Init allocates and initialises all models
func (o *GasDb) Init() (err error) {

	// constants
	o.Cte = eos.DefaultConstants()
	for _, p := range o.Constants {
		switch p.N {
		case "R":
			o.Cte.R = p.V
		case "pstd":
			o.Cte.Pstd = p.V
		case "Tstd":
			o.Cte.Tstd = p.V
		default:
			return chk.Err("constant named %q is incorrect; options are \"R\", \"pstd\" and \"Tstd\"", p.N)
		}
	}

	// alloc/init: gases
	names := make(map[string]bool)
	for _, g := range o.Gases {
		if names[g.Name] {
			return chk.Err("gas named %q is duplicated", g.Name)
		}
		names[g.Name] = true
		g.Eos, err = eos.NewSubstance(g.Model, g.Prms, o.Cte)
		if err != nil {
			return chk.Err("cannot initialise EOS of gas %q:\n%v", g.Name, err)
		}
		g.Eos.SetName(g.Name)
		g.Ideal, err = thermo.NewIdealGas(g.Thermo, g.Cprms, o.Cte)
		if err != nil {
			return chk.Err("cannot initialise ideal gas model of gas %q:\n%v", g.Name, err)
		}
	}

	// alloc/init: mixtures
	for _, m := range o.Mixtures {
		if names[m.Name] {
			return chk.Err("mixture named %q is duplicated", m.Name)
		}
		names[m.Name] = true
		if len(m.Components) == 0 || len(m.Components) != len(m.Moles) {
			return chk.Err("mixture %q: number of components (%d) and mole amounts (%d) must be equal and positive", m.Name, len(m.Components), len(m.Moles))
		}
		ideals := make([]thermo.IdealGas, len(m.Components))
		for i, name := range m.Components {
			g := o.Get(name)
			if g == nil {
				return chk.Err("mixture %q: cannot find gas named %q", m.Name, name)
			}
			if i == 0 {
				m.Eos, err = eos.NewMixture(m.Name, g.Eos, m.Moles[i])
			} else {
				err = m.Eos.Add(g.Eos, m.Moles[i])
			}
			if err != nil {
				return
			}
			ideals[i] = g.Ideal
		}
		if len(m.Kij) > 0 {
			err = m.Eos.SetKijTable(m.Kij)
			if err != nil {
				return
			}
		}
		m.Ideal, err = thermo.NewIdealMix(ideals, m.Moles, o.Cte)
		if err != nil {
			return chk.Err("mixture %q: %v", m.Name, err)
		}
	}
	return
}

// Get returns a gas
//  Note: returns nil if not found
func (o GasDb) Get(name string) *Gas {
	for _, g := range o.Gases {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// GetMixture returns a mixture
//  Note: returns nil if not found
func (o GasDb) GetMixture(name string) *Mixture {
	for _, m := range o.Mixtures {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// NewThermo returns the real gas model of a gas or mixture
//  Note: the equation of state is cloned; thus each call returns an independent model
func (o GasDb) NewThermo(name string) (th *thermo.Thermo, err error) {
	th = new(thermo.Thermo)
	if g := o.Get(name); g != nil {
		err = th.Init(o.Thermo, g.Eos.Clone(), g.Ideal, o.Cte)
		return
	}
	if m := o.GetMixture(name); m != nil {
		err = th.Init(o.Thermo, m.Eos.Clone(), m.Ideal, o.Cte)
		return
	}
	return nil, chk.Err("cannot find gas or mixture named %q", name)
}

// String prints one gas
func (o *Gas) String() string {
	return io.Sf("    {\n      \"name\"   : %q,\n      \"model\"  : %q,\n      \"thermo\" : %q,\n      \"extra\"  : %q,\n      \"prms\"   : %s,\n      \"cprms\"  : %s\n    }",
		o.Name, o.Model, o.Thermo, o.Extra, prmsString(o.Prms), prmsString(o.Cprms))
}

// String prints one mixture
func (o *Mixture) String() string {
	return io.Sf("    {\n      \"name\"       : %q,\n      \"components\" : %s,\n      \"moles\"      : %s,\n      \"kij\"        : %s\n    }",
		o.Name, jsonString(o.Components), jsonString(o.Moles), jsonString(o.Kij))
}

// String prints gases
func (o GasesData) String() string {
	l := "  \"gases\" : [\n"
	for i, g := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", g)
	}
	l += "\n  ]"
	return l
}

// String prints mixtures
func (o MixturesData) String() string {
	l := "  \"mixtures\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all gases and mixtures
func (o GasDb) String() string {
	return io.Sf("{\n  \"constants\" : %s,\n  \"thermo\" : %s,\n%v,\n%v\n}", prmsString(o.Constants), prmsString(o.Thermo), o.Gases, o.Mixtures)
}

// prmsString prints parameters as a JSON list of names and values
func prmsString(prms dbf.Params) string {
	l := "["
	for i, p := range prms {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{\"n\":%q, \"v\":%v}", p.N, p.V)
	}
	return l + "]"
}

// jsonString prints a value in JSON format
func jsonString(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
