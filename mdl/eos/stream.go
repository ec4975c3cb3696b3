// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"encoding/json"
	goio "io"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// streamKeys holds the names of the parameters in the order they appear in a token stream
//   ( model W pc Tc rhoc omega rhoMin rhoMax )
var streamKeys = []string{"W", "pc", "Tc", "rhoc", "omega", "rhoMin", "rhoMax"}

// Record holds the named-field representation of a substance
type Record struct {
	Name  string     `json:"name"`  // name of substance
	Model string     `json:"model"` // variant; e.g. "pengRobinson"
	Prms  dbf.Params `json:"prms"`  // parameters
}

// ReadStream reads a substance from a parenthesis-delimited, whitespace-separated token stream
//   ( model W pc Tc rhoc omega rhoMin rhoMax )
func ReadStream(r goio.Reader, cte Constants) (o *Substance, err error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, chk.Err("cannot read token stream:\n%v", err)
	}
	text := strings.Replace(string(b), "(", " ( ", -1)
	text = strings.Replace(text, ")", " ) ", -1)
	tokens := strings.Fields(text)
	n := len(streamKeys) + 3
	if len(tokens) != n || tokens[0] != "(" || tokens[n-1] != ")" {
		return nil, chk.Err("token stream must have the form ( model %s ). %d tokens were found\n", strings.Join(streamKeys, " "), len(tokens))
	}
	prms := make(dbf.Params, len(streamKeys))
	for i, key := range streamKeys {
		val, e := strconv.ParseFloat(tokens[i+2], 64)
		if e != nil {
			return nil, chk.Err("token stream: cannot parse %s=%q:\n%v", key, tokens[i+2], e)
		}
		prms[i] = &dbf.P{N: key, V: val}
	}
	return NewSubstance(tokens[1], prms, cte)
}

// WriteStream writes this substance as a token stream
//  Note: the token stream has no slots for the name and the solver tunables; the read back
//        substance is unnamed and uses DefaultSolverPrms. Use Write to keep them
func (o *Substance) WriteStream(w goio.Writer) (err error) {
	_, err = goio.WriteString(w, io.Sf("( %s %.17g %.17g %.17g %.17g %.17g %.17g %.17g )\n",
		o.Kind, o.mw, o.Pc, o.Tc, o.Rhoc, o.Omega, o.rhoMin, o.rhoMax))
	return
}

// Record returns the named-field representation of this substance
func (o *Substance) Record() *Record {
	return &Record{Name: o.name, Model: o.Kind.String(), Prms: o.GetPrms(false)}
}

// Write writes this substance in JSON format
//  Note: only names and values of parameters are written
func (o *Substance) Write(w goio.Writer) (err error) {
	type nameValue struct {
		N string  `json:"n"`
		V float64 `json:"v"`
	}
	rec := o.Record()
	out := struct {
		Name  string      `json:"name"`
		Model string      `json:"model"`
		Prms  []nameValue `json:"prms"`
	}{rec.Name, rec.Model, make([]nameValue, len(rec.Prms))}
	for i, p := range rec.Prms {
		out.Prms[i] = nameValue{p.N, p.V}
	}
	b, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return
	}
	_, err = w.Write(append(b, '\n'))
	return
}

// ReadJSON reads a substance written by Write
func ReadJSON(r goio.Reader, cte Constants) (o *Substance, err error) {
	var rec Record
	err = json.NewDecoder(r).Decode(&rec)
	if err != nil {
		return nil, chk.Err("cannot decode substance:\n%v", err)
	}
	return rec.Substance(cte)
}

// Substance allocates and initialises the substance described by this record
func (o *Record) Substance(cte Constants) (sp *Substance, err error) {
	sp, err = NewSubstance(o.Model, o.Prms, cte)
	if err != nil {
		return nil, chk.Err("substance %q: %v", o.Name, err)
	}
	sp.SetName(o.Name)
	return
}
