// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store implements a SQLite catalog of substances and mixtures
package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cpmech/realgas/mdl/eos"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Catalog wraps a SQLite connection holding named substance and mixture records
type Catalog struct {
	conn *sqlx.DB
}

// mixtureRow is a row of the mixtures table
type mixtureRow struct {
	Name       string `db:"name"`
	Components string `db:"components_json"`
	Moles      string `db:"moles_json"`
	Kij        string `db:"kij_json"`
}

// Open opens or creates a catalog at the given path
func Open(path string) (*Catalog, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	o := &Catalog{conn: conn}
	if err := o.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return o, nil
}

// Close closes the database connection
func (o *Catalog) Close() error {
	return o.conn.Close()
}

func (o *Catalog) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS substances (
		name TEXT PRIMARY KEY,
		model TEXT NOT NULL,
		record_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS mixtures (
		name TEXT PRIMARY KEY,
		components_json TEXT NOT NULL,
		moles_json TEXT NOT NULL,
		kij_json TEXT NOT NULL
	);
	`
	_, err := o.conn.Exec(schema)
	return err
}

// SaveSubstance inserts or replaces a substance
func (o *Catalog) SaveSubstance(sp *eos.Substance) error {
	if sp.Name() == "" {
		return fmt.Errorf("save substance: name is empty")
	}
	var buf bytes.Buffer
	if err := sp.Write(&buf); err != nil {
		return fmt.Errorf("encode substance %q: %w", sp.Name(), err)
	}
	_, err := o.conn.Exec(
		"INSERT OR REPLACE INTO substances (name, model, record_json) VALUES (?, ?, ?)",
		sp.Name(), sp.Kind.String(), buf.String(),
	)
	if err != nil {
		return fmt.Errorf("insert substance %q: %w", sp.Name(), err)
	}
	return nil
}

// LoadSubstance reads and initialises a substance
func (o *Catalog) LoadSubstance(name string, cte eos.Constants) (*eos.Substance, error) {
	var text string
	err := o.conn.Get(&text, "SELECT record_json FROM substances WHERE name = ?", name)
	if err != nil {
		return nil, fmt.Errorf("load substance %q: %w", name, err)
	}
	return eos.ReadJSON(bytes.NewBufferString(text), cte)
}

// Substances returns the names of all stored substances
func (o *Catalog) Substances() ([]string, error) {
	var names []string
	err := o.conn.Select(&names, "SELECT name FROM substances ORDER BY name")
	return names, err
}

// DeleteSubstance removes a substance; mixtures referencing it are removed too
func (o *Catalog) DeleteSubstance(name string) error {
	tx, err := o.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var rows []mixtureRow
	if err := tx.Select(&rows, "SELECT name, components_json, moles_json, kij_json FROM mixtures"); err != nil {
		return err
	}
	for _, r := range rows {
		var comps []string
		if err := json.Unmarshal([]byte(r.Components), &comps); err != nil {
			return fmt.Errorf("decode mixture %q: %w", r.Name, err)
		}
		for _, c := range comps {
			if c == name {
				if _, err := tx.Exec("DELETE FROM mixtures WHERE name = ?", r.Name); err != nil {
					return err
				}
				break
			}
		}
	}
	if _, err := tx.Exec("DELETE FROM substances WHERE name = ?", name); err != nil {
		return err
	}
	return tx.Commit()
}

// SaveMixture stores a mixture together with all of its components
func (o *Catalog) SaveMixture(mix *eos.Mixture) error {
	if mix.Name() == "" {
		return fmt.Errorf("save mixture: name is empty")
	}
	n := mix.Ncomp()
	comps := make([]string, n)
	moles := make([]float64, n)
	records := make([]string, n)
	for i := 0; i < n; i++ {
		sp := mix.Component(i)
		if sp.Name() == "" {
			return fmt.Errorf("save mixture %q: component %d has no name", mix.Name(), i)
		}
		var buf bytes.Buffer
		if err := sp.Write(&buf); err != nil {
			return fmt.Errorf("encode component %q: %w", sp.Name(), err)
		}
		comps[i], moles[i], records[i] = sp.Name(), mix.Moles(i), buf.String()
	}
	compsJSON, _ := json.Marshal(comps)
	molesJSON, _ := json.Marshal(moles)
	kijJSON, _ := json.Marshal(mix.KijTable())

	tx, err := o.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex("INSERT OR REPLACE INTO substances (name, model, record_json) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.Exec(comps[i], mix.Kind.String(), records[i]); err != nil {
			return fmt.Errorf("insert component %q: %w", comps[i], err)
		}
	}
	_, err = tx.Exec(`INSERT OR REPLACE INTO mixtures
		(name, components_json, moles_json, kij_json) VALUES (?, ?, ?, ?)`,
		mix.Name(), string(compsJSON), string(molesJSON), string(kijJSON),
	)
	if err != nil {
		return fmt.Errorf("insert mixture %q: %w", mix.Name(), err)
	}
	return tx.Commit()
}

// LoadMixture rebuilds a mixture from its stored components
func (o *Catalog) LoadMixture(name string, cte eos.Constants) (*eos.Mixture, error) {
	var r mixtureRow
	err := o.conn.Get(&r, "SELECT name, components_json, moles_json, kij_json FROM mixtures WHERE name = ?", name)
	if err != nil {
		return nil, fmt.Errorf("load mixture %q: %w", name, err)
	}
	var comps []string
	var moles, kij []float64
	if err := json.Unmarshal([]byte(r.Components), &comps); err != nil {
		return nil, fmt.Errorf("decode mixture %q: %w", name, err)
	}
	if err := json.Unmarshal([]byte(r.Moles), &moles); err != nil {
		return nil, fmt.Errorf("decode mixture %q: %w", name, err)
	}
	if err := json.Unmarshal([]byte(r.Kij), &kij); err != nil {
		return nil, fmt.Errorf("decode mixture %q: %w", name, err)
	}
	if len(comps) == 0 || len(comps) != len(moles) {
		return nil, fmt.Errorf("mixture %q: %d components and %d mole amounts", name, len(comps), len(moles))
	}

	var mix *eos.Mixture
	for i, c := range comps {
		sp, err := o.LoadSubstance(c, cte)
		if err != nil {
			return nil, fmt.Errorf("mixture %q: %w", name, err)
		}
		if i == 0 {
			mix, err = eos.NewMixture(name, sp, moles[i])
		} else {
			err = mix.Add(sp, moles[i])
		}
		if err != nil {
			return nil, fmt.Errorf("mixture %q: %w", name, err)
		}
	}
	if len(kij) > 0 {
		if err := mix.SetKijTable(kij); err != nil {
			return nil, fmt.Errorf("mixture %q: %w", name, err)
		}
	}
	return mix, nil
}

// Mixtures returns the names of all stored mixtures
func (o *Catalog) Mixtures() ([]string, error) {
	var names []string
	err := o.conn.Select(&names, "SELECT name FROM mixtures ORDER BY name")
	return names, err
}
