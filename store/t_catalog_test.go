// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/realgas/mdl/eos"
)

func tempCatalog(tst *testing.T) (o *Catalog, cleanup func()) {
	dir, err := ioutil.TempDir("", "realgas-catalog")
	if err != nil {
		tst.Fatalf("TempDir failed: %v\n", err)
	}
	o, err = Open(filepath.Join(dir, "gases.db"))
	if err != nil {
		os.RemoveAll(dir)
		tst.Fatalf("Open failed: %v\n", err)
	}
	return o, func() {
		o.Close()
		os.RemoveAll(dir)
	}
}

func substance(tst *testing.T, name string, prms dbf.Params) *eos.Substance {
	sp, err := eos.NewSubstance("pengRobinson", prms, eos.DefaultConstants())
	if err != nil {
		tst.Fatalf("NewSubstance failed: %v\n", err)
	}
	sp.SetName(name)
	return sp
}

func carbonDioxide(tst *testing.T) *eos.Substance {
	return substance(tst, "CO2", new(eos.Substance).GetPrms(true))
}

func nitrogen(tst *testing.T) *eos.Substance {
	return substance(tst, "N2", dbf.Params{
		&dbf.P{N: "W", V: 0.0280134},
		&dbf.P{N: "pc", V: 3.3958e6},
		&dbf.P{N: "Tc", V: 126.192},
		&dbf.P{N: "rhoc", V: 313.3},
		&dbf.P{N: "omega", V: 0.0372},
		&dbf.P{N: "maxIt", V: 80},
	})
}

func Test_catalog01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("catalog01. substance round trip")

	cat, cleanup := tempCatalog(tst)
	defer cleanup()

	co2 := carbonDioxide(tst)
	n2 := nitrogen(tst)
	for _, sp := range []*eos.Substance{co2, n2} {
		err := cat.SaveSubstance(sp)
		if err != nil {
			tst.Errorf("SaveSubstance failed: %v\n", err)
			return
		}
	}

	// overwrite
	err := cat.SaveSubstance(co2)
	if err != nil {
		tst.Errorf("SaveSubstance failed: %v\n", err)
		return
	}

	names, err := cat.Substances()
	if err != nil {
		tst.Errorf("Substances failed: %v\n", err)
		return
	}
	chk.IntAssert(len(names), 2)
	chk.String(tst, names[0], "CO2")
	chk.String(tst, names[1], "N2")

	cte := eos.DefaultConstants()
	for _, sp := range []*eos.Substance{co2, n2} {
		res, err := cat.LoadSubstance(sp.Name(), cte)
		if err != nil {
			tst.Errorf("LoadSubstance failed: %v\n", err)
			return
		}
		io.Pforan("%s: rhostd = %v\n", res.Name(), res.RhoStd())
		chk.String(tst, res.Name(), sp.Name())
		chk.String(tst, res.Kind.String(), sp.Kind.String())
		chk.Float64(tst, "W", 1e-17, res.W(), sp.W())
		chk.Float64(tst, "b", 1e-17, res.B(), sp.B())
		chk.Float64(tst, "a(300)", 1e-17, res.A(300), sp.A(300))
		chk.Float64(tst, "rhostd", 1e-17, res.RhoStd(), sp.RhoStd())
		chk.IntAssert(res.Solver.MaxIt, sp.Solver.MaxIt)
		for _, T := range []float64{250, 300, 400} {
			r1, err1 := sp.Rho(5e6, T, sp.RhoStd())
			r2, err2 := res.Rho(5e6, T, res.RhoStd())
			if err1 != nil || err2 != nil {
				tst.Errorf("Rho failed: %v, %v\n", err1, err2)
				return
			}
			chk.Float64(tst, "rho", 1e-17, r2, r1)
		}
	}
	chk.IntAssert(n2.Solver.MaxIt, 80)

	// errors
	_, err = cat.LoadSubstance("H2O", cte)
	if err == nil {
		tst.Errorf("LoadSubstance should have failed for unknown name\n")
		return
	}
	noname := carbonDioxide(tst)
	noname.SetName("")
	err = cat.SaveSubstance(noname)
	if err == nil {
		tst.Errorf("SaveSubstance should have failed for empty name\n")
		return
	}
}

func Test_catalog02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("catalog02. mixture round trip")

	cat, cleanup := tempCatalog(tst)
	defer cleanup()

	mix, err := eos.NewMixture("flue", carbonDioxide(tst), 3)
	if err != nil {
		tst.Errorf("NewMixture failed: %v\n", err)
		return
	}
	err = mix.Add(nitrogen(tst), 2)
	if err != nil {
		tst.Errorf("Add failed: %v\n", err)
		return
	}
	err = mix.SetKij(0, 1, -0.017)
	if err != nil {
		tst.Errorf("SetKij failed: %v\n", err)
		return
	}
	err = cat.SaveMixture(mix)
	if err != nil {
		tst.Errorf("SaveMixture failed: %v\n", err)
		return
	}

	// components are stored as well
	names, err := cat.Substances()
	if err != nil {
		tst.Errorf("Substances failed: %v\n", err)
		return
	}
	chk.IntAssert(len(names), 2)
	mixes, err := cat.Mixtures()
	if err != nil {
		tst.Errorf("Mixtures failed: %v\n", err)
		return
	}
	chk.IntAssert(len(mixes), 1)
	chk.String(tst, mixes[0], "flue")

	res, err := cat.LoadMixture("flue", eos.DefaultConstants())
	if err != nil {
		tst.Errorf("LoadMixture failed: %v\n", err)
		return
	}
	chk.IntAssert(res.Ncomp(), 2)
	chk.Float64(tst, "x0", 1e-15, res.MoleFraction(0), 0.6)
	chk.Float64(tst, "x1", 1e-15, res.MoleFraction(1), 0.4)
	chk.Float64(tst, "k01", 1e-17, res.Kij(0, 1), -0.017)
	chk.Float64(tst, "W", 1e-17, res.W(), mix.W())
	chk.Float64(tst, "b", 1e-17, res.B(), mix.B())
	chk.Float64(tst, "rhostd", 1e-17, res.RhoStd(), mix.RhoStd())
	for _, T := range []float64{250, 300, 500} {
		chk.Float64(tst, "a", 1e-17, res.A(T), mix.A(T))
		chk.Float64(tst, "da/dT", 1e-17, res.DaDT(T), mix.DaDT(T))
		chk.Float64(tst, "d²a/dT²", 1e-17, res.D2aDT2(T), mix.D2aDT2(T))
	}

	// deleting a component removes the mixture
	err = cat.DeleteSubstance("N2")
	if err != nil {
		tst.Errorf("DeleteSubstance failed: %v\n", err)
		return
	}
	mixes, err = cat.Mixtures()
	if err != nil {
		tst.Errorf("Mixtures failed: %v\n", err)
		return
	}
	chk.IntAssert(len(mixes), 0)
	names, err = cat.Substances()
	if err != nil {
		tst.Errorf("Substances failed: %v\n", err)
		return
	}
	chk.IntAssert(len(names), 1)
	chk.String(tst, names[0], "CO2")
	_, err = cat.LoadMixture("flue", eos.DefaultConstants())
	if err == nil {
		tst.Errorf("LoadMixture should have failed after deletion\n")
		return
	}
}
