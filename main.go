// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/realgas/inp"
	"github.com/cpmech/realgas/mdl/thermo"
	"github.com/cpmech/realgas/store"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/gases", ".gas", true)
	name := io.ArgToString(1, "CO2")
	p := io.ArgToFloat(2, 5e6)
	Tmin := io.ArgToFloat(3, 250)
	Tmax := io.ArgToFloat(4, 500)
	npts := io.ArgToInt(5, 11)
	catalog := io.ArgToString(6, "")
	verbose := io.ArgToBool(7, true)

	// message
	if verbose {
		io.PfWhite("\nRealgas -- Cubic equations of state and real gas properties\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"gas database", "fnamepath", fnamepath,
			"gas or mixture", "name", name,
			"pressure", "p", p,
			"min temperature", "Tmin", Tmin,
			"max temperature", "Tmax", Tmax,
			"number of points", "npts", npts,
			"catalog to save to", "catalog", catalog,
			"show messages", "verbose", verbose,
		))
	}
	if npts < 2 {
		chk.Panic("number of points must be at least 2. npts=%d", npts)
	}

	// database
	dir, fn := filepath.Split(fnamepath)
	gdb, err := inp.ReadGasDb(dir, fn)
	if err != nil {
		chk.Panic("cannot read gas database:\n%v", err)
	}

	// model
	mdl, err := gdb.NewThermo(name)
	if err != nil {
		chk.Panic("cannot allocate real gas model:\n%v", err)
	}

	// path
	T := utl.LinSpace(Tmin, Tmax, npts)
	P := make([]float64, npts)
	for i := range P {
		P[i] = p
	}

	// run
	var drv thermo.Driver
	err = drv.Init(mdl)
	if err != nil {
		chk.Panic("%v", err)
	}
	err = drv.Run(P, T)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	err = drv.Write(os.Stdout)
	if err != nil {
		chk.Panic("cannot write results:\n%v", err)
	}

	// save parameters
	if catalog == "" {
		return
	}
	cat, err := store.Open(catalog)
	if err != nil {
		chk.Panic("%v", err)
	}
	defer cat.Close()
	if g := gdb.Get(name); g != nil {
		err = cat.SaveSubstance(g.Eos)
	} else {
		err = cat.SaveMixture(gdb.GetMixture(name).Eos)
	}
	if err != nil {
		chk.Panic("cannot save %q to catalog:\n%v", name, err)
	}
	if verbose {
		io.Pfgreen("%q saved to %q\n", name, catalog)
	}
}
