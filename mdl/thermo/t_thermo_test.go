// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermo

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/realgas/mdl/eos"
)

// idealGasNames holds the names of all ideal gas models
var idealGasNames = []string{"consthc", "nasa"}

// relTol converts a relative tolerance into the absolute one used by chk.DerivScaSca
func relTol(tol, ana float64) float64 {
	return tol * math.Abs(ana)
}

// stalledEos wraps a substance whose density solver always fails
//  Note: RhoIdeal is served by the wrapped substance
type stalledEos struct {
	*eos.Substance
}

// Rho returns a density error
func (o stalledEos) Rho(p, T, rho0 float64) (float64, error) {
	return 0, &eos.DensityError{P: p, T: T, MaxIt: o.Solver.MaxIt}
}

// newCO2 returns the real gas model of carbon dioxide with Peng-Robinson EOS
func newCO2(tst *testing.T, ideal string) *Thermo {
	cte := eos.DefaultConstants()
	sp, err := eos.New("pengRobinson")
	if err != nil {
		tst.Errorf("eos.New failed: %v\n", err)
		return nil
	}
	err = sp.Init(sp.GetPrms(true), cte)
	if err != nil {
		tst.Errorf("eos.Init failed: %v\n", err)
		return nil
	}
	ig, err := New(ideal)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return nil
	}
	err = ig.Init(ig.GetPrms(true), cte)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return nil
	}
	var th Thermo
	err = th.Init(nil, sp, ig, cte)
	if err != nil {
		tst.Errorf("Thermo.Init failed: %v\n", err)
		return nil
	}
	return &th
}

func Test_ideal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ideal01")

	cte := eos.DefaultConstants()
	for _, name := range idealGasNames {
		ig, err := NewIdealGas(name, new(Nasa).GetPrms(true), cte)
		if name == "consthc" {
			if err == nil {
				tst.Errorf("consthc must not accept nasa parameters\n")
				return
			}
			ig, err = NewIdealGas(name, new(ConstCp).GetPrms(true), cte)
		}
		if err != nil {
			tst.Errorf("NewIdealGas failed: %v\n", err)
			return
		}
		io.Pforan("%s: cp0(298.15) = %v\n", name, ig.Cp0(cte.Tstd))
		for _, T := range utl.LinSpace(250, 900, 6) {
			chk.DerivScaSca(tst, "cp0 = dh0/dT  ", relTol(1e-9, ig.Cp0(T)), ig.Cp0(T), T, 1e-2, chk.Verbose, ig.H0)
			chk.DerivScaSca(tst, "cp0/T = ds0/dT", relTol(1e-9, ig.Cp0(T)/T), ig.Cp0(T)/T, T, 1e-2, chk.Verbose, ig.S0)
			chk.Float64(tst, "cv0", 1e-13, ig.Cv0(T), ig.Cp0(T)-cte.R)
			chk.Float64(tst, "e0", 1e-9, ig.E0(T), ig.H0(T)-cte.R*T)
		}
	}

	// NASA polynomial of carbon dioxide
	nasa := new(Nasa)
	err := nasa.Init(nasa.GetPrms(true), cte)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "cp0(298.15)", 1e-10, nasa.Cp0(298.15), 37.13517530705175)
	chk.Float64(tst, "h0(298.15)", 1e-7, nasa.H0(298.15), -393507.7576631588)
	chk.Float64(tst, "s0(298.15)", 1e-10, nasa.S0(298.15), 213.7862667358871)

	// constant heat capacity
	cc := new(ConstCp)
	err = cc.Init(cc.GetPrms(true), cte)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "h0(Tstd)", 1e-17, cc.H0(cte.Tstd), -393510)
	chk.Float64(tst, "s0(Tstd)", 1e-17, cc.S0(cte.Tstd), 213.785)
}

func Test_ideal02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ideal02. errors")

	cte := eos.DefaultConstants()
	_, err := New("shomate")
	if err == nil {
		tst.Errorf("New should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	prms := new(Nasa).GetPrms(true)
	_, err = NewIdealGas("nasa", prms[:6], cte)
	if err == nil {
		tst.Errorf("Init should have failed due to missing a7\n")
		return
	}
	io.Pforan("%v\n", err)

	_, err = NewIdealGas("nasa", append(prms, &dbf.P{N: "a8", V: 1}), cte)
	if err == nil {
		tst.Errorf("Init should have failed due to a8\n")
		return
	}
	io.Pforan("%v\n", err)

	_, err = NewIdealGas("consthc", dbf.Params{&dbf.P{N: "cp", V: 5}}, cte)
	if err == nil {
		tst.Errorf("Init should have failed due to cp < R\n")
		return
	}
	io.Pforan("%v\n", err)
}

func Test_thermo01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thermo01. standard state")

	cpStd := map[string]float64{"consthc": 37.35716734475045, "nasa": 37.35734265180221}

	for _, name := range idealGasNames {
		th := newCO2(tst, name)
		if th == nil {
			return
		}
		cte := th.Constants()
		rho := th.RhoStd()
		io.Pforan("%s: cp(std)=%v h(std)=%v\n", name, th.Cp(rho, cte.Tstd), th.H(rho, cte.Tstd))
		chk.Float64(tst, "e(std)", 1e-9, th.E(rho, cte.Tstd), th.Ideal.E0(cte.Tstd))
		chk.Float64(tst, "s(std)", 1e-12, th.S(rho, cte.Tstd), th.Ideal.S0(cte.Tstd))
		chk.Float64(tst, "h(std)", 1e-9, th.H(rho, cte.Tstd), th.Ideal.E0(cte.Tstd)+th.Eos.P(rho, cte.Tstd)*th.W()/rho)
		chk.Float64(tst, "cp(std)", 1e-12, th.Cp(rho, cte.Tstd), th.cpStd)
		chk.Float64(tst, "cp(std)", 1e-6, th.cpStd, cpStd[name])
	}
}

func Test_thermo02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thermo02. departure consistency")

	for _, name := range idealGasNames {
		th := newCO2(tst, name)
		if th == nil {
			return
		}
		cte := th.Constants()
		eStd := th.EDeparture(th.RhoStd(), cte.Tstd)
		for _, T := range []float64{250, 320, 500} {
			for _, rho := range []float64{0.5, 20, 150, 600} {

				// h - h0 = [T ∫∂p/∂T dv - ∫p dv + p v - R T] - [T ∫∂p/∂T dv - ∫p dv]std
				hDep := th.H(rho, T) - th.Ideal.H0(T)
				chk.Float64(tst, io.Sf("h-h0 @ %g,%g", rho, T), 1e-8, hDep, th.HDeparture(rho, T)-eStd)

				// s - s0 = departure - departure(std)
				sDep := th.S(rho, T) - th.Ideal.S0(T)
				chk.Float64(tst, io.Sf("s-s0 @ %g,%g", rho, T), 1e-10, sDep, th.SDeparture(rho, T)-th.sDepStd())
			}

			// isothermal change: only ∫p dv and p v contribute besides T ∫∂p/∂T dv
			r1, r2 := 20.0, 150.0
			Δh := (th.H(r1, T) - th.Ideal.H0(T)) - (th.H(r2, T) - th.Ideal.H0(T))
			v1, v2 := th.W()/r1, th.W()/r2
			Δint := T*(th.Eos.IntDpDTdv(r1, T)-th.Eos.IntDpDTdv(r2, T)) - (th.Eos.IntPdv(r1, T) - th.Eos.IntPdv(r2, T)) +
				th.Eos.P(r1, T)*v1 - th.Eos.P(r2, T)*v2
			chk.Float64(tst, "Δ(h-h0)", 1e-8, Δh, Δint)

			// ideal gas limit
			rho := 1e-6
			chk.Float64(tst, "h-h0 → -e_dep(std)", 1e-3, th.H(rho, T)-th.Ideal.H0(T), -eStd)
			chk.Float64(tst, "cp → cp0", 1e-6, th.Cp(rho, T), th.Ideal.Cp0(T))
			chk.Float64(tst, "cv → cv0", 1e-6, th.Cv(rho, T), th.Ideal.Cv0(T))
		}
	}
}

func Test_thermo03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thermo03. heat capacities")

	for _, name := range idealGasNames {
		th := newCO2(tst, name)
		if th == nil {
			return
		}

		// isobars
		var drv Driver
		err := drv.Init(th)
		if err != nil {
			tst.Errorf("Init failed: %v\n", err)
			return
		}
		drv.TstD = tst
		for _, p := range []float64{1e5, 2e6, 5e6} {
			T := utl.LinSpace(320, 600, 8)
			P := make([]float64, len(T))
			for i := range P {
				P[i] = p
			}
			err = drv.Run(P, T)
			if err != nil {
				tst.Errorf("Run failed: %v\n", err)
				return
			}
			for _, s := range drv.Res {
				chk.DerivScaSca(tst, "cv/T = ∂s/∂T|v", relTol(1e-6, s.Cv/s.T), s.Cv/s.T, s.T, 1e-2, chk.Verbose, func(x float64) float64 {
					return th.S(s.Rho, x)
				})
				chk.DerivScaSca(tst, "cp/T = ∂s/∂T|p", relTol(1e-6, s.Cp/s.T), s.Cp/s.T, s.T, 1e-2, chk.Verbose, func(x float64) float64 {
					rho, _ := th.Eos.Rho(s.P, x, s.Rho)
					return th.S(rho, x)
				})
				if s.Gamma <= 1 {
					tst.Errorf("gamma must be greater than one. gamma=%g\n", s.Gamma)
					return
				}
			}
		}
	}
}

func Test_thermo04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thermo04. limited cp")

	th := newCO2(tst, "nasa")
	if th == nil {
		return
	}
	cpMax := th.CpMaxRatio * th.cpStd
	io.Pforan("cpMax = %v\n", cpMax)

	// near the critical point
	for _, c := range []struct{ rho, T float64 }{{400, 304.2}, {417.7, 304.13}, {420, 304.13}} {
		cpnl := th.CpNonLimited(c.rho, c.T)
		io.Pforan("rho=%g T=%g cp(non-limited)=%v\n", c.rho, c.T, cpnl)
		chk.Float64(tst, "cp", 1e-17, th.Cp(c.rho, c.T), cpMax)
	}

	// away from the critical point
	rho := 91.1921883606608
	chk.Float64(tst, "cp(5e6,350)", 1e-6, th.Cp(rho, 350), 51.22635099582715)
	chk.Float64(tst, "cp(5e6,350)", 1e-17, th.Cp(rho, 350), th.CpNonLimited(rho, 350))

	// smaller limit
	var th2 Thermo
	err := th2.Init(dbf.Params{&dbf.P{N: "cpMaxRatio", V: 1.2}}, th.Eos, th.Ideal, th.Constants())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "cp limited", 1e-12, th2.Cp(rho, 350), 1.2*th.cpStd)

	// errors
	err = th2.Init(dbf.Params{&dbf.P{N: "cpMaxRatio", V: 0.5}}, th.Eos, th.Ideal, th.Constants())
	if err == nil {
		tst.Errorf("Init should have failed due to cpMaxRatio < 1\n")
		return
	}
	io.Pforan("%v\n", err)
	err = th2.Init(nil, nil, th.Ideal, th.Constants())
	if err == nil {
		tst.Errorf("Init should have failed due to missing EOS\n")
		return
	}
	io.Pforan("%v\n", err)
}

func Test_thermo05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thermo05. temperature from enthalpy and internal energy")

	for _, name := range idealGasNames {
		th := newCO2(tst, name)
		if th == nil {
			return
		}
		for _, st := range []struct{ p, T float64 }{{5e6, 350}, {1e5, 250}, {2e6, 600}} {
			rho, err := th.Eos.RhoIdeal(st.p, st.T)
			if err != nil {
				tst.Errorf("RhoIdeal failed: %v\n", err)
				return
			}
			h := th.H(rho, st.T)
			e := th.E(rho, st.T)

			T, rhoHp, err := th.THp(h, st.p, 300)
			if err != nil {
				tst.Errorf("THp failed: %v\n", err)
				return
			}
			io.Pforan("%s: T(h,p) = %v\n", name, T)
			chk.Float64(tst, "T(h,p)", 1e-6, T, st.T)
			chk.Float64(tst, "rho(h,p)", 1e-6, rhoHp, rho)

			T, err = th.TErho(e, rho, 300)
			if err != nil {
				tst.Errorf("TErho failed: %v\n", err)
				return
			}
			io.Pforan("%s: T(e,rho) = %v\n", name, T)
			chk.Float64(tst, "T(e,rho)", 1e-6, T, st.T)
		}

		// not enough iterations
		th.MaxIt = 1
		_, _, err := th.THp(th.H(100, 400), 5e6, 300)
		if err == nil {
			tst.Errorf("THp should have failed\n")
			return
		}
		io.Pforan("%v\n", err)
	}
}

func Test_thermo06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thermo06. sound speed and ∂ρ/∂h")

	th := newCO2(tst, "nasa")
	if th == nil {
		return
	}
	R, W := th.Constants().R, th.W()

	// ideal gas limit
	T := 300.0
	rho := 1e-6
	c0 := math.Sqrt(th.Ideal.Cp0(T) / th.Ideal.Cv0(T) * R * T / W)
	chk.Float64(tst, "c → c0", 1e-6, th.SoundSpeed(rho, T)/c0, 1)

	// dense gas
	p := 5e6
	rho, err := th.Eos.RhoIdeal(p, T+50)
	if err != nil {
		tst.Errorf("RhoIdeal failed: %v\n", err)
		return
	}
	T = T + 50
	io.Pforan("c = %v\n", th.SoundSpeed(rho, T))
	rhoAtT := func(x float64) float64 {
		r, _ := th.Eos.Rho(p, x, rho)
		return r
	}
	dρdT := num.DerivCen5(T, 1e-2, rhoAtT)
	chk.Float64(tst, "∂ρ/∂h|p", 1e-6, th.DrhoDh(rho, T)/(dρdT/th.Cp(rho, T)), 1)

	// c² = ∂p/∂ρ|s
	s := th.S(rho, T)
	pAtRho := func(x float64) float64 {
		Tx := T
		for i := 0; i < 50; i++ {
			ΔT := (th.S(x, Tx) - s) / (th.Cv(x, Tx) / Tx)
			Tx -= ΔT
			if math.Abs(ΔT) < 1e-12*Tx {
				break
			}
		}
		return th.Eos.P(x, Tx)
	}
	c := th.SoundSpeed(rho, T)
	chk.Float64(tst, "c² = ∂p/∂ρ|s", 1e-6, num.DerivCen5(rho, 1e-3*rho, pAtRho)/(c*c), 1)
}

func Test_thermo07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thermo07. mixture")

	// equations of state
	cte := eos.DefaultConstants()
	co2, err := eos.NewSubstance("pengRobinson", new(eos.Substance).GetPrms(true), cte)
	if err != nil {
		tst.Errorf("NewSubstance failed: %v\n", err)
		return
	}
	n2, err := eos.NewSubstance("pengRobinson", dbf.Params{
		&dbf.P{N: "W", V: 0.0280134},
		&dbf.P{N: "pc", V: 3.3958e6},
		&dbf.P{N: "Tc", V: 126.192},
		&dbf.P{N: "rhoc", V: 313.3},
		&dbf.P{N: "omega", V: 0.0372},
	}, cte)
	if err != nil {
		tst.Errorf("NewSubstance failed: %v\n", err)
		return
	}
	mix, err := eos.NewMixture("CO2-N2", co2, 3)
	if err != nil {
		tst.Errorf("NewMixture failed: %v\n", err)
		return
	}
	err = mix.Add(n2, 2)
	if err != nil {
		tst.Errorf("Add failed: %v\n", err)
		return
	}

	// ideal gases
	igCO2, err := NewIdealGas("nasa", new(Nasa).GetPrms(true), cte)
	if err != nil {
		tst.Errorf("NewIdealGas failed: %v\n", err)
		return
	}
	igN2, err := NewIdealGas("nasa", dbf.Params{
		&dbf.P{N: "a1", V: 3.53100528},
		&dbf.P{N: "a2", V: -1.23660988e-4},
		&dbf.P{N: "a3", V: -5.02999433e-7},
		&dbf.P{N: "a4", V: 2.43530612e-9},
		&dbf.P{N: "a5", V: -1.40881235e-12},
		&dbf.P{N: "a6", V: -1.04697628e3},
		&dbf.P{N: "a7", V: 2.96747038},
	}, cte)
	if err != nil {
		tst.Errorf("NewIdealGas failed: %v\n", err)
		return
	}
	ig, err := NewIdealMix([]IdealGas{igCO2, igN2}, []float64{3, 2}, cte)
	if err != nil {
		tst.Errorf("NewIdealMix failed: %v\n", err)
		return
	}
	chk.Float64(tst, "cp0", 1e-12, ig.Cp0(400), 0.6*igCO2.Cp0(400)+0.4*igN2.Cp0(400))
	chk.Float64(tst, "s0", 1e-12, ig.S0(400), 0.6*igCO2.S0(400)+0.4*igN2.S0(400))

	// real gas
	var th Thermo
	err = th.Init(nil, mix, ig, cte)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	var drv Driver
	err = drv.Init(&th)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	drv.TstD = tst
	T := utl.LinSpace(250, 500, 6)
	P := []float64{1e5, 1e6, 5e6, 1e7, 5e6, 1e6}
	err = drv.Run(P, T)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if chk.Verbose {
		drv.Write(os.Stdout)
	}
	for _, s := range drv.Res {
		chk.Float64(tst, "h-h0", 1e-8, th.H(s.Rho, s.T)-ig.H0(s.T), th.HDeparture(s.Rho, s.T)-th.eDepStd())
		Tinv, _, err := th.THp(s.H, s.P, 300)
		if err != nil {
			tst.Errorf("THp failed: %v\n", err)
			return
		}
		chk.Float64(tst, "T(h,p)", 1e-6, Tinv, s.T)
	}

	// errors
	_, err = NewIdealMix([]IdealGas{igCO2}, []float64{1, 2}, cte)
	if err == nil {
		tst.Errorf("NewIdealMix should have failed\n")
		return
	}
	_, err = NewIdealMix([]IdealGas{igCO2, igN2}, []float64{-1, 2}, cte)
	if err == nil {
		tst.Errorf("NewIdealMix should have failed\n")
		return
	}
}

func Test_thermo08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thermo08. driver and density errors")

	co2 := newCO2(tst, "nasa")
	if co2 == nil {
		return
	}
	var th Thermo
	err := th.Init(nil, stalledEos{co2.Eos.(*eos.Substance)}, co2.Ideal, co2.Constants())
	if err != nil {
		tst.Errorf("Thermo.Init failed: %v\n", err)
		return
	}

	// properties only
	var drv Driver
	err = drv.Init(&th)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	err = drv.Run([]float64{5e6}, []float64{350})
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	chk.IntAssert(len(drv.Res), 1)

	// checking cp needs the density along the isobar
	drv.TstD = tst
	err = drv.Run([]float64{5e6}, []float64{350})
	if err == nil {
		tst.Errorf("Run should have failed when the density around T cannot be computed\n")
		return
	}
	var derr *eos.DensityError
	if !errors.As(err, &derr) {
		tst.Errorf("error should be a density error. %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)
	chk.Float64(tst, "p of failed state", 1e-17, derr.P, 5e6)
}

func Test_ideal03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ideal03. NASA-7 integration constants")

	// cp0 = R; a6 and a7 only shift h0 and s0
	cte := eos.DefaultConstants()
	R := cte.R
	ig, err := NewIdealGas("nasa", dbf.Params{
		&dbf.P{N: "a1", V: 1},
		&dbf.P{N: "a2", V: 0},
		&dbf.P{N: "a3", V: 0},
		&dbf.P{N: "a4", V: 0},
		&dbf.P{N: "a5", V: 0},
		&dbf.P{N: "a6", V: -100},
		&dbf.P{N: "a7", V: 3},
	}, cte)
	if err != nil {
		tst.Errorf("NewIdealGas failed: %v\n", err)
		return
	}
	for _, T := range []float64{200, 298.15, 1000} {
		chk.Float64(tst, "cp0", 1e-13, ig.Cp0(T), R)
		chk.Float64(tst, "cv0", 1e-13, ig.Cv0(T), 0)
		chk.Float64(tst, "h0", 1e-9, ig.H0(T), R*(T-100))
		chk.Float64(tst, "e0", 1e-9, ig.E0(T), -100*R)
		chk.Float64(tst, "s0", 1e-12, ig.S0(T), R*(math.Log(T)+3))
	}
}
