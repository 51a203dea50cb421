// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"golang.org/x/sync/errgroup"
)

func jcPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "Constant A", V: 100},
		&dbf.P{N: "Constant B", V: 50},
		&dbf.P{N: "Constant N", V: 0.5},
		&dbf.P{N: "Constant C", V: 0.1},
		&dbf.P{N: "Constant M", V: 1},
		&dbf.P{N: "Melting Temperature", V: 1000},
		&dbf.P{N: "Reference Temperature", V: 300},
		&dbf.P{N: "Reference Strain Rate", V: 2},
	}
}

func Test_jc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jc01")

	var o JohnsonCook
	err := o.Init(jcPrms(), BondForm)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// reference state
	chk.Float64(tst, "σY(0,0,Tref)", 1e-13, o.FlowStress(0, 0, 300), 100)

	// hardening
	chk.Float64(tst, "σY(0.04)", 1e-13, o.FlowStress(0.04, 0, 300), 100+50*0.2)

	// rate below reference does not soften
	chk.Float64(tst, "σY(rate<rate0)", 1e-13, o.FlowStress(0, 1, 300), 100)
	chk.Float64(tst, "σY(rate)", 1e-13, o.FlowStress(0, 2*math.E, 300), 100*1.1)

	// thermal softening
	chk.Float64(tst, "σY(T<Tref)", 1e-13, o.FlowStress(0, 0, 200), 100)
	chk.Float64(tst, "σY(T)", 1e-13, o.FlowStress(0, 0, 650), 50)
	chk.Float64(tst, "σY(Tmelt)", 1e-17, o.FlowStress(0.3, 10, 1000), 0)
	chk.Float64(tst, "σY(T>Tmelt)", 1e-17, o.FlowStress(0.3, 10, 5000), 0)

	// derivatives
	εp, rate, T := 0.04, 7.0, 500.0
	σY, dε, dr := o.FlowStressDerivs(εp, rate, T)
	h := 1e-6
	chk.Float64(tst, "dσY/dεp", 1e-5, dε, (o.FlowStress(εp+h, rate, T)-o.FlowStress(εp-h, rate, T))/(2*h))
	chk.Float64(tst, "dσY/drate", 1e-6, dr, (o.FlowStress(εp, rate+h, T)-o.FlowStress(εp, rate-h, T))/(2*h))
	io.Pforan("σY = %v\n", σY)
}

func Test_jc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jc02")

	// degenerate bond form
	var o JohnsonCook
	err := o.Init(nil, BondForm)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A", 1e-17, o.A, 1e200)
	chk.Float64(tst, "M", 1e-17, o.M, 1e100)
	chk.Float64(tst, "Tmelt", 1e-17, o.Tmelt, 1e100)
	chk.Float64(tst, "Tref", 1e-17, o.Tref, 0)
	chk.Float64(tst, "rate0", 1e-17, o.Rate0, 1)
	chk.Float64(tst, "σY", 1e-17, o.FlowStress(1, 1e6, 0), 1e200)

	// degenerate tensor form needs temperatures
	err = o.Init(nil, TensorForm)
	if err == nil {
		tst.Errorf("test failed: temperatures are required in tensor form\n")
		return
	}
	err = o.Init(dbf.Params{
		&dbf.P{N: "Melting Temperature", V: 1000},
		&dbf.P{N: "Reference Temperature", V: 300},
	}, TensorForm)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A", 1e-17, o.A, 1e100)
	chk.Float64(tst, "M", 1e-17, o.M, 0)
	chk.Float64(tst, "σY(Tref)", 1e-17, o.FlowStress(0, 0, 300), 1e100)

	// partial sets
	err = o.Init(dbf.Params{&dbf.P{N: "Constant B", V: 1}}, BondForm)
	if err == nil {
		tst.Errorf("test failed: Constant B without Constant A must fail\n")
		return
	}
	err = o.Init(dbf.Params{&dbf.P{N: "Constant A", V: 1}}, BondForm)
	if err == nil {
		tst.Errorf("test failed: Constant A alone must fail\n")
		return
	}
	prms := jcPrms()
	prms[5].V = 300
	err = o.Init(prms, BondForm)
	if err == nil {
		tst.Errorf("test failed: Tmelt == Tref must fail\n")
	}
}

func Test_jc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jc03")

	// elastic
	td, Δedp := BondReturn(-50, 10, 100)
	chk.Float64(tst, "td", 1e-17, td, -50)
	chk.Float64(tst, "Δedp", 1e-17, Δedp, 0)

	// plastic
	td, Δedp = BondReturn(375, 7500, 100)
	chk.Float64(tst, "td", 1e-17, td, 100)
	chk.Float64(tst, "Δedp", 1e-17, Δedp, 275.0/7500.0)
	td, Δedp = BondReturn(-375, 7500, 100)
	chk.Float64(tst, "td", 1e-17, td, -100)
	chk.Float64(tst, "Δedp", 1e-17, Δedp, -275.0/7500.0)

	// zero stiffness
	td, Δedp = BondReturn(0, 0, 0)
	chk.Float64(tst, "td", 1e-17, td, 0)
	chk.Float64(tst, "Δedp", 1e-17, Δedp, 0)
}

func Test_jc04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jc04")

	prms := jcPrms()
	prms = append(prms, &dbf.P{N: "Bulk Modulus", V: 2000}, &dbf.P{N: "Shear Modulus", V: 1000})
	var o JcTensor
	err := o.Init(prms)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// elastic shear
	s := o.InitIntVars(make([]float64, Nsig))
	D := make([]float64, Nsig)
	D[3] = 1e-3 * math.Sqrt2
	dt := 1.0
	err = o.Update(s, D, dt, 300)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("σ = %v\n", s.Sig)
	if s.Loading {
		tst.Errorf("test failed: step should be elastic\n")
	}
	chk.Float64(tst, "σxy", 1e-12, s.Sig[3]/math.Sqrt2, 2*1000*1e-3)

	// plastic shear
	D[3] = 0.1 * math.Sqrt2
	err = o.Update(s, D, dt, 300)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("σ = %v  εp = %v\n", s.Sig, s.Alp[0])
	if !s.Loading {
		tst.Errorf("test failed: step should be elastoplastic\n")
	}
	σY := o.FlowStress(s.Alp[0], s.Dgam/dt, 300)
	chk.Float64(tst, "q == σY", 1e-9, Q(s.Sig), σY)
	chk.Float64(tst, "εp == Δε", 1e-17, s.Alp[0], s.Dgam)
	if s.Dgam <= 0 {
		tst.Errorf("test failed: Δεp must be positive\n")
	}

	// volumetric part stays elastic
	D = []float64{1e-3, 1e-3, 1e-3, 0, 0, 0}
	s2 := o.InitIntVars(make([]float64, Nsig))
	err = o.Update(s2, D, dt, 300)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Array(tst, "σ(vol)", 1e-12, s2.Sig, []float64{6, 6, 6, 0, 0, 0})

	// molten material loses its deviator
	s3 := o.InitIntVars(make([]float64, Nsig))
	D = []float64{0, 0, 0, 1e-3 * math.Sqrt2, 0, 0}
	err = o.Update(s3, D, dt, 1200)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "q(molten)", 1e-9, Q(s3.Sig), 0)
}

func Test_jc05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jc05. shared model updated from many goroutines")

	prms := jcPrms()
	prms = append(prms, &dbf.P{N: "Bulk Modulus", V: 2000}, &dbf.P{N: "Shear Modulus", V: 1000})
	var o JcTensor
	err := o.Init(prms)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// rates ranging from elastic to plastic with different directions
	npts, nsteps := 64, 5
	rates := make([][]float64, npts)
	for p := 0; p < npts; p++ {
		a := 1e-3 * float64(p+1)
		rates[p] = []float64{a, -a / 2, -a / 3, a * math.Sqrt2, -a / 4, float64(p%3) * a / 5}
	}
	run := func(concurrent bool) (res []*State) {
		res = make([]*State, npts)
		for p := range res {
			res[p] = o.InitIntVars(make([]float64, Nsig))
		}
		for step := 0; step < nsteps; step++ {
			if !concurrent {
				for p := range res {
					if e := o.Update(res[p], rates[p], 1, 300); e != nil {
						tst.Errorf("test failed: %v\n", e)
					}
				}
				continue
			}
			var g errgroup.Group
			for p := range res {
				p := p
				g.Go(func() error { return o.Update(res[p], rates[p], 1, 300) })
			}
			if e := g.Wait(); e != nil {
				tst.Errorf("test failed: %v\n", e)
			}
		}
		return
	}
	serial, parallel := run(false), run(true)
	nplastic := 0
	for p := 0; p < npts; p++ {
		chk.Array(tst, io.Sf("σ%d", p), 1e-17, parallel[p].Sig, serial[p].Sig)
		chk.Float64(tst, io.Sf("εp%d", p), 1e-17, parallel[p].Alp[0], serial[p].Alp[0])
		if serial[p].Alp[0] > 0 {
			nplastic++
		}
	}
	if nplastic == 0 {
		tst.Errorf("test failed: some points should yield\n")
	}
}
