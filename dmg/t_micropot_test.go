// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmg

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gopd/blk"
	"github.com/cpmech/gopd/field"
	"github.com/cpmech/gopd/infl"
	"github.com/cpmech/gopd/nbr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// setup allocates a damage model and a block with unit volumes and a uniform horizon
func setup(tst *testing.T, prms dbf.Params, opts *Options, x []float64, list *nbr.List, δ float64) (Model, *blk.Block) {
	man := field.NewManager()
	mdl, err := New("Micro-Potential", man, prms, opts)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	store := field.NewStore(man, list.Npoints, list.Nbonds(), mdl.FieldIds())
	store.Fill(man.Get(field.Volume), field.StepNone, 1)
	store.Fill(man.Get(field.Horizon), field.StepNone, δ)
	copy(store.Get(man.Get(field.ModelCoordinates), field.StepNone), x)
	b, err := blk.New(list, store, infl.One{}, 2)
	if err != nil {
		tst.Fatalf("blk.New failed: %v\n", err)
	}
	if err = mdl.Initialize(1, b); err != nil {
		tst.Fatalf("Initialize failed: %v\n", err)
	}
	return mdl, b
}

// pair returns two points at unit distance bonded to each other
func pair(tst *testing.T) (x []float64, list *nbr.List) {
	x = []float64{0, 0, 0, 1, 0, 0}
	list, err := nbr.New(2, []int{0, 1}, []int{1, 1, 1, 0})
	if err != nil {
		tst.Fatalf("nbr.New failed: %v\n", err)
	}
	return
}

func get(b *blk.Block, label string, step field.Step) []float64 {
	return b.Store.Get(b.Store.Man.Get(label), step)
}

// threshold checks that w = wc + ε breaks the first bond and its partner and that
// w = wc - ε does not
func threshold(tst *testing.T, mdl Model, b *blk.Block, wc float64) {
	ε := 1e-9
	w := get(b, field.MicroPotential, field.StepN)
	w[0], w[1] = wc-ε, 0
	if err := mdl.ComputeDamage(1, b); err != nil {
		tst.Fatalf("ComputeDamage failed: %v\n", err)
	}
	chk.Array(tst, "intact", 1e-17, get(b, field.BondDamage, field.StepNP1), []float64{0, 0})
	chk.Array(tst, "no damage", 1e-17, get(b, field.Damage, field.StepNP1), []float64{0, 0})
	chk.Int(tst, "nbroken", int(mdl.Broken().Count()), 0)

	w[0] = wc + ε
	if err := mdl.ComputeDamage(1, b); err != nil {
		tst.Fatalf("ComputeDamage failed: %v\n", err)
	}
	chk.Array(tst, "broken", 1e-17, get(b, field.BondDamage, field.StepNP1), []float64{1, 1})
	chk.Array(tst, "damage", 1e-17, get(b, field.Damage, field.StepNP1), []float64{1, 1})
	chk.Int(tst, "nbroken", int(mdl.Broken().Count()), 2)
}

func Test_micropot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("micropot01")

	// static criterion: wc = 4 J / π with δ = 1
	x, list := pair(tst)
	J := 0.7
	mdl, b := setup(tst, dbf.Params{&dbf.P{N: "Critical J_integral", V: J}}, nil, x, list, 1)
	threshold(tst, mdl, b, 4*J/math.Pi)

	// already broken bonds are kept
	b.Store.Accept()
	w := get(b, field.MicroPotential, field.StepN)
	w[0] = 0
	if err := mdl.ComputeDamage(1, b); err != nil {
		tst.Fatalf("ComputeDamage failed: %v\n", err)
	}
	chk.Array(tst, "kept", 1e-17, get(b, field.BondDamage, field.StepNP1), []float64{1, 1})
	chk.Int(tst, "nbroken", int(mdl.Broken().Count()), 0)

	// alternative criterion: wc = 4 J / (π δ⁴) · 3 ξ² / (2 δ²)
	δ := 2.0
	mdl, b = setup(tst, dbf.Params{
		&dbf.P{N: "Critical J_integral", V: J},
		&dbf.P{N: "Alternative MicroPotential Criterion", V: 1},
	}, nil, x, list, δ)
	threshold(tst, mdl, b, 4*J/(math.Pi*δ*δ*δ*δ)*3/(2*δ*δ))
}

func Test_micropot02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("micropot02")

	// thermal criterion: r = ζ V / π = 1/π at both ends, so wc = 4 J / π / r = 4 J
	x, list := pair(tst)
	prms := dbf.Params{&dbf.P{N: "Thermal", V: 1}}
	opts := &Options{Material: "Johnson-Cook", Jfunc: &dbf.Cte{C: 2}}
	mdl, b := setup(tst, prms, opts, x, list, 1)
	chk.Array(tst, "ratio", 1e-15, get(b, field.VolumeRatio, field.StepNone), []float64{1 / math.Pi, 1 / math.Pi})
	threshold(tst, mdl, b, 8)

	// correspondence materials skip the volume ratio correction
	opts.Material = "Johnson-Cook Correspondence"
	mdl, b = setup(tst, prms, opts, x, list, 1)
	chk.Array(tst, "ratio", 1e-17, get(b, field.VolumeRatio, field.StepNone), []float64{1, 1})
	threshold(tst, mdl, b, 8/math.Pi)
}

func Test_micropot02b(tst *testing.T) {

	//verbose()
	chk.PrintTitle("micropot02b. flag names and material dependent criteria")

	// "Temperature Dependence" and "Thermal" select the same criterion
	x, list := pair(tst)
	for _, name := range []string{"Temperature Dependence", "Thermal"} {
		prms := dbf.Params{&dbf.P{N: name, V: 1}}
		opts := &Options{Material: "Johnson-Cook", Jfunc: &dbf.Cte{C: 2}}
		mdl, b := setup(tst, prms, opts, x, list, 1)
		if !mdl.(*MicroPotential).Thermal {
			tst.Errorf("test failed: %q must select the thermal criterion\n", name)
		}
		threshold(tst, mdl, b, 8)
	}

	// the alternative criterion is ignored by correspondence materials
	J, δ := 0.7, 2.0
	prms := dbf.Params{
		&dbf.P{N: "Critical J_integral", V: J},
		&dbf.P{N: "Alternative MicroPotential Criterion", V: 1},
	}
	mdl, b := setup(tst, prms, &Options{Material: "Johnson-Cook Correspondence"}, x, list, δ)
	if mdl.(*MicroPotential).Alternative {
		tst.Errorf("test failed: correspondence materials must not use the alternative criterion\n")
	}
	threshold(tst, mdl, b, 4*J/(math.Pi*δ*δ*δ*δ))

	// but not by bond-pair ones, including Pals
	mdl, b = setup(tst, prms, &Options{Material: "Pals"}, x, list, δ)
	threshold(tst, mdl, b, 4*J/(math.Pi*δ*δ*δ*δ)*3/(2*δ*δ))
}

func Test_micropot03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("micropot03")

	// zero horizon
	x, list := pair(tst)
	mdl, b := setup(tst, dbf.Params{&dbf.P{N: "Critical J_integral", V: 1}}, nil, x, list, 0)
	if err := mdl.ComputeDamage(1, b); err == nil {
		tst.Errorf("test failed: zero horizon must fail\n")
	}

	// isolated point
	list, err := nbr.New(1, []int{0}, []int{0})
	if err != nil {
		tst.Fatalf("nbr.New failed: %v\n", err)
	}
	mdl, b = setup(tst, dbf.Params{&dbf.P{N: "Critical J_integral", V: 1}}, nil, x[:3], list, 1)
	if err = mdl.ComputeDamage(1, b); err != nil {
		tst.Fatalf("ComputeDamage failed: %v\n", err)
	}
	chk.Array(tst, "damage", 1e-17, get(b, field.Damage, field.StepNP1), []float64{0})

	// parameters
	man := field.NewManager()
	if _, err = New("Micro-Potential", man, nil, nil); err == nil {
		tst.Errorf("test failed: Critical J_integral is required\n")
	}
	if _, err = New("Unknown", man, nil, nil); err == nil {
		tst.Errorf("test failed: unknown model must fail\n")
	}
	chk.Strings(tst, "names", Names(), []string{"Micro-Potential"})
}

func Test_micropot04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("micropot04")

	// jittered 4x4x4 lattice
	rnd := rand.New(rand.NewSource(1234))
	n := 4
	var x, δ []float64
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				x = append(x, float64(i)+0.1*rnd.Float64(), float64(j)+0.1*rnd.Float64(), float64(k)+0.1*rnd.Float64())
				δ = append(δ, 1.6)
			}
		}
	}
	npoints := len(δ)
	owned := make([]int, npoints)
	for i := range owned {
		owned[i] = i
	}
	list, err := nbr.Search(x, δ, owned)
	if err != nil {
		tst.Fatalf("Search failed: %v\n", err)
	}
	wc := 4 / (math.Pi * 1.6 * 1.6 * 1.6 * 1.6)
	mdl, b := setup(tst, dbf.Params{&dbf.P{N: "Critical J_integral", V: 1}}, nil, x, list, 1.6)

	for step := 0; step < 3; step++ {

		// random micro-potentials around the critical value
		w := get(b, field.MicroPotential, field.StepN)
		for i := range w {
			w[i] = wc * (0.5 + 0.6*rnd.Float64())
		}
		prev := append([]float64{}, get(b, field.BondDamage, field.StepN)...)
		if err = mdl.ComputeDamage(1, b); err != nil {
			tst.Fatalf("ComputeDamage failed: %v\n", err)
		}
		d := append([]float64{}, get(b, field.BondDamage, field.StepNP1)...)
		dmg := append([]float64{}, get(b, field.Damage, field.StepNP1)...)
		io.Pforan("step %d: %d bonds broken\n", step, mdl.Broken().Count())

		// monotonicity and symmetry
		for bnd := range d {
			if d[bnd] < prev[bnd] {
				tst.Errorf("test failed: bond %d healed\n", bnd)
				return
			}
			if d[bnd] != d[list.Specular[bnd]] {
				tst.Errorf("test failed: bond %d and its specular bond differ\n", bnd)
				return
			}
		}
		for p, v := range dmg {
			if v < 0 || v > 1 {
				tst.Errorf("test failed: damage of point %d is out of range: %g\n", p, v)
				return
			}
		}

		// idempotence
		if err = mdl.ComputeDamage(1, b); err != nil {
			tst.Fatalf("ComputeDamage failed: %v\n", err)
		}
		chk.Array(tst, "same bond damage", 1e-17, get(b, field.BondDamage, field.StepNP1), d)
		chk.Array(tst, "same damage", 1e-17, get(b, field.Damage, field.StepNP1), dmg)
		b.Store.Accept()
	}
}
