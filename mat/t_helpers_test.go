// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
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

// lshape returns the points 0:(0,0,0), 1:(1,0,0) and 2:(0,1,0) where 0 is bonded to
// 1 and 2, with unit volumes
func lshape() (x []float64, flat []int) {
	x = []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}
	flat = []int{2, 1, 2, 1, 0, 1, 0}
	return
}

// setup allocates a model and its block where all points are owned
func setup(tst *testing.T, name string, prms dbf.Params, x []float64, flat []int, workers int) (Model, *blk.Block) {
	n := len(x) / 3
	owned := make([]int, n)
	for i := range owned {
		owned[i] = i
	}
	return setupOwned(tst, name, prms, x, owned, flat, workers)
}

// setupOwned allocates a model and its block; points not in owned are ghosts
func setupOwned(tst *testing.T, name string, prms dbf.Params, x []float64, owned, flat []int, workers int) (Model, *blk.Block) {
	man := field.NewManager()
	mdl, err := New(name, man, prms)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	n := len(x) / 3
	list, err := nbr.New(n, owned, flat)
	if err != nil {
		tst.Fatalf("nbr.New failed: %v\n", err)
	}
	store := field.NewStore(man, n, list.Nbonds(), mdl.FieldIds())
	if id := man.Get(field.Volume); store.Has(id) {
		store.Fill(id, field.StepNone, 1)
	}
	if id := man.Get(field.ModelCoordinates); store.Has(id) {
		copy(store.Get(id, field.StepNone), x)
	}
	if id := man.Get(field.Coordinates); store.Has(id) {
		copy(store.Get(id, field.StepN), x)
		copy(store.Get(id, field.StepNP1), x)
	}
	b, err := blk.New(list, store, infl.One{}, workers)
	if err != nil {
		tst.Fatalf("blk.New failed: %v\n", err)
	}
	if err = mdl.Initialize(1, b); err != nil {
		tst.Fatalf("Initialize failed: %v\n", err)
	}
	return mdl, b
}

// get returns the values of a field
func get(b *blk.Block, label string, step field.Step) []float64 {
	return b.Store.Get(b.Store.Man.Get(label), step)
}

// move sets the NP1 coordinates of point p
func move(b *blk.Block, p int, xp, yp, zp float64) {
	y := get(b, field.Coordinates, field.StepNP1)
	y[3*p], y[3*p+1], y[3*p+2] = xp, yp, zp
}

// compute zeroes the force density and computes the forces
func compute(tst *testing.T, mdl Model, b *blk.Block, dt float64) {
	b.Store.Zero(b.Store.Man.Get(field.ForceDensity), field.StepNP1)
	if err := mdl.ComputeForce(dt, b); err != nil {
		tst.Fatalf("ComputeForce failed: %v\n", err)
	}
}
