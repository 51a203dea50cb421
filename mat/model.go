// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements peridynamic material models
package mat

import (
	"sort"

	"github.com/cpmech/gopd/blk"
	"github.com/cpmech/gopd/field"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines peridynamic material models
//  Init registers the fields of the model and parses its parameters
//  Initialize is called once before the first step
//  ComputeForce accumulates the force density at NP1; it does not zero it
type Model interface {
	Init(man *field.Manager, prms dbf.Params) error
	FieldIds() []field.Id
	Props() *Props
	Initialize(dt float64, b *blk.Block) error
	ComputeForce(dt float64, b *blk.Block) error
}

// Props holds properties common to all models
type Props struct {
	Name    string  // model name; e.g. "Johnson-Cook"
	Density float64 // ρ
	Horizon float64 // δ
	K       float64 // bulk modulus
	G       float64 // shear modulus
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// New returns a new initialised model
func New(name string, man *field.Manager, prms dbf.Params) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("material model %q is not available", name)
	}
	o := allocator()
	if err := o.Init(man, prms); err != nil {
		return nil, chk.Err("cannot initialise material model %q:\n%v", name, err)
	}
	o.Props().Name = name
	return o, nil
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// register registers fields given by label
func register(man *field.Manager, labels ...string) (ids []field.Id) {
	for _, l := range labels {
		ids = append(ids, man.Get(l))
	}
	return
}
