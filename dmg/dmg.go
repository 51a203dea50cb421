// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dmg implements bond damage models
package dmg

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/cpmech/gopd/blk"
	"github.com/cpmech/gopd/field"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines damage models
//  ComputeDamage updates Bond_Damage and Damage at NP1 from the state at N
type Model interface {
	Init(man *field.Manager, prms dbf.Params, opts *Options) error
	FieldIds() []field.Id
	Initialize(dt float64, b *blk.Block) error
	ComputeDamage(dt float64, b *blk.Block) error
	Broken() *bitset.BitSet // bonds broken by the last call to ComputeDamage
}

// Options holds data given by the material rather than by the damage parameters
type Options struct {
	Material string // name of the material model
	Jfunc    dbf.T  // critical J integral as a function of the temperature change; may be nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// New returns a new initialised damage model
func New(name string, man *field.Manager, prms dbf.Params, opts *Options) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("damage model %q is not available", name)
	}
	if opts == nil {
		opts = new(Options)
	}
	o := allocator()
	if err := o.Init(man, prms, opts); err != nil {
		return nil, chk.Err("cannot initialise damage model %q:\n%v", name, err)
	}
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
