// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"github.com/cpmech/gosl/chk"
)

// buffers holds the values of one field
type buffers struct {
	spec Spec
	n    []float64 // accepted state (or the only state of constant fields)
	np1  []float64 // state being computed; nil for constant fields
}

// Store holds the values of a set of fields for a block of points and bonds
//  Note: the N state is only changed by Accept; NP1 is only copied from N by StartStep
type Store struct {
	Man     *Manager // fields manager
	Npoints int      // number of points (owned and ghosts)
	Nbonds  int      // number of bonds
	data    map[Id]*buffers
	ids     []Id // allocated fields, in allocation order
}

// NewStore allocates a store for the given fields
func NewStore(man *Manager, npoints, nbonds int, ids []Id) *Store {
	o := &Store{Man: man, Npoints: npoints, Nbonds: nbonds, data: make(map[Id]*buffers)}
	o.Allocate(ids...)
	return o
}

// Allocate adds fields to the store; already allocated fields are skipped
func (o *Store) Allocate(ids ...Id) {
	for _, id := range ids {
		if _, ok := o.data[id]; ok {
			continue
		}
		spec := o.Man.Spec(id)
		size := int(spec.Length) * o.Npoints
		if spec.Relation == Bond {
			size = int(spec.Length) * o.Nbonds
		}
		b := &buffers{spec: spec, n: make([]float64, size)}
		if spec.Temporal == TwoStep {
			b.np1 = make([]float64, size)
		}
		o.data[id] = b
		o.ids = append(o.ids, id)
	}
}

// Has tells whether a field is allocated
func (o *Store) Has(id Id) bool {
	_, ok := o.data[id]
	return ok
}

// Ids returns the allocated fields
func (o *Store) Ids() []Id {
	return o.ids
}

// Get returns the values of a field at a given step. The returned slice aliases the store
//  Note: panics if the field is not allocated
func (o *Store) Get(id Id, step Step) []float64 {
	b := o.buf(id)
	if b.spec.Temporal == Constant {
		return b.n
	}
	switch step {
	case StepN:
		return b.n
	case StepNP1:
		return b.np1
	}
	chk.Panic("field %q is stepped and needs step N or NP1; got %v", b.spec.Label, step)
	return nil
}

// StartStep primes a two-step field by copying N into NP1
func (o *Store) StartStep(id Id) {
	b := o.buf(id)
	if b.spec.Temporal == TwoStep {
		copy(b.np1, b.n)
	}
}

// Accept copies NP1 into N for all two-step fields
func (o *Store) Accept() {
	for _, id := range o.ids {
		b := o.data[id]
		if b.spec.Temporal == TwoStep {
			copy(b.n, b.np1)
		}
	}
}

// Zero sets all values of a field at a given step to zero
func (o *Store) Zero(id Id, step Step) {
	o.Fill(id, step, 0)
}

// Fill sets all values of a field at a given step to v
func (o *Store) Fill(id Id, step Step, v float64) {
	vals := o.Get(id, step)
	for i := range vals {
		vals[i] = v
	}
}

// FillBoth sets all values of a field at both steps to v
func (o *Store) FillBoth(id Id, v float64) {
	b := o.buf(id)
	for i := range b.n {
		b.n[i] = v
	}
	for i := range b.np1 {
		b.np1[i] = v
	}
}

func (o *Store) buf(id Id) *buffers {
	b, ok := o.data[id]
	if !ok {
		label := "?"
		if int(id) >= 0 && int(id) < o.Man.Nfields() {
			label = o.Man.Spec(id).Label
		}
		chk.Panic("field %q (id=%d) is not allocated in store", label, id)
	}
	return b
}
