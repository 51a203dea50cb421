// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field implements the registry of named fields and the double-buffered
// store holding their values
package field

import (
	"github.com/cpmech/gosl/chk"
)

// Relation tells whether a field lives on points or on bonds
type Relation int

const (
	Point Relation = iota // one entry (or tuple) per point
	Bond                  // one entry per bond in neighbour traversal order
)

// Length is the number of components per entry
type Length int

const (
	Scalar Length = 1
	Vector Length = 3
	Tensor Length = 9 // full 3x3 tensor stored row-wise
)

// Temporal tells whether a field has one state or two (N and NP1)
type Temporal int

const (
	Constant Temporal = iota // single buffer, written at initialisation
	TwoStep                  // buffers at N (accepted) and NP1 (in progress)
)

// Step selects the buffer of a two-step field
type Step int

const (
	StepNone Step = iota // constant fields
	StepN                // last accepted step
	StepNP1              // step being computed
)

// String returns the name of the step
func (s Step) String() string {
	switch s {
	case StepN:
		return "N"
	case StepNP1:
		return "NP1"
	}
	return "NONE"
}

// Spec describes a field
type Spec struct {
	Relation Relation
	Length   Length
	Temporal Temporal
	Label    string
}

// Id identifies a field within a Manager
type Id int

// Manager holds all registered fields
type Manager struct {
	specs []Spec
	ids   map[string]Id
}

// NewManager returns a new field manager
func NewManager() *Manager {
	return &Manager{ids: make(map[string]Id)}
}

// Register registers a field and returns its id. Registering the same label twice
// returns the same id provided the specs match
func (o *Manager) Register(spec Spec) (id Id, err error) {
	if spec.Label == "" {
		return -1, chk.Err("field label must not be empty")
	}
	if id, ok := o.ids[spec.Label]; ok {
		if o.specs[id] != spec {
			return -1, chk.Err("field %q is already registered with a different spec", spec.Label)
		}
		return id, nil
	}
	id = Id(len(o.specs))
	o.specs = append(o.specs, spec)
	o.ids[spec.Label] = id
	return
}

// Get returns the id of a standard or registered field. Standard fields are
// registered on first use
//  Note: panics if the label is unknown
func (o *Manager) Get(label string) Id {
	if id, ok := o.ids[label]; ok {
		return id
	}
	spec, ok := standard[label]
	if !ok {
		chk.Panic("field %q is not registered", label)
	}
	spec.Label = label
	id, err := o.Register(spec)
	if err != nil {
		chk.Panic("%v", err)
	}
	return id
}

// Lookup returns the id of a registered field
func (o *Manager) Lookup(label string) (id Id, ok bool) {
	id, ok = o.ids[label]
	return
}

// Spec returns the spec of a field
func (o *Manager) Spec(id Id) Spec {
	return o.specs[id]
}

// Nfields returns the number of registered fields
func (o *Manager) Nfields() int {
	return len(o.specs)
}
