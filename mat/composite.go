// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"github.com/cpmech/gopd/blk"
	"github.com/cpmech/gopd/field"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Composite combines two models: the force density is the sum of both contributions.
// The first model is always evaluated before the second one
type Composite struct {
	First  Model
	Second Model
	ids    []field.Id
}

// add model to factory
func init() {
	allocators["Standard Linear Solid"] = func() Model {
		return NewComposite(new(JcOrdinary), new(ViscousMaxwell))
	}
	allocators["Johnson-Cook Viscous Bond"] = func() Model {
		return NewComposite(new(JcOrdinary), new(ViscousBond))
	}
}

// NewComposite returns a new composite of two (not yet initialised) models
func NewComposite(first, second Model) *Composite {
	return &Composite{First: first, Second: second}
}

// Init initialises both models with the same parameters and joins their fields
func (o *Composite) Init(man *field.Manager, prms dbf.Params) (err error) {
	if o.First == nil || o.Second == nil {
		return chk.Err("composite model needs two models")
	}
	if err = o.First.Init(man, prms); err != nil {
		return
	}
	if err = o.Second.Init(man, prms); err != nil {
		return
	}
	o.ids = Union(o.First.FieldIds(), o.Second.FieldIds())
	return
}

// Union joins two lists of fields keeping the order of first appearance
func Union(a, b []field.Id) (ids []field.Id) {
	seen := make(map[field.Id]bool)
	for _, list := range [][]field.Id{a, b} {
		for _, id := range list {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return
}

// FieldIds returns the fields used by both models
func (o *Composite) FieldIds() []field.Id { return o.ids }

// Props returns the properties of the first model
func (o *Composite) Props() *Props { return o.First.Props() }

// Initialize initialises both models
func (o *Composite) Initialize(dt float64, b *blk.Block) (err error) {
	if err = o.First.Initialize(dt, b); err != nil {
		return
	}
	return o.Second.Initialize(dt, b)
}

// ComputeForce accumulates the force density of both models
func (o *Composite) ComputeForce(dt float64, b *blk.Block) (err error) {
	if err = o.First.ComputeForce(dt, b); err != nil {
		return
	}
	return o.Second.ComputeForce(dt, b)
}
