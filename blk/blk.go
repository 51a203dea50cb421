// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package blk implements a block of material points: its neighbour list, its field
// store and its influence function
package blk

import (
	"math"

	"github.com/cpmech/gopd/field"
	"github.com/cpmech/gopd/infl"
	"github.com/cpmech/gopd/kin"
	"github.com/cpmech/gopd/nbr"
	"github.com/cpmech/gosl/chk"
)

// Block holds the data shared by all kernels acting on a set of points
type Block struct {
	List    *nbr.List    // neighbour list
	Store   *field.Store // fields values
	Omega   infl.Func    // influence function
	Workers int          // number of goroutines for point loops
}

// New returns a new block. The specular bond positions are copied into the store
// if the field is allocated
func New(list *nbr.List, store *field.Store, omega infl.Func, workers int) (o *Block, err error) {
	if list.Npoints != store.Npoints || list.Nbonds() != store.Nbonds {
		return nil, chk.Err("neighbour list (npoints=%d, nbonds=%d) and store (npoints=%d, nbonds=%d) do not match",
			list.Npoints, list.Nbonds(), store.Npoints, store.Nbonds)
	}
	if omega == nil {
		omega = infl.One{}
	}
	o = &Block{List: list, Store: store, Omega: omega, Workers: workers}
	if id, ok := store.Man.Lookup(field.SpecularBondPosition); ok && store.Has(id) {
		spec := store.Get(id, field.StepNone)
		for b, s := range list.Specular {
			spec[b] = float64(s)
		}
	}
	return
}

// Kin returns the kinematics data at NP1 for a horizon δ
//  deltaT -- temperature change; nil means no thermal strains
func (o *Block) Kin(δ float64, deltaT []float64, alpha float64) *kin.Data {
	man := o.Store.Man
	return &kin.Data{
		List:       o.List,
		Omega:      o.Omega,
		Horizon:    δ,
		Workers:    o.Workers,
		X:          o.Store.Get(man.Get(field.ModelCoordinates), field.StepNone),
		Y:          o.Store.Get(man.Get(field.Coordinates), field.StepNP1),
		Vol:        o.Store.Get(man.Get(field.Volume), field.StepNone),
		M:          o.Store.Get(man.Get(field.WeightedVolume), field.StepNone),
		BondDamage: o.Store.Get(man.Get(field.BondDamage), field.StepNP1),
		DeltaT:     deltaT,
		Alpha:      alpha,
	}
}

// Scatter adds the bond forces t_b, along the deformed bonds, into the force density
// of both end points: f_p += t V_q and f_q -= t V_p
//  Note: runs serially since reactions touch other points
func (o *Block) Scatter(k *kin.Data, t, force []float64) {
	for i, p := range o.List.Owned {
		start, end := o.List.Bonds(i)
		for b := start; b < end; b++ {
			if t[b] == 0 {
				continue
			}
			q := o.List.Neighbors[b]
			n, _ := k.Direction(p, q)
			for c := 0; c < 3; c++ {
				fc := t[b] * n[c]
				force[3*p+c] += fc * k.Vol[q]
				force[3*q+c] -= fc * k.Vol[p]
			}
		}
	}
}

// CheckOwned returns an error if any value of the owned points is NaN or Inf
//  ncomp -- number of components per point
func (o *Block) CheckOwned(label string, vals []float64, ncomp int) error {
	for _, p := range o.List.Owned {
		for c := 0; c < ncomp; c++ {
			v := vals[ncomp*p+c]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return chk.Err("numerical fault: %s of point %d is %v", label, p, v)
			}
		}
	}
	return nil
}

// CheckBonds returns an error if any bond value is NaN or Inf
func (o *Block) CheckBonds(label string, vals []float64) error {
	for b, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chk.Err("numerical fault: %s of bond %d (point %d) is %v", label, b, o.List.Owner(b), v)
		}
	}
	return nil
}
