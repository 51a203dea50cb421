// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"

	"github.com/cpmech/gopd/blk"
	"github.com/cpmech/gopd/field"
	"github.com/cpmech/gopd/kin"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ViscousMaxwell implements an ordinary state-based Maxwell element acting on the
// deviatoric extension
//
//  edb_NP1 = ed_N (1 - e^(-dt/τ)) + edb_N e^(-dt/τ) + β (ed_NP1 - ed_N)
//  td      = λ α ω (ed_NP1 - edb_NP1)
//
//  where β = 1 - τ (1 - e^(-dt/τ)) / dt
type ViscousMaxwell struct {
	props  Props
	Lambda float64 // λ: weight of the Maxwell element
	Tau    float64 // τ: relaxation time

	// fields
	ids             []field.Id
	m, dil, x, y, f field.Id
	vol, bdmg, edb  field.Id

	// scratch
	t []float64 // [nbonds] bond force
}

// add model to factory
func init() {
	allocators["Viscous Maxwell"] = func() Model { return new(ViscousMaxwell) }
}

// Init initialises model
func (o *ViscousMaxwell) Init(man *field.Manager, prms dbf.Params) (err error) {
	pm := newPrmMap(prms)
	if err = pm.props(&o.props, true); err != nil {
		return
	}
	if err = pm.required("Tau b"); err != nil {
		return
	}
	o.Lambda = pm.get("Lambda_i", 1)
	o.Tau = pm["Tau b"]
	if o.Tau <= 0 {
		return chk.Err("Tau b must be positive; got %g", o.Tau)
	}
	o.ids = register(man, field.Volume, field.WeightedVolume, field.Dilatation, field.ModelCoordinates,
		field.Coordinates, field.ForceDensity, field.BondDamage, field.DeviatoricBackExtension)
	o.vol, o.m, o.dil, o.x = o.ids[0], o.ids[1], o.ids[2], o.ids[3]
	o.y, o.f, o.bdmg, o.edb = o.ids[4], o.ids[5], o.ids[6], o.ids[7]
	return
}

// FieldIds returns the fields used by the model
func (o *ViscousMaxwell) FieldIds() []field.Id { return o.ids }

// Props returns the model properties
func (o *ViscousMaxwell) Props() *Props { return &o.props }

// Initialize computes the weighted volume and zeroes the back extension
func (o *ViscousMaxwell) Initialize(dt float64, b *blk.Block) (err error) {
	k := b.Kin(o.props.Horizon, nil, 0)
	if err = k.WeightedVolume(k.M); err != nil {
		return
	}
	b.Store.FillBoth(o.edb, 0)
	o.t = make([]float64, b.List.Nbonds())
	return
}

// ComputeForce accumulates the viscous force density
func (o *ViscousMaxwell) ComputeForce(dt float64, b *blk.Block) (err error) {

	// kinematics at N and NP1
	st := b.Store
	kNP1 := b.Kin(o.props.Horizon, nil, 0)
	kN := *kNP1
	kN.Y = st.Get(o.y, field.StepN)
	if len(o.t) != b.List.Nbonds() {
		o.t = make([]float64, b.List.Nbonds())
	}
	edbN, edbNP1 := st.Get(o.edb, field.StepN), st.Get(o.edb, field.StepNP1)

	// relaxation
	decay, β := 1.0, 0.0
	if dt > 0 {
		decay = math.Exp(-dt / o.Tau)
		β = 1.0 - o.Tau*(1.0-decay)/dt
	}

	// bond forces
	err = b.List.ForEach(b.Workers, func(i int) error {
		p := b.List.Owned[i]
		start, end := b.List.Bonds(i)
		m := kNP1.M[p]
		if start == end || m == 0 {
			for c := start; c < end; c++ {
				o.t[c] = 0
				edbNP1[c] = edbN[c]
			}
			return nil
		}
		α := 15.0 * o.props.G / m
		θN, θNP1 := kN.PointDilatation(i), kNP1.PointDilatation(i)
		for c := start; c < end; c++ {
			q := b.List.Neighbors[c]
			ζ, _, eN := kN.Bond(p, q)
			_, _, eNP1 := kNP1.Bond(p, q)
			edN := eN - θN*ζ/3.0
			edNP1 := eNP1 - θNP1*ζ/3.0
			if dt > 0 {
				edbNP1[c] = edN*(1.0-decay) + edbN[c]*decay + β*(edNP1-edN)
			} else {
				edbNP1[c] = edbN[c]
			}
			ω := b.Omega.F(ζ, o.props.Horizon)
			td := o.Lambda * α * ω * (edNP1 - edbNP1[c])
			o.t[c] = (1.0 - kNP1.BondDamage[c]) * td
		}
		return nil
	})
	if err != nil {
		return
	}
	force := st.Get(o.f, field.StepNP1)
	b.Scatter(kNP1, o.t, force)
	return b.CheckOwned("Force_Density", force, 3)
}

// ViscousBond implements a bond-based dashpot: t = (1 - d) η ω (Ẏ·n) / ζ
type ViscousBond struct {
	props Props
	Eta   float64 // η: viscosity

	// fields
	ids             []field.Id
	vol, x, y, v, f field.Id
	bdmg, dmg       field.Id

	// scratch
	t []float64 // [nbonds] bond force
}

// add model to factory
func init() {
	allocators["Viscous Bond Based"] = func() Model { return new(ViscousBond) }
}

// Init initialises model
func (o *ViscousBond) Init(man *field.Manager, prms dbf.Params) (err error) {
	pm := newPrmMap(prms)
	if err = pm.props(&o.props, false); err != nil {
		return
	}
	if err = pm.required("Viscosity"); err != nil {
		return
	}
	o.Eta = pm["Viscosity"]
	if o.Eta < 0 {
		return chk.Err("Viscosity must not be negative; got %g", o.Eta)
	}
	o.ids = register(man, field.Volume, field.Damage, field.ModelCoordinates, field.Coordinates,
		field.Velocity, field.ForceDensity, field.BondDamage)
	o.vol, o.dmg, o.x, o.y = o.ids[0], o.ids[1], o.ids[2], o.ids[3]
	o.v, o.f, o.bdmg = o.ids[4], o.ids[5], o.ids[6]
	return
}

// FieldIds returns the fields used by the model
func (o *ViscousBond) FieldIds() []field.Id { return o.ids }

// Props returns the model properties
func (o *ViscousBond) Props() *Props { return &o.props }

// Initialize allocates scratch data
func (o *ViscousBond) Initialize(dt float64, b *blk.Block) (err error) {
	o.t = make([]float64, b.List.Nbonds())
	return
}

// ComputeForce accumulates the viscous force density
func (o *ViscousBond) ComputeForce(dt float64, b *blk.Block) (err error) {
	st := b.Store
	k := &kin.Data{
		List:       b.List,
		Omega:      b.Omega,
		Horizon:    o.props.Horizon,
		X:          st.Get(o.x, field.StepNone),
		Y:          st.Get(o.y, field.StepNP1),
		Vol:        st.Get(o.vol, field.StepNone),
		BondDamage: st.Get(o.bdmg, field.StepNP1),
	}
	vel := st.Get(o.v, field.StepNP1)
	if len(o.t) != b.List.Nbonds() {
		o.t = make([]float64, b.List.Nbonds())
	}
	err = b.List.ForEach(b.Workers, func(i int) error {
		p := b.List.Owned[i]
		start, end := b.List.Bonds(i)
		for c := start; c < end; c++ {
			q := b.List.Neighbors[c]
			ζ, _, _ := k.Bond(p, q)
			n, _ := k.Direction(p, q)
			if ζ == 0 {
				o.t[c] = 0
				continue
			}
			rate := 0.0
			for j := 0; j < 3; j++ {
				rate += (vel[3*q+j] - vel[3*p+j]) * n[j]
			}
			ω := b.Omega.F(ζ, o.props.Horizon)
			o.t[c] = (1.0 - k.BondDamage[c]) * o.Eta * ω * rate / ζ
		}
		return nil
	})
	if err != nil {
		return
	}
	force := st.Get(o.f, field.StepNP1)
	b.Scatter(k, o.t, force)
	return b.CheckOwned("Force_Density", force, 3)
}
