// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dmg

import (
	"math"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/cpmech/gopd/blk"
	"github.com/cpmech/gopd/field"
	"github.com/cpmech/gopd/kin"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// MicroPotential breaks bonds whose micro-potential exceeds a critical value
// derived from the critical J integral:
//  wc = 4 J / (π δ⁴)
// Alternative criterion, for materials computing bond forces (not correspondence ones):
//  wc = 4 J / (π δ⁴) · 3 ξ² / (2 δ²)
// Thermal criterion, with T̄ the mean temperature change of the bond end points:
//  wc = 4 J(T̄) / (π δ⁴) / r̄
// where r̄ is the mean volume ratio of the end points (1 for correspondence materials)
type MicroPotential struct {

	// parameters
	J           float64 // critical J integral at zero temperature change
	Alternative bool    // use the alternative criterion; always false for correspondence materials
	Thermal     bool    // use the temperature dependent criterion
	NoRatio     bool    // skip the volume ratio correction

	// internal
	opts   *Options
	ids    []field.Id
	broken *bitset.BitSet
}

// add model to factory
func init() {
	allocators["Micro-Potential"] = func() Model { return new(MicroPotential) }
}

// Init parses the parameters and registers the fields
func (o *MicroPotential) Init(man *field.Manager, prms dbf.Params, opts *Options) (err error) {
	o.opts = opts
	var hasJ bool
	for _, p := range prms {
		switch p.N {
		case "Critical J_integral":
			o.J, hasJ = p.V, true
		case "Alternative MicroPotential Criterion":
			o.Alternative = p.V > 0
		case "Temperature Dependence", "Thermal":
			o.Thermal = p.V > 0
		}
	}
	if opts.Jfunc != nil {
		o.J = opts.Jfunc.F(0, nil)
	} else if !hasJ {
		return chk.Err("parameter %q is required", "Critical J_integral")
	}
	if o.J < 0 {
		return chk.Err("Critical J_integral must not be negative; got %g", o.J)
	}
	o.NoRatio = volumeRatioExempt(opts.Material)
	if correspondence(opts.Material) {
		o.Alternative = false
	}
	for _, l := range []string{field.ModelCoordinates, field.Volume, field.Horizon, field.Damage,
		field.BondDamage, field.MicroPotential, field.SpecularBondPosition} {
		o.ids = append(o.ids, man.Get(l))
	}
	if o.Thermal {
		o.ids = append(o.ids, man.Get(field.TemperatureChange), man.Get(field.VolumeRatio))
	}
	return
}

// correspondence tells whether a material works with stress tensors instead of bond forces
func correspondence(material string) bool {
	return strings.Contains(material, "Correspondence")
}

// volumeRatioExempt tells whether a material carries full horizons in its energy
func volumeRatioExempt(material string) bool {
	return correspondence(material) || strings.Contains(material, "Pals")
}

// FieldIds returns the fields used by the model
func (o *MicroPotential) FieldIds() []field.Id { return o.ids }

// Broken returns the bonds broken by the last call to ComputeDamage
func (o *MicroPotential) Broken() *bitset.BitSet { return o.broken }

// Initialize zeroes damage and computes the volume ratio of thermal criteria
func (o *MicroPotential) Initialize(dt float64, b *blk.Block) error {
	s := b.Store
	s.Zero(s.Man.Get(field.Damage), field.StepNP1)
	s.Zero(s.Man.Get(field.BondDamage), field.StepNP1)
	o.broken = bitset.New(uint(s.Nbonds))
	if !o.Thermal {
		return nil
	}
	ratio := s.Get(s.Man.Get(field.VolumeRatio), field.StepNone)
	if o.NoRatio {
		for i := range ratio {
			ratio[i] = 1
		}
		return nil
	}
	k := &kin.Data{
		List:    b.List,
		Workers: b.Workers,
		X:       s.Get(s.Man.Get(field.ModelCoordinates), field.StepNone),
		Vol:     s.Get(s.Man.Get(field.Volume), field.StepNone),
	}
	return k.VolumeRatio(s.Get(s.Man.Get(field.Horizon), field.StepNone), ratio)
}

// ComputeDamage updates bond and point damage
func (o *MicroPotential) ComputeDamage(dt float64, b *blk.Block) (err error) {

	// fields
	s := b.Store
	man := s.Man
	idBond := man.Get(field.BondDamage)
	s.StartStep(idBond)
	x := s.Get(man.Get(field.ModelCoordinates), field.StepNone)
	horizon := s.Get(man.Get(field.Horizon), field.StepNone)
	dN := s.Get(idBond, field.StepN)
	dNP1 := s.Get(idBond, field.StepNP1)
	w := s.Get(man.Get(field.MicroPotential), field.StepN)
	var dT, ratio []float64
	if o.Thermal {
		dT = s.Get(man.Get(field.TemperatureChange), field.StepNP1)
		ratio = s.Get(man.Get(field.VolumeRatio), field.StepNone)
	}

	// decisions: each point only writes its own bonds
	list := b.List
	err = list.ForEach(b.Workers, func(i int) error {
		p := list.Owned[i]
		δ := horizon[p]
		if δ == 0 {
			return chk.Err("numerical fault: zero horizon at point %d", p)
		}
		c := 4.0 / (math.Pi * δ * δ * δ * δ)
		start, end := list.Bonds(i)
		for bnd := start; bnd < end; bnd++ {
			if dN[bnd] == 1 {
				continue
			}
			q := list.Neighbors[bnd]
			wc := c * o.J
			if o.Thermal {
				wc = c * o.jintegral((dT[p]+dT[q])/2) / o.ratio(ratio, p, q)
			} else if o.Alternative {
				ξ := distance(x, p, q)
				wc *= 1.5 / (δ * δ) * ξ * ξ
			}
			if w[bnd] > wc {
				dNP1[bnd] = 1
			}
		}
		return nil
	})
	if err != nil {
		return
	}

	// breaking is symmetric
	if o.broken == nil {
		o.broken = bitset.New(uint(len(dNP1)))
	}
	o.broken.ClearAll()
	for bnd := range dNP1 {
		if dNP1[bnd] == 1 && dN[bnd] < 1 {
			o.broken.Set(uint(bnd))
		}
	}
	var partners []uint
	for bnd, ok := o.broken.NextSet(0); ok; bnd, ok = o.broken.NextSet(bnd + 1) {
		if spec := list.Specular[bnd]; spec >= 0 && dNP1[spec] < 1 {
			dNP1[spec] = 1
			partners = append(partners, uint(spec))
		}
	}
	for _, bnd := range partners {
		o.broken.Set(bnd)
	}

	// point damage
	dmg := s.Get(man.Get(field.Damage), field.StepNP1)
	return list.ForEach(b.Workers, func(i int) error {
		p := list.Owned[i]
		start, end := list.Bonds(i)
		if end == start {
			dmg[p] = 0
			return nil
		}
		sum := 0.0
		for bnd := start; bnd < end; bnd++ {
			sum += dNP1[bnd]
		}
		dmg[p] = sum / float64(end-start)
		return nil
	})
}

// jintegral returns the critical J integral at a temperature change
func (o *MicroPotential) jintegral(T float64) float64 {
	if o.opts.Jfunc == nil {
		return o.J
	}
	return o.opts.Jfunc.F(T, nil)
}

// ratio returns the volume ratio correction of a bond
func (o *MicroPotential) ratio(r []float64, p, q int) float64 {
	if o.NoRatio {
		return 1
	}
	return (r[p] + r[q]) / 2
}

// distance returns the reference length of bond p→q
func distance(x []float64, p, q int) float64 {
	dx, dy, dz := x[3*q]-x[3*p], x[3*q+1]-x[3*p+1], x[3*q+2]-x[3*p+2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
