// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"

	"github.com/cpmech/gopd/blk"
	"github.com/cpmech/gopd/field"
	"github.com/cpmech/gopd/kin"
	"github.com/cpmech/gopd/msolid"
	"github.com/cpmech/gosl/fun/dbf"
)

// JcOrdinary implements the ordinary state-based Johnson-Cook elastic-plastic model
type JcOrdinary struct {
	props Props
	Jc    msolid.JohnsonCook

	// options
	Alpha       float64 // thermal expansion coefficient
	Beta        float64 // Taylor-Quinney coefficient; read but not applied to the cumulative heat
	Thermal     bool    // apply thermal strains
	TempDep     bool    // temperature dependent flow stress
	Specular    bool    // compute bond micro-potentials
	ShearCorrec bool    // apply shear correction factor

	// fields
	ids                                       []field.Id
	vol, dmg, m, dil, x, y, v, f, bdmg, scf   field.Id
	dT, vm, edp, eqps, td, heat, spec, micpot field.Id

	// scratch
	t []float64 // [nbonds] bond force
}

// add model to factory
func init() {
	allocators["Johnson-Cook"] = func() Model { return new(JcOrdinary) }
}

// Init initialises model
func (o *JcOrdinary) Init(man *field.Manager, prms dbf.Params) (err error) {

	// parameters
	pm := newPrmMap(prms)
	if err = pm.props(&o.props, true); err != nil {
		return
	}
	if err = o.Jc.Init(prms, msolid.BondForm); err != nil {
		return
	}
	o.Beta = pm.get("Beta", 1)
	o.Thermal = pm.has("Thermal Expansion Coefficient")
	o.Alpha = pm.get("Thermal Expansion Coefficient", 0)
	o.TempDep = pm.flag("Temperature Dependence")
	o.Specular = pm.flag("Use Specular Bond Position")
	o.ShearCorrec = pm.flag("Apply Shear Correction Factor")

	// fields
	o.ids = register(man, field.Volume, field.Damage, field.WeightedVolume, field.Dilatation,
		field.ModelCoordinates, field.Coordinates, field.Velocity, field.ForceDensity,
		field.BondDamage, field.SurfaceCorrectionFactor)
	o.vol, o.dmg, o.m, o.dil = o.ids[0], o.ids[1], o.ids[2], o.ids[3]
	o.x, o.y, o.v, o.f = o.ids[4], o.ids[5], o.ids[6], o.ids[7]
	o.bdmg, o.scf = o.ids[8], o.ids[9]
	o.dT = -1
	if o.TempDep || o.Thermal {
		o.dT = man.Get(field.TemperatureChange)
		o.ids = append(o.ids, o.dT)
	}
	if o.Specular {
		o.spec, o.micpot = man.Get(field.SpecularBondPosition), man.Get(field.MicroPotential)
		o.ids = append(o.ids, o.spec, o.micpot)
	}
	ids := register(man, field.VonMisesStress, field.DeviatoricPlasticExtension,
		field.EquivalentPlasticStrain, field.DeviatoricForceDensity, field.CumulativeAdiabaticHeat)
	o.vm, o.edp, o.eqps, o.td, o.heat = ids[0], ids[1], ids[2], ids[3], ids[4]
	o.ids = append(o.ids, ids...)
	return
}

// FieldIds returns the fields used by the model
func (o *JcOrdinary) FieldIds() []field.Id { return o.ids }

// Props returns the model properties
func (o *JcOrdinary) Props() *Props { return &o.props }

// Initialize computes the weighted volume and the shear correction factor
func (o *JcOrdinary) Initialize(dt float64, b *blk.Block) (err error) {
	k := b.Kin(o.props.Horizon, nil, 0)
	if err = k.WeightedVolume(k.M); err != nil {
		return
	}
	b.Store.Fill(o.scf, field.StepNone, 1)
	if o.ShearCorrec {
		err = k.ShearCorrectionFactor(b.Store.Get(o.scf, field.StepNone))
	}
	o.t = make([]float64, b.List.Nbonds())
	return
}

// ComputeForce computes the dilatation and accumulates the internal force density
func (o *JcOrdinary) ComputeForce(dt float64, b *blk.Block) (err error) {

	// data
	st := b.Store
	var dTNP1 []float64
	if o.dT >= 0 {
		dTNP1 = st.Get(o.dT, field.StepNP1)
	}
	var thermal []float64
	if o.Thermal {
		thermal = dTNP1
	}
	k := b.Kin(o.props.Horizon, thermal, o.Alpha)
	s := &jcStep{
		o:       o,
		k:       k,
		dt:      dt,
		θN:      st.Get(o.dil, field.StepN),
		θ:       st.Get(o.dil, field.StepNP1),
		scf:     st.Get(o.scf, field.StepNone),
		vm:      st.Get(o.vm, field.StepNP1),
		edpN:    st.Get(o.edp, field.StepN),
		edpNP1:  st.Get(o.edp, field.StepNP1),
		eqpsN:   st.Get(o.eqps, field.StepN),
		eqpsNP1: st.Get(o.eqps, field.StepNP1),
		tdN:     st.Get(o.td, field.StepN),
		tdNP1:   st.Get(o.td, field.StepNP1),
		dT:      dTNP1,
	}
	if o.Specular {
		s.wN, s.wNP1 = st.Get(o.micpot, field.StepN), st.Get(o.micpot, field.StepNP1)
	}
	if len(o.t) != b.List.Nbonds() {
		o.t = make([]float64, b.List.Nbonds())
	}
	st.Zero(o.vm, field.StepNP1)

	// dilatation
	if err = k.Dilatation(s.θ); err != nil {
		return
	}

	// bond forces
	if err = b.List.ForEach(b.Workers, s.point); err != nil {
		return
	}
	force := st.Get(o.f, field.StepNP1)
	b.Scatter(k, o.t, force)

	// adiabatic heat: cumulative plastic work per unit volume
	heatN, heatNP1 := st.Get(o.heat, field.StepN), st.Get(o.heat, field.StepNP1)
	for _, p := range b.List.Owned {
		heatNP1[p] = heatN[p] + s.vm[p]*(s.eqpsNP1[p]-s.eqpsN[p])
	}

	// check
	if err = b.CheckOwned("Force_Density", force, 3); err != nil {
		return
	}
	if err = b.CheckOwned("Von_Mises_Stress", s.vm, 1); err != nil {
		return
	}
	if o.Specular {
		err = b.CheckBonds("Micro-Potential", s.wNP1)
	}
	return
}

// jcStep holds the data of one step
type jcStep struct {
	o                    *JcOrdinary
	k                    *kin.Data
	dt                   float64
	θN, θ, scf, vm       []float64
	edpN, edpNP1         []float64
	eqpsN, eqpsNP1       []float64
	tdN, tdNP1, wN, wNP1 []float64
	dT                   []float64
}

// temperature returns the temperature of point p
func (s *jcStep) temperature(p int) float64 {
	if s.o.TempDep && s.dT != nil {
		return s.o.Jc.Tref + s.dT[p]
	}
	return s.o.Jc.Tref
}

// point performs the bond-pair return mapping of the i-th owned point
func (s *jcStep) point(i int) error {

	// point data
	o, k := s.o, s.k
	p := k.List.Owned[i]
	start, end := k.List.Bonds(i)
	m := k.M[p]
	if start == end || m == 0 {
		for b := start; b < end; b++ {
			o.t[b] = 0
			s.edpNP1[b] = s.edpN[b]
			s.tdNP1[b] = 0
		}
		s.eqpsNP1[p] = s.eqpsN[p]
		return nil
	}
	α := 15.0 * o.props.G / m
	T := s.temperature(p)
	δ := o.props.Horizon

	// trial deviatoric force
	trial := func(b int) (q int, ζ, ω, tr float64) {
		q = k.List.Neighbors[b]
		ζ, _, e := k.Bond(p, q)
		ω = k.Omega.F(ζ, δ)
		ed := e - s.θ[p]*ζ/3.0
		tr = α * ω * (ed - s.edpN[b])
		return
	}

	// plastic strain rate estimate
	σY0 := o.Jc.FlowStress(s.eqpsN[p], 0, T)
	sumW, sumP := 0.0, 0.0
	for b := start; b < end; b++ {
		q, ζ, ω, tr := trial(b)
		if ω <= 0 || ζ == 0 {
			continue
		}
		sumW += ω * k.Vol[q]
		sumP += ω * k.Vol[q] * math.Max(math.Abs(tr)-σY0, 0) / (α * ω) / ζ
	}
	rate := 0.0
	if sumW > 0 && s.dt > 0 {
		rate = sumP / sumW / s.dt
	}
	σY := o.Jc.FlowStress(s.eqpsN[p], rate, T)

	// return mapping
	c := 3.0 * o.props.K * s.θ[p] / m
	sumVM, sumEps := 0.0, 0.0
	for b := start; b < end; b++ {
		q, ζ, ω, tr := trial(b)
		if ζ == 0 {
			o.t[b] = 0
			s.edpNP1[b] = s.edpN[b]
			s.tdNP1[b] = 0
			continue
		}
		td, Δedp := msolid.BondReturn(tr, α*ω, σY)
		s.edpNP1[b] = s.edpN[b] + Δedp
		s.tdNP1[b] = td
		sumVM += ω * k.Vol[q] * td * td
		sumEps += ω * k.Vol[q] * math.Abs(Δedp) / ζ
		d := k.BondDamage[b]
		o.t[b] = (1.0 - d) * s.scf[p] * (c*ω*ζ + td)

		// micro-potential
		if s.wNP1 != nil {
			weN := o.elasticEnergy(s.θN[p], s.tdN[b], m, α, ω, ζ)
			weNP1 := o.elasticEnergy(s.θ[p], td, m, α, ω, ζ)
			s.wNP1[b] = s.wN[b] - weN + weNP1 + math.Abs(td)*math.Abs(Δedp)
		}
	}

	// point results
	if sumW > 0 {
		s.vm[p] = math.Sqrt(sumVM / sumW)
		s.eqpsNP1[p] = s.eqpsN[p] + sumEps/sumW
	} else {
		s.vm[p] = 0
		s.eqpsNP1[p] = s.eqpsN[p]
	}
	return nil
}

// elasticEnergy returns the elastic energy density stored in a bond
//  W = K θ² ω ζ² / (2m) + td² / (2 α ω)
func (o *JcOrdinary) elasticEnergy(θ, td, m, α, ω, ζ float64) (w float64) {
	w = o.props.K * θ * θ * ω * ζ * ζ / (2.0 * m)
	if ω > 0 {
		w += td * td / (2.0 * α * ω)
	}
	return
}
