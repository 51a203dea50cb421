// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"

	"github.com/cpmech/gopd/blk"
	"github.com/cpmech/gopd/field"
	"github.com/cpmech/gopd/msolid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// JcCorrespondence implements the Johnson-Cook model in correspondence form. It updates
// the unrotated Cauchy stress from the unrotated rate of deformation; bond forces are
// assembled from the stress elsewhere
type JcCorrespondence struct {
	props Props
	Mdl   msolid.JcTensor

	// options
	Alpha    float64 // thermal expansion coefficient
	Thermal  bool    // apply thermal strains
	Specular bool    // compute bond micro-potentials

	// fields
	ids                          []field.Id
	rod, sig, vm, eqps, bdmg, dT field.Id
	spec, micpot, sed            field.Id
}

// add model to factory
func init() {
	allocators["Johnson-Cook Correspondence"] = func() Model { return new(JcCorrespondence) }
}

// Init initialises model
func (o *JcCorrespondence) Init(man *field.Manager, prms dbf.Params) (err error) {

	// parameters
	pm := newPrmMap(prms)
	if err = pm.props(&o.props, true); err != nil {
		return
	}
	if err = o.Mdl.Init(prms); err != nil {
		return
	}
	o.Thermal = pm.has("Thermal Expansion Coefficient")
	o.Alpha = pm.get("Thermal Expansion Coefficient", 0)
	o.Specular = pm.flag("Use Specular Bond Position")

	// fields
	o.ids = register(man, field.RateOfDeformation, field.CauchyStress, field.VonMisesStress,
		field.EquivalentPlasticStrain, field.BondDamage, field.TemperatureChange, field.SpecularBondPosition)
	o.rod, o.sig, o.vm, o.eqps, o.bdmg, o.dT, o.spec = o.ids[0], o.ids[1], o.ids[2], o.ids[3], o.ids[4], o.ids[5], o.ids[6]
	if o.Specular {
		o.micpot, o.sed = man.Get(field.MicroPotential), man.Get(field.StrainEnergyDensity)
		o.ids = append(o.ids, o.micpot, o.sed)
	}
	return
}

// FieldIds returns the fields used by the model
func (o *JcCorrespondence) FieldIds() []field.Id { return o.ids }

// Props returns the model properties
func (o *JcCorrespondence) Props() *Props { return &o.props }

// Initialize zeroes the state variables
func (o *JcCorrespondence) Initialize(dt float64, b *blk.Block) (err error) {
	st := b.Store
	for _, id := range []field.Id{o.sig, o.vm, o.eqps, o.bdmg, o.dT} {
		st.FillBoth(id, 0)
	}
	if o.Specular {
		st.FillBoth(o.micpot, 0)
		st.FillBoth(o.sed, 0)
	}
	return
}

// ComputeForce updates the Cauchy stress, the von Mises stress and the equivalent
// plastic strain; with specular bonds, it also computes the bond micro-potentials
func (o *JcCorrespondence) ComputeForce(dt float64, b *blk.Block) (err error) {

	// data
	st := b.Store
	rod := st.Get(o.rod, field.StepNone)
	sigN, sigNP1 := st.Get(o.sig, field.StepN), st.Get(o.sig, field.StepNP1)
	eqpsN, eqpsNP1 := st.Get(o.eqps, field.StepN), st.Get(o.eqps, field.StepNP1)
	dTN, dTNP1 := st.Get(o.dT, field.StepN), st.Get(o.dT, field.StepNP1)
	vm := st.Get(o.vm, field.StepNP1)
	var sedN, sedNP1 []float64
	if o.Specular {
		sedN, sedNP1 = st.Get(o.sed, field.StepN), st.Get(o.sed, field.StepNP1)
	}

	// stress update
	err = b.List.ForEach(b.Workers, func(i int) error {
		p := b.List.Owned[i]
		D := make([]float64, msolid.Nsig)
		msolid.FullToMandel(D, rod[9*p:9*p+9])
		if o.Thermal && dt > 0 {
			rate := o.Alpha * (dTNP1[p] - dTN[p]) / dt
			for k := 0; k < msolid.Nsig; k++ {
				D[k] -= rate * msolid.Im[k]
			}
		}
		s := msolid.NewState(msolid.Nsig, 1)
		msolid.FullToMandel(s.Sig, sigN[9*p:9*p+9])
		s.Alp[0] = eqpsN[p]
		σN := s.GetCopy().Sig
		T := o.Mdl.Tref + dTNP1[p]
		if e := o.Mdl.Update(s, D, dt, T); e != nil {
			return chk.Err("point %d: %v", p, e)
		}
		msolid.MandelToFull(sigNP1[9*p:9*p+9], s.Sig)
		eqpsNP1[p] = s.Alp[0]
		vm[p] = msolid.Q(s.Sig)
		if sedNP1 != nil {
			w := 0.0
			for k := 0; k < msolid.Nsig; k++ {
				w += (σN[k] + s.Sig[k]) * D[k]
			}
			sedNP1[p] = sedN[p] + dt*w/2.0
		}
		return nil
	})
	if err != nil {
		return
	}

	// micro-potentials
	if o.Specular {
		o.microPotentials(b, sedNP1)
	}

	// check
	if err = b.CheckOwned("Unrotated_Cauchy_Stress", sigNP1, 9); err != nil {
		return
	}
	return b.CheckOwned("Von_Mises_Stress", vm, 1)
}

// microPotentials sets w = (W_p + W_q)/V_H on every intact bond and on its specular
// partner, where V_H = 4πδ³/3. Broken bonds keep their last accepted value
//  Note: W_q of a ghost neighbour q is read from the NP1 slot of the store, which this
//        block never writes; the caller must synchronise ghosts before ComputeForce
func (o *JcCorrespondence) microPotentials(b *blk.Block, sed []float64) {
	st := b.Store
	st.StartStep(o.micpot)
	w := st.Get(o.micpot, field.StepNP1)
	bdmg := st.Get(o.bdmg, field.StepNP1)
	δ := o.props.Horizon
	vh := 4.0 * math.Pi * δ * δ * δ / 3.0
	for i, p := range b.List.Owned {
		start, end := b.List.Bonds(i)
		for c := start; c < end; c++ {
			if bdmg[c] >= 1 {
				continue
			}
			q := b.List.Neighbors[c]
			w[c] = (sed[p] + sed[q]) / vh
			if s := b.List.Specular[c]; s >= 0 {
				w[s] = w[c]
			}
		}
	}
}
