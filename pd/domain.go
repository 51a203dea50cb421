// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"github.com/cpmech/gopd/blk"
	"github.com/cpmech/gopd/dmg"
	"github.com/cpmech/gopd/field"
	"github.com/cpmech/gopd/infl"
	"github.com/cpmech/gopd/inp"
	"github.com/cpmech/gopd/mat"
	"github.com/cpmech/gopd/nbr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Domain holds the points of one region, their material and damage models and their fields
type Domain struct {

	// input
	Index int             // index of region
	Sim   *inp.Simulation // input data
	Reg   *inp.Region     // region data
	Mat   *inp.Material   // material data

	// models
	Model  mat.Model // material model
	Damage dmg.Model // damage model; nil if bonds never break

	// data
	Man *field.Manager // fields registry
	Blk *blk.Block     // neighbour list and fields

	// statistics
	Nbroken int // number of bonds broken so far
}

// driverFields are the fields set by the prescribed motion or written to output files
var driverFields = []string{
	field.ModelCoordinates, field.Coordinates, field.Velocity, field.Volume, field.Horizon,
	field.ForceDensity, field.Damage, field.BondDamage,
}

// NewDomains returns domains
func NewDomains(sim *inp.Simulation) (doms []*Domain, err error) {
	omega, err := infl.New(sim.Data.Influence)
	if err != nil {
		return
	}
	doms = make([]*Domain, len(sim.Regions))
	for i, reg := range sim.Regions {
		doms[i], err = newDomain(i, sim, reg, omega)
		if err != nil {
			return nil, chk.Err("cannot allocate domain of region %d:\n%v", i, err)
		}
	}
	return
}

// newDomain allocates models, finds neighbours and allocates fields
func newDomain(index int, sim *inp.Simulation, reg *inp.Region, omega infl.Func) (o *Domain, err error) {

	// models
	o = &Domain{Index: index, Sim: sim, Reg: reg, Man: field.NewManager()}
	if o.Mat, err = sim.MatParams.Get(reg.Mat); err != nil {
		return
	}
	if o.Model, err = mat.New(o.Mat.Model, o.Man, o.Mat.Prms); err != nil {
		return
	}
	ids := o.Model.FieldIds()
	if o.Mat.Damage != "" {
		opts := &dmg.Options{Material: o.Mat.Model, Jfunc: o.Mat.Jfunc}
		if o.Damage, err = dmg.New(o.Mat.Damage, o.Man, o.Mat.Dmgprms, opts); err != nil {
			return
		}
		ids = mat.Union(ids, o.Damage.FieldIds())
	}
	for _, l := range driverFields {
		ids = mat.Union(ids, []field.Id{o.Man.Get(l)})
	}

	// neighbours
	x, vol := reg.Cloud.Coords()
	npoints := len(vol)
	horizon := make([]float64, npoints)
	utl.Fill(horizon, o.Model.Props().Horizon)
	list, err := nbr.Search(x, horizon, utl.IntRange(npoints))
	if err != nil {
		return
	}

	// fields
	s := field.NewStore(o.Man, npoints, list.Nbonds(), ids)
	copy(s.Get(o.Man.Get(field.Volume), field.StepNone), vol)
	copy(s.Get(o.Man.Get(field.Horizon), field.StepNone), horizon)
	copy(s.Get(o.Man.Get(field.ModelCoordinates), field.StepNone), x)
	idy := o.Man.Get(field.Coordinates)
	copy(s.Get(idy, field.StepN), x)
	copy(s.Get(idy, field.StepNP1), x)
	o.Blk, err = blk.New(list, s, omega, sim.Data.Workers)
	return
}

// Initialize initialises models and accepts the initial state
func (o *Domain) Initialize(dt float64) (err error) {
	if err = o.Model.Initialize(dt, o.Blk); err != nil {
		return
	}
	if o.Damage != nil {
		if err = o.Damage.Initialize(dt, o.Blk); err != nil {
			return
		}
	}
	o.Prescribe(0)
	o.Blk.Store.Accept()
	return
}

// Prescribe sets the NP1 coordinates, velocities, rates of deformation and temperature
// changes from the prescribed motion at time t
//  y = X + g(t) H X ; v = dg/dt H X ; D = dg/dt sym(H)
func (o *Domain) Prescribe(t float64) {
	s := o.Blk.Store
	mot := &o.Sim.Motion
	g, dg := mot.Gfunc.F(t, nil), mot.Gfunc.G(t, nil)
	H := mot.Grad
	x := s.Get(o.Man.Get(field.ModelCoordinates), field.StepNone)
	y := s.Get(o.Man.Get(field.Coordinates), field.StepNP1)
	v := s.Get(o.Man.Get(field.Velocity), field.StepNP1)
	for p := 0; p < s.Npoints; p++ {
		for i := 0; i < 3; i++ {
			hx := H[3*i]*x[3*p] + H[3*i+1]*x[3*p+1] + H[3*i+2]*x[3*p+2]
			y[3*p+i] = x[3*p+i] + g*hx
			v[3*p+i] = dg * hx
		}
	}
	if id, ok := o.Man.Lookup(field.RateOfDeformation); ok && s.Has(id) {
		D := s.Get(id, field.StepNone)
		for p := 0; p < s.Npoints; p++ {
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					D[9*p+3*i+j] = dg * (H[3*i+j] + H[3*j+i]) / 2
				}
			}
		}
	}
	if id, ok := o.Man.Lookup(field.TemperatureChange); ok && s.Has(id) && mot.Tfunc != nil {
		s.Fill(id, field.StepNP1, mot.Tfunc.F(t, nil))
	}
}

// Step computes the state at NP1: prescribed motion, damage and force. The state is not
// accepted; see Accept
//  nbroken -- number of bonds broken in this step
func (o *Domain) Step(t, dt float64) (nbroken int, err error) {
	o.Prescribe(t)
	s := o.Blk.Store
	idf := o.Man.Get(field.ForceDensity)
	s.Zero(idf, field.StepNP1)
	if o.Damage != nil {
		if err = o.Damage.ComputeDamage(dt, o.Blk); err != nil {
			return
		}
		nbroken = int(o.Damage.Broken().Count())
	}
	if err = o.Model.ComputeForce(dt, o.Blk); err != nil {
		return
	}
	err = o.Blk.CheckOwned(field.ForceDensity, s.Get(idf, field.StepNP1), 3)
	return
}

// Accept accepts the NP1 state
func (o *Domain) Accept(nbroken int) {
	o.Blk.Store.Accept()
	o.Nbroken += nbroken
}

// MeanDamage returns the mean point damage at N
func (o *Domain) MeanDamage() float64 {
	vals := o.Blk.Store.Get(o.Man.Get(field.Damage), field.StepN)
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range vals {
		sum += d
	}
	return sum / float64(len(vals))
}
