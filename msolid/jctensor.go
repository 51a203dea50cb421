// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// JcTensor implements the Johnson-Cook radial return in stress space
type JcTensor struct {
	JohnsonCook
	K     float64 // bulk modulus
	G     float64 // shear modulus
	Tol   float64 // tolerance for the consistency condition
	MaxIt int     // max number of iterations
}

// Nsig is the number of stress components in Mandel basis
const Nsig = 6

// Init initialises model
func (o *JcTensor) Init(prms dbf.Params) (err error) {
	err = o.JohnsonCook.Init(prms, TensorForm)
	if err != nil {
		return
	}
	for _, p := range prms {
		switch p.N {
		case "Bulk Modulus":
			o.K = p.V
		case "Shear Modulus":
			o.G = p.V
		}
	}
	if o.K <= 0 || o.G <= 0 {
		return chk.Err("Bulk Modulus and Shear Modulus must be positive; got K=%g G=%g", o.K, o.G)
	}
	o.Tol = 1e-12
	o.MaxIt = 100
	return
}

// InitIntVars initialises internal (secondary) variables
func (o *JcTensor) InitIntVars(σ []float64) (s *State) {
	s = NewState(Nsig, 1)
	copy(s.Sig, σ)
	return
}

// Update updates stresses for a given rate of deformation D (Mandel basis) over dt
//  T -- current temperature
//  Note: Update keeps no scratch in the model; it may be called concurrently on distinct states
func (o *JcTensor) Update(s *State, D []float64, dt, T float64) (err error) {

	// set flags
	s.Loading = false
	s.Dgam = 0

	// accessors
	σ := s.Sig
	α0 := &s.Alp[0]

	// trial stress
	var σtr [Nsig]float64
	var devD_i float64
	trD := D[0] + D[1] + D[2]
	for i := 0; i < Nsig; i++ {
		devD_i = D[i] - trD*Im[i]/3.0
		σtr[i] = σ[i] + dt*(o.K*trD*Im[i]+2.0*o.G*devD_i)
	}
	qtr := Q(σtr[:])

	// trial yield function
	ftr := qtr - o.FlowStress(*α0, 0, T)

	// elastic update
	if ftr <= 0.0 {
		copy(σ, σtr[:])
		return
	}

	// elastoplastic update
	Δε, err := o.consistency(qtr, *α0, dt, T)
	if err != nil {
		return
	}
	s.Dgam = Δε
	*α0 += Δε
	ptr := (σtr[0] + σtr[1] + σtr[2]) / 3.0
	m := 1.0 - 3.0*o.G*Δε/qtr
	for i := 0; i < Nsig; i++ {
		σ[i] = ptr*Im[i] + m*(σtr[i]-ptr*Im[i])
	}
	s.Loading = true
	return
}

// consistency solves qtr - 3GΔε - σY(εp+Δε, Δε/dt) = 0 for Δε ∈ [0, qtr/(3G)]
// with Newton's method safeguarded by bisection
func (o *JcTensor) consistency(qtr, εp, dt, T float64) (Δε float64, err error) {
	lo, hi := 0.0, qtr/(3.0*o.G)
	rate := func(Δ float64) float64 {
		if dt <= 0 {
			return 0
		}
		return Δ / dt
	}
	Δε = hi / 2.0
	for it := 0; it < o.MaxIt; it++ {
		σY, dσYdε, dσYdr := o.FlowStressDerivs(εp+Δε, rate(Δε), T)
		f := qtr - 3.0*o.G*Δε - σY
		if math.Abs(f) <= o.Tol*qtr {
			return
		}
		if f > 0 {
			lo = Δε
		} else {
			hi = Δε
		}
		df := -3.0*o.G - dσYdε
		if dt > 0 {
			df -= dσYdr / dt
		}
		next := Δε - f/df
		if df >= 0 || next < lo || next > hi {
			next = (lo + hi) / 2.0
		}
		Δε = next
		if hi-lo <= o.Tol*hi {
			return
		}
	}
	return Δε, chk.Err("Johnson-Cook return mapping did not converge after %d iterations (qtr=%g εp=%g)", o.MaxIt, qtr, εp)
}
