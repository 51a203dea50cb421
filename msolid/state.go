// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// State holds the stress state of a material point, including for updating the state
type State struct {
	Sig     []float64 // σ: Cauchy stress tensor in Mandel basis [nsig]
	Alp     []float64 // α: internal variables [nalp]; α0 = εp for Johnson-Cook
	Dgam    float64   // Δγ: plastic multiplier increment; Δεp for Johnson-Cook
	Loading bool      // elastoplastic step
}

// NewState allocates a state
func NewState(nsig, nalp int) *State {
	return &State{
		Sig: make([]float64, nsig),
		Alp: make([]float64, nalp),
	}
}

// Set copies states
//  Note: this and other states must have been pre-allocated with the same sizes
func (o *State) Set(other *State) {
	copy(o.Sig, other.Sig)
	copy(o.Alp, other.Alp)
	o.Dgam = other.Dgam
	o.Loading = other.Loading
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Sig), len(o.Alp))
	other.Set(o)
	return other
}
