// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Form selects the defaults of the Johnson-Cook law
type Form int

const (
	BondForm   Form = iota // bond-pair (ordinary state-based) form
	TensorForm             // tensor (correspondence) form
)

// JohnsonCook implements the Johnson-Cook flow stress
//
//  σY = (A + B εp^N) (1 + C ln(max(ε̇p/ε̇0, 1))) (1 - θ^M)
//
//  where θ = (T - Tref) / (Tmelt - Tref) is clamped to [0, 1]
type JohnsonCook struct {
	A     float64 // yield stress
	B     float64 // hardening modulus
	N     float64 // hardening exponent
	C     float64 // strain rate coefficient
	M     float64 // thermal softening exponent
	Tmelt float64 // melting temperature
	Tref  float64 // reference temperature
	Rate0 float64 // reference strain rate ε̇0
}

// names of parameters
var jcNames = []string{"Constant A", "Constant B", "Constant N", "Constant C", "Constant M"}

// Init initialises the law. Without "Constant A" the law degenerates into an
// elastic one with the defaults of each form
func (o *JohnsonCook) Init(prms dbf.Params, form Form) (err error) {

	// collect
	vals := make(map[string]float64)
	for _, p := range prms {
		switch p.N {
		case "Constant A", "Constant B", "Constant N", "Constant C", "Constant M",
			"Melting Temperature", "Reference Temperature", "Reference Strain Rate":
			vals[p.N] = p.V
		}
	}
	get := func(name string) (v float64, ok bool) {
		v, ok = vals[name]
		return
	}

	// reference strain rate
	o.Rate0 = 1
	if v, ok := get("Reference Strain Rate"); ok {
		if v <= 0 {
			return chk.Err("Reference Strain Rate must be positive; got %g", v)
		}
		o.Rate0 = v
	}

	// temperatures
	tm, hasTm := get("Melting Temperature")
	tr, hasTr := get("Reference Temperature")
	if form == TensorForm && !(hasTm && hasTr) {
		return chk.Err("Melting Temperature and Reference Temperature are required")
	}

	// degenerate law
	if _, ok := get("Constant A"); !ok {
		for _, name := range jcNames[1:] {
			if _, found := get(name); found {
				return chk.Err("%q is given but Constant A is missing", name)
			}
		}
		switch form {
		case BondForm:
			o.A, o.N, o.B, o.C, o.M = 1e200, 0, 0, 0, 1e100
			o.Tmelt, o.Tref = 1e100, 0
		case TensorForm:
			o.A, o.N, o.B, o.C, o.M = 1e100, 0, 0, 0, 0
			o.Tmelt, o.Tref = tm, tr
		}
		return
	}

	// full law
	for _, name := range jcNames {
		if _, found := get(name); !found {
			return chk.Err("%q is required when Constant A is given", name)
		}
	}
	if !(hasTm && hasTr) {
		return chk.Err("Melting Temperature and Reference Temperature are required when Constant A is given")
	}
	o.A, o.B, o.N, o.C, o.M = vals["Constant A"], vals["Constant B"], vals["Constant N"], vals["Constant C"], vals["Constant M"]
	o.Tmelt, o.Tref = tm, tr
	if o.Tmelt <= o.Tref {
		return chk.Err("Melting Temperature (%g) must be greater than Reference Temperature (%g)", o.Tmelt, o.Tref)
	}
	return
}

// Homologous returns θ = (T - Tref)/(Tmelt - Tref) clamped to [0, 1]
func (o *JohnsonCook) Homologous(T float64) float64 {
	d := o.Tmelt - o.Tref
	if d <= 0 {
		return 0
	}
	θ := (T - o.Tref) / d
	if θ <= 0 {
		return 0
	}
	if θ >= 1 {
		return 1
	}
	return θ
}

// ThermalFactor returns 1 - θ^M. Molten material gets 0 and M = 0 disables softening
// below the melting temperature
func (o *JohnsonCook) ThermalFactor(T float64) float64 {
	θ := o.Homologous(T)
	if θ >= 1 {
		return 0
	}
	if θ == 0 || o.M == 0 {
		return 1
	}
	return 1 - math.Pow(θ, o.M)
}

// FlowStress computes σY for a given equivalent plastic strain εp, plastic strain
// rate and temperature T
func (o *JohnsonCook) FlowStress(εp, rate, T float64) float64 {
	σY, _, _ := o.FlowStressDerivs(εp, rate, T)
	return σY
}

// FlowStressDerivs computes σY and its derivatives with respect to εp and rate
func (o *JohnsonCook) FlowStressDerivs(εp, rate, T float64) (σY, dσYdε, dσYdr float64) {
	tf := o.ThermalFactor(T)
	if tf == 0 {
		return
	}
	h, dh := o.A, 0.0
	if o.B != 0 {
		if εp < 0 {
			εp = 0
		}
		h += o.B * math.Pow(εp, o.N)
		if εp > 0 {
			dh = o.B * o.N * math.Pow(εp, o.N-1)
		}
	}
	r, dr := 1.0, 0.0
	if o.C != 0 && rate > o.Rate0 {
		r += o.C * math.Log(rate/o.Rate0)
		dr = o.C / rate
	}
	σY = h * r * tf
	dσYdε = dh * r * tf
	dσYdr = h * dr * tf
	return
}
