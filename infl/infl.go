// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package infl implements influence (weight) functions for peridynamic bonds
package infl

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Func defines the influence function ω(ζ, δ) of a bond with reference length ζ
// in a horizon δ
type Func interface {
	F(zeta, horizon float64) float64
}

// One implements ω = 1
type One struct{}

// Parabolic implements ω = 1 - (ζ/δ)²
type Parabolic struct{}

// Gaussian implements ω = exp(-ζ²/(δ/2)²)
type Gaussian struct{}

// F computes ω
func (o One) F(zeta, horizon float64) float64 { return 1 }

// F computes ω
func (o Parabolic) F(zeta, horizon float64) float64 {
	r := zeta / horizon
	return 1 - r*r
}

// F computes ω
func (o Gaussian) F(zeta, horizon float64) float64 {
	s := horizon / 2.0
	return math.Exp(-zeta * zeta / (s * s))
}

// allocators holds all available influence functions
var allocators = map[string]func() Func{
	"One":             func() Func { return new(One) },
	"Parabolic Decay": func() Func { return new(Parabolic) },
	"Gaussian":        func() Func { return new(Gaussian) },
}

// New returns a new influence function. An empty name means "One"
func New(name string) (Func, error) {
	if name == "" {
		name = "One"
	}
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("influence function %q is not available", name)
	}
	return allocator(), nil
}
