// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kin implements bond kinematics, weighted volume and nonlocal dilatation
package kin

import (
	"math"

	"github.com/cpmech/gopd/infl"
	"github.com/cpmech/gopd/nbr"
)

// Data holds the inputs of bond kinematics kernels
type Data struct {
	List    *nbr.List // neighbour list
	Omega   infl.Func // influence function
	Horizon float64   // δ
	Workers int       // number of goroutines for point loops

	X          []float64 // [3*npoints] model coordinates
	Y          []float64 // [3*npoints] current coordinates
	Vol        []float64 // [npoints] volumes
	M          []float64 // [npoints] weighted volumes
	BondDamage []float64 // [nbonds] bond damage
	DeltaT     []float64 // [npoints] temperature change; nil means no thermal strain
	Alpha      float64   // thermal expansion coefficient
}

// Bond returns the reference length ζ, the deformed length |Y| and the extension
// e = |Y| - ζ - α ΔT_p ζ of the bond from p to q
func (o *Data) Bond(p, q int) (ζ, yl, e float64) {
	var dx, dy float64
	for k := 0; k < 3; k++ {
		a := o.X[3*q+k] - o.X[3*p+k]
		b := o.Y[3*q+k] - o.Y[3*p+k]
		dx += a * a
		dy += b * b
	}
	ζ, yl = math.Sqrt(dx), math.Sqrt(dy)
	e = yl - ζ
	if o.DeltaT != nil {
		e -= o.Alpha * o.DeltaT[p] * ζ
	}
	return
}

// Direction returns the unit vector along the deformed bond from p to q
func (o *Data) Direction(p, q int) (n [3]float64, yl float64) {
	for k := 0; k < 3; k++ {
		n[k] = o.Y[3*q+k] - o.Y[3*p+k]
		yl += n[k] * n[k]
	}
	yl = math.Sqrt(yl)
	if yl > 0 {
		for k := 0; k < 3; k++ {
			n[k] /= yl
		}
	}
	return
}

// WeightedVolume computes m_p = Σ ω ζ² V_q
func (o *Data) WeightedVolume(m []float64) error {
	return o.List.ForEach(o.Workers, func(i int) error {
		p := o.List.Owned[i]
		start, end := o.List.Bonds(i)
		sum := 0.0
		for b := start; b < end; b++ {
			q := o.List.Neighbors[b]
			ζ := refLength(o.X, p, q)
			sum += o.Omega.F(ζ, o.Horizon) * ζ * ζ * o.Vol[q]
		}
		m[p] = sum
		return nil
	})
}

// Dilatation computes θ_p = Σ 3 ω (1 - d) ζ e V_q / m_p. Points without neighbours or
// with zero weighted volume get θ = 0
func (o *Data) Dilatation(θ []float64) error {
	return o.List.ForEach(o.Workers, func(i int) error {
		θ[o.List.Owned[i]] = o.PointDilatation(i)
		return nil
	})
}

// PointDilatation computes the dilatation of the i-th owned point
func (o *Data) PointDilatation(i int) float64 {
	p := o.List.Owned[i]
	start, end := o.List.Bonds(i)
	if start == end || o.M[p] == 0 {
		return 0
	}
	sum := 0.0
	for b := start; b < end; b++ {
		q := o.List.Neighbors[b]
		ζ, _, e := o.Bond(p, q)
		ω := o.Omega.F(ζ, o.Horizon)
		sum += 3.0 * ω * (1.0 - o.damage(b)) * ζ * e * o.Vol[q]
	}
	return sum / o.M[p]
}

// damage returns the damage of bond b; zero if bond damage is not tracked
func (o *Data) damage(b int) float64 {
	if o.BondDamage == nil {
		return 0
	}
	return o.BondDamage[b]
}

func refLength(x []float64, p, q int) float64 {
	var d float64
	for k := 0; k < 3; k++ {
		a := x[3*q+k] - x[3*p+k]
		d += a * a
	}
	return math.Sqrt(d)
}
