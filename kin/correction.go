// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

import "math"

// ShearGamma is the amplitude of the simple shear modes used by ShearCorrectionFactor
const ShearGamma = 1.0e-6

// shear modes (i, j): Y_i = ξ_i + γ ξ_j
var shearModes = [][2]int{{0, 1}, {0, 2}, {1, 2}}

// ShearCorrectionFactor computes, for each owned point, the ratio between the
// deviatoric extension norm of a bulk point (γ² m / 15) and the actual one under
// simple shear, averaged over the three modes. Modes that do not deform the family
// are skipped; points without any deformed mode get 1
//  Note: uses the model coordinates only; o.Y and o.BondDamage are ignored
func (o *Data) ShearCorrectionFactor(scf []float64) error {
	return o.List.ForEach(o.Workers, func(i int) error {
		p := o.List.Owned[i]
		scf[p] = 1
		start, end := o.List.Bonds(i)
		m := o.M[p]
		if start == end || m == 0 {
			return nil
		}
		γ := ShearGamma
		bulk := γ * γ * m / 15.0
		sum, nmodes := 0.0, 0
		for _, mode := range shearModes {

			// dilatation of the mode
			θ := 0.0
			for b := start; b < end; b++ {
				q := o.List.Neighbors[b]
				ζ, e := o.shearBond(p, q, mode)
				θ += 3.0 * o.Omega.F(ζ, o.Horizon) * ζ * e * o.Vol[q]
			}
			θ /= m

			// deviatoric extension norm
			norm := 0.0
			for b := start; b < end; b++ {
				q := o.List.Neighbors[b]
				ζ, e := o.shearBond(p, q, mode)
				ed := e - θ*ζ/3.0
				norm += o.Omega.F(ζ, o.Horizon) * ed * ed * o.Vol[q]
			}
			if norm > 0 {
				sum += bulk / norm
				nmodes++
			}
		}
		if nmodes > 0 {
			scf[p] = sum / float64(nmodes)
		}
		return nil
	})
}

// shearBond returns the reference length and the extension of bond p→q under a shear mode
func (o *Data) shearBond(p, q int, mode [2]int) (ζ, e float64) {
	var ξ [3]float64
	for k := 0; k < 3; k++ {
		ξ[k] = o.X[3*q+k] - o.X[3*p+k]
	}
	ζ = math.Sqrt(ξ[0]*ξ[0] + ξ[1]*ξ[1] + ξ[2]*ξ[2])
	y := ξ
	y[mode[0]] += ShearGamma * ξ[mode[1]]
	e = math.Sqrt(y[0]*y[0]+y[1]*y[1]+y[2]*y[2]) - ζ
	return
}

// VolumeRatio computes r_p = Σ ζ V_q / (π δ_p⁴) used to correct thermal critical
// energies of partially filled horizons
//  horizon -- [npoints] horizon of each point; points with δ = 0 get r = 0
func (o *Data) VolumeRatio(horizon, ratio []float64) error {
	return o.List.ForEach(o.Workers, func(i int) error {
		p := o.List.Owned[i]
		δ := horizon[p]
		if δ == 0 {
			ratio[p] = 0
			return nil
		}
		start, end := o.List.Bonds(i)
		sum := 0.0
		for b := start; b < end; b++ {
			q := o.List.Neighbors[b]
			sum += refLength(o.X, p, q) * o.Vol[q]
		}
		ratio[p] = sum / (math.Pi * δ * δ * δ * δ)
		return nil
	})
}
