// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/tsr"
)

// Im is the second order identity tensor in Mandel basis
var Im = []float64{1, 1, 1, 0, 0, 0}

// FullToMandel converts the symmetric part of a row-wise 3x3 tensor into Mandel basis
//  Note: the component order follows tsr.SecToManI (xx, yy, zz, xy, yz, xz)
func FullToMandel(m, full []float64) {
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			k := tsr.SecToManI[i][j]
			if i == j {
				m[k] = full[3*i+j]
				continue
			}
			m[k] = (full[3*i+j] + full[3*j+i]) / math.Sqrt2
		}
	}
}

// MandelToFull converts a Mandel vector into a row-wise symmetric 3x3 tensor
func MandelToFull(full, m []float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			k := tsr.SecToManI[i][j]
			if i == j {
				full[3*i+j] = m[k]
				continue
			}
			full[3*i+j] = m[k] / math.Sqrt2
		}
	}
}

// Dot returns a:b of two Mandel tensors
func Dot(a, b []float64) (res float64) {
	for k := range a {
		res += a[k] * b[k]
	}
	return
}

// Q returns the von Mises equivalent stress q = sqrt(3/2 dev(σ):dev(σ)) of a Mandel tensor
func Q(σ []float64) float64 {
	p := (σ[0] + σ[1] + σ[2]) / 3.0
	var s, d float64
	for k := 0; k < Nsig; k++ {
		d = σ[k] - p*Im[k]
		s += d * d
	}
	return math.Sqrt(1.5 * s)
}
