// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "math"

// BondReturn projects a trial deviatoric bond force onto the yield value σY
//  k -- bond stiffness α ω
//  td   -- returned deviatoric bond force
//  Δedp -- increment of deviatoric plastic extension; zero if elastic
func BondReturn(tdTrial, k, σY float64) (td, Δedp float64) {
	mag := math.Abs(tdTrial)
	if k <= 0 || mag <= σY {
		return tdTrial, 0
	}
	sign := 1.0
	if tdTrial < 0 {
		sign = -1.0
	}
	td = sign * σY
	Δedp = sign * (mag - σY) / k
	return
}
