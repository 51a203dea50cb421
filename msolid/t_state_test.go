// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01")

	state0 := NewState(Nsig, 1)
	io.Pforan("state0 = %+v\n", state0)
	chk.Array(tst, "sig", 1.0e-17, state0.Sig, []float64{0, 0, 0, 0, 0, 0})
	chk.Array(tst, "alp", 1.0e-17, state0.Alp, []float64{0})

	state0.Sig[0] = 10.0
	state0.Sig[1] = 11.0
	state0.Sig[2] = 12.0
	state0.Sig[3] = 13.0
	state0.Alp[0] = 20.0
	state0.Dgam = 0.5
	state0.Loading = true

	state1 := NewState(Nsig, 1)
	state1.Set(state0)
	io.Pforan("state1 = %+v\n", state1)
	chk.Array(tst, "sig", 1.0e-17, state1.Sig, []float64{10, 11, 12, 13, 0, 0})
	chk.Array(tst, "alp", 1.0e-17, state1.Alp, []float64{20})

	state2 := state1.GetCopy()
	state1.Sig[0] = -1
	io.Pforan("state2 = %+v\n", state2)
	chk.Array(tst, "sig", 1.0e-17, state2.Sig, []float64{10, 11, 12, 13, 0, 0})
	chk.Float64(tst, "dgam", 1e-17, state2.Dgam, 0.5)
	if !state2.Loading {
		tst.Errorf("test failed: loading flag was not copied\n")
	}
}

func Test_mandel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mandel01")

	full := []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	m := make([]float64, Nsig)
	FullToMandel(m, full)
	chk.Array(tst, "m", 1e-15, m, []float64{1, 5, 9, 3 * 1.4142135623730951, 7 * 1.4142135623730951, 5 * 1.4142135623730951})

	back := make([]float64, 9)
	MandelToFull(back, m)
	chk.Array(tst, "sym", 1e-14, back, []float64{1, 3, 5, 3, 5, 7, 5, 7, 9})
	chk.Float64(tst, "a:a", 1e-13, Dot(m, m), 1+25+81+2*(9+49+25))

	// von Mises
	chk.Float64(tst, "q(uniaxial)", 1e-15, Q([]float64{3, 0, 0, 0, 0, 0}), 3)
	chk.Float64(tst, "q(hydrostatic)", 1e-15, Q([]float64{2, 2, 2, 0, 0, 0}), 0)
	chk.Float64(tst, "q(shear)", 1e-14, Q([]float64{0, 0, 0, 2 * math.Sqrt2, 0, 0}), 2*math.Sqrt(3))
	chk.Float64(tst, "tr(I)", 1e-17, Dot(Im, Im), 3)
}
