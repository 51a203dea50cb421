// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"testing"

	"github.com/cpmech/gopd/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

// setLattice selects a 5x4x3 lattice with spacing 0.5 without running any simulation
func setLattice(tst *testing.T) {
	var err error
	Cloud, err = (&inp.LatticeData{N: []int{5, 4, 3}, H: 0.5}).Generate()
	require.NoError(tst, err)
	RegionIdx = 0
	require.NoError(tst, initBins())
	Results = make(map[string]Points)
	TimeInds = []int{0}
	Times = []float64{0}
}

func Test_filter01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("filter01. locating points with bins")

	setLattice(tst)
	require.Equal(tst, 60, Bins.Nentries())

	// single points
	Define("A", At{1, 0.5, 1})
	chk.Ints(tst, "A", GetIds("A"), []int{47})
	Define("O", At{0, 0})
	chk.Ints(tst, "O", GetIds("O"), []int{0})
	require.Panics(tst, func() { Define("C", At{1.2, 0.5, 1}) })
	require.Panics(tst, func() { Define("D", At{10, 0, 0}) })

	// descending diagonal in 3D
	Define("diag", Along{{2, 0, 0.5}, {0, 2, 0.5}})
	chk.Ints(tst, "diag", GetIds("diag"), []int{24, 28, 32, 36})
	chk.Array(tst, "diag dist", 1e-15, GetDist("any", "diag"), []float64{0, math.Sqrt(0.5), math.Sqrt(2), 1.5 * math.Sqrt(2)})

	// segment only
	Define("half", Along{{0, 0, 0}, {1, 0, 0}})
	chk.Ints(tst, "half", GetIds("half"), []int{0, 1, 2})

	// lines parallel to the axes span the whole cloud
	Define("vertical", AlongZ{1, 0.5})
	chk.Ints(tst, "vertical", GetIds("vertical"), []int{7, 27, 47})
	chk.Array(tst, "vertical dist", 1e-15, GetDist("any", "vertical"), []float64{0, 0.5, 1})
	Define("depth", AlongY{0.5, 1})
	chk.Ints(tst, "depth", GetIds("depth"), []int{41, 46, 51, 56})
	Define("bottom", AlongX{0})
	chk.Ints(tst, "bottom", GetIds("bottom"), []int{0, 1, 2, 3, 4})
	require.Panics(tst, func() { Define("nothing", AlongX{0.25}) })

	// plane
	Define("middle plane", OnZplane{0.5})
	pts := Results["middle plane"]
	require.Len(tst, pts, 20)
	for _, p := range pts {
		chk.Float64(tst, "z", 1e-17, p.X[2], 0.5)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Dist < pts[i-1].Dist {
			tst.Errorf("test failed: points on plane must be sorted by distance\n")
		}
	}
}

func Test_filter02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("filter02. integration of unsorted points")

	setLattice(tst)
	Define("!unsorted", N{3, 0, 4, 2, 1})
	for _, p := range Results["unsorted"] {
		p.Vals["f"] = []float64{2 * p.X[0]}
	}
	chk.Float64(tst, "∫2x dx", 1e-15, Integrate("f", "unsorted", "x", -1), 4)
	require.Panics(tst, func() { Integrate("f", "unsorted", "w", -1) })
}
