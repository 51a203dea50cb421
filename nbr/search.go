// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nbr

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/utl"
)

// Search builds the neighbour list of owned points: q is a neighbour of p if
// |x_q - x_p| <= δ_p. Neighbours are sorted by local id
//  x       -- [3*npoints] model coordinates
//  horizon -- [npoints] horizon of each point
//  Note: bins are at least as large as the largest horizon, so neighbours lie
//        in the bin of p or in the bins around it
func Search(x, horizon []float64, owned []int) (o *List, err error) {

	// check
	npoints := len(horizon)
	if len(x) != 3*npoints {
		return nil, chk.Err("coordinates must have 3*npoints=%d entries; got %d", 3*npoints, len(x))
	}
	if npoints == 0 {
		return New(0, owned, nil)
	}

	// bin size and limits
	h := 0.0
	for p, δ := range horizon {
		if δ < 0 {
			return nil, chk.Err("horizon of point %d is negative: %g", p, δ)
		}
		h = math.Max(h, δ)
	}
	xmin := []float64{math.Inf(+1), math.Inf(+1), math.Inf(+1)}
	xmax := []float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for p := 0; p < npoints; p++ {
		for k := 0; k < 3; k++ {
			xmin[k] = math.Min(xmin[k], x[3*p+k])
			xmax[k] = math.Max(xmax[k], x[3*p+k])
		}
	}
	pad := math.Max(1e-6*h, 10*gm.XDELZERO)
	ndiv := make([]int, 3)
	for k := 0; k < 3; k++ {
		xmin[k] -= pad
		xmax[k] += pad
		ndiv[k] = 1
		if h > 0 {
			ndiv[k] = utl.Imax(1, int((xmax[k]-xmin[k])/h))
		}
	}
	for ndiv[0]*ndiv[1]*ndiv[2] > 8*npoints { // coarser bins for sparse clouds
		k := 0
		if ndiv[1] > ndiv[k] {
			k = 1
		}
		if ndiv[2] > ndiv[k] {
			k = 2
		}
		ndiv[k] = (ndiv[k] + 1) / 2
	}

	// bins
	var bins gm.Bins
	bins.Init(xmin, xmax, ndiv)
	for p := 0; p < npoints; p++ {
		bins.Append(x[3*p:3*p+3], p, nil)
	}
	nx, ny, nz := bins.Ndiv[0], bins.Ndiv[1], bins.Ndiv[2]

	// neighbours
	var flat []int
	var nbrs []int
	for _, p := range owned {
		if p < 0 || p >= npoints {
			return nil, chk.Err("owned point %d is out of range [0,%d)", p, npoints)
		}
		nbrs = nbrs[:0]
		idx := bins.CalcIndex(x[3*p : 3*p+3])
		ci, cj, ck := idx%nx, (idx%(nx*ny))/nx, idx/(nx*ny)
		δ := horizon[p]
		for k := utl.Imax(0, ck-1); k <= utl.Imin(nz-1, ck+1); k++ {
			for j := utl.Imax(0, cj-1); j <= utl.Imin(ny-1, cj+1); j++ {
				for i := utl.Imax(0, ci-1); i <= utl.Imin(nx-1, ci+1); i++ {
					bin := bins.All[i+j*nx+k*nx*ny]
					if bin == nil {
						continue
					}
					for _, e := range bin.Entries {
						if e.ID != p && dist(x, p, e.ID) <= δ {
							nbrs = append(nbrs, e.ID)
						}
					}
				}
			}
		}
		sort.Ints(nbrs)
		flat = append(flat, len(nbrs))
		flat = append(flat, nbrs...)
	}
	return New(npoints, owned, flat)
}

func dist(x []float64, p, q int) float64 {
	dx := x[3*q] - x[3*p]
	dy := x[3*q+1] - x[3*p+1]
	dz := x[3*q+2] - x[3*p+2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
