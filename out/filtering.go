// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

// Point holds the results of one material point
type Point struct {
	Id   int                  // point id
	X    []float64            // reference coordinates
	Dist float64              // distance from a reference point
	Vals map[string][]float64 // key => time series
}

// Points is a set of points sortable by distance
type Points []*Point

func (o Points) Len() int           { return len(o) }
func (o Points) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o Points) Less(i, j int) bool { return o[i].Dist < o[j].Dist }

// Locator defines interface for locating space positions
type Locator interface {
	Locate() Points
}

// At implements locator at point
type At []float64

// N implements point locator
// Ids or tags (negative) of points can be stored in N
type N []int

// Along implements locator along segment
//  Example: with 2 points in 3D: {{0,0,0}, {1,1,1}}
type Along [][]float64

// AlongX implements locator along x with []float64{y_cte} or []float64{y_cte, z_cte}
//  Note: the segment spans the whole cloud
type AlongX []float64

// AlongY implements locator along y with []float64{x_cte} or []float64{x_cte, z_cte}
type AlongY []float64

// AlongZ implements locator along z with []float64{x_cte, y_cte}
type AlongZ []float64

// OnZplane implements locator for points on plane perpendicular to z-axis
//  Note: slice must contain at least one value; e.g. []float64{z_cte}
//        a second value is used as tolerance; e.g. []float64{z_cte, z_tolerance}
type OnZplane []float64

// Locate finds points
func (o At) Locate() Points {
	id, sqDist := Bins.FindClosest(xyz(o))
	if id < 0 || math.Sqrt(sqDist) > TolC {
		return nil
	}
	return Points{newPoint(id, nil)}
}

// Locate finds points
func (o N) Locate() (res Points) {
	var A []float64 // reference point
	add := func(id int) {
		q := newPoint(id, A)
		res = append(res, q)
		if A == nil {
			A = q.X
		}
	}
	for _, idortag := range o {
		if idortag < 0 {
			for _, v := range Cloud.VertTag2verts[idortag] {
				add(v.Id)
			}
			continue
		}
		if idortag < len(Cloud.Verts) {
			add(idortag)
		}
	}
	if len(res) < len(o) {
		chk.Panic("cannot locate all points in %v", o)
	}
	return
}

// Locate finds points
func (o Along) Locate() (res Points) {
	if len(o) != 2 {
		return
	}
	A := xyz(o[0])
	return locateAlong(A, xyz(o[1]), A)
}

// Locate finds points
func (o AlongX) Locate() (res Points) {
	y_cte, z_cte := o[0], 0.0
	if len(o) > 1 {
		z_cte = o[1]
	}
	return locateAlong([]float64{Bins.Xmin[0], y_cte, z_cte}, []float64{Bins.Xmax[0], y_cte, z_cte}, []float64{0, y_cte, z_cte})
}

// Locate finds points
func (o AlongY) Locate() (res Points) {
	x_cte, z_cte := o[0], 0.0
	if len(o) > 1 {
		z_cte = o[1]
	}
	return locateAlong([]float64{x_cte, Bins.Xmin[1], z_cte}, []float64{x_cte, Bins.Xmax[1], z_cte}, []float64{x_cte, 0, z_cte})
}

// Locate finds points
func (o AlongZ) Locate() (res Points) {
	x_cte, y_cte := o[0], o[1]
	return locateAlong([]float64{x_cte, y_cte, Bins.Xmin[2]}, []float64{x_cte, y_cte, Bins.Xmax[2]}, []float64{x_cte, y_cte, 0})
}

// Locate finds points on z-plane
func (o OnZplane) Locate() (res Points) {
	if len(o) < 1 {
		return
	}
	z_cte := o[0]
	z_tol := TolC
	if len(o) == 2 {
		z_tol = o[1]
	}
	for idx, bin := range Bins.All {
		if bin == nil {
			continue
		}
		lo, hi := Bins.GetLimits(idx)
		if z_cte < lo[2]-z_tol || z_cte > hi[2]+z_tol {
			continue
		}
		for _, e := range bin.Entries {
			if math.Abs(e.X[2]-z_cte) < z_tol {
				res = append(res, newPoint(e.ID, []float64{0, 0, 0}))
			}
		}
	}
	sort.Sort(res)
	return
}

// AllPoints returns all points
func AllPoints() N {
	res := make([]int, len(Cloud.Verts))
	for i, v := range Cloud.Verts {
		res[i] = v.Id
	}
	return res
}

// locateAlong returns the points on segment A-B sorted by their distance from ref
func locateAlong(A, B, ref []float64) (res Points) {
	for _, id := range findAlongSegment(A, B) {
		res = append(res, newPoint(id, ref))
	}
	sort.Sort(res)
	return
}

// findAlongSegment returns the ids of points within TolC of segment A-B. Only bins
// whose centre is within half a bin diagonal from the line are visited
//  Note: gm.Bins.FindAlongSegment is not used because, in 3D, it reads the z coordinate
//        of entries from x and it needs A <= B along every direction
func findAlongSegment(A, B []float64) (ids []int) {
	a, b := point(A), point(B)
	cmin, cmax := gm.PointsLims([]*gm.Point{a, b})
	r := 0.0
	for _, sz := range Bins.Size {
		r += sz * sz
	}
	r = math.Sqrt(r) / 2.0
	for idx, bin := range Bins.All {
		if bin == nil {
			continue
		}
		lo, hi := Bins.GetLimits(idx)
		c := &gm.Point{X: (lo[0] + hi[0]) / 2.0, Y: (lo[1] + hi[1]) / 2.0, Z: (lo[2] + hi[2]) / 2.0}
		if gm.DistPointLine(c, a, b, TolC, false) > r+TolC {
			continue
		}
		for _, e := range bin.Entries {
			p := point(e.X)
			if gm.DistPointLine(p, a, b, TolC, false) <= TolC && gm.IsPointIn(p, cmin, cmax, TolC) {
				ids = append(ids, e.ID)
			}
		}
	}
	return
}

// newPoint returns a point with distance measured from A; A may be nil
func newPoint(id int, A []float64) *Point {
	x := Cloud.Verts[id].C
	q := &Point{Id: id, X: x, Vals: make(map[string][]float64)}
	if A != nil {
		q.Dist = gm.DistPointPoint(point(x), point(A))
	}
	return q
}

// xyz returns a copy of x with 3 components; missing ones are zero
func xyz(x []float64) []float64 {
	res := make([]float64, 3)
	copy(res, x)
	return res
}

func point(x []float64) *gm.Point {
	x = xyz(x)
	return &gm.Point{X: x[0], Y: x[1], Z: x[2]}
}
