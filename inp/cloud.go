// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Vert holds material point data
type Vert struct {
	Id  int       `json:"id"`  // id
	Tag int       `json:"tag"` // tag; negative values are used to select points
	C   []float64 `json:"c"`   // coordinates (size==3)
	V   float64   `json:"v"`   // volume
}

// Cloud holds the material points of a region
type Cloud struct {

	// from JSON
	Verts []*Vert `json:"verts"` // points

	// derived
	FnamePath  string  // complete filename path; empty if generated
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert // vertex tag => set of vertices
}

// LatticeData holds data to generate a regular grid of points
type LatticeData struct {
	N   []int     `json:"n"`   // [3] number of points along x, y and z
	H   float64   `json:"h"`   // spacing
	X0  []float64 `json:"x0"`  // [3] coordinates of first point; default is the origin
	Tag int       `json:"tag"` // tag of all points
}

// ReadCloud reads a point cloud file (JSON or YAML)
func ReadCloud(dir, fn string) (o *Cloud, err error) {
	o = new(Cloud)
	o.FnamePath = filepath.Join(dir, fn)
	if err = readAndDecode(o.FnamePath, o); err != nil {
		return nil, err
	}
	if err = o.derived(); err != nil {
		return nil, chk.Err("point cloud %q is invalid:\n%v", o.FnamePath, err)
	}
	return
}

// Generate generates a regular grid of points with volumes h³
func (o *LatticeData) Generate() (c *Cloud, err error) {
	if len(o.N) != 3 {
		return nil, chk.Err("lattice must have 3 numbers of points; got %v", o.N)
	}
	if o.N[0] < 1 || o.N[1] < 1 || o.N[2] < 1 {
		return nil, chk.Err("lattice numbers of points must be positive; got %v", o.N)
	}
	if o.H <= 0 {
		return nil, chk.Err("lattice spacing must be positive; got %g", o.H)
	}
	x0 := []float64{0, 0, 0}
	if len(o.X0) == 3 {
		copy(x0, o.X0)
	}
	c = new(Cloud)
	vol := o.H * o.H * o.H
	for k := 0; k < o.N[2]; k++ {
		for j := 0; j < o.N[1]; j++ {
			for i := 0; i < o.N[0]; i++ {
				c.Verts = append(c.Verts, &Vert{
					Id:  len(c.Verts),
					Tag: o.Tag,
					C:   []float64{x0[0] + float64(i)*o.H, x0[1] + float64(j)*o.H, x0[2] + float64(k)*o.H},
					V:   vol,
				})
			}
		}
	}
	err = c.derived()
	return
}

// derived checks the points and computes limits and maps
func (o *Cloud) derived() (err error) {
	if len(o.Verts) < 1 {
		return chk.Err("there must be at least one point")
	}
	o.Xmin, o.Ymin, o.Zmin = math.Inf(1), math.Inf(1), math.Inf(1)
	o.Xmax, o.Ymax, o.Zmax = math.Inf(-1), math.Inf(-1), math.Inf(-1)
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("point ids must be sequential; point %d has id %d", i, v.Id)
		}
		if len(v.C) != 3 {
			return chk.Err("point %d must have 3 coordinates; got %d", i, len(v.C))
		}
		if v.V <= 0 {
			return chk.Err("volume of point %d must be positive; got %g", i, v.V)
		}
		if v.Tag < 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}
		o.Xmin, o.Xmax = utl.Min(o.Xmin, v.C[0]), utl.Max(o.Xmax, v.C[0])
		o.Ymin, o.Ymax = utl.Min(o.Ymin, v.C[1]), utl.Max(o.Ymax, v.C[1])
		o.Zmin, o.Zmax = utl.Min(o.Zmin, v.C[2]), utl.Max(o.Zmax, v.C[2])
	}
	return
}

// Coords returns the coordinates and volumes of all points
func (o *Cloud) Coords() (x, vol []float64) {
	x = make([]float64, 3*len(o.Verts))
	vol = make([]float64, len(o.Verts))
	for i, v := range o.Verts {
		copy(x[3*i:], v.C)
		vol[i] = v.V
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	return io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[%23.15e, %23.15e, %23.15e], \"v\":%23.15e }",
		o.Id, o.Tag, o.C[0], o.C[1], o.C[2], o.V)
}

// String returns a JSON representation of *Cloud
func (o Cloud) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, x := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", x)
	}
	l += "\n  ]\n}"
	return l
}
