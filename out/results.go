// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/gopd/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// component suffixes of vector and tensor fields
var (
	vecComps = []string{"x", "y", "z"}
	tenComps = []string{"xx", "xy", "xz", "yx", "yy", "yz", "zx", "zy", "zz"}
)

// Define defines aliases
//  alias -- an alias to a group of points, an individual point, or to a set of points.
//           Example: "A", "left-column" or "a b c". If the number of points found is different
//           than the number of aliases, a group is created.
//  Note:
//    To use spaces in aliases, prefix the alias with an exclamation mark; e.g "!right column"
func Define(alias string, loc Locator) {

	// check
	if len(alias) < 1 {
		chk.Panic("alias must have at least one character. %q is invalid", alias)
	}

	// locate points
	pts := loc.Locate()
	if len(pts) < 1 {
		chk.Panic("cannot define entities with alias=%q and locator=%v", alias, loc)
	}

	// set results map
	if alias[0] == '!' {
		Results[alias[1:]] = pts
		return
	}
	lbls := strings.Fields(alias)
	if len(lbls) == len(pts) {
		for i, l := range lbls {
			Results[l] = []*Point{pts[i]}
		}
		return
	}
	Results[alias] = pts
}

// LoadResults loads all results after points are defined
//  times -- specified selected output times in ascending order; a negative value selects
//           the last output time. use nil to indicate that all times are required
func LoadResults(times []float64) (err error) {

	// selected output times and indices
	if times == nil {
		times = Sum.OutTimes
	}
	TimeInds, Times = utl.GetITout(Sum.OutTimes, times, TolT)
	for _, pts := range Results {
		for _, p := range pts {
			p.Vals = make(map[string][]float64)
		}
	}

	// for each selected output time
	npoints := len(Cloud.Verts)
	for _, tidx := range TimeInds {
		snap, err := pd.ReadSnapshot(Sum.Dirout, Sum.Fnkey, Sum.Encoder, Sum.Compressed, RegionIdx, tidx)
		if err != nil {
			return chk.Err("cannot load results at output index %d:\n%v", tidx, err)
		}
		for label, vals := range snap.Fields {
			if len(vals)%npoints != 0 {
				return chk.Err("field %q has %d values which is inconsistent with %d points", label, len(vals), npoints)
			}
			keys := Keys(label, len(vals)/npoints)
			for _, pts := range Results {
				for _, p := range pts {
					for c, key := range keys {
						p.Vals[key] = append(p.Vals[key], vals[p.Id*len(keys)+c])
					}
				}
			}
		}
	}
	return
}

// Keys returns the result keys of a field with ncomp components; e.g. "Damage",
// "Coordinates_x" or "Unrotated_Cauchy_Stress_xy"
func Keys(label string, ncomp int) []string {
	var comps []string
	switch ncomp {
	case 1:
		return []string{label}
	case 3:
		comps = vecComps
	case 9:
		comps = tenComps
	default:
		comps = make([]string, ncomp)
		for i := range comps {
			comps[i] = string(rune('0' + i))
		}
	}
	keys := make([]string, ncomp)
	for i, c := range comps {
		keys[i] = label + "_" + c
	}
	return keys
}

// GetRes gets results as a time or space series corresponding to a given alias
// for a single point or set of points.
//  idxI -- index in TimeInds slice corresponding to selected output time; use -1 for the last item.
//          If alias defines a single point, the whole time series is returned and idxI is ignored.
func GetRes(key, alias string, idxI int) []float64 {
	if idxI < 0 {
		idxI = len(TimeInds) - 1
	}
	if pts, ok := Results[alias]; ok {
		if len(pts) == 1 {
			if v, ok := pts[0].Vals[key]; ok {
				return v
			}
		} else {
			var res []float64
			for _, p := range pts {
				if v, ok := p.Vals[key]; ok {
					res = append(res, v[idxI])
				}
			}
			if res != nil {
				return res
			}
		}
	}
	chk.Panic("cannot get %q at %q", key, alias)
	return nil
}

// GetIds return the ids corresponding to alias
func GetIds(alias string) (ids []int) {
	for _, p := range Results[alias] {
		ids = append(ids, p.Id)
	}
	return
}

// GetCoords returns the coordinates of a single point
func GetCoords(alias string) []float64 {
	if pts, ok := Results[alias]; ok {
		if len(pts) == 1 {
			return pts[0].X
		}
	}
	chk.Panic("cannot get coordinates of point with alias %q (make sure this alias corresponds to a single point)", alias)
	return nil
}

// GetDist returns the distance from a reference point on the given line with selected points
// if they contain a given key
//  key -- use any to get distances of points with any key
func GetDist(key, alias string) (dist []float64) {
	any := key == "any"
	if pts, ok := Results[alias]; ok {
		for _, p := range pts {
			if _, has := p.Vals[key]; has || any {
				dist = append(dist, p.Dist)
			}
		}
		return
	}
	chk.Panic("cannot get distance with key %q and alias %q", key, alias)
	return
}

// GetXYZ returns the x-y-z coordinates of selected points that have a specified key
//  key -- use any to get coordinates of points with any key
func GetXYZ(key, alias string) (x, y, z []float64) {
	any := key == "any"
	if pts, ok := Results[alias]; ok {
		for _, p := range pts {
			if _, has := p.Vals[key]; has || any {
				x = append(x, p.X[0])
				y = append(y, p.X[1])
				z = append(z, p.X[2])
			}
		}
		return
	}
	chk.Panic("cannot get x-y-z coordinates with key %q and alias %q", key, alias)
	return
}

// Integrate integrates key along direction "x", "y", or "z" with the trapezoidal rule
//  idxI -- index in TimeInds slice corresponding to selected output time; use -1 for the last item.
func Integrate(key, alias, along string, idxI int) float64 {
	y := GetRes(key, alias, idxI)
	var x []float64
	switch along {
	case "x":
		x, _, _ = GetXYZ(key, alias)
	case "y":
		_, x, _ = GetXYZ(key, alias)
	case "z":
		_, _, x = GetXYZ(key, alias)
	default:
		chk.Panic("%q: cannot integrate %q along %q", alias, key, along)
	}
	if len(x) != len(y) {
		chk.Panic("%q: cannot integrate %q along %q: alias must define a set of points", alias, key, along)
	}
	_, x, y, _ = utl.SortQuadruples(nil, x, y, nil, "x")
	return num.QuadDiscreteTrapzXY(x, y)
}
