// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package nbr implements neighbour lists and the bond arena
package nbr

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/cpmech/gosl/chk"
)

// List holds the bonds of all owned points
//  Bonds are numbered contiguously in traversal order: the bonds of Owned[i] are
//  b ∈ [Offsets[i], Offsets[i+1]) and Neighbors[b] is the local id of the other end
type List struct {
	Npoints   int            // total number of points (owned and ghosts)
	Owned     []int          // [nowned] local ids of owned points
	Offsets   []int          // [nowned+1] first bond of each owned point
	Neighbors []int          // [nbonds] local id of neighbour
	Specular  []int          // [nbonds] index of the reverse bond or -1
	OwnedMask *bitset.BitSet // [npoints] owned points
	owner     []int          // [nbonds] local id of the point owning the bond
	ownedIdx  []int          // [npoints] index in Owned or -1
}

// New parses a flattened neighbour layout
//  flat -- for each owned point, in Owned order: n, q1, q2, ..., qn
func New(npoints int, owned, flat []int) (o *List, err error) {

	// owned points
	o = new(List)
	o.Npoints = npoints
	o.Owned = owned
	o.OwnedMask = bitset.New(uint(npoints))
	o.ownedIdx = make([]int, npoints)
	for i := range o.ownedIdx {
		o.ownedIdx[i] = -1
	}
	for i, p := range owned {
		if p < 0 || p >= npoints {
			return nil, chk.Err("owned point %d is out of range [0,%d)", p, npoints)
		}
		if o.OwnedMask.Test(uint(p)) {
			return nil, chk.Err("owned point %d is repeated", p)
		}
		o.OwnedMask.Set(uint(p))
		o.ownedIdx[p] = i
	}

	// bonds
	o.Offsets = make([]int, len(owned)+1)
	k := 0
	for i, p := range owned {
		if k >= len(flat) {
			return nil, chk.Err("flat neighbour layout is too short: point %d has no count", p)
		}
		n := flat[k]
		k++
		if n < 0 || k+n > len(flat) {
			return nil, chk.Err("flat neighbour layout is inconsistent at point %d (n=%d)", p, n)
		}
		for _, q := range flat[k : k+n] {
			if q < 0 || q >= npoints {
				return nil, chk.Err("neighbour %d of point %d is out of range [0,%d)", q, p, npoints)
			}
			if q == p {
				return nil, chk.Err("point %d cannot be its own neighbour", p)
			}
			o.Neighbors = append(o.Neighbors, q)
			o.owner = append(o.owner, p)
		}
		k += n
		o.Offsets[i+1] = len(o.Neighbors)
	}
	if k != len(flat) {
		return nil, chk.Err("flat neighbour layout has %d trailing entries", len(flat)-k)
	}
	o.findSpecular()
	return
}

// Nowned returns the number of owned points
func (o *List) Nowned() int { return len(o.Owned) }

// Nbonds returns the number of bonds
func (o *List) Nbonds() int { return len(o.Neighbors) }

// Bonds returns the range of bonds of the i-th owned point
func (o *List) Bonds(i int) (start, end int) {
	return o.Offsets[i], o.Offsets[i+1]
}

// Owner returns the local id of the point owning bond b
func (o *List) Owner(b int) int { return o.owner[b] }

// OwnedIndex returns the index of point p in Owned or -1 if p is a ghost
func (o *List) OwnedIndex(p int) int { return o.ownedIdx[p] }

// Flat returns the flattened layout
func (o *List) Flat() (flat []int) {
	for i := range o.Owned {
		start, end := o.Bonds(i)
		flat = append(flat, end-start)
		flat = append(flat, o.Neighbors[start:end]...)
	}
	return
}

// findSpecular sets the reverse bond of each bond; bonds whose neighbour is a ghost
// or does not list the owner get -1
func (o *List) findSpecular() {
	o.Specular = make([]int, len(o.Neighbors))
	for b, q := range o.Neighbors {
		o.Specular[b] = -1
		j := o.ownedIdx[q]
		if j < 0 {
			continue
		}
		p := o.owner[b]
		start, end := o.Bonds(j)
		for c := start; c < end; c++ {
			if o.Neighbors[c] == p {
				o.Specular[b] = c
				break
			}
		}
	}
}
