// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// prmMap gives access to parameters by name
type prmMap map[string]float64

func newPrmMap(prms dbf.Params) prmMap {
	o := make(prmMap)
	for _, p := range prms {
		o[p.N] = p.V
	}
	return o
}

// has tells whether a parameter is given
func (o prmMap) has(name string) bool {
	_, ok := o[name]
	return ok
}

// flag returns true if the parameter is given and positive
func (o prmMap) flag(name string) bool {
	return o[name] > 0
}

// get returns the value of a parameter or a default one
func (o prmMap) get(name string, dflt float64) float64 {
	if v, ok := o[name]; ok {
		return v
	}
	return dflt
}

// required checks that all parameters are given
func (o prmMap) required(names ...string) error {
	for _, name := range names {
		if !o.has(name) {
			return chk.Err("parameter %q is required", name)
		}
	}
	return nil
}

// props parses the common properties
//  elastic -- also require elastic moduli
func (o prmMap) props(p *Props, elastic bool) (err error) {
	if err = o.required("Density", "Horizon"); err != nil {
		return
	}
	p.Density, p.Horizon = o["Density"], o["Horizon"]
	if p.Horizon <= 0 {
		return chk.Err("Horizon must be positive; got %g", p.Horizon)
	}
	if !elastic {
		return
	}
	if err = o.required("Bulk Modulus", "Shear Modulus"); err != nil {
		return
	}
	p.K, p.G = o["Bulk Modulus"], o["Shear Modulus"]
	if p.K <= 0 || p.G <= 0 {
		return chk.Err("Bulk Modulus and Shear Modulus must be positive; got K=%g G=%g", p.K, p.G)
	}
	return
}
