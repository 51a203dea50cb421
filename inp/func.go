// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: zero, stretch, jcrit, etc.
	Type string     `json:"type"` // type of function. ex: cte, lin, rmp
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: "zero" and "none" return the zero function
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "zero" || name == "none" {
		fcn = &dbf.Zero
		return
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = newFunc(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q", name)
	return
}

// newFunc allocates a function from the database; panics raised by dbf for unknown
// types or invalid parameters are returned as errors
func newFunc(typ string, prms dbf.Params) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			fcn, err = nil, chk.Err("%v", r)
		}
	}()
	fcn = dbf.New(typ, prms)
	return
}

// String returns a summary of all functions
func (o FuncsData) String() (l string) {
	for i, f := range o {
		if i > 0 {
			l += "\n"
		}
		l += io.Sf("%q (%s):", f.Name, f.Type)
		for _, p := range f.Prms {
			l += io.Sf(" %s=%g", p.N, p.V)
		}
	}
	return
}
