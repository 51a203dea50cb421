// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Material holds material data
type Material struct {

	// input
	Name    string     `json:"name"`    // name of material
	Model   string     `json:"model"`   // name of model; e.g. "Johnson-Cook", "Standard Linear Solid"
	Prms    dbf.Params `json:"prms"`    // model parameters
	Damage  string     `json:"damage"`  // name of damage model; e.g. "Micro-Potential". empty means no damage
	Dmgprms dbf.Params `json:"dmgprms"` // damage model parameters
	Jfcn    string     `json:"jfcn"`    // function giving the critical J integral in terms of the temperature change

	// derived
	Jfunc dbf.T // critical J integral function; nil if Jfcn is empty
}

// MatDb implements a database of materials
type MatDb struct {

	// input
	Functions FuncsData   `json:"functions"` // all functions
	Materials []*Material `json:"materials"` // all materials

	// derived
	byName map[string]*Material
}

// ReadMat reads all materials data from a .mat JSON or YAML file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	if err = readAndDecode(filepath.Join(dir, fn), mdb); err != nil {
		return nil, err
	}

	// check and derived data
	mdb.byName = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if m.Name == "" {
			return nil, chk.Err("material name must not be empty")
		}
		if _, ok := mdb.byName[m.Name]; ok {
			return nil, chk.Err("material %q is defined more than once", m.Name)
		}
		if m.Model == "" {
			return nil, chk.Err("model of material %q must be given", m.Name)
		}
		mdb.byName[m.Name] = m
		if m.Jfcn != "" {
			m.Jfunc, err = mdb.Functions.Get(m.Jfcn)
			if err != nil {
				return nil, chk.Err("material %q:\n%v", m.Name, err)
			}
		}
	}
	return
}

// Get returns a material by name
func (o *MatDb) Get(name string) (m *Material, err error) {
	m, ok := o.byName[name]
	if !ok {
		return nil, chk.Err("cannot find material named %q", name)
	}
	return
}
