// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.mat) JSON or YAML files
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc      string `json:"desc"`      // description of simulation
	Matfile   string `json:"matfile"`   // materials file path
	DirOut    string `json:"dirout"`    // directory for output; e.g. /tmp/gopd
	Encoder   string `json:"encoder"`   // encoder name; e.g. "gob" "json"
	Compress  bool   `json:"compress"`  // compress output files with brotli
	Workers   int    `json:"workers"`   // number of goroutines for point loops; 0 means 1
	Influence string `json:"influence"` // influence function; e.g. "One", "Parabolic Decay", "Gaussian"
	Debug     bool   `json:"debug"`     // log every step
	Stat      bool   `json:"stat"`      // collect and write metrics
}

// Region holds region data
type Region struct {
	Desc    string       `json:"desc"`    // description of region. ex: bar, plate, etc.
	Mat     string       `json:"mat"`     // material name
	Ptsfile string       `json:"ptsfile"` // file path of file with points data
	Lattice *LatticeData `json:"lattice"` // generate points instead of reading them
	AbsPath bool         `json:"abspath"` // points filename is given in absolute path

	// derived
	Cloud *Cloud // the points
}

// MotionData holds data for prescribing motions and temperatures
//  y = X + g(t) H X ; v = dg/dt H X ; ΔT = T(t)
type MotionData struct {
	Fcn     string    `json:"fcn"`     // g(t): function name; "zero" or "none" means no motion
	Grad    []float64 `json:"grad"`    // [9] displacement gradient H in row-major order
	Tempfcn string    `json:"tempfcn"` // T(t): temperature change function name; empty means no temperature change

	// derived
	Gfunc dbf.T // g(t)
	Tfunc dbf.T // T(t); nil if Tempfcn is empty
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf     float64 `json:"tf"`     // final time
	Dt     float64 `json:"dt"`     // time step size (if constant)
	DtOut  float64 `json:"dtout"`  // time step size for output
	DtFcn  string  `json:"dtfcn"`  // time step size (function name)
	DtoFcn string  `json:"dtofcn"` // time step size for output (function name)

	// derived
	DtFunc  dbf.T // time step function
	DtoFunc dbf.T // output time step function
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // stores global simulation data
	Functions FuncsData   `json:"functions"` // stores all functions
	Regions   []*Region   `json:"regions"`   // stores all regions
	Motion    MotionData  `json:"motion"`    // prescribed motion
	Control   TimeControl `json:"control"`   // time control

	// derived
	DirOut    string // directory to save results
	Key       string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType   string // encoder type
	MatParams *MatDb // materials' parameters
}

// ReadSim reads all simulation data from a .sim JSON or YAML file
func ReadSim(simfilepath, alias string, erasefiles bool) (o *Simulation, err error) {

	// decode
	o = new(Simulation)
	if err = readAndDecode(simfilepath, o); err != nil {
		return nil, err
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := fnKey(simfilepath)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gopd/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// number of goroutines
	if o.Data.Workers < 1 {
		o.Data.Workers = 1
	}

	// create directory and erase previous simulation results
	if erasefiles {
		if err = os.MkdirAll(o.DirOut, 0777); err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// read materials database
	if o.MatParams, err = ReadMat(dir, o.Data.Matfile); err != nil {
		return nil, chk.Err("cannot read materials database:\n%v", err)
	}

	// regions
	if len(o.Regions) < 1 {
		return nil, chk.Err("there must be at least one region")
	}
	for i, reg := range o.Regions {
		if _, err = o.MatParams.Get(reg.Mat); err != nil {
			return nil, chk.Err("region %d:\n%v", i, err)
		}
		switch {
		case reg.Lattice != nil:
			reg.Cloud, err = reg.Lattice.Generate()
		case reg.Ptsfile != "":
			ddir := dir
			if reg.AbsPath {
				ddir = ""
			}
			reg.Cloud, err = ReadCloud(ddir, reg.Ptsfile)
		default:
			err = chk.Err("either ptsfile or lattice must be given")
		}
		if err != nil {
			return nil, chk.Err("region %d:\n%v", i, err)
		}
	}

	// motion
	if err = o.Motion.init(o.Functions); err != nil {
		return nil, err
	}

	// time control
	err = o.Control.init(o.Functions)
	return
}

// init resolves the functions of the prescribed motion
func (o *MotionData) init(functions FuncsData) (err error) {
	if o.Fcn == "" {
		o.Fcn = "zero"
	}
	if o.Gfunc, err = functions.Get(o.Fcn); err != nil {
		return chk.Err("motion: %v", err)
	}
	if len(o.Grad) == 0 {
		o.Grad = make([]float64, 9)
	}
	if len(o.Grad) != 9 {
		return chk.Err("motion: displacement gradient must have 9 components; got %d", len(o.Grad))
	}
	if o.Tempfcn != "" {
		if o.Tfunc, err = functions.Get(o.Tempfcn); err != nil {
			return chk.Err("motion: %v", err)
		}
	}
	return
}

// init fixes the time control values and resolves its functions
func (o *TimeControl) init(functions FuncsData) (err error) {

	// fix Tf
	if o.Tf < 1e-14 {
		o.Tf = 1
	}

	// fix Dt
	if o.DtFcn == "" {
		if o.Dt < 1e-14 {
			o.Dt = 1
		}
		o.DtFunc = &dbf.Cte{C: o.Dt}
	} else {
		if o.DtFunc, err = functions.Get(o.DtFcn); err != nil {
			return chk.Err("cannot find DtFunc named %q:\n%v", o.DtFcn, err)
		}
		o.Dt = o.DtFunc.F(0, nil)
	}

	// fix DtOut
	if o.DtoFcn == "" {
		if o.DtOut < 1e-14 {
			o.DtOut = o.Dt
			o.DtoFunc = o.DtFunc
		} else {
			if o.DtOut < o.Dt {
				o.DtOut = o.Dt
			}
			o.DtoFunc = &dbf.Cte{C: o.DtOut}
		}
	} else {
		if o.DtoFunc, err = functions.Get(o.DtoFcn); err != nil {
			return chk.Err("cannot find DtoFunc named %q:\n%v", o.DtoFcn, err)
		}
		o.DtOut = o.DtoFunc.F(0, nil)
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o.Data, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
