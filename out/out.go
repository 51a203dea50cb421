// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of peridynamic simulation results
package out

import (
	"github.com/cpmech/gopd/inp"
	"github.com/cpmech/gopd/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

// constants
var (
	TolC = 1e-8 // tolerance to compare x-y-z coordinates
	TolT = 1e-3 // tolerance to compare times
	Ndiv = 20   // bins n-division
)

// ResultsMap maps aliases to points
type ResultsMap map[string]Points

// Global variables
var (

	// data set by Start
	Sim       *inp.Simulation // simulation input data
	Sum       *pd.Summary     // summary of the run
	Cloud     *inp.Cloud      // points of the selected region
	RegionIdx int             // index of the selected region
	Bins      gm.Bins         // bins for points

	// defined entities and results loaded by LoadResults
	Results  ResultsMap // maps aliases => points
	TimeInds []int      // selected output indices
	Times    []float64  // selected output times
)

// Start starts handling of results given a simulation input file
func Start(simfnpath string, regionIdx int) (err error) {

	// input data
	Sim, err = inp.ReadSim(simfnpath, "", false)
	if err != nil {
		return
	}
	if regionIdx < 0 || regionIdx >= len(Sim.Regions) {
		return chk.Err("region index %d is out of range; there are %d regions", regionIdx, len(Sim.Regions))
	}
	RegionIdx = regionIdx
	Cloud = Sim.Regions[regionIdx].Cloud

	// summary
	Sum, err = pd.ReadSummary(Sim.DirOut, Sim.Key, Sim.EncType, Sim.Data.Compress)
	if err != nil {
		return chk.Err("cannot read summary; has the simulation been run?\n%v", err)
	}

	// bins
	if err = initBins(); err != nil {
		return
	}

	// clear previous data
	Results = make(map[string]Points)
	TimeInds = make([]int, 0)
	Times = make([]float64, 0)
	return
}

// initBins puts all points of the selected region into bins; directions along which
// the cloud is flat get a single division
func initBins() (err error) {
	if len(Cloud.Verts) < 1 {
		return chk.Err("region %d has no points", RegionIdx)
	}
	δ := TolC * 2
	xi := []float64{Cloud.Xmin - δ, Cloud.Ymin - δ, Cloud.Zmin - δ}
	xf := []float64{Cloud.Xmax + δ, Cloud.Ymax + δ, Cloud.Zmax + δ}
	ndiv := []int{1, 1, 1}
	for k := 0; k < 3; k++ {
		if xf[k]-xi[k] > 3*δ {
			ndiv[k] = Ndiv
		}
	}
	Bins = gm.Bins{}
	Bins.Init(xi, xf, ndiv)
	for _, v := range Cloud.Verts {
		Bins.Append(v.C, v.Id, nil)
	}
	return
}
