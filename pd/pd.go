// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pd runs peridynamic simulations with prescribed motions: at every step it
// computes bond damage and force densities of all regions and accepts the new state
package pd

import (
	"context"
	"log/slog"
	"time"

	"github.com/cpmech/gopd/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// TolT is the relative tolerance to compare times
const TolT = 1e-10

// Main holds all data for a peridynamic simulation
type Main struct {
	Sim     *inp.Simulation // simulation data
	Summary *Summary        // summary structure
	Domains []*Domain       // all domains
	Metrics *Metrics        // statistics
	Log     *slog.Logger    // logger
	Verbose bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple simulations
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
//   logger      -- logger; nil means no logging
func NewMain(simfilepath, alias string, erasePrev, verbose bool, logger *slog.Logger) (o *Main, err error) {

	// new Main object
	o = &Main{Verbose: verbose, Log: logger}
	if o.Log == nil {
		o.Log = discardLogger()
	}

	// read input data
	if o.Sim, err = inp.ReadSim(simfilepath, alias, erasePrev); err != nil {
		return nil, chk.Err("cannot read simulation input data:\n%v", err)
	}

	// allocate domains
	if o.Domains, err = NewDomains(o.Sim); err != nil {
		return nil, err
	}

	// summary and metrics
	o.Summary = NewSummary(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, o.Sim.Data.Compress, len(o.Domains))
	o.Metrics = NewMetrics()
	return
}

// Run runs the simulation until the final time or until ctx is done. Cancellation is
// only checked between steps
func (o *Main) Run(ctx context.Context) (err error) {

	// control
	ctrl := &o.Sim.Control
	t := 0.0
	dt := ctrl.DtFunc.F(t, nil)
	tout := t + ctrl.DtoFunc.F(t, nil)
	o.Log.Info("simulation started", "key", o.Sim.Key, "run", o.Summary.RunId,
		"regions", len(o.Domains), "tf", ctrl.Tf, "dt", dt)

	// initialise domains
	cputime := time.Now()
	for _, d := range o.Domains {
		if err = d.Initialize(dt); err != nil {
			return chk.Err("cannot initialise region %d:\n%v", d.Index, err)
		}
		o.Log.Debug("region initialised", "region", d.Index, "points", d.Blk.List.Npoints,
			"bonds", d.Blk.List.Nbonds(), "model", d.Mat.Model)
	}
	if err = o.Summary.SaveResults(o.Domains, t, o.Verbose); err != nil {
		return
	}

	// time loop
	nbroken := make([]int, len(o.Domains))
	for ctrl.Tf-t > TolT*ctrl.Tf {

		// stop?
		if err = ctx.Err(); err != nil {
			o.Log.Warn("simulation stopped", "t", t, "err", err)
			return chk.Err("simulation stopped at t=%g: %v", t, err)
		}

		// compute NP1 state of all domains
		dt = ctrl.DtFunc.F(t, nil)
		t += dt
		start := time.Now()
		for i, d := range o.Domains {
			if nbroken[i], err = d.Step(t, dt); err != nil {
				o.Log.Error("step failed", "t", t, "region", d.Index, "err", err)
				return chk.Err("step %d failed at t=%g in region %d:\n%v", o.Summary.Nsteps+1, t, d.Index, err)
			}
		}

		// accept
		for i, d := range o.Domains {
			d.Accept(nbroken[i])
			o.Summary.Nbroken[i] = d.Nbroken
		}
		o.Summary.Nsteps++
		o.Metrics.Observe(o.Domains, nbroken, time.Since(start).Seconds())
		o.Log.Debug("step", "n", o.Summary.Nsteps, "t", t, "dt", dt, "broken", nbroken)
		if o.Verbose {
			io.Pf("> t = %g\n", t)
		}

		// output
		if t >= tout-TolT*ctrl.Tf {
			if err = o.Summary.SaveResults(o.Domains, t, o.Verbose); err != nil {
				return
			}
			tout += ctrl.DtoFunc.F(t, nil)
		}
	}

	// save summary and metrics
	o.Summary.CpuTime = time.Since(cputime)
	if err = o.Summary.Save(o.Verbose); err != nil {
		return
	}
	if o.Sim.Data.Stat {
		if err = o.Metrics.Save(o.Sim.DirOut, o.Sim.Key, o.Verbose); err != nil {
			return
		}
	}
	o.Log.Info("simulation finished", "key", o.Sim.Key, "steps", o.Summary.Nsteps,
		"broken", o.Summary.Nbroken, "cputime", o.Summary.CpuTime)
	return
}
