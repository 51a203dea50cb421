// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cpmech/gopd/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	debug := io.ArgToBool(3, false)
	alias := io.ArgToString(4, "")

	// message
	if verbose {
		io.PfWhite("\nGopd -- Go Peridynamics\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"log every step", "debug", debug,
			"word to add to results", "alias", alias,
		))
	}

	// simulation
	logger := pd.NewLogger(os.Stderr, debug)
	analysis, err := pd.NewMain(fnamepath, alias, erasePrev, verbose, logger)
	if err != nil {
		chk.Panic("NewMain failed:\n%v", err)
	}
	if analysis.Sim.Data.Debug {
		analysis.Log = pd.NewLogger(os.Stderr, true)
	}

	// run simulation; interrupting stops at the end of the current step
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err = analysis.Run(ctx); err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}
