// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"bytes"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/google/uuid"
)

// Summary records summary of outputs
type Summary struct {

	// main data
	RunId      string        // identifier of the run that produced the results
	Nregions   int           // number of regions (domains)
	OutTimes   []float64     // [nOutTimes] output times
	Nsteps     int           // number of steps
	Nbroken    []int         // [nregions] number of broken bonds
	CpuTime    time.Duration // elapsed time
	Dirout     string        // directory where results are stored
	Fnkey      string        // filename key of simulation
	Encoder    string        // encoder type
	Compressed bool          // output files are compressed

	// auxiliary
	tidx int // time output index
}

// NewSummary returns a new summary with a new run identifier
func NewSummary(dirout, fnkey, encoder string, compressed bool, nregions int) *Summary {
	return &Summary{
		RunId:      uuid.NewString(),
		Nregions:   nregions,
		Nbroken:    make([]int, nregions),
		Dirout:     dirout,
		Fnkey:      fnkey,
		Encoder:    encoder,
		Compressed: compressed,
	}
}

// SaveResults saves the results of all domains at time t
func (o *Summary) SaveResults(doms []*Domain, t float64, verbose bool) (err error) {
	for _, d := range doms {
		if err = d.SaveSnapshot(o.tidx, t, verbose); err != nil {
			return
		}
	}
	o.OutTimes = append(o.OutTimes, t)
	o.tidx++
	return
}

// Save saves summary to disc
func (o *Summary) Save(verbose bool) (err error) {
	var buf bytes.Buffer
	enc := GetEncoder(&buf, o.Encoder)
	if err = enc.Encode(o); err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}
	return saveFile(outSumPath(o.Dirout, o.Fnkey, o.Encoder, o.Compressed), &buf, o.Compressed, verbose)
}

// ReadSummary reads summary back
func ReadSummary(dir, fnkey, enctype string, compressed bool) (o *Summary, err error) {
	err = readFile(outSumPath(dir, fnkey, enctype, compressed), enctype, compressed, func(dec Decoder) error {
		o = new(Summary)
		return dec.Decode(o)
	})
	return
}
