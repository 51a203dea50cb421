// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/andybalholm/brotli"
	"github.com/cpmech/gopd/field"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Snapshot holds the point fields of a domain at an output time
type Snapshot struct {
	T      float64              // time
	Fields map[string][]float64 // field label => values at N
}

// SaveSnapshot saves the point fields to a file which name is set with tidx (time output index)
func (o *Domain) SaveSnapshot(tidx int, t float64, verbose bool) (err error) {

	// collect point fields
	snap := Snapshot{T: t, Fields: make(map[string][]float64)}
	s := o.Blk.Store
	for _, id := range s.Ids() {
		spec := o.Man.Spec(id)
		if spec.Relation == field.Point {
			snap.Fields[spec.Label] = s.Get(id, field.StepN)
		}
	}

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, o.Sim.EncType)
	if err = enc.Encode(snap); err != nil {
		return chk.Err("cannot encode snapshot of region %d:\n%v", o.Index, err)
	}

	// save file
	fn := outSnapPath(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, o.Index, tidx, o.Sim.Data.Compress)
	return saveFile(fn, &buf, o.Sim.Data.Compress, verbose)
}

// ReadSnapshot reads the point fields from a file which name is set with tidx (time output index)
func ReadSnapshot(dir, fnkey, enctype string, compressed bool, ridx, tidx int) (snap *Snapshot, err error) {
	fn := outSnapPath(dir, fnkey, enctype, ridx, tidx, compressed)
	err = readFile(fn, enctype, compressed, func(dec Decoder) error {
		snap = new(Snapshot)
		return dec.Decode(snap)
	})
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func outSnapPath(dir, fnkey, enctype string, ridx, tidx int, compressed bool) string {
	return filepath.Join(dir, io.Sf("%s_r%d_pts_%010d.%s", fnkey, ridx, tidx, ext(enctype, compressed)))
}

func outSumPath(dir, fnkey, enctype string, compressed bool) string {
	return filepath.Join(dir, io.Sf("%s_sum.%s", fnkey, ext(enctype, compressed)))
}

func ext(enctype string, compressed bool) string {
	if compressed {
		return enctype + ".br"
	}
	return enctype
}

// saveFile writes the buffer to a file, optionally compressing it
func saveFile(filename string, buf *bytes.Buffer, compress, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	if compress {
		w := brotli.NewWriter(fil)
		if _, err = w.Write(buf.Bytes()); err != nil {
			return
		}
		err = w.Close()
	} else {
		_, err = fil.Write(buf.Bytes())
	}
	if verbose && err == nil {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}

// readFile opens a file, optionally decompressing it, and calls decode
func readFile(filename, enctype string, compressed bool, decode func(dec Decoder) error) (err error) {
	fil, err := os.Open(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	var r goio.Reader = fil
	if compressed {
		r = brotli.NewReader(fil)
	}
	if err = decode(GetDecoder(r, enctype)); err != nil {
		return chk.Err("cannot decode file %q:\n%v", filename, err)
	}
	return
}
