// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// isYaml tells whether a file is given in YAML format; e.g. bar.sim.yaml
func isYaml(fnpath string) bool {
	ext := strings.ToLower(filepath.Ext(fnpath))
	return ext == ".yaml" || ext == ".yml"
}

// fnKey returns the filename key; e.g. /tmp/bar.sim.yaml => bar
func fnKey(fnpath string) string {
	fn := filepath.Base(fnpath)
	if isYaml(fn) {
		fn = io.FnKey(fn)
	}
	return io.FnKey(fn)
}

// readAndDecode reads a JSON or YAML file into v
//  Note: YAML keys are the lowercase names of fields, which match the JSON tags
func readAndDecode(fnpath string, v interface{}) (err error) {
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return chk.Err("cannot read file %q:\n%v", fnpath, err)
	}
	if isYaml(fnpath) {
		err = yaml.Unmarshal(b, v)
	} else {
		err = json.Unmarshal(b, v)
	}
	if err != nil {
		return chk.Err("cannot decode file %q:\n%v", fnpath, err)
	}
	return
}
