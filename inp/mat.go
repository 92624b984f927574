// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// Material holds material data
type Material struct {
	Name  string     `json:"name"`  // name of material
	Model string     `json:"model"` // name of model; e.g. "lin-elast", "vm", "dp"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // all model parameters for this material
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	fpath := filepath.Join(dir, fn)
	b, err := os.ReadFile(fpath)
	if err != nil {
		return nil, kerr.Config("matfile", "cannot read materials file %q: %v", fpath, err)
	}
	return ParseMat(b)
}

// ParseMat decodes a materials database
func ParseMat(b []byte) (mdb *MatDb, err error) {
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials database:\n%v", err)
	}
	names := make(map[string]bool)
	for i, m := range mdb.Materials {
		if m.Name == "" {
			return nil, chk.Err("material %d has no name", i)
		}
		if names[m.Name] {
			return nil, chk.Err("material %q is defined twice", m.Name)
		}
		names[m.Name] = true
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}
