// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"github.com/mokhairy2019/Kratos-sub001/shp"
)

// constants
const Ztol = 1e-7

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id"`  // id
	Tag int       `json:"tag"` // tag
	C   []float64 `json:"c"`   // coordinates (size==2 or 3)
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    `json:"id"`    // id
	Tag   int    `json:"tag"`   // tag
	Type  string `json:"type"`  // geometry type; e.g. "qua4"
	Verts []int  `json:"verts"` // vertices

	// derived
	Shp *shp.Shape `json:"-"` // shape structure
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// from JSON
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell // cell tag => set of cells
}

// ReadMsh reads a mesh for FE analyses
func ReadMsh(dir, fn string, goroutineId int) (o *Mesh, err error) {
	o = new(Mesh)
	o.FnamePath = filepath.Join(dir, fn)
	b, err := os.ReadFile(o.FnamePath)
	if err != nil {
		return nil, kerr.Config("mshfile", "cannot read mesh file %q: %v", o.FnamePath, err)
	}
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", o.FnamePath, err)
	}
	err = o.setDerived(goroutineId)
	if err != nil {
		return nil, chk.Err("mesh file %q: %v", o.FnamePath, err)
	}
	return
}

// setDerived checks the mesh and computes derived data
func (o *Mesh) setDerived(goroutineId int) (err error) {

	// check
	if len(o.Verts) < 2 {
		return chk.Err("at least 2 vertices are required. %d is invalid", len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return chk.Err("at least 1 cell is required")
	}

	// vertex related derived data
	o.Ndim = 2
	o.Xmin, o.Xmax = math.Inf(1), math.Inf(-1)
	o.Ymin, o.Ymax = math.Inf(1), math.Inf(-1)
	if len(o.Verts[0].C) > 2 {
		o.Zmin, o.Zmax = o.Verts[0].C[2], o.Verts[0].C[2]
	}
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertex ids must be sequential. vertex %d has id = %d", i, v.Id)
		}
		nd := len(v.C)
		if nd < 2 || nd > 3 {
			return chk.Err("vertex %d must have 2 or 3 coordinates. %d is invalid", i, nd)
		}
		if nd == 3 && math.Abs(v.C[2]) > Ztol {
			o.Ndim = 3
		}
		if v.Tag < 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}
		o.Xmin, o.Xmax = math.Min(o.Xmin, v.C[0]), math.Max(o.Xmax, v.C[0])
		o.Ymin, o.Ymax = math.Min(o.Ymin, v.C[1]), math.Max(o.Ymax, v.C[1])
		if nd > 2 {
			o.Zmin, o.Zmax = math.Min(o.Zmin, v.C[2]), math.Max(o.Zmax, v.C[2])
		}
	}

	// cells
	o.CellTag2cells = make(map[int][]*Cell)
	for i, c := range o.Cells {
		if c.Id != i {
			return chk.Err("cell ids must be sequential. cell %d has id = %d", i, c.Id)
		}
		if c.Tag >= 0 {
			return chk.Err("cell tags must be negative. cell %d has tag = %d", i, c.Tag)
		}
		c.Shp = shp.Get(c.Type, goroutineId)
		if c.Shp == nil {
			return chk.Err("cannot find shape %q of cell %d", c.Type, i)
		}
		if len(c.Verts) != c.Shp.Nverts {
			return chk.Err("cell %d of type %q must have %d vertices. %d is invalid", i, c.Type, c.Shp.Nverts, len(c.Verts))
		}
		for _, v := range c.Verts {
			if v < 0 || v >= len(o.Verts) {
				return chk.Err("cell %d refers to a non-existent vertex %d", i, v)
			}
		}
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
	}
	return
}

// ExtractCellCoords extracts cell coordinates
//   X -- matrix with coordinates [ndim][nverts]
func (o *Mesh) ExtractCellCoords(cellId int) (X [][]float64) {
	c := o.Cells[cellId]
	X = make([][]float64, o.Ndim)
	for i := 0; i < o.Ndim; i++ {
		X[i] = make([]float64, len(c.Verts))
		for j, v := range c.Verts {
			X[i][j] = o.Verts[v].C[i]
		}
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	return l + "] }"
}
