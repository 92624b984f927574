// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/linsol"
)

// Elem defines what elements must calculate
type Elem interface {

	// information and initialisation
	Id() int                    // returns the cell Id
	SetEqs(eqs [][]int) error   // set equations
	NodalDofs() int             // number of dofs per node
	Check(ndim int) (err error) // validates element and material data (called once, before solving)

	// called for each iteration
	AddToRhs(fb []float64, sol *Solution) (err error)                    // adds -R to global residual vector fb
	AddToKb(Kb *linsol.Triplet, sol *Solution, firstIt bool) (err error) // adds element K to global Jacobian matrix Kb
	Update(sol *Solution) (err error)                                    // computes trial state from current solution

	// called for each converged step
	Finalize(sol *Solution) (err error) // commits trial state

	// internal variables
	BackupIvs() (err error)  // create copy of committed internal variables
	RestoreIvs() (err error) // restore internal variables from copy

	// reading and writing of element data
	Encode(enc inp.Encoder) (err error) // encodes internal variables
	Decode(dec inp.Decoder) (err error) // decodes internal variables
}

// ElemIntvars defines elements with internal variables at integration points
type ElemIntvars interface {
	Ipoints() (coords [][]float64)                                 // returns the real coordinates of integration points [nip][ndim]
	SetIniIvs(sol *Solution, ivs map[string][]float64) (err error) // sets initial ivs for given values in sol and ivs map
}

// Info holds all information required to set a simulation stage
type Info struct {
	Dofs [][]string        // solution variables PER NODE. ex for 2 nodes: [["ux", "uy"], ["ux", "uy"]]
	Y2F  map[string]string // maps "y" keys to "f" keys. ex: "ux" => "fx"
}

// GetElemInfo returns information about elements/formulations
func GetElemInfo(cell *inp.Cell, reg *inp.Region, sim *inp.Simulation) (info *Info, err error) {
	edat := reg.Etag2data(cell.Tag)
	if edat == nil {
		return nil, chk.Err("cannot get data for element {tag=%d, id=%d}", cell.Tag, cell.Id)
	}
	infogetter, ok := infogetters[edat.Type]
	if !ok {
		return nil, chk.Err("cannot get info for element {type=%q, tag=%d, id=%d}", edat.Type, cell.Tag, cell.Id)
	}
	info = infogetter(sim, cell, edat)
	if info == nil {
		return nil, chk.Err("info for element {type=%q, tag=%d, id=%d} is not available", edat.Type, cell.Tag, cell.Id)
	}
	return
}

// NewElem returns a new element from its type; e.g. "u" or "rod"
func NewElem(cell *inp.Cell, reg *inp.Region, sim *inp.Simulation) (ele Elem, err error) {
	edat := reg.Etag2data(cell.Tag)
	if edat == nil {
		return nil, chk.Err("cannot get data for element {tag=%d, id=%d}", cell.Tag, cell.Id)
	}
	allocator, ok := eallocators[edat.Type]
	if !ok {
		return nil, chk.Err("cannot get allocator for element {type=%q, tag=%d, id=%d}", edat.Type, cell.Tag, cell.Id)
	}
	x := BuildCoordsMatrix(cell, reg.Msh)
	ele, err = allocator(sim, cell, edat, x)
	if err != nil {
		return nil, fmt.Errorf("element {type=%q, tag=%d, id=%d} cannot be allocated:\n%w", edat.Type, cell.Tag, cell.Id, err)
	}
	return
}

// BuildCoordsMatrix returns the coordinate matrix of a particular Cell
func BuildCoordsMatrix(cell *inp.Cell, msh *inp.Mesh) (x [][]float64) {
	x = utl.Alloc(msh.Ndim, len(cell.Verts))
	for i := 0; i < msh.Ndim; i++ {
		for j, v := range cell.Verts {
			x[i][j] = msh.Verts[v].C[i]
		}
	}
	return
}

// displacementInfo returns the info of elements with displacements as primary variables
func displacementInfo(ndim, nverts int) *Info {
	ykeys := []string{"ux", "uy"}
	if ndim == 3 {
		ykeys = []string{"ux", "uy", "uz"}
	}
	var info Info
	info.Dofs = make([][]string, nverts)
	for m := 0; m < nverts; m++ {
		info.Dofs[m] = ykeys
	}
	info.Y2F = map[string]string{"ux": "fx", "uy": "fy", "uz": "fz"}
	return &info
}

// infogetters holds all available formulations/info; elemType => infogetter
var infogetters = make(map[string]func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *Info)

// eallocators holds all available elements; elemType => eallocator
var eallocators = make(map[string]func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) (Elem, error))
