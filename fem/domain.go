// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/mokhairy2019/Kratos-sub001/inp"
)

// Solution holds the solution data @ nodes.
type Solution struct {

	// current state
	T      float64   // current time
	Dt     float64   // current time step
	Y      []float64 // DOFs (solution variables); e.g. y = u
	Dydt   []float64 // dy/dt
	D2ydt2 []float64 // d²y/dt²

	// auxiliary
	ΔY   []float64 // total increment within the current step (for nonlinear solver)
	Yold []float64 // y at the beginning of the step
	Vold []float64 // dy/dt at the beginning of the step
	Aold []float64 // d²y/dt² at the beginning of the step

	// coefficients of the time integration scheme; nil for static analyses
	Dyn *DynCoefs
}

// NewSolution allocates a solution with ny equations
func NewSolution(ny int, dynamic bool) (o *Solution) {
	o = new(Solution)
	o.Y = make([]float64, ny)
	o.ΔY = make([]float64, ny)
	o.Yold = make([]float64, ny)
	if dynamic {
		o.Dydt = make([]float64, ny)
		o.D2ydt2 = make([]float64, ny)
		o.Vold = make([]float64, ny)
		o.Aold = make([]float64, ny)
	}
	return
}

// Reset clear values
func (o *Solution) Reset() {
	o.T = 0
	for _, v := range [][]float64{o.Y, o.ΔY, o.Yold, o.Dydt, o.D2ydt2, o.Vold, o.Aold} {
		for i := range v {
			v[i] = 0
		}
	}
}

// Set copies values from another solution with the same sizes
func (o *Solution) Set(other *Solution) {
	o.T, o.Dt = other.T, other.Dt
	copy(o.Y, other.Y)
	copy(o.ΔY, other.ΔY)
	copy(o.Yold, other.Yold)
	copy(o.Dydt, other.Dydt)
	copy(o.D2ydt2, other.D2ydt2)
	copy(o.Vold, other.Vold)
	copy(o.Aold, other.Aold)
}

// Domain holds all Nodes and Elements active during a stage in addition to the Solution at nodes.
type Domain struct {

	// init: auxiliary variables
	Sim *inp.Simulation // input data
	Reg *inp.Region     // region data
	Msh *inp.Mesh       // mesh data

	// stage: nodes and elements
	Nodes  []*Node // active nodes (for each stage)
	Elems  []Elem  // active elements (for each stage)
	MyCids []int   // the ids of cells in Elems

	// stage: auxiliary maps for dofs
	F2Y map[string]string // converts f-keys to y-keys; e.g.: "fx" => "ux"
	Y2F map[string]string // converts y-keys to f-keys; e.g.: "ux" => "fx"

	// stage: auxiliary maps for nodes and elements
	Vid2node []*Node // [nverts] VertexId => index in Nodes. Inactive vertices are 'nil'
	Cid2elem []Elem  // [ncells] CellId => index in Elems. Inactive cells are 'nil'

	// stage: subsets of elements
	ElemIntvars []ElemIntvars // elements with internal vars

	// stage: boundary conditions
	EssenBcs EssentialBcs // prescribed values
	PtNatBcs PtNaturalBcs // point loads such as prescribed forces at nodes

	// stage: dimensions
	NnzKb int // number of nonzeros in Kb matrix (including repeated entries)
	Ny    int // total number of dofs

	// stage: solution
	Sol       *Solution       // solution state
	Reactions map[int]float64 // equation number => reaction at prescribed equations
	Nworkers  int             // number of goroutines for element loops

	// for divergence control
	bkpSol *Solution // backup solution
}

// NewDomains returns one domain for each region
func NewDomains(sim *inp.Simulation) (doms []*Domain) {
	doms = make([]*Domain, len(sim.Regions))
	for i, reg := range sim.Regions {
		doms[i] = &Domain{Sim: sim, Reg: reg, Msh: reg.Msh, Nworkers: sim.Strategy.Nworkers}
	}
	return
}

// SetStage set nodes, equation numbers and auxiliary data for given stage
func (o *Domain) SetStage(stgidx int) (err error) {

	// pointer to stage structure
	if stgidx < 0 || stgidx >= len(o.Sim.Stages) {
		return chk.Err("stage index %d is out of range. there are %d stages", stgidx, len(o.Sim.Stages))
	}
	stg := o.Sim.Stages[stgidx]

	// nodes and elements
	o.Nodes = make([]*Node, 0)
	o.Elems = make([]Elem, 0)
	o.MyCids = make([]int, 0)
	o.F2Y = make(map[string]string)
	o.Y2F = make(map[string]string)
	o.Vid2node = make([]*Node, len(o.Msh.Verts))
	o.Cid2elem = make([]Elem, len(o.Msh.Cells))
	o.ElemIntvars = make([]ElemIntvars, 0)

	// allocate nodes and cells -------------------------------------------------------------------

	// for each cell
	for _, cell := range o.Msh.Cells {

		// get element info
		info, err := GetElemInfo(cell, o.Reg, o.Sim)
		if err != nil {
			return fmt.Errorf("get element information failed:\n%w", err)
		}
		if len(info.Dofs) != len(cell.Verts) {
			return chk.Err("element info of cell %d has %d nodes. %d is required", cell.Id, len(info.Dofs), len(cell.Verts))
		}

		// store y and f information
		for ykey, fkey := range info.Y2F {
			o.F2Y[fkey] = ykey
			o.Y2F[ykey] = fkey
		}

		// new or existent nodes
		for j, v := range cell.Verts {
			nod := o.Vid2node[v]
			if nod == nil {
				nod = NewNode(o.Msh.Verts[v])
				o.Vid2node[v] = nod
				o.Nodes = append(o.Nodes, nod)
			}
			for _, ukey := range info.Dofs[j] {
				nod.AddDof(ukey)
			}
		}

		// new element
		ele, err := NewElem(cell, o.Reg, o.Sim)
		if err != nil {
			return err
		}
		o.Cid2elem[cell.Id] = ele
		o.Elems = append(o.Elems, ele)
		o.MyCids = append(o.MyCids, ele.Id())
		if e, ok := ele.(ElemIntvars); ok {
			o.ElemIntvars = append(o.ElemIntvars, e)
		}
	}

	// boundary conditions ------------------------------------------------------------------------

	// (re)set constraints and prescribed forces structures
	o.EssenBcs.Reset()
	o.PtNatBcs.Reset()

	// vertex boundary conditions
	for _, nc := range stg.NodeBcs {
		verts, ok := o.Msh.VertTag2verts[nc.Tag]
		if !ok {
			return chk.Err("cannot find vertices with tag = %d to assign node boundary conditions", nc.Tag)
		}
		for _, v := range verts {
			nod := o.Vid2node[v.Id]
			if nod == nil {
				continue
			}
			for j, key := range nc.Keys {
				fcn, err := o.Sim.Functions.Get(nc.Funcs[j])
				if err != nil {
					return err
				}
				if ykey, isload := o.F2Y[key]; isload {
					err = o.PtNatBcs.Set(key, ykey, nod, fcn)
				} else {
					err = o.EssenBcs.Set(key, []*Node{nod}, fcn)
				}
				if err != nil {
					return err
				}
			}
		}
	}

	// equation numbers and solution
	o.Sol = nil
	return o.NumberDofs()
}

// NumberDofs (re)numbers all equations following the order of nodes and dofs, sets the
// equations of elements and conditions and (re)allocates the solution. Values of an existent
// solution are kept
func (o *Domain) NumberDofs() (err error) {

	// old equations
	var old []int
	for _, nod := range o.Nodes {
		for _, dof := range nod.Dofs {
			old = append(old, dof.Eq)
		}
	}

	// number equations
	eq := 0
	for _, nod := range o.Nodes {
		for _, dof := range nod.Dofs {
			dof.Eq = eq
			eq++
		}
	}
	o.Ny = eq

	// elements' equations
	o.NnzKb = 0
	for _, cid := range o.MyCids {
		cell := o.Msh.Cells[cid]
		eqs := make([][]int, len(cell.Verts))
		ndof := 0
		for j, v := range cell.Verts {
			for _, dof := range o.Vid2node[v].Dofs {
				eqs[j] = append(eqs[j], dof.Eq)
			}
			ndof += len(eqs[j])
		}
		err = o.Cid2elem[cid].SetEqs(eqs)
		if err != nil {
			return fmt.Errorf("cannot set element equations:\n%w", err)
		}
		o.NnzKb += ndof * ndof
	}

	// conditions
	o.EssenBcs.Build(o.Ny)
	o.PtNatBcs.Build(o.F2Y)
	o.Reactions = make(map[int]float64)

	// solution
	dynamic := o.Sim.Strategy.Scheme != "static"
	if o.Sol == nil || len(old) != o.Ny {
		o.Sol = NewSolution(o.Ny, dynamic)
		return
	}
	prev := NewSolution(o.Ny, dynamic)
	prev.Set(o.Sol)
	k := 0
	for _, nod := range o.Nodes {
		for _, dof := range nod.Dofs {
			I, J := dof.Eq, old[k]
			for _, pair := range [][2][]float64{{o.Sol.Y, prev.Y}, {o.Sol.ΔY, prev.ΔY}, {o.Sol.Yold, prev.Yold},
				{o.Sol.Dydt, prev.Dydt}, {o.Sol.D2ydt2, prev.D2ydt2}, {o.Sol.Vold, prev.Vold}, {o.Sol.Aold, prev.Aold}} {
				if len(pair[0]) > 0 {
					pair[0][I] = pair[1][J]
				}
			}
			k++
		}
	}
	return
}

// SetIniVals sets/resets initial values (nodes and integration points)
func (o *Domain) SetIniVals(zeroSol bool) (err error) {
	if zeroSol {
		o.Sol.Reset()
	}
	for _, e := range o.ElemIntvars {
		err = e.SetIniIvs(o.Sol, nil)
		if err != nil {
			return
		}
	}
	o.Sol.T = 0
	return
}

// Check runs the checks of all elements
func (o *Domain) Check() (err error) {
	for _, e := range o.Elems {
		err = e.Check(o.Msh.Ndim)
		if err != nil {
			return fmt.Errorf("check of element %d failed:\n%w", e.Id(), err)
		}
	}
	return
}

// UpdateElements computes the trial state of all elements from the current solution
func (o *Domain) UpdateElements() error {
	return parallelFor(len(o.Elems), o.Nworkers, func(w, start, end int) (err error) {
		for _, e := range o.Elems[start:end] {
			err = e.Update(o.Sol)
			if err != nil {
				return
			}
		}
		return
	})
}

// FinalizeElements commits the trial state of all elements
func (o *Domain) FinalizeElements() error {
	return parallelFor(len(o.Elems), o.Nworkers, func(w, start, end int) (err error) {
		for _, e := range o.Elems[start:end] {
			err = e.Finalize(o.Sol)
			if err != nil {
				return
			}
		}
		return
	})
}

// MoveMesh updates the current coordinates of nodes with the displacements
func (o *Domain) MoveMesh() {
	for _, nod := range o.Nodes {
		for i, key := range []string{"ux", "uy", "uz"} {
			if i >= len(nod.X) {
				break
			}
			if eq := nod.GetEq(key); eq >= 0 {
				nod.X[i] = nod.Vert.C[i] + o.Sol.Y[eq]
			}
		}
	}
}

// GetValue returns the value of dof key at vertex vid
func (o *Domain) GetValue(vid int, key string) (v float64, err error) {
	if vid < 0 || vid >= len(o.Vid2node) || o.Vid2node[vid] == nil {
		return 0, chk.Err("vertex %d is not active", vid)
	}
	eq := o.Vid2node[vid].GetEq(key)
	if eq < 0 {
		return 0, chk.Err("vertex %d has no dof %q", vid, key)
	}
	return o.Sol.Y[eq], nil
}

// GetReaction returns the reaction of dof key at vertex vid
func (o *Domain) GetReaction(vid int, key string) (r float64, err error) {
	if vid < 0 || vid >= len(o.Vid2node) || o.Vid2node[vid] == nil {
		return 0, chk.Err("vertex %d is not active", vid)
	}
	eq := o.Vid2node[vid].GetEq(key)
	r, ok := o.Reactions[eq]
	if !ok {
		return 0, chk.Err("vertex %d has no reaction for %q", vid, key)
	}
	return
}

// auxiliary functions //////////////////////////////////////////////////////////////////////////////

// backup saves a copy of solution and of the committed internal variables
func (o *Domain) backup() (err error) {
	if o.bkpSol == nil || len(o.bkpSol.Y) != o.Ny {
		o.bkpSol = NewSolution(o.Ny, o.Sol.Dydt != nil)
	}
	o.bkpSol.Set(o.Sol)
	for _, e := range o.Elems {
		err = e.BackupIvs()
		if err != nil {
			return
		}
	}
	return
}

// restore restores solution and internal variables from backup
func (o *Domain) restore() (err error) {
	if o.bkpSol == nil {
		return chk.Err("cannot restore solution: backup is not available")
	}
	o.Sol.Set(o.bkpSol)
	for _, e := range o.Elems {
		err = e.RestoreIvs()
		if err != nil {
			return
		}
	}
	return
}
