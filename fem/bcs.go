// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// EssentialBc holds a prescribed value of one dof: y[Eq] = Fcn(t)
type EssentialBc struct {
	Key  string // dof key; e.g. "ux"
	Node *Node  // node owning the dof
	Eq   int    // equation number
	Fcn  dbf.T  // prescribed value function
}

// EssentialBcs holds all essential boundary conditions
type EssentialBcs struct {
	Bcs   []*EssentialBc // all conditions; sorted by equation number after Build
	fixed []bool         // [ny] equation is prescribed
}

// Reset clears all conditions
func (o *EssentialBcs) Reset() {
	o.Bcs = o.Bcs[:0]
	o.fixed = nil
}

// Set sets essential condition of key at nodes. A later call with the same node/key
// replaces the function
func (o *EssentialBcs) Set(key string, nodes []*Node, fcn dbf.T) (err error) {
	for _, nod := range nodes {
		if nod.GetDof(key) == nil {
			return chk.Err("cannot set essential condition %q: node %d has no such dof", key, nod.Vert.Id)
		}
		replaced := false
		for _, bc := range o.Bcs {
			if bc.Node == nod && bc.Key == key {
				bc.Fcn = fcn
				replaced = true
			}
		}
		if !replaced {
			o.Bcs = append(o.Bcs, &EssentialBc{key, nod, -1, fcn})
		}
	}
	return
}

// Build (re)sets the equation numbers from nodes and allocates the map of fixed equations
func (o *EssentialBcs) Build(ny int) {
	o.fixed = make([]bool, ny)
	for _, bc := range o.Bcs {
		bc.Eq = bc.Node.GetEq(bc.Key)
		o.fixed[bc.Eq] = true
	}
	sort.SliceStable(o.Bcs, func(i, j int) bool { return o.Bcs[i].Eq < o.Bcs[j].Eq })
}

// Fixed returns the flags of fixed equations [ny]
func (o *EssentialBcs) Fixed() []bool { return o.fixed }

// Apply sets the prescribed values at time t into y
func (o *EssentialBcs) Apply(y []float64, t float64) {
	for _, bc := range o.Bcs {
		y[bc.Eq] = bc.Fcn.F(t, nil)
	}
}

// PointLoad holds a concentrated load: fb[Eq] += Fcn(t)
type PointLoad struct {
	Key  string // load key; e.g. "fx"
	Node *Node  // node where the load is applied
	Eq   int    // equation number
	Fcn  dbf.T  // load function
}

// PtNaturalBcs holds all point loads
type PtNaturalBcs struct {
	Loads []*PointLoad
}

// Reset clears all loads
func (o *PtNaturalBcs) Reset() {
	o.Loads = o.Loads[:0]
}

// Set adds a point load. ykey is the dof key corresponding to the load; e.g. "ux" for "fx"
func (o *PtNaturalBcs) Set(key, ykey string, nod *Node, fcn dbf.T) (err error) {
	if nod.GetDof(ykey) == nil {
		return chk.Err("cannot set point load %q: node %d has no dof %q", key, nod.Vert.Id, ykey)
	}
	o.Loads = append(o.Loads, &PointLoad{key, nod, -1, fcn})
	return
}

// Build (re)sets the equation numbers from nodes
func (o *PtNaturalBcs) Build(f2y map[string]string) {
	for _, l := range o.Loads {
		l.Eq = l.Node.GetEq(f2y[l.Key])
	}
}

// AddToRhs adds the loads at time t to fb
func (o *PtNaturalBcs) AddToRhs(fb []float64, t float64) {
	for _, l := range o.Loads {
		fb[l.Eq] += l.Fcn.F(t, nil)
	}
}
