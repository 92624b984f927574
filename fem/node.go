// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/inp"
)

// Dof holds information about a degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key. e.g. "ux"
	Eq  int    // equation number; -1 means not numbered yet
}

// Node holds node dofs information
type Node struct {
	Vert *inp.Vert // pointer to Vertex
	X    []float64 // current coordinates; equal to Vert.C unless the mesh moves
	Dofs []*Dof    // dofs of this node in the order they were added
}

// NewNode allocates a new Node
func NewNode(v *inp.Vert) *Node {
	x := make([]float64, len(v.C))
	copy(x, v.C)
	return &Node{Vert: v, X: x}
}

// AddDof adds a new dof to node, without equation number. Repeated keys are ignored
func (o *Node) AddDof(key string) {
	if o.GetDof(key) == nil {
		o.Dofs = append(o.Dofs, &Dof{key, -1})
	}
}

// AddDofAndEq adds a new dof and sets its equation number. If the dof exists, it is left
// untouched. Returns the next available equation number
func (o *Node) AddDofAndEq(key string, eqnum int) (nexteq int) {
	if o.GetDof(key) != nil {
		return eqnum
	}
	o.Dofs = append(o.Dofs, &Dof{key, eqnum})
	return eqnum + 1
}

// GetDof returns the Dof structure for given Dof name (ukey)
//  Note: returns nil if not found
func (o *Node) GetDof(ukey string) *Dof {
	for _, dof := range o.Dofs {
		if dof.Key == ukey {
			return dof
		}
	}
	return nil
}

// GetEq returns equation number for given Dof name (ukey)
//  Note: returns -1 if not found
func (o *Node) GetEq(ukey string) (eq int) {
	if dof := o.GetDof(ukey); dof != nil {
		return dof.Eq
	}
	return -1
}

// String returns a representation of this node
func (o *Node) String() string {
	l := io.Sf("{\"vid\":%d, \"x\":%v, \"dofs\":[", o.Vert.Id, o.X)
	for i, dof := range o.Dofs {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{%q:%d}", dof.Key, dof.Eq)
	}
	return l + "]}"
}
