// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"github.com/mokhairy2019/Kratos-sub001/linsol"
	"github.com/mokhairy2019/Kratos-sub001/msolid"
	"github.com/mokhairy2019/Kratos-sub001/shp"
)

// RodState holds the axial stress and strain of a rod
type RodState struct {
	Sig float64 // axial stress
	Eps float64 // axial strain
}

// ElemRod represents a structural rod element (for only axial loads; small strains)
//
//  N = E A ε   with   ε = e · (u1 - u0) / L
//
type ElemRod struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // matrix of nodal coordinates [ndim][nnode]
	Nu   int         // total number of unknowns == 2 * ndim
	Ndim int         // space dimension

	// parameters
	Props *msolid.Properties // material properties
	E     float64            // Young's modulus
	A     float64            // cross-sectional area
	Rho   float64            // density

	// geometry
	L  float64   // length
	Ev []float64 // unit vector from node 0 to node 1

	// state
	State    RodState // current state
	StateBkp RodState // backup state

	// problem variables
	Umap []int       // assembly map (location array/element equations)
	K    [][]float64 // [nu][nu] stiffness matrix
}

// register element
func init() {

	// information allocator
	infogetters["rod"] = func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *Info {
		return displacementInfo(sim.Ndim, len(cell.Verts))
	}

	// element allocator
	eallocators["rod"] = func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) (Elem, error) {

		// basic data
		if len(cell.Verts) != 2 {
			return nil, kerr.Dimension("number of vertices of rod", len(cell.Verts), 2)
		}
		var o ElemRod
		o.Cell = cell
		o.X = x
		o.Ndim = len(x)
		o.Nu = 2 * o.Ndim

		// parameters
		matdata := sim.MatParams.Get(edat.Mat)
		if matdata == nil {
			return nil, kerr.Config("mat", "cannot get materials data for rod element {tag=%d id=%d material=%q}", cell.Tag, cell.Id, edat.Mat)
		}
		var err error
		o.Props, err = msolid.NewPropertiesFromPrms(cell.Id, matdata.Prms)
		if err != nil {
			return nil, err
		}
		o.Props.Freeze()
		o.E = o.Props.FloatOr("E", 0)
		o.Rho = o.Props.FloatOr("rho", 0)
		attrs, err := ParseExtra(edat.Extra, "area")
		if err != nil {
			return nil, err
		}
		o.A = shp.GetValueOr(attrs, "area", o.Props.FloatOr("A", 0))

		// geometry
		o.Ev = make([]float64, o.Ndim)
		for i := 0; i < o.Ndim; i++ {
			o.Ev[i] = x[i][1] - x[i][0]
			o.L += o.Ev[i] * o.Ev[i]
		}
		o.L = math.Sqrt(o.L)
		if o.L < 1e-14 {
			return nil, chk.Err("rod element %d has zero length", cell.Id)
		}
		for i := 0; i < o.Ndim; i++ {
			o.Ev[i] /= o.L
		}
		o.K = utl.Alloc(o.Nu, o.Nu)
		return &o, nil
	}
}

// Id returns the cell Id
func (o *ElemRod) Id() int { return o.Cell.Id }

// NodalDofs returns the number of dofs per node
func (o *ElemRod) NodalDofs() int { return o.Ndim }

// SetEqs set equations
func (o *ElemRod) SetEqs(eqs [][]int) (err error) {
	if len(eqs) != 2 {
		return kerr.Dimension("element equations", len(eqs), 2)
	}
	o.Umap = make([]int, o.Nu)
	for m := 0; m < 2; m++ {
		if len(eqs[m]) < o.Ndim {
			return kerr.Dimension("equations of node", len(eqs[m]), o.Ndim)
		}
		for i := 0; i < o.Ndim; i++ {
			o.Umap[i+m*o.Ndim] = eqs[m][i]
		}
	}
	return
}

// Check validates element and material data
func (o *ElemRod) Check(ndim int) (err error) {
	if o.Ndim != ndim {
		return kerr.Dimension("space dimension of rod", o.Ndim, ndim)
	}
	if o.E <= 0 {
		return kerr.Config("E", "rod element %d: Young's modulus must be positive. %g is invalid", o.Id(), o.E)
	}
	if o.A <= 0 {
		return kerr.Config("A", "rod element %d: cross-sectional area must be positive. %g is invalid", o.Id(), o.A)
	}
	return
}

// AddToRhs adds -R to global residual vector fb
func (o *ElemRod) AddToRhs(fb []float64, sol *Solution) (err error) {
	N := o.State.Sig * o.A
	for i := 0; i < o.Ndim; i++ {
		fb[o.Umap[i]] += N * o.Ev[i]
		fb[o.Umap[i+o.Ndim]] -= N * o.Ev[i]
	}
	if sol.Dyn != nil {
		α := sol.Dyn.AlphaM
		c := o.Rho * o.A * o.L / 6.0
		for i := 0; i < o.Ndim; i++ {
			r0, r1 := o.Umap[i], o.Umap[i+o.Ndim]
			a0 := (1.0-α)*sol.D2ydt2[r0] + α*sol.Aold[r0]
			a1 := (1.0-α)*sol.D2ydt2[r1] + α*sol.Aold[r1]
			fb[r0] -= c * (2.0*a0 + a1)
			fb[r1] -= c * (a0 + 2.0*a1)
		}
	}
	return
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *ElemRod) AddToKb(Kb *linsol.Triplet, sol *Solution, firstIt bool) (err error) {
	k := o.E * o.A / o.L
	for i := 0; i < o.Ndim; i++ {
		for j := 0; j < o.Ndim; j++ {
			kij := k * o.Ev[i] * o.Ev[j]
			o.K[i][j] = kij
			o.K[i][j+o.Ndim] = -kij
			o.K[i+o.Ndim][j] = -kij
			o.K[i+o.Ndim][j+o.Ndim] = kij
		}
	}
	if sol.Dyn != nil {
		c := o.Rho * o.A * o.L / 6.0 * sol.Dyn.CM
		for i := 0; i < o.Ndim; i++ {
			o.K[i][i] += 2.0 * c
			o.K[i][i+o.Ndim] += c
			o.K[i+o.Ndim][i] += c
			o.K[i+o.Ndim][i+o.Ndim] += 2.0 * c
		}
	}
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Put(I, J, o.K[i][j])
		}
	}
	return
}

// Update computes the axial strain and stress
func (o *ElemRod) Update(sol *Solution) (err error) {
	o.State.Eps = 0
	for i := 0; i < o.Ndim; i++ {
		o.State.Eps += o.Ev[i] * (sol.Y[o.Umap[i+o.Ndim]] - sol.Y[o.Umap[i]]) / o.L
	}
	o.State.Sig = o.E * o.State.Eps
	return
}

// Finalize does nothing because the rod has no history variables
func (o *ElemRod) Finalize(sol *Solution) (err error) { return }

// BackupIvs create copy of internal variables
func (o *ElemRod) BackupIvs() (err error) {
	o.StateBkp = o.State
	return
}

// RestoreIvs restore internal variables from copies
func (o *ElemRod) RestoreIvs() (err error) {
	o.State = o.StateBkp
	return
}

// AxialForce returns the current axial force
func (o *ElemRod) AxialForce() float64 { return o.State.Sig * o.A }

// Encode encodes internal variables
func (o *ElemRod) Encode(enc inp.Encoder) (err error) {
	return enc.Encode(o.State)
}

// Decode decodes internal variables
func (o *ElemRod) Decode(dec inp.Decoder) (err error) {
	err = dec.Decode(&o.State)
	if err != nil {
		return
	}
	return o.BackupIvs()
}
