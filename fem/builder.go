// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/mokhairy2019/Kratos-sub001/linsol"
)

// BuilderAndSolver assembles the global system from the contributions of elements and solves it.
//
//  Elements are split into contiguous chunks, one per worker. Each worker accumulates into its own
//  triplet and residual vector; these are merged in worker order. Thus, for a fixed numbering and
//  number of workers, the assembled system does not depend on goroutine scheduling.
//
//  Prescribed equations are eliminated by replacing their rows and columns by the identity. Because
//  the prescribed values are set by the scheme at the beginning of each step, the corresponding
//  increments are always zero
type BuilderAndSolver struct {

	// collaborators
	Dom    *Domain       // domain
	LinSol linsol.LinSol // linear solver

	// options
	Nworkers  int  // number of workers for the element loops
	Symmetric bool // tell linear solver that the matrix is symmetric
	Verbose   bool // verbose linear solver

	// linear system
	Kb *linsol.Triplet // Jacobian == dRdy with identity rows/columns at prescribed equations
	Fb []float64       // residual == -R with zeros at prescribed equations
	Rb []float64       // residual before zeroing prescribed equations (for reactions)
	Wb []float64       // solution of the last solve: δy

	// workers
	kbs []*linsol.Triplet // [nworkers] partial triplets
	fbs [][]float64       // [nworkers][ny] partial residuals

	// auxiliary
	initLSol bool // linear solver must be initialised
	factOk   bool // factorisation is available
}

// NewBuilderAndSolver returns a new builder-and-solver using the linear solver named lsname.
// SetUpSystem must be called after the equations of domain are numbered
func NewBuilderAndSolver(dom *Domain, lsname string, symmetric bool, nworkers int) (o *BuilderAndSolver, err error) {
	o = new(BuilderAndSolver)
	o.Dom = dom
	o.LinSol, err = linsol.GetSolver(lsname)
	if err != nil {
		return nil, err
	}
	o.Symmetric = symmetric
	o.Nworkers = nworkers
	if o.Nworkers < 1 {
		o.Nworkers = 1
	}
	return
}

// SetUpSystem allocates the linear system according to the current numbering of equations
func (o *BuilderAndSolver) SetUpSystem() {
	ny := o.Dom.Ny
	o.Kb = new(linsol.Triplet)
	o.Kb.Init(ny, ny, o.Dom.NnzKb+ny)
	o.Fb = make([]float64, ny)
	o.Rb = make([]float64, ny)
	o.Wb = make([]float64, ny)
	bounds := chunks(len(o.Dom.Elems), o.Nworkers)
	o.kbs = make([]*linsol.Triplet, len(bounds))
	o.fbs = make([][]float64, len(bounds))
	for w := range bounds {
		o.kbs[w] = new(linsol.Triplet)
		o.kbs[w].Init(ny, ny, o.Dom.NnzKb/len(bounds)+1)
		o.fbs[w] = make([]float64, ny)
	}
	o.initLSol = true
	o.factOk = false
}

// Build assembles the Jacobian matrix and the residual vector
func (o *BuilderAndSolver) Build(sol *Solution, firstIt bool) (err error) {
	err = o.BuildLHS(sol, firstIt)
	if err != nil {
		return
	}
	return o.BuildRHS(sol)
}

// BuildLHS assembles the Jacobian matrix and factorises it
func (o *BuilderAndSolver) BuildLHS(sol *Solution, firstIt bool) (err error) {

	// element matrices
	elems := o.Dom.Elems
	err = parallelFor(len(elems), o.Nworkers, func(w, start, end int) (e error) {
		kb := o.kbs[w]
		kb.Start()
		for _, ele := range elems[start:end] {
			e = ele.AddToKb(kb, sol, firstIt)
			if e != nil {
				return
			}
		}
		return
	})
	if err != nil {
		return
	}

	// merge in worker order, eliminating prescribed equations
	fixed := o.Dom.EssenBcs.Fixed()
	o.Kb.Start()
	for _, kbw := range o.kbs {
		kbw.Each(func(i, j int, x float64) {
			if !fixed[i] && !fixed[j] {
				o.Kb.Put(i, j, x)
			}
		})
	}
	for eq, isfixed := range fixed {
		if isfixed {
			o.Kb.Put(eq, eq, 1)
		}
	}

	// initialise linear solver
	if o.initLSol {
		err = o.LinSol.InitR(o.Kb, o.Symmetric, o.Verbose)
		if err != nil {
			return
		}
		o.initLSol = false
	}

	// perform factorisation
	o.factOk = false
	err = o.LinSol.Fact()
	if err != nil {
		return
	}
	o.factOk = true
	return
}

// BuildRHS assembles the residual vector: fb = fext - fint
func (o *BuilderAndSolver) BuildRHS(sol *Solution) (err error) {

	// element vectors
	elems := o.Dom.Elems
	err = parallelFor(len(elems), o.Nworkers, func(w, start, end int) (e error) {
		fb := o.fbs[w]
		for i := range fb {
			fb[i] = 0
		}
		for _, ele := range elems[start:end] {
			e = ele.AddToRhs(fb, sol)
			if e != nil {
				return
			}
		}
		return
	})
	if err != nil {
		return
	}

	// merge in worker order
	for i := range o.Rb {
		o.Rb[i] = 0
	}
	for _, fbw := range o.fbs {
		for i, v := range fbw {
			o.Rb[i] += v
		}
	}

	// point natural boundary conditions; e.g. concentrated loads
	o.Dom.PtNatBcs.AddToRhs(o.Rb, sol.T)

	// prescribed equations
	copy(o.Fb, o.Rb)
	for eq, isfixed := range o.Dom.EssenBcs.Fixed() {
		if isfixed {
			o.Fb[eq] = 0
		}
	}
	return
}

// Solve solves Kb δy = fb using the last factorisation. The result is stored in Wb
func (o *BuilderAndSolver) Solve() (err error) {
	if !o.factOk {
		return chk.Err("cannot solve linear system: the Jacobian matrix has not been factorised")
	}
	return o.LinSol.SolveR(o.Wb, o.Fb)
}

// CalculateReactions computes the reactions at prescribed equations from the last residual:
// reaction = fint - fext
func (o *BuilderAndSolver) CalculateReactions(sol *Solution) (err error) {
	err = o.BuildRHS(sol)
	if err != nil {
		return
	}
	for k := range o.Dom.Reactions {
		delete(o.Dom.Reactions, k)
	}
	for _, bc := range o.Dom.EssenBcs.Bcs {
		o.Dom.Reactions[bc.Eq] = -o.Rb[bc.Eq]
	}
	return
}

// Clean releases memory allocated by the linear solver
func (o *BuilderAndSolver) Clean() {
	o.LinSol.Clean()
	o.factOk = false
}
