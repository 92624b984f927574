// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsol

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"gonum.org/v1/gonum/mat"
)

// CONDMAX is the largest condition number accepted by the dense solvers
const CONDMAX = 1e14

// LU solves linear systems with the dense LU factorisation with partial pivoting
type LU struct {
	tR      *Triplet
	verbose bool
	lu      mat.LU
}

// Cholesky solves symmetric positive-definite linear systems
type Cholesky struct {
	tR      *Triplet
	verbose bool
	chol    mat.Cholesky
}

// add solvers to factory
func init() {
	register("lu", func() LinSol { return new(LU) })
	register("cholesky", func() LinSol { return new(Cholesky) })
}

// Name returns the name of this solver
func (o *LU) Name() string { return "lu" }

// InitR initialises solver
func (o *LU) InitR(tR *Triplet, symmetric, verbose bool) error {
	o.tR, o.verbose = tR, verbose
	return nil
}

// Fact factorises A
func (o *LU) Fact() error {
	if o.tR == nil {
		return kerr.Solver(o.Name(), chk.Err("InitR must be called first"))
	}
	m, n := o.tR.Size()
	if m != n {
		return kerr.Dimension("number of columns of A", n, m)
	}
	o.lu.Factorize(o.tR.ToDense())
	cond := o.lu.Cond()
	if o.verbose {
		io.Pf("lu: condition number = %g\n", cond)
	}
	if math.IsInf(cond, 0) || math.IsNaN(cond) || cond > CONDMAX {
		return kerr.Solver(o.Name(), chk.Err("matrix is singular or ill-conditioned. cond = %g", cond))
	}
	return nil
}

// SolveR solves A x = b
func (o *LU) SolveR(xR, bR []float64) error {
	if err := checkSystem(o.Name(), o.tR, xR, bR); err != nil {
		return err
	}
	x := mat.NewVecDense(len(xR), xR)
	err := o.lu.SolveVecTo(x, false, mat.NewVecDense(len(bR), bR))
	if err != nil {
		return kerr.Solver(o.Name(), err)
	}
	return nil
}

// Clean releases memory
func (o *LU) Clean() { o.lu = mat.LU{} }

// Name returns the name of this solver
func (o *Cholesky) Name() string { return "cholesky" }

// InitR initialises solver
func (o *Cholesky) InitR(tR *Triplet, symmetric, verbose bool) error {
	if !symmetric {
		return kerr.Config("linsol", "cholesky solver requires a symmetric matrix")
	}
	o.tR, o.verbose = tR, verbose
	return nil
}

// Fact factorises A
func (o *Cholesky) Fact() error {
	if o.tR == nil {
		return kerr.Solver(o.Name(), chk.Err("InitR must be called first"))
	}
	m, n := o.tR.Size()
	if m != n {
		return kerr.Dimension("number of columns of A", n, m)
	}
	a := o.tR.ToDense()
	sym := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			sym.SetSym(i, j, 0.5*(a.At(i, j)+a.At(j, i)))
		}
	}
	if !o.chol.Factorize(sym) {
		return kerr.Solver(o.Name(), chk.Err("matrix is not positive-definite"))
	}
	if o.verbose {
		io.Pf("cholesky: condition number = %g\n", o.chol.Cond())
	}
	return nil
}

// SolveR solves A x = b
func (o *Cholesky) SolveR(xR, bR []float64) error {
	if err := checkSystem(o.Name(), o.tR, xR, bR); err != nil {
		return err
	}
	x := mat.NewVecDense(len(xR), xR)
	err := o.chol.SolveVecTo(x, mat.NewVecDense(len(bR), bR))
	if err != nil {
		return kerr.Solver(o.Name(), err)
	}
	return nil
}

// Clean releases memory
func (o *Cholesky) Clean() { o.chol.Reset() }
