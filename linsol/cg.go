// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsol

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/james-bowman/sparse"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"gonum.org/v1/gonum/floats"
)

// CG solves symmetric positive-definite systems with the Jacobi-preconditioned conjugate
// gradient method on the compressed-row form of A
type CG struct {
	Tol   float64 // tolerance on ||r|| / ||b||
	MaxIt int     // max number of iterations; 0 means 10 × n
	Nit   int     // number of iterations of the last solution

	tR      *Triplet
	verbose bool
	a       *sparse.CSR
	dinv    []float64 // inverse of diagonal
}

// add solver to factory
func init() {
	register("cg", func() LinSol { return &CG{Tol: 1e-12} })
}

// Name returns the name of this solver
func (o *CG) Name() string { return "cg" }

// InitR initialises solver
func (o *CG) InitR(tR *Triplet, symmetric, verbose bool) error {
	if !symmetric {
		return kerr.Config("linsol", "cg solver requires a symmetric matrix")
	}
	o.tR, o.verbose = tR, verbose
	return nil
}

// Fact converts the triplet to CSR and computes the Jacobi preconditioner
func (o *CG) Fact() error {
	if o.tR == nil {
		return kerr.Solver(o.Name(), chk.Err("InitR must be called first"))
	}
	m, n := o.tR.Size()
	if m != n {
		return kerr.Dimension("number of columns of A", n, m)
	}
	o.a = o.tR.ToCSR()
	o.dinv = make([]float64, m)
	o.a.DoNonZero(func(i, j int, v float64) {
		if i == j {
			o.dinv[i] += v
		}
	})
	for i, d := range o.dinv {
		if d <= 0 {
			return kerr.Solver(o.Name(), chk.Err("diagonal entry %d is not positive. A[%d][%d] = %g", i, i, i, d))
		}
		o.dinv[i] = 1.0 / d
	}
	if o.verbose {
		io.Pf("cg: n = %d nnz = %d\n", m, o.a.NNZ())
	}
	return nil
}

// SolveR solves A x = b starting from x = 0
func (o *CG) SolveR(xR, bR []float64) error {
	if err := checkSystem(o.Name(), o.tR, xR, bR); err != nil {
		return err
	}
	if o.a == nil {
		return kerr.Solver(o.Name(), chk.Err("Fact must be called first"))
	}
	n := len(bR)
	maxit := o.MaxIt
	if maxit < 1 {
		maxit = 10 * n
	}
	for i := range xR {
		xR[i] = 0
	}
	bnorm := floats.Norm(bR, 2)
	if bnorm == 0 {
		return nil
	}
	r := append([]float64{}, bR...)
	z := make([]float64, n)
	floats.MulTo(z, o.dinv, r)
	p := append([]float64{}, z...)
	q := make([]float64, n)
	rz := floats.Dot(r, z)
	for o.Nit = 0; o.Nit < maxit; o.Nit++ {
		if floats.Norm(r, 2) <= o.Tol*bnorm {
			return nil
		}
		for i := range q {
			q[i] = 0
		}
		o.a.MulVecTo(q, false, p)
		pq := floats.Dot(p, q)
		if pq <= 0 {
			return kerr.Solver(o.Name(), chk.Err("matrix is not positive-definite. pᵀAp = %g", pq))
		}
		α := rz / pq
		floats.AddScaled(xR, α, p)
		floats.AddScaled(r, -α, q)
		floats.MulTo(z, o.dinv, r)
		rzNew := floats.Dot(r, z)
		floats.AddScaledTo(p, z, rzNew/rz, p)
		rz = rzNew
	}
	res := floats.Norm(r, 2) / bnorm
	if res <= o.Tol {
		return nil
	}
	return kerr.Solver(o.Name(), chk.Err("did not converge after %d iterations. residual = %g", maxit, res))
}

// Clean releases memory
func (o *CG) Clean() {
	o.a, o.dinv = nil, nil
}
