// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsol

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	chk.Verbose = true
}

// laplacian returns the 1D Laplacian (SPD) assembled from two-node "elements" with repeated entries
func laplacian(n int) *Triplet {
	var t Triplet
	t.Init(n, n, 4*n)
	for e := 0; e < n-1; e++ {
		t.Put(e, e, 1)
		t.Put(e, e+1, -1)
		t.Put(e+1, e, -1)
		t.Put(e+1, e+1, 1)
	}
	t.Put(0, 0, 1)
	t.Put(n-1, n-1, 1)
	return &t
}

func Test_triplet01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("triplet01. CSR")

	t := laplacian(4)
	chk.Int(tst, "len", t.Len(), 14)
	csr := t.ToCSR()
	r, c := csr.Dims()
	chk.Int(tst, "rows", r, 4)
	chk.Int(tst, "cols", c, 4)
	chk.Int(tst, "nnz", csr.NNZ(), 10)
	dense := t.ToDense()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			chk.Float64(tst, io.Sf("A[%d][%d]", i, j), 1e-17, csr.At(i, j), dense.At(i, j))
		}
	}
	chk.Float64(tst, "A00", 1e-17, csr.At(0, 0), 2)
	chk.Float64(tst, "A11", 1e-17, csr.At(1, 1), 2)
	chk.Float64(tst, "A12", 1e-17, csr.At(1, 2), -1)
	chk.Float64(tst, "A03", 1e-17, csr.At(0, 3), 0)

	t.Start()
	chk.Int(tst, "len after start", t.Len(), 0)
}

func Test_solvers01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solvers01")

	assert.Equal(tst, []string{"cg", "cholesky", "lu"}, Names())
	n := 20
	t := laplacian(n)
	b := make([]float64, n)
	b[0], b[n-1] = 1, -1
	xref := make([]float64, n)
	for name, tol := range map[string]float64{"lu": 1e-12, "cholesky": 1e-12, "cg": 1e-9} {
		sol, err := GetSolver(name)
		require.NoError(tst, err)
		require.NoError(tst, sol.InitR(t, true, chk.Verbose))
		require.NoError(tst, sol.Fact())
		x := make([]float64, n)
		require.NoError(tst, sol.SolveR(x, b))
		if name == "lu" {
			copy(xref, x)
		}
		// check residual
		A := t.ToDense()
		for i := 0; i < n; i++ {
			ri := -b[i]
			for j := 0; j < n; j++ {
				ri += A.At(i, j) * x[j]
			}
			chk.Float64(tst, io.Sf("%s: r%d", name, i), tol, ri, 0)
		}
		sol.Clean()
	}
	// antisymmetric load gives antisymmetric solution
	chk.Float64(tst, "x0 + xn", 1e-12, xref[0]+xref[n-1], 0)

	_, err := GetSolver("umfpack")
	assert.ErrorIs(tst, err, kerr.ErrConfiguration)
}

func Test_solvers02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solvers02. failures")

	// singular
	var t Triplet
	t.Init(2, 2, 4)
	t.Put(0, 0, 1)
	t.Put(0, 1, 1)
	t.Put(1, 0, 1)
	t.Put(1, 1, 1)
	var lerr *kerr.LinearSolverError
	for _, name := range []string{"lu", "cholesky", "cg"} {
		sol, _ := GetSolver(name)
		require.NoError(tst, sol.InitR(&t, true, false))
		err := sol.Fact()
		if err == nil {
			err = sol.SolveR(make([]float64, 2), []float64{1, 0})
		}
		io.Pforan("%s: %v\n", name, err)
		require.ErrorAs(tst, err, &lerr, name)
		assert.Equal(tst, name, lerr.Solver)
	}

	// not symmetric
	sol, _ := GetSolver("cholesky")
	assert.ErrorIs(tst, sol.InitR(&t, false, false), kerr.ErrConfiguration)

	// wrong size
	sol, _ = GetSolver("lu")
	require.NoError(tst, sol.InitR(laplacian(3), false, false))
	require.NoError(tst, sol.Fact())
	assert.ErrorIs(tst, sol.SolveR(make([]float64, 2), make([]float64, 3)), kerr.ErrDimensionMismatch)
}

func Test_cg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cg01. repeated solutions and refactorisation")

	n := 30
	t := laplacian(n)
	sol, err := GetSolver("cg")
	require.NoError(tst, err)
	require.NoError(tst, sol.InitR(t, true, chk.Verbose))
	require.NoError(tst, sol.Fact())
	cg := sol.(*CG)

	// residual with the assembled matrix
	residual := func(x, b []float64, scale float64) {
		A := laplacian(n).ToDense()
		for i := 0; i < n; i++ {
			ri := -b[i]
			for j := 0; j < n; j++ {
				ri += scale * A.At(i, j) * x[j]
			}
			chk.Float64(tst, io.Sf("r%d", i), 1e-9, ri, 0)
		}
	}

	// same factorisation, two right-hand sides
	b1 := make([]float64, n)
	b2 := make([]float64, n)
	for i := 0; i < n; i++ {
		b1[i] = 1
		b2[i] = float64(i%3) - 1
	}
	x1 := make([]float64, n)
	x2 := make([]float64, n)
	require.NoError(tst, sol.SolveR(x1, b1))
	nit := cg.Nit
	assert.Greater(tst, nit, 0)
	residual(x1, b1, 1)
	require.NoError(tst, sol.SolveR(x2, b2))
	residual(x2, b2, 1)

	// solving again gives the same answer and number of iterations
	x3 := make([]float64, n)
	require.NoError(tst, sol.SolveR(x3, b1))
	chk.Array(tst, "x3", 1e-15, x3, x1)
	chk.Int(tst, "nit", cg.Nit, nit)

	// new values in the same triplet
	t.Start()
	for e := 0; e < n-1; e++ {
		t.Put(e, e, 2)
		t.Put(e, e+1, -2)
		t.Put(e+1, e, -2)
		t.Put(e+1, e+1, 2)
	}
	t.Put(0, 0, 2)
	t.Put(n-1, n-1, 2)
	require.NoError(tst, sol.Fact())
	x4 := make([]float64, n)
	require.NoError(tst, sol.SolveR(x4, b1))
	residual(x4, b1, 2)
	for i := range x4 {
		chk.Float64(tst, io.Sf("x4[%d]", i), 1e-6, 2*x4[i], x1[i])
	}
	sol.Clean()
}
