// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/ana"
	"github.com/mokhairy2019/Kratos-sub001/tsr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tension returns the analytical solution of the uniaxial tension tests
func tension(tst *testing.T) (sol ana.CteStressPstrain) {
	require.NoError(tst, sol.Init(dbf.Params{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "qnH", V: 1},
	}))
	return
}

// checkTension compares nodal displacements and stresses with the analytical solution
func checkTension(tst *testing.T, dom *Domain, tolu, tols float64) {
	sol := tension(tst)
	for _, nod := range dom.Nodes {
		ux, err := dom.GetValue(nod.Vert.Id, "ux")
		require.NoError(tst, err)
		uy, err := dom.GetValue(nod.Vert.Id, "uy")
		require.NoError(tst, err)
		sol.CheckDispl(tst, nod.Vert.C[0], nod.Vert.C[1], ux, uy, tolu)
	}
	for _, e := range dom.Elems {
		for _, σ := range e.(*ElemU).IpStresses() {
			sol.CheckStress(tst, σ, tols)
		}
	}
}

func Test_onequa01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("onequa01. linear elastic element converges in one iteration")

	analysis, err := NewFEM("data/onequa4.sim", "", true, false, false, chk.Verbose)
	require.NoError(tst, err)
	require.NoError(tst, analysis.Run())

	dom := analysis.Domains[0]
	strat := analysis.Strategies[0]
	chk.Int(tst, "iterations", strat.Iterations, 1)
	chk.Float64(tst, "time", 1e-15, dom.Sol.T, 1)
	assert.Equal(tst, Idle, strat.State)
	checkTension(tst, dom, 1e-15, 1e-12)

	// reactions at the left side
	for _, vid := range []int{0, 3} {
		r, err := dom.GetReaction(vid, "ux")
		require.NoError(tst, err)
		io.Pforan("reaction ux @ %d = %v\n", vid, r)
		chk.Float64(tst, "rx", 1e-12, r, -0.5)
	}
	ry, err := dom.GetReaction(1, "uy")
	require.NoError(tst, err)
	chk.Float64(tst, "ry", 1e-12, ry, 0)

	// no reaction at free dofs
	_, err = dom.GetReaction(2, "uy")
	assert.Error(tst, err)
}

func Test_onequa02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("onequa02. elastic tangent is symmetric and positive-definite")

	analysis, err := NewFEM("data/onequa4.sim", "", true, false, false, chk.Verbose)
	require.NoError(tst, err)
	require.NoError(tst, analysis.SetStage(0))
	require.NoError(tst, analysis.ZeroStage(true))

	dom := analysis.Domains[0]
	e := dom.Elems[0].(*ElemU)
	require.NoError(tst, e.Update(dom.Sol))
	D := e.Ds[0]
	for i := range D {
		assert.Greater(tst, D[i][i], 0.0)
		for j := range D {
			chk.Float64(tst, io.Sf("D%d%d", i, j), 1e-12, D[i][j], D[j][i])
		}
	}

	// any strain gives positive energy
	for _, ε := range [][]float64{{1, 0, 0, 0}, {0, 1, 0, 0}, {1, -1, 0, 0}, {0, 0, 0, 1}, {1, 2, 0, 3}} {
		var w float64
		for i := range D {
			for j := range D {
				w += ε[i] * D[i][j] * ε[j]
			}
		}
		assert.Greater(tst, w, 0.0)
	}
}

func Test_fourqua01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fourqua01. four elements. serial versus parallel assembly")

	run := func(nworkers int) *FEM {
		analysis, err := NewFEM("data/fourqua4.sim", "", true, false, false, chk.Verbose)
		require.NoError(tst, err)
		analysis.SetNworkers(nworkers)
		require.NoError(tst, analysis.Run())
		return analysis
	}

	serial := run(1)
	parallel := run(3)

	// and-criterion needs one extra iteration to check the increments
	chk.Int(tst, "iterations (serial)", serial.Strategies[0].Iterations, 2)
	chk.Int(tst, "iterations (parallel)", parallel.Strategies[0].Iterations, 2)

	ds, dp := serial.Domains[0], parallel.Domains[0]
	checkTension(tst, ds, 1e-14, 1e-11)
	checkTension(tst, dp, 1e-14, 1e-11)
	chk.Array(tst, "Y", 1e-15, dp.Sol.Y, ds.Sol.Y)
	for eq, r := range ds.Reactions {
		chk.Float64(tst, io.Sf("R%d", eq), 1e-14, dp.Reactions[eq], r)
	}

	// total reaction balances the applied load
	var sum float64
	for _, vid := range []int{0, 3, 6} {
		r, err := ds.GetReaction(vid, "ux")
		require.NoError(tst, err)
		sum += r
	}
	chk.Float64(tst, "Σrx", 1e-12, sum, -2)
}

func Test_plastic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plastic01. von Mises element under prescribed displacements")

	analysis, err := NewFEM("data/plastic.sim", "", true, false, false, chk.Verbose)
	require.NoError(tst, err)
	require.NoError(tst, analysis.Run())

	dom := analysis.Domains[0]
	ux, err := dom.GetValue(1, "ux")
	require.NoError(tst, err)
	chk.Float64(tst, "ux", 1e-15, ux, 0.01)

	// all integration points yielded
	e := dom.Elems[0].(*ElemU)
	sy0 := 1.0
	for i, s := range e.States {
		q := tsr.Q(s.Sig)
		io.Pforan("ip %d: q = %v  α0 = %v\n", i, q, s.Alp[0])
		assert.Greater(tst, s.Alp[0], 0.0)
		assert.GreaterOrEqual(tst, q, sy0-1e-10)
		assert.False(tst, s.Pending)
	}

	// the left side pulls back
	r, err := dom.GetReaction(0, "ux")
	require.NoError(tst, err)
	assert.Less(tst, r, 0.0)
}

func Test_kirchhoff01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kirchhoff01. plane Saint-Venant-Kirchhoff element under tension")

	analysis, err := NewFEM("data/kirchhoff.sim", "", true, false, false, chk.Verbose)
	require.NoError(tst, err)
	require.NoError(tst, analysis.SetStage(0))
	require.NoError(tst, analysis.ZeroStage(true))

	dom := analysis.Domains[0]
	strat := analysis.Strategies[0]
	e := dom.Elems[0].(*ElemU)
	assert.True(tst, e.Large)
	chk.Int(tst, "nsig", e.Nsig, 3)
	chk.Int(tst, "B rows", len(e.B), 3)
	assert.Equal(tst, []string{"sx", "sy", "sxy"}, StressKeys(e.Nsig))

	// traction applied in two steps
	for _, t := range []float64{0.5, 1.0} {
		require.NoError(tst, strat.Solve(t, 0.5))
		assert.Equal(tst, Idle, strat.State)
		io.Pforan("t = %v  iterations = %d\n", t, strat.Iterations)

		// homogeneous deformation: first Piola-Kirchhoff P_xx = F_xx S_xx equals the traction
		ux, err := dom.GetValue(1, "ux")
		require.NoError(tst, err)
		uy, err := dom.GetValue(3, "uy")
		require.NoError(tst, err)
		Fxx := 1.0 + ux
		for i, σ := range e.IpStresses() {
			require.Len(tst, σ, 3)
			chk.Float64(tst, io.Sf("Pxx @ ip %d", i), 1e-8, Fxx*σ[0], t)
			chk.Float64(tst, io.Sf("Syy @ ip %d", i), 1e-8, σ[1], 0)
			chk.Float64(tst, io.Sf("Sxy @ ip %d", i), 1e-8, σ[2], 0)
		}
		assert.Greater(tst, ux, 0.0)
		assert.Less(tst, uy, 0.0)
	}

	// geometric nonlinearity needs more than one iteration
	assert.Greater(tst, strat.Iterations, 1)
}
