// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_truss01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("truss01. two-bar truss with Cholesky solver")

	analysis, err := NewFEM("data/truss.sim", "", true, false, false, chk.Verbose)
	require.NoError(tst, err)
	require.NoError(tst, analysis.Run())

	dom := analysis.Domains[0]
	chk.Int(tst, "iterations", analysis.Strategies[0].Iterations, 1)

	// apex
	ux, err := dom.GetValue(2, "ux")
	require.NoError(tst, err)
	uy, err := dom.GetValue(2, "uy")
	require.NoError(tst, err)
	chk.Float64(tst, "ux", 1e-15, ux, 0)
	chk.Float64(tst, "uy", 1e-15, uy, -math.Sqrt2*1e-3)

	// axial forces
	for _, e := range dom.Elems {
		N := e.(*ElemRod).AxialForce()
		io.Pforan("N%d = %v\n", e.Id(), N)
		chk.Float64(tst, "N", 1e-14, N, -1/math.Sqrt2)
	}

	// reactions
	rxy := func(vid int) []float64 {
		rx, err := dom.GetReaction(vid, "ux")
		require.NoError(tst, err)
		ry, err := dom.GetReaction(vid, "uy")
		require.NoError(tst, err)
		return []float64{rx, ry}
	}
	chk.Array(tst, "R0", 1e-14, rxy(0), []float64{0.5, 0.5})
	chk.Array(tst, "R1", 1e-14, rxy(1), []float64{-0.5, 0.5})
}

func Test_spring01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spring01. suddenly loaded rod with Bossak scheme")

	analysis, err := NewFEM("data/spring.sim", "", true, false, false, chk.Verbose)
	require.NoError(tst, err)
	require.NoError(tst, analysis.SetStage(0))
	require.NoError(tst, analysis.ZeroStage(true))

	dom := analysis.Domains[0]
	strat := analysis.Strategies[0]
	assert.Equal(tst, "bossak", strat.Scheme.Name())
	eq := dom.Vid2node[1].GetEq("ux")

	// m = ρ A L / 3 = 1 and k = E A / L = 1000  =>  u(t) = u_st (1 - cos ω t)
	ust := 1e-3
	ω := math.Sqrt(1000.0)
	Δt := 0.002
	var umax, tmax, t float64
	for i := 0; i < 100; i++ {
		t += Δt
		require.NoError(tst, strat.Solve(t, Δt))
		u := dom.Sol.Y[eq]
		if u > umax {
			umax, tmax = u, t
		}
		if i < 10 {
			chk.Float64(tst, io.Sf("u(%g)", t), 2e-5, u, ust*(1-math.Cos(ω*t)))
		}
	}
	io.Pforan("umax = %v @ t = %v\n", umax, tmax)
	assert.True(tst, umax > 1.8e-3 && umax < 2.1e-3, "umax = %v", umax)
	chk.Float64(tst, "tmax", 0.01, tmax, math.Pi/ω)

	// velocity and acceleration are stored in the solution
	assert.NotNil(tst, dom.Sol.Dydt)
	assert.NotNil(tst, dom.Sol.D2ydt2)
}
