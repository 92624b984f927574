// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	chk.Verbose = true
}

func Test_ctestress01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ctestress01. uniaxial tension")

	var sol CteStressPstrain
	require.NoError(tst, sol.Init(dbf.Params{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "qnH", V: 1},
	}))

	chk.Array(tst, "σ", 1e-15, sol.Stress(), []float64{1, 0, 0.25, 0})
	chk.Array(tst, "ε", 1e-15, sol.Strain(), []float64{9.375e-4, -3.125e-4, 0, 0})

	ux, uy := sol.Displacement(1, 1)
	chk.Float64(tst, "ux", 1e-15, ux, 9.375e-4)
	chk.Float64(tst, "uy", 1e-15, uy, -3.125e-4)
	sol.CheckDispl(tst, 2, 2, 1.875e-3, -6.25e-4, 1e-15)

	// along the diagonal
	sr, st, srt := sol.PolarStress(1, 1)
	chk.Float64(tst, "σr", 1e-15, sr, 0.5)
	chk.Float64(tst, "σt", 1e-15, st, 0.5)
	chk.Float64(tst, "σrt", 1e-15, srt, -0.5)
}

func Test_ctestress02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ctestress02. biaxial and invalid parameters")

	var sol CteStressPstrain
	require.NoError(tst, sol.Init(dbf.Params{
		&dbf.P{N: "qnH", V: -50},
		&dbf.P{N: "qnV", V: -100},
		&dbf.P{N: "x0", V: 1},
	}))
	sol.CheckStress(tst, []float64{-50, -100, -37.5, 0}, 1e-15)
	ux, _ := sol.Displacement(1, 0)
	chk.Float64(tst, "ux at x0", 1e-15, ux, 0)

	// plane-strain volumetric strain
	ε := sol.Strain()
	ev := (1 + sol.Nu) * (1 - 2*sol.Nu) * (sol.QnH + sol.QnV) / sol.E
	chk.Float64(tst, "εv", 1e-15, ε[0]+ε[1], ev)

	assert.Error(tst, sol.Init(dbf.Params{&dbf.P{N: "nu", V: 0.5}}))
	assert.Error(tst, sol.Init(dbf.Params{&dbf.P{N: "kappa", V: 1}}))
}

func Test_polar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polar01")

	// on the y axis, r is aligned with y
	chk.Array(tst, "σp", 1e-15, PolarStresses(0, 2, []float64{1, 3, 0.5, 0}), []float64{3, 1, 0.5, 0})

	// at 45°: σr = (σx+σy)/2 + τ, σθ = (σx+σy)/2 - τ, σrθ = (σy-σx)/2
	chk.Array(tst, "σp", 1e-14, PolarStresses(1, 1, []float64{1, 3, 0, 0.5}), []float64{2.5, 1.5, 0, 1})
}
