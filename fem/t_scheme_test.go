// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_scheme01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scheme01. dynamic coefficients")

	// static: no dynamic terms
	sch, err := GetScheme(&inp.StrategyData{Scheme: "static"})
	require.NoError(tst, err)
	assert.Nil(tst, sch.Coefs())
	dom := &Domain{Sol: NewSolution(2, false)}
	dom.Sol.Dyn = new(DynCoefs)
	require.NoError(tst, sch.Init(dom))
	assert.Nil(tst, dom.Sol.Dyn)

	// bossak
	α, Δt := -0.1, 0.5
	sch, err = GetScheme(&inp.StrategyData{Scheme: "bossak", AlphaBossak: α})
	require.NoError(tst, err)
	require.NoError(tst, sch.CalcCoefficients(Δt))
	dc := sch.Coefs()
	require.NotNil(tst, dc)
	β, γ := 0.25*(1-α)*(1-α), 0.5-α
	chk.Float64(tst, "αm", 1e-17, dc.AlphaM, α)
	chk.Float64(tst, "β", 1e-17, dc.Beta, β)
	chk.Float64(tst, "γ", 1e-17, dc.Gamma, γ)
	chk.Float64(tst, "CM", 1e-14, dc.CM, (1-α)/(β*Δt*Δt))
	chk.Float64(tst, "CC", 1e-14, dc.CC, γ/(β*Δt))
	assert.ErrorIs(tst, sch.CalcCoefficients(0), kerr.ErrConfiguration)

	// elements see the same coefficients through the solution
	assert.ErrorIs(tst, sch.Init(&Domain{Sol: NewSolution(2, false)}), kerr.ErrConfiguration)
	dom = &Domain{Sol: NewSolution(2, true)}
	require.NoError(tst, sch.Init(dom))
	assert.Same(tst, dc, dom.Sol.Dyn)

	// Newmark relations after an update
	sol := dom.Sol
	copy(sol.Vold, []float64{1, -2})
	copy(sol.Aold, []float64{0.5, 3})
	sch.Predict(sol, nil)
	sch.Update(sol, []float64{0.2, 0.1})
	for i := range sol.Y {
		a := (sol.Y[i]-sol.Yold[i]-Δt*sol.Vold[i])/(β*Δt*Δt) - (1/(2*β)-1)*sol.Aold[i]
		v := sol.Vold[i] + Δt*((1-γ)*sol.Aold[i]+γ*a)
		chk.Float64(tst, io.Sf("a%d", i), 1e-13, sol.D2ydt2[i], a)
		chk.Float64(tst, io.Sf("v%d", i), 1e-13, sol.Dydt[i], v)
	}
	sch.FinalizeStep(sol)
	chk.Array(tst, "vold", 1e-17, sol.Vold, sol.Dydt)
	chk.Array(tst, "aold", 1e-17, sol.Aold, sol.D2ydt2)
}
