// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_chunks01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("chunks01")

	assert.Equal(tst, [][2]int{{0, 4}, {4, 7}, {7, 10}}, chunks(10, 3))
	assert.Equal(tst, [][2]int{{0, 1}, {1, 2}}, chunks(2, 8))
	assert.Equal(tst, [][2]int{{0, 5}}, chunks(5, 0))
	assert.Empty(tst, chunks(0, 4))

	// all indices visited exactly once
	count := make([]int, 103)
	require.NoError(tst, parallelFor(len(count), 7, func(w, start, end int) error {
		for i := start; i < end; i++ {
			count[i]++
		}
		return nil
	}))
	for i, c := range count {
		assert.Equal(tst, 1, c, "index %d", i)
	}
}

func Test_reduce01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reduce01. norms do not depend on the number of workers")

	n := 1001
	v := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = math.Sin(float64(i)) * 1e-3
		y[i] = math.Cos(float64(i))
	}
	v[517] = -0.25

	lref := LargestAbs(v, 1)
	rref := RmsErr(v, 1e-6, 1e-6, y, 1)
	chk.Float64(tst, "largest", 1e-17, lref, 0.25)
	for _, nw := range []int{2, 3, 8, 64} {
		chk.Float64(tst, "largest", 1e-17, LargestAbs(v, nw), lref)
		chk.Float64(tst, "rms", 1e-12*rref, RmsErr(v, 1e-6, 1e-6, y, nw), rref)
	}

	// repeated calls give identical results
	r4 := RmsErr(v, 1e-6, 1e-6, y, 4)
	for i := 0; i < 10; i++ {
		assert.Equal(tst, r4, RmsErr(v, 1e-6, 1e-6, y, 4))
	}

	// simple values
	chk.Float64(tst, "rms", 1e-15, RmsErr([]float64{1, 1}, 1, 0, []float64{0, 0}, 2), 1)
	chk.Float64(tst, "rms", 1e-15, RmsErr(nil, 1, 1, nil, 2), 0)
	chk.Float64(tst, "largest", 1e-15, LargestAbs(nil, 2), 0)
}

func Test_criteria01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("criteria01. residual and displacement criteria")

	res := &ResidualCriterion{FbTol: 1e-8, FbMin: 1e-14}
	dsp := &DisplacementCriterion{Itol: 1e-3}

	// first iteration never converges on residual
	assert.False(tst, res.PreCriteria(&Norms{It: 0, LargFb: 0, LargFb0: 0}))
	assert.True(tst, res.PreCriteria(&Norms{It: 1, LargFb: 1e-10, LargFb0: 1}))
	assert.True(tst, res.PostCriteria(&Norms{}))
	assert.False(tst, res.PreCriteria(&Norms{It: 1, LargFb: 1e-7, LargFb0: 1}))
	assert.True(tst, res.PreCriteria(&Norms{It: 1, LargFb: 1e-15, LargFb0: 1e-10}))
	res.Initialize()
	assert.False(tst, res.PostCriteria(&Norms{}))

	// increments
	assert.False(tst, dsp.PreCriteria(&Norms{}))
	assert.False(tst, dsp.PostCriteria(&Norms{Lδu: 1}))
	assert.True(tst, dsp.PostCriteria(&Norms{Lδu: 1e-4}))
	assert.True(tst, dsp.PreCriteria(&Norms{Lδu: 1}))
	dsp.Initialize()
	assert.False(tst, dsp.PreCriteria(&Norms{}))
}

func Test_criteria02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("criteria02. combined criteria")

	data := &inp.StrategyData{FbTol: 1e-8, FbMin: 1e-14, Itol: 1e-3}
	for _, name := range []string{"residual", "displacement", "and", "or"} {
		data.Criterion = name
		crit, err := NewConvergenceCriteria(data)
		require.NoError(tst, err)
		assert.Equal(tst, name, crit.Name())
	}
	data.Criterion = "energy"
	_, err := NewConvergenceCriteria(data)
	assert.Error(tst, err)

	// small residual but large increments
	small := &Norms{It: 1, LargFb: 1e-12, LargFb0: 1, Lδu: 10}
	and := &AndCriteria{A: &ResidualCriterion{FbTol: 1e-8}, B: &DisplacementCriterion{Itol: 1e-3}}
	or := &OrCriteria{A: &ResidualCriterion{FbTol: 1e-8}, B: &DisplacementCriterion{Itol: 1e-3}}
	assert.False(tst, and.PreCriteria(small))
	assert.False(tst, and.PostCriteria(small))
	assert.True(tst, or.PreCriteria(small))
	assert.True(tst, or.PostCriteria(small))

	// both sub-criteria are evaluated; the residual result sticks
	small.Lδu = 1e-5
	assert.True(tst, and.PostCriteria(small))
	and.Initialize()
	assert.False(tst, and.PostCriteria(small))
	assert.True(tst, and.PreCriteria(small))
}
