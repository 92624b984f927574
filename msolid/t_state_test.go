// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"bytes"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	chk.Verbose = true
}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01")

	nsig, nalp, plastic, large := 4, 1, true, false
	state0 := NewState(nsig, nalp, plastic, large)
	io.Pforan("state0 = %+v\n", state0)
	chk.Array(tst, "sig", 1.0e-17, state0.Sig, []float64{0, 0, 0, 0})
	chk.Array(tst, "alp", 1.0e-17, state0.Alp, []float64{0})
	chk.Array(tst, "epsP", 1.0e-17, state0.EpsP, []float64{0, 0, 0, 0})

	state0.Sig[0] = 10.0
	state0.Sig[1] = 11.0
	state0.Sig[2] = 12.0
	state0.Sig[3] = 13.0
	state0.Alp[0] = 20.0

	state1 := NewState(nsig, nalp, plastic, large)
	state1.Set(state0)
	io.Pforan("state1 = %+v\n", state1)
	chk.Array(tst, "sig", 1.0e-17, state1.Sig, []float64{10, 11, 12, 13})
	chk.Array(tst, "alp", 1.0e-17, state1.Alp, []float64{20})

	state2 := state1.GetCopy()
	io.Pforan("state2 = %+v\n", state2)
	chk.Array(tst, "sig", 1.0e-17, state2.Sig, []float64{10, 11, 12, 13})
	chk.Array(tst, "alp", 1.0e-17, state2.Alp, []float64{20})
	chk.Array(tst, "epsP", 1.0e-17, state2.EpsP, []float64{0, 0, 0, 0})

	// copies are independent
	state2.Sig[0] = 100
	chk.Float64(tst, "sig0 of state1", 1e-17, state1.Sig[0], 10)
}

func Test_state02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state02. commit")

	s := NewState(6, 1, true, true)
	chk.Deep2(tst, "F", 1e-17, s.F, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	// trial values are not visible before commit
	s.EpsPtr[0] = 0.1
	s.AlpTr[0] = 0.2
	s.DissTr = 3
	chk.Array(tst, "epsP", 1e-17, s.EpsP, []float64{0, 0, 0, 0, 0, 0})

	// commit without pending does nothing
	s.commit()
	chk.Array(tst, "alp", 1e-17, s.Alp, []float64{0})

	// commit
	s.Pending = true
	s.commit()
	chk.Array(tst, "epsP", 1e-17, s.EpsP, []float64{0.1, 0, 0, 0, 0, 0})
	chk.Array(tst, "alp", 1e-17, s.Alp, []float64{0.2})
	chk.Float64(tst, "dissipation", 1e-17, s.Dissipation, 3)
	if s.Pending {
		tst.Errorf("pending flag must be cleared")
	}

	// second commit is a no-op
	s.AlpTr[0] = 123
	s.commit()
	chk.Array(tst, "alp", 1e-17, s.Alp, []float64{0.2})

	// reset trial
	s.trialFromCommitted()
	chk.Array(tst, "alpTr", 1e-17, s.AlpTr, []float64{0.2})
}

func Test_state03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state03. persistence")

	s := NewState(4, 1, true, false)
	s.Sig = []float64{1, 2, 3, 4}
	s.EpsP[3] = 0.01
	s.Alp[0] = 0.5
	s.Dissipation = 7
	for _, enctype := range []string{"gob", "json"} {
		var buf bytes.Buffer
		require.NoError(tst, s.Encode(inp.GetEncoder(&buf, enctype)))
		r := NewState(4, 1, true, false)
		require.NoError(tst, r.Decode(inp.GetDecoder(&buf, enctype)))
		chk.Array(tst, "sig", 1e-17, r.Sig, s.Sig)
		chk.Array(tst, "epsP", 1e-17, r.EpsP, s.EpsP)
		chk.Array(tst, "alp", 1e-17, r.Alp, s.Alp)
		chk.Float64(tst, "dissipation", 1e-17, r.Dissipation, 7)
	}
}

func Test_state04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state04. decoding into a used state")

	src := NewState(4, 1, true, false)
	src.Sig = []float64{1, 2, 3, 4}
	src.Alp[0] = 0.5
	src.AlpTr[0] = 0.5
	for _, enctype := range []string{"gob", "json"} {
		var buf bytes.Buffer
		require.NoError(tst, src.Encode(inp.GetEncoder(&buf, enctype)))

		// stale trial values and flags from an unfinished evaluation
		r := NewState(4, 1, true, false)
		r.Pending = true
		r.Loading = true
		r.ApexReturn = true
		r.Dgam = 0.1
		r.DissTr = 9
		r.DamageTr = 0.3
		r.EpsPtr[0] = 0.02
		r.AlpTr[0] = 0.8
		require.NoError(tst, r.Decode(inp.GetDecoder(&buf, enctype)))

		assert.False(tst, r.Pending, enctype)
		assert.False(tst, r.Loading, enctype)
		assert.False(tst, r.ApexReturn, enctype)
		chk.Float64(tst, "dgam", 1e-17, r.Dgam, 0)
		chk.Float64(tst, "dissTr", 1e-17, r.DissTr, 0)
		chk.Float64(tst, "damageTr", 1e-17, r.DamageTr, 0)
		chk.Array(tst, "epsPtr", 1e-17, r.EpsPtr, []float64{0, 0, 0, 0})
		chk.Array(tst, "alpTr", 1e-17, r.AlpTr, []float64{0.5})
		chk.Array(tst, "sig", 1e-17, r.Sig, src.Sig)

		// same contents as a state decoded into fresh memory
		f := NewState(4, 1, true, false)
		buf.Reset()
		require.NoError(tst, src.Encode(inp.GetEncoder(&buf, enctype)))
		require.NoError(tst, f.Decode(inp.GetDecoder(&buf, enctype)))
		assert.Equal(tst, f, r, enctype)
	}
}

func Test_state05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state05. restart in the middle of an inelastic path")

	props := newProps(tst,
		&dbf.P{N: "E", V: 1000}, &dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "sy0", V: 1}, &dbf.P{N: "H", V: 50},
		&dbf.P{N: "M", V: 0.8}, &dbf.P{N: "ft", V: 1}, &dbf.P{N: "A", V: 1},
	)
	nsteps, nsave := 8, 4
	path := make([][]float64, nsteps)
	for k := range path {
		e := 0.002 * float64(k+1)
		path[k] = []float64{e, -0.5 * e, -0.25 * e, 0.5 * e, 0, 0.1 * e}
	}
	step := func(law Law, s *State, prm *Parameters, ε []float64) {
		copy(prm.Strain, ε)
		require.NoError(tst, law.CalculateMaterialResponse(s, prm))
		require.NoError(tst, law.FinalizeMaterialResponse(s, prm))
	}

	for _, name := range []string{"vm", "dp", "damage"} {
		for _, enctype := range []string{"gob", "json"} {
			law, err := NewAndInit(name, 3, false, props)
			require.NoError(tst, err, name)
			prm := NewParameters(6, ComputeStress|ComputeTangent)

			// uninterrupted path
			ref, err := law.InitIntVars(make([]float64, 6))
			require.NoError(tst, err)
			σref := make([][]float64, nsteps)
			for k, ε := range path {
				step(law, ref, prm, ε)
				σref[k] = append([]float64{}, ref.Sig...)
			}

			// interrupted path: save after nsave steps
			s, err := law.InitIntVars(make([]float64, 6))
			require.NoError(tst, err)
			for _, ε := range path[:nsave] {
				step(law, s, prm, ε)
			}
			require.True(tst, s.Loading, "%s must be inelastic when saved", name)
			assert.Greater(tst, s.Dissipation, 0.0, name)
			var buf bytes.Buffer
			require.NoError(tst, s.Encode(inp.GetEncoder(&buf, enctype)))

			// load into a state left pending by an unfinished evaluation and continue
			r, err := law.InitIntVars(make([]float64, 6))
			require.NoError(tst, err)
			copy(prm.Strain, path[nsteps-1])
			require.NoError(tst, law.CalculateMaterialResponse(r, prm))
			require.NoError(tst, r.Decode(inp.GetDecoder(&buf, enctype)))
			for k := nsave; k < nsteps; k++ {
				step(law, r, prm, path[k])
				io.Pforan("%6s %s: step %d σ = %v\n", name, enctype, k, r.Sig)
				chk.Array(tst, io.Sf("%s %s: σ @ step %d", name, enctype, k), 1e-14, r.Sig, σref[k])
			}
			chk.Array(tst, name+" "+enctype+": α", 1e-14, r.Alp, ref.Alp)
			chk.Float64(tst, name+" "+enctype+": dissipation", 1e-14, r.Dissipation, ref.Dissipation)
			chk.Float64(tst, name+" "+enctype+": damage", 1e-14, r.Damage, ref.Damage)
		}
	}
}
