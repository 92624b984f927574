// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	chk.Verbose = true
}

// configKey returns the key of a configuration error
func configKey(tst *testing.T, err error) string {
	var cfg *kerr.ConfigurationError
	require.True(tst, errors.As(err, &cfg), "error %v is not a configuration error", err)
	return cfg.Key
}

func Test_strategy01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strategy01. defaults")

	o, err := ReadStrategy(strings.NewReader(`{}`))
	require.NoError(tst, err)
	chk.Int(tst, "MaxIt", o.MaxIt, 10)
	chk.Int(tst, "Nworkers", o.Nworkers, 1)
	chk.Int(tst, "NdvgMax", o.NdvgMax, 20)
	assert.Equal(tst, "residual", o.Criterion)
	assert.Equal(tst, "static", o.Scheme)
	assert.Equal(tst, "lu", o.LinSol)
	assert.False(tst, o.Reactions)
	assert.False(tst, o.KeepConstant)
	chk.Float64(tst, "alpha_bossak", 1e-15, o.AlphaBossak, -0.3)
	chk.Float64(tst, "Itol", 1e-15, o.Itol, 1e-3)

	o, err = ReadStrategy(strings.NewReader(`{"max_iteration":3, "nworkers":0, "criterion":"and", "keep_system_constant":true}`))
	require.NoError(tst, err)
	chk.Int(tst, "MaxIt", o.MaxIt, 3)
	chk.Int(tst, "Nworkers", o.Nworkers, 1)
	assert.Equal(tst, "and", o.Criterion)
	assert.True(tst, o.KeepConstant)
}

func Test_strategy02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strategy02. invalid and unknown keys")

	for key, doc := range map[string]string{
		"max_iteration": `{"max_iteration":0}`,
		"nworkers":      `{"nworkers":-2}`,
		"atol":          `{"atol":0}`,
		"fbmin":         `{"fbmin":-1}`,
		"dtmin":         `{"dtmin":0}`,
		"alpha_bossak":  `{"alpha_bossak":0.1}`,
		"criterion":     `{"criterion":"energy"}`,
		"scheme":        `{"scheme":"newmark"}`,
		"linsol":        `{"linsol":"mumps"}`,
		"max_iter":      `{"max_iter":3}`,
		"showr":         `{"showr":"yes"}`,
	} {
		_, err := ReadStrategy(strings.NewReader(doc))
		require.Error(tst, err, doc)
		io.Pforan("%v\n", err)
		assert.Equal(tst, key, configKey(tst, err), doc)
		assert.ErrorIs(tst, err, kerr.ErrConfiguration)
	}

	_, err := ReadStrategy(strings.NewReader(`{"max_iteration":`))
	assert.Error(tst, err)
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read simulation file")

	sim, err := ReadSim("../fem/data/onequa4.sim", "inp", false, 0)
	require.NoError(tst, err)
	assert.Equal(tst, "onequa4-inp", sim.Key)
	assert.Equal(tst, "/tmp/kratos/fem", sim.DirOut)
	assert.Equal(tst, "gob", sim.EncType)
	chk.Int(tst, "ndim", sim.Ndim, 2)
	assert.True(tst, sim.Strategy.Reactions)

	// mesh
	msh := sim.Regions[0].Msh
	chk.Int(tst, "nverts", len(msh.Verts), 4)
	chk.Int(tst, "ncells", len(msh.Cells), 1)
	chk.Float64(tst, "xmax", 1e-15, msh.Xmax, 1)
	chk.Float64(tst, "ymax", 1e-15, msh.Ymax, 1)
	chk.Int(tst, "verts with tag -2", len(msh.VertTag2verts[-2]), 1)
	chk.Deep2(tst, "X", 1e-15, msh.ExtractCellCoords(0), [][]float64{{0, 1, 1, 0}, {0, 0, 1, 1}})
	require.NotNil(tst, sim.Regions[0].Etag2data(-1))
	assert.Equal(tst, "elast", sim.Regions[0].Etag2data(-1).Mat)
	assert.Nil(tst, sim.Regions[0].Etag2data(-7))

	// materials
	mat := sim.MatParams.Get("vm")
	require.NotNil(tst, mat)
	assert.Equal(tst, "vm", mat.Model)
	assert.Nil(tst, sim.MatParams.Get("granite"))

	// stages and functions
	stg := sim.Stages[0]
	chk.Float64(tst, "tf", 1e-15, stg.Control.Tf, 1)
	chk.Float64(tst, "dtout", 1e-15, stg.Control.DtOut, 1)
	nbc := stg.GetNodeBc(-2)
	require.NotNil(tst, nbc)
	fcn, err := nbc.GetFunc("fx", sim.Functions)
	require.NoError(tst, err)
	chk.Float64(tst, "fx", 1e-15, fcn.F(0.3, nil), 0.5)
	fcn, err = nbc.GetFunc("uy", sim.Functions)
	require.NoError(tst, err)
	chk.Float64(tst, "uy", 1e-15, fcn.F(0.3, nil), 0)
	_, err = nbc.GetFunc("ux", sim.Functions)
	assert.Error(tst, err)
	assert.Nil(tst, stg.GetNodeBc(-9))

	// info
	var buf bytes.Buffer
	require.NoError(tst, sim.GetInfo(&buf))
	assert.Contains(tst, buf.String(), `"mshfile": "onequa4.msh"`)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. invalid simulation files")

	_, err := ParseSim([]byte(`{"data":{"desc":"x"}, "solver":{}}`))
	assert.Equal(tst, "solver", configKey(tst, err))

	_, err = ParseSim([]byte(`{"strategy":{"max_iteration":-1}}`))
	assert.Equal(tst, "max_iteration", configKey(tst, err))

	_, err = ParseSim([]byte(`{"stages":[{"control":{"tf":"one"}}]}`))
	assert.Equal(tst, "tf", configKey(tst, err))

	sim, err := ParseSim([]byte(`{"data":{"encoder":"xml"}, "stages":[{"control":{"tf":2}}]}`))
	require.NoError(tst, err)
	assert.Equal(tst, "gob", sim.EncType)
	chk.Float64(tst, "dt", 1e-15, sim.Stages[0].Control.Dt, 2)

	_, err = ReadSim("../fem/data/notfound.sim", "", false, 0)
	assert.Error(tst, err)
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. materials database")

	mdb, err := ParseMat([]byte(`{"materials":[{"name":"a", "model":"lin-elast", "prms":[{"n":"E", "v":10}]}]}`))
	require.NoError(tst, err)
	require.NotNil(tst, mdb.Get("a"))
	chk.Float64(tst, "E", 1e-15, mdb.Get("a").Prms[0].V, 10)

	_, err = ParseMat([]byte(`{"materials":[{"name":"a"}, {"name":"a"}]}`))
	assert.Error(tst, err)
	_, err = ParseMat([]byte(`{"materials":[{"model":"vm"}]}`))
	assert.Error(tst, err)
}

func Test_files01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("files01. missing files")

	_, err := ReadSim("../fem/data/notfound.sim", "", false, 0)
	require.Error(tst, err)
	assert.True(tst, errors.Is(err, kerr.ErrConfiguration))
	assert.Equal(tst, "simfile", configKey(tst, err))

	_, err = ReadMat("../fem/data", "notfound.mat")
	require.Error(tst, err)
	assert.True(tst, errors.Is(err, kerr.ErrConfiguration))
	assert.Equal(tst, "matfile", configKey(tst, err))

	_, err = ReadMsh("../fem/data", "notfound.msh", 0)
	require.Error(tst, err)
	assert.True(tst, errors.Is(err, kerr.ErrConfiguration))
	assert.Equal(tst, "mshfile", configKey(tst, err))
}

func Test_func01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("func01. function types")

	fcn, err := NewFunc("cte", dbf.Params{&dbf.P{N: "c", V: 2.5}})
	require.NoError(tst, err)
	chk.Float64(tst, "c", 1e-15, fcn.F(0, nil), 2.5)

	_, err = NewFunc("bogus", nil)
	require.Error(tst, err)
	assert.True(tst, errors.Is(err, kerr.ErrConfiguration))
	assert.Equal(tst, "type", configKey(tst, err))

	_, err = NewFunc("cte", dbf.Params{&dbf.P{N: "a", V: 1}})
	require.Error(tst, err)
	assert.True(tst, errors.Is(err, kerr.ErrConfiguration))

	funcs := FuncsData{{Name: "load", Type: "bogus"}}
	_, err = funcs.Get("load")
	require.Error(tst, err)
	assert.True(tst, errors.Is(err, kerr.ErrConfiguration))
	assert.Contains(tst, err.Error(), "bogus")

	_, err = funcs.Get("missing")
	assert.Error(tst, err)
}

func Test_encoding01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("encoding01")

	type data struct {
		A float64
		B []int
	}
	for _, enctype := range []string{"gob", "json", ""} {
		var buf bytes.Buffer
		require.NoError(tst, GetEncoder(&buf, enctype).Encode(data{1.5, []int{1, 2}}))
		var res data
		require.NoError(tst, GetDecoder(&buf, enctype).Decode(&res))
		assert.Equal(tst, data{1.5, []int{1, 2}}, res)
	}
}
