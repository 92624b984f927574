// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/mokhairy2019/Kratos-sub001/fem"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	chk.Verbose = true
}

// execute runs the root command with args and returns what was written to stdout
func execute(tst *testing.T, args ...string) (string, error) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if chk.Verbose {
		tst.Log(buf.String())
	}
	return buf.String(), err
}

func Test_version01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("version01")

	res, err := execute(tst, "version")
	require.NoError(tst, err)
	assert.Equal(tst, "kratos v"+Version+"\n", res)
}

func Test_contact01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("contact01. two spheres")

	res, err := execute(tst, "contact", "--law", "hertz", "--ra", "1", "--rb", "1", "--dist", "1.99")
	require.NoError(tst, err)
	assert.Contains(tst, res, "law               = hertz")
	assert.Contains(tst, res, "equivalent radius = 0.5")
	assert.NotContains(tst, res, "normal force      = 0\n")

	// separated
	res, err = execute(tst, "contact", "--law", "linear", "--ra", "1", "--rb", "1", "--dist", "3")
	require.NoError(tst, err)
	assert.Contains(tst, res, "normal force      = 0\n")

	// unknown law
	_, err = execute(tst, "contact", "--law", "energy", "--dist", "1.99")
	assert.True(tst, errors.Is(err, kerr.ErrConfiguration))

	// invalid particle
	_, err = execute(tst, "contact", "--law", "hertz", "--poisson", "0.5", "--dist", "1.99")
	var ce *kerr.ConfigurationError
	require.True(tst, errors.As(err, &ce))
	assert.Equal(tst, "poisson", ce.Key)
	_, err = execute(tst, "contact", "--law", "hertz", "--poisson", "0.25", "--dist", "1.99")
	require.NoError(tst, err)
}

func Test_matdrv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matdrv01. material point simulations")

	res, err := execute(tst, "matdrv", "--model", "lin-elast", "--E", "1000", "--nu", "0.25", "--nincs", "4", "--emax", "0.001")
	require.NoError(tst, err)
	assert.Contains(tst, res, "σxx vs increment (lin-elast)")

	// plane-strain: σxx = E (1-ν) / ((1+ν) (1-2ν)) εxx = 1.2 εxx E
	assert.Contains(tst, res, "1.2000")

	dir := tst.TempDir()
	res, err = execute(tst, "matdrv", "--model", "vm", "--E", "1500", "--nu", "0.25", "--sy0", "10", "--H", "100", "--nincs", "10", "--emax", "0.02", "--png", dir)
	require.NoError(tst, err)
	assert.Contains(tst, res, "σxx vs increment (vm)")
	assert.Contains(tst, res, "matdrv-vm.png")

	_, err = execute(tst, "matdrv", "--model", "lin-elast", "--nu", "0.5", "--png", "")
	var ce *kerr.ConfigurationError
	require.True(tst, errors.As(err, &ce))
	assert.Equal(tst, "nu", ce.Key)
	_, err = execute(tst, "matdrv", "--nu", "0.25")
	require.NoError(tst, err)
}

func Test_run01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run01. simulation with residual plots")

	res, err := execute(tst, "run", "--alias", "cmd", "--summary", "--graph", "--png", "../fem/data/plastic.sim")
	require.NoError(tst, err)
	assert.Contains(tst, res, "completed")
	assert.Contains(tst, res, "final time = ")
	assert.Contains(tst, res, "steps      = ")
	assert.Contains(tst, res, "log10(largest residual) vs iteration")
	assert.Contains(tst, res, "plastic-cmd_resid.png")

	_, err = execute(tst, "run", "--png=false", "missing.sim")
	assert.Error(tst, err)

	_, err = execute(tst, "run")
	assert.Error(tst, err)
}

func Test_resid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resid01. residual history")

	sum := &fem.Summary{
		Iterations: []int{2, 1},
		Resids:     [][]float64{{1, 1e-2, 1e-9}, {0, 1e-12}},
	}
	chk.Int(tst, "iterations", totalIterations(sum), 3)
	chk.Array(tst, "log10(resids)", 1e-15, residHistory(sum), []float64{0, -2, -9, -12})

	var buf bytes.Buffer
	writeResidGraph(&buf, &fem.Summary{Resids: [][]float64{{1}}})
	assert.Empty(tst, buf.String())
	writeResidGraph(&buf, sum)
	assert.Contains(tst, buf.String(), "log10(largest residual)")
}
