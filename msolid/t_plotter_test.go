// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_plotter01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plotter01. driver results")

	props := newProps(tst,
		&dbf.P{N: "E", V: 1000}, &dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "sy0", V: 1}, &dbf.P{N: "H", V: 100},
	)
	var drv Driver
	require.NoError(tst, drv.Init("vm", 2, false, props))
	var pth Path
	require.NoError(tst, pth.SetUniaxial(4, 5, 0.005))
	require.NoError(tst, drv.Run(&pth))

	// series
	series := driverSeries(&drv)
	chk.Array(tst, "i", 1e-15, series["i"], []float64{0, 1, 2, 3, 4, 5})
	chk.Array(tst, "exx", 1e-15, series["exx"], []float64{0, 0.001, 0.002, 0.003, 0.004, 0.005})
	chk.Array(tst, "ev", 1e-15, series["ev"], series["exx"])
	chk.Float64(tst, "q0", 1e-15, series["q"][0], 0)
	assert.Greater(tst, series["alp"][5], 0.0)

	// figures
	dir := tst.TempDir()
	o := Plotter{SaveDir: dir, SaveFnk: "vm"}
	fn, err := o.Plot(&drv)
	require.NoError(tst, err)
	assert.Equal(tst, filepath.Join(dir, "vm.png"), fn)
	_, err = os.Stat(fn)
	require.NoError(tst, err)

	o = Plotter{Keys: PlotSet2[:3], SaveDir: dir, SaveFnk: "vm2", Lbl: "J2"}
	_, err = o.Plot(&drv)
	require.NoError(tst, err)

	// errors
	o = Plotter{Keys: []string{"ed"}, SaveDir: dir, SaveFnk: "bad"}
	_, err = o.Plot(&drv)
	assert.Error(tst, err)
	o = Plotter{Keys: []string{"ed,energy"}, SaveDir: dir, SaveFnk: "bad"}
	_, err = o.Plot(&drv)
	assert.Error(tst, err)
	_, err = o.Plot(&Driver{})
	assert.Error(tst, err)
}
