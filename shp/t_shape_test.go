// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

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

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01")

	r := []float64{0.1, -0.2, 0.3}
	for _, name := range []string{"lin2", "tri3", "qua4", "hex8"} {
		shape := Get(name, 0)
		io.Pfyel("--------------------------------- %-6s---------------------------------\n", name)
		CheckShape(tst, shape, 1e-17, chk.Verbose)
		CheckDSdR(tst, shape, r, 1e-10, chk.Verbose)

		// partition of unity and weights
		vol := 0.0
		for _, ip := range shape.Ips {
			shape.Func(shape.S, shape.DSdR, ip, false)
			sum := 0.0
			for _, s := range shape.S {
				sum += s
			}
			chk.Float64(tst, name+" ΣS", 1e-15, sum, 1)
			vol += ip[3]
		}
		ref := map[string]float64{"lin2": 2, "tri3": 0.5, "qua4": 4, "hex8": 8}[name]
		chk.Float64(tst, name+" Σw", 1e-15, vol, ref)
	}
	assert.Nil(tst, Get("dummy", 0))
	_, err := New("dummy")
	assert.Error(tst, err)
}

func Test_shape02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape02. Jacobian and G")

	xmat := [][]float64{
		{10, 13, 13, 10},
		{8, 8, 9, 9},
	}
	dx, dy := 3.0, 1.0
	dr, ds := 2.0, 2.0
	shape := Get("qua4", 1)
	require.NoError(tst, shape.CalcAtIp(xmat, Ipoint{0, 0, 0}, true))
	io.Pforan("J = %v\n", shape.J)
	chk.Float64(tst, "J", 1e-15, shape.J, (dx/dr)*(dy/ds))

	CheckDSdx(tst, shape, xmat, []float64{12.0, 8.5}, 1e-8, chk.Verbose)

	// distorted quadrilateral
	xmat = [][]float64{
		{0, 2, 2.5, -0.2},
		{0, 0.1, 1.8, 1.5},
	}
	CheckDSdx(tst, shape, xmat, []float64{1.0, 0.8}, 1e-6, chk.Verbose)

	// real coordinates of the centre
	y := shape.IpRealCoords([][]float64{{10, 13, 13, 10}, {8, 8, 9, 9}}, Ipoint{0, 0, 0, 4})
	chk.Array(tst, "y", 1e-15, y, []float64{11.5, 8.5})

	// degenerated element
	err := shape.CalcAtIp([][]float64{{0, 1, 1, 0}, {0, 0, 0, 0}}, Ipoint{0, 0, 0}, true)
	assert.Error(tst, err)
}

func Test_shape03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape03. lin2 in 2D and hex8 volume")

	lin := Get("lin2", 1)
	require.NoError(tst, lin.CalcAtIp([][]float64{{0, 3}, {0, 4}}, lin.Ips[0], true))
	chk.Float64(tst, "J", 1e-15, lin.J, 2.5)
	chk.Array(tst, "G", 1e-15, lin.Gvec, []float64{-0.2, 0.2})

	hex := Get("hex8", 1)
	x := [][]float64{
		{0, 2, 2, 0, 0, 2, 2, 0},
		{0, 0, 3, 3, 0, 0, 3, 3},
		{0, 0, 0, 0, 4, 4, 4, 4},
	}
	vol := 0.0
	for _, ip := range hex.Ips {
		require.NoError(tst, hex.CalcAtIp(x, ip, true))
		vol += ip[3] * hex.J
	}
	chk.Float64(tst, "volume", 1e-13, vol, 24)
}

func Test_attributes01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("attributes01")

	var a Attributes
	assert.False(tst, a.Has("thickness"))
	a.SetValue("thickness", 0.5)
	a.SetValue("name", "slab")
	th, err := GetValue[float64](&a, "thickness")
	require.NoError(tst, err)
	chk.Float64(tst, "thickness", 1e-17, th, 0.5)
	assert.Equal(tst, []string{"name", "thickness"}, a.Keys())

	_, err = GetValue[int](&a, "thickness")
	assert.ErrorIs(tst, err, kerr.ErrConfiguration)
	_, err = GetValue[float64](&a, "area")
	assert.ErrorIs(tst, err, kerr.ErrConfiguration)
	chk.Float64(tst, "area", 1e-17, GetValueOr(&a, "area", 1.0), 1)
}
