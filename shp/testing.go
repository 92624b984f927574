// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

// fdSettings are the finite differences settings used by the checks
var fdSettings = &fd.Settings{Formula: fd.Central, Step: 1e-3}

// CheckShape checks the Kronecker property S_m(r_n) = δ_mn at all vertices
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {
	r := []float64{0, 0, 0}
	δ := make([]float64, shape.Nverts)
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}
		shape.Func(shape.S, shape.DSdR, r, false)
		if verbose {
			io.Pf("%s: S @ vertex %d = %v\n", shape.Type, n, shape.S)
		}
		floats.Scale(0, δ)
		δ[n] = 1
		chk.Array(tst, io.Sf("%s: S @ vertex %d", shape.Type, n), tol, shape.S, δ)
	}
}

// CheckDSdR compares dSdR with the gradient of S computed with central differences
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {
	shape.Func(shape.S, shape.DSdR, r, true)
	ana := make([][]float64, shape.Nverts)
	for n := range ana {
		ana[n] = append([]float64{}, shape.DSdR[n]...)
	}
	rTmp := make([]float64, 3)
	sTmp := make([]float64, shape.Nverts)
	for n := 0; n < shape.Nverts; n++ {
		num := fd.Gradient(nil, func(R []float64) float64 {
			copy(rTmp, R)
			shape.Func(sTmp, nil, rTmp, false)
			return sTmp[n]
		}, r[:shape.Gndim], fdSettings)
		if verbose {
			io.Pfgrey2("  dS%ddR @ %v = %v (num: %v)\n", n, r, ana[n], num)
		}
		chk.Array(tst, io.Sf("%s: dS%ddR", shape.Type, n), tol, ana[n], num)
	}
}

// CheckDSdx compares G = dSdx at the real point x with the gradient of S(r(x)) computed with
// central differences, where r(x) is found with InvMap
func CheckDSdx(tst *testing.T, shape *Shape, xmat [][]float64, x []float64, tol float64, verbose bool) {
	r := make([]float64, 3)
	err := shape.InvMap(r, x, xmat)
	if err != nil {
		tst.Errorf("InvMap failed:\n%v", err)
		return
	}
	err = shape.CalcAtIp(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	G := make([][]float64, shape.Nverts)
	for n := range G {
		G[n] = append([]float64{}, shape.G[n]...)
	}
	rTmp := make([]float64, 3)
	for n := 0; n < shape.Nverts; n++ {
		num := fd.Gradient(nil, func(X []float64) float64 {
			if e := shape.InvMap(rTmp, X, xmat); e != nil {
				tst.Errorf("InvMap failed:\n%v", e)
			}
			shape.Func(shape.S, shape.DSdR, rTmp, false)
			return shape.S[n]
		}, x, fdSettings)
		if verbose {
			io.Pfgrey2("  dS%ddx @ %v = %v (num: %v)\n", n, x, G[n], num)
		}
		chk.Array(tst, io.Sf("%s: dS%ddx", shape.Type, n), tol, G[n], num)
	}
}
