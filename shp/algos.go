// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// inverse mapping
var (
	InvMapTol   = 1.0e-10 // tolerance on the norm of the natural coordinates corrector
	InvMapMaxIt = 25      // max number of Newton iterations
)

// InvMap computes the natural coordinates r[3] of the real point y[ndim] inside the cell with
// coordinates x[ndim][nverts] by solving y - x⋅S(r) = 0 with Newton's method
func (o *Shape) InvMap(r, y []float64, x [][]float64) (err error) {
	if o.Gndim == 1 {
		return chk.Err("inverse mapping of %q is not available: line shapes have no inverse", o.Type)
	}
	n := o.Gndim
	e := mat.NewVecDense(n, nil)
	J := mat.NewDense(n, n, nil)
	var δr mat.VecDense
	r[0], r[1], r[2] = 0, 0, 0
	res := 0.0
	for it := 0; it < InvMapMaxIt; it++ {
		o.Func(o.S, o.DSdR, r, true)

		// e = y - x⋅S and J = dxdR = x⋅dSdR
		for i := 0; i < n; i++ {
			e.SetVec(i, y[i]-floats.Dot(x[i], o.S))
			for j := 0; j < n; j++ {
				v := 0.0
				for k := 0; k < o.Nverts; k++ {
					v += x[i][k] * o.DSdR[k][j]
				}
				J.Set(i, j, v)
			}
		}
		if o.J = mat.Det(J); o.J < MINDET {
			return chk.Err("inverse mapping of %q failed: det(dxdR) = %g is too small", o.Type, o.J)
		}

		// r += δr with J⋅δr = e
		err = δr.SolveVec(J, e)
		if err != nil {
			return
		}
		for i := 0; i < n; i++ {
			r[i] += δr.AtVec(i)
		}
		res = mat.Norm(&δr, 2)
		if res < InvMapTol {
			return
		}
	}
	return &kerr.NonConvergenceError{Iterations: InvMapMaxIt, MaxIterations: InvMapMaxIt, Residual: res}
}
