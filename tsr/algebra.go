// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Alloc3 allocates a 3x3 matrix
func Alloc3() [][]float64 { return utl.Alloc(3, 3) }

// Identity3 returns the 3x3 identity matrix
func Identity3() (I [][]float64) {
	I = Alloc3()
	I[0][0], I[1][1], I[2][2] = 1, 1, 1
	return
}

// Det3 returns the determinant of a 3x3 matrix
func Det3(a [][]float64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Inv3 computes ai = inv(a) of a 3x3 matrix and returns det(a)
func Inv3(ai, a [][]float64) (det float64, err error) {
	det = Det3(a)
	if math.Abs(det) < MINDET {
		return det, chk.Err("cannot invert 3x3 matrix: determinant is too small: det=%g", det)
	}
	ai[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det
	ai[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det
	ai[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
	ai[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) / det
	ai[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
	ai[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det
	ai[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det
	ai[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det
	ai[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det
	return
}

// Mul3 computes c = a * b  (3x3)
func Mul3(c, a, b [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
}

// TrMul3 computes c = tr(a) * b  (3x3)
func TrMul3(c, a, b [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[0][i]*b[0][j] + a[1][i]*b[1][j] + a[2][i]*b[2][j]
		}
	}
}

// MulTr3 computes c = a * tr(b)  (3x3)
func MulTr3(c, a, b [][]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][0]*b[j][0] + a[i][1]*b[j][1] + a[i][2]*b[j][2]
		}
	}
}

// PushForward computes out = F * A * tr(F)
func PushForward(out, A, F [][]float64) {
	tmp := Alloc3()
	Mul3(tmp, F, A)
	MulTr3(out, tmp, F)
}

// PullBack computes out = inv(F) * A * tr(inv(F))
func PullBack(out, A, F [][]float64) (err error) {
	Fi := Alloc3()
	_, err = Inv3(Fi, F)
	if err != nil {
		return
	}
	PushForward(out, A, Fi)
	return
}
