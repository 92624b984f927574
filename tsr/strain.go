// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"gonum.org/v1/gonum/mat"
)

// RightCauchyGreen computes C = tr(F) * F
func RightCauchyGreen(C, F [][]float64) {
	TrMul3(C, F, F)
}

// LeftCauchyGreen computes b = F * tr(F)
func LeftCauchyGreen(b, F [][]float64) {
	MulTr3(b, F, F)
}

// GreenLagrange computes E = ½ (C - I)
func GreenLagrange(E, F [][]float64) {
	RightCauchyGreen(E, F)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			E[i][j] *= 0.5
		}
		E[i][i] -= 0.5
	}
}

// Almansi computes e = ½ (I - inv(b))
func Almansi(e, F [][]float64) (err error) {
	b, bi := Alloc3(), Alloc3()
	LeftCauchyGreen(b, F)
	_, err = Inv3(bi, b)
	if err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			e[i][j] = -0.5 * bi[i][j]
		}
		e[i][i] += 0.5
	}
	return
}

// GreenLagrangeToAlmansi computes e = tr(inv(F)) * E * inv(F)
func GreenLagrangeToAlmansi(e, E, F [][]float64) (err error) {
	Fi, tmp := Alloc3(), Alloc3()
	_, err = Inv3(Fi, F)
	if err != nil {
		return
	}
	TrMul3(tmp, Fi, E)
	Mul3(e, tmp, Fi)
	return
}

// AlmansiToGreenLagrange computes E = tr(F) * e * F
func AlmansiToGreenLagrange(E, e, F [][]float64) {
	tmp := Alloc3()
	TrMul3(tmp, F, e)
	Mul3(E, tmp, F)
}

// PolarDecomposition computes F = R * U where R is a rotation and U = sqrt(tr(F) F) is the right
// stretch tensor. U is obtained from the spectral decomposition of C
func PolarDecomposition(F [][]float64) (R, U [][]float64, err error) {
	if len(F) != 3 {
		return nil, nil, kerr.Dimension("deformation gradient", len(F), 3)
	}
	for i := 0; i < 3; i++ {
		if len(F[i]) != 3 {
			return nil, nil, kerr.Dimension("deformation gradient row", len(F[i]), 3)
		}
	}
	if Det3(F) < MINDET {
		return nil, nil, chk.Err("polar decomposition requires det(F) > 0. det(F) = %g", Det3(F))
	}

	// spectral decomposition of C
	C := Alloc3()
	RightCauchyGreen(C, F)
	sym := mat.NewSymDense(3, []float64{
		C[0][0], C[0][1], C[0][2],
		C[1][0], C[1][1], C[1][2],
		C[2][0], C[2][1], C[2][2],
	})
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, nil, chk.Err("polar decomposition: eigen-decomposition of C failed")
	}
	λ := eig.Values(nil)
	var V mat.Dense
	eig.VectorsTo(&V)

	// U = Σ sqrt(λ) v⊗v and inv(U) = Σ v⊗v / sqrt(λ)
	U, Ui := Alloc3(), Alloc3()
	for k := 0; k < 3; k++ {
		if λ[k] < MINDET {
			return nil, nil, chk.Err("polar decomposition: C has a non-positive eigenvalue %g", λ[k])
		}
		sλ := math.Sqrt(λ[k])
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				vv := V.At(i, k) * V.At(j, k)
				U[i][j] += sλ * vv
				Ui[i][j] += vv / sλ
			}
		}
	}
	R = Alloc3()
	Mul3(R, F, Ui)
	return
}
