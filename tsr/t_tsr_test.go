// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"github.com/stretchr/testify/require"
)

func verbose() {
	chk.Verbose = true
}

func Test_voigt01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("voigt01")

	chk.Array(tst, "Im(6)", 1e-17, Im(6), []float64{1, 1, 1, 0, 0, 0})
	chk.Array(tst, "Im(4)", 1e-17, Im(4), []float64{1, 1, 1, 0})
	chk.Array(tst, "Im(3)", 1e-17, Im(3), []float64{1, 1, 0})
	chk.Int(tst, "nsig 3D", VoigtSize(3, false), 6)
	chk.Int(tst, "nsig 2D", VoigtSize(2, false), 4)
	chk.Int(tst, "nsig plane", VoigtSize(2, true), 3)

	// deviatoric projector acting on engineering strains
	P := Psd(6)
	ε := []float64{0.01, 0, 0, 0.02, 0, 0}
	e := make([]float64, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			e[i] += P[i][j] * ε[j]
		}
	}
	io.Pforan("Psd:ε = %v\n", e)
	chk.Array(tst, "Psd:ε", 1e-17, e, []float64{0.02 / 3.0, -0.01 / 3.0, -0.01 / 3.0, 0.01, 0, 0})

	// maps
	_, err := NewVoigtMap(3, 4)
	require.True(tst, errors.Is(err, kerr.ErrDimensionMismatch))
	m, err := NewVoigtMap(2, 3)
	require.NoError(tst, err)
	chk.Int(tst, "plane: xy index", m.Shear[0][0], 2)

	// conversions
	T := [][]float64{{1, 4, 6}, {4, 2, 5}, {6, 5, 3}}
	v := make([]float64, 6)
	StrainTensorToVector(v, T)
	chk.Array(tst, "strain vector", 1e-17, v, []float64{1, 2, 3, 8, 10, 12})
	Tb := Alloc3()
	StrainVectorToTensor(Tb, v)
	chk.Deep2(tst, "strain tensor", 1e-17, Tb, T)
	StressTensorToVector(v, T)
	chk.Array(tst, "stress vector", 1e-17, v, []float64{1, 2, 3, 4, 5, 6})
	StressVectorToTensor(Tb, v)
	chk.Deep2(tst, "stress tensor", 1e-17, Tb, T)

	// plane-strain projection
	D6 := make([][]float64, 6)
	for i := 0; i < 6; i++ {
		D6[i] = make([]float64, 6)
		for j := 0; j < 6; j++ {
			D6[i][j] = float64(10*i + j)
		}
	}
	chk.Deep2(tst, "D3", 1e-17, PlaneStrainReduce(D6), [][]float64{{0, 1, 3}, {10, 11, 13}, {30, 31, 33}})
}

func Test_invs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invs01")

	σ := []float64{-10, -20, -30, 5, 0, 0}
	chk.Float64(tst, "I1", 1e-15, I1(σ), -60)
	chk.Float64(tst, "p", 1e-15, P(σ), 20)
	chk.Float64(tst, "J2", 1e-13, J2(σ), 125)
	chk.Float64(tst, "J3", 1e-12, J3(σ), 250)
	chk.Float64(tst, "q", 1e-13, Q(σ), math.Sqrt(375))
	chk.Float64(tst, "vm", 1e-13, VonMises(σ), Q(σ))
	s := make([]float64, 6)
	Dev(s, σ)
	chk.Array(tst, "dev", 1e-15, s, []float64{10, 0, -10, 5, 0, 0})

	// same state in 2D representation
	σ2d := []float64{-10, -20, -30, 5}
	chk.Float64(tst, "J2 (2D)", 1e-13, J2(σ2d), 125)

	// Lode angle: uniaxial compression and hydrostatic state
	θ := LodeAngle([]float64{-10, 0, 0, 0, 0, 0})
	io.Pforan("θ = %v\n", θ)
	chk.Float64(tst, "θ uniaxial", 1e-7, θ, math.Pi/6.0)
	chk.Float64(tst, "θ hydrostatic", 1e-17, LodeAngle([]float64{-1, -1, -1, 0, 0, 0}), 0)

	// strain invariants
	e := make([]float64, 6)
	eno, εv, εd := StrainInvs(e, []float64{0.01, 0, 0, 0, 0, 0})
	chk.Float64(tst, "εv", 1e-17, εv, 0.01)
	chk.Float64(tst, "εd", 1e-15, εd, 0.02/3.0)
	chk.Float64(tst, "eno", 1e-15, eno, 0.01*math.Sqrt(6.0)/3.0)
	chk.Array(tst, "e", 1e-15, e, []float64{0.02 / 3.0, -0.01 / 3.0, -0.01 / 3.0, 0, 0, 0})
}

func Test_strain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("strain01")

	F := [][]float64{{1.1, 0.2, 0}, {0, 1, 0}, {0, 0, 1}}
	E := Alloc3()
	GreenLagrange(E, F)
	io.Pforan("E = %v\n", E)
	chk.Deep2(tst, "E", 1e-15, E, [][]float64{{0.105, 0.11, 0}, {0.11, 0.02, 0}, {0, 0, 0}})

	// Almansi directly and through the Green-Lagrange conversion
	e, eb := Alloc3(), Alloc3()
	require.NoError(tst, Almansi(e, F))
	require.NoError(tst, GreenLagrangeToAlmansi(eb, E, F))
	chk.Deep2(tst, "e", 1e-14, eb, e)
	Eb := Alloc3()
	AlmansiToGreenLagrange(Eb, e, F)
	chk.Deep2(tst, "E (back)", 1e-14, Eb, E)

	// push forward and pull back
	S := [][]float64{{1, 2, 0}, {2, 3, 0}, {0, 0, 4}}
	τ, Sb := Alloc3(), Alloc3()
	PushForward(τ, S, F)
	require.NoError(tst, PullBack(Sb, τ, F))
	chk.Deep2(tst, "S (back)", 1e-14, Sb, S)

	// singular F
	require.Error(tst, Almansi(e, [][]float64{{1, 0, 0}, {0, 0, 0}, {0, 0, 1}}))
}

func Test_polar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polar01")

	// F = Rz(30°) * diag(1.2, 0.9, 1.0)
	c, s := math.Cos(math.Pi/6.0), math.Sin(math.Pi/6.0)
	Rz := [][]float64{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
	Ud := [][]float64{{1.2, 0, 0}, {0, 0.9, 0}, {0, 0, 1.0}}
	F := Alloc3()
	Mul3(F, Rz, Ud)

	R, U, err := PolarDecomposition(F)
	require.NoError(tst, err)
	io.Pforan("R = %v\n", R)
	io.Pforan("U = %v\n", U)
	chk.Deep2(tst, "R", 1e-14, R, Rz)
	chk.Deep2(tst, "U", 1e-14, U, Ud)

	// general F: R*U == F and tr(R)*R == I
	F = [][]float64{{1.1, 0.3, -0.1}, {0.05, 0.95, 0.2}, {0.0, -0.1, 1.05}}
	R, U, err = PolarDecomposition(F)
	require.NoError(tst, err)
	RU, RtR := Alloc3(), Alloc3()
	Mul3(RU, R, U)
	TrMul3(RtR, R, R)
	chk.Deep2(tst, "R*U", 1e-14, RU, F)
	chk.Deep2(tst, "tr(R)*R", 1e-14, RtR, Identity3())
	chk.Float64(tst, "U01-U10", 1e-15, U[0][1]-U[1][0], 0)

	// errors
	_, _, err = PolarDecomposition([][]float64{{1, 0}, {0, 1}})
	require.True(tst, errors.Is(err, kerr.ErrDimensionMismatch))
	_, _, err = PolarDecomposition([][]float64{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	require.Error(tst, err)
}
