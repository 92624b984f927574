// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tsr implements tensor algebra in Voigt notation: invariants, strain measures and
// related operators used by constitutive models
//
//  Ordering:
//   3D           [xx, yy, zz, xy, yz, zx]  nsig = 6
//   2D           [xx, yy, zz, xy]          nsig = 4 (plane-strain, axisymmetric)
//   2D (plane)   [xx, yy, xy]              nsig = 3
//
//  Stresses carry tensor components. Strains carry engineering shear components (γ = 2 ε).
package tsr

import (
	"math"

	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// constants
const (
	MINDET = 1.0e-14 // minimum determinant allowed when inverting 3x3 matrices
	Zero   = 1.0e-15 // values below this are treated as zero (norms/invariants)
)

// square roots used in invariants
var (
	SQ2    = math.Sqrt(2.0)
	SQ3    = math.Sqrt(3.0)
	SQ6    = math.Sqrt(6.0)
	SQ2by3 = math.Sqrt(2.0 / 3.0)
	SQ3by2 = math.Sqrt(3.0 / 2.0)
)

// VoigtMap maps tensor components (k,l) to Voigt indices
type VoigtMap struct {
	Ndim   int      // space dimension
	Nsig   int      // Voigt size
	Normal [3]int   // Voigt index of component (k,k); -1 if not present
	Shear  [][3]int // {voigt index, k, l} for each shear component
}

var (
	map3D    = &VoigtMap{3, 6, [3]int{0, 1, 2}, [][3]int{{3, 0, 1}, {4, 1, 2}, {5, 2, 0}}}
	map2D    = &VoigtMap{2, 4, [3]int{0, 1, 2}, [][3]int{{3, 0, 1}}}
	map2Dpln = &VoigtMap{2, 3, [3]int{0, 1, -1}, [][3]int{{2, 0, 1}}}
)

// VoigtSize returns the number of Voigt components
//  plane -- use the reduced [xx, yy, xy] representation in 2D
func VoigtSize(ndim int, plane bool) int {
	if ndim == 3 {
		return 6
	}
	if plane {
		return 3
	}
	return 4
}

// NewVoigtMap returns the map for a given space dimension and Voigt size
func NewVoigtMap(ndim, nsig int) (*VoigtMap, error) {
	switch {
	case ndim == 3 && nsig == 6:
		return map3D, nil
	case ndim == 2 && nsig == 4:
		return map2D, nil
	case ndim == 2 && nsig == 3:
		return map2Dpln, nil
	}
	if ndim == 3 {
		return nil, kerr.Dimension("Voigt vector (3D)", nsig, 6)
	}
	return nil, kerr.Dimension("Voigt vector (2D)", nsig, 4)
}

// mapOf returns the map corresponding to the length of a Voigt vector
func mapOf(n int) *VoigtMap {
	switch n {
	case 3:
		return map2Dpln
	case 4:
		return map2D
	}
	return map3D
}

// Im returns the second order identity tensor in Voigt notation
func Im(n int) (v []float64) {
	v = make([]float64, n)
	for _, I := range mapOf(n).Normal {
		if I >= 0 {
			v[I] = 1
		}
	}
	return
}

// Psd returns the deviatoric projector mapping engineering strains to tensor components;
// i.e. 2 G Psd : ε = 2 G dev(ε)
func Psd(n int) (P [][]float64) {
	P = make([][]float64, n)
	for i := 0; i < n; i++ {
		P[i] = make([]float64, n)
	}
	m := mapOf(n)
	for _, I := range m.Normal {
		if I < 0 {
			continue
		}
		for _, J := range m.Normal {
			if J < 0 {
				continue
			}
			P[I][J] = -1.0 / 3.0
		}
		P[I][I] += 1.0
	}
	for _, s := range m.Shear {
		P[s[0]][s[0]] = 0.5
	}
	return
}

// comps returns all six components of a Voigt vector (missing components are zero)
func comps(v []float64) (xx, yy, zz, xy, yz, zx float64) {
	switch len(v) {
	case 3:
		return v[0], v[1], 0, v[2], 0, 0
	case 4:
		return v[0], v[1], v[2], v[3], 0, 0
	}
	return v[0], v[1], v[2], v[3], v[4], v[5]
}

// StrainTensorToVector converts a 3x3 strain tensor into a Voigt vector with engineering shear
// components. The size of v selects the representation
func StrainTensorToVector(v []float64, T [][]float64) {
	m := mapOf(len(v))
	for k, I := range m.Normal {
		if I >= 0 {
			v[I] = T[k][k]
		}
	}
	for _, s := range m.Shear {
		v[s[0]] = T[s[1]][s[2]] + T[s[2]][s[1]]
	}
}

// StrainVectorToTensor converts a Voigt strain vector into a 3x3 tensor
func StrainVectorToTensor(T [][]float64, v []float64) {
	setTensor(T, v, 0.5)
}

// StressTensorToVector converts a 3x3 stress tensor into a Voigt vector
func StressTensorToVector(v []float64, T [][]float64) {
	m := mapOf(len(v))
	for k, I := range m.Normal {
		if I >= 0 {
			v[I] = T[k][k]
		}
	}
	for _, s := range m.Shear {
		v[s[0]] = T[s[1]][s[2]]
	}
}

// StressVectorToTensor converts a Voigt stress vector into a 3x3 tensor
func StressVectorToTensor(T [][]float64, v []float64) {
	setTensor(T, v, 1.0)
}

func setTensor(T [][]float64, v []float64, shearCoef float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T[i][j] = 0
		}
	}
	m := mapOf(len(v))
	for k, I := range m.Normal {
		if I >= 0 {
			T[k][k] = v[I]
		}
	}
	for _, s := range m.Shear {
		T[s[1]][s[2]] = shearCoef * v[s[0]]
		T[s[2]][s[1]] = T[s[1]][s[2]]
	}
}

// PlaneStrainReduce projects a 6x6 constitutive matrix onto the [xx, yy, xy] plane by
// removing the zz, yz and zx rows and columns
func PlaneStrainReduce(D6 [][]float64) (D3 [][]float64) {
	idx := []int{0, 1, 3}
	D3 = make([][]float64, 3)
	for i, I := range idx {
		D3[i] = make([]float64, 3)
		for j, J := range idx {
			D3[i][j] = D6[I][J]
		}
	}
	return
}
