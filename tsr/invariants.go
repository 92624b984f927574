// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import "math"

// I1 returns the trace of σ
func I1(σ []float64) float64 {
	return σ[0] + σ[1] + zz(σ)
}

// P returns the mean pressure (positive in compression)
func P(σ []float64) float64 {
	return -I1(σ) / 3.0
}

// Dev computes the deviator s = σ - tr(σ)/3 I
func Dev(s, σ []float64) {
	tr := I1(σ) / 3.0
	m := mapOf(len(σ))
	copy(s, σ)
	for _, I := range m.Normal {
		if I >= 0 {
			s[I] -= tr
		}
	}
}

// J2 returns the second invariant of the deviator of σ
func J2(σ []float64) float64 {
	xx, yy, zz, xy, yz, zx := comps(σ)
	p := (xx + yy + zz) / 3.0
	sx, sy, sz := xx-p, yy-p, zz-p
	return (sx*sx+sy*sy+sz*sz)/2.0 + xy*xy + yz*yz + zx*zx
}

// J3 returns the third invariant (determinant) of the deviator of σ
func J3(σ []float64) float64 {
	xx, yy, zz, xy, yz, zx := comps(σ)
	p := (xx + yy + zz) / 3.0
	sx, sy, sz := xx-p, yy-p, zz-p
	return sx*sy*sz + 2.0*xy*yz*zx - sx*yz*yz - sy*zx*zx - sz*xy*xy
}

// Q returns the von Mises equivalent stress sqrt(3 J2)
func Q(σ []float64) float64 {
	return math.Sqrt(3.0 * J2(σ))
}

// VonMises returns the von Mises equivalent stress
func VonMises(σ []float64) float64 { return Q(σ) }

// DevNorm returns the norm of the deviator of σ: sqrt(s:s)
func DevNorm(σ []float64) float64 {
	return math.Sqrt(2.0 * J2(σ))
}

// LodeAngle returns θ in [-π/6, π/6] with sin(3θ) = -(3√3/2) J3 / J2^(3/2).
// Returns 0 for hydrostatic states
func LodeAngle(σ []float64) float64 {
	j2 := J2(σ)
	if j2 < Zero {
		return 0
	}
	s3θ := -1.5 * SQ3 * J3(σ) / math.Pow(j2, 1.5)
	if s3θ > 1 {
		s3θ = 1
	}
	if s3θ < -1 {
		s3θ = -1
	}
	return math.Asin(s3θ) / 3.0
}

// StrainInvs computes the deviatoric strain e (tensor components, i.e. half of engineering shear)
// from the Voigt strain ε and returns:
//  eno -- norm of e
//  εv  -- volumetric strain tr(ε)
//  εd  -- deviatoric strain sqrt(2/3) eno
func StrainInvs(e, ε []float64) (eno, εv, εd float64) {
	εv = I1(ε)
	m := mapOf(len(ε))
	copy(e, ε)
	for _, I := range m.Normal {
		if I >= 0 {
			e[I] -= εv / 3.0
			eno += e[I] * e[I]
		}
	}
	for _, s := range m.Shear {
		e[s[0]] /= 2.0
		eno += 2.0 * e[s[0]] * e[s[0]]
	}
	if m.Normal[2] < 0 { // plane vector: zz component is implicit
		ezz := -εv / 3.0
		eno += ezz * ezz
	}
	eno = math.Sqrt(eno)
	εd = SQ2by3 * eno
	return
}

// Dot returns a:b for a stress vector a and an engineering strain vector b
func Dot(a, b []float64) (res float64) {
	for i := 0; i < len(a); i++ {
		res += a[i] * b[i]
	}
	return
}

func zz(v []float64) float64 {
	if len(v) == 3 {
		return 0
	}
	return v[2]
}
