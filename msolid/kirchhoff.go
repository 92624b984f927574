// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"github.com/mokhairy2019/Kratos-sub001/tsr"
)

// Kirchhoff implements the Saint-Venant-Kirchhoff hyperelastic law: S = D : E where E is the
// Green-Lagrange strain and S the second Piola-Kirchhoff stress. In 2D (plane-strain) the law
// works with [xx, yy, xy] and D is the 3D modulus with the zz, yz and zx rows/columns removed
type Kirchhoff struct {
	LinElast      // elastic constants and 3D modulus
	Plane    bool // 2D reduced representation

	// scratch
	egl [][]float64 // Green-Lagrange strain tensor [3][3]
}

// add law to factory
func init() {
	register("kirchhoff", func() Law { return new(Kirchhoff) })
}

// Name returns the name of this law
func (o *Kirchhoff) Name() string { return "kirchhoff" }

// Init initialises law
func (o *Kirchhoff) Init(ndim int, pstress bool, props *Properties) (err error) {
	err = checkNdim(ndim)
	if err != nil {
		return
	}
	if pstress {
		return kerr.Config("pstress", "law %q is available for 3D and plane-strain only", o.Name())
	}
	err = o.LinElast.Init(3, false, props)
	if err != nil {
		return
	}
	o.build(ndim == 2)
	return
}

// build sets the 3D or plane-strain representation
func (o *Kirchhoff) build(plane bool) {
	o.Plane = plane
	o.LinElast.setup(3, false)
	if plane {
		o.Ndim = 2
		o.Nsig = 3
		o.De = tsr.PlaneStrainReduce(o.De)
	}
	o.egl = tsr.Alloc3()
}

// Clone returns an independent copy
func (o *Kirchhoff) Clone() Law {
	p := *o
	p.De = cloneMat(o.De)
	p.egl = tsr.Alloc3()
	return &p
}

// Measure returns the strain measure
func (o *Kirchhoff) Measure() StrainMeasure { return GreenLagrange }

// InitIntVars initialises internal (secondary) variables
func (o *Kirchhoff) InitIntVars(σ0 []float64) (s *State, err error) {
	if len(σ0) != o.Nsig {
		return nil, kerr.Dimension("initial stresses", len(σ0), o.Nsig)
	}
	s = NewState(o.Nsig, 0, false, true)
	copy(s.Sig0, σ0)
	copy(s.Sig, σ0)
	return
}

// CalculateMaterialResponse computes S = S0 + D : E
func (o *Kirchhoff) CalculateMaterialResponse(s *State, p *Parameters) (err error) {

	// Green-Lagrange strain
	if p.F != nil && !p.Options.Has(UseElementProvidedStrain) {
		if len(p.F) != 3 {
			return kerr.Dimension("deformation gradient", len(p.F), 3)
		}
		tsr.GreenLagrange(o.egl, p.F)
		if len(p.Strain) != o.Nsig {
			p.Strain = make([]float64, o.Nsig)
		}
		tsr.StrainTensorToVector(p.Strain, o.egl)
		for i := 0; i < 3; i++ {
			copy(s.F[i], p.F[i])
		}
	}
	err = checkStrain(p.Strain, o.Nsig)
	if err != nil {
		return
	}

	// stresses
	copy(s.Eps, p.Strain)
	for i := 0; i < o.Nsig; i++ {
		s.Sig[i] = s.Sig0[i]
		for j := 0; j < o.Nsig; j++ {
			s.Sig[i] += o.De[i][j] * p.Strain[j]
		}
	}
	p.output(s.Sig)
	if p.tangent() {
		o.CalculateConstitutiveMatrixPK2(p.D)
	}
	return
}

// Encode encodes law configuration
func (o *Kirchhoff) Encode(enc inp.Encoder) (err error) {
	err = o.LinElast.Encode(enc)
	if err != nil {
		return
	}
	return enc.Encode(o.Plane)
}

// Decode decodes law configuration
func (o *Kirchhoff) Decode(dec inp.Decoder) (err error) {
	err = o.LinElast.Decode(dec)
	if err != nil {
		return
	}
	var plane bool
	err = dec.Decode(&plane)
	if err != nil {
		return
	}
	o.build(plane)
	return
}
