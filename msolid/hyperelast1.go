// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"github.com/mokhairy2019/Kratos-sub001/tsr"
)

// HyperElast1 implements a nonlinear hyperelastic model for powders and porous media
type HyperElast1 struct {

	// constants
	Ndim   int     // space dimension
	Nsig   int     // number of stress components
	EnoMin float64 // minimum value of ||dev(ε)||

	// parameters
	Kap  float64 // κ
	Kapb float64 // \bar{κ}
	G0   float64 // G0
	Pr   float64 // pr
	Pt   float64 // pt
	Le   bool    // use linear elastic model
	K0   float64 // K0 (for linear model)

	// derived
	pa float64 // pa = pr + pt
	a  float64 // a = 1 / κ

	// auxiliary
	e  []float64 // e = dev(ε) (tensor components)
	ez []float64 // zero strains
}

// add law to factory
func init() {
	register("hyp-elast1", func() Law { return new(HyperElast1) })
}

// Name returns the name of this law
func (o *HyperElast1) Name() string { return "hyp-elast1" }

// Check validates parameters
func (o *HyperElast1) Check(props *Properties, ndim int) (err error) {
	err = checkNdim(ndim)
	if err != nil {
		return
	}
	if props.BoolOr("le", false) {
		for _, key := range []string{"K0", "G0"} {
			v, err := props.Float(key)
			if err != nil {
				return err
			}
			if v <= 0 {
				return kerr.Config(key, "must be positive. %s = %g", key, v)
			}
		}
		return
	}
	for _, key := range []string{"kap", "kapb", "G0", "pr"} {
		if _, err = props.Float(key); err != nil {
			return
		}
	}
	if κ, _ := props.Float("kap"); κ <= 0 {
		return kerr.Config("kap", "must be positive. kap = %g", κ)
	}
	return
}

// Init initialises law
func (o *HyperElast1) Init(ndim int, pstress bool, props *Properties) (err error) {

	// constants
	if pstress {
		return kerr.Config("pstress", "law %q does not support plane-stress", o.Name())
	}
	err = o.Check(props, ndim)
	if err != nil {
		return
	}
	o.Ndim = ndim
	o.Nsig = 2 * ndim
	o.EnoMin = 1e-14

	// parameters
	o.Kap = props.FloatOr("kap", 0)
	o.Kapb = props.FloatOr("kapb", 0)
	o.G0 = props.FloatOr("G0", 0)
	o.Pr = props.FloatOr("pr", 0)
	o.Pt = props.FloatOr("pt", 0)
	o.Le = props.BoolOr("le", false)
	o.K0 = props.FloatOr("K0", 0)
	o.setup()
	return
}

func (o *HyperElast1) setup() {
	o.pa = o.Pr + o.Pt
	if o.Kap > 0 {
		o.a = 1.0 / o.Kap
	}
	o.e = make([]float64, o.Nsig)
	o.ez = make([]float64, o.Nsig)
}

// Clone returns an independent copy
func (o *HyperElast1) Clone() Law {
	p := *o
	p.setup()
	return &p
}

// VoigtSize returns the number of stress components
func (o *HyperElast1) VoigtSize() int { return o.Nsig }

// WorkingSpaceDimension returns the space dimension
func (o *HyperElast1) WorkingSpaceDimension() int { return o.Ndim }

// Measure returns the strain measure
func (o *HyperElast1) Measure() StrainMeasure { return Infinitesimal }

// InitIntVars initialises internal (secondary) variables
func (o *HyperElast1) InitIntVars(σ0 []float64) (s *State, err error) {
	if len(σ0) != o.Nsig {
		return nil, kerr.Dimension("initial stresses", len(σ0), o.Nsig)
	}
	s = NewState(o.Nsig, 0, false, false)
	copy(s.Sig0, σ0)
	copy(s.Sig, σ0)
	return
}

// CalculateConstitutiveMatrixPK2 computes the modulus at zero strain
func (o *HyperElast1) CalculateConstitutiveMatrixPK2(D [][]float64) {
	o.L_CalcD(D, o.ez)
}

// CalculateMaterialResponse updates stresses for given strains
func (o *HyperElast1) CalculateMaterialResponse(s *State, p *Parameters) (err error) {
	ε := p.Strain
	err = checkStrain(ε, o.Nsig)
	if err != nil {
		return
	}
	copy(s.Eps, ε)
	eno, εv, εd := tsr.StrainInvs(o.e, ε)
	pp, q := o.Calc_pq(εv, εd)
	I := tsr.Im(o.Nsig)
	if eno > o.EnoMin {
		for i := 0; i < o.Nsig; i++ {
			s.Sig[i] = s.Sig0[i] - pp*I[i] + tsr.SQ2by3*q*o.e[i]/eno
		}
	} else {
		for i := 0; i < o.Nsig; i++ {
			s.Sig[i] = s.Sig0[i] - pp*I[i]
		}
	}
	p.output(s.Sig)
	if p.tangent() {
		o.L_CalcD(p.D, ε)
	}
	return
}

// FinalizeMaterialResponse commits history (nothing to do for elastic laws)
func (o *HyperElast1) FinalizeMaterialResponse(s *State, p *Parameters) error {
	s.commit()
	return nil
}

// Calc_pq computes p and q for given elastic εv and εd
func (o *HyperElast1) Calc_pq(εv, εd float64) (p, q float64) {
	if o.Le {
		p = -o.K0 * εv
		q = 3.0 * o.G0 * εd
		return
	}
	pv := o.pa * math.Exp(-o.a*εv)
	p = (1.0+1.5*o.a*o.Kapb*εd*εd)*pv - o.pa
	q = 3.0 * (o.G0 + o.Kapb*pv) * εd
	return
}

// L_CalcD computes D = dσ/dε for given strains
//  D -- [nsig][nsig] elastic modulus
//  ε -- [nsig] strains
func (o *HyperElast1) L_CalcD(D [][]float64, ε []float64) {

	// elastic modulus
	n := len(ε)
	I, Psd := tsr.Im(n), tsr.Psd(n)
	if o.Le {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				D[i][j] = o.K0*I[i]*I[j] + 2.0*o.G0*Psd[i][j]
			}
		}
		return
	}

	// invariants of strain and normalised deviatoric direction
	eno, εv, εd := tsr.StrainInvs(o.e, ε)
	if eno > o.EnoMin {
		for i := 0; i < n; i++ {
			o.e[i] /= eno
		}
	} else {
		for i := 0; i < n; i++ {
			o.e[i] = 0
		}
	}

	// Dvv = ∂²ψ/(∂εve ∂εve)
	// Dvd = (∂²ψ/(∂εve ∂εde)) * sqrt(2/3)
	// Ddd2 = (∂²ψ/(∂εde ∂εde)) * 2 / 3
	pv := o.pa * math.Exp(-o.a*εv)
	Dvv := o.a * (1.0 + 1.5*o.a*o.Kapb*εd*εd) * pv
	DvdS := -3.0 * o.a * o.Kapb * εd * pv * tsr.SQ2by3
	Ddd2 := 2.0 * (o.G0 + o.Kapb*pv)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			D[i][j] = Dvv*I[i]*I[j] + Ddd2*Psd[i][j] + DvdS*(I[i]*o.e[j]+o.e[i]*I[j])
		}
	}
}

// hyperElast1Data holds the persistent data of HyperElast1
type hyperElast1Data struct {
	Ndim                     int
	Kap, Kapb, G0, Pr, Pt, K0 float64
	Le                       bool
}

// Encode encodes law configuration
func (o *HyperElast1) Encode(enc inp.Encoder) error {
	return enc.Encode(hyperElast1Data{o.Ndim, o.Kap, o.Kapb, o.G0, o.Pr, o.Pt, o.K0, o.Le})
}

// Decode decodes law configuration
func (o *HyperElast1) Decode(dec inp.Decoder) (err error) {
	var d hyperElast1Data
	err = dec.Decode(&d)
	if err != nil {
		return
	}
	o.Ndim, o.Nsig, o.EnoMin = d.Ndim, 2*d.Ndim, 1e-14
	o.Kap, o.Kapb, o.G0, o.Pr, o.Pt, o.K0, o.Le = d.Kap, d.Kapb, d.G0, d.Pr, d.Pt, d.K0, d.Le
	o.setup()
	return
}
