// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/utl"
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"github.com/mokhairy2019/Kratos-sub001/tsr"
)

// LinElast implements linear elasticity for small strains (3D, plane-strain and plane-stress)
type LinElast struct {

	// parameters
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	K   float64 // bulk modulus
	G   float64 // shear modulus
	L   float64 // Lamé's λ
	Rho float64 // density

	// flags
	Ndim    int  // space dimension
	Pstress bool // plane-stress
	Nsig    int  // number of stress components

	// derived
	De [][]float64 // elastic modulus [nsig][nsig]
}

// add law to factory
func init() {
	register("lin-elast", func() Law { return new(LinElast) })
}

// Name returns the name of this law
func (o *LinElast) Name() string { return "lin-elast" }

// Check validates parameters
func (o *LinElast) Check(props *Properties, ndim int) (err error) {
	err = checkNdim(ndim)
	if err != nil {
		return
	}
	_, _, err = elasticConstants(props)
	return
}

// Init initialises law
func (o *LinElast) Init(ndim int, pstress bool, props *Properties) (err error) {
	err = checkNdim(ndim)
	if err != nil {
		return
	}
	if pstress && ndim != 2 {
		return kerr.Config("pstress", "plane-stress requires ndim == 2")
	}
	o.E, o.Nu, err = elasticConstants(props)
	if err != nil {
		return
	}
	o.Rho = props.FloatOr("rho", 0)
	o.setup(ndim, pstress)
	return
}

// setup computes derived moduli and the elastic modulus
func (o *LinElast) setup(ndim int, pstress bool) {
	o.Ndim, o.Pstress = ndim, pstress
	o.Nsig = 2 * ndim
	o.K = Calc_K_from_Enu(o.E, o.Nu)
	o.G = Calc_G_from_Enu(o.E, o.Nu)
	o.L = Calc_l_from_Enu(o.E, o.Nu)
	o.De = utl.Alloc(o.Nsig, o.Nsig)
	if pstress {
		c := o.E / (1.0 - o.Nu*o.Nu)
		o.De[0][0], o.De[0][1] = c, c*o.Nu
		o.De[1][0], o.De[1][1] = c*o.Nu, c
		o.De[3][3] = c * (1.0 - o.Nu) / 2.0
		return
	}
	I, Psd := tsr.Im(o.Nsig), tsr.Psd(o.Nsig)
	for i := 0; i < o.Nsig; i++ {
		for j := 0; j < o.Nsig; j++ {
			o.De[i][j] = o.K*I[i]*I[j] + 2.0*o.G*Psd[i][j]
		}
	}
}

// Clone returns an independent copy
func (o *LinElast) Clone() Law {
	p := *o
	p.De = cloneMat(o.De)
	return &p
}

// VoigtSize returns the number of stress components
func (o *LinElast) VoigtSize() int { return o.Nsig }

// WorkingSpaceDimension returns the space dimension
func (o *LinElast) WorkingSpaceDimension() int { return o.Ndim }

// Measure returns the strain measure
func (o *LinElast) Measure() StrainMeasure { return Infinitesimal }

// InitIntVars initialises internal (secondary) variables
func (o *LinElast) InitIntVars(σ0 []float64) (s *State, err error) {
	if len(σ0) != o.Nsig {
		return nil, kerr.Dimension("initial stresses", len(σ0), o.Nsig)
	}
	s = NewState(o.Nsig, 0, false, false)
	copy(s.Sig0, σ0)
	copy(s.Sig, σ0)
	return
}

// CalculateConstitutiveMatrixPK2 computes the elastic modulus
func (o *LinElast) CalculateConstitutiveMatrixPK2(D [][]float64) {
	for i := 0; i < o.Nsig; i++ {
		copy(D[i], o.De[i])
	}
}

// CalculateMaterialResponse computes σ = σ0 + De : ε
func (o *LinElast) CalculateMaterialResponse(s *State, p *Parameters) (err error) {
	err = checkStrain(p.Strain, o.Nsig)
	if err != nil {
		return
	}
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

// FinalizeMaterialResponse commits history (nothing to do for elastic laws)
func (o *LinElast) FinalizeMaterialResponse(s *State, p *Parameters) error {
	s.commit()
	return nil
}

// linElastData holds the persistent data of LinElast
type linElastData struct {
	E, Nu, Rho float64
	Ndim       int
	Pstress    bool
}

// Encode encodes law configuration
func (o *LinElast) Encode(enc inp.Encoder) error {
	return enc.Encode(linElastData{o.E, o.Nu, o.Rho, o.Ndim, o.Pstress})
}

// Decode decodes law configuration
func (o *LinElast) Decode(dec inp.Decoder) (err error) {
	var d linElastData
	err = dec.Decode(&d)
	if err != nil {
		return
	}
	o.E, o.Nu, o.Rho = d.E, d.Nu, d.Rho
	o.setup(d.Ndim, d.Pstress)
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// elasticConstants reads {E, nu} or {K, G} from props
func elasticConstants(props *Properties) (E, ν float64, err error) {
	if props.Has("K") && props.Has("G") && !props.Has("E") {
		K, _ := props.Float("K")
		G, _ := props.Float("G")
		if K <= 0 {
			return 0, 0, kerr.Config("K", "bulk modulus must be positive. K = %g", K)
		}
		if G <= 0 {
			return 0, 0, kerr.Config("G", "shear modulus must be positive. G = %g", G)
		}
		E, ν = Calc_E_from_KG(K, G), Calc_nu_from_KG(K, G)
		return
	}
	E, err = props.Float("E")
	if err != nil {
		return
	}
	ν, err = props.Float("nu")
	if err != nil {
		return
	}
	if E <= 0 {
		return 0, 0, kerr.Config("E", "Young's modulus must be positive. E = %g", E)
	}
	if ν < 0 || ν >= 0.5 {
		return 0, 0, kerr.Config("nu", "Poisson's coefficient must be in [0, 0.5). nu = %g", ν)
	}
	return
}

// Calc_K_from_Enu returns the bulk modulus
func Calc_K_from_Enu(E, ν float64) float64 { return E / (3.0 * (1.0 - 2.0*ν)) }

// Calc_G_from_Enu returns the shear modulus
func Calc_G_from_Enu(E, ν float64) float64 { return E / (2.0 * (1.0 + ν)) }

// Calc_l_from_Enu returns Lamé's λ
func Calc_l_from_Enu(E, ν float64) float64 { return E * ν / ((1.0 + ν) * (1.0 - 2.0*ν)) }

// Calc_E_from_KG returns Young's modulus
func Calc_E_from_KG(K, G float64) float64 { return 9.0 * K * G / (3.0*K + G) }

// Calc_nu_from_KG returns Poisson's coefficient
func Calc_nu_from_KG(K, G float64) float64 { return (3.0*K - 2.0*G) / (6.0*K + 2.0*G) }

func cloneMat(a [][]float64) (b [][]float64) {
	if a == nil {
		return nil
	}
	b = make([][]float64, len(a))
	for i := range a {
		b[i] = append([]float64{}, a[i]...)
	}
	return
}
