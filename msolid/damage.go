// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// Damage implements isotropic damage with exponential softening (Simo-Ju).
//  τ = sqrt(ε : De : ε)      r0 = ft / sqrt(E)
//  d(r) = 1 - (r0/r) exp(A (1 - r/r0))
//  σ = (1 - d) De : ε
// The damage threshold r is stored in Alp[0]
type Damage struct {
	LinElast         // elastic part
	Ft       float64 // tensile strength
	A        float64 // softening parameter
	Dmax     float64 // maximum damage
	r0       float64 // initial threshold
	σe       []float64
}

// add law to factory
func init() {
	register("damage", func() Law { return new(Damage) })
}

// Name returns the name of this law
func (o *Damage) Name() string { return "damage" }

// Check validates parameters
func (o *Damage) Check(props *Properties, ndim int) (err error) {
	err = o.LinElast.Check(props, ndim)
	if err != nil {
		return
	}
	for _, key := range []string{"ft", "A"} {
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

// Init initialises law
func (o *Damage) Init(ndim int, pstress bool, props *Properties) (err error) {
	err = o.Check(props, ndim)
	if err != nil {
		return
	}
	err = o.LinElast.Init(ndim, pstress, props)
	if err != nil {
		return
	}
	o.Ft = props.FloatOr("ft", 0)
	o.A = props.FloatOr("A", 0)
	o.Dmax = props.FloatOr("dmax", 0.9999)
	o.setup()
	return
}

func (o *Damage) setup() {
	o.r0 = o.Ft / math.Sqrt(o.E)
	o.σe = make([]float64, o.Nsig)
}

// Clone returns an independent copy
func (o *Damage) Clone() Law {
	p := *o
	p.De = cloneMat(o.De)
	p.σe = make([]float64, o.Nsig)
	return &p
}

// InitIntVars initialises internal (secondary) variables
func (o *Damage) InitIntVars(σ0 []float64) (s *State, err error) {
	if len(σ0) != o.Nsig {
		return nil, kerr.Dimension("initial stresses", len(σ0), o.Nsig)
	}
	s = NewState(o.Nsig, 1, false, false)
	copy(s.Sig0, σ0)
	copy(s.Sig, σ0)
	s.Alp[0], s.AlpTr[0] = o.r0, o.r0
	return
}

// damage computes d(r) and dd/dr
func (o *Damage) damage(r float64) (d, dd float64) {
	if r <= o.r0 {
		return 0, 0
	}
	e := math.Exp(o.A * (1.0 - r/o.r0))
	d = 1.0 - o.r0/r*e
	dd = e * (o.r0/(r*r) + o.A/r)
	if d > o.Dmax {
		return o.Dmax, 0
	}
	return
}

// CalculateMaterialResponse computes stresses from the committed threshold
func (o *Damage) CalculateMaterialResponse(s *State, p *Parameters) (err error) {

	// effective stress and energy norm
	ε := p.Strain
	err = checkStrain(ε, o.Nsig)
	if err != nil {
		return
	}
	copy(s.Eps, ε)
	var τ2 float64
	for i := 0; i < o.Nsig; i++ {
		o.σe[i] = 0
		for j := 0; j < o.Nsig; j++ {
			o.σe[i] += o.De[i][j] * ε[j]
		}
		τ2 += o.σe[i] * ε[i]
	}
	τ := math.Sqrt(math.Max(τ2, 0))

	// threshold
	s.trialFromCommitted()
	r := s.Alp[0]
	if τ > r {
		r = τ
		s.Loading = true
	}
	d, dd := o.damage(r)
	s.AlpTr[0] = r
	s.DamageTr = d
	s.DissTr = s.Dissipation + 0.5*τ2*(d-s.Damage)
	s.Pending = true

	// stresses
	for i := 0; i < o.Nsig; i++ {
		s.Sig[i] = s.Sig0[i] + (1.0-d)*o.σe[i]
	}
	p.output(s.Sig)

	// tangent
	if p.tangent() {
		c := 0.0
		if s.Loading && τ > 0 {
			c = dd / τ
		}
		for i := 0; i < o.Nsig; i++ {
			for j := 0; j < o.Nsig; j++ {
				p.D[i][j] = (1.0-d)*o.De[i][j] - c*o.σe[i]*o.σe[j]
			}
		}
	}
	return
}

// FinalizeMaterialResponse commits damage and threshold
func (o *Damage) FinalizeMaterialResponse(s *State, p *Parameters) error {
	s.commit()
	return nil
}

// damageData holds the persistent data of Damage
type damageData struct {
	Ft, A, Dmax float64
}

// Encode encodes law configuration
func (o *Damage) Encode(enc inp.Encoder) (err error) {
	err = o.LinElast.Encode(enc)
	if err != nil {
		return
	}
	return enc.Encode(damageData{o.Ft, o.A, o.Dmax})
}

// Decode decodes law configuration
func (o *Damage) Decode(dec inp.Decoder) (err error) {
	err = o.LinElast.Decode(dec)
	if err != nil {
		return
	}
	var d damageData
	err = dec.Decode(&d)
	if err != nil {
		return
	}
	o.Ft, o.A, o.Dmax = d.Ft, d.A, d.Dmax
	o.setup()
	return
}
