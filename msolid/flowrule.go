// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/mokhairy2019/Kratos-sub001/tsr"
)

// Return holds the results of a return mapping
type Return struct {
	Sig     []float64 // corrected stress
	Dgam    float64   // Δγ: plastic multiplier
	Alp     float64   // updated equivalent plastic strain
	Loading bool      // plastic loading happened
	Apex    bool      // return to apex
	Ptr     float64   // trial mean pressure
	Qtr     float64   // trial deviatoric stress
	N       []float64 // unit trial deviator (tensor components)
	Nflow   []float64 // flow direction: Δεp = Δγ Nflow (engineering shear)
}

// NewReturn allocates a return structure
func NewReturn(nsig int) *Return {
	return &Return{
		Sig:   make([]float64, nsig),
		N:     make([]float64, nsig),
		Nflow: make([]float64, nsig),
	}
}

// FlowRule maps a trial stress back onto the yield surface. Flow rules own the elastic
// constants and a YieldCriterion which owns a HardeningLaw
type FlowRule interface {
	Name() string                                                // name of flow rule
	Clone() FlowRule                                             // returns an independent copy of the whole triad
	Criterion() YieldCriterion                                   // yield criterion
	ReturnMapping(r *Return, σtr []float64, α0, T float64) error // corrects σtr
	ConsistentD(D [][]float64, r *Return, T float64)             // algorithmic tangent consistent with r
}

// trial computes ptr, qtr and the unit deviator of the trial stress
func (r *Return) trial(σtr []float64) {
	r.Ptr, r.Qtr = tsr.P(σtr), tsr.Q(σtr)
	tsr.Dev(r.N, σtr)
	nrm := tsr.SQ2by3 * r.Qtr
	if nrm < tsr.Zero {
		for i := range r.N {
			r.N[i] = 0
		}
		return
	}
	for i := range r.N {
		r.N[i] /= nrm
	}
}

// elastic sets r for an elastic step
func (r *Return) elastic(σtr []float64, α0 float64) {
	copy(r.Sig, σtr)
	r.Dgam, r.Alp = 0, α0
	r.Loading, r.Apex = false, false
	for i := range r.Nflow {
		r.Nflow[i] = 0
	}
}

// RadialReturn implements the associative return mapping of J2 plasticity
type RadialReturn struct {
	K, G  float64        // elastic constants
	Crit  YieldCriterion // von Mises criterion
	Tol   float64        // tolerance of local Newton iterations
	MaxIt int            // maximum number of local iterations
}

// NewRadialReturn returns a J2 flow rule
func NewRadialReturn(K, G float64, hard HardeningLaw) *RadialReturn {
	return &RadialReturn{K: K, G: G, Crit: NewVonMises(hard), Tol: 1e-10, MaxIt: 20}
}

// Name returns the name of this flow rule
func (o *RadialReturn) Name() string { return "radial-return" }

// Clone returns an independent copy
func (o *RadialReturn) Clone() FlowRule {
	p := *o
	p.Crit = o.Crit.Clone()
	return &p
}

// Criterion returns the yield criterion
func (o *RadialReturn) Criterion() YieldCriterion { return o.Crit }

// ReturnMapping solves qtr - 3 G Δγ - κ(α0 + Δγ) = 0
func (o *RadialReturn) ReturnMapping(r *Return, σtr []float64, α0, T float64) (err error) {
	r.trial(σtr)
	if o.Crit.F(σtr, α0, T) <= 0 {
		r.elastic(σtr, α0)
		return
	}
	hard := o.Crit.Hardening()
	r.Dgam, err = newton1(func(Δγ float64) (f, df float64) {
		f = r.Qtr - 3.0*o.G*Δγ - hard.Yield(α0+Δγ, T)
		df = -3.0*o.G - hard.Slope(α0+Δγ, T)
		return
	}, 0, o.Tol*(1.0+r.Qtr), o.MaxIt)
	if err != nil {
		return
	}
	r.Alp = α0 + r.Dgam
	r.Loading, r.Apex = true, false
	m := 1.0 - 3.0*o.G*r.Dgam/r.Qtr
	s := tsr.SQ2by3 * r.Qtr * m
	I := tsr.Im(len(σtr))
	for i := range r.Sig {
		r.Sig[i] = s*r.N[i] - r.Ptr*I[i]
		r.Nflow[i] = tsr.SQ3by2 * r.N[i] * shearFactor(i)
	}
	return
}

// ConsistentD computes D = K I⊗I + 2 G m Psd + 6 G² (Δγ/qtr - 1/hp) n⊗n
func (o *RadialReturn) ConsistentD(D [][]float64, r *Return, T float64) {
	n := len(r.Sig)
	I, Psd := tsr.Im(n), tsr.Psd(n)
	m, b := 1.0, 0.0
	if r.Loading {
		hp := 3.0*o.G + o.Crit.Hardening().Slope(r.Alp, T)
		m = 1.0 - 3.0*o.G*r.Dgam/r.Qtr
		b = 6.0 * o.G * o.G * (r.Dgam/r.Qtr - 1.0/hp)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			D[i][j] = o.K*I[i]*I[j] + 2.0*o.G*m*Psd[i][j] + b*r.N[i]*r.N[j]
		}
	}
}
