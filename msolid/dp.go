// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/mokhairy2019/Kratos-sub001/tsr"
)

// DPReturn implements the Drucker-Prager return mapping with return to apex.
// The plastic potential has slope Mb; Mb == M gives associative flow
type DPReturn struct {
	K, G  float64        // elastic constants
	Crit  *DruckerPrager // yield criterion
	Tol   float64        // tolerance of local Newton iterations
	MaxIt int            // maximum number of local iterations
}

// NewDPReturn returns a Drucker-Prager flow rule
func NewDPReturn(K, G, M, Mb float64, hard HardeningLaw) *DPReturn {
	return &DPReturn{K: K, G: G, Crit: NewDruckerPrager(M, Mb, hard), Tol: 1e-10, MaxIt: 20}
}

// Name returns the name of this flow rule
func (o *DPReturn) Name() string { return "dp-return" }

// Clone returns an independent copy
func (o *DPReturn) Clone() FlowRule {
	p := *o
	p.Crit = o.Crit.Clone().(*DruckerPrager)
	return &p
}

// Criterion returns the yield criterion
func (o *DPReturn) Criterion() YieldCriterion { return o.Crit }

// ReturnMapping corrects σtr onto the cone or onto the apex
func (o *DPReturn) ReturnMapping(r *Return, σtr []float64, α0, T float64) (err error) {

	// trial state
	r.trial(σtr)
	if o.Crit.F(σtr, α0, T) <= 0 {
		r.elastic(σtr, α0)
		return
	}
	M, Mb, hard := o.Crit.M, o.Crit.Mb, o.Crit.Hard
	I := tsr.Im(len(σtr))

	// return to cone
	r.Dgam, err = newton1(func(Δγ float64) (f, df float64) {
		f = r.Qtr - 3.0*o.G*Δγ - M*(r.Ptr+o.K*Mb*Δγ) - hard.Yield(α0+Δγ, T)
		df = -3.0*o.G - M*o.K*Mb - hard.Slope(α0+Δγ, T)
		return
	}, 0, o.Tol*(1.0+r.Qtr+M*abs(r.Ptr)), o.MaxIt)
	if err != nil {
		return
	}
	r.Loading = true
	if r.Qtr-3.0*o.G*r.Dgam >= 0 {
		r.Apex = false
		r.Alp = α0 + r.Dgam
		pnew := r.Ptr + o.K*Mb*r.Dgam
		s := tsr.SQ2by3 * (r.Qtr - 3.0*o.G*r.Dgam)
		for i := range r.Sig {
			r.Sig[i] = s*r.N[i] - pnew*I[i]
			r.Nflow[i] = tsr.SQ3by2*r.N[i]*shearFactor(i) + Mb*I[i]/3.0
		}
		return
	}

	// return to apex
	r.Dgam, err = newton1(func(Δγ float64) (f, df float64) {
		f = -M*(r.Ptr+3.0*o.K*Δγ) - hard.Yield(α0+Δγ, T)
		df = -3.0*o.K*M - hard.Slope(α0+Δγ, T)
		return
	}, 0, o.Tol*(1.0+M*abs(r.Ptr)), o.MaxIt)
	if err != nil {
		return
	}
	r.Apex = true
	r.Alp = α0 + r.Dgam
	pnew := r.Ptr + 3.0*o.K*r.Dgam
	for i := range r.Sig {
		r.Sig[i] = -pnew * I[i]
		r.Nflow[i] = I[i]
	}
	return
}

// ConsistentD computes D = dσnew/dεnew consistent with ReturnMapping
func (o *DPReturn) ConsistentD(D [][]float64, r *Return, T float64) {

	// elastic
	n := len(r.Sig)
	I, Psd := tsr.Im(n), tsr.Psd(n)
	K, G, M, Mb := o.K, o.G, o.Crit.M, o.Crit.Mb
	H := o.Crit.Hard.Slope(r.Alp, T)
	if !r.Loading {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				D[i][j] = K*I[i]*I[j] + 2.0*G*Psd[i][j]
			}
		}
		return
	}

	// return to apex
	if r.Apex {
		a1 := K * H / (3.0*K*M + H)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				D[i][j] = a1 * I[i] * I[j]
			}
		}
		return
	}

	// return to cone
	hp := 3.0*G + K*M*Mb + H
	m := 1.0 - 3.0*G*r.Dgam/r.Qtr
	a1 := K - K*K*Mb*M/hp
	a2 := -2.0 * G * K * Mb * tsr.SQ3by2 / hp
	b1 := -tsr.SQ6 * G * M * K / hp
	b2 := 6.0 * G * G * (r.Dgam/r.Qtr - 1.0/hp)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			D[i][j] = 2.0*G*m*Psd[i][j] +
				a1*I[i]*I[j] +
				a2*I[i]*r.N[j] +
				b1*r.N[i]*I[j] +
				b2*r.N[i]*r.N[j]
		}
	}
}
