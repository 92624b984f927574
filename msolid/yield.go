// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/mokhairy2019/Kratos-sub001/tsr"
)

// YieldCriterion defines the elastic domain F(σ, α, T) ≤ 0
type YieldCriterion interface {
	Name() string                        // name of criterion
	Clone() YieldCriterion               // returns an independent copy (hardening included)
	Hardening() HardeningLaw             // hardening law owned by this criterion
	F(σ []float64, α, T float64) float64 // yield function
	Gradient(N, σ []float64)             // N = ∂F/∂σ with engineering shear (work conjugate to ε)
}

// VonMises implements F = q - κ(α, T)
type VonMises struct {
	Hard HardeningLaw
	s    []float64 // deviator
}

// NewVonMises returns a von Mises criterion
func NewVonMises(hard HardeningLaw) *VonMises { return &VonMises{Hard: hard} }

// Name returns the name of this criterion
func (o *VonMises) Name() string { return "von-mises" }

// Clone returns an independent copy
func (o *VonMises) Clone() YieldCriterion { return &VonMises{Hard: o.Hard.Clone()} }

// Hardening returns the hardening law
func (o *VonMises) Hardening() HardeningLaw { return o.Hard }

// F computes the yield function
func (o *VonMises) F(σ []float64, α, T float64) float64 {
	return tsr.Q(σ) - o.Hard.Yield(α, T)
}

// Gradient computes ∂F/∂σ = 3/(2q) dev(σ)
func (o *VonMises) Gradient(N, σ []float64) {
	o.s = scratch(o.s, len(σ))
	tsr.Dev(o.s, σ)
	q := tsr.Q(σ)
	for i := range N {
		N[i] = 0
	}
	if q < tsr.Zero {
		return
	}
	for i := range N {
		N[i] = 1.5 * o.s[i] / q * shearFactor(i)
	}
}

// DruckerPrager implements F = q - M p - κ(α, T) with a plastic potential of slope Mb
type DruckerPrager struct {
	M    float64 // slope of failure line in p-q space
	Mb   float64 // slope of plastic potential
	Hard HardeningLaw
	s    []float64 // deviator
}

// NewDruckerPrager returns a Drucker-Prager criterion
func NewDruckerPrager(M, Mb float64, hard HardeningLaw) *DruckerPrager {
	return &DruckerPrager{M: M, Mb: Mb, Hard: hard}
}

// Name returns the name of this criterion
func (o *DruckerPrager) Name() string { return "drucker-prager" }

// Clone returns an independent copy
func (o *DruckerPrager) Clone() YieldCriterion {
	return &DruckerPrager{M: o.M, Mb: o.Mb, Hard: o.Hard.Clone()}
}

// Hardening returns the hardening law
func (o *DruckerPrager) Hardening() HardeningLaw { return o.Hard }

// F computes the yield function
func (o *DruckerPrager) F(σ []float64, α, T float64) float64 {
	return tsr.Q(σ) - o.M*tsr.P(σ) - o.Hard.Yield(α, T)
}

// Gradient computes ∂F/∂σ = 3/(2q) dev(σ) + M/3 I
func (o *DruckerPrager) Gradient(N, σ []float64) {
	o.s = scratch(o.s, len(σ))
	tsr.Dev(o.s, σ)
	q := tsr.Q(σ)
	I := tsr.Im(len(σ))
	for i := range N {
		N[i] = o.M * I[i] / 3.0
		if q > tsr.Zero {
			N[i] += 1.5 * o.s[i] / q * shearFactor(i)
		}
	}
}

// scratch returns a slice of length n reusing buf if possible
func scratch(buf []float64, n int) []float64 {
	if len(buf) != n {
		return make([]float64, n)
	}
	return buf
}

// shearFactor converts tensor shear components into engineering ones
func shearFactor(i int) float64 {
	if i > 2 {
		return 2.0
	}
	return 1.0
}
