// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// DynCoefs holds the coefficients of the time integration scheme
//
//  Elements add the inertia and damping terms as
//
//   fb -= M ā + C v       with ā = (1 - αm) a + αm aold
//   K  += CM M + CC C
//
type DynCoefs struct {
	AlphaM float64 // Bossak's α
	Beta   float64 // Newmark's β
	Gamma  float64 // Newmark's γ
	Dt     float64 // time step
	CM     float64 // coefficient of the mass matrix in the tangent
	CC     float64 // coefficient of the damping matrix in the tangent
}

// Scheme advances the nodal unknowns between Newton iterations
type Scheme interface {
	Name() string                              // name of scheme
	Init(dom *Domain) error                    // sets the solution structures of domain
	CalcCoefficients(Δt float64) error         // computes coefficients for time step Δt
	Predict(sol *Solution, ebcs *EssentialBcs) // extrapolates the unknowns at the beginning of a step
	Update(sol *Solution, δy []float64)        // applies the increment δy; y += δy
	FinalizeStep(sol *Solution)                // stores the converged values as values of the previous step
	Coefs() *DynCoefs                          // coefficients of the mass and damping terms added by elements; nil for static analyses
}

// schemeallocators holds all available schemes
var schemeallocators = make(map[string]func(data *inp.StrategyData) Scheme)

// GetScheme returns a new scheme
func GetScheme(data *inp.StrategyData) (Scheme, error) {
	allocator, ok := schemeallocators[data.Scheme]
	if !ok {
		return nil, kerr.Config("scheme", "scheme %q is not available", data.Scheme)
	}
	return allocator(data), nil
}

// set factory
func init() {
	schemeallocators["static"] = func(data *inp.StrategyData) Scheme { return new(StaticScheme) }
	schemeallocators["bossak"] = func(data *inp.StrategyData) Scheme { return NewBossakScheme(data.AlphaBossak) }
}

// StaticScheme implements quasi-static analyses: y += δy
type StaticScheme struct{}

// Name returns the name of scheme
func (o *StaticScheme) Name() string { return "static" }

// Init sets the solution structures of domain
func (o *StaticScheme) Init(dom *Domain) error {
	dom.Sol.Dyn = o.Coefs()
	return nil
}

// CalcCoefficients computes coefficients for time step Δt
func (o *StaticScheme) CalcCoefficients(Δt float64) error { return nil }

// Predict keeps the unknowns of the last step and sets the prescribed values at sol.T
func (o *StaticScheme) Predict(sol *Solution, ebcs *EssentialBcs) {
	predict(sol, ebcs)
}

// Update applies the increment δy
func (o *StaticScheme) Update(sol *Solution, δy []float64) {
	for i, δ := range δy {
		sol.Y[i] += δ
		sol.ΔY[i] += δ
	}
}

// FinalizeStep stores the converged values
func (o *StaticScheme) FinalizeStep(sol *Solution) {
	copy(sol.Yold, sol.Y)
}

// Coefs returns nil
func (o *StaticScheme) Coefs() *DynCoefs { return nil }

// BossakScheme implements the Bossak-α method (Newmark with a shifted inertia term)
//
//  β = ¼ (1 - α)²   γ = ½ - α
//
//  a = (y - yold - Δt vold) / (β Δt²) - (1/(2β) - 1) aold
//  v = vold + Δt ((1 - γ) aold + γ a)
//
type BossakScheme struct {
	dc DynCoefs
}

// NewBossakScheme returns a new Bossak scheme. α must be in [-1/3, 0]
func NewBossakScheme(α float64) *BossakScheme {
	o := new(BossakScheme)
	o.dc.AlphaM = α
	o.dc.Beta = 0.25 * (1.0 - α) * (1.0 - α)
	o.dc.Gamma = 0.5 - α
	return o
}

// Name returns the name of scheme
func (o *BossakScheme) Name() string { return "bossak" }

// Init sets the solution structures of domain
func (o *BossakScheme) Init(dom *Domain) error {
	if dom.Sol.Dydt == nil {
		return kerr.Config("scheme", "bossak scheme requires velocities and accelerations to be allocated")
	}
	dom.Sol.Dyn = o.Coefs()
	return nil
}

// CalcCoefficients computes coefficients for time step Δt
func (o *BossakScheme) CalcCoefficients(Δt float64) error {
	if Δt <= 0 {
		return kerr.Config("dt", "time step must be positive. %g is invalid", Δt)
	}
	o.dc.Dt = Δt
	o.dc.CM = (1.0 - o.dc.AlphaM) / (o.dc.Beta * Δt * Δt)
	o.dc.CC = o.dc.Gamma / (o.dc.Beta * Δt)
	return nil
}

// Predict keeps the displacements of the last step, sets the prescribed values at sol.T and
// updates velocities and accelerations
func (o *BossakScheme) Predict(sol *Solution, ebcs *EssentialBcs) {
	predict(sol, ebcs)
	o.derivs(sol)
}

// Update applies the increment δy and updates velocities and accelerations
func (o *BossakScheme) Update(sol *Solution, δy []float64) {
	for i, δ := range δy {
		sol.Y[i] += δ
		sol.ΔY[i] += δ
	}
	o.derivs(sol)
}

// FinalizeStep stores the converged values
func (o *BossakScheme) FinalizeStep(sol *Solution) {
	copy(sol.Yold, sol.Y)
	copy(sol.Vold, sol.Dydt)
	copy(sol.Aold, sol.D2ydt2)
}

// Coefs returns the dynamic coefficients
func (o *BossakScheme) Coefs() *DynCoefs { return &o.dc }

// derivs computes velocities and accelerations from displacements
func (o *BossakScheme) derivs(sol *Solution) {
	β, γ, Δt := o.dc.Beta, o.dc.Gamma, o.dc.Dt
	c1 := 1.0 / (β * Δt * Δt)
	c2 := 1.0 / (β * Δt)
	c3 := 1.0/(2.0*β) - 1.0
	for i := range sol.Y {
		sol.D2ydt2[i] = c1*(sol.Y[i]-sol.Yold[i]) - c2*sol.Vold[i] - c3*sol.Aold[i]
		sol.Dydt[i] = sol.Vold[i] + Δt*((1.0-γ)*sol.Aold[i]+γ*sol.D2ydt2[i])
	}
}

// predict starts a new step: yold = y, y[fixed] = ȳ(t) and ΔY = y - yold
func predict(sol *Solution, ebcs *EssentialBcs) {
	copy(sol.Yold, sol.Y)
	if ebcs != nil {
		ebcs.Apply(sol.Y, sol.T)
	}
	for i := range sol.Y {
		sol.ΔY[i] = sol.Y[i] - sol.Yold[i]
	}
}
