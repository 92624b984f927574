// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dem

import "math"

// Hertz implements the Hertz-Mindlin law
//  Fn = Kn δ^1.5    Kn = 4/3 E* sqrt(R*)
//  kt = Kt sqrt(δ)  Kt = 4 G* sqrt(R*)
type Hertz struct {
	kn, kt float64 // cached stiffness constants
	δ      float64 // indentation of the last normal force evaluation
	coulomb
}

// ConfinedHertz implements the Hertz law corrected by the averaged stress of the particles
//  Fn = max(0, Kn δ^1.5 - ν* A σn)    A = π R* δ
type ConfinedHertz struct {
	Hertz
	ν, r float64 // equivalent Poisson's coefficient and radius
}

// Quadratic implements Fn = Kn δ² with Kn = E* sqrt(R*). It is a reference algorithm only and
// is not meant to be used as an independent contact model
type Quadratic struct {
	Hertz
}

// add laws to factory
func init() {
	register("hertz", func() Law { return new(Hertz) })
	register("confined-hertz", func() Law { return new(ConfinedHertz) })
	register("quadratic", func() Law { return new(Quadratic) })
}

// Name returns the name of this law
func (o *Hertz) Name() string { return "hertz" }

// Clone returns a fresh copy
func (o *Hertz) Clone() Law { return new(Hertz) }

// Check validates particle data
func (o *Hertz) Check(a, b *Particle) error { return checkPair(a, b) }

// InitializeContact computes the stiffness constants
func (o *Hertz) InitializeContact(a, b *Particle, indentation float64) {
	sr := math.Sqrt(EquivRadius(a, b))
	o.kn = 4.0 / 3.0 * EquivYoung(a, b) * sr
	o.kt = 4.0 * EquivShear(a, b) * sr
	o.δ = 0
	o.coulomb = coulomb{}
}

// Kn returns the normal stiffness constant
func (o *Hertz) Kn() float64 { return o.kn }

// Kt returns the tangential stiffness constant
func (o *Hertz) Kt() float64 { return o.kt }

// CalculateNormalForce returns Kn δ^1.5
func (o *Hertz) CalculateNormalForce(a, b *Particle, indentation float64, lcs [3][3]float64) float64 {
	if indentation <= 0 {
		o.δ = 0
		return 0
	}
	o.δ = indentation
	return o.kn * indentation * math.Sqrt(indentation)
}

// CalculateTangentialForce returns the Coulomb-limited tangential force with kt = Kt sqrt(δ)
func (o *Hertz) CalculateTangentialForce(a, b *Particle, normalForce float64, deltaTangent [2]float64, lcs [3][3]float64) ([2]float64, bool) {
	return o.update(o.kt*math.Sqrt(o.δ), EquivFriction(a, b), normalForce, deltaTangent)
}

// Name returns the name of this law
func (o *ConfinedHertz) Name() string { return "confined-hertz" }

// Clone returns a fresh copy
func (o *ConfinedHertz) Clone() Law { return new(ConfinedHertz) }

// InitializeContact computes the stiffness constants
func (o *ConfinedHertz) InitializeContact(a, b *Particle, indentation float64) {
	o.Hertz.InitializeContact(a, b, indentation)
	o.ν = EquivPoisson(a, b)
	o.r = EquivRadius(a, b)
}

// CalculateNormalForce returns the Hertz force minus the Poisson correction
func (o *ConfinedHertz) CalculateNormalForce(a, b *Particle, indentation float64, lcs [3][3]float64) float64 {
	fn := o.Hertz.CalculateNormalForce(a, b, indentation, lcs)
	if indentation <= 0 {
		return 0
	}
	area := math.Pi * o.r * indentation
	return math.Max(0, fn-o.ν*area*AverageNormalStress(a, b, lcs))
}

// Name returns the name of this law
func (o *Quadratic) Name() string { return "quadratic" }

// Clone returns a fresh copy
func (o *Quadratic) Clone() Law { return new(Quadratic) }

// InitializeContact computes the stiffness constants
func (o *Quadratic) InitializeContact(a, b *Particle, indentation float64) {
	o.Hertz.InitializeContact(a, b, indentation)
	o.kn = EquivYoung(a, b) * math.Sqrt(EquivRadius(a, b))
}

// CalculateNormalForce returns Kn δ²
func (o *Quadratic) CalculateNormalForce(a, b *Particle, indentation float64, lcs [3][3]float64) float64 {
	if indentation <= 0 {
		o.δ = 0
		return 0
	}
	o.δ = indentation
	return o.kn * indentation * indentation
}
