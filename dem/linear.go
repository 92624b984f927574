// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dem

import "math"

// Linear implements a linear spring with Coulomb friction
//  Kn = π/2 E* R*    Kt = Kn 2 (1 - ν*) / (2 - ν*)    Fn = Kn δ
type Linear struct {
	kn, kt float64 // cached stiffness constants
	coulomb
}

// add law to factory
func init() {
	register("linear", func() Law { return new(Linear) })
}

// Name returns the name of this law
func (o *Linear) Name() string { return "linear" }

// Clone returns a fresh copy
func (o *Linear) Clone() Law { return new(Linear) }

// Check validates particle data
func (o *Linear) Check(a, b *Particle) error { return checkPair(a, b) }

// InitializeContact computes the stiffness constants
func (o *Linear) InitializeContact(a, b *Particle, indentation float64) {
	ν := EquivPoisson(a, b)
	o.kn = 0.5 * math.Pi * EquivYoung(a, b) * EquivRadius(a, b)
	o.kt = o.kn * 2.0 * (1.0 - ν) / (2.0 - ν)
	o.coulomb = coulomb{}
}

// Kn returns the normal stiffness
func (o *Linear) Kn() float64 { return o.kn }

// Kt returns the tangential stiffness
func (o *Linear) Kt() float64 { return o.kt }

// CalculateNormalForce returns Kn δ
func (o *Linear) CalculateNormalForce(a, b *Particle, indentation float64, lcs [3][3]float64) float64 {
	if indentation <= 0 {
		return 0
	}
	return o.kn * indentation
}

// CalculateTangentialForce returns the Coulomb-limited tangential force
func (o *Linear) CalculateTangentialForce(a, b *Particle, normalForce float64, deltaTangent [2]float64, lcs [3][3]float64) ([2]float64, bool) {
	return o.update(o.kt, EquivFriction(a, b), normalForce, deltaTangent)
}
