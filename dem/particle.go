// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dem implements force laws for discontinuum (particle) contact
package dem

import (
	"math"

	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// Particle holds the data of one spherical particle
type Particle struct {
	Id          int           // particle id
	X           [3]float64    // centre
	Radius      float64       // radius
	Young       float64       // Young's modulus
	Poisson     float64       // Poisson's coefficient
	Mass        float64       // mass
	Friction    float64       // Coulomb friction coefficient μ
	Restitution float64       // coefficient of restitution e ∈ (0, 1]
	Stress      [3][3]float64 // averaged continuum stress of the particle (confined laws)
}

// Check validates the particle data
func (o *Particle) Check() error {
	switch {
	case o.Radius <= 0:
		return kerr.Config("radius", "particle %d: radius must be positive. radius = %g", o.Id, o.Radius)
	case o.Young <= 0:
		return kerr.Config("young", "particle %d: Young's modulus must be positive. young = %g", o.Id, o.Young)
	case o.Poisson < 0 || o.Poisson >= 0.5:
		return kerr.Config("poisson", "particle %d: Poisson's coefficient must be in [0, 0.5). poisson = %g", o.Id, o.Poisson)
	case o.Friction < 0:
		return kerr.Config("friction", "particle %d: friction must be non-negative. friction = %g", o.Id, o.Friction)
	case o.Restitution < 0 || o.Restitution > 1:
		return kerr.Config("restitution", "particle %d: restitution must be in [0, 1]. restitution = %g", o.Id, o.Restitution)
	}
	return nil
}

// Shear returns the shear modulus of the particle
func (o *Particle) Shear() float64 {
	return o.Young / (2.0 * (1.0 + o.Poisson))
}

// combination rules //////////////////////////////////////////////////////////////////////////////

// EquivRadius returns r1 r2 / (r1 + r2)
func EquivRadius(a, b *Particle) float64 {
	return a.Radius * b.Radius / (a.Radius + b.Radius)
}

// EquivYoung returns the Hertz (series) combination E1 E2 / (E1 (1 - ν2²) + E2 (1 - ν1²))
func EquivYoung(a, b *Particle) float64 {
	return a.Young * b.Young / (a.Young*(1.0-b.Poisson*b.Poisson) + b.Young*(1.0-a.Poisson*a.Poisson))
}

// EquivPoisson returns 2 ν1 ν2 / (ν1 + ν2) or zero if both coefficients are zero
func EquivPoisson(a, b *Particle) float64 {
	den := a.Poisson + b.Poisson
	if den <= 0 {
		return 0
	}
	return 2.0 * a.Poisson * b.Poisson / den
}

// EquivShear returns 1 / ((2 - ν1)/G1 + (2 - ν2)/G2)
func EquivShear(a, b *Particle) float64 {
	return 1.0 / ((2.0-a.Poisson)/a.Shear() + (2.0-b.Poisson)/b.Shear())
}

// EquivMass returns m1 m2 / (m1 + m2)
func EquivMass(a, b *Particle) float64 {
	den := a.Mass + b.Mass
	if den <= 0 {
		return 0
	}
	return a.Mass * b.Mass / den
}

// EquivFriction returns the average friction coefficient
func EquivFriction(a, b *Particle) float64 {
	return 0.5 * (a.Friction + b.Friction)
}

// EquivRestitution returns the average coefficient of restitution
func EquivRestitution(a, b *Particle) float64 {
	return 0.5 * (a.Restitution + b.Restitution)
}

// DampingCoefficient returns the normal viscous damping c = 2 ξ sqrt(m k) with the damping ratio
// ξ = -ln(e) / sqrt(π² + ln²(e)) corresponding to the coefficient of restitution e
func DampingCoefficient(e, mass, k float64) float64 {
	switch {
	case mass <= 0 || k <= 0 || e >= 1:
		return 0
	case e <= 0:
		return 2.0 * math.Sqrt(mass*k) // critical
	}
	le := math.Log(e)
	ξ := -le / math.Sqrt(math.Pi*math.Pi+le*le)
	return 2.0 * ξ * math.Sqrt(mass*k)
}

// AverageNormalStress returns n · ½(σa + σb) · n where n is the third row of the local system
func AverageNormalStress(a, b *Particle, lcs [3][3]float64) (σn float64) {
	n := lcs[2]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			σn += n[i] * 0.5 * (a.Stress[i][j] + b.Stress[i][j]) * n[j]
		}
	}
	return
}
