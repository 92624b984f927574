// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dem

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	chk.Verbose = true
}

func pair() (a, b *Particle) {
	a = &Particle{Id: 0, Radius: 1, Young: 1e6, Poisson: 0.2, Mass: 2, Friction: 0.4, Restitution: 0.5}
	b = &Particle{Id: 1, Radius: 2, Young: 3e6, Poisson: 0.3, Mass: 6, Friction: 0.6, Restitution: 0.7}
	return
}

var lcsZ = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func Test_combination01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("combination01. equivalent properties")

	a, b := pair()
	chk.Float64(tst, "R*", 1e-15, EquivRadius(a, b), 2.0/3.0)
	chk.Float64(tst, "m*", 1e-15, EquivMass(a, b), 1.5)
	chk.Float64(tst, "ν*", 1e-15, EquivPoisson(a, b), 0.24)
	chk.Float64(tst, "μ*", 1e-15, EquivFriction(a, b), 0.5)
	chk.Float64(tst, "E*", 1e-9, EquivYoung(a, b), 3e12/(1e6*0.91+3e6*0.96))

	// symmetry
	for _, rule := range []func(a, b *Particle) float64{
		EquivRadius, EquivYoung, EquivPoisson, EquivShear, EquivMass, EquivFriction, EquivRestitution,
	} {
		chk.Float64(tst, "symmetry", 1e-15, rule(a, b), rule(b, a))
	}

	// zero Poisson's coefficients
	a.Poisson, b.Poisson = 0, 0
	chk.Float64(tst, "ν*(0,0)", 1e-15, EquivPoisson(a, b), 0)
}

func Test_damping01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("damping01")

	m, k := 2.0, 800.0
	chk.Float64(tst, "e=1", 1e-15, DampingCoefficient(1, m, k), 0)
	chk.Float64(tst, "e=0", 1e-12, DampingCoefficient(0, m, k), 80)
	c := DampingCoefficient(0.5, m, k)
	ξ := c / 80
	chk.Float64(tst, "restitution", 1e-12, math.Exp(-math.Pi*ξ/math.Sqrt(1-ξ*ξ)), 0.5)
}

func Test_laws01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("laws01. zero indentation")

	assert.Equal(tst, []string{"confined-hertz", "hertz", "linear", "quadratic"}, Names())
	a, b := pair()
	for _, name := range Names() {
		law, err := New(name)
		require.NoError(tst, err)
		require.NoError(tst, law.Check(a, b))
		law.InitializeContact(a, b, 0)
		for _, δ := range []float64{0, -1e-3} {
			chk.Float64(tst, name+": F(δ≤0)", 1e-17, law.CalculateNormalForce(a, b, δ, lcsZ), 0)
		}
		if law.CalculateNormalForce(a, b, 1e-3, lcsZ) <= 0 {
			tst.Errorf("%s: force must be positive for positive indentation\n", name)
		}
	}

	_, err := New("dummy")
	assert.ErrorIs(tst, err, kerr.ErrConfiguration)

	a.Radius = 0
	law, _ := New("hertz")
	assert.ErrorIs(tst, law.Check(a, b), kerr.ErrConfiguration)
}

func Test_laws02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("laws02. normal forces")

	a, b := pair()
	δ := 1e-3
	R, E, ν := EquivRadius(a, b), EquivYoung(a, b), EquivPoisson(a, b)

	lin, _ := New("linear")
	lin.InitializeContact(a, b, δ)
	chk.Float64(tst, "linear", 1e-9, lin.CalculateNormalForce(a, b, δ, lcsZ), math.Pi/2*E*R*δ)
	chk.Float64(tst, "linear Kt", 1e-9, lin.Kt(), lin.Kn()*2*(1-ν)/(2-ν))

	hz, _ := New("hertz")
	hz.InitializeContact(a, b, δ)
	fh := hz.CalculateNormalForce(a, b, δ, lcsZ)
	io.Pforan("Fhertz = %v\n", fh)
	chk.Float64(tst, "hertz", 1e-9, fh, 4.0/3.0*E*math.Sqrt(R)*math.Pow(δ, 1.5))

	qd, _ := New("quadratic")
	qd.InitializeContact(a, b, δ)
	chk.Float64(tst, "quadratic", 1e-12, qd.CalculateNormalForce(a, b, δ, lcsZ), E*math.Sqrt(R)*δ*δ)

	// confined: no stress gives Hertz; compression along n reduces the force
	ch, _ := New("confined-hertz")
	ch.InitializeContact(a, b, δ)
	chk.Float64(tst, "confined (σ=0)", 1e-9, ch.CalculateNormalForce(a, b, δ, lcsZ), fh)
	a.Stress[2][2], b.Stress[2][2] = 1e4, 3e4
	chk.Float64(tst, "confined", 1e-9, ch.CalculateNormalForce(a, b, δ, lcsZ), fh-ν*math.Pi*R*δ*2e4)
	a.Stress[2][2], b.Stress[2][2] = 1e9, 1e9
	chk.Float64(tst, "confined clamped", 1e-17, ch.CalculateNormalForce(a, b, δ, lcsZ), 0)
}

func Test_coulomb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coulomb01. sliding")

	a, b := pair()
	law, _ := New("linear")
	law.InitializeContact(a, b, 1e-3)
	fn := law.CalculateNormalForce(a, b, 1e-3, lcsZ)
	kt := law.Kt()

	// stick
	d := 1e-3 * fn / kt
	ft, sliding := law.CalculateTangentialForce(a, b, fn, [2]float64{d, 0}, lcsZ)
	assert.False(tst, sliding)
	chk.Float64(tst, "ft stick", 1e-9, ft[0], -kt*d)

	// slide
	ft, sliding = law.CalculateTangentialForce(a, b, fn, [2]float64{1, 1}, lcsZ)
	assert.True(tst, sliding)
	chk.Float64(tst, "|ft| = μ fn", 1e-9, math.Hypot(ft[0], ft[1]), 0.5*fn)
}

func Test_forces01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("forces01. parallel contact forces")

	// chain of particles along x with some overlap
	n := 40
	particles := make([]*Particle, n)
	for i := 0; i < n; i++ {
		particles[i] = &Particle{Id: i, X: [3]float64{1.99 * float64(i), 0.001 * float64(i%3), 0}, Radius: 1,
			Young: 1e6, Poisson: 0.25, Mass: 1, Friction: 0.5, Restitution: 0.8}
	}
	names := Names()
	var mk = func() (contacts []*Contact) {
		for i := 0; i < n-1; i++ {
			proto, _ := New(names[i%len(names)])
			c := NewContact(i, i+1, proto)
			c.DeltaT = [2]float64{1e-4, -1e-4}
			c.VelN = -0.01
			c.Damping = true
			contacts = append(contacts, c)
		}
		return
	}
	serial, err := ContactForces(particles, mk(), 1)
	require.NoError(tst, err)
	for _, nw := range []int{2, 3, 7, 100} {
		par, err := ContactForces(particles, mk(), nw)
		require.NoError(tst, err)
		for p := range serial {
			chk.Array(tst, io.Sf("F%d nw=%d", p, nw), 1e-17, par[p][:], serial[p][:])
		}
	}

	// action and reaction
	var sum [3]float64
	for p := range serial {
		for i := 0; i < 3; i++ {
			sum[i] += serial[p][i]
		}
	}
	chk.Array(tst, "ΣF", 1e-9, sum[:], []float64{0, 0, 0})
	if serial[n-1][0] <= 0 {
		tst.Errorf("last particle must be pushed along +x\n")
	}

	// bad index
	_, err = ContactForces(particles, []*Contact{NewContact(0, n, &Linear{})}, 1)
	assert.ErrorIs(tst, err, kerr.ErrDimensionMismatch)
}
