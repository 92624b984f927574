// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dem

import (
	"math"

	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// Contact holds one contact pair and its own law instance
type Contact struct {
	A, B    int           // indices of particles in the particles slice
	Law     Law           // law owned by this pair (obtained with Clone)
	DeltaT  [2]float64    // tangential displacement increment in the local system
	VelN    float64       // normal relative velocity (approaching < 0)
	Damping bool          // add viscous normal damping computed from the restitution
	Fn      float64       // normal force of the last evaluation
	Ft      [2]float64    // tangential force of the last evaluation
	Sliding bool          // Coulomb limit was reached
	Indent  float64       // indentation of the last evaluation
	LCS     [3][3]float64 // local system of the last evaluation
	started bool          // InitializeContact was called
}

// NewContact returns a new contact pair using a fresh copy of proto
func NewContact(a, b int, proto Law) *Contact {
	return &Contact{A: a, B: b, Law: proto.Clone()}
}

// Geometry returns the indentation and the local system (t1, t2, n) with n pointing from a to b
func Geometry(a, b *Particle) (indentation float64, lcs [3][3]float64) {
	var n [3]float64
	var d float64
	for i := 0; i < 3; i++ {
		n[i] = b.X[i] - a.X[i]
		d += n[i] * n[i]
	}
	d = math.Sqrt(d)
	indentation = a.Radius + b.Radius - d
	if d > 0 {
		for i := 0; i < 3; i++ {
			n[i] /= d
		}
	} else {
		n = [3]float64{0, 0, 1}
	}

	// t1 is orthogonal to n and to the coordinate axis least aligned with n
	e := [3]float64{1, 0, 0}
	if math.Abs(n[0]) > math.Abs(n[1]) && math.Abs(n[0]) > math.Abs(n[2]) {
		e = [3]float64{0, 1, 0}
	}
	t1 := cross(n, e)
	norm := math.Sqrt(t1[0]*t1[0] + t1[1]*t1[1] + t1[2]*t1[2])
	for i := 0; i < 3; i++ {
		t1[i] /= norm
	}
	lcs = [3][3]float64{t1, cross(n, t1), n}
	return
}

func cross(u, v [3]float64) [3]float64 {
	return [3]float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// Evaluate computes the contact forces and returns the global force acting on particle b
// (particle a receives the opposite force)
func (o *Contact) Evaluate(particles []*Particle) (f [3]float64, err error) {
	if o.A < 0 || o.B < 0 || o.A >= len(particles) || o.B >= len(particles) {
		return f, kerr.Dimension("contact particle index", max(o.A, o.B), len(particles))
	}
	a, b := particles[o.A], particles[o.B]
	o.Indent, o.LCS = Geometry(a, b)
	if o.Indent <= 0 {
		o.started, o.Fn, o.Ft, o.Sliding = false, 0, [2]float64{}, false
		return
	}
	if !o.started {
		err = o.Law.Check(a, b)
		if err != nil {
			return
		}
		o.Law.InitializeContact(a, b, o.Indent)
		o.started = true
	}
	o.Fn = o.Law.CalculateNormalForce(a, b, o.Indent, o.LCS)
	if o.Damping && o.Law.Kn() > 0 {
		c := DampingCoefficient(EquivRestitution(a, b), EquivMass(a, b), o.Law.Kn())
		o.Fn = math.Max(0, o.Fn-c*o.VelN)
	}
	o.Ft, o.Sliding = o.Law.CalculateTangentialForce(a, b, o.Fn, o.DeltaT, o.LCS)

	// contact pushes b along n
	for i := 0; i < 3; i++ {
		f[i] = o.Fn*o.LCS[2][i] + o.Ft[0]*o.LCS[0][i] + o.Ft[1]*o.LCS[1][i]
	}
	return
}

// ContactForces evaluates all contacts using nworkers goroutines and returns the resultant force
// on each particle. Each worker accumulates into its own buffer and buffers are summed in worker
// order, thus results do not depend on scheduling
func ContactForces(particles []*Particle, contacts []*Contact, nworkers int) (forces [][3]float64, err error) {
	nc := len(contacts)
	if nworkers < 1 {
		nworkers = 1
	}
	if nworkers > nc {
		nworkers = max(nc, 1)
	}
	bufs := make([][][3]float64, nworkers)
	errs := make([]error, nworkers)
	chunk := (nc + nworkers - 1) / nworkers
	done := make(chan int, nworkers)
	for w := 0; w < nworkers; w++ {
		go func(w int) {
			defer func() { done <- 1 }()
			bufs[w] = make([][3]float64, len(particles))
			for k := w * chunk; k < min((w+1)*chunk, nc); k++ {
				c := contacts[k]
				f, e := c.Evaluate(particles)
				if e != nil {
					errs[w] = e
					return
				}
				for i := 0; i < 3; i++ {
					bufs[w][c.B][i] += f[i]
					bufs[w][c.A][i] -= f[i]
				}
			}
		}(w)
	}
	for w := 0; w < nworkers; w++ {
		<-done
	}
	forces = make([][3]float64, len(particles))
	for w := 0; w < nworkers; w++ {
		if errs[w] != nil {
			return nil, errs[w]
		}
		for p := range forces {
			for i := 0; i < 3; i++ {
				forces[p][i] += bufs[w][p][i]
			}
		}
	}
	return
}
