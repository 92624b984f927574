// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dem

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// Law defines discontinuum contact laws. One instance serves one contact pair: the contact
// detection keeps a prototype and calls Clone when a new pair forms. Stiffness constants are
// computed once by InitializeContact and cached until the pair separates
type Law interface {
	Name() string                                          // name of law in factory
	Clone() Law                                            // returns a fresh copy without contact-pair state
	Check(a, b *Particle) error                            // validates particle data
	InitializeContact(a, b *Particle, indentation float64) // computes stiffness constants
	Kn() float64                                           // normal stiffness constant
	Kt() float64                                           // tangential stiffness constant

	// CalculateNormalForce returns the elastic normal force (≥ 0). indentation ≤ 0 gives zero
	CalculateNormalForce(a, b *Particle, indentation float64, lcs [3][3]float64) float64

	// CalculateTangentialForce returns the Coulomb-limited tangential force in the local system
	CalculateTangentialForce(a, b *Particle, normalForce float64, deltaTangent [2]float64, lcs [3][3]float64) (ft [2]float64, sliding bool)
}

// allocators holds all available laws
var allocators = make(map[string]func() Law)

// register adds a law to the factory
func register(name string, allocator func() Law) {
	if _, ok := allocators[name]; ok {
		chk.Panic("contact law %q is already registered", name)
	}
	allocators[name] = allocator
}

// New returns a new contact law
func New(name string) (Law, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, kerr.Config("contact", "contact law %q is not available", name)
	}
	return allocator(), nil
}

// Names returns the names of all available laws
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// checkPair validates both particles
func checkPair(a, b *Particle) (err error) {
	err = a.Check()
	if err != nil {
		return
	}
	return b.Check()
}

// coulomb holds the incremental tangential force of a contact pair
type coulomb struct {
	ft [2]float64 // tangential force of the last evaluation
}

// update adds -kt Δt to the tangential force and limits it by μ |Fn|
func (o *coulomb) update(kt, μ, fn float64, Δt [2]float64) (ft [2]float64, sliding bool) {
	ft[0] = o.ft[0] - kt*Δt[0]
	ft[1] = o.ft[1] - kt*Δt[1]
	norm := math.Sqrt(ft[0]*ft[0] + ft[1]*ft[1])
	limit := μ * math.Abs(fn)
	if norm > limit {
		sliding = true
		if norm > 0 {
			ft[0] *= limit / norm
			ft[1] *= limit / norm
		}
	}
	o.ft = ft
	return
}
