// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/utl"
	"github.com/mokhairy2019/Kratos-sub001/inp"
)

// State holds all continuum mechanics data of one integration point.
//
//  History variables come in pairs: the committed value (last converged step) and the trial
//  value written by CalculateMaterialResponse. Only FinalizeMaterialResponse copies trial
//  values into committed ones.
type State struct {

	// essential
	Sig  []float64 // σ: current stress (Cauchy for small strains, PK2 for Green-Lagrange laws) [nsig]
	Sig0 []float64 // σ0: initial stresses
	Eps  []float64 // ε: total strain used in the last evaluation

	// committed history
	EpsP        []float64 // εp: plastic strains (engineering shear) [nsig]
	Alp         []float64 // α: internal variables [nalp]; α0 = equivalent plastic strain or damage threshold
	Dissipation float64   // accumulated dissipated energy (per unit volume)
	Damage      float64   // scalar damage

	// trial history
	EpsPtr     []float64 // trial εp
	AlpTr      []float64 // trial α
	DissTr     float64   // trial dissipation
	DamageTr   float64   // trial damage
	DeltaEpsP  float64   // increment of equivalent plastic strain in the last evaluation
	Dgam       float64   // Δγ: plastic multiplier of the last evaluation
	Loading    bool      // last evaluation was inelastic
	ApexReturn bool      // return-to-apex (Drucker-Prager)
	Pending    bool      // trial values wait for FinalizeMaterialResponse

	// for large deformations
	F [][]float64 // deformation gradient [3][3]
}

// NewState allocates state structure
//  nalp    -- number of internal variables
//  plastic -- allocate plastic strains
//  large   -- large deformation analyses; otherwise small strains
func NewState(nsig, nalp int, plastic, large bool) *State {

	// essential
	var state State
	state.Sig = make([]float64, nsig)
	state.Sig0 = make([]float64, nsig)
	state.Eps = make([]float64, nsig)

	// history
	if nalp > 0 {
		state.Alp = make([]float64, nalp)
		state.AlpTr = make([]float64, nalp)
	}
	if plastic {
		state.EpsP = make([]float64, nsig)
		state.EpsPtr = make([]float64, nsig)
	}

	// large deformations
	if large {
		state.F = utl.Alloc(3, 3)
		state.F[0][0], state.F[1][1], state.F[2][2] = 1, 1, 1
	}
	return &state
}

// Set copies states
//  Note: 1) this and other states must have been pre-allocated with the same sizes
//        2) this method does not check for errors
func (o *State) Set(other *State) {

	// essential
	copy(o.Sig, other.Sig)
	copy(o.Sig0, other.Sig0)
	copy(o.Eps, other.Eps)

	// history
	copy(o.EpsP, other.EpsP)
	copy(o.Alp, other.Alp)
	o.Dissipation = other.Dissipation
	o.Damage = other.Damage
	copy(o.EpsPtr, other.EpsPtr)
	copy(o.AlpTr, other.AlpTr)
	o.DissTr = other.DissTr
	o.DamageTr = other.DamageTr
	o.DeltaEpsP = other.DeltaEpsP
	o.Dgam = other.Dgam
	o.Loading = other.Loading
	o.ApexReturn = other.ApexReturn
	o.Pending = other.Pending

	// large deformations
	for i := 0; i < len(o.F); i++ {
		copy(o.F[i], other.F[i])
	}
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Sig), len(o.Alp), len(o.EpsP) > 0, len(o.F) > 0)
	other.Set(o)
	return other
}

// commit copies trial history into committed history. Calling it twice is a no-op
func (o *State) commit() {
	if !o.Pending {
		return
	}
	copy(o.EpsP, o.EpsPtr)
	copy(o.Alp, o.AlpTr)
	o.Dissipation = o.DissTr
	o.Damage = o.DamageTr
	o.Pending = false
}

// trialFromCommitted resets trial history to the committed one
func (o *State) trialFromCommitted() {
	copy(o.EpsPtr, o.EpsP)
	copy(o.AlpTr, o.Alp)
	o.DissTr = o.Dissipation
	o.DamageTr = o.Damage
	o.DeltaEpsP = 0
	o.Dgam = 0
	o.Loading = false
	o.ApexReturn = false
}

// Encode encodes state
func (o *State) Encode(enc inp.Encoder) error {
	return enc.Encode(o)
}

// Decode decodes state. Fields missing from the stream (e.g. zero values skipped by gob) are
// zero after decoding; i.e. nothing is inherited from the previous contents of o
func (o *State) Decode(dec inp.Decoder) (err error) {
	var r State
	err = dec.Decode(&r)
	if err != nil {
		return
	}
	*o = r
	return
}
