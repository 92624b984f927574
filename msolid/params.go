// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/utl"

// Parameters bundles the input/output of CalculateMaterialResponse
type Parameters struct {

	// control
	Options Options // what to compute

	// kinematics
	Strain []float64   // strain vector (engineering shear) [nsig]
	F      [][]float64 // deformation gradient [3][3]; nil for small strains
	DetF   float64     // det(F)

	// output
	Stress []float64   // copy of computed stresses (optional) [nsig]
	D      [][]float64 // consistent tangent [nsig][nsig]

	// element data
	ShapeN []float64 // shape functions at the integration point [nverts]
	NodalT []float64 // temperatures at the nodes of the element [nverts]
	Time   float64   // current time
	Dt     float64   // time increment
	Eid    int       // element id
	Ipid   int       // integration point index
}

// NewParameters allocates strain and tangent with nsig components
func NewParameters(nsig int, opts Options) *Parameters {
	return &Parameters{
		Options: opts,
		Strain:  make([]float64, nsig),
		D:       utl.Alloc(nsig, nsig),
	}
}

// Temperature returns T = Σ Nᵢ Tᵢ or def if nodal temperatures are not available
func (o *Parameters) Temperature(def float64) (T float64) {
	if len(o.ShapeN) == 0 || len(o.ShapeN) != len(o.NodalT) {
		return def
	}
	for i, N := range o.ShapeN {
		T += N * o.NodalT[i]
	}
	return
}

// tangent tells whether the tangent must be computed
func (o *Parameters) tangent() bool {
	return o.Options.Has(ComputeTangent) && o.D != nil
}

// output copies σ to Stress if requested
func (o *Parameters) output(σ []float64) {
	if o.Stress != nil {
		copy(o.Stress, σ)
	}
}
