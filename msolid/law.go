// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements constitutive laws for solids
package msolid

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// StrainMeasure defines the strain measure consumed by a law
type StrainMeasure int

// strain measures
const (
	Infinitesimal StrainMeasure = iota // small strains ε
	GreenLagrange                      // E = ½ (C - I)
)

func (m StrainMeasure) String() string {
	if m == GreenLagrange {
		return "green-lagrange"
	}
	return "infinitesimal"
}

// Options holds flags controlling CalculateMaterialResponse
type Options uint

// options
const (
	ComputeStress            Options = 1 << iota // compute stresses
	ComputeTangent                               // compute consistent tangent D
	UseElementProvidedStrain                     // use Parameters.Strain even if F is given
)

// Has tells whether all flags in f are set
func (o Options) Has(f Options) bool { return o&f == f }

// Law defines constitutive laws. One instance serves one integration point: elements keep a
// prototype and call Clone for each point
type Law interface {

	// setup
	Name() string                                          // name of law in factory
	Init(ndim int, pstress bool, props *Properties) error  // initialises law
	Check(props *Properties, ndim int) error               // validates parameters and dimensions (called once)
	Clone() Law                                            // returns an independent copy
	VoigtSize() int                                        // number of stress/strain components
	WorkingSpaceDimension() int                            // space dimension
	Measure() StrainMeasure                                // strain measure
	InitIntVars(σ0 []float64) (s *State, err error)       // allocates the state of one integration point
	CalculateConstitutiveMatrixPK2(D [][]float64)          // elastic modulus (initial tangent)

	// evaluation
	CalculateMaterialResponse(s *State, p *Parameters) error // stresses and tangent from committed history
	FinalizeMaterialResponse(s *State, p *Parameters) error  // commits trial history

	// persistence: configuration of law (base data first)
	Encode(enc inp.Encoder) error
	Decode(dec inp.Decoder) error
}

// allocators holds all available laws
var allocators = make(map[string]func() Law)

// register adds a law to the factory
func register(name string, allocator func() Law) {
	if _, ok := allocators[name]; ok {
		chk.Panic("law %q is already registered", name)
	}
	allocators[name] = allocator
}

// New returns a new (uninitialised) law
func New(name string) (Law, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, kerr.Config("model", "law %q is not available", name)
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

// NewAndInit allocates, checks and initialises a law
func NewAndInit(name string, ndim int, pstress bool, props *Properties) (law Law, err error) {
	law, err = New(name)
	if err != nil {
		return
	}
	err = law.Check(props, ndim)
	if err != nil {
		return nil, err
	}
	err = law.Init(ndim, pstress, props)
	if err != nil {
		return nil, err
	}
	return
}

// checkNdim checks the space dimension
func checkNdim(ndim int) error {
	if ndim != 2 && ndim != 3 {
		return kerr.Dimension("space dimension", ndim, 3)
	}
	return nil
}

// checkStrain checks the size of a strain vector
func checkStrain(ε []float64, nsig int) error {
	if len(ε) != nsig {
		return kerr.Dimension("strain vector", len(ε), nsig)
	}
	return nil
}
