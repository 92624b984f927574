// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// Path holds a strain path for material point simulations
type Path struct {
	Eps [][]float64 // strain points [npts][nsig]; Eps[0] is the starting point
}

// SetStrain sets a path through the given strain points with nincs increments between points
func (o *Path) SetStrain(nincs int, points ...[]float64) (err error) {
	if len(points) < 2 {
		return chk.Err("path needs at least two points. %d is invalid", len(points))
	}
	if nincs < 1 {
		nincs = 1
	}
	nsig := len(points[0])
	o.Eps = [][]float64{append([]float64{}, points[0]...)}
	for k := 1; k < len(points); k++ {
		if len(points[k]) != nsig {
			return kerr.Dimension(io.Sf("strain point %d", k), len(points[k]), nsig)
		}
		for i := 1; i <= nincs; i++ {
			t := float64(i) / float64(nincs)
			ε := make([]float64, nsig)
			for j := 0; j < nsig; j++ {
				ε[j] = points[k-1][j] + t*(points[k][j]-points[k-1][j])
			}
			o.Eps = append(o.Eps, ε)
		}
	}
	return
}

// SetUniaxial sets a path of nincs increments of εxx from 0 to εmax (lateral strains are zero)
func (o *Path) SetUniaxial(nsig, nincs int, εmax float64) (err error) {
	a, b := make([]float64, nsig), make([]float64, nsig)
	b[0] = εmax
	return o.SetStrain(nincs, a, b)
}

// Driver runs material point simulations with constitutive laws
type Driver struct {

	// input
	Law   Law         // constitutive law
	Props *Properties // material properties

	// settings
	Silent bool    // do not show messages
	TolD   float64 // tolerance to check consistent matrix
	StepD  float64 // finite differences step
	VerD   bool    // verbose check of D
	T      float64 // temperature at the material point

	// check D matrix
	TstD *testing.T // if != nil, do check consistent matrix

	// results
	Res []*State    // results
	Eps [][]float64 // strains
	D   [][]float64 // last consistent matrix
}

// Init initialises driver
func (o *Driver) Init(name string, ndim int, pstress bool, props *Properties) (err error) {
	o.Law, err = NewAndInit(name, ndim, pstress, props)
	if err != nil {
		return
	}
	o.Props = props
	o.TolD = 1e-6
	o.StepD = 1e-7
	o.VerD = chk.Verbose
	return
}

// Run runs simulation along path
func (o *Driver) Run(pth *Path) (err error) {

	// allocate results arrays
	nsig := o.Law.VoigtSize()
	np := len(pth.Eps)
	if np < 1 {
		return chk.Err("path is empty")
	}
	o.Res = make([]*State, np)
	o.Eps = utl.Alloc(np, nsig)

	// initial state
	o.Res[0], err = o.Law.InitIntVars(make([]float64, nsig))
	if err != nil {
		return
	}
	copy(o.Eps[0], pth.Eps[0])

	// parameters
	prm := NewParameters(nsig, ComputeStress|ComputeTangent)
	prm.Time = o.T
	if o.T != 0 {
		prm.ShapeN, prm.NodalT = []float64{1}, []float64{o.T}
	}

	// update states
	for i := 1; i < np; i++ {
		if len(pth.Eps[i]) != nsig {
			return kerr.Dimension("strain point", len(pth.Eps[i]), nsig)
		}
		copy(o.Eps[i], pth.Eps[i])
		copy(prm.Strain, pth.Eps[i])
		o.Res[i] = o.Res[i-1].GetCopy()
		prm.Eid, prm.Ipid = 0, i
		err = o.Law.CalculateMaterialResponse(o.Res[i], prm)
		if err != nil {
			if !o.Silent {
				io.Pfred("msolid driver: increment %d failed:\n%v\n", i, err)
			}
			return
		}

		// check consistent matrix
		if o.TstD != nil {
			err = o.CheckD(o.Res[i-1], pth.Eps[i], prm.D)
			if err != nil {
				return
			}
		}

		// commit
		err = o.Law.FinalizeMaterialResponse(o.Res[i], prm)
		if err != nil {
			return
		}
	}
	o.D = prm.D
	return
}

// CheckD compares D with the central finite differences of the stress computed from the
// committed state s at the strain ε
func (o *Driver) CheckD(s *State, ε []float64, D [][]float64) (err error) {
	nsig := len(ε)
	law := o.Law.Clone()
	tmp := s.GetCopy()
	prm := NewParameters(nsig, ComputeStress)
	if o.T != 0 {
		prm.ShapeN, prm.NodalT = []float64{1}, []float64{o.T}
	}
	var ferr error
	num := mat.NewDense(nsig, nsig, nil)
	fd.Jacobian(num, func(y, x []float64) {
		tmp.Set(s)
		copy(prm.Strain, x)
		e := law.CalculateMaterialResponse(tmp, prm)
		if e != nil {
			ferr = e
		}
		copy(y, tmp.Sig)
	}, ε, &fd.JacobianSettings{Formula: fd.Central, Step: o.StepD})
	if ferr != nil {
		return ferr
	}
	Dnum := utl.Alloc(nsig, nsig)
	for i := 0; i < nsig; i++ {
		for j := 0; j < nsig; j++ {
			Dnum[i][j] = num.At(i, j)
		}
	}
	if o.VerD {
		io.Pfblue2("D    = %v\n", D)
		io.Pfblue2("Dnum = %v\n", Dnum)
	}
	chk.Deep2(o.TstD, io.Sf("D @ %v", ε), o.TolD, D, Dnum)
	return
}
