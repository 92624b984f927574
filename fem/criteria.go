// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
	"gonum.org/v1/gonum/floats"
)

// Norms holds the norms computed during one Newton iteration
type Norms struct {
	It      int     // iteration number; starts at 0 for each step
	LargFb  float64 // largest absolute component of fb
	LargFb0 float64 // largFb at the first iteration
	Lδu     float64 // RMS error of δy (weighted by atol + rtol|y|)
}

// ConvergenceCriteria decides whether Newton iterations have converged.
//
//  PreCriteria is called after the residual is assembled and before the linear system is solved.
//  PostCriteria is called after the unknowns are updated
type ConvergenceCriteria interface {
	Name() string               // name of criteria
	Initialize()                // resets the state at the beginning of a step
	PreCriteria(n *Norms) bool  // converged on residual?
	PostCriteria(n *Norms) bool // converged on the increments of unknowns?
}

// NewConvergenceCriteria returns the convergence criteria named in data
func NewConvergenceCriteria(data *inp.StrategyData) (ConvergenceCriteria, error) {
	res := &ResidualCriterion{FbTol: data.FbTol, FbMin: data.FbMin}
	dsp := &DisplacementCriterion{Itol: data.Itol}
	switch data.Criterion {
	case "residual":
		return res, nil
	case "displacement":
		return dsp, nil
	case "and":
		return &AndCriteria{A: res, B: dsp}, nil
	case "or":
		return &OrCriteria{A: res, B: dsp}, nil
	}
	return nil, kerr.Config("criterion", "criterion %q is not available", data.Criterion)
}

// ResidualCriterion converges when largFb < FbTol·largFb0 or largFb < FbMin.
// The first iteration never converges
type ResidualCriterion struct {
	FbTol float64 // tolerance relative to the first residual
	FbMin float64 // absolute tolerance
	last  bool
}

// Name returns the name of criterion
func (o *ResidualCriterion) Name() string { return "residual" }

// Initialize resets the state
func (o *ResidualCriterion) Initialize() { o.last = false }

// PreCriteria checks the residual
func (o *ResidualCriterion) PreCriteria(n *Norms) bool {
	o.last = n.It > 0 && (n.LargFb < o.FbTol*n.LargFb0 || n.LargFb < o.FbMin)
	return o.last
}

// PostCriteria returns the result of the last residual check
func (o *ResidualCriterion) PostCriteria(n *Norms) bool { return o.last }

// DisplacementCriterion converges when Lδu < Itol
type DisplacementCriterion struct {
	Itol float64 // iterations tolerance
	last bool
}

// Name returns the name of criterion
func (o *DisplacementCriterion) Name() string { return "displacement" }

// Initialize resets the state
func (o *DisplacementCriterion) Initialize() { o.last = false }

// PreCriteria returns the result of the last increment check
func (o *DisplacementCriterion) PreCriteria(n *Norms) bool { return o.last }

// PostCriteria checks the increments
func (o *DisplacementCriterion) PostCriteria(n *Norms) bool {
	o.last = n.Lδu < o.Itol
	return o.last
}

// AndCriteria converges when both criteria converge
type AndCriteria struct {
	A, B ConvergenceCriteria
}

// Name returns the name of criteria
func (o *AndCriteria) Name() string { return "and" }

// Initialize resets both criteria
func (o *AndCriteria) Initialize() { o.A.Initialize(); o.B.Initialize() }

// PreCriteria evaluates both criteria
func (o *AndCriteria) PreCriteria(n *Norms) bool {
	a, b := o.A.PreCriteria(n), o.B.PreCriteria(n)
	return a && b
}

// PostCriteria evaluates both criteria
func (o *AndCriteria) PostCriteria(n *Norms) bool {
	a, b := o.A.PostCriteria(n), o.B.PostCriteria(n)
	return a && b
}

// OrCriteria converges when any criterion converges
type OrCriteria struct {
	A, B ConvergenceCriteria
}

// Name returns the name of criteria
func (o *OrCriteria) Name() string { return "or" }

// Initialize resets both criteria
func (o *OrCriteria) Initialize() { o.A.Initialize(); o.B.Initialize() }

// PreCriteria evaluates both criteria
func (o *OrCriteria) PreCriteria(n *Norms) bool {
	a, b := o.A.PreCriteria(n), o.B.PreCriteria(n)
	return a || b
}

// PostCriteria evaluates both criteria
func (o *OrCriteria) PostCriteria(n *Norms) bool {
	a, b := o.A.PostCriteria(n), o.B.PostCriteria(n)
	return a || b
}

// reductions ///////////////////////////////////////////////////////////////////////////////////////

// LargestAbs returns max(|v_i|) computed by nworkers chunks
func LargestAbs(v []float64, nworkers int) float64 {
	return reduce(len(v), nworkers, 0, func(start, end int) float64 {
		return floats.Norm(v[start:end], math.Inf(1))
	}, math.Max)
}

// RmsErr returns sqrt(Σ (δy_i / (atol + rtol |y_i|))² / n) computed by nworkers chunks
func RmsErr(δy []float64, atol, rtol float64, y []float64, nworkers int) float64 {
	n := len(δy)
	if n == 0 {
		return 0
	}
	sum := reduce(n, nworkers, 0, func(start, end int) (s float64) {
		for i := start; i < end; i++ {
			r := δy[i] / (atol + rtol*math.Abs(y[i]))
			s += r * r
		}
		return
	}, func(a, b float64) float64 { return a + b })
	return math.Sqrt(sum / float64(n))
}
