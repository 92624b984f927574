// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kerr defines the kinds of errors reported by the kernel
package kerr

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// sentinel errors. use errors.Is to classify
var (
	ErrConfiguration     = errors.New("configuration error")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrLinearSolver      = errors.New("linear solver error")
	ErrNonConvergence    = errors.New("non-convergence")
)

// ConfigurationError reports a missing or invalid parameter/option
type ConfigurationError struct {
	Key    string // offending key; e.g. "E" or "max_iteration"
	Reason string // what is wrong with it
}

func (e *ConfigurationError) Error() string {
	return io.Sf("configuration error: key %q: %s", e.Key, e.Reason)
}

// Unwrap returns ErrConfiguration
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// DimensionMismatchError reports strain/Voigt/geometry size disagreements
type DimensionMismatchError struct {
	What string // e.g. "strain vector"
	Got  int
	Want int
}

func (e *DimensionMismatchError) Error() string {
	return io.Sf("dimension mismatch: %s has size %d but %d is required", e.What, e.Got, e.Want)
}

// Unwrap returns ErrDimensionMismatch
func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// LinearSolverError reports a failure of the linear solver (singular, ill-conditioned, not SPD...)
type LinearSolverError struct {
	Solver string // name of solver; e.g. "lu"
	Err    error  // underlying error
}

func (e *LinearSolverError) Error() string {
	return io.Sf("linear solver %q failed: %v", e.Solver, e.Err)
}

// Unwrap returns the underlying error
func (e *LinearSolverError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrLinearSolver) succeed
func (e *LinearSolverError) Is(target error) bool { return target == ErrLinearSolver }

// NonConvergenceError reports that Newton iterations did not converge
type NonConvergenceError struct {
	Iterations    int     // number of iterations performed
	MaxIterations int     // iteration budget
	Residual      float64 // last residual norm
	Time          float64 // time of the step that failed
	Diverging     bool    // stopped early by divergence control
}

func (e *NonConvergenceError) Error() string {
	if e.Diverging {
		return io.Sf("iterations diverging at t=%g: it=%d residual=%g", e.Time, e.Iterations, e.Residual)
	}
	return io.Sf("no convergence at t=%g after %d iterations (max=%d): residual=%g", e.Time, e.Iterations, e.MaxIterations, e.Residual)
}

// Unwrap returns ErrNonConvergence
func (e *NonConvergenceError) Unwrap() error { return ErrNonConvergence }

// Config returns a new ConfigurationError
func Config(key, msg string, prm ...interface{}) error {
	return &ConfigurationError{Key: key, Reason: io.Sf(msg, prm...)}
}

// Dimension returns a new DimensionMismatchError
func Dimension(what string, got, want int) error {
	return &DimensionMismatchError{What: what, Got: got, Want: want}
}

// Solver returns a new LinearSolverError
func Solver(name string, err error) error {
	return &LinearSolverError{Solver: name, Err: err}
}
