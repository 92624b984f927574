// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsol

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// LinSol defines the interface of linear solvers for real systems
//  Usage:
//   InitR once, then Fact + SolveR after each assembly (with the same sparsity)
type LinSol interface {
	Name() string                                     // name of solver in factory
	InitR(tR *Triplet, symmetric, verbose bool) error // initialises solver with the triplet holding A
	Fact() error                                      // factorises A from the current triplet values
	SolveR(xR, bR []float64) error                    // solves A x = b
	Clean()                                           // releases memory
}

// allocators holds all available solvers
var allocators = make(map[string]func() LinSol)

// register adds a solver to the factory
func register(name string, allocator func() LinSol) {
	if _, ok := allocators[name]; ok {
		chk.Panic("linear solver %q is already registered", name)
	}
	allocators[name] = allocator
}

// GetSolver returns a new linear solver
func GetSolver(name string) (LinSol, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, kerr.Config("linsol", "linear solver %q is not available", name)
	}
	return allocator(), nil
}

// Names returns the names of all available solvers
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// checkSystem checks that the triplet is square and matches the vectors
func checkSystem(name string, tR *Triplet, xR, bR []float64) error {
	if tR == nil {
		return kerr.Solver(name, chk.Err("InitR must be called first"))
	}
	m, n := tR.Size()
	if m != n {
		return kerr.Dimension("number of columns of A", n, m)
	}
	if len(xR) != m {
		return kerr.Dimension("length of x", len(xR), m)
	}
	if len(bR) != m {
		return kerr.Dimension("length of b", len(bR), m)
	}
	return nil
}
