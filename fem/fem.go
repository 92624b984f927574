// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem contains elements and the nonlinear solving strategy for running simulations using
// the finite element method
package fem

import (
	"fmt"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/inp"
)

// FEM holds all data for a simulation using the finite element method
type FEM struct {
	Sim        *inp.Simulation // simulation data
	Summary    *Summary        // summary structure
	Domains    []*Domain       // all domains
	Strategies []*Strategy     // one Newton-Raphson strategy per domain
	Solver     *TimeLoop       // time loop
	Verbose    bool            // show messages
}

// NewFEM returns a new FEM structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple FE solutions
//   erasePrev   -- erase previous results files
//   saveSummary -- save summary (and results files)
//   readSummary -- ready summary of previous simulation
//   verbose     -- show messages
func NewFEM(simfilepath, alias string, erasePrev, saveSummary, readSummary, verbose bool) (o *FEM, err error) {

	// new FEM object
	o = new(FEM)
	o.Verbose = verbose

	// read input data
	o.Sim, err = inp.ReadSim(simfilepath, alias, erasePrev || saveSummary, 0)
	if err != nil {
		return nil, fmt.Errorf("cannot read simulation input data:\n%w", err)
	}

	// read summary of previous simulation
	if saveSummary || readSummary {
		o.Summary = new(Summary)
	}
	if readSummary {
		err = o.Summary.Read(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType)
		if err != nil {
			return nil, fmt.Errorf("cannot read summary:\n%w", err)
		}
	}

	// allocate domains and strategies
	o.Domains = NewDomains(o.Sim)
	o.Strategies = make([]*Strategy, len(o.Domains))
	for i, d := range o.Domains {
		o.Strategies[i], err = NewStrategy(d, &o.Sim.Strategy)
		if err != nil {
			return nil, err
		}
		o.Strategies[i].Verbose = verbose
	}

	// allocate time loop
	o.Solver = NewTimeLoop(o.Domains, o.Strategies, nil, &o.Sim.Strategy, verbose)
	if saveSummary {
		o.Solver.Sum = o.Summary
	}
	return
}

// Run runs FE simulation
func (o *FEM) Run() (err error) {

	// loop over stages
	cputime := time.Now()
	for stgidx, stg := range o.Sim.Stages {

		// skip stage?
		if stg.Skip {
			continue
		}

		// set stage
		err = o.SetStage(stgidx)
		if err != nil {
			return
		}

		// initialise solution vectors
		err = o.ZeroStage(stgidx == 0)
		if err != nil {
			return
		}

		// time loop
		err = o.Solver.Run(stg)
		if err != nil {
			return
		}
	}

	// message
	if o.Verbose {
		io.Pf("\n\n")
		if len(o.Domains) > 0 {
			if o.Domains[0].Sol != nil {
				io.Pf("\nfinal time = %v\n", o.Domains[0].Sol.T)
			}
		}
		io.Pfblue2("cpu time   = %v\n", time.Now().Sub(cputime))
	}

	// save summary
	if o.Solver.Sum != nil {
		err = o.Summary.Save(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, o.Verbose)
	}
	return
}

// SetStage sets stage for all domains. The strategies are cleared and will be initialised again
//  Input:
//   stgidx -- stage index (in o.Sim.Stages)
func (o *FEM) SetStage(stgidx int) (err error) {
	for i, d := range o.Domains {
		var prev *Solution
		if d.Sol != nil {
			prev = d.Sol
		}
		err = d.SetStage(stgidx)
		if err != nil {
			return
		}
		if prev != nil && len(prev.Y) == d.Ny {
			d.Sol.Set(prev)
		}
		d.Sol.T = o.Solver.Time
		o.Strategies[i].Clear()
	}
	return
}

// ZeroStage initialises solution vectors (Y, dYdt, internal values such as States.Sig, etc.)
// in all domains for all nodes and all elements
//  Input:
//   zeroSol -- zero vectors in domains.Sol
func (o *FEM) ZeroStage(zeroSol bool) (err error) {
	for _, d := range o.Domains {
		err = d.SetIniVals(zeroSol)
		if err != nil {
			return
		}
		d.Sol.T = o.Solver.Time
	}
	return
}

// SetNworkers sets the number of goroutines used by the element loops and reductions of all domains
func (o *FEM) SetNworkers(nworkers int) {
	if nworkers < 1 {
		nworkers = 1
	}
	for i, d := range o.Domains {
		d.Nworkers = nworkers
		o.Strategies[i].Nworkers = nworkers
		o.Strategies[i].Bs.Nworkers = nworkers
	}
}
