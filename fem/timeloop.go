// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// TimeLoop solves the FEM problem using an implicit procedure (with Newton-Raphson method).
//
//  With divergence control, a step that fails with a NonConvergenceError or a LinearSolverError
//  is restarted from the last converged state with half of the time step
type TimeLoop struct {

	// collaborators
	Doms   []*Domain   // all domains
	Strats []*Strategy // one strategy per domain
	Sum    *Summary    // summary; nil means no output files

	// options
	DvgCtrl bool    // use divergence control
	NdvgMax int     // max number of continued divergence
	DtMin   float64 // minimum value of Dt
	Verbose bool    // show messages

	// time control
	Time    float64 // current time
	TimeOut float64 // next output time
	TimeIdx int     // next output index
}

// NewTimeLoop returns a new time loop
func NewTimeLoop(doms []*Domain, strats []*Strategy, sum *Summary, data *inp.StrategyData, verbose bool) (o *TimeLoop) {
	return &TimeLoop{
		Doms:    doms,
		Strats:  strats,
		Sum:     sum,
		DvgCtrl: data.DvgCtrl,
		NdvgMax: data.NdvgMax,
		DtMin:   data.DtMin,
		Verbose: verbose,
	}
}

// Run runs the time loop of one stage
func (o *TimeLoop) Run(stg *inp.Stage) (err error) {

	// auxiliary
	md := 1.0    // time step multiplier if divergence control is on
	ndiverg := 0 // number of steps diverging

	// time control
	t := o.Time
	tf := stg.Control.Tf
	defer func() { o.Time = t }()

	// time loop
	var Δt float64
	var lasttimestep bool
	for t < tf {

		// check for continued divergence
		if ndiverg >= o.NdvgMax {
			return chk.Err("continuous divergence after %d steps reached", ndiverg)
		}

		// time increment
		Δt = stg.Control.Dt * md
		lasttimestep = false
		if t+Δt >= tf {
			Δt = tf - t
			lasttimestep = true
		}
		if Δt < o.DtMin {
			if md < 1 {
				return chk.Err("Δt increment is too small: %g < %g", Δt, o.DtMin)
			}
			return
		}

		// backup solution if divergence control is on
		if o.DvgCtrl {
			for _, d := range o.Doms {
				err = d.backup()
				if err != nil {
					return
				}
			}
		}

		// message
		if o.Verbose && !o.anyShowR() {
			io.PfWhite("%30.15f\r", t+Δt)
		}

		// run iterations for all domains
		var failure error
		for _, s := range o.Strats {
			failure = s.SolveSolutionStep(t+Δt, Δt)
			if failure != nil {
				break
			}
		}

		// restore solution and reduce time step if divergence control is on
		if failure != nil {
			if !o.DvgCtrl || !recoverable(failure) {
				return failure
			}
			if o.Verbose {
				io.Pfred(". . . iterations diverging (%2d) . . .\n", ndiverg+1)
			}
			for _, d := range o.Doms {
				err = d.restore()
				if err != nil {
					return
				}
			}
			md *= 0.5
			ndiverg++
			continue
		}
		ndiverg = 0
		md = 1.0

		// commit step
		t += Δt
		for _, s := range o.Strats {
			err = s.FinalizeSolutionStep()
			if err != nil {
				return
			}
			if o.Sum != nil {
				o.Sum.AddStep(t, s.Iterations, s.Resids)
			}
		}

		// perform output
		if t >= o.TimeOut || lasttimestep {
			if o.Sum != nil {
				o.Sum.OutTimes = append(o.Sum.OutTimes, t)
				for _, d := range o.Doms {
					err = d.Save(o.TimeIdx, o.Verbose)
					if err != nil {
						return
					}
				}
			}
			o.TimeOut += stg.Control.DtOut
			o.TimeIdx++
		}
	}
	return
}

// anyShowR tells whether any strategy prints residuals
func (o *TimeLoop) anyShowR() bool {
	for _, s := range o.Strats {
		if s.ShowR {
			return true
		}
	}
	return false
}

// recoverable tells whether a failed step can be retried with a smaller time step
func recoverable(err error) bool {
	return errors.Is(err, kerr.ErrNonConvergence) || errors.Is(err, kerr.ErrLinearSolver)
}
