// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/inp"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// State is the state of the Newton-Raphson strategy
type State int

// states of the strategy
const (
	Idle State = iota
	Predicted
	Assembled
	Solved
	Updated
	ConvergenceChecked
	Converged
	Iterating
	Failed
)

var stateNames = []string{"Idle", "Predicted", "Assembled", "Solved", "Updated", "ConvergenceChecked", "Converged", "Iterating", "Failed"}

// String returns the name of state
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return io.Sf("State(%d)", int(s))
	}
	return stateNames[s]
}

// StrategyFlags holds the options shared by all solving strategies
type StrategyFlags struct {
	Reactions   bool // compute reactions after convergence
	ReformDofs  bool // renumber equations at each step
	MoveMesh    bool // update nodal coordinates after each step
	Initialized bool // Initialize has been performed
}

// NewtonConfig holds the options of the Newton-Raphson strategy
type NewtonConfig struct {
	MaxIt        int  // max number of iterations per step
	KeepConstant bool // modified Newton: the Jacobian is assembled and factorised once per step
	DvgCtrl      bool // stop iterations when residuals grow
}

// Strategy implements the Newton-Raphson method:
//
//  Predict → (BuildRHS → PreCriteria → [BuildLHS] → Solve → Update → PostCriteria)*
//
//  The step fails with a NonConvergenceError after MaxIt assemble/solve/update cycles
type Strategy struct {

	// collaborators
	Dom    *Domain             // domain
	Scheme Scheme              // time integration scheme
	Bs     *BuilderAndSolver   // builder and solver
	Crit   ConvergenceCriteria // convergence criteria

	// configuration
	StrategyFlags
	NewtonConfig
	Atol, Rtol float64 // tolerances for Lδu
	Nworkers   int     // number of workers for reductions
	ShowR      bool    // print residuals
	Verbose    bool    // show messages

	// state
	State      State     // current state
	Iterations int       // number of iterations of the last step
	Norms      Norms     // norms of the last iteration
	Resids     []float64 // largFb of all iterations of the last step
	checked    bool      // Check has been performed
}

// NewStrategy returns a new Newton-Raphson strategy for a domain
func NewStrategy(dom *Domain, data *inp.StrategyData) (o *Strategy, err error) {
	o = new(Strategy)
	o.Dom = dom
	o.Scheme, err = GetScheme(data)
	if err != nil {
		return nil, err
	}
	o.Bs, err = NewBuilderAndSolver(dom, data.LinSol, data.Symmetric, data.Nworkers)
	if err != nil {
		return nil, err
	}
	o.Crit, err = NewConvergenceCriteria(data)
	if err != nil {
		return nil, err
	}
	o.Reactions = data.Reactions
	o.ReformDofs = data.ReformDofs
	o.MoveMesh = data.MoveMesh
	o.MaxIt = data.MaxIt
	o.KeepConstant = data.KeepConstant
	o.DvgCtrl = data.DvgCtrl
	o.Atol, o.Rtol = data.Atol, data.Rtol
	o.Nworkers = data.Nworkers
	o.ShowR = data.ShowR
	return
}

// KeepSystemConstantDuringIterations tells whether the Jacobian is reused during iterations
func (o *Strategy) KeepSystemConstantDuringIterations() bool { return o.KeepConstant }

// SetKeepSystemConstantDuringIterations sets the modified Newton flag
func (o *Strategy) SetKeepSystemConstantDuringIterations(flag bool) { o.KeepConstant = flag }

// InitializePerformedFlag tells whether Initialize has been called
func (o *Strategy) InitializePerformedFlag() bool { return o.Initialized }

// Check validates the configuration and all elements. It runs only once
func (o *Strategy) Check() (err error) {
	if o.checked {
		return
	}
	if o.MaxIt < 1 {
		return kerr.Config("max_iteration", "max_iteration must be at least 1. %d is invalid", o.MaxIt)
	}
	err = o.Dom.Check()
	if err != nil {
		return
	}
	o.checked = true
	return
}

// Initialize allocates the linear system and binds the scheme to the solution of domain
func (o *Strategy) Initialize() (err error) {
	if o.Initialized {
		return
	}
	err = o.Check()
	if err != nil {
		return
	}
	o.Bs.SetUpSystem()
	err = o.Scheme.Init(o.Dom)
	if err != nil {
		return
	}
	o.Initialized = true
	return
}

// SolveSolutionStep solves the nonlinear problem at time t = told + Δt
func (o *Strategy) SolveSolutionStep(t, Δt float64) (err error) {

	// failure
	defer func() {
		if err != nil {
			o.State = Failed
		}
	}()

	// initialisation
	err = o.Initialize()
	if err != nil {
		return
	}
	if o.ReformDofs {
		err = o.reform()
		if err != nil {
			return
		}
	}

	// predict
	sol := o.Dom.Sol
	sol.T, sol.Dt = t, Δt
	err = o.Scheme.CalcCoefficients(Δt)
	if err != nil {
		return
	}
	o.Scheme.Predict(sol, &o.Dom.EssenBcs)
	err = o.Dom.UpdateElements()
	if err != nil {
		return
	}
	o.State = Predicted

	// message
	o.Norms = Norms{}
	o.Resids = o.Resids[:0]
	if o.ShowR {
		io.Pf("\n%13s%4s%23s%23s\n", "t", "it", "largFb", "Lδu")
		defer func() {
			io.Pf("%13.6e%4d%23.15e%23.15e\n", t, o.Norms.It, o.Norms.LargFb, o.Norms.Lδu)
		}()
	}

	// iterations
	o.Crit.Initialize()
	var prevFb, prevLδu float64
	for it := 0; ; it++ {
		o.Norms.It = it

		// residual
		err = o.Bs.BuildRHS(sol)
		if err != nil {
			return
		}
		o.State = Assembled
		o.Norms.LargFb = LargestAbs(o.Bs.Fb, o.Nworkers)
		if it == 0 {
			o.Norms.LargFb0 = o.Norms.LargFb
		}
		o.Resids = append(o.Resids, o.Norms.LargFb)

		// check convergence on residual
		o.State = ConvergenceChecked
		if o.Crit.PreCriteria(&o.Norms) {
			o.Iterations = it
			o.State = Converged
			return
		}
		if it == o.MaxIt {
			return o.failed(it, t, false)
		}

		// check divergence on residual
		if it > 1 && o.DvgCtrl && o.Norms.LargFb > prevFb {
			return o.failed(it, t, true)
		}
		prevFb = o.Norms.LargFb

		// Jacobian
		if it == 0 || !o.KeepConstant {
			err = o.Bs.BuildLHS(sol, it == 0)
			if err != nil {
				return
			}
		}

		// solve for δy
		err = o.Bs.Solve()
		if err != nil {
			return
		}
		o.State = Solved

		// update unknowns and elements
		o.Scheme.Update(sol, o.Bs.Wb)
		err = o.Dom.UpdateElements()
		if err != nil {
			return
		}
		o.State = Updated

		// check convergence on δy
		o.Norms.Lδu = RmsErr(o.Bs.Wb, o.Atol, o.Rtol, sol.Y, o.Nworkers)
		if o.ShowR {
			io.Pf("%13.6e%4d%23.15e%23.15e\n", t, it, o.Norms.LargFb, o.Norms.Lδu)
		}
		o.State = ConvergenceChecked
		if o.Crit.PostCriteria(&o.Norms) {
			o.Iterations = it + 1
			o.Norms.It = it + 1
			o.State = Converged
			return
		}

		// check divergence on δy
		if it > 1 && o.DvgCtrl && o.Norms.Lδu > prevLδu {
			return o.failed(it+1, t, true)
		}
		prevLδu = o.Norms.Lδu
		o.State = Iterating
	}
}

// FinalizeSolutionStep commits the internal variables of all elements and stores the converged
// values as the values of the previous step
func (o *Strategy) FinalizeSolutionStep() (err error) {
	if o.State != Converged {
		return chk.Err("cannot finalize solution step: strategy state is %v. %v is required", o.State, Converged)
	}
	err = o.Dom.FinalizeElements()
	if err != nil {
		return
	}
	o.Scheme.FinalizeStep(o.Dom.Sol)
	if o.Reactions {
		err = o.Bs.CalculateReactions(o.Dom.Sol)
		if err != nil {
			return
		}
	}
	if o.MoveMesh {
		o.Dom.MoveMesh()
	}
	o.State = Idle
	return
}

// Solve runs SolveSolutionStep followed by FinalizeSolutionStep
func (o *Strategy) Solve(t, Δt float64) (err error) {
	err = o.SolveSolutionStep(t, Δt)
	if err != nil {
		return
	}
	return o.FinalizeSolutionStep()
}

// Clear releases the linear solver and resets the state. Check and Initialize will run again;
// e.g. after the domain is set for a new stage
func (o *Strategy) Clear() {
	o.Bs.Clean()
	o.State = Idle
	o.Initialized = false
	o.checked = false
}

// Encode encodes the configuration: shared flags first and then the Newton-Raphson options
func (o *Strategy) Encode(enc inp.Encoder) (err error) {
	err = enc.Encode(o.StrategyFlags)
	if err != nil {
		return
	}
	return enc.Encode(o.NewtonConfig)
}

// Decode decodes the configuration in the same order as Encode
func (o *Strategy) Decode(dec inp.Decoder) (err error) {
	err = dec.Decode(&o.StrategyFlags)
	if err != nil {
		return
	}
	return dec.Decode(&o.NewtonConfig)
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// failed returns a NonConvergenceError
func (o *Strategy) failed(it int, t float64, diverging bool) error {
	o.Iterations = it
	if o.Verbose {
		if diverging {
			io.Pfred(". . . iterations diverging: it = %d . . .\n", it)
		} else {
			io.Pforan("max number of iterations reached: it = %d\n", it)
		}
	}
	return &kerr.NonConvergenceError{
		Iterations:    it,
		MaxIterations: o.MaxIt,
		Residual:      o.Norms.LargFb,
		Time:          t,
		Diverging:     diverging,
	}
}

// reform renumbers the equations and reallocates the linear system
func (o *Strategy) reform() (err error) {
	err = o.Dom.NumberDofs()
	if err != nil {
		return
	}
	o.Bs.SetUpSystem()
	return o.Scheme.Init(o.Dom)
}
