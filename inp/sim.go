// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"bytes"
	"encoding/json"
	"errors"
	goio "io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/kratos
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"
	Pstress bool   `json:"pstress"` // plane-stress
}

// StrategyData holds the options of the Newton-Raphson strategy and its collaborators
type StrategyData struct {

	// Newton-Raphson
	MaxIt        int  `json:"max_iteration"`         // max number of iterations per step
	Reactions    bool `json:"compute_reactions"`     // compute reactions after convergence
	ReformDofs   bool `json:"reform_dofs_each_step"` // renumber equations at each step
	MoveMesh     bool `json:"move_mesh_flag"`        // update nodal coordinates after each step
	KeepConstant bool `json:"keep_system_constant"`  // modified Newton: factorise only at the first iteration
	Nworkers     int  `json:"nworkers"`              // number of goroutines for assembly; 0 means 1
	ShowR        bool `json:"showr"`                 // show residual

	// convergence criteria
	Criterion string  `json:"criterion"` // "residual", "displacement", "and" or "or"
	Atol      float64 `json:"atol"`      // absolute tolerance
	Rtol      float64 `json:"rtol"`      // relative tolerance
	FbTol     float64 `json:"fbtol"`     // tolerance for convergence on fb
	FbMin     float64 `json:"fbmin"`     // minimum value of fb

	// divergence control
	DvgCtrl bool    `json:"dvgctrl"` // use divergence control
	NdvgMax int     `json:"ndvgmax"` // max number of continued divergence
	DtMin   float64 `json:"dtmin"`   // minimum value of Dt

	// collaborators
	Scheme      string  `json:"scheme"`       // time integration scheme: "static" or "bossak"
	AlphaBossak float64 `json:"alpha_bossak"` // Bossak's α
	LinSol      string  `json:"linsol"`       // linear solver: "lu", "cholesky" or "cg"
	Symmetric   bool    `json:"symmetric"`    // use a symmetric linear solver

	// constants
	Eps float64 `json:"eps"` // smallest number satisfying 1.0 + ϵ > 1.0

	// derived
	Itol float64 `json:"-"` // iterations tolerance
}

// ElemData holds element data
type ElemData struct {
	Tag   int    `json:"tag"`   // tag of element
	Mat   string `json:"mat"`   // material name
	Type  string `json:"type"`  // type of element. ex: u, rod
	Nip   int    `json:"nip"`   // number of integration points; 0 => use default
	Extra string `json:"extra"` // extra flags (in keycode format). ex: "!thick:0.2 !area:0.1"
}

// Region holds region data
type Region struct {

	// input data
	Desc      string      `json:"desc"`      // description of region. ex: ground, indenter, etc.
	Mshfile   string      `json:"mshfile"`   // file path of file with mesh data
	ElemsData []*ElemData `json:"elemsdata"` // list of elements data
	AbsPath   bool        `json:"abspath"`   // mesh filename is given in absolute path

	// derived
	Msh      *Mesh       `json:"-"` // the mesh
	etag2idx map[int]int // maps element tag to element index in ElemsData slice
}

// NodeBc holds node boundary condition
type NodeBc struct {
	Tag   int      `json:"tag"`   // tag of node
	Keys  []string `json:"keys"`  // key indicating type of bcs. ex: ux, uy, uz (essential); fx, fy, fz (loads)
	Funcs []string `json:"funcs"` // name of function. ex: zero, load, myfunction1, etc.
	Extra string   `json:"extra"` // extra information
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf    float64 `json:"tf"`    // final time
	Dt    float64 `json:"dt"`    // time step size
	DtOut float64 `json:"dtout"` // time step size for output
}

// Stage holds stage data
type Stage struct {
	Desc    string      `json:"desc"`    // description of simulation stage
	Skip    bool        `json:"skip"`    // do not run stage
	NodeBcs []*NodeBc   `json:"nodebcs"` // node boundary conditions
	Control TimeControl `json:"control"` // time control
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data         `json:"data"`      // stores global simulation data
	Functions FuncsData    `json:"functions"` // stores all boundary condition functions
	Regions   []*Region    `json:"regions"`   // stores all regions
	Strategy  StrategyData `json:"strategy"`  // Newton-Raphson strategy data
	Stages    []*Stage     `json:"stages"`    // stores all stages

	// derived
	GoroutineId int    `json:"-"` // id of goroutine to avoid race problems
	DirOut      string `json:"-"` // directory to save results
	Key         string `json:"-"` // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType     string `json:"-"` // encoder type
	MatParams   *MatDb `json:"-"` // materials' parameters
	Ndim        int    `json:"-"` // space dimension
}

// Simulation //////////////////////////////////////////////////////////////////////////////////////

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasefiles bool, goroutineId int) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, kerr.Config("simfile", "cannot read simulation file %q: %v", simfilepath, err)
	}

	// decode
	o, err = ParseSim(b)
	if err != nil {
		return nil, err
	}
	o.GoroutineId = goroutineId

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = filepath.Join(os.TempDir(), "kratos", fnkey)
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// read materials database
	o.MatParams, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		return nil, err
	}

	// for all regions
	for i, reg := range o.Regions {
		ddir := dir
		if reg.AbsPath {
			ddir = ""
		}
		reg.Msh, err = ReadMsh(ddir, reg.Mshfile, goroutineId)
		if err != nil {
			return nil, err
		}
		reg.etag2idx = make(map[int]int)
		for j, ed := range reg.ElemsData {
			reg.etag2idx[ed.Tag] = j
			if o.MatParams.Get(ed.Mat) == nil {
				return nil, kerr.Config("mat", "cannot find material %q of element tag %d", ed.Mat, ed.Tag)
			}
		}
		if i == 0 {
			o.Ndim = reg.Msh.Ndim
		} else if reg.Msh.Ndim != o.Ndim {
			return nil, kerr.Dimension("ndim of region "+reg.Desc, reg.Msh.Ndim, o.Ndim)
		}
	}

	// check functions of stages
	for _, stg := range o.Stages {
		for _, nbc := range stg.NodeBcs {
			if len(nbc.Keys) != len(nbc.Funcs) {
				return nil, kerr.Config("funcs", "node tag %d: the number of keys (%d) and funcs (%d) differ", nbc.Tag, len(nbc.Keys), len(nbc.Funcs))
			}
			for _, fname := range nbc.Funcs {
				if _, err = o.Functions.Get(fname); err != nil {
					return nil, kerr.Config("funcs", "%v", err)
				}
			}
		}
	}
	return
}

// ParseSim decodes the JSON contents of a simulation file, sets defaults and checks the strategy
// data. Unknown keys are rejected
func ParseSim(b []byte) (o *Simulation, err error) {
	o = new(Simulation)
	o.Strategy.SetDefault()
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	err = dec.Decode(o)
	if err != nil {
		return nil, jsonError(err)
	}
	err = o.Strategy.PostProcess()
	if err != nil {
		return nil, err
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// stages
	for _, stg := range o.Stages {
		stg.Control.SetDefault()
	}
	return
}

// ReadStrategy decodes strategy data alone; e.g. from the "strategy" entry of a .sim file
func ReadStrategy(r goio.Reader) (o *StrategyData, err error) {
	o = new(StrategyData)
	o.SetDefault()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	err = dec.Decode(o)
	if err != nil {
		return nil, jsonError(err)
	}
	return o, o.PostProcess()
}

// jsonError converts JSON decoding errors into configuration errors with the offending key
func jsonError(err error) error {
	msg := err.Error()
	if i := strings.Index(msg, "unknown field "); i >= 0 {
		key := strings.Trim(msg[i+len("unknown field "):], `"`)
		return kerr.Config(key, "unknown key %q", key)
	}
	var terr *json.UnmarshalTypeError
	if errors.As(err, &terr) {
		key := terr.Field
		if k := strings.LastIndex(key, "."); k >= 0 {
			key = key[k+1:]
		}
		return kerr.Config(key, "invalid value for %q: %s cannot be stored in %v", key, terr.Value, terr.Type)
	}
	return chk.Err("cannot decode JSON data:\n%v", err)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// Etag2data returns the ElemData corresponding to element tag
//  Note: returns nil if not found
func (d *Region) Etag2data(etag int) *ElemData {
	idx, ok := d.etag2idx[etag]
	if !ok {
		return nil
	}
	return d.ElemsData[idx]
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// GetNodeBc returns node boundary condition structure by giving a node tag
//  Note: returns nil if not found
func (o Stage) GetNodeBc(nodetag int) *NodeBc {
	for _, nbc := range o.NodeBcs {
		if nodetag == nbc.Tag {
			return nbc
		}
	}
	return nil
}

// GetFunc returns the function of key in this node boundary condition
func (o *NodeBc) GetFunc(key string, functions FuncsData) (fcn dbf.T, err error) {
	for i, k := range o.Keys {
		if k == key {
			return functions.Get(o.Funcs[i])
		}
	}
	return nil, chk.Err("node tag %d has no condition %q", o.Tag, key)
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault sets defaults values
func (o *TimeControl) SetDefault() {
	if o.Tf < 1e-14 {
		o.Tf = 1
	}
	if o.Dt < 1e-14 {
		o.Dt = o.Tf
	}
	if o.DtOut < o.Dt {
		o.DtOut = o.Dt
	}
}

// SetDefault set defaults values
func (o *StrategyData) SetDefault() {
	o.MaxIt = 10
	o.Nworkers = 1
	o.Criterion = "residual"
	o.Atol = 1e-6
	o.Rtol = 1e-6
	o.FbTol = 1e-8
	o.FbMin = 1e-14
	o.NdvgMax = 20
	o.DtMin = 1e-8
	o.Scheme = "static"
	o.AlphaBossak = -0.3
	o.LinSol = "lu"
	o.Eps = 1e-16
}

// PostProcess checks the values and computes derived data
func (o *StrategyData) PostProcess() error {
	switch {
	case o.MaxIt < 1:
		return kerr.Config("max_iteration", "max_iteration must be at least 1. %d is invalid", o.MaxIt)
	case o.Nworkers < 0:
		return kerr.Config("nworkers", "nworkers must not be negative. %d is invalid", o.Nworkers)
	case o.Atol <= 0:
		return kerr.Config("atol", "atol must be positive. %g is invalid", o.Atol)
	case o.Rtol <= 0:
		return kerr.Config("rtol", "rtol must be positive. %g is invalid", o.Rtol)
	case o.FbTol <= 0:
		return kerr.Config("fbtol", "fbtol must be positive. %g is invalid", o.FbTol)
	case o.FbMin < 0:
		return kerr.Config("fbmin", "fbmin must not be negative. %g is invalid", o.FbMin)
	case o.DtMin <= 0:
		return kerr.Config("dtmin", "dtmin must be positive. %g is invalid", o.DtMin)
	case o.AlphaBossak < -1.0/3.0 || o.AlphaBossak > 0:
		return kerr.Config("alpha_bossak", "alpha_bossak must be in [-1/3, 0]. %g is invalid", o.AlphaBossak)
	}
	if !oneOf(o.Criterion, "residual", "displacement", "and", "or") {
		return kerr.Config("criterion", "criterion %q is not available", o.Criterion)
	}
	if !oneOf(o.Scheme, "static", "bossak") {
		return kerr.Config("scheme", "scheme %q is not available", o.Scheme)
	}
	if !oneOf(o.LinSol, "lu", "cholesky", "cg") {
		return kerr.Config("linsol", "linear solver %q is not available", o.LinSol)
	}
	if o.Nworkers == 0 {
		o.Nworkers = 1
	}

	// iterations tolerance
	o.Itol = math.Max(10.0*o.Eps/o.Rtol, math.Min(0.01, math.Sqrt(o.Rtol)))
	return nil
}

func oneOf(s string, options ...string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}
