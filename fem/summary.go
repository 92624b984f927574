// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/inp"
)

// Summary records summary of outputs
type Summary struct {

	// main data
	OutTimes   []float64   // [nOutTimes] output times
	StepTimes  []float64   // [nsteps] times of converged steps (all stages)
	Iterations []int       // [nsteps] number of iterations of each converged step
	Resids     [][]float64 // [nsteps][nit] largFb of each iteration of each converged step
	Dirout     string      // directory where results are stored
	Fnkey      string      // filename key of simulation
}

// AddStep records the convergence history of one step
func (o *Summary) AddStep(t float64, iterations int, resids []float64) {
	o.StepTimes = append(o.StepTimes, t)
	o.Iterations = append(o.Iterations, iterations)
	o.Resids = append(o.Resids, append([]float64{}, resids...))
}

// Save saves summary to disc
func (o *Summary) Save(dirout, fnkey, enctype string, verbose bool) (err error) {

	// set flags before saving
	o.Dirout = dirout
	o.Fnkey = fnkey

	// buffer and encoder
	var buf bytes.Buffer
	enc := inp.GetEncoder(&buf, enctype)

	// encode summary
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}

	// save file
	fn := out_sum_path(dirout, fnkey, enctype)
	return save_file(fn, &buf, verbose)
}

// Read reads summary back
func (o *Summary) Read(dirout, fnkey, enctype string) (err error) {

	// open file
	fn := out_sum_path(dirout, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()

	// decode summary
	var r Summary
	dec := inp.GetDecoder(fil, enctype)
	err = dec.Decode(&r)
	if err != nil {
		return chk.Err("cannot decode summary:\n%v", err)
	}
	*o = r
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_sum_path(dir, fnkey, enctype string) string {
	return filepath.Join(dir, io.Sf("%s_sum.%s", fnkey, enctype))
}
