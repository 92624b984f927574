// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements FE simulation output handling for analyses and plotting
package out

import (
	"fmt"

	"github.com/mokhairy2019/Kratos-sub001/fem"
)

// constants
var (
	TolC = 1e-8 // tolerance to compare x-y-z coordinates
	TolT = 1e-3 // tolerance to compare times
)

// ResultsMap maps aliases to points
type ResultsMap map[string]Points

// IpData holds the location of one integration point
type IpData struct {
	Cid int       // cell id
	Idx int       // index of integration point in element
	X   []float64 // real coordinates
}

// Output holds the results of a previous simulation read back from files
type Output struct {

	// set by Start
	Analysis *fem.FEM    // the fem structure
	Sum      *fem.Summary // [from Analysis] summary
	Dom      *fem.Domain  // [from Analysis] FE domain
	Ipoints  []*IpData    // all integration points. ipid == index in Ipoints
	Cid2ips  [][]int      // [ncells][nip] maps cell id to index in Ipoints

	// defined entities and results loaded by LoadResults
	Results  ResultsMap // maps labels => points
	TimeInds []int      // selected output indices
	Times    []float64  // selected output times

	// subplots
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
}

// Start starts handling of results given a simulation input file. The simulation must have been
// run with the summary saved
func Start(simfnpath, alias string, stageIdx, regionIdx int) (o *Output, err error) {

	// fem structure
	o = new(Output)
	o.Analysis, err = fem.NewFEM(simfnpath, alias, false, false, true, false)
	if err != nil {
		return nil, err
	}
	if regionIdx < 0 || regionIdx >= len(o.Analysis.Domains) {
		return nil, fmt.Errorf("region index %d is out of range", regionIdx)
	}
	o.Dom = o.Analysis.Domains[regionIdx]
	o.Sum = o.Analysis.Summary

	// set stage
	err = o.Analysis.SetStage(stageIdx)
	if err != nil {
		return nil, fmt.Errorf("cannot set stage:\n%w", err)
	}

	// initialise solution vectors
	err = o.Analysis.ZeroStage(true)
	if err != nil {
		return nil, fmt.Errorf("cannot initialise solution vectors:\n%w", err)
	}

	// clear previous data
	o.Cid2ips = make([][]int, len(o.Dom.Msh.Cells))
	o.Results = make(ResultsMap)

	// integration points of solid elements
	for cid, ele := range o.Dom.Cid2elem {
		e, ok := ele.(*fem.ElemU)
		if !ok {
			continue
		}
		coords := e.Ipoints()
		ids := make([]int, len(coords))
		for i, x := range coords {
			ids[i] = len(o.Ipoints)
			o.Ipoints = append(o.Ipoints, &IpData{Cid: cid, Idx: i, X: x})
		}
		o.Cid2ips[cid] = ids
	}
	return
}
