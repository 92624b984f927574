// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/mokhairy2019/Kratos-sub001/fem"
	"gonum.org/v1/gonum/integrate"
)

// Define defines aliases
//  alias -- an alias to a group of points, an individual point, or to a set of points.
//           Example: "A", "left-column" or "a b c". If the number of points found is different
//           than the number of aliases, a group is created.
//  Note:
//    To use spaces in aliases, prefix the alias with an exclamation mark; e.g "!right column"
func (o *Output) Define(alias string, loc Locator) (err error) {

	// check
	if len(alias) < 1 {
		return chk.Err("alias must have at least one character. %q is invalid", alias)
	}

	// locate points
	pts, err := loc.Locate(o)
	if err != nil {
		return
	}
	if len(pts) < 1 {
		return chk.Err("cannot define entities with alias=%q and locator=%v", alias, loc)
	}

	// set results map
	if alias[0] == '!' {
		o.Results[alias[1:]] = pts
		return
	}
	lbls := strings.Fields(alias)
	if len(lbls) == len(pts) {
		for i, l := range lbls {
			o.Results[l] = Points{pts[i]}
		}
		return
	}
	o.Results[alias] = pts
	return
}

// LoadResults loads all results after points are defined
//  times -- specified selected output times
//           use nil to indicate that all times are required
func (o *Output) LoadResults(times []float64) (err error) {

	// selected output times and indices
	if times == nil {
		times = o.Sum.OutTimes
	}
	o.TimeInds, o.Times = selectTimes(o.Sum.OutTimes, times, TolT)

	// for each selected output time
	for _, tidx := range o.TimeInds {

		// input results into domain
		err = o.Dom.Read(o.Sum, tidx)
		if err != nil {
			return chk.Err("cannot load results into domain:\n%v", err)
		}

		// for each point
		for _, pts := range o.Results {
			for _, p := range pts {

				// node values
				if p.Vid >= 0 {
					for _, dof := range o.Dom.Vid2node[p.Vid].Dofs {
						p.Vals[dof.Key] = append(p.Vals[dof.Key], o.Dom.Sol.Y[dof.Eq])
					}
				}

				// stresses at integration point
				if p.IpId >= 0 {
					ip := o.Ipoints[p.IpId]
					e := o.Dom.Cid2elem[ip.Cid].(*fem.ElemU)
					σ := e.States[ip.Idx].Sig
					for i, key := range fem.StressKeys(e.Nsig) {
						p.Vals[key] = append(p.Vals[key], σ[i])
					}
				}
			}
		}
	}
	return
}

// GetRes gets results as a time or space series corresponding to a given alias
// for a single point or set of points.
//  idxI -- index in TimeInds slice corresponding to selected output time; use -1 for the last item.
//          If alias defines a single point, the whole time series is returned and idxI is ignored.
func (o *Output) GetRes(key, alias string, idxI int) ([]float64, error) {
	if idxI < 0 {
		idxI = len(o.TimeInds) - 1
	}
	if pts, ok := o.Results[alias]; ok {
		if len(pts) == 1 {
			if v, ok := pts[0].Vals[key]; ok {
				return v, nil
			}
		} else {
			var res []float64
			for _, p := range pts {
				if v, ok := p.Vals[key]; ok && idxI < len(v) {
					res = append(res, v[idxI])
				}
			}
			if len(res) > 0 {
				return res, nil
			}
		}
	}
	return nil, chk.Err("cannot get %q at %q", key, alias)
}

// GetIds return the ids corresponding to alias
func (o *Output) GetIds(alias string) (vids, ipids []int) {
	for _, p := range o.Results[alias] {
		if p.Vid >= 0 {
			vids = append(vids, p.Vid)
		}
		if p.IpId >= 0 {
			ipids = append(ipids, p.IpId)
		}
	}
	return
}

// GetCoords returns the coordinates of a single point
func (o *Output) GetCoords(alias string) ([]float64, error) {
	if pts, ok := o.Results[alias]; ok && len(pts) == 1 {
		return pts[0].X, nil
	}
	return nil, chk.Err("cannot get coordinates of point with alias %q (make sure this alias corresponds to a single point)", alias)
}

// GetDist returns the distance from a reference point on the given line with selected points
// if they contain a given key
//  key -- use any to get coordinates of points with any key such as "ux", "sx", etc.
func (o *Output) GetDist(key, alias string) (dist []float64, err error) {
	pts, ok := o.Results[alias]
	if !ok {
		return nil, chk.Err("cannot get distance with key %q and alias %q", key, alias)
	}
	for _, p := range pts {
		if _, has := p.Vals[key]; has || key == "any" {
			dist = append(dist, p.Dist)
		}
	}
	return
}

// GetXYZ returns the x-y-z coordinates of selected points that have a specified key
//  key -- use any to get coordinates of points with any key such as "ux", "sx", etc.
func (o *Output) GetXYZ(key, alias string) (x, y, z []float64, err error) {
	pts, ok := o.Results[alias]
	if !ok {
		return nil, nil, nil, chk.Err("cannot get x-y-z coordinates with key %q and alias %q", key, alias)
	}
	for _, p := range pts {
		if _, has := p.Vals[key]; has || key == "any" {
			x = append(x, p.X[0])
			y = append(y, p.X[1])
			if len(p.X) == 3 {
				z = append(z, p.X[2])
			}
		}
	}
	return
}

// Integrate integrates key along direction "x", "y", or "z" using the trapezoidal rule
//  idxI -- index in TimeInds slice corresponding to selected output time; use -1 for the last item.
func (o *Output) Integrate(key, alias, along string, idxI int) (res float64, err error) {
	f, err := o.GetRes(key, alias, idxI)
	if err != nil {
		return
	}
	x, y, z, err := o.GetXYZ(key, alias)
	if err != nil {
		return
	}
	var s []float64
	switch along {
	case "x":
		s = x
	case "y":
		s = y
	case "z":
		s = z
	default:
		return 0, chk.Err("cannot integrate along %q", along)
	}
	if len(s) != len(f) || len(s) < 2 {
		return 0, chk.Err("%q: cannot integrate %q along %q: %d coordinates and %d values", alias, key, along, len(s), len(f))
	}
	idx := make([]int, len(s))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return s[idx[a]] < s[idx[b]] })
	xs, fs := make([]float64, len(s)), make([]float64, len(s))
	for i, k := range idx {
		xs[i], fs[i] = s[k], f[k]
	}
	return integrate.Trapezoidal(xs, fs), nil
}

// selectTimes returns the indices and values of output times close to the selected times
func selectTimes(outTimes, selected []float64, tol float64) (I []int, T []float64) {
	for _, t := range selected {
		for i, tout := range outTimes {
			if math.Abs(t-tout) < tol {
				I = append(I, i)
				T = append(T, tout)
				break
			}
		}
	}
	return
}
