// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Locator defines interface for locating space positions
type Locator interface {
	Locate(o *Output) (Points, error)
}

// At implements locator at point. Nodes are searched first
type At []float64

// AtIp implements locator at integration point
//  Note: this is useful when there are vertices overlapping ips
type AtIp []float64

// N implements node locator
// Ids or tags of vertices can be stored in N
type N []int

// P implements [element][integrationPoint] locator
// Pairs of ids or tags of cells and integration points indices can be stored in P
//  Note: 1) negative element ids means element tags
//        2) negative integration points ids means all integration points of element
type P [][]int

// Along implements locator along line
//  Example: with 2 points in 3D: {{0,0,0}, {1,1,1}}
type Along [][]float64

// AlongX implements locator along x with []float64{y_cte} or []float64{y_cte, z_cte}
type AlongX []float64

// AlongY implements locator along y with []float64{x_cte} or []float64{x_cte, z_cte}
type AlongY []float64

// Locate finds points
func (o At) Locate(out *Output) (Points, error) {
	for _, nod := range out.Dom.Nodes {
		if dist(nod.Vert.C, o) < TolC {
			return Points{out.nodPoint(nod.Vert.Id, nil)}, nil
		}
	}
	return AtIp(o).Locate(out)
}

// Locate finds integration points
func (o AtIp) Locate(out *Output) (Points, error) {
	for ipid, ip := range out.Ipoints {
		if dist(ip.X, o) < TolC {
			return Points{out.ipPoint(ipid, nil)}, nil
		}
	}
	return nil, chk.Err("cannot locate point at %v", []float64(o))
}

// Locate finds nodes
func (o N) Locate(out *Output) (res Points, err error) {
	var A []float64 // reference point
	add := func(vid int) {
		if q := out.nodPoint(vid, A); q != nil {
			res = append(res, q)
			if A == nil {
				A = q.X
			}
		}
	}
	for _, idortag := range o {
		if idortag < 0 {
			for _, v := range out.Dom.Msh.VertTag2verts[idortag] {
				add(v.Id)
			}
		} else {
			add(idortag)
		}
	}
	if len(res) < len(o) {
		return nil, chk.Err("cannot locate all nodes in %v", []int(o))
	}
	return
}

// Locate finds integration points
func (o P) Locate(out *Output) (res Points, err error) {
	var A []float64 // reference point
	add := func(cid, idx int) {
		ips := out.Cid2ips[cid]
		if idx >= len(ips) {
			return
		}
		if idx < 0 {
			for _, ipid := range ips {
				if q := out.ipPoint(ipid, A); q != nil {
					res = append(res, q)
				}
			}
			return
		}
		if q := out.ipPoint(ips[idx], A); q != nil {
			res = append(res, q)
		}
	}
	for _, pair := range o {
		if len(pair) != 2 {
			continue
		}
		idortag, idx := pair[0], pair[1]
		if idortag < 0 {
			for _, c := range out.Dom.Msh.CellTag2cells[idortag] {
				add(c.Id, idx)
			}
		} else if idortag < len(out.Cid2ips) {
			add(idortag, idx)
		}
		if A == nil && len(res) > 0 {
			A = res[0].X
		}
	}
	if len(res) < len(o) {
		return nil, chk.Err("cannot locate all points in %v", [][]int(o))
	}
	return
}

// Locate finds nodes and integration points on the line; sorted by the distance from the first
// point of the line
func (o Along) Locate(out *Output) (res Points, err error) {
	if len(o) != 2 {
		return nil, chk.Err("two points are required to define a line. %d is invalid", len(o))
	}
	A, B := o[0], o[1]
	for _, nod := range out.Dom.Nodes {
		if d, s := distToLine(nod.Vert.C, A, B); d < TolC {
			q := out.nodPoint(nod.Vert.Id, nil)
			q.Dist = s
			res = append(res, q)
		}
	}
	for ipid, ip := range out.Ipoints {
		if d, s := distToLine(ip.X, A, B); d < TolC {
			q := out.ipPoint(ipid, nil)
			q.Dist = s
			res = append(res, q)
		}
	}
	sort.Stable(res)
	return
}

// Locate finds points
func (o AlongX) Locate(out *Output) (Points, error) {
	y_cte, z_cte := o[0], 0.0
	if len(o) > 1 {
		z_cte = o[1]
	}
	return Along{{0, y_cte, z_cte}, {1, y_cte, z_cte}}.Locate(out)
}

// Locate finds points
func (o AlongY) Locate(out *Output) (Points, error) {
	x_cte, z_cte := o[0], 0.0
	if len(o) > 1 {
		z_cte = o[1]
	}
	return Along{{x_cte, 0, z_cte}, {x_cte, 1, z_cte}}.Locate(out)
}

// AllIps returns all cell/ip indices
func (o *Output) AllIps() P {
	var p [][]int
	for i, ips := range o.Cid2ips {
		for j := range ips {
			p = append(p, []int{i, j})
		}
	}
	return p
}

// AllNodes returns all nodes
func (o *Output) AllNodes() N {
	var res []int
	for _, nod := range o.Dom.Nodes {
		res = append(res, nod.Vert.Id)
	}
	return res
}
