// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"gonum.org/v1/gonum/floats"
)

// Point holds the results at a node or an integration point
type Point struct {
	Vid  int                  // vertex id; -1 if not a node
	IpId int                  // index in Ipoints; -1 if not an integration point
	X    []float64            // coordinates
	Dist float64              // distance from reference point
	Vals map[string][]float64 // time series of each key
}

// Points is a set of points sortable by distance
type Points []*Point

func (o Points) Len() int           { return len(o) }
func (o Points) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o Points) Less(i, j int) bool { return o[i].Dist < o[j].Dist }

// nodPoint returns the point of vertex vid. A is the reference point to compute Dist (may be nil)
func (o *Output) nodPoint(vid int, A []float64) *Point {
	if vid < 0 || vid >= len(o.Dom.Vid2node) || o.Dom.Vid2node[vid] == nil {
		return nil
	}
	x := o.Dom.Vid2node[vid].Vert.C
	return &Point{Vid: vid, IpId: -1, X: x, Dist: dist(x, A), Vals: make(map[string][]float64)}
}

// ipPoint returns the point of integration point ipid. A is the reference point (may be nil)
func (o *Output) ipPoint(ipid int, A []float64) *Point {
	if ipid < 0 || ipid >= len(o.Ipoints) {
		return nil
	}
	x := o.Ipoints[ipid].X
	return &Point{Vid: -1, IpId: ipid, X: x, Dist: dist(x, A), Vals: make(map[string][]float64)}
}

// dist returns the distance between x and A; zero if A is nil
func dist(x, A []float64) float64 {
	if A == nil {
		return 0
	}
	n := len(x)
	if len(A) < n {
		n = len(A)
	}
	return floats.Distance(x[:n], A[:n], 2)
}

// distToLine returns the distance from x to the line through A and B and the position of the
// projection of x measured from A
func distToLine(x, A, B []float64) (d, s float64) {
	n := len(x)
	a := make([]float64, n)
	u := make([]float64, n)
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		if i < len(A) {
			a[i] = A[i]
		}
		if i < len(B) {
			u[i] = B[i] - a[i]
		}
	}
	floats.SubTo(v, x, a)
	l := floats.Norm(u, 2)
	if l > 0 {
		floats.Scale(1/l, u)
	}
	s = floats.Dot(v, u)
	floats.AddScaled(v, -s, u)
	return floats.Norm(v, 2), s
}
