// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package linsol implements sparse matrices in triplet format and linear solvers
package linsol

import (
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Triplet is a simple representation of a sparse matrix, where the indices and values
// of this matrix are stored directly. Repeated entries are summed on conversion
type Triplet struct {
	m, n int       // matrix dimension (rows, columns)
	i, j []int     // indices for each x values (size=max)
	x    []float64 // values for each i, j (size=max)
}

// Init allocates all memory required to hold a sparse matrix in triplet form
func (o *Triplet) Init(m, n, max int) {
	o.m, o.n = m, n
	o.i = make([]int, 0, max)
	o.j = make([]int, 0, max)
	o.x = make([]float64, 0, max)
}

// Start (re)starts index for inserting items using the Put command
func (o *Triplet) Start() {
	o.i, o.j, o.x = o.i[:0], o.j[:0], o.x[:0]
}

// Put inserts an element to a pre-allocated (with Init) triplet matrix
func (o *Triplet) Put(i, j int, x float64) {
	o.i = append(o.i, i)
	o.j = append(o.j, j)
	o.x = append(o.x, x)
}

// PutTriplet appends all entries of another triplet
func (o *Triplet) PutTriplet(a *Triplet) {
	o.i = append(o.i, a.i...)
	o.j = append(o.j, a.j...)
	o.x = append(o.x, a.x...)
}

// Each calls fcn for every entry in insertion order
func (o *Triplet) Each(fcn func(i, j int, x float64)) {
	for k, x := range o.x {
		fcn(o.i[k], o.j[k], x)
	}
}

// Len returns the number of entries inserted so far (including repeated ones)
func (o *Triplet) Len() int { return len(o.x) }

// Size returns the row/column size of the matrix
func (o *Triplet) Size() (m, n int) { return o.m, o.n }

// ToCSR sums repeated entries and returns a compressed-row matrix. The entries of each row are
// sorted by column and summed in insertion order, thus the result does not depend on anything
// else than the sequence of Put calls
func (o *Triplet) ToCSR() *sparse.CSR {
	perm := make([]int, len(o.x))
	for k := range perm {
		perm[k] = k
	}
	sort.SliceStable(perm, func(a, b int) bool {
		ka, kb := perm[a], perm[b]
		if o.i[ka] != o.i[kb] {
			return o.i[ka] < o.i[kb]
		}
		return o.j[ka] < o.j[kb]
	})
	ia := make([]int, o.m+1)
	var ja []int
	var data []float64
	for _, k := range perm {
		r, c := o.i[k], o.j[k]
		last := len(ja) - 1
		if last >= 0 && ia[r+1] > 0 && ja[last] == c {
			data[last] += o.x[k]
			continue
		}
		ja = append(ja, c)
		data = append(data, o.x[k])
		ia[r+1]++
	}
	for r := 0; r < o.m; r++ {
		ia[r+1] += ia[r]
	}
	return sparse.NewCSR(o.m, o.n, ia, ja, data)
}

// ToDense returns the dense representation of this matrix
func (o *Triplet) ToDense() *mat.Dense {
	a := mat.NewDense(o.m, o.n, nil)
	for k, x := range o.x {
		a.Set(o.i[k], o.j[k], a.At(o.i[k], o.j[k])+x)
	}
	return a
}
