// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// add shapes to factory
func init() {
	register(&Shape{
		Type:      "lin2",
		Func:      FuncLin2,
		Gndim:     1,
		Nverts:    2,
		NatCoords: [][]float64{{-1, 1}},
		Ips:       gauss(1, 2),
	})
	register(&Shape{
		Type:      "tri3",
		Func:      FuncTri3,
		Gndim:     2,
		Nverts:    3,
		NatCoords: [][]float64{{0, 1, 0}, {0, 0, 1}},
		Ips: []Ipoint{
			{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
			{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
			{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
		},
	})
	register(&Shape{
		Type:      "qua4",
		Func:      FuncQua4,
		Gndim:     2,
		Nverts:    4,
		NatCoords: [][]float64{{-1, 1, 1, -1}, {-1, -1, 1, 1}},
		Ips:       gauss(2, 2),
	})
	register(&Shape{
		Type:   "hex8",
		Func:   FuncHex8,
		Gndim:  3,
		Nverts: 8,
		NatCoords: [][]float64{
			{-1, 1, 1, -1, -1, 1, 1, -1},
			{-1, -1, 1, 1, -1, -1, 1, 1},
			{-1, -1, -1, -1, 1, 1, 1, 1},
		},
		Ips: gauss(3, 2),
	})
}

// register adds shape to factory and allocates its scratchpad
func register(s *Shape) {
	s.init_scratchpad()
	factory[s.Type] = s
}

// gauss returns the tensor-product Gauss-Legendre integration points with n points per direction
func gauss(gndim, n int) (ips []Ipoint) {
	var r, w []float64
	switch n {
	case 1:
		r, w = []float64{0}, []float64{2}
	case 2:
		a := 1.0 / math.Sqrt(3.0)
		r, w = []float64{-a, a}, []float64{1, 1}
	default:
		a := math.Sqrt(0.6)
		r, w = []float64{-a, 0, a}, []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
	}
	switch gndim {
	case 1:
		for i := range r {
			ips = append(ips, Ipoint{r[i], 0, 0, w[i]})
		}
	case 2:
		for j := range r {
			for i := range r {
				ips = append(ips, Ipoint{r[i], r[j], 0, w[i] * w[j]})
			}
		}
	default:
		for k := range r {
			for j := range r {
				for i := range r {
					ips = append(ips, Ipoint{r[i], r[j], r[k], w[i] * w[j] * w[k]})
				}
			}
		}
	}
	return
}

// FuncLin2 calculates the shape functions (S) and derivatives (dSdR) of lin2 elements
//   -1     0    +1
//    0-----------1-->r
func FuncLin2(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r := R[0]
	S[0] = 0.5 * (1.0 - r)
	S[1] = 0.5 * (1.0 + r)
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

// FuncTri3 calculates the shape functions (S) and derivatives (dSdR) of tri3 elements
//    s
//    |
//    2
//    | `.
//    |   `.
//    0-----1--> r
func FuncTri3(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = 1.0 - r - s
	S[1] = r
	S[2] = s
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = -1.0, -1.0
	dSdR[1][0], dSdR[1][1] = 1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 1.0
}

// FuncQua4 calculates the shape functions (S) and derivatives (dSdR) of qua4 elements
//    3-----------2
//    |     s     |
//    |     |     |
//    |     +--r  |
//    |           |
//    0-----------1
func FuncQua4(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = (1.0 - r - s + r*s) / 4.0
	S[1] = (1.0 + r - s - r*s) / 4.0
	S[2] = (1.0 + r + s + r*s) / 4.0
	S[3] = (1.0 - r + s - r*s) / 4.0
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = (-1.0+s)/4.0, (-1.0+r)/4.0
	dSdR[1][0], dSdR[1][1] = (+1.0-s)/4.0, (-1.0-r)/4.0
	dSdR[2][0], dSdR[2][1] = (+1.0+s)/4.0, (+1.0+r)/4.0
	dSdR[3][0], dSdR[3][1] = (-1.0-s)/4.0, (+1.0-r)/4.0
}

// FuncHex8 calculates the shape functions (S) and derivatives (dSdR) of hex8 elements
//  vertex m has natural coordinates (rm, sm, tm) ∈ {-1,+1}³ ordered as the NatCoords of hex8
func FuncHex8(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s, t := R[0], R[1], R[2]
	for m := 0; m < 8; m++ {
		rm, sm, tm := hex8nat[0][m], hex8nat[1][m], hex8nat[2][m]
		S[m] = (1.0 + rm*r) * (1.0 + sm*s) * (1.0 + tm*t) / 8.0
		if derivs {
			dSdR[m][0] = rm * (1.0 + sm*s) * (1.0 + tm*t) / 8.0
			dSdR[m][1] = sm * (1.0 + rm*r) * (1.0 + tm*t) / 8.0
			dSdR[m][2] = tm * (1.0 + rm*r) * (1.0 + sm*s) / 8.0
		}
	}
}

var hex8nat = [3][8]float64{
	{-1, 1, 1, -1, -1, 1, 1, -1},
	{-1, -1, 1, 1, -1, -1, 1, 1},
	{-1, -1, -1, -1, 1, 1, 1, 1},
}
