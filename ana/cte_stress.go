// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/mokhairy2019/Kratos-sub001/tsr"
)

// CteStressPstrain computes the solution of a rectangular block under constant boundary tractions
// (plane-strain). The block is fixed at the left (ux) and bottom (uy) sides
//
//        y ^     qnV
//          |  ↑ ↑ ↑ ↑ ↑
//          ------------
//          |          | → qnH
//         ▷|    E ν   | →
//          |          | →
//          ------------ ---> x
//            △      △
//
//  Tractions are positive when they pull the block
type CteStressPstrain struct {
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	QnH float64 // horizontal traction
	QnV float64 // vertical traction
	X0  float64 // x-coordinate of left side
	Y0  float64 // y-coordinate of bottom side
}

// Init initialises this structure
func (o *CteStressPstrain) Init(prms dbf.Params) (err error) {

	// default values
	o.E = 1000
	o.Nu = 0.25

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "qnH":
			o.QnH = p.V
		case "qnV":
			o.QnV = p.V
		case "x0":
			o.X0 = p.V
		case "y0":
			o.Y0 = p.V
		default:
			return chk.Err("CteStressPstrain: parameter named %q is invalid", p.N)
		}
	}
	if o.E <= 0 || o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("CteStressPstrain: E=%g and nu=%g are invalid for plane-strain", o.E, o.Nu)
	}
	return
}

// Stress returns the stress components in Voigt notation: σ = {σx, σy, σz, σxy}
func (o CteStressPstrain) Stress() (σ []float64) {
	return []float64{o.QnH, o.QnV, o.Nu * (o.QnH + o.QnV), 0}
}

// Strain returns the strain components in Voigt notation: ε = {εx, εy, 0, 0}
func (o CteStressPstrain) Strain() (ε []float64) {
	c := (1 + o.Nu) / o.E
	return []float64{
		c * ((1-o.Nu)*o.QnH - o.Nu*o.QnV),
		c * ((1-o.Nu)*o.QnV - o.Nu*o.QnH),
		0, 0,
	}
}

// Displacement returns the displacements at point (x, y)
func (o CteStressPstrain) Displacement(x, y float64) (ux, uy float64) {
	ε := o.Strain()
	return ε[0] * (x - o.X0), ε[1] * (y - o.Y0)
}

// PolarStress returns the stress components at (x,y) with respect to the polar system centred
// at the corner (x0,y0)
func (o CteStressPstrain) PolarStress(x, y float64) (sr, st, srt float64) {
	σp := PolarStresses(x-o.X0, y-o.Y0, o.Stress())
	return σp[0], σp[1], σp[3]
}

// PolarStresses rotates the Voigt stress σ at (x,y) to the polar system (r, θ, z) centred at
// the origin. Returns {σr, σθ, σz, σrθ} in the same Voigt layout
func PolarStresses(x, y float64, σ []float64) (σp []float64) {
	β := math.Atan2(y, x)
	si, co := math.Sin(β), math.Cos(β)
	Q := [][]float64{{co, si, 0}, {-si, co, 0}, {0, 0, 1}} // rows: er, eθ, ez
	T, tmp, P := tsr.Alloc3(), tsr.Alloc3(), tsr.Alloc3()
	tsr.StressVectorToTensor(T, σ)
	tsr.Mul3(tmp, Q, T)
	tsr.MulTr3(P, tmp, Q)
	σp = make([]float64, len(σ))
	tsr.StressTensorToVector(σp, P)
	return
}

// CheckDispl compares displacements at (x,y) with the analytical solution
func (o CteStressPstrain) CheckDispl(tst *testing.T, x, y, ux, uy, tol float64) {
	vx, vy := o.Displacement(x, y)
	chk.Float64(tst, "ux", tol, ux, vx)
	chk.Float64(tst, "uy", tol, uy, vy)
}

// CheckStress compares stresses with the analytical solution
func (o CteStressPstrain) CheckStress(tst *testing.T, σ []float64, tol float64) {
	chk.Array(tst, "σ", tol, σ, o.Stress())
}
