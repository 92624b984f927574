// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/mokhairy2019/Kratos-sub001/kerr"
)

// Mmatch returns the slope M = q/p and the cohesion intercept qy0 of the Drucker-Prager cone
// matching the Mohr-Coulomb strength with cohesion c and friction angle φ (degrees) at:
//  typ == 0 : triaxial compression (outer cone)
//  typ == 1 : triaxial extension (inner cone)
//  typ == 2 : plane-strain
func Mmatch(c, φ float64, typ int) (M, qy0 float64, err error) {
	si, co := math.Sincos(φ * math.Pi / 180.0)
	var ξ float64
	switch typ {
	case 0, 1:
		den := 3.0 - si
		if typ == 1 {
			den = 3.0 + si
		}
		M, ξ = 6.0*si/den, 6.0*co/den
	case 2:
		tn := si / co
		d := math.Sqrt(3.0 + 4.0*tn*tn)
		M, ξ = 3.0*tn/d, 3.0/d
	default:
		return 0, 0, kerr.Config("typ", "cone type must be 0, 1 or 2. typ = %d", typ)
	}
	return M, ξ * c, nil
}

// newton1 solves f(x) = 0 for scalar x starting at x0
func newton1(fcn func(x float64) (f, df float64), x0, tol float64, maxit int) (x float64, err error) {
	x = x0
	for it := 0; it < maxit; it++ {
		f, df := fcn(x)
		if math.Abs(f) < tol {
			return
		}
		if math.Abs(df) < 1e-300 {
			return x, chk.Err("local Newton: zero derivative at x=%g (f=%g)", x, f)
		}
		x -= f / df
	}
	f, _ := fcn(x)
	if math.Abs(f) < tol {
		return
	}
	return x, &kerr.NonConvergenceError{Iterations: maxit, MaxIterations: maxit, Residual: math.Abs(f)}
}

func abs(x float64) float64 { return math.Abs(x) }
