// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func hyperProps(tst *testing.T) *Properties {
	props, err := NewPropertiesFromPrms(1, dbf.Params{
		&dbf.P{N: "kap", V: 0.05},
		&dbf.P{N: "kapb", V: 20.0},
		&dbf.P{N: "G0", V: 10000},
		&dbf.P{N: "pr", V: 2.0},
		&dbf.P{N: "pt", V: 10.0},
	})
	if err != nil {
		tst.Fatalf("%v\n", err)
	}
	props.Freeze()
	return props
}

func Test_hyperelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hyperelast01")

	var m HyperElast1
	err := m.Init(2, false, hyperProps(tst))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("m = %+v\n", m)

	// zero strains => zero stresses
	p, q := m.Calc_pq(0, 0)
	chk.Float64(tst, "p(0,0)", 1e-15, p, 0)
	chk.Float64(tst, "q(0,0)", 1e-15, q, 0)

	// the slope of εv versus log(1 + (p+pt)/pr) is κ when εd = 0
	np := 21
	Ev := utl.LinSpace(0, -0.2, np)
	X := make([]float64, np)
	for i, ev := range Ev {
		p, _ = m.Calc_pq(ev, 0)
		X[i] = math.Log(1.0 + (p+m.Pt)/m.Pr)
	}
	slope := (Ev[0] - Ev[np-1]) / (X[np-1] - X[0])
	chk.Float64(tst, "slope", 1e-12, slope, m.Kap)

	// q increases with εd
	_, q1 := m.Calc_pq(-0.01, 0.01)
	_, q2 := m.Calc_pq(-0.01, 0.02)
	if q2 <= q1 {
		tst.Errorf("q must increase with εd: %g <= %g\n", q2, q1)
	}
}

func Test_hyperelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hyperelast02. consistent matrix")

	for _, ndim := range []int{2, 3} {
		var drv Driver
		err := drv.Init("hyp-elast1", ndim, false, hyperProps(tst))
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		drv.TstD = tst
		drv.TolD = 1e-4

		nsig := 2 * ndim
		a := make([]float64, nsig)
		b := make([]float64, nsig)
		c := make([]float64, nsig)
		b[0], b[1], b[3] = -0.002, -0.001, 0.0005
		c[0], c[1], c[2], c[3] = -0.004, 0.001, -0.001, 0.002
		var pth Path
		err = pth.SetStrain(3, a, b, c)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		err = drv.Run(&pth)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Int(tst, "number of results", len(drv.Res), 7)
	}
}
