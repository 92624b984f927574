// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/tsr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// sets of graphs
//  keys are "x,y" pairs with x and y in:
//   i   -- increment index
//   exx -- εxx
//   sxx -- σxx
//   ed  -- deviatoric strain
//   ev  -- volumetric strain
//   p   -- mean pressure (positive in compression)
//   q   -- von Mises stress
//   alp -- first internal variable
var (
	PlotSet1 = []string{"ed,q", "p,q", "ed,ev", "p,ev"}
	PlotSet2 = []string{"exx,sxx", "ed,q", "i,alp", "p,q"}
)

// Plotter draws the results of a Driver
type Plotter struct {
	Keys    []string  // graphs; e.g. PlotSet1
	SaveDir string    // directory to put figure
	SaveFnk string    // filename key; figure is SaveDir/SaveFnk.png
	Width   vg.Length // width of each graph
	Height  vg.Length // height of each graph
	Lbl     string    // curve label; law name is used if empty
	Verbose bool      // show messages
}

// Plot draws all graphs in one PNG figure and returns its filename
func (o *Plotter) Plot(drv *Driver) (fn string, err error) {
	if len(drv.Res) < 2 {
		return "", chk.Err("driver has no results to plot")
	}
	keys := o.Keys
	if len(keys) == 0 {
		keys = PlotSet1
	}
	w, h := o.Width, o.Height
	if w == 0 {
		w = 4 * vg.Inch
	}
	if h == 0 {
		h = 3 * vg.Inch
	}
	lbl := o.Lbl
	if lbl == "" && drv.Law != nil {
		lbl = drv.Law.Name()
	}

	// graphs
	series := driverSeries(drv)
	nr := int(math.Sqrt(float64(len(keys))))
	nc := (len(keys) + nr - 1) / nr
	plots := make([][]*plot.Plot, nr)
	k := 0
	for i := 0; i < nr; i++ {
		plots[i] = make([]*plot.Plot, nc)
		for j := 0; j < nc; j++ {
			if k >= len(keys) {
				plots[i][j] = plot.New()
				continue
			}
			plots[i][j], err = graph(keys[k], lbl, series)
			if err != nil {
				return
			}
			k++
		}
	}

	// draw
	img := vgimg.New(vg.Length(nc)*w, vg.Length(nr)*h)
	dc := draw.New(img)
	canvases := plot.Align(plots, draw.Tiles{Rows: nr, Cols: nc, PadX: vg.Millimeter, PadY: vg.Millimeter}, dc)
	for i := range plots {
		for j, p := range plots[i] {
			p.Draw(canvases[i][j])
		}
	}

	// save
	fn = filepath.Join(o.SaveDir, o.SaveFnk+".png")
	fil, err := os.Create(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(fil)
	if err == nil && o.Verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}

// driverSeries computes all plottable quantities along the path
func driverSeries(drv *Driver) (res map[string][]float64) {
	np := len(drv.Res)
	res = make(map[string][]float64)
	for _, key := range []string{"i", "exx", "sxx", "ed", "ev", "p", "q", "alp"} {
		res[key] = make([]float64, np)
	}
	var e []float64
	for i, s := range drv.Res {
		if e == nil {
			e = make([]float64, len(drv.Eps[i]))
		}
		_, εv, εd := tsr.StrainInvs(e, drv.Eps[i])
		res["i"][i] = float64(i)
		res["exx"][i] = drv.Eps[i][0]
		res["sxx"][i] = s.Sig[0]
		res["ed"][i] = εd
		res["ev"][i] = εv
		res["p"][i] = tsr.P(s.Sig)
		res["q"][i] = tsr.Q(s.Sig)
		if len(s.Alp) > 0 {
			res["alp"][i] = s.Alp[0]
		}
	}
	return
}

// graph returns one graph for an "x,y" key
func graph(key, lbl string, series map[string][]float64) (p *plot.Plot, err error) {
	xy := strings.Split(key, ",")
	if len(xy) != 2 {
		return nil, chk.Err("graph key %q is invalid; it must be \"x,y\"", key)
	}
	X, okx := series[xy[0]]
	Y, oky := series[xy[1]]
	if !okx || !oky {
		return nil, chk.Err("graph key %q has unknown quantities", key)
	}
	xys := make(plotter.XYs, len(X))
	for i := range X {
		xys[i].X, xys[i].Y = X[i], Y[i]
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return
	}
	line.LineStyle.Color = plotutil.Color(0)
	points.Color = plotutil.Color(0)
	p = plot.New()
	p.X.Label.Text, p.Y.Label.Text = xy[0], xy[1]
	p.Add(plotter.NewGrid(), line, points)
	p.Legend.Add(lbl, line)
	return
}
