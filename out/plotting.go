// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mokhairy2019/Kratos-sub001/fem"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// size of each subplot
var (
	PlotWidth  = 4 * vg.Inch
	PlotHeight = 3 * vg.Inch
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	Label string    // legend; alias is used if empty
	X     []float64 // x-values
	Y     []float64 // y-values
	Xlbl  string    // horizontal axis label (raw; e.g. "t")
	Ylbl  string    // vertical axis label (raw; e.g. "ux")
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Title string       // title of subplot
	Data  []*PltEntity // data to be plotted
}

// Splot activates a new subplot window
func (o *Output) Splot(splotTitle string) {
	s := &SplotDat{Title: splotTitle}
	o.Splots = append(o.Splots, s)
	o.Csplot = s
}

// Plot adds data to the current subplot
//  xHandle -- can be a string, e.g. "t" or a slice, e.g. x = []float64{0, 1, 2}
//  yHandle -- can be a string, e.g. "ux" or a slice, e.g. y = []float64{0, 1, 2}
//  alias   -- alias such as "centre"
//  label   -- legend
//  idxI    -- index of time; use -1 for the last time
func (o *Output) Plot(xHandle, yHandle interface{}, alias, label string, idxI int) (err error) {
	e := PltEntity{Alias: alias, Label: label}
	e.X, e.Xlbl, err = o.valsAndLabel(xHandle, yHandle, alias, idxI)
	if err != nil {
		return
	}
	e.Y, e.Ylbl, err = o.valsAndLabel(yHandle, xHandle, alias, idxI)
	if err != nil {
		return
	}
	if len(e.X) != len(e.Y) {
		return chk.Err("lengths of x- and y-series are different. len(x)=%d, len(y)=%d, x=%v, y=%v", len(e.X), len(e.Y), xHandle, yHandle)
	}
	if o.Csplot == nil {
		o.Splot("")
	}
	o.Csplot.Data = append(o.Csplot.Data, &e)
	return
}

// Draw saves all subplots in one PNG figure
//  dirout -- directory to save figure
//  fname  -- file name; e.g. myplot.png
func (o *Output) Draw(dirout, fname string, verbose bool) (err error) {
	nplots := len(o.Splots)
	if nplots == 0 {
		return chk.Err("there are no subplots to draw")
	}
	nr := int(math.Sqrt(float64(nplots)))
	nc := (nplots + nr - 1) / nr
	plots := make([][]*plot.Plot, nr)
	k := 0
	for i := 0; i < nr; i++ {
		plots[i] = make([]*plot.Plot, nc)
		for j := 0; j < nc; j++ {
			if k >= nplots {
				plots[i][j] = plot.New()
				continue
			}
			plots[i][j], err = newPlot(o.Splots[k])
			if err != nil {
				return
			}
			k++
		}
	}
	img := vgimg.New(vg.Length(nc)*PlotWidth, vg.Length(nr)*PlotHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: nr, Cols: nc, PadX: vg.Millimeter, PadY: vg.Millimeter}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j, p := range plots[i] {
			p.Draw(canvases[i][j])
		}
	}
	return savePng(filepath.Join(dirout, fname), img, verbose)
}

// PlotResiduals plots log10(largFb) versus iteration number for each step recorded in summary.
// Returns the filename of the PNG figure: dirout/fnkey_resid.png
func PlotResiduals(sum *fem.Summary, dirout, fnkey string, verbose bool) (fn string, err error) {
	if sum == nil || len(sum.Resids) == 0 {
		return "", chk.Err("summary has no residuals")
	}
	p := plot.New()
	p.Title.Text = "residuals"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "log10(largFb)"
	for i, resids := range sum.Resids {
		var xys plotter.XYs
		for it, r := range resids {
			if r > 0 {
				xys = append(xys, plotter.XY{X: float64(it), Y: math.Log10(r)})
			}
		}
		if len(xys) == 0 {
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return "", err
		}
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		if len(sum.Resids) <= 10 && i < len(sum.StepTimes) {
			p.Legend.Add(io.Sf("t=%g", sum.StepTimes[i]), line)
		}
	}
	p.Add(plotter.NewGrid())
	fn = filepath.Join(dirout, fnkey+"_resid.png")
	err = p.Save(PlotWidth, PlotHeight, fn)
	if err == nil && verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func newPlot(s *SplotDat) (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = s.Title
	for i, d := range s.Data {
		xys := make(plotter.XYs, len(d.X))
		for k := range d.X {
			xys[k].X, xys[k].Y = d.X[k], d.Y[k]
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		lbl := d.Label
		if lbl == "" {
			lbl = d.Alias
		}
		p.Legend.Add(lbl, line, points)
		p.X.Label.Text, p.Y.Label.Text = d.Xlbl, d.Ylbl
	}
	return
}

func savePng(fn string, img *vgimg.Canvas, verbose bool) (err error) {
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
	if err == nil && verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}

func (o *Output) valsAndLabel(handle, otherHandle interface{}, alias string, idxI int) ([]float64, string, error) {
	otherKey := "any"
	if key, ok := otherHandle.(string); ok {
		otherKey = key
	}
	switch hnd := handle.(type) {
	case []float64:
		return hnd, io.Sf("%s-type", alias), nil
	case string:
		switch hnd {
		case "t":
			return o.Times, "t", nil
		case "x", "y", "z":
			x, y, z, err := o.GetXYZ(otherKey, alias)
			c := map[string][]float64{"x": x, "y": y, "z": z}
			return c[hnd], hnd, err
		case "dist":
			d, err := o.GetDist(otherKey, alias)
			return d, "dist", err
		}
		v, err := o.GetRes(hnd, alias, idxI)
		return v, hnd, err
	}
	return nil, "", chk.Err("handle %v is invalid", handle)
}
