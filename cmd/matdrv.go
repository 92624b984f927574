// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/guptarohit/asciigraph"
	"github.com/mokhairy2019/Kratos-sub001/msolid"
	"github.com/spf13/cobra"
)

var (
	drvModel   string
	drvE       float64
	drvNu      float64
	drvSy0     float64
	drvH       float64
	drvNincs   int
	drvEmax    float64
	drvPstress bool
	drvPng     string
)

var matdrvCmd = &cobra.Command{
	Use:   "matdrv",
	Short: "Drive a constitutive law along a uniaxial strain path",
	Long: `Run a material point simulation: εxx goes from 0 to emax in nincs increments
while the other strain components are kept at zero.

Examples:
  kratos matdrv --model vm --E 1500 --nu 0.25 --sy0 10 --H 100 --emax 0.02
  kratos matdrv --model lin-elast --nincs 5`,
	RunE: runMatDriver,
}

func init() {
	rootCmd.AddCommand(matdrvCmd)
	matdrvCmd.Flags().StringVarP(&drvModel, "model", "m", "vm", "constitutive law: "+strings.Join(msolid.Names(), ", "))
	matdrvCmd.Flags().Float64Var(&drvE, "E", 1500, "Young's modulus")
	matdrvCmd.Flags().Float64Var(&drvNu, "nu", 0.25, "Poisson's coefficient")
	matdrvCmd.Flags().Float64Var(&drvSy0, "sy0", 10, "initial yield stress")
	matdrvCmd.Flags().Float64Var(&drvH, "H", 0, "hardening modulus")
	matdrvCmd.Flags().IntVarP(&drvNincs, "nincs", "n", 20, "number of strain increments")
	matdrvCmd.Flags().Float64Var(&drvEmax, "emax", 0.02, "final εxx")
	matdrvCmd.Flags().BoolVar(&drvPstress, "pstress", false, "plane-stress instead of plane-strain")
	matdrvCmd.Flags().StringVar(&drvPng, "png", "", "directory to save a figure with the stress path")
}

func runMatDriver(cmd *cobra.Command, args []string) (err error) {

	// properties
	props, err := msolid.NewPropertiesFromPrms(1, dbf.Params{
		&dbf.P{N: "E", V: drvE},
		&dbf.P{N: "nu", V: drvNu},
		&dbf.P{N: "sy0", V: drvSy0},
		&dbf.P{N: "H", V: drvH},
	})
	if err != nil {
		return
	}

	// driver and path
	var drv msolid.Driver
	drv.Silent = true
	err = drv.Init(drvModel, 2, drvPstress, props)
	if err != nil {
		return
	}
	var pth msolid.Path
	err = pth.SetUniaxial(drv.Law.VoigtSize(), drvNincs, drvEmax)
	if err != nil {
		return
	}
	err = drv.Run(&pth)
	if err != nil {
		return
	}
	writeDriverResults(cmd.OutOrStdout(), &drv)

	// figure
	if drvPng != "" {
		pl := msolid.Plotter{Keys: msolid.PlotSet2, SaveDir: drvPng, SaveFnk: "matdrv-" + drvModel}
		var fn string
		fn, err = pl.Plot(&drv)
		if err != nil {
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "figure <%s> written\n", fn)
	}
	return
}

// writeDriverResults prints a table with strains and stresses and plots σxx
func writeDriverResults(w io.Writer, drv *msolid.Driver) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "inc\tεxx\tσxx\tσyy\tσzz\tσxy\tα0\t")
	sxx := make([]float64, len(drv.Res))
	for i, s := range drv.Res {
		sxx[i] = s.Sig[0]
		α0 := 0.0
		if len(s.Alp) > 0 {
			α0 = s.Alp[0]
		}
		fmt.Fprintf(tw, "%d\t%.6f\t%.4f\t%.4f\t%.4f\t%.4f\t%.6f\t\n", i, drv.Eps[i][0], s.Sig[0], s.Sig[1], s.Sig[2], s.Sig[3], α0)
	}
	tw.Flush()
	if len(sxx) < 2 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, asciigraph.Plot(sxx,
		asciigraph.Height(12),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("σxx vs increment (%s)", drv.Law.Name()))))
}
