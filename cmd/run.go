// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/mokhairy2019/Kratos-sub001/fem"
	"github.com/mokhairy2019/Kratos-sub001/out"
	"github.com/spf13/cobra"
)

var (
	runAlias    string
	runErase    bool
	runSummary  bool
	runVerbose  bool
	runNworkers int
	runPng      bool
	runGraph    bool
)

var runCmd = &cobra.Command{
	Use:   "run <file.sim>",
	Short: "Run a finite element simulation",
	Long: `Run all stages of a simulation file (.sim).

Results and the summary are written to the output directory of the simulation.
After the run, the residuals of all iterations are plotted in the terminal.

Examples:
  kratos run fem/data/fourqua4.sim
  kratos run --workers 4 --png plastic.sim`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulation,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runAlias, "alias", "a", "", "word to add to the results filenames")
	runCmd.Flags().BoolVar(&runErase, "erase", true, "erase previous results")
	runCmd.Flags().BoolVar(&runSummary, "summary", true, "save summary and results")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "show messages")
	runCmd.Flags().IntVarP(&runNworkers, "workers", "w", 0, "number of goroutines for element loops (0 means use the value in the .sim file)")
	runCmd.Flags().BoolVar(&runPng, "png", false, "save a figure with the residuals (requires --summary)")
	runCmd.Flags().BoolVar(&runGraph, "graph", true, "plot residuals in the terminal (requires --summary)")
}

func runSimulation(cmd *cobra.Command, args []string) (err error) {
	w := cmd.OutOrStdout()

	// allocate and run
	analysis, err := fem.NewFEM(args[0], runAlias, runErase, runSummary, false, runVerbose)
	if err != nil {
		return
	}
	if runNworkers > 0 {
		analysis.SetNworkers(runNworkers)
	}
	err = analysis.Run()
	if err != nil {
		return fmt.Errorf("simulation %q failed:\n%w", analysis.Sim.Key, err)
	}

	// report
	fmt.Fprintf(w, "simulation %q completed\n", analysis.Sim.Key)
	if len(analysis.Domains) > 0 && analysis.Domains[0].Sol != nil {
		fmt.Fprintf(w, "final time = %g\n", analysis.Domains[0].Sol.T)
	}
	sum := analysis.Summary
	if sum == nil {
		return
	}
	fmt.Fprintf(w, "steps      = %d\n", len(sum.StepTimes))
	fmt.Fprintf(w, "iterations = %d\n", totalIterations(sum))
	if runGraph {
		writeResidGraph(w, sum)
	}
	if runPng {
		var fn string
		fn, err = out.PlotResiduals(sum, analysis.Sim.DirOut, analysis.Sim.Key, runVerbose)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "figure <%s> written\n", fn)
	}
	return
}

// totalIterations returns the number of iterations of all steps
func totalIterations(sum *fem.Summary) (n int) {
	for _, it := range sum.Iterations {
		n += it
	}
	return
}

// residHistory returns log10 of all positive residuals in iteration order
func residHistory(sum *fem.Summary) (l []float64) {
	for _, res := range sum.Resids {
		for _, r := range res {
			if r > 0 {
				l = append(l, math.Log10(r))
			}
		}
	}
	return
}

// writeResidGraph plots the residual history as text
func writeResidGraph(w io.Writer, sum *fem.Summary) {
	l := residHistory(sum)
	if len(l) < 2 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, asciigraph.Plot(l,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Precision(1),
		asciigraph.Caption("log10(largest residual) vs iteration")))
}
