// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kratos",
	Short: "Nonlinear finite element solver",
	Long: `kratos - Go finite element and material point solver

Runs finite element simulations (.sim files) with a Newton-Raphson strategy,
drives constitutive laws along strain paths and evaluates particle contact laws.

Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
Use of this source code is governed by a BSD-style
license that can be found in the LICENSE file.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
