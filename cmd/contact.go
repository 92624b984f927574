// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strings"

	"github.com/mokhairy2019/Kratos-sub001/dem"
	"github.com/spf13/cobra"
)

var (
	ctcLaw      string
	ctcRadiusA  float64
	ctcRadiusB  float64
	ctcDistance float64
	ctcYoung    float64
	ctcPoisson  float64
	ctcFriction float64
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Evaluate the normal force between two spheres",
	Long: `Evaluate a particle contact law for two spheres placed along the x axis.

Examples:
  kratos contact --law hertz --ra 1 --rb 1 --dist 1.99
  kratos contact --law linear --dist 1.9 --young 1e7`,
	RunE: runContact,
}

func init() {
	rootCmd.AddCommand(contactCmd)
	contactCmd.Flags().StringVarP(&ctcLaw, "law", "l", "hertz", "contact law: "+strings.Join(dem.Names(), ", "))
	contactCmd.Flags().Float64Var(&ctcRadiusA, "ra", 1, "radius of the first particle")
	contactCmd.Flags().Float64Var(&ctcRadiusB, "rb", 1, "radius of the second particle")
	contactCmd.Flags().Float64VarP(&ctcDistance, "dist", "d", 1.99, "distance between centres")
	contactCmd.Flags().Float64Var(&ctcYoung, "young", 1e7, "Young's modulus of both particles")
	contactCmd.Flags().Float64Var(&ctcPoisson, "poisson", 0.25, "Poisson's coefficient of both particles")
	contactCmd.Flags().Float64Var(&ctcFriction, "friction", 0.5, "friction coefficient of both particles")
}

func runContact(cmd *cobra.Command, args []string) (err error) {
	w := cmd.OutOrStdout()

	// particles
	particles := []*dem.Particle{
		{Id: 0, Radius: ctcRadiusA, Young: ctcYoung, Poisson: ctcPoisson, Mass: 1, Friction: ctcFriction, Restitution: 1},
		{Id: 1, X: [3]float64{ctcDistance, 0, 0}, Radius: ctcRadiusB, Young: ctcYoung, Poisson: ctcPoisson, Mass: 1, Friction: ctcFriction, Restitution: 1},
	}
	for _, p := range particles {
		err = p.Check()
		if err != nil {
			return
		}
	}

	// contact
	law, err := dem.New(ctcLaw)
	if err != nil {
		return
	}
	c := dem.NewContact(0, 1, law)
	f, err := c.Evaluate(particles)
	if err != nil {
		return
	}

	// report
	fmt.Fprintf(w, "law               = %s\n", c.Law.Name())
	fmt.Fprintf(w, "equivalent radius = %g\n", dem.EquivRadius(particles[0], particles[1]))
	fmt.Fprintf(w, "indentation       = %g\n", c.Indent)
	fmt.Fprintf(w, "normal force      = %g\n", c.Fn)
	fmt.Fprintf(w, "force on b        = %v\n", f)
	return
}
