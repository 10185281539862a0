// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/db47h/logicsim"
	"github.com/spf13/cobra"
)

func newGateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gate FUNCTION A [B]",
		Short: "Evaluate a single logic gate.",
		Long:  "Evaluate a single logic gate. B defaults to low and is ignored by NOT.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := logicsim.ParseLogicFunction(args[0])
			if err != nil {
				return err
			}
			a, err := logicsim.ParseSignal(args[1])
			if err != nil {
				return err
			}
			b := logicsim.Low
			if len(args) > 2 {
				if b, err = logicsim.ParseSignal(args[2]); err != nil {
					return err
				}
			}
			g := logicsim.NewGate(fn)
			g.Exec(a, b)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.String())
			return err
		},
	}
}

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table [FUNCTION...]",
		Short: "Print the truth table of logic functions (all by default).",
		RunE: func(cmd *cobra.Command, args []string) error {
			fns := logicsim.LogicFunctions()
			if len(args) > 0 {
				fns = fns[:0:0]
				for _, n := range args {
					fn, err := logicsim.ParseLogicFunction(n)
					if err != nil {
						return err
					}
					fns = append(fns, fn)
				}
			}
			return truthTable(cmd.OutOrStdout(), fns)
		},
	}
}

func truthTable(w io.Writer, fns []logicsim.LogicFunction) error {
	in := []logicsim.Signal{logicsim.Low, logicsim.High}
	for _, fn := range fns {
		if _, err := fmt.Fprintf(w, "%s\n", fn); err != nil {
			return err
		}
		g := logicsim.NewGate(fn)
		for _, a := range in {
			for _, b := range in {
				if fn.Unary() && b == logicsim.High {
					continue
				}
				g.Exec(a, b)
				if _, err := fmt.Fprintf(w, "\t%s\n", g.String()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
