// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/arith"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a 4 bits ripple carry adder on 1010 + 0010.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo(cmd.OutOrStdout())
		},
	}
}

func describeAdder(w io.Writer, r *arith.RippleCarryAdder) {
	fmt.Fprintf(w, "RippleCarryAdder(%d) A=%v B=%v Output=%v Carry=%v\n", r.Size(), r.A, r.B, r.Output, r.Carry)
}

func demo(w io.Writer) error {
	rca := arith.NewRippleCarryAdder(4)
	describeAdder(w, rca)

	rca.A = logicsim.Bits{logicsim.Low, logicsim.High, logicsim.Low, logicsim.High}
	rca.B = logicsim.Bits{logicsim.Low, logicsim.High, logicsim.Low, logicsim.Low}
	if err := rca.Exec(); err != nil {
		return err
	}
	describeAdder(w, rca)
	return nil
}
