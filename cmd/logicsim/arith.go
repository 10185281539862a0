// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/db47h/logicsim/arith"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add A B",
		Short: "Add two unsigned integers with a ripple carry adder.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := getWidth(cmd)
			if err != nil {
				return err
			}
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			return add(cmd.OutOrStdout(), w, a, b)
		},
	}
}

func newSubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub A B",
		Short: "Subtract two unsigned integers with a ripple borrow subtractor.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := getWidth(cmd)
			if err != nil {
				return err
			}
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			return sub(cmd.OutOrStdout(), w, a, b)
		},
	}
}

func parseOperands(args []string) (a, b uint64, err error) {
	if a, err = parseOperand(args[0]); err != nil {
		return 0, 0, err
	}
	if b, err = parseOperand(args[1]); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func add(w io.Writer, width int, a, b uint64) error {
	r := arith.NewRippleCarryAdder(width)
	s, c, err := r.Add(a, b)
	if err != nil {
		return errors.Wrap(err, "add")
	}
	log.Debugf("%d bits adder: %v + %v", width, r.A, r.B)
	_, err = fmt.Fprintf(w, "%v + %v = %v (%d + %d = %d), carry %v\n", r.A, r.B, r.Output, a, b, s, c)
	return err
}

func sub(w io.Writer, width int, a, b uint64) error {
	r := arith.NewRippleBorrowSubtractor(width)
	d, bo, err := r.Sub(a, b)
	if err != nil {
		return errors.Wrap(err, "sub")
	}
	log.Debugf("%d bits subtractor: %v - %v", width, r.A, r.B)
	_, err = fmt.Fprintf(w, "%v - %v = %v (%d - %d = %d), borrow %v\n", r.A, r.B, r.Output, a, b, d, bo)
	return err
}
