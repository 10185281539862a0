// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultWidth = 8

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "logicsim",
		Short:         "A combinational logic simulator.",
		Long:          "Evaluate logic gates, ripple carry adders and ripple borrow subtractors.",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.PersistentFlags().IntP("width", "w", defaultWidth, "circuit width in bits")

	root.AddCommand(
		newDemoCmd(),
		newAddCmd(),
		newSubCmd(),
		newGateCmd(),
		newTableCmd(),
		newBatchCmd(),
	)
	return root
}

// getFlag returns the value of a boolean flag, or false if the flag does not
// exist.
//
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Debug(err)
		return false
	}
	return r
}

func getWidth(cmd *cobra.Command) (int, error) {
	w, err := cmd.Flags().GetInt("width")
	if err != nil {
		return 0, err
	}
	if w <= 0 || w > 64 {
		return 0, errors.Errorf("invalid width %d: must be in [1, 64]", w)
	}
	return w, nil
}

// parseOperand parses an unsigned integer. Prefixes 0b, 0o and 0x select
// binary, octal and hexadecimal notations.
//
func parseOperand(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid operand %q", s)
	}
	return v, nil
}
