// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// batch is the layout of a batch file:
//
//	width: 8
//	ops:
//	  - {op: add, a: "10", b: "0b0010"}
//	  - {op: sub, width: 4, a: "3", b: "5"}
//
// Operands are strings parsed like command line operands. An operation
// without width uses the file's width, or the --width flag if the file
// has none.
//
type batch struct {
	Width int       `yaml:"width"`
	Ops   []batchOp `yaml:"ops"`
}

type batchOp struct {
	Op    string `yaml:"op"`
	Width int    `yaml:"width"`
	A     string `yaml:"a"`
	B     string `yaml:"b"`
}

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Run the additions and subtractions listed in a YAML file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := getWidth(cmd)
			if err != nil {
				return err
			}
			b, err := readBatch(args[0])
			if err != nil {
				return err
			}
			return runBatch(cmd.OutOrStdout(), w, b)
		},
	}
}

func readBatch(name string) (*batch, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read batch file")
	}
	var b batch
	if err = yaml.Unmarshal(data, &b); err != nil {
		return nil, errors.Wrapf(err, "parse batch file %s", name)
	}
	log.Debugf("%s: %d operations", name, len(b.Ops))
	return &b, nil
}

func runBatch(w io.Writer, width int, b *batch) error {
	if b.Width != 0 {
		width = b.Width
	}
	for i, op := range b.Ops {
		ow := width
		if op.Width != 0 {
			ow = op.Width
		}
		if ow <= 0 || ow > 64 {
			return errors.Errorf("operation %d: invalid width %d", i, ow)
		}
		a, bv, err := parseOperands([]string{op.A, op.B})
		if err != nil {
			return errors.Wrapf(err, "operation %d", i)
		}
		switch op.Op {
		case "add":
			err = add(w, ow, a, bv)
		case "sub":
			err = sub(w, ow, a, bv)
		default:
			err = errors.Errorf("unknown op %q", op.Op)
		}
		if err != nil {
			return errors.Wrapf(err, "operation %d", i)
		}
	}
	return nil
}
