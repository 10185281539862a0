// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package arith provides adders and subtractors built from logicsim gates.
//
// Single bit circuits (HalfAdder, FullAdder, HalfSubtractor, FullSubtractor)
// expose their inputs and outputs as struct fields. Callers set the inputs,
// call Exec, then read the outputs. Outputs are only updated by Exec.
//
// Multi-bit circuits (RippleCarryAdder, RippleBorrowSubtractor) chain full
// adders or subtractors. Bit 0 is the least significant bit and carries or
// borrows propagate from bit 0 upwards.
//
package arith

import (
	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// ErrMismatchedWidth is returned by ripple circuits when the length of their
// inputs does not match their number of stages.
//
var ErrMismatchedWidth = errors.New("mismatched width")

func checkWidth(stages int, a, b logicsim.Bits) error {
	if len(a) != stages || len(b) != stages {
		return errors.Wrapf(ErrMismatchedWidth, "%d stages, len(A) = %d, len(B) = %d", stages, len(a), len(b))
	}
	return nil
}

// loadOperands checks that a and b fit in bits and returns them as Bits.
//
func loadOperands(bits int, a, b uint64) (logicsim.Bits, logicsim.Bits, error) {
	if bits > 64 {
		return nil, nil, errors.Errorf("%d bits circuit does not fit in uint64", bits)
	}
	if bits < 64 {
		limit := uint64(1)<<uint(bits) - 1
		if a > limit {
			return nil, nil, errors.Errorf("operand %d overflows %d bits", a, bits)
		}
		if b > limit {
			return nil, nil, errors.Errorf("operand %d overflows %d bits", b, bits)
		}
	}
	return logicsim.FromUint64(a, bits), logicsim.FromUint64(b, bits), nil
}
