// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package arith

import (
	ls "github.com/db47h/logicsim"
)

// HalfSubtractor subtracts two bits.
//
//	Inputs: A, B
//	Outputs: Difference, Borrow
//	Function: Difference = A xor B
//	          Borrow = !A && B
//
type HalfSubtractor struct {
	A, B               ls.Signal
	Difference, Borrow ls.Signal

	xor ls.Gate
	not ls.Gate
	and ls.Gate
}

// NewHalfSubtractor returns a half subtractor with all inputs Low.
//
func NewHalfSubtractor() HalfSubtractor {
	return HalfSubtractor{
		xor: ls.NewGate(ls.XOR),
		not: ls.NewGate(ls.NOT),
		and: ls.NewGate(ls.AND),
	}
}

// Exec updates Difference and Borrow.
//
func (h *HalfSubtractor) Exec() {
	h.xor.Exec(h.A, h.B)
	h.not.Exec(h.A, ls.Low)
	h.and.Exec(h.not.Output(), h.B)
	h.Difference = h.xor.Output()
	h.Borrow = h.and.Output()
}

// FullSubtractor subtracts two bits and a borrow.
//
//	Inputs: A, B, BorrowIn
//	Outputs: Difference, BorrowOut
//	Function: Difference = lsb(A - B - BorrowIn)
//	          BorrowOut = A < B + BorrowIn
//
type FullSubtractor struct {
	A, B, BorrowIn        ls.Signal
	Difference, BorrowOut ls.Signal

	h0, h1 HalfSubtractor
	or     ls.Gate
}

// NewFullSubtractor returns a full subtractor with all inputs Low.
//
func NewFullSubtractor() FullSubtractor {
	return FullSubtractor{
		h0: NewHalfSubtractor(),
		h1: NewHalfSubtractor(),
		or: ls.NewGate(ls.OR),
	}
}

// Exec updates Difference and BorrowOut.
//
func (f *FullSubtractor) Exec() {
	f.h0.A, f.h0.B = f.A, f.B
	f.h0.Exec()
	f.h1.A, f.h1.B = f.h0.Difference, f.BorrowIn
	f.h1.Exec()
	f.Difference = f.h1.Difference
	// at most one of the half subtractors borrows.
	f.or.Exec(f.h0.Borrow, f.h1.Borrow)
	f.BorrowOut = f.or.Output()
}

// RippleBorrowSubtractor is a N-bits subtractor made of N chained full
// subtractors.
//
//	Inputs: A[N], B[N]
//	Outputs: Output[N], Borrow
//	Function: Output = (A - B) mod 2^N
//	          Borrow = A < B
//
type RippleBorrowSubtractor struct {
	A, B   ls.Bits
	Output ls.Bits
	Borrow ls.Signal

	stages []FullSubtractor
}

// NewRippleBorrowSubtractor returns a new subtractor for size bits numbers.
// A, B and Output are zero filled.
//
func NewRippleBorrowSubtractor(size int) *RippleBorrowSubtractor {
	if size < 0 {
		panic("negative subtractor size")
	}
	r := &RippleBorrowSubtractor{
		A:      make(ls.Bits, size),
		B:      make(ls.Bits, size),
		Output: make(ls.Bits, size),
		stages: make([]FullSubtractor, size),
	}
	for i := range r.stages {
		r.stages[i] = NewFullSubtractor()
	}
	return r
}

// Size returns the number of bits of the subtractor.
//
func (r *RippleBorrowSubtractor) Size() int { return len(r.stages) }

// Exec subtracts B from A. The borrow propagates from bit 0 up. Output is
// replaced by a new slice and Borrow is set to the borrow out of the last
// stage.
//
// If A or B is not exactly Size() bits long, Exec returns an error wrapping
// ErrMismatchedWidth and leaves the subtractor untouched.
//
func (r *RippleBorrowSubtractor) Exec() error {
	if err := checkWidth(len(r.stages), r.A, r.B); err != nil {
		return err
	}
	out := make(ls.Bits, 0, len(r.stages))
	borrow := ls.Low
	for i := range r.stages {
		fs := &r.stages[i]
		fs.BorrowIn = borrow
		fs.A, fs.B = r.A[i], r.B[i]
		fs.Exec()
		out = append(out, fs.Difference)
		borrow = fs.BorrowOut
	}
	r.Output = out
	r.Borrow = borrow
	return nil
}

// Sub loads a and b into the subtractor, runs Exec and returns a - b modulo
// 2^Size() together with the final borrow.
// It fails if the subtractor is wider than 64 bits or if a or b do not fit in
// Size() bits.
//
func (r *RippleBorrowSubtractor) Sub(a, b uint64) (uint64, ls.Signal, error) {
	ba, bb, err := loadOperands(len(r.stages), a, b)
	if err != nil {
		return 0, ls.Low, err
	}
	r.A, r.B = ba, bb
	if err = r.Exec(); err != nil {
		return 0, ls.Low, err
	}
	return r.Output.Uint64(), r.Borrow, nil
}
