// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package arith

import (
	ls "github.com/db47h/logicsim"
)

// HalfAdder adds two bits.
//
//	Inputs: A, B
//	Outputs: Sum, Carry
//	Function: Sum = lsb(A + B)
//	          Carry = msb(A + B)
//
type HalfAdder struct {
	A, B       ls.Signal
	Sum, Carry ls.Signal

	xor ls.Gate
	and ls.Gate
}

// NewHalfAdder returns a half adder with all inputs Low.
//
func NewHalfAdder() HalfAdder {
	return HalfAdder{
		xor: ls.NewGate(ls.XOR),
		and: ls.NewGate(ls.AND),
	}
}

// Exec updates Sum and Carry.
//
func (h *HalfAdder) Exec() {
	h.xor.Exec(h.A, h.B)
	h.and.Exec(h.A, h.B)
	h.Sum = h.xor.Output()
	h.Carry = h.and.Output()
}

// FullAdder adds three bits.
//
//	Inputs: A, B, CarryIn
//	Outputs: Sum, CarryOut
//	Function: Sum = lsb(A + B + CarryIn)
//	          CarryOut = msb(A + B + CarryIn)
//
type FullAdder struct {
	A, B, CarryIn ls.Signal
	Sum, CarryOut ls.Signal

	h0, h1 HalfAdder
	or     ls.Gate
}

// NewFullAdder returns a full adder with all inputs Low.
//
func NewFullAdder() FullAdder {
	return FullAdder{
		h0: NewHalfAdder(),
		h1: NewHalfAdder(),
		or: ls.NewGate(ls.OR),
	}
}

// Exec updates Sum and CarryOut.
//
func (f *FullAdder) Exec() {
	f.h0.A, f.h0.B = f.A, f.B
	f.h0.Exec()
	f.h1.A, f.h1.B = f.h0.Sum, f.CarryIn
	f.h1.Exec()
	f.Sum = f.h1.Sum
	// at most one of the half adders carries, so OR is enough.
	f.or.Exec(f.h0.Carry, f.h1.Carry)
	f.CarryOut = f.or.Output()
}

// RippleCarryAdder is a N-bits adder made of N chained full adders.
//
//	Inputs: A[N], B[N]
//	Outputs: Output[N], Carry
//	Function: Output = (A + B) mod 2^N
//	          Carry = (A + B) >= 2^N
//
type RippleCarryAdder struct {
	A, B   ls.Bits
	Output ls.Bits
	Carry  ls.Signal

	stages []FullAdder
}

// NewRippleCarryAdder returns a new adder for size bits numbers. A, B and
// Output are zero filled.
//
func NewRippleCarryAdder(size int) *RippleCarryAdder {
	if size < 0 {
		panic("negative adder size")
	}
	r := &RippleCarryAdder{
		A:      make(ls.Bits, size),
		B:      make(ls.Bits, size),
		Output: make(ls.Bits, size),
		stages: make([]FullAdder, size),
	}
	for i := range r.stages {
		r.stages[i] = NewFullAdder()
	}
	return r
}

// Size returns the number of bits of the adder.
//
func (r *RippleCarryAdder) Size() int { return len(r.stages) }

// Exec adds A and B. The carry propagates from bit 0 up. Output is replaced by
// a new slice and Carry is set to the carry out of the last stage.
//
// If A or B is not exactly Size() bits long, Exec returns an error wrapping
// ErrMismatchedWidth and leaves the adder untouched.
//
func (r *RippleCarryAdder) Exec() error {
	if err := checkWidth(len(r.stages), r.A, r.B); err != nil {
		return err
	}
	out := make(ls.Bits, 0, len(r.stages))
	carry := ls.Low
	for i := range r.stages {
		fa := &r.stages[i]
		fa.CarryIn = carry
		fa.A, fa.B = r.A[i], r.B[i]
		fa.Exec()
		out = append(out, fa.Sum)
		carry = fa.CarryOut
	}
	r.Output = out
	r.Carry = carry
	return nil
}

// Add loads a and b into the adder, runs Exec and returns the result.
// It fails if the adder is wider than 64 bits or if a or b do not fit in
// Size() bits.
//
func (r *RippleCarryAdder) Add(a, b uint64) (uint64, ls.Signal, error) {
	ba, bb, err := loadOperands(len(r.stages), a, b)
	if err != nil {
		return 0, ls.Low, err
	}
	r.A, r.B = ba, bb
	if err = r.Exec(); err != nil {
		return 0, ls.Low, err
	}
	return r.Output.Uint64(), r.Carry, nil
}
