// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logictest provides utility functions for testing circuits.
//
package logictest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/logicsim"
)

// A Func is a combinational circuit under test. It maps a set of input signals
// to a set of output signals. Implementations typically set the inputs of a
// circuit, call its Exec method and collect its outputs.
//
type Func func(in []logicsim.Signal) []logicsim.Signal

// maxExhaustive is the maximum number of inputs tested exhaustively by
// Compare. Circuits with more inputs are tested with random values.
//
const maxExhaustive = 12

// Inputs returns input combination i out of 2^n. The first input is the most
// significant bit of i, so that combinations are enumerated in truth table
// order: (Low, Low), (Low, High), (High, Low), (High, High).
//
func Inputs(n int, i int) []logicsim.Signal {
	in := make([]logicsim.Signal, n)
	for bit := range in {
		in[n-bit-1] = logicsim.SignalOf(i&(1<<uint(bit)) != 0)
	}
	return in
}

// ForEach calls f for every combination of n inputs, in truth table order.
//
func ForEach(n int, f func(in []logicsim.Signal)) {
	tot := 1 << uint(n)
	for i := 0; i < tot; i++ {
		f(Inputs(n, i))
	}
}

// TruthTable checks that fn returns the expected results for every
// combination of n inputs. result[o][i] is the expected value of output o for
// input combination i (see Inputs).
//
func TruthTable(t testing.TB, name string, n int, fn Func, result [][]logicsim.Signal) {
	t.Helper()
	i := 0
	ForEach(n, func(in []logicsim.Signal) {
		out := fn(in)
		if len(out) != len(result) {
			t.Fatalf("%s: got %d outputs, expected %d", name, len(out), len(result))
		}
		for o := range out {
			if exp := result[o][i]; out[o] != exp {
				t.Errorf("%s %v: output %d = %v, got %v", name, in, o, exp, out[o])
			}
		}
		i++
	})
}

func errString(in []logicsim.Signal, o int, ex, got logicsim.Signal) string {
	var b strings.Builder
	for i, s := range in {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "in[%d]=%v", i, s)
	}
	return fmt.Sprintf("\nExpected %s => out[%d]=%v\nGot %v", b.String(), o, ex, got)
}

func compare(t testing.TB, in []logicsim.Signal, f1, f2 Func) {
	t.Helper()
	o1, o2 := f1(append([]logicsim.Signal(nil), in...)), f2(append([]logicsim.Signal(nil), in...))
	if len(o1) != len(o2) {
		t.Fatalf("len(out1) = %d != len(out2) = %d", len(o1), len(o2))
	}
	for o := range o1 {
		if o1[o] != o2[o] {
			t.Fatal(errString(in, o, o1[o], o2[o]))
		}
	}
}

// Compare takes two circuits and compares their outputs given the same inputs.
// Both circuits must take n inputs and return the same number of outputs.
//
// Circuits with up to 12 inputs are tested with every input combination.
// Larger circuits are tested with all inputs Low, all inputs High and 4096
// random combinations.
//
func Compare(t testing.TB, n int, f1, f2 Func) {
	t.Helper()

	start := time.Now()
	count := 0

	if n <= maxExhaustive {
		ForEach(n, func(in []logicsim.Signal) {
			compare(t, in, f1, f2)
			count++
		})
	} else {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		in := make([]logicsim.Signal, n)
		// try all 0
		compare(t, in, f1, f2)
		// try all 1
		for i := range in {
			in[i] = logicsim.High
		}
		compare(t, in, f1, f2)
		count = 2
		for i := 0; i < 1<<maxExhaustive; i++ {
			for j := range in {
				in[j] = logicsim.SignalOf(rnd.Int63()&(1<<62) != 0)
			}
			compare(t, in, f1, f2)
			count++
		}
	}

	t.Logf("%d inputs. %d evaluations in %v", n, count, time.Since(start))
}
