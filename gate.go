// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// A Gate is a primitive logic gate. It remembers the inputs of the last call
// to Exec and the resulting output.
//
// The output always equals Logic().Apply(A(), B()).
//
type Gate struct {
	logic LogicFunction
	a, b  Signal
	out   Signal
}

// NewGate returns a new gate applying fn. Both inputs are Low and the output
// is computed accordingly.
//
func NewGate(fn LogicFunction) Gate {
	return Gate{
		logic: fn,
		out:   fn.Apply(Low, Low),
	}
}

// Exec sets the gate inputs and updates its output.
//
func (g *Gate) Exec(a, b Signal) {
	g.a, g.b = a, b
	g.out = g.logic.Apply(a, b)
}

// Logic returns the gate's logic function.
//
func (g *Gate) Logic() LogicFunction { return g.logic }

// A returns the first input.
//
func (g *Gate) A() Signal { return g.a }

// B returns the second input.
//
func (g *Gate) B() Signal { return g.b }

// Output returns the gate output.
//
func (g *Gate) Output() Signal { return g.out }

func (g *Gate) String() string {
	if g.logic.Unary() {
		return g.logic.String() + "(" + g.a.String() + ") = " + g.out.String()
	}
	return g.logic.String() + "(" + g.a.String() + ", " + g.b.String() + ") = " + g.out.String()
}
