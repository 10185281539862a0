// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A LogicFunction selects one of the seven standard boolean operations.
//
type LogicFunction uint8

// Logic functions.
//
const (
	NOT LogicFunction = iota
	AND
	OR
	NAND
	NOR
	XOR
	XNOR
)

var logicNames = [...]string{
	NOT:  "NOT",
	AND:  "AND",
	OR:   "OR",
	NAND: "NAND",
	NOR:  "NOR",
	XOR:  "XOR",
	XNOR: "XNOR",
}

// LogicFunctions returns all logic functions in declaration order.
//
func LogicFunctions() []LogicFunction {
	return []LogicFunction{NOT, AND, OR, NAND, NOR, XOR, XNOR}
}

// Apply applies the logic function to a and b.
//
//	NOT:  out = !a (b is ignored)
//	AND:  out = a && b
//	OR:   out = a || b
//	NAND: out = !(a && b)
//	NOR:  out = !(a || b)
//	XOR:  out = a && !b || !a && b
//	XNOR: out = a && b || !a && !b
//
// Apply panics if f is not one of the above.
//
func (f LogicFunction) Apply(a, b Signal) Signal {
	va, vb := a.Bool(), b.Bool()
	switch f {
	case NOT:
		return SignalOf(!va)
	case AND:
		return SignalOf(va && vb)
	case OR:
		return SignalOf(va || vb)
	case NAND:
		return SignalOf(!(va && vb))
	case NOR:
		return SignalOf(!(va || vb))
	case XOR:
		return SignalOf(va && !vb || !va && vb)
	case XNOR:
		return SignalOf(va && vb || !va && !vb)
	}
	panic("invalid logic function " + f.String())
}

// Unary returns true if f ignores its second operand.
//
func (f LogicFunction) Unary() bool {
	return f == NOT
}

func (f LogicFunction) String() string {
	if int(f) < len(logicNames) {
		return logicNames[f]
	}
	return "LogicFunction(" + strconv.Itoa(int(f)) + ")"
}

// ParseLogicFunction returns the logic function with the given name. Names are
// case insensitive.
//
func ParseLogicFunction(name string) (LogicFunction, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for i, ln := range logicNames {
		if ln == n {
			return LogicFunction(i), nil
		}
	}
	return 0, errors.Errorf("unknown logic function %q", name)
}
