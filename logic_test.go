package logicsim_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/logictest"
)

const (
	L = ls.Low
	H = ls.High
)

func Test_LogicFunction_Apply(t *testing.T) {
	td := []struct {
		fn     ls.LogicFunction
		result []ls.Signal // a=0 && b=0, a=0 && b=1, a=1 && b=0, a=1 && b=1
	}{
		{ls.NOT, []ls.Signal{H, H, L, L}},
		{ls.AND, []ls.Signal{L, L, L, H}},
		{ls.OR, []ls.Signal{L, H, H, H}},
		{ls.NAND, []ls.Signal{H, H, H, L}},
		{ls.NOR, []ls.Signal{H, L, L, L}},
		{ls.XOR, []ls.Signal{L, H, H, L}},
		{ls.XNOR, []ls.Signal{H, L, L, H}},
	}
	if len(td) != len(ls.LogicFunctions()) {
		t.Fatalf("%d functions tested, %d defined", len(td), len(ls.LogicFunctions()))
	}
	for _, d := range td {
		fn := d.fn
		t.Run(fn.String(), func(t *testing.T) {
			logictest.TruthTable(t, fn.String(), 2, func(in []ls.Signal) []ls.Signal {
				return []ls.Signal{fn.Apply(in[0], in[1])}
			}, [][]ls.Signal{d.result})
		})
	}
}

func Test_LogicFunction_derived(t *testing.T) {
	logictest.ForEach(2, func(in []ls.Signal) {
		a, b := in[0], in[1]
		if ls.NAND.Apply(a, b) != ls.AND.Apply(a, b).Not() {
			t.Errorf("NAND(%v, %v) != NOT(AND)", a, b)
		}
		if ls.NOR.Apply(a, b) != ls.OR.Apply(a, b).Not() {
			t.Errorf("NOR(%v, %v) != NOT(OR)", a, b)
		}
		if ls.XNOR.Apply(a, b) != ls.XOR.Apply(a, b).Not() {
			t.Errorf("XNOR(%v, %v) != NOT(XOR)", a, b)
		}
		if ls.NOT.Apply(a, b) != a.Not() {
			t.Errorf("NOT(%v, %v) depends on its second operand", a, b)
		}
	})
}

func Test_LogicFunction_invalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		}
	}()
	ls.LogicFunction(42).Apply(H, H)
}

func TestParseLogicFunction(t *testing.T) {
	for _, fn := range ls.LogicFunctions() {
		got, err := ls.ParseLogicFunction(fn.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != fn {
			t.Errorf("ParseLogicFunction(%q) = %v", fn.String(), got)
		}
	}
	if fn, err := ls.ParseLogicFunction(" xnor"); err != nil || fn != ls.XNOR {
		t.Errorf("ParseLogicFunction(\" xnor\") = %v, %v", fn, err)
	}
	if _, err := ls.ParseLogicFunction("IMPLY"); err == nil {
		t.Error("expected error for unknown function")
	}
	if s := ls.LogicFunction(42).String(); s != "LogicFunction(42)" {
		t.Errorf("String() = %q", s)
	}
}
