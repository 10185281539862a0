package arith_test

import (
	"testing"
	"testing/quick"

	ls "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/arith"
	"github.com/db47h/logicsim/logictest"
	"github.com/pkg/errors"
)

func TestHalfSubtractor(t *testing.T) {
	h := arith.NewHalfSubtractor()
	logictest.TruthTable(t, "HalfSubtractor", 2, func(in []ls.Signal) []ls.Signal {
		h.A, h.B = in[0], in[1]
		h.Exec()
		return []ls.Signal{h.Difference, h.Borrow}
	}, [][]ls.Signal{
		{L, H, H, L},
		{L, H, L, L},
	})
}

func TestFullSubtractor(t *testing.T) {
	f := arith.NewFullSubtractor()
	logictest.ForEach(3, func(in []ls.Signal) {
		f.A, f.B, f.BorrowIn = in[0], in[1], in[2]
		f.Exec()
		diff := b2i(in[0]) - b2i(in[1]) - b2i(in[2])
		// diff is in [-2, 1]: Difference is its lsb and BorrowOut its sign.
		if got := b2i(f.Difference) - 2*b2i(f.BorrowOut); got != diff {
			t.Errorf("%v - %v - %v = %d, got %d (D=%v, B=%v)", in[0], in[1], in[2], diff, got, f.Difference, f.BorrowOut)
		}
	})

	f.A, f.B, f.BorrowIn = L, H, H
	f.Exec()
	if f.Difference != L || f.BorrowOut != H {
		t.Errorf("0-1-1: Difference = %v, BorrowOut = %v", f.Difference, f.BorrowOut)
	}
}

func TestRippleBorrowSubtractor(t *testing.T) {
	r := arith.NewRippleBorrowSubtractor(4)
	if r.Size() != 4 || len(r.A) != 4 || len(r.B) != 4 || len(r.Output) != 4 {
		t.Fatalf("bad initial state: %+v", r)
	}
	r.A = ls.Bits{L, H, L, H} // 10
	r.B = ls.Bits{L, H, L, L} // 2
	if err := r.Exec(); err != nil {
		t.Fatal(err)
	}
	if r.Output.String() != "1000" || r.Borrow != L {
		t.Errorf("1010 - 0010 = %v, borrow %v", r.Output, r.Borrow)
	}

	// borrow ripples through all bits: 0000 - 0001 = 1111, borrow
	r.A = ls.Bits{L, L, L, L}
	r.B = ls.Bits{H, L, L, L}
	if err := r.Exec(); err != nil {
		t.Fatal(err)
	}
	if r.Output.String() != "1111" || r.Borrow != H {
		t.Errorf("0000 - 0001 = %v, borrow %v", r.Output, r.Borrow)
	}
	// idempotence
	if err := r.Exec(); err != nil {
		t.Fatal(err)
	}
	if r.Output.String() != "1111" || r.Borrow != H {
		t.Errorf("second Exec: %v, borrow %v", r.Output, r.Borrow)
	}
}

func TestRippleBorrowSubtractor_Sub(t *testing.T) {
	r := arith.NewRippleBorrowSubtractor(16)
	f := func(a, b uint16) bool {
		d, bo, err := r.Sub(uint64(a), uint64(b))
		if err != nil {
			t.Fatal(err)
		}
		return d == uint64(a-b) && bo.Bool() == (b > a)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestRippleBorrowSubtractor_exhaustive(t *testing.T) {
	r := arith.NewRippleBorrowSubtractor(4)
	logictest.Compare(t, 8, func(in []ls.Signal) []ls.Signal {
		r.A, r.B = ls.Bits(in[:4]), ls.Bits(in[4:])
		if err := r.Exec(); err != nil {
			t.Fatal(err)
		}
		return append(append([]ls.Signal(nil), r.Output...), r.Borrow)
	}, func(in []ls.Signal) []ls.Signal {
		a, b := ls.Bits(in[:4]).Uint64(), ls.Bits(in[4:]).Uint64()
		return append(ls.FromUint64((a-b)&0xf, 4), ls.SignalOf(b > a))
	})
}

func TestRippleBorrowSubtractor_mismatch(t *testing.T) {
	r := arith.NewRippleBorrowSubtractor(3)
	r.A = ls.Bits{H, H}
	err := r.Exec()
	if !errors.Is(err, arith.ErrMismatchedWidth) {
		t.Fatalf("expected ErrMismatchedWidth, got %v", err)
	}
	if len(r.Output) != 3 {
		t.Errorf("Output modified: %v", r.Output)
	}
	if _, _, err = r.Sub(8, 0); err == nil {
		t.Error("expected overflow error")
	}
}
