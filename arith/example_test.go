package arith_test

import (
	"fmt"

	ls "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/arith"
)

func ExampleRippleCarryAdder() {
	rca := arith.NewRippleCarryAdder(4)
	rca.A = ls.Bits{ls.Low, ls.High, ls.Low, ls.High}
	rca.B = ls.Bits{ls.Low, ls.High, ls.Low, ls.Low}
	if err := rca.Exec(); err != nil {
		panic(err)
	}
	fmt.Printf("%v + %v = %v, carry %v\n", rca.A, rca.B, rca.Output, rca.Carry)
	fmt.Println([]ls.Signal(rca.Output))

	// Output:
	// 1010 + 0010 = 1100, carry Low
	// [Low Low High High]
}

func ExampleRippleBorrowSubtractor_Sub() {
	rbs := arith.NewRippleBorrowSubtractor(8)
	d, borrow, err := rbs.Sub(3, 5)
	if err != nil {
		panic(err)
	}
	fmt.Println(d, borrow, rbs.Output)

	// Output:
	// 254 High 11111110
}
