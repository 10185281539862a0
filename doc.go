/*
Package logicsim provides the primitives of a combinational logic simulator:
two-valued signals, the seven standard logic functions and gates.

Gates are composed into adders and subtractors by package arith. A circuit is
built once, then its inputs are set and it is evaluated with Exec as many
times as needed. Evaluation is synchronous and deterministic: there is no
clock, no propagation delay and no feedback.

	g := logicsim.NewGate(logicsim.XOR)
	g.Exec(logicsim.High, logicsim.Low)
	fmt.Println(g.Output()) // High

Multi-bit values are represented as Bits, least significant bit first.

*/
package logicsim
