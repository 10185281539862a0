// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strings"

	"github.com/pkg/errors"
)

// Bits is a multi-bit signal. Bit 0 is the least significant bit.
//
type Bits []Signal

// FromUint64 returns the width lower bits of v.
//
func FromUint64(v uint64, width int) Bits {
	b := make(Bits, width)
	for bit := range b {
		if bit < 64 {
			b[bit] = SignalOf(v&(1<<uint(bit)) != 0)
		}
	}
	return b
}

// Uint64 returns b as an uint64. Bits past the 64th are ignored.
//
func (b Bits) Uint64() uint64 {
	var out uint64
	for bit := range b {
		if bit >= 64 {
			break
		}
		if b[bit] == High {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// String returns b as a string of 0 and 1, most significant bit first.
//
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == High {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParseBits parses a string of 0 and 1, most significant bit first, as
// returned by Bits.String. Underscores are ignored.
//
func ParseBits(s string) (Bits, error) {
	s = strings.Replace(s, "_", "", -1)
	b := make(Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			b[len(s)-i-1] = High
		default:
			return nil, errors.Errorf("in %q at pos %d: expected 0 or 1", s, i+1)
		}
	}
	return b, nil
}
