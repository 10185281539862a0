// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strings"

	"github.com/pkg/errors"
)

// A Signal is a two-valued logic level.
//
// The zero value is Low. Any value other than High is treated as Low by
// every function in this module.
//
type Signal uint8

// Logic levels.
//
const (
	Low Signal = iota
	High
)

// SignalOf returns High if b is true, Low otherwise.
//
func SignalOf(b bool) Signal {
	if b {
		return High
	}
	return Low
}

// Bool returns true if s is High.
//
func (s Signal) Bool() bool {
	return s == High
}

// Not returns the inverse of s.
//
func (s Signal) Not() Signal {
	if s == High {
		return Low
	}
	return High
}

func (s Signal) String() string {
	if s == High {
		return "High"
	}
	return "Low"
}

// ParseSignal parses a logic level. Accepted values are (case insensitive)
// "high", "h", "1", "true" for High and "low", "l", "0", "false" for Low.
//
func ParseSignal(s string) (Signal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "h", "1", "true":
		return High, nil
	case "low", "l", "0", "false":
		return Low, nil
	}
	return Low, errors.Errorf("invalid signal %q", s)
}
