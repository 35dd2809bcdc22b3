// SPDX-License-Identifier: MIT
//
// File: polarity.go
// Role: the two-valued edge sign and its text encoding.
// Policy:
//   - Exactly two tokens exist on the wire: "+" (Positive) and "-" (Negative).
//   - The zero Polarity is invalid; "no edge" is expressed by an ok=false result, never by a polarity.

package core

import "fmt"

// Polarity is the sign of an edge.
type Polarity uint8

const (
	// Positive marks a friendly relation ("+").
	Positive Polarity = iota + 1

	// Negative marks an antagonistic relation ("-").
	Negative
)

const (
	positiveToken = "+"
	negativeToken = "-"
)

// IsValid reports whether p is Positive or Negative.
func (p Polarity) IsValid() bool {
	return p == Positive || p == Negative
}

// Flip returns the opposite polarity. Invalid values are returned unchanged.
func (p Polarity) Flip() Polarity {
	switch p {
	case Positive:
		return Negative
	case Negative:
		return Positive
	default:
		return p
	}
}

// String returns "+" or "-", and "?" for an invalid value.
func (p Polarity) String() string {
	switch p {
	case Positive:
		return positiveToken
	case Negative:
		return negativeToken
	default:
		return "?"
	}
}

// ParsePolarity maps "+" to Positive and "-" to Negative.
// Any other input returns ErrBadPolarity.
func ParsePolarity(s string) (Polarity, error) {
	switch s {
	case positiveToken:
		return Positive, nil
	case negativeToken:
		return Negative, nil
	default:
		return 0, fmt.Errorf("ParsePolarity(%q): %w", s, ErrBadPolarity)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Polarity) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", uint8(p), ErrBadPolarity)
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Polarity) UnmarshalText(text []byte) error {
	parsed, err := ParsePolarity(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}
