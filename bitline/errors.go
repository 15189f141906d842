package bitline

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a bit string has no digits.
	ErrEmpty = errors.New("no binary digits")

	// ErrInvalidDigit is returned for characters other than '0', '1' and '_'.
	ErrInvalidDigit = errors.New("invalid binary digit")

	// ErrOverflow is returned when a bit string sets a bit beyond the word width.
	ErrOverflow = errors.New("value exceeds word width")
)

// ParseError describes a bit string that could not be parsed.
//
// The underlying sentinel can be matched with errors.Is.
type ParseError struct {
	Input  string
	Offset int
	Width  int
	cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q as %d-bit line: offset %d: %v", e.Input, e.Width, e.Offset, e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }
