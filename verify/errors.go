package verify

import (
	"errors"
	"fmt"
)

var (
	// ErrLawViolated is the sentinel wrapped by every LawError.
	ErrLawViolated = errors.New("law violated")

	// ErrUnknownWidth is returned when a width other than 8, 16, 32, 64 or
	// 128 is requested.
	ErrUnknownWidth = errors.New("unsupported word width")
)

// LawError reports the first word for which a law does not hold.
//
// errors.Is(err, ErrLawViolated) matches every LawError.
type LawError struct {
	Law    string
	Width  int
	Input  string
	Detail string
}

func (e *LawError) Error() string {
	msg := fmt.Sprintf("%s does not hold for %d-bit words", e.Law, e.Width)
	if e.Input != "" {
		msg = fmt.Sprintf("%s does not hold for %d-bit word %s", e.Law, e.Width, e.Input)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *LawError) Unwrap() error { return ErrLawViolated }

// WidthError indicates a width that has no bitline type.
type WidthError struct {
	Width int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("unsupported word width: %d", e.Width)
}

func (e *WidthError) Unwrap() error { return ErrUnknownWidth }
