package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidBill gates the encoder and the layout engine: both refuse
// to run on a bill whose validation result is non-empty. This is a
// programming-contract violation, not a user-input error; callers are
// expected to check the validator first.
var ErrInvalidBill = errors.New("bill failed validation")

// ErrPayloadTooLong reports that the QR symbol generator could not fit the
// payload at the requested error-correction level.
var ErrPayloadTooLong = errors.New("payload too long for QR symbol")

// InvalidBillError wraps ErrInvalidBill together with the full validation
// result so the caller can still show every problem.
type InvalidBillError struct {
	Result ValidationResult
}

func (e *InvalidBillError) Error() string {
	return fmt.Sprintf("bill failed validation: %d violation(s)", len(e.Result.Violations))
}

func (e *InvalidBillError) Unwrap() error { return ErrInvalidBill }

// RenderOverflowError reports a text block that cannot fit its fixed slot
// on the slip at the mandated wrapping width. It is detected before any
// rendering happens; the slip is never silently truncated.
type RenderOverflowError struct {
	Section  string
	Lines    int
	MaxLines int
}

func (e *RenderOverflowError) Error() string {
	return fmt.Sprintf("section %q needs %d lines but its slot fits %d",
		e.Section, e.Lines, e.MaxLines)
}
