package shorthand

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRounding = errors.New("malformed rounding directive")
	ErrInvalidUnit       = errors.New("invalid unit")
	ErrInvalidTarget     = errors.New("invalid rounding target")
	ErrRangeExceeded     = errors.New("offset out of range")
	ErrUnknownTimezone   = errors.New("unknown timezone")
)

// RangeError reports an offset magnitude outside the supported span for its
// unit. Bounds are exclusive.
type RangeError struct {
	Unit  Unit
	Value int64
	Min   int64
	Max   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %d %s not in (%d, %d)", ErrRangeExceeded, e.Value, e.Unit, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrRangeExceeded
}
