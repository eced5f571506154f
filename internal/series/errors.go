package series

import (
	"errors"
	"fmt"
)

// Domain errors for loading and resampling time series.
var (
	// ErrTimestep indicates a resampling step outside the supported range.
	ErrTimestep = errors.New("series: timestep must be an integer between 100 and 5000")

	// ErrLengthMismatch indicates source columns of different lengths.
	ErrLengthMismatch = errors.New("series: source columns differ in length")

	// ErrTooShort indicates a column with fewer than two samples.
	ErrTooShort = errors.New("series: need at least two samples to interpolate")

	// ErrEmptySpan indicates a resampling window that yields no samples.
	ErrEmptySpan = errors.New("series: span must be positive")

	// ErrIndexRange indicates a timestep index outside the dataset.
	ErrIndexRange = errors.New("series: index out of range")
)

// ParseError wraps a malformed CSV record with its location.
type ParseError struct {
	File    string
	Line    int
	Wrapped error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("series: %s:%d: %v", e.File, e.Line, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}
