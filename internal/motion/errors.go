package motion

import "errors"

// Domain errors for trajectory evaluation and driving.
var (
	// ErrInvalidPoint indicates a generator produced NaN or Inf coordinates.
	ErrInvalidPoint = errors.New("motion: invalid point (NaN or Inf detected)")

	// ErrNegativeTime indicates a driver supplied a negative time increment.
	ErrNegativeTime = errors.New("motion: negative time increment")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("motion: parameter out of valid bounds")

	// ErrUnknownParam indicates a parameter name a generator does not expose.
	ErrUnknownParam = errors.New("motion: unknown parameter")

	// ErrContextCanceled indicates a run was interrupted.
	ErrContextCanceled = errors.New("motion: run canceled by context")
)

// RunError wraps an error with frame context.
type RunError struct {
	Frame   int
	Time    float64
	Point   Point
	Wrapped error
}

func (e *RunError) Error() string {
	return e.Wrapped.Error()
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
