package fourier

import (
	"errors"
	"fmt"
)

// Domain errors for coefficient computation.
var (
	// ErrEmptyCurve indicates coefficients were requested for a curve with no samples.
	ErrEmptyCurve = errors.New("fourier: empty curve (coefficients undefined)")

	// ErrNegativeBound indicates a negative half-bandwidth K.
	ErrNegativeBound = errors.New("fourier: negative coefficient bound")

	// ErrInvalidMode indicates an unknown selection mode name.
	ErrInvalidMode = errors.New("fourier: invalid selection mode")
)

// ComputeError wraps an error with the shape of the failed request.
type ComputeError struct {
	Samples int
	K       int
	Wrapped error
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("compute coefficients (N=%d, K=%d): %v", e.Samples, e.K, e.Wrapped)
}

func (e *ComputeError) Unwrap() error {
	return e.Wrapped
}
