package session

import "errors"

var (
	// ErrStale marks a result superseded by a newer submission.
	ErrStale = errors.New("session: result superseded by newer request")

	// ErrNoCurve indicates an operation that needs a curve ran without one.
	ErrNoCurve = errors.New("session: no curve selected")

	// ErrNoCoefficients indicates the state has not been computed yet.
	ErrNoCoefficients = errors.New("session: coefficients not computed")
)
