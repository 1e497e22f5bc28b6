package session

import (
	"context"

	"github.com/san-kum/epicycle/internal/fourier"
)

// State is a consistent (curve, K, coefficients) triple. Values are never
// mutated; the With* methods return modified copies.
type State struct {
	Curve      fourier.Curve
	K          int
	Set        *fourier.CoefficientSet
	Generation uint64
}

// NewState starts a session at generation 1 with no coefficients.
func NewState(curve fourier.Curve, k int) State {
	return State{Curve: curve, K: k, Generation: 1}
}

// WithCurve replaces the curve and invalidates the coefficients.
func (s State) WithCurve(curve fourier.Curve) State {
	return State{Curve: curve, K: s.K, Generation: s.Generation + 1}
}

// WithK replaces the half-bandwidth and invalidates the coefficients.
func (s State) WithK(k int) State {
	if k == s.K {
		return s
	}
	return State{Curve: s.Curve, K: k, Generation: s.Generation + 1}
}

// Computed reports whether Set belongs to the current curve and K.
func (s State) Computed() bool {
	return s.Set != nil && s.Set.K == s.K
}

// Compute returns the state with its coefficient set filled in,
// synchronously. It is a no-op when the set is already current.
func (s State) Compute(ctx context.Context) (State, error) {
	if s.Computed() {
		return s, nil
	}
	if len(s.Curve) == 0 {
		return s, ErrNoCurve
	}
	set, err := fourier.ComputeCoefficientsContext(ctx, s.Curve, s.K)
	if err != nil {
		return s, err
	}
	s.Set = set
	return s, nil
}

// AnimationChain picks the terms driving the epicycle animation. In order
// mode they are arranged for nesting (0, 1, -1, 2, -2, ...); in magnitude
// mode the strongest terms come first.
func AnimationChain(set *fourier.CoefficientSet, bound int, mode fourier.Mode) []fourier.Coefficient {
	if set == nil || bound <= 0 {
		return nil
	}
	if mode == fourier.ModeMag {
		return fourier.Choose(set, bound, fourier.ModeMag)
	}
	return fourier.EpicycleOrder(set.ByOrder, bound)
}
