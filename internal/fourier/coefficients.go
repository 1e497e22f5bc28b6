package fourier

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
)

// parallelThreshold is the N*(2K+1) workload above which orders are split
// across goroutines.
const parallelThreshold = 1 << 16

// ComputeCoefficients computes c_n = (1/N) * sum_j z_j * e^{-i*2*pi*n*j/N}
// for every n in [-k, k], treating each point as z_j = x_j + i*y_j.
//
// The curve must hold at least one sample; coefficients of an empty signal
// are undefined and the call fails with ErrEmptyCurve.
func ComputeCoefficients(points []Point, k int) (*CoefficientSet, error) {
	return ComputeCoefficientsContext(context.Background(), points, k)
}

// ComputeCoefficientsContext is ComputeCoefficients with cancellation. The
// context is checked once per order, so a cancelled request stops after at
// most one O(N) inner sum per worker.
func ComputeCoefficientsContext(ctx context.Context, points []Point, k int) (*CoefficientSet, error) {
	n := len(points)
	if n == 0 {
		return nil, &ComputeError{Samples: n, K: k, Wrapped: ErrEmptyCurve}
	}
	if k < 0 {
		return nil, &ComputeError{Samples: n, K: k, Wrapped: ErrNegativeBound}
	}

	count := 2*k + 1
	Logger().Debug("computing coefficients",
		slog.Int("samples", n),
		slog.Int("k", k),
		slog.Int("work", n*count))

	tw := newTwiddles(n)
	inv := 1 / float64(n)
	byOrder := make([]Coefficient, count)

	minChunk := parallelThreshold / n
	if minChunk < 1 {
		minChunk = 1
	}

	parallelFor(count, minChunk, func(start, end int) {
		for idx := start; idx < end; idx++ {
			if ctx.Err() != nil {
				return
			}
			order := idx - k
			var re, im float64
			for j, p := range points {
				// e^{-i*theta} = cos(theta) - i*sin(theta)
				sin, cos := tw.at(order * j)
				re += p.X*cos + p.Y*sin
				im += p.Y*cos - p.X*sin
			}
			byOrder[idx] = Coefficient{N: order, Re: re * inv, Im: im * inv}
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return NewCoefficientSet(k, byOrder), nil
}

// NewCoefficientSet builds both views from terms for orders -k..k listed
// in ascending order. The slice is owned by the returned set.
func NewCoefficientSet(k int, byOrder []Coefficient) *CoefficientSet {
	byMag := slices.Clone(byOrder)
	slices.SortStableFunc(byMag, compareMag)
	return &CoefficientSet{K: k, ByOrder: byOrder, ByMag: byMag}
}

// compareMag orders by descending magnitude, ties by ascending order.
func compareMag(a, b Coefficient) int {
	if c := cmp.Compare(b.Mag(), a.Mag()); c != 0 {
		return c
	}
	return cmp.Compare(a.N, b.N)
}
