package session

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/epicycle/internal/fourier"
)

// BuildPartials evaluates one partial-sum curve per bound, concurrently.
// The output order matches bounds.
func BuildPartials(ctx context.Context, set *fourier.CoefficientSet, bounds []int, mode fourier.Mode, samples int) ([]fourier.PartialCurve, error) {
	if set == nil {
		return nil, ErrNoCoefficients
	}

	partials := make([]fourier.PartialCurve, len(bounds))
	g, ctx := errgroup.WithContext(ctx)
	for i, b := range bounds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			chosen := fourier.Choose(set, b, mode)
			partials[i] = fourier.PartialCurve{
				Bound:  &b,
				Mode:   mode,
				Points: fourier.EvaluateCurve(chosen, samples),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}
