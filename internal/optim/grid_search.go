// Package optim searches selection parameters for the cheapest
// approximation that meets an error target.
package optim

import (
	"context"
	"math"

	"github.com/san-kum/epicycle/internal/analysis"
	"github.com/san-kum/epicycle/internal/fourier"
)

// Candidate is one evaluated grid point.
type Candidate struct {
	Bound int
	Mode  fourier.Mode
	Terms int
	RMS   float64
}

// better orders candidates by term count, then error, then bound.
func (c Candidate) better(o Candidate) bool {
	if c.Terms != o.Terms {
		return c.Terms < o.Terms
	}
	if c.RMS != o.RMS {
		return c.RMS < o.RMS
	}
	return c.Bound < o.Bound
}

type GridSearch struct {
	bounds []int
	modes  []fourier.Mode
}

func NewGridSearch(bounds []int, modes []fourier.Mode) *GridSearch {
	return &GridSearch{bounds: bounds, modes: modes}
}

// Search evaluates every (mode, bound) pair and returns the candidate with
// the fewest terms whose RMS error is at most target. found is false when
// no pair meets the target; best is then the lowest-error candidate.
func (g *GridSearch) Search(ctx context.Context, curve fourier.Curve, set *fourier.CoefficientSet, target float64) (best Candidate, found bool, err error) {
	best.RMS = math.Inf(1)
	var closest Candidate
	closest.RMS = math.Inf(1)

	for _, mode := range g.modes {
		for _, bound := range g.bounds {
			if err := ctx.Err(); err != nil {
				return Candidate{}, false, err
			}
			chosen := fourier.Choose(set, bound, mode)
			c := Candidate{
				Bound: bound,
				Mode:  mode,
				Terms: len(chosen),
				RMS:   analysis.RMSError(curve, chosen),
			}
			if c.RMS < closest.RMS {
				closest = c
			}
			if c.RMS <= target && (!found || c.better(best)) {
				best = c
				found = true
			}
		}
	}
	if !found {
		return closest, false, nil
	}
	return best, true, nil
}
