package automation

import (
	"errors"
	"fmt"

	"github.com/san-kum/epicycle/internal/fourier"
	"github.com/san-kum/epicycle/internal/presets"
	"github.com/san-kum/epicycle/internal/store"
)

// MinFreehandPoints is the smallest capture accepted as a curve.
const MinFreehandPoints = 6

var ErrTooFewPoints = errors.New("automation: too few points in capture")

// Source names where a curve comes from: a points file when Points is
// set, otherwise a preset shape.
type Source struct {
	Shape  string
	Points string
}

func (s Source) Name() string {
	if s.Points != "" {
		return s.Points
	}
	return s.Shape
}

// Curve produces the normalised n-point curve for the source. Captures
// are resampled by arc length before normalising.
func (s Source) Curve(registry *presets.Registry, n int) (fourier.Curve, error) {
	if s.Points != "" {
		raw, err := store.ReadPoints(s.Points)
		if err != nil {
			return nil, err
		}
		if len(raw) < MinFreehandPoints {
			return nil, fmt.Errorf("%w: %d < %d", ErrTooFewPoints, len(raw), MinFreehandPoints)
		}
		return fourier.Normalize(fourier.Resample(raw, n)), nil
	}
	gen, err := registry.Get(s.Shape)
	if err != nil {
		return nil, err
	}
	return fourier.Normalize(gen(n)), nil
}
