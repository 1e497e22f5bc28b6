package fourier

import "math"

const (
	// Margin is the length of the longer side of a normalized curve.
	Margin = 1.25

	extentFloor = 1e-9
)

// Normalize centres the points on the origin and scales them uniformly so
// that the longer side of the bounding box spans [-Margin/2, Margin/2]. Aspect
// ratio is preserved. Degenerate input (a single point, or zero extent on
// both axes) collapses onto the origin instead of dividing by zero.
func Normalize(points []Point) Curve {
	lo, hi, ok := Bounds(points)
	if !ok {
		return Curve{}
	}

	cx := (lo.X + hi.X) / 2
	cy := (lo.Y + hi.Y) / 2
	w := math.Max(extentFloor, hi.X-lo.X)
	h := math.Max(extentFloor, hi.Y-lo.Y)
	scale := math.Max(w, h)

	out := make(Curve, len(points))
	for i, p := range points {
		out[i] = Point{
			X: (p.X - cx) / scale * Margin,
			Y: (p.Y - cy) / scale * Margin,
		}
	}
	return out
}
