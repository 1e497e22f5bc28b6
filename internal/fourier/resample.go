package fourier

import "sort"

const denomFloor = 1e-12

// Resample redistributes points into n samples spaced uniformly by arc
// length along the polyline. The first and last samples coincide with the
// first and last input points. Empty input, or n < 1, yields an empty curve.
func Resample(points []Point, n int) Curve {
	if len(points) == 0 || n < 1 {
		return Curve{}
	}

	d := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		d[i] = d[i-1] + points[i].Distance(points[i-1])
	}
	total := d[len(d)-1]

	out := make(Curve, n)
	for k := 0; k < n; k++ {
		frac := 0.0
		if n > 1 {
			frac = float64(k) / float64(n-1)
		}
		target := frac * total

		i := sort.Search(len(d), func(i int) bool { return d[i] >= target })
		switch {
		case i >= len(d):
			out[k] = points[len(points)-1]
		case i == 0:
			out[k] = points[0]
		default:
			denom := d[i] - d[i-1]
			if denom < denomFloor {
				denom = denomFloor
			}
			t := (target - d[i-1]) / denom
			out[k] = points[i-1].Lerp(points[i], t)
		}
	}
	// Pin the end sample; frac*total can land a few ulps short of total.
	if n > 1 {
		out[n-1] = points[len(points)-1]
	}
	return out
}
