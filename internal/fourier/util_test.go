package fourier

import (
	"math"
	"math/rand/v2"
)

func circle(n int) Curve {
	out := make(Curve, n)
	for j := range out {
		t := 2 * math.Pi * float64(j) / float64(n)
		out[j] = Point{X: math.Cos(t), Y: math.Sin(t)}
	}
	return out
}

// square traces the unit square counterclockwise starting at (1, 0).
func square(n int) Curve {
	out := make(Curve, n)
	for j := range out {
		s := 8 * float64(j) / float64(n)
		switch {
		case s < 1:
			out[j] = Point{X: 1, Y: s}
		case s < 3:
			out[j] = Point{X: 1 - (s - 1), Y: 1}
		case s < 5:
			out[j] = Point{X: -1, Y: 1 - (s - 3)}
		case s < 7:
			out[j] = Point{X: -1 + (s - 5), Y: -1}
		default:
			out[j] = Point{X: 1, Y: -1 + (s - 7)}
		}
	}
	return out
}

func randomCurve(seed uint64, n int) Curve {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make(Curve, n)
	for i := range out {
		out[i] = Point{X: r.Float64()*10 - 3, Y: r.Float64()*4 + 7}
	}
	return out
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func nearPoint(a, b Point, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol)
}
