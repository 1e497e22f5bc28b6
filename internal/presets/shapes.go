package presets

import (
	"math"

	"github.com/san-kum/epicycle/internal/fourier"
)

// Generator returns exactly n samples tracing one period of a shape.
type Generator func(n int) fourier.Curve

func sample(n int, fn func(t float64) fourier.Point) fourier.Curve {
	if n < 1 {
		return fourier.Curve{}
	}
	out := make(fourier.Curve, n)
	for j := range out {
		out[j] = fn(2 * math.Pi * float64(j) / float64(n))
	}
	return out
}

// Heart is the classic parametric heart, scaled by 1/20.
func Heart(n int) fourier.Curve {
	return sample(n, func(t float64) fourier.Point {
		s := math.Sin(t)
		x := 16 * s * s * s
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		return fourier.Pt(x/20, y/20)
	})
}

// Flower is a five-petal rose r = 0.6 + 0.4*cos(5t).
func Flower(n int) fourier.Curve {
	return sample(n, func(t float64) fourier.Point {
		r := 0.6 + 0.4*math.Cos(5*t)
		return fourier.Pt(r*math.Cos(t), r*math.Sin(t))
	})
}

// Spiral winds twice outward from r=0.05 to r=0.95. It is open: the last
// sample lands on the outer end, so the implicit closing jump is visible in
// low-order approximations.
func Spiral(n int) fourier.Curve {
	if n < 1 {
		return fourier.Curve{}
	}
	out := make(fourier.Curve, n)
	for j := range out {
		f := 0.0
		if n > 1 {
			f = float64(j) / float64(n-1)
		}
		t := f * 4 * math.Pi
		r := 0.05 + 0.9*f
		out[j] = fourier.Pt(r*math.Cos(t), r*math.Sin(t))
	}
	return out
}

// Circle is the unit circle, counterclockwise from (1, 0).
func Circle(n int) fourier.Curve {
	return sample(n, func(t float64) fourier.Point {
		return fourier.Pt(math.Cos(t), math.Sin(t))
	})
}

// Square walks the perimeter of [-1, 1]^2 counterclockwise from (1, 0)
// at constant speed.
func Square(n int) fourier.Curve {
	return sample(n, func(t float64) fourier.Point {
		s := 8 * t / (2 * math.Pi)
		switch {
		case s < 1:
			return fourier.Pt(1, s)
		case s < 3:
			return fourier.Pt(2-s, 1)
		case s < 5:
			return fourier.Pt(-1, 4-s)
		case s < 7:
			return fourier.Pt(s-6, -1)
		default:
			return fourier.Pt(1, s-8)
		}
	})
}

// Lissajous is the 3:2 figure with a quarter-period phase offset.
func Lissajous(n int) fourier.Curve {
	return sample(n, func(t float64) fourier.Point {
		return fourier.Pt(math.Sin(3*t+math.Pi/2), math.Sin(2*t))
	})
}

// Star is a five-pointed star outline with alternating outer and inner
// vertices joined by straight edges.
func Star(n int) fourier.Curve {
	const points = 5
	vertices := make([]fourier.Point, 2*points)
	for i := range vertices {
		r := 1.0
		if i%2 == 1 {
			r = 0.4
		}
		a := math.Pi/2 + float64(i)*math.Pi/points
		vertices[i] = fourier.Pt(r*math.Cos(a), r*math.Sin(a))
	}
	return sample(n, func(t float64) fourier.Point {
		s := t / (2 * math.Pi) * float64(len(vertices))
		i := int(s)
		if i >= len(vertices) {
			i = len(vertices) - 1
		}
		return vertices[i].Lerp(vertices[(i+1)%len(vertices)], s-float64(i))
	})
}
