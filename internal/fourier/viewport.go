package fourier

import "math"

// viewportFill is the fraction of the half-extent a reference set may
// occupy, leaving a 10% margin on the limiting axis.
const viewportFill = 0.45

// Viewport maps normalized coordinates into a pixel rectangle whose rows
// grow downward.
type Viewport struct {
	Width  float64
	Height float64
	CX     float64
	CY     float64
	Scale  float64
}

// BuildTransform fits ref into a width x height rectangle with a uniform,
// aspect-preserving scale. With no reference points the origin is centred
// and the scale is min(width, height)*0.45.
func BuildTransform(width, height float64, ref []Point) Viewport {
	v := Viewport{Width: width, Height: height}

	lo, hi, ok := Bounds(ref)
	if !ok {
		v.Scale = math.Min(width, height) * viewportFill
		return v
	}

	v.CX = (lo.X + hi.X) / 2
	v.CY = (lo.Y + hi.Y) / 2
	w := math.Max(extentFloor, hi.X-lo.X)
	h := math.Max(extentFloor, hi.Y-lo.Y)
	v.Scale = math.Min(width/w, height/h) * viewportFill
	return v
}

// ToPixel maps p into pixel space, flipping y.
func (v Viewport) ToPixel(p Point) Point {
	return Point{
		X: v.Width/2 + (p.X-v.CX)*v.Scale,
		Y: v.Height/2 - (p.Y-v.CY)*v.Scale,
	}
}

// Length converts a distance in curve units to pixels.
func (v Viewport) Length(d float64) float64 {
	return d * v.Scale
}
