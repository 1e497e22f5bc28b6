package fourier

import (
	"fmt"
	"math"
)

// Point is a planar coordinate.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Lerp linearly interpolates between p and o.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: p.X*(1-t) + o.X*t,
		Y: p.Y*(1-t) + o.Y*t,
	}
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Curve is an ordered, implicitly closed sequence of samples: sample 0
// follows sample len-1 when the curve is evaluated periodically.
type Curve []Point

func (c Curve) Clone() Curve {
	out := make(Curve, len(c))
	copy(out, c)
	return out
}

// Bounds returns the axis-aligned bounding box of the points. ok is false
// for an empty input.
func Bounds(points []Point) (lo, hi Point, ok bool) {
	if len(points) == 0 {
		return Point{}, Point{}, false
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi, true
}

// Coefficient is one term c_n of the series.
type Coefficient struct {
	N  int
	Re float64
	Im float64
}

// Mag returns |c_n|.
func (c Coefficient) Mag() float64 {
	return math.Hypot(c.Re, c.Im)
}

// Rotate returns c_n * e^{i*2*pi*n*t} as a displacement.
func (c Coefficient) Rotate(t float64) Point {
	sin, cos := math.Sincos(2 * math.Pi * float64(c.N) * t)
	return Point{
		X: c.Re*cos - c.Im*sin,
		Y: c.Re*sin + c.Im*cos,
	}
}

// CoefficientSet holds the coefficients for orders -K..K in two read-only
// views over the same 2K+1 terms.
type CoefficientSet struct {
	K int
	// ByOrder is sorted by ascending N.
	ByOrder []Coefficient
	// ByMag is sorted by descending magnitude, ties by ascending N.
	ByMag []Coefficient
}

// Len returns the number of coefficients in the set.
func (s *CoefficientSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ByOrder)
}

// Lookup returns the coefficient of order n.
func (s *CoefficientSet) Lookup(n int) (Coefficient, bool) {
	if s == nil || n < -s.K || n > s.K {
		return Coefficient{}, false
	}
	c := s.ByOrder[n+s.K]
	return c, c.N == n
}

// Mode selects how a bound picks coefficients out of a set.
type Mode string

const (
	// ModeOrder keeps every term with |n| <= bound.
	ModeOrder Mode = "order"
	// ModeMag keeps the bound highest-magnitude terms.
	ModeMag Mode = "mag"
)

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeOrder:
		return ModeOrder, nil
	case ModeMag:
		return ModeMag, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// PartialCurve is a rendered partial sum. Bound is nil when the curve was
// evaluated from an explicit coefficient list.
type PartialCurve struct {
	Bound  *int
	Mode   Mode
	Points Curve
}

// Label returns a legend string such as "M=10 (order)".
func (pc PartialCurve) Label() string {
	if pc.Bound == nil {
		return fmt.Sprintf("custom (%s)", pc.Mode)
	}
	return fmt.Sprintf("M=%d (%s)", *pc.Bound, pc.Mode)
}

// Link is one rotating vector of an epicycle chain: a circle of Radius
// centred at From whose radial line ends at To.
type Link struct {
	N      int
	From   Point
	To     Point
	Radius float64
}

// EpicycleFrame is the state of the chain at one phase.
type EpicycleFrame struct {
	T     float64
	Point Point
	Chain []Link
}
