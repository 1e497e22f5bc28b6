package fourier

import (
	"context"
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestComputeCoefficientsRoundTrip(t *testing.T) {
	for _, n := range []int{1, 5, 63, 101} {
		curve := randomCurve(uint64(n), n)
		set, err := ComputeCoefficients(curve, n/2)
		if err != nil {
			t.Fatalf("N=%d: compute failed: %v", n, err)
		}

		for j, want := range curve {
			got := EvaluateAt(set.ByOrder, float64(j)/float64(n))
			if !nearPoint(got, want, 1e-9) {
				t.Errorf("N=%d sample %d: got %v, want %v", n, j, got, want)
			}
		}
	}
}

func TestComputeCoefficientsMatchesNaiveSum(t *testing.T) {
	curve := randomCurve(3, 40)
	set, err := ComputeCoefficients(curve, 12)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	for _, c := range set.ByOrder {
		var sum complex128
		for j, p := range curve {
			angle := -2 * math.Pi * float64(c.N) * float64(j) / float64(len(curve))
			sum += complex(p.X, p.Y) * cmplx.Exp(complex(0, angle))
		}
		sum /= complex(float64(len(curve)), 0)
		if !near(real(sum), c.Re, 1e-9) || !near(imag(sum), c.Im, 1e-9) {
			t.Errorf("n=%d: got (%g, %g), want (%g, %g)", c.N, c.Re, c.Im, real(sum), imag(sum))
		}
	}
}

func TestComputeCoefficientsViews(t *testing.T) {
	const k = 9
	set, err := ComputeCoefficients(square(64), k)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	if len(set.ByOrder) != 2*k+1 || len(set.ByMag) != 2*k+1 {
		t.Fatalf("expected %d coefficients, got %d/%d", 2*k+1, len(set.ByOrder), len(set.ByMag))
	}

	seen := make(map[int]Coefficient)
	for i, c := range set.ByOrder {
		if c.N != i-k {
			t.Errorf("ByOrder[%d].N = %d, want %d", i, c.N, i-k)
		}
		seen[c.N] = c
	}

	for i, c := range set.ByMag {
		if seen[c.N] != c {
			t.Errorf("ByMag entry %v not in ByOrder", c)
		}
		delete(seen, c.N)
		if i == 0 {
			continue
		}
		prev := set.ByMag[i-1]
		if prev.Mag() < c.Mag() {
			t.Errorf("ByMag not descending at %d: %g < %g", i, prev.Mag(), c.Mag())
		}
		if prev.Mag() == c.Mag() && prev.N > c.N {
			t.Errorf("tie at %d not broken by ascending n: %d before %d", i, prev.N, c.N)
		}
	}
	if len(seen) != 0 {
		t.Errorf("ByMag missing orders: %v", seen)
	}
}

func TestComputeCoefficientsTieBreak(t *testing.T) {
	// With a single sample every c_n equals z, so all magnitudes tie.
	set, err := ComputeCoefficients(Curve{{1, 0}}, 3)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	want := []int{-3, -2, -1, 0, 1, 2, 3}
	for i, c := range set.ByMag {
		if c.N != want[i] {
			t.Errorf("ByMag[%d].N = %d, want %d", i, c.N, want[i])
		}
	}
}

func TestComputeCoefficientsCircle(t *testing.T) {
	set, err := ComputeCoefficients(circle(64), 8)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	dc, ok := set.Lookup(0)
	if !ok {
		t.Fatal("missing n=0 term")
	}
	if dc.Mag() > 1e-12 {
		t.Errorf("centred circle should have |c_0| ~ 0, got %g", dc.Mag())
	}
	if top := set.ByMag[0]; top.N != 1 || !near(top.Mag(), 1, 1e-12) {
		t.Errorf("expected top term n=1 with |c|=1, got %+v", top)
	}
}

func TestComputeCoefficientsSquare(t *testing.T) {
	curve := square(64)
	set, err := ComputeCoefficients(curve, 8)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	var centroid Point
	for _, p := range curve {
		centroid = centroid.Add(p)
	}
	dist := math.Hypot(centroid.X, centroid.Y) / float64(len(curve))

	dc, _ := set.Lookup(0)
	if !near(dc.Mag(), dist, 1e-12) {
		t.Errorf("|c_0| = %g, want centroid distance %g", dc.Mag(), dist)
	}
	if top := set.ByMag[0]; abs(top.N) != 1 {
		t.Errorf("expected |n|=1 on top, got n=%d", top.N)
	}
}

func TestComputeCoefficientsLargeMatchesSmall(t *testing.T) {
	// Large enough to take the parallel path.
	curve := randomCurve(11, 4096)
	big, err := ComputeCoefficients(curve, 40)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	small, err := ComputeCoefficients(curve, 3)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	for _, c := range small.ByOrder {
		b, _ := big.Lookup(c.N)
		if b != c {
			t.Errorf("n=%d differs: %+v vs %+v", c.N, b, c)
		}
	}
}

func TestComputeCoefficientsErrors(t *testing.T) {
	_, err := ComputeCoefficients(nil, 3)
	if !errors.Is(err, ErrEmptyCurve) {
		t.Errorf("expected ErrEmptyCurve, got %v", err)
	}
	var ce *ComputeError
	if !errors.As(err, &ce) || ce.Samples != 0 || ce.K != 3 {
		t.Errorf("expected ComputeError with request shape, got %#v", err)
	}

	_, err = ComputeCoefficients(circle(8), -1)
	if !errors.Is(err, ErrNegativeBound) {
		t.Errorf("expected ErrNegativeBound, got %v", err)
	}
}

func TestComputeCoefficientsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	set, err := ComputeCoefficientsContext(ctx, circle(128), 10)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if set != nil {
		t.Error("expected nil set on cancellation")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
