package fourier

import "testing"

func TestResampleEndpoints(t *testing.T) {
	in := Curve{{0, 0}, {1, 0}, {1, 0.1}, {1, 3}, {-2, 3}, {-2.5, -1}}

	for _, n := range []int{2, 3, 10, 257} {
		out := Resample(in, n)
		if len(out) != n {
			t.Fatalf("n=%d: expected %d points, got %d", n, n, len(out))
		}
		if !nearPoint(out[0], in[0], 1e-12) {
			t.Errorf("n=%d: first point %v, want %v", n, out[0], in[0])
		}
		if !nearPoint(out[n-1], in[len(in)-1], 1e-12) {
			t.Errorf("n=%d: last point %v, want %v", n, out[n-1], in[len(in)-1])
		}
	}
}

func TestResampleSingle(t *testing.T) {
	in := Curve{{2, 5}, {3, 5}, {3, 9}}
	out := Resample(in, 1)
	if len(out) != 1 || out[0] != in[0] {
		t.Errorf("expected [%v], got %v", in[0], out)
	}
}

func TestResampleUniformSpacing(t *testing.T) {
	// Irregular sampling of a straight segment of length 10.
	in := Curve{{0, 0}, {0.1, 0}, {0.2, 0}, {7, 0}, {10, 0}}
	out := Resample(in, 11)
	for k, p := range out {
		if !nearPoint(p, Point{X: float64(k)}, 1e-9) {
			t.Errorf("sample %d: got %v, want (%d, 0)", k, p, k)
		}
	}
}

func TestResampleDegenerate(t *testing.T) {
	if out := Resample(nil, 10); len(out) != 0 {
		t.Errorf("expected empty output, got %v", out)
	}
	if out := Resample(Curve{{1, 1}}, 0); len(out) != 0 {
		t.Errorf("expected empty output for n=0, got %v", out)
	}

	// Zero total length must not produce NaN.
	out := Resample(Curve{{1, 2}, {1, 2}, {1, 2}}, 5)
	for _, p := range out {
		if p != (Point{X: 1, Y: 2}) {
			t.Errorf("expected (1, 2), got %v", p)
		}
	}
}
