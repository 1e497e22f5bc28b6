package fourier

import (
	"math"
	"testing"
)

func TestEvaluateCurve(t *testing.T) {
	chosen := []Coefficient{{N: 1, Re: 1}}
	out := EvaluateCurve(chosen, 5)
	want := Curve{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 0}}
	for i := range want {
		if !nearPoint(out[i], want[i], 1e-12) {
			t.Errorf("sample %d: got %v, want %v", i, out[i], want[i])
		}
	}

	single := EvaluateCurve(chosen, 1)
	if len(single) != 1 || !nearPoint(single[0], Point{X: 1}, 1e-12) {
		t.Errorf("single sample should sit at t=0, got %v", single)
	}
}

func TestEvaluateCurveEmptySelection(t *testing.T) {
	out := EvaluateCurve(nil, 4)
	if len(out) != 4 {
		t.Fatalf("expected 4 points, got %d", len(out))
	}
	for _, p := range out {
		if p != (Point{}) {
			t.Errorf("expected origin, got %v", p)
		}
	}
	if out := EvaluateCurve(nil, 0); len(out) != 0 {
		t.Errorf("expected no points, got %d", len(out))
	}
}

func TestEvaluateCurveOrderIndependent(t *testing.T) {
	set, err := ComputeCoefficients(randomCurve(2, 40), 5)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	a := EvaluateCurve(Choose(set, 5, ModeOrder), 33)
	b := EvaluateCurve(set.ByMag, 33)
	for i := range a {
		if !nearPoint(a[i], b[i], 1e-12) {
			t.Errorf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestEpicycleOrder(t *testing.T) {
	set, err := ComputeCoefficients(circle(32), 4)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	got := EpicycleOrder(set.ByOrder, 3)
	want := []int{0, 1, -1, 2, -2, 3, -3}
	if len(got) != len(want) {
		t.Fatalf("expected %d terms, got %d", len(want), len(got))
	}
	for i, c := range got {
		if c.N != want[i] {
			t.Errorf("position %d: n=%d, want %d", i, c.N, want[i])
		}
	}
}

func TestEpicycleOrderSkipsAbsent(t *testing.T) {
	sparse := []Coefficient{{N: -2}, {N: 1}, {N: 2}, {N: 5}}
	got := EpicycleOrder(sparse, 3)
	want := []int{1, 2, -2}
	if len(got) != len(want) {
		t.Fatalf("expected %d terms, got %d", len(want), len(got))
	}
	for i, c := range got {
		if c.N != want[i] {
			t.Errorf("position %d: n=%d, want %d", i, c.N, want[i])
		}
	}
}

func TestEvaluateFrame(t *testing.T) {
	chosen := []Coefficient{
		{N: 1, Re: 1},
		{N: 0, Re: 0.5, Im: -0.25},
		{N: -1, Re: 0, Im: 0.5},
	}

	frame := EvaluateFrame(chosen, 0.25, 0)
	if len(frame.Chain) != 2 {
		t.Fatalf("expected 2 links, got %d", len(frame.Chain))
	}

	dc := Point{X: 0.5, Y: -0.25}
	if frame.Chain[0].From != dc {
		t.Errorf("chain should start at the DC offset, got %v", frame.Chain[0].From)
	}
	if frame.Chain[0].N != 1 || frame.Chain[1].N != -1 {
		t.Errorf("chain order not preserved: %d, %d", frame.Chain[0].N, frame.Chain[1].N)
	}
	if frame.Chain[0].To != frame.Chain[1].From {
		t.Error("links are not connected")
	}
	if !near(frame.Chain[1].Radius, 0.5, 1e-12) {
		t.Errorf("expected radius 0.5, got %g", frame.Chain[1].Radius)
	}

	want := EvaluateAt(chosen, 0.25)
	if !nearPoint(frame.Point, want, 1e-12) {
		t.Errorf("frame point %v, want partial sum %v", frame.Point, want)
	}
	if !nearPoint(frame.Chain[1].To, frame.Point, 1e-12) {
		t.Error("uncapped chain should end at the traced point")
	}
}

func TestEvaluateFrameChainCap(t *testing.T) {
	set, err := ComputeCoefficients(randomCurve(4, 25), 6)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	chosen := EpicycleOrder(set.ByOrder, 6)

	full := EvaluateFrame(chosen, 0.3, 0)
	capped := EvaluateFrame(chosen, 0.3, 3)
	if len(full.Chain) != 12 {
		t.Errorf("expected 12 links, got %d", len(full.Chain))
	}
	if len(capped.Chain) != 3 {
		t.Fatalf("expected 3 links, got %d", len(capped.Chain))
	}
	if capped.Point != capped.Chain[2].To {
		t.Errorf("capped tip %v should sit at the chain end %v", capped.Point, capped.Chain[2].To)
	}
	if !nearPoint(full.Point, EvaluateAt(chosen, 0.3), 1e-12) {
		t.Errorf("uncapped tip %v should be the full sum", full.Point)
	}
	for i := range capped.Chain {
		if capped.Chain[i] != full.Chain[i] {
			t.Errorf("link %d differs", i)
		}
	}

	if over := EvaluateFrame(chosen, 0.3, 99); len(over.Chain) != 12 {
		t.Errorf("cap above chain length should keep all links, got %d", len(over.Chain))
	}
}

func TestEvaluateFrameCapSkipsDC(t *testing.T) {
	chosen := []Coefficient{
		{N: 0, Re: 0.1},
		{N: 1, Re: 1},
		{N: -1, Re: 0.5},
		{N: 2, Im: 0.25},
	}
	frame := EvaluateFrame(chosen, 0.3, 1)
	if len(frame.Chain) != 1 || frame.Chain[0].N != 1 {
		t.Fatalf("expected only the n=1 link, got %+v", frame.Chain)
	}
	if frame.Chain[0].From != (Point{X: 0.1}) {
		t.Errorf("chain should start at the DC offset, got %v", frame.Chain[0].From)
	}
	want := Point{X: 0.1}.Add(chosen[1].Rotate(0.3))
	if !nearPoint(frame.Point, want, 1e-12) || frame.Point != frame.Chain[0].To {
		t.Errorf("expected tip %v at chain end, got %v", want, frame.Point)
	}
}

func TestEvaluateFrameEmpty(t *testing.T) {
	frame := EvaluateFrame(nil, 0.7, 0)
	if frame.Point != (Point{}) || len(frame.Chain) != 0 {
		t.Errorf("expected origin with no links, got %+v", frame)
	}

	dcOnly := EvaluateFrame([]Coefficient{{N: 0, Re: 2, Im: 3}}, 0.7, 0)
	if dcOnly.Point != (Point{X: 2, Y: 3}) || len(dcOnly.Chain) != 0 {
		t.Errorf("DC-only frame should be a stationary offset, got %+v", dcOnly)
	}
}

func TestCoefficientRotate(t *testing.T) {
	c := Coefficient{N: 2, Re: 1, Im: 1}
	got := c.Rotate(0.125)
	// e^{i*pi/2} * (1+i) = -1 + i
	if !nearPoint(got, Point{X: -1, Y: 1}, 1e-12) {
		t.Errorf("got %v, want (-1, 1)", got)
	}
	if !near(c.Mag(), math.Sqrt2, 1e-12) {
		t.Errorf("got |c|=%g, want sqrt(2)", c.Mag())
	}
}
