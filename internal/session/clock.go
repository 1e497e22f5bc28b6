package session

import (
	"time"

	"github.com/san-kum/epicycle/internal/fourier"
)

// Clock converts wall time into a looping phase.
type Clock struct {
	Start  time.Time
	Period time.Duration
}

func NewClock(start time.Time, period time.Duration) Clock {
	if period <= 0 {
		period = time.Second
	}
	return Clock{Start: start, Period: period}
}

// Phase returns ((now-start) mod period) / period, in [0, 1).
func (c Clock) Phase(now time.Time) float64 {
	elapsed := now.Sub(c.Start)
	if elapsed < 0 {
		elapsed = 0
	}
	return float64(elapsed%c.Period) / float64(c.Period)
}

// Tail is a bounded history of traced points, oldest first.
type Tail struct {
	points []fourier.Point
	start  int
	size   int
}

func NewTail(capacity int) *Tail {
	if capacity < 0 {
		capacity = 0
	}
	return &Tail{points: make([]fourier.Point, capacity)}
}

// Push appends p, dropping the oldest point when full.
func (t *Tail) Push(p fourier.Point) {
	if len(t.points) == 0 {
		return
	}
	if t.size < len(t.points) {
		t.points[(t.start+t.size)%len(t.points)] = p
		t.size++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % len(t.points)
}

func (t *Tail) Len() int { return t.size }

func (t *Tail) Reset() {
	t.start, t.size = 0, 0
}

// Points returns a copy of the history, oldest first.
func (t *Tail) Points() fourier.Curve {
	out := make(fourier.Curve, t.size)
	for i := range out {
		out[i] = t.points[(t.start+i)%len(t.points)]
	}
	return out
}
