package fourier

import "math"

// twiddles holds exact samples of e^{i*2*pi*m/n} for m in [0, n).
// Indexing by (order*j) mod n keeps every angle in [0, 2*pi), so large
// orders do not lose precision to huge arguments of Sin and Cos.
type twiddles struct {
	sin []float64
	cos []float64
	n   int
}

func newTwiddles(n int) *twiddles {
	t := &twiddles{
		sin: make([]float64, n),
		cos: make([]float64, n),
		n:   n,
	}
	for m := 0; m < n; m++ {
		t.sin[m], t.cos[m] = math.Sincos(2 * math.Pi * float64(m) / float64(n))
	}
	return t
}

// at returns sin and cos of 2*pi*k/n for any integer k.
func (t *twiddles) at(k int) (sin, cos float64) {
	m := k % t.n
	if m < 0 {
		m += t.n
	}
	return t.sin[m], t.cos[m]
}
