package fourier

// EvaluateAt sums the chosen terms at phase t in [0, 1].
func EvaluateAt(chosen []Coefficient, t float64) Point {
	var p Point
	for _, c := range chosen {
		p = p.Add(c.Rotate(t))
	}
	return p
}

// EvaluateCurve samples the partial sum of chosen at sampleCount phases
// t = s/(sampleCount-1), so the first and last samples both sit at the
// start of the period. An empty selection yields points at the origin.
func EvaluateCurve(chosen []Coefficient, sampleCount int) Curve {
	if sampleCount < 1 {
		return Curve{}
	}

	out := make(Curve, sampleCount)
	for s := range out {
		t := 0.0
		if sampleCount > 1 {
			t = float64(s) / float64(sampleCount-1)
		}
		out[s] = EvaluateAt(chosen, t)
	}
	return out
}

// EpicycleOrder arranges terms for drawing nested circles: the n=0 term
// first, then n=1, -1, 2, -2, ... up to bound, skipping absent orders.
func EpicycleOrder(byOrder []Coefficient, bound int) []Coefficient {
	index := make(map[int]Coefficient, len(byOrder))
	for _, c := range byOrder {
		index[c.N] = c
	}

	seq := make([]Coefficient, 0, 2*bound+1)
	if c, ok := index[0]; ok {
		seq = append(seq, c)
	}
	for k := 1; k <= bound; k++ {
		if c, ok := index[k]; ok {
			seq = append(seq, c)
		}
		if c, ok := index[-k]; ok {
			seq = append(seq, c)
		}
	}
	return seq
}

// EvaluateFrame evaluates the epicycle chain at phase t.
//
// The n=0 term, wherever it appears in chosen, is applied first as a fixed
// offset and is not drawn. The remaining terms are rotated and chained in
// the order given. chainCap keeps only the first chainCap of them; zero or
// less keeps all. Point is the end of the kept chain, so with a cap it is
// not the traced curve point; use EvaluateAt for that.
func EvaluateFrame(chosen []Coefficient, t float64, chainCap int) EpicycleFrame {
	var pos Point
	rotating := 0
	for _, c := range chosen {
		if c.N == 0 {
			pos = pos.Add(Point{X: c.Re, Y: c.Im})
		} else {
			rotating++
		}
	}
	if chainCap <= 0 || chainCap > rotating {
		chainCap = rotating
	}

	frame := EpicycleFrame{T: t, Chain: make([]Link, 0, chainCap)}
	for _, c := range chosen {
		if c.N == 0 {
			continue
		}
		if len(frame.Chain) == chainCap {
			break
		}
		next := pos.Add(c.Rotate(t))
		frame.Chain = append(frame.Chain, Link{
			N:      c.N,
			From:   pos,
			To:     next,
			Radius: c.Mag(),
		})
		pos = next
	}
	frame.Point = pos
	return frame
}
