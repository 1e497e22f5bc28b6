package fourier

// Choose extracts a subset of coefficients from set.
//
// In ModeOrder it returns every term with |n| <= bound in ascending order
// of n. In ModeMag it returns the first bound terms of ByMag, or the whole
// set when bound exceeds its size. A bound of zero or less selects nothing.
func Choose(set *CoefficientSet, bound int, mode Mode) []Coefficient {
	if set == nil || bound <= 0 {
		return []Coefficient{}
	}

	if mode == ModeMag {
		if bound > len(set.ByMag) {
			bound = len(set.ByMag)
		}
		out := make([]Coefficient, bound)
		copy(out, set.ByMag[:bound])
		return out
	}

	out := make([]Coefficient, 0, 2*min(bound, set.K)+1)
	for _, c := range set.ByOrder {
		if c.N >= -bound && c.N <= bound {
			out = append(out, c)
		}
	}
	return out
}
