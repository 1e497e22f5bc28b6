package analysis

import (
	"math"

	"github.com/san-kum/epicycle/internal/fourier"
)

// Magnitudes returns |c_n| for every term of the set in ascending order of n.
func Magnitudes(set *fourier.CoefficientSet) []float64 {
	if set == nil {
		return nil
	}
	out := make([]float64, len(set.ByOrder))
	for i, c := range set.ByOrder {
		out[i] = c.Mag()
	}
	return out
}

func power(cs []fourier.Coefficient) float64 {
	sum := 0.0
	for _, c := range cs {
		sum += c.Re*c.Re + c.Im*c.Im
	}
	return sum
}

// EnergyCaptured returns the fraction of sum |c_n|^2 over the whole set
// kept by the selection. An all-zero set counts as fully captured.
func EnergyCaptured(set *fourier.CoefficientSet, bound int, mode fourier.Mode) float64 {
	total := power(set.ByOrder)
	if total == 0 {
		return 1
	}
	return power(fourier.Choose(set, bound, mode)) / total
}

// RMSError is the root-mean-square distance between each sample of curve
// and the partial sum of chosen at that sample's phase j/N.
func RMSError(curve fourier.Curve, chosen []fourier.Coefficient) float64 {
	if len(curve) == 0 {
		return 0
	}
	n := float64(len(curve))
	sum := 0.0
	for j, p := range curve {
		q := fourier.EvaluateAt(chosen, float64(j)/n)
		dx, dy := p.X-q.X, p.Y-q.Y
		sum += dx*dx + dy*dy
	}
	return math.Sqrt(sum / n)
}

// SweepPoint is the approximation quality at one bound.
type SweepPoint struct {
	Bound  int
	Terms  int
	RMS    float64
	Energy float64
}

// ErrorSweep evaluates every bound against the curve the set was computed
// from.
func ErrorSweep(curve fourier.Curve, set *fourier.CoefficientSet, bounds []int, mode fourier.Mode) []SweepPoint {
	results := make([]SweepPoint, 0, len(bounds))
	for _, b := range bounds {
		chosen := fourier.Choose(set, b, mode)
		results = append(results, SweepPoint{
			Bound:  b,
			Terms:  len(chosen),
			RMS:    RMSError(curve, chosen),
			Energy: EnergyCaptured(set, b, mode),
		})
	}
	return results
}
