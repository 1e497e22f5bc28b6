package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	dspfft "github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/epicycle/internal/fourier"
)

// ErrNotPowerOfTwo is returned when a radix-2 transform is requested for a
// length that is not a power of two.
var ErrNotPowerOfTwo = errors.New("analysis: fft requires power of 2 length")

// FFT returns X_k = sum_j x_j * e^{-i*2*pi*k*j/n}. len(data) must be a
// power of two (or zero).
func FFT(data []complex128) ([]complex128, error) {
	n := len(data)
	if n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}
	return fft(data), nil
}

func fft(data []complex128) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		copy(result, data)
		return result
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := fft(even)
	fodd := fft(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// SpectrumFFT computes the same set as fourier.ComputeCoefficients in
// O(N log N). Power-of-two lengths use the radix-2 FFT above; other
// lengths go through go-dsp's Bluestein transform. Orders beyond the
// Nyquist index alias onto bins modulo N, exactly as the direct sum does.
func SpectrumFFT(curve fourier.Curve, k int) (*fourier.CoefficientSet, error) {
	if len(curve) == 0 {
		return nil, fourier.ErrEmptyCurve
	}
	if k < 0 {
		return nil, fourier.ErrNegativeBound
	}

	z := make([]complex128, len(curve))
	for i, p := range curve {
		z[i] = complex(p.X, p.Y)
	}
	var bins []complex128
	if n := len(z); n&(n-1) == 0 {
		bins = fft(z)
	} else {
		bins = dspfft.FFT(z)
	}

	n := len(bins)
	inv := 1 / float64(n)
	byOrder := make([]fourier.Coefficient, 2*k+1)
	for i := range byOrder {
		order := i - k
		idx := order % n
		if idx < 0 {
			idx += n
		}
		byOrder[i] = fourier.Coefficient{
			N:  order,
			Re: real(bins[idx]) * inv,
			Im: imag(bins[idx]) * inv,
		}
	}
	return fourier.NewCoefficientSet(k, byOrder), nil
}
