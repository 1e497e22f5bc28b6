// Package analysis measures how well a truncated Fourier series
// approximates its source curve.
//
//   - [FFT]: radix-2 transform, a fast cross-check for power-of-two curves
//   - [SpectrumFFT]: coefficient set computed through [FFT]
//   - [Magnitudes]: |c_n| in ascending order of n, for plotting
//   - [EnergyCaptured]: share of total power kept by a selection
//   - [RMSError]: reconstruction error at the original sample phases
//   - [ErrorSweep]: error and energy across a list of bounds
//
// # Convergence
//
// Error falls as the bound grows; in magnitude mode it falls fastest
// for a fixed number of terms:
//
//	points := analysis.ErrorSweep(curve, set, []int{1, 5, 20, 80}, fourier.ModeMag)
package analysis
