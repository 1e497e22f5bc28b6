// Package fourier is the numeric engine behind epicycle approximations of
// closed planar curves.
//
// The package turns an ordered point sequence into a truncated discrete
// Fourier series and evaluates that series back into geometry:
//
//   - [Normalize]: centre and rescale a point set so its longer side is [Margin] long
//   - [Resample]: redistribute freehand samples uniformly by arc length
//   - [ComputeCoefficients]: direct-summation DFT for orders -K..K
//   - [Choose]: select coefficients by order bound or by magnitude
//   - [EvaluateCurve]: dense partial-sum curve for a selection
//   - [EvaluateFrame]: one epicycle chain position at phase t
//   - [BuildTransform]: aspect-preserving map into a pixel rectangle
//
// # Example
//
//	curve := fourier.Normalize(presets.Heart(512))
//	set, err := fourier.ComputeCoefficients(curve, 100)
//	if err != nil {
//	    return err
//	}
//	chosen := fourier.Choose(set, 20, fourier.ModeOrder)
//	approx := fourier.EvaluateCurve(chosen, 1500)
//
// # Thread Safety
//
// Every function is pure and safe for concurrent use. A [CoefficientSet] is
// read-only once returned; callers must not mutate its views.
package fourier
