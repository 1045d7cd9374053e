package interp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// New builds the interpolator selected by k.
//
// It is the single dispatch point between kernels; callers that hold a
// Kernel from configuration use New, callers that know the kernel statically
// may call NewBilinear/NewBicubic directly.
//
// Errors: ErrUnknownKernel plus everything the selected constructor returns.
func New(k Kernel, xs, ys []float64, img mat.Matrix, opts ...Option) (Interpolator, error) {
	switch k {
	case Bilinear:
		return NewBilinear(xs, ys, img, opts...)
	case Bicubic:
		return NewBicubic(xs, ys, img, opts...)
	default:
		return nil, fmt.Errorf("New(%s): %w", k, ErrUnknownKernel)
	}
}

// EvalAll evaluates ip at every (xs[k], ys[k]) pair.
//
// If dst has length len(xs) it is filled in place and returned; otherwise a
// new slice is allocated.
//
// Errors: ErrShapeMismatch if len(xs) != len(ys); ErrNaNInf for a
// non-finite coordinate. dst is untouched on error.
// Complexity: O(len(xs)) evaluations.
func EvalAll(ip Interpolator, xs, ys, dst []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("EvalAll: len(x)=%d, len(y)=%d: %w", len(xs), len(ys), ErrShapeMismatch)
	}
	if err := CheckFinite("x", xs); err != nil {
		return nil, fmt.Errorf("EvalAll: %w", err)
	}
	if err := CheckFinite("y", ys); err != nil {
		return nil, fmt.Errorf("EvalAll: %w", err)
	}
	if len(dst) != len(xs) {
		dst = make([]float64, len(xs))
	}
	for k := range xs {
		dst[k] = ip.At(xs[k], ys[k])
	}

	return dst, nil
}
