package interp

import "errors"

// Sentinel errors returned by constructors in this package. Constructors wrap
// them with context via fmt.Errorf("...: %w"); match with errors.Is.
var (
	// ErrGridTooSmall indicates an axis has fewer samples than the kernel needs
	// (2 for Bilinear, 4 for Bicubic).
	ErrGridTooSmall = errors.New("interp: grid has too few samples for kernel")

	// ErrNonUniformGrid indicates an axis that is not strictly monotonic with a
	// constant pitch.
	ErrNonUniformGrid = errors.New("interp: grid axis is not uniform")

	// ErrShapeMismatch indicates the image dimensions do not match the axes, or
	// evaluation coordinate slices of different lengths.
	ErrShapeMismatch = errors.New("interp: shape mismatch")

	// ErrNilImage indicates a nil image matrix.
	ErrNilImage = errors.New("interp: image is nil")

	// ErrNaNInf indicates a NaN or ±Inf grid coordinate, sample or
	// evaluation coordinate.
	ErrNaNInf = errors.New("interp: NaN or Inf encountered")

	// ErrUnknownKernel indicates a kernel value or name outside {bilinear, bicubic}.
	ErrUnknownKernel = errors.New("interp: unknown kernel")

	// ErrUnknownBoundary indicates a boundary policy outside {clamp, zero, extrapolate}.
	ErrUnknownBoundary = errors.New("interp: unknown boundary policy")
)
