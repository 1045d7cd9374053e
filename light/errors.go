package light

import (
	"errors"

	"github.com/katalvlaran/lvlens/interp"
)

var (
	// ErrInvalidConfiguration indicates an unsupported interpolation method
	// or option at construction time.
	ErrInvalidConfiguration = errors.New("light: invalid configuration")

	// ErrGridTooSmall is the interp sentinel, re-exported so callers of this
	// package need not import interp to match it.
	ErrGridTooSmall = interp.ErrGridTooSmall

	// ErrNonUniformGrid is the interp sentinel for uneven or non-monotonic axes.
	ErrNonUniformGrid = interp.ErrNonUniformGrid

	// ErrShapeMismatch is the interp sentinel for mismatched lengths or dims.
	ErrShapeMismatch = interp.ErrShapeMismatch

	// ErrNaNInf is the interp sentinel for non-finite coordinates or pixels.
	ErrNaNInf = interp.ErrNaNInf
)
