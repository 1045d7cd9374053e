package interp

import (
	"fmt"
	"math"
	"strings"
)

// Kernel selects the interpolation scheme.
type Kernel int

const (
	// Bilinear interpolates from the four grid corners around a point.
	Bilinear Kernel = iota

	// Bicubic interpolates a C1 Hermite patch using the 4×4 neighbourhood.
	Bicubic
)

// Minimum samples per axis for each kernel.
const (
	minSamplesBilinear = 2
	minSamplesBicubic  = 4
)

var kernelNames = [...]string{Bilinear: "bilinear", Bicubic: "bicubic"}

// String returns the lower-case kernel name, e.g. "bicubic".
func (k Kernel) String() string {
	if k < 0 || int(k) >= len(kernelNames) {
		return fmt.Sprintf("Kernel(%d)", int(k))
	}

	return kernelNames[k]
}

// Valid reports whether k names a supported kernel.
func (k Kernel) Valid() bool { return k >= 0 && int(k) < len(kernelNames) }

// MinSamples returns the number of samples each axis needs for k.
func (k Kernel) MinSamples() int {
	if k == Bicubic {
		return minSamplesBicubic
	}

	return minSamplesBilinear
}

// ParseKernel maps a case-insensitive name to a Kernel.
// Returns ErrUnknownKernel for anything but "bilinear" or "bicubic".
func ParseKernel(name string) (Kernel, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for i, n := range kernelNames {
		if s == n {
			return Kernel(i), nil
		}
	}

	return 0, fmt.Errorf("ParseKernel(%q): %w", name, ErrUnknownKernel)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kernel) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("Kernel(%d): %w", int(k), ErrUnknownKernel)
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so kernels decode from
// YAML or JSON configuration documents.
func (k *Kernel) UnmarshalText(text []byte) error {
	parsed, err := ParseKernel(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// Boundary controls evaluation outside the grid's coordinate span.
type Boundary int

const (
	// Clamp evaluates at the nearest point on the grid boundary, so values
	// never exceed the range of the edge samples. Default.
	Clamp Boundary = iota

	// Zero returns 0 outside the grid.
	Zero

	// Extrapolate continues the polynomial of the nearest edge cell.
	Extrapolate
)

var boundaryNames = [...]string{Clamp: "clamp", Zero: "zero", Extrapolate: "extrapolate"}

// String returns the lower-case policy name.
func (b Boundary) String() string {
	if b < 0 || int(b) >= len(boundaryNames) {
		return fmt.Sprintf("Boundary(%d)", int(b))
	}

	return boundaryNames[b]
}

// Valid reports whether b names a supported policy.
func (b Boundary) Valid() bool { return b >= 0 && int(b) < len(boundaryNames) }

// ParseBoundary maps a case-insensitive name to a Boundary.
func ParseBoundary(name string) (Boundary, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for i, n := range boundaryNames {
		if s == n {
			return Boundary(i), nil
		}
	}

	return 0, fmt.Errorf("ParseBoundary(%q): %w", name, ErrUnknownBoundary)
}

// MarshalText implements encoding.TextMarshaler.
func (b Boundary) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("Boundary(%d): %w", int(b), ErrUnknownBoundary)
	}

	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Boundary) UnmarshalText(text []byte) error {
	parsed, err := ParseBoundary(string(text))
	if err != nil {
		return err
	}
	*b = parsed

	return nil
}

// Interpolator evaluates a field reconstructed from grid samples.
// Implementations are immutable and safe for concurrent use.
type Interpolator interface {
	// At evaluates the field at (x, y) in grid coordinates.
	At(x, y float64) float64

	// Kernel reports which scheme the interpolator implements.
	Kernel() Kernel
}

// Compile-time conformance.
var (
	_ Interpolator = (*BilinearInterpolator)(nil)
	_ Interpolator = (*BicubicInterpolator)(nil)
)

// Defaults.
const (
	// DefaultBoundary is the policy used when WithBoundary is not given.
	DefaultBoundary = Clamp

	// DefaultUniformTolerance is the relative deviation from the mean pitch
	// allowed between consecutive axis samples.
	DefaultUniformTolerance = 1e-6
)

// Option configures interpolator construction.
// Invalid values are recorded and surfaced by the constructor.
type Option func(*options)

type options struct {
	boundary Boundary
	tol      float64
	err      error
}

func defaultOptions() options {
	return options{boundary: DefaultBoundary, tol: DefaultUniformTolerance}
}

// WithBoundary sets the out-of-grid policy.
func WithBoundary(b Boundary) Option {
	return func(o *options) {
		if !b.Valid() {
			o.err = fmt.Errorf("WithBoundary(%d): %w", int(b), ErrUnknownBoundary)
			return
		}
		o.boundary = b
	}
}

// WithUniformTolerance sets the relative pitch tolerance used when checking
// that axes are uniform. tol must be finite and in [0, 1).
func WithUniformTolerance(tol float64) Option {
	return func(o *options) {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || tol >= 1 {
			o.err = fmt.Errorf("WithUniformTolerance(%g): %w", tol, ErrNonUniformGrid)
			return
		}
		o.tol = tol
	}
}

func gatherOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
