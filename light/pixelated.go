package light

import (
	"fmt"

	"github.com/katalvlaran/lvlens/interp"
	"gonum.org/v1/gonum/mat"
)

// Parameter names a Pixelated profile consumes, in call order.
const (
	ParamXCoords = "x_coords"
	ParamYCoords = "y_coords"
	ParamImage   = "image"
)

// DefaultMethod is the interpolation method used when none is named.
const DefaultMethod = interp.Bilinear

// Option configures a Pixelated profile.
type Option func(*Pixelated)

// WithBoundary sets the policy for coordinates outside the pixel grid.
// The default is interp.Clamp.
func WithBoundary(b interp.Boundary) Option {
	return func(p *Pixelated) { p.boundary = b }
}

// Pixelated is a source brightness defined on a fixed coordinate grid.
type Pixelated struct {
	method   interp.Kernel
	boundary interp.Boundary
}

// NewPixelated returns a profile interpolating with the named method,
// exactly "bilinear" or "bicubic". An empty name selects DefaultMethod.
//
// Errors: ErrInvalidConfiguration for any other method name, including
// other spellings of the two, or an invalid boundary policy.
func NewPixelated(method string, opts ...Option) (*Pixelated, error) {
	p := &Pixelated{method: DefaultMethod, boundary: interp.DefaultBoundary}
	if method != "" {
		k, ok := methodKernel(method)
		if !ok {
			return nil, fmt.Errorf("NewPixelated(%q): must be one of %v: %w", method, Methods(), ErrInvalidConfiguration)
		}
		p.method = k
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if !p.boundary.Valid() {
		return nil, fmt.Errorf("NewPixelated: %s: %w", p.boundary, ErrInvalidConfiguration)
	}

	return p, nil
}

// Method returns the configured interpolation kernel.
func (p *Pixelated) Method() interp.Kernel { return p.method }

// Boundary returns the configured out-of-grid policy.
func (p *Pixelated) Boundary() interp.Boundary { return p.boundary }

// ParamNames lists the parameters Function consumes after the evaluation
// coordinates, for callers assembling parameter sets generically.
func (p *Pixelated) ParamNames() []string { return ParamNames() }

// ParamNames lists the parameter names of a pixelated profile.
func ParamNames() []string { return []string{ParamXCoords, ParamYCoords, ParamImage} }

// Methods lists the accepted interpolation method names.
func Methods() []string {
	return []string{interp.Bilinear.String(), interp.Bicubic.String()}
}

func methodKernel(name string) (interp.Kernel, bool) {
	for _, k := range []interp.Kernel{interp.Bilinear, interp.Bicubic} {
		if name == k.String() {
			return k, true
		}
	}

	return 0, false
}

// PixelArea returns (xCoords[0]-xCoords[1]) * (yCoords[0]-yCoords[1]).
// The grid is assumed uniform, so the first pitch stands for all pixels.
//
// Errors: ErrGridTooSmall if either axis has fewer than two coordinates.
func PixelArea(xCoords, yCoords []float64) (float64, error) {
	if len(xCoords) < 2 || len(yCoords) < 2 {
		return 0, fmt.Errorf("PixelArea: axes of length %d and %d: %w", len(xCoords), len(yCoords), ErrGridTooSmall)
	}

	return (xCoords[0] - xCoords[1]) * (yCoords[0] - yCoords[1]), nil
}

// TotalFlux returns the summed pixel values, the flux a pixelated profile
// carries independently of its pixel area.
func TotalFlux(image mat.Matrix) float64 { return mat.Sum(image) }

// interpolant validates the grid and builds the kernel for one evaluation.
func (p *Pixelated) interpolant(xCoords, yCoords []float64, image mat.Matrix) (interp.Interpolator, float64, error) {
	area, err := PixelArea(xCoords, yCoords)
	if err != nil {
		return nil, 0, err
	}
	ip, err := interp.New(p.method, xCoords, yCoords, image, interp.WithBoundary(p.boundary))
	if err != nil {
		return nil, 0, err
	}

	return ip, area, nil
}

// Function evaluates the surface brightness at the points (x[k], y[k]).
//
// Implementation:
//   - Stage 1: compute the signed pixel area from the first two coordinates.
//   - Stage 2: build the configured interpolant over the grid.
//   - Stage 3: evaluate each point and divide by the pixel area.
//
// Inputs:
//   - x, y: evaluation coordinates, same length.
//   - xCoords, yCoords: uniform, strictly monotonic axes (≥4 samples for bicubic).
//   - image: len(yCoords) × len(xCoords) pixel values.
//
// Returns:
//   - brightness, out[k] at (x[k], y[k]).
//
// Errors: ErrShapeMismatch, ErrNaNInf for a non-finite evaluation
// coordinate, ErrGridTooSmall, ErrNonUniformGrid and the remaining interp
// construction errors. Nothing is returned on failure.
//
// Complexity: O(Nx*Ny + len(x)).
func (p *Pixelated) Function(x, y, xCoords, yCoords []float64, image mat.Matrix) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("Pixelated.Function: len(x)=%d, len(y)=%d: %w", len(x), len(y), ErrShapeMismatch)
	}
	ip, area, err := p.interpolant(xCoords, yCoords, image)
	if err != nil {
		return nil, fmt.Errorf("Pixelated.Function: %w", err)
	}
	out, err := interp.EvalAll(ip, x, y, nil)
	if err != nil {
		return nil, fmt.Errorf("Pixelated.Function: %w", err)
	}
	for k := range out {
		out[k] /= area
	}

	return out, nil
}

// FunctionGrid evaluates the surface brightness on the mesh xAxis × yAxis
// and returns it in image orientation: element (j, i) is the brightness at
// (xAxis[i], yAxis[j]).
//
// Errors: as Function; ErrShapeMismatch if either axis is empty.
func (p *Pixelated) FunctionGrid(xAxis, yAxis, xCoords, yCoords []float64, image mat.Matrix) (*mat.Dense, error) {
	if len(xAxis) == 0 || len(yAxis) == 0 {
		return nil, fmt.Errorf("Pixelated.FunctionGrid: empty axis: %w", ErrShapeMismatch)
	}
	if err := interp.CheckFinite("xAxis", xAxis); err != nil {
		return nil, fmt.Errorf("Pixelated.FunctionGrid: %w", err)
	}
	if err := interp.CheckFinite("yAxis", yAxis); err != nil {
		return nil, fmt.Errorf("Pixelated.FunctionGrid: %w", err)
	}
	ip, area, err := p.interpolant(xCoords, yCoords, image)
	if err != nil {
		return nil, fmt.Errorf("Pixelated.FunctionGrid: %w", err)
	}
	out := mat.NewDense(len(yAxis), len(xAxis), nil)
	for j, yv := range yAxis {
		for i, xv := range xAxis {
			out.Set(j, i, ip.At(xv, yv)/area)
		}
	}

	return out, nil
}
