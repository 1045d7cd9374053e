package interp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// edgeSlack is how far, in index units, a point may sit outside the grid and
// still count as inside under the Zero policy. It absorbs rounding when the
// caller evaluates exactly at the outermost coordinates.
const edgeSlack = 1e-9

// axis is a validated uniform coordinate sequence: c[i] = origin + i*step.
// step may be negative for descending axes.
type axis struct {
	origin float64
	step   float64
	n      int
}

// newAxis validates coords and derives origin and pitch.
//
// The pitch is the mean spacing (c[n-1]-c[0])/(n-1); every consecutive gap
// must match it within tol*|pitch|. A zero or sign-changing gap fails the
// same check, so strict monotonicity follows from uniformity.
//
// Errors: ErrGridTooSmall, ErrNaNInf, ErrNonUniformGrid.
// Complexity: O(n).
func newAxis(name string, coords []float64, minSamples int, tol float64) (axis, error) {
	n := len(coords)
	if n < minSamples {
		return axis{}, fmt.Errorf("%s axis has %d samples, need %d: %w", name, n, minSamples, ErrGridTooSmall)
	}
	for i, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return axis{}, fmt.Errorf("%s[%d]=%g: %w", name, i, c, ErrNaNInf)
		}
	}
	step := (coords[n-1] - coords[0]) / float64(n-1)
	if step == 0 {
		return axis{}, fmt.Errorf("%s axis has zero pitch: %w", name, ErrNonUniformGrid)
	}
	limit := tol * math.Abs(step)
	for i := 1; i < n; i++ {
		if math.Abs(coords[i]-coords[i-1]-step) > limit {
			return axis{}, fmt.Errorf("%s[%d]-%s[%d]=%g, pitch %g: %w",
				name, i, name, i-1, coords[i]-coords[i-1], step, ErrNonUniformGrid)
		}
	}

	return axis{origin: coords[0], step: step, n: n}, nil
}

// locate maps coordinate v to the lower corner index i0 of its cell and the
// fractional offset u inside that cell, applying the boundary policy.
// inside is false under Zero when v lies outside the grid, and for NaN v
// under every policy.
//
// i0 is always in [0, n-2]. u is in [0, 1] except under Extrapolate.
func (a axis) locate(v float64, b Boundary) (i0 int, u float64, inside bool) {
	t := (v - a.origin) / a.step
	if math.IsNaN(t) {
		return 0, 0, false
	}
	last := float64(a.n - 1)
	switch b {
	case Zero:
		if t < -edgeSlack || t > last+edgeSlack {
			return 0, 0, false
		}
		t = math.Max(0, math.Min(last, t))
	case Clamp:
		t = math.Max(0, math.Min(last, t))
	}
	f := math.Floor(t)
	switch {
	case f < 0:
		i0 = 0
	case f > last-1:
		i0 = a.n - 2
	default:
		i0 = int(f)
	}

	return i0, t - float64(i0), true
}

// samples is a row-major copy of the image: z[j*nx+i] is the value at
// (x[i], y[j]).
type samples struct {
	nx, ny int
	z      []float64
}

// copySamples validates image dimensions against the axes and copies it
// into a flat buffer so later mutation of the caller's matrix cannot leak
// into a built interpolator.
//
// Errors: ErrNilImage, ErrShapeMismatch, ErrNaNInf.
// Complexity: O(nx*ny).
func copySamples(img mat.Matrix, nx, ny int) (samples, error) {
	if img == nil {
		return samples{}, ErrNilImage
	}
	r, c := img.Dims()
	if r != ny || c != nx {
		return samples{}, fmt.Errorf("image is %dx%d, axes need %dx%d (rows=y, cols=x): %w", r, c, ny, nx, ErrShapeMismatch)
	}
	z := make([]float64, nx*ny)
	var i, j int
	var v float64
	for j = 0; j < ny; j++ {
		for i = 0; i < nx; i++ {
			v = img.At(j, i)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return samples{}, fmt.Errorf("image(%d,%d)=%g: %w", j, i, v, ErrNaNInf)
			}
			z[j*nx+i] = v
		}
	}

	return samples{nx: nx, ny: ny, z: z}, nil
}

// at returns the sample at column i, row j without bounds checks.
func (s samples) at(i, j int) float64 { return s.z[j*s.nx+i] }

// outsideValue is the result for a point locate rejected: NaN propagates,
// anything else is off the grid under Zero.
func outsideValue(x, y float64) float64 {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.NaN()
	}

	return 0
}

// CheckFinite returns a wrapped ErrNaNInf naming the first NaN or ±Inf
// element of v.
func CheckFinite(name string, v []float64) error {
	for k, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%s[%d]=%g: %w", name, k, c, ErrNaNInf)
		}
	}

	return nil
}

// grid bundles the validated axes and samples shared by both kernels.
type grid struct {
	x, y     axis
	s        samples
	boundary Boundary
}

// newGrid runs the full validation sequence: options → axes → image.
func newGrid(k Kernel, xs, ys []float64, img mat.Matrix, opts []Option) (grid, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return grid{}, err
	}
	need := k.MinSamples()
	ax, err := newAxis("x", xs, need, o.tol)
	if err != nil {
		return grid{}, err
	}
	ay, err := newAxis("y", ys, need, o.tol)
	if err != nil {
		return grid{}, err
	}
	s, err := copySamples(img, ax.n, ay.n)
	if err != nil {
		return grid{}, err
	}

	return grid{x: ax, y: ay, s: s, boundary: o.boundary}, nil
}
