package interp

import "gonum.org/v1/gonum/mat"

// BilinearInterpolator evaluates the piecewise-bilinear surface through the
// grid samples. Values are continuous; gradients jump across grid lines.
type BilinearInterpolator struct {
	g grid
}

// NewBilinear builds a bilinear interpolator over xs × ys.
//
// Inputs:
//   - xs, ys: uniform, strictly monotonic axes with at least 2 samples each.
//   - img: len(ys) × len(xs) samples, img.At(j, i) at (xs[i], ys[j]).
//
// Errors: ErrGridTooSmall, ErrNonUniformGrid, ErrNaNInf, ErrNilImage,
// ErrShapeMismatch, ErrUnknownBoundary.
//
// Complexity: O(nx*ny) time and memory (one copy of img).
func NewBilinear(xs, ys []float64, img mat.Matrix, opts ...Option) (*BilinearInterpolator, error) {
	g, err := newGrid(Bilinear, xs, ys, img, opts)
	if err != nil {
		return nil, err
	}

	return &BilinearInterpolator{g: g}, nil
}

// Kernel returns Bilinear.
func (b *BilinearInterpolator) Kernel() Kernel { return Bilinear }

// At evaluates the surface at (x, y).
// Complexity: O(1).
func (b *BilinearInterpolator) At(x, y float64) float64 {
	i, u, okx := b.g.x.locate(x, b.g.boundary)
	j, v, oky := b.g.y.locate(y, b.g.boundary)
	if !okx || !oky {
		return outsideValue(x, y)
	}
	s := b.g.s
	z00, z10 := s.at(i, j), s.at(i+1, j)
	z01, z11 := s.at(i, j+1), s.at(i+1, j+1)

	return (1-u)*(1-v)*z00 + u*(1-v)*z10 + (1-u)*v*z01 + u*v*z11
}
