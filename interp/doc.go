// Package interp reconstructs continuous 2-D fields from values sampled on a
// uniform rectangular grid.
//
// 🚀 What is it for?
//
//	Pixelated light profiles store brightness on a fixed grid of pixel
//	centres. Ray-traced coordinates almost never land on those centres, so
//	the field has to be evaluated in between:
//	  • Bilinear: four nearest corners; continuous value, kinked gradient.
//	    Fast and robust to noisy pixels.
//	  • Bicubic:  Hermite patch over a 4×4 neighbourhood with continuous
//	    first derivatives. Higher fidelity on smooth sources, needs at least
//	    four samples per axis.
//
// ✨ Key features:
//   - strategy interface (Interpolator) selected once at construction
//   - ascending or descending axes, validated to be strictly uniform
//   - explicit boundary policy: Clamp (default), Zero or Extrapolate
//   - images accepted as any gonum mat.Matrix, copied on construction
//
// ⚙️ Usage:
//
//	ip, err := interp.New(interp.Bicubic, xs, ys, img, interp.WithBoundary(interp.Clamp))
//	if err != nil {
//		// ErrGridTooSmall, ErrNonUniformGrid, ErrShapeMismatch ...
//	}
//	v := ip.At(0.25, -1.5)
//
// Layout convention: img.At(j, i) is the sample at (xs[i], ys[j]); rows
// follow the y axis, columns the x axis.
//
// Interpolators are immutable once built and safe for concurrent use.
package interp
