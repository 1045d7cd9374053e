// Package lvlens is a small toolkit for modelling gravitational-lens
// observations: pixelated surface-brightness sources and a probabilistic
// front end that inference drivers can sample from and differentiate.
//
// 🚀 What is inside?
//
//	Three packages, each usable on its own:
//		• interp – bilinear and bicubic interpolation on uniform 2-D grids,
//		  with clamp, zero and extrapolate boundary policies
//		• light  – the pixelated brightness profile: an image on a grid
//		  turned into a continuous surface brightness, flux-normalised by
//		  the pixel area
//		• prob   – generative programs with named sample sites, and the
//		  adapter exposing log-densities, gradients, seeded draws and
//		  batched predictive simulation
//
// ✨ Guarantees
//
//   - Deterministic – every random draw is keyed by an explicit seed
//   - Pure – profiles and adapters hold no mutable state; safe across goroutines
//   - Explicit errors – sentinel errors per package, matched with errors.Is
//
// Layout:
//
//	interp/   Kernel, Boundary, Interpolator, New, EvalAll
//	light/    Pixelated, PixelArea, TotalFlux
//	prob/     Model, Runtime, Trace, Adapter, Draws, distributions
//	examples/ runnable programs wiring the packages together
//
// Quick picture of a pixelated source on a 3×3 grid:
//
//	y2 •───•───•
//	   │   │   │   samples sit on grid nodes;
//	y1 •───•───•   between them the kernel blends neighbours,
//	   │   │   │   and the result is divided by Δx·Δy.
//	y0 •───•───•
//	   x0  x1  x2
//
//	go get github.com/katalvlaran/lvlens
package lvlens
