// Package light provides surface-brightness profiles for lensed sources.
//
// Pixelated is a source whose brightness is defined on a fixed rectangular
// grid. Between pixel centres the field is reconstructed with the bilinear
// or bicubic kernels from package interp, and every value is divided by the
// signed pixel area so that what comes out is flux per unit area. Downstream
// consumers can therefore integrate a pixelated profile exactly like an
// analytic one, whatever the resolution of the source grid.
//
// Coordinate convention:
//
//	image.At(j, i) is the pixel at (xCoords[i], yCoords[j]); rows follow y.
//	Axes may be ascending or descending. The pixel area is
//	(xCoords[0]-xCoords[1]) * (yCoords[0]-yCoords[1]) and keeps its sign:
//	positive when both axes run the same way, negative otherwise.
//
// Profiles hold only their configuration; each call rebuilds the
// interpolant, so one value may be shared across goroutines.
package light
