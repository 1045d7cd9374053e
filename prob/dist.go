package prob

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution is the law of one sample site. Values are flat slices of
// length Size(); multi-dimensional values such as images are row-major.
type Distribution interface {
	// Size is the number of elements in one draw.
	Size() int

	// LogProb is the log-density at x; -Inf outside the support.
	// len(x) == Size() is checked by the runtime before the call.
	LogProb(x []float64) float64

	// Sample draws one value from src.
	Sample(src *Stream) []float64
}

// Compile-time conformance.
var (
	_ Distribution = Normal{}
	_ Distribution = Uniform{}
	_ Distribution = LogNormal{}
	_ Distribution = DiagNormal{}
)

// iidSize maps N<=0 to a scalar.
func iidSize(n int) int {
	if n <= 0 {
		return 1
	}

	return n
}

// Normal is N independent Gaussian elements with common mean and scale.
// N<=0 means a scalar.
type Normal struct {
	Mu, Sigma float64
	N         int
}

func (d Normal) Size() int { return iidSize(d.N) }

func (d Normal) LogProb(x []float64) float64 {
	u := distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}
	var lp float64
	for _, v := range x {
		lp += u.LogProb(v)
	}

	return lp
}

func (d Normal) Sample(src *Stream) []float64 {
	u := distuv.Normal{Mu: d.Mu, Sigma: d.Sigma, Src: src}
	out := make([]float64, d.Size())
	for i := range out {
		out[i] = u.Rand()
	}

	return out
}

// Uniform is N independent elements uniform on [Min, Max].
type Uniform struct {
	Min, Max float64
	N        int
}

func (d Uniform) Size() int { return iidSize(d.N) }

func (d Uniform) LogProb(x []float64) float64 {
	u := distuv.Uniform{Min: d.Min, Max: d.Max}
	var lp float64
	for _, v := range x {
		lp += u.LogProb(v)
	}

	return lp
}

func (d Uniform) Sample(src *Stream) []float64 {
	u := distuv.Uniform{Min: d.Min, Max: d.Max, Src: src}
	out := make([]float64, d.Size())
	for i := range out {
		out[i] = u.Rand()
	}

	return out
}

// LogNormal is N independent elements whose logarithm is N(Mu, Sigma).
// Useful for positive amplitudes and scales.
type LogNormal struct {
	Mu, Sigma float64
	N         int
}

func (d LogNormal) Size() int { return iidSize(d.N) }

func (d LogNormal) LogProb(x []float64) float64 {
	u := distuv.LogNormal{Mu: d.Mu, Sigma: d.Sigma}
	var lp float64
	for _, v := range x {
		lp += u.LogProb(v)
	}

	return lp
}

func (d LogNormal) Sample(src *Stream) []float64 {
	u := distuv.LogNormal{Mu: d.Mu, Sigma: d.Sigma, Src: src}
	out := make([]float64, d.Size())
	for i := range out {
		out[i] = u.Rand()
	}

	return out
}

// DiagNormal is a Gaussian with independent elements: element i has mean
// Mean[i] and scale Sigma[i], or Sigma[0] for all elements when Sigma has
// length 1. It is the usual pixel-noise model of an observed image.
type DiagNormal struct {
	Mean  []float64
	Sigma []float64
}

func (d DiagNormal) Size() int { return len(d.Mean) }

// scale returns the standard deviation of element i. A Sigma whose length
// is neither 1 nor len(Mean) yields NaN, which the runtime reports as
// ErrInvalidDistribution.
func (d DiagNormal) scale(i int) float64 {
	switch len(d.Sigma) {
	case 1:
		return d.Sigma[0]
	case len(d.Mean):
		return d.Sigma[i]
	default:
		return math.NaN()
	}
}

func (d DiagNormal) LogProb(x []float64) float64 {
	var lp float64
	for i, v := range x {
		lp += distuv.Normal{Mu: d.Mean[i], Sigma: d.scale(i)}.LogProb(v)
	}

	return lp
}

func (d DiagNormal) Sample(src *Stream) []float64 {
	out := make([]float64, len(d.Mean))
	for i := range out {
		out[i] = distuv.Normal{Mu: d.Mean[i], Sigma: d.scale(i), Src: src}.Rand()
	}

	return out
}
