package prob

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// LogProbGrad returns ∂LogProb/∂params, shaped like params.
//
// The gradient is estimated with central finite differences over the
// flattened parameter vector (names in ascending order), two model runs per
// scalar element. Evaluations that leave the support give ±Inf or NaN
// components rather than errors.
//
// Errors: as LogProb at params.
func (a *Adapter) LogProbGrad(params Params) (Params, error) {
	if _, err := a.LogProb(params); err != nil {
		return nil, fmt.Errorf("LogProbGrad: %w", err)
	}
	names := params.Names()
	x, err := params.Flatten(names)
	if err != nil {
		return nil, fmt.Errorf("LogProbGrad: %w", err)
	}

	var evalErr error
	f := func(v []float64) float64 {
		p, err := params.Assign(names, v)
		if err == nil {
			var lp float64
			if lp, err = a.LogProb(p); err == nil {
				return lp
			}
		}
		if evalErr == nil {
			evalErr = err
		}

		return math.NaN()
	}
	g := fd.Gradient(nil, f, x, &fd.Settings{Formula: fd.Central})
	if evalErr != nil {
		return nil, fmt.Errorf("LogProbGrad: %w", evalErr)
	}

	return params.Assign(names, g)
}
