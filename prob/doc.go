// Package prob turns a generative lens model into a uniform probabilistic
// interface: joint and likelihood log-densities, reproducible latent draws
// and predictive simulations of the observation.
//
// 🚀 Generative programs
//
//	A Model is a plain Go function that declares named sample sites on a
//	*Runtime. Each call to rt.Sample either draws a fresh value, substitutes
//	a value supplied by the caller, conditions on an external value or uses
//	data bound with Obs. The runtime records every site in a Trace:
//
//	  model := func(rt *prob.Runtime) error {
//	      amp, err := rt.Sample("amp", prob.LogNormal{Mu: 0, Sigma: 1})
//	      if err != nil {
//	          return err
//	      }
//	      _, err = rt.Sample("obs", prob.DiagNormal{Mean: render(amp[0]), Sigma: noise}, prob.Obs(data))
//	      return err
//	  }
//
// ✨ Adapter surface
//   - LogProb / LogLikelihood / LogProbGrad for inference drivers
//   - SeededModel / GetTrace / GetSample for reproducible starting points
//   - DrawSamples for batched prior- and posterior-predictive checks
//
// 🎲 Randomness
//
//	There is no global generator. A seed keys a SplitMix64 stream; each site
//	gets its own sub-stream derived from (seed, site name) and each batched
//	draw from (seed, draw index). Results are therefore independent of the
//	order in which sites or draws are evaluated, and identical seeds give
//	bit-identical traces.
//
// Adapters are immutable; every call builds its own Runtime, so one Adapter
// may serve many goroutines.
package prob
