package prob

import (
	"fmt"
)

// Adapter exposes a generative program through the evaluation and sampling
// surface inference drivers consume.
type Adapter struct {
	model   Model
	obsSite string
	hook    func(Site)
	workers int
}

// New wraps model.
//
// Errors: ErrNilModel; ErrOptionViolation for invalid options.
func New(model Model, opts ...Option) (*Adapter, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Adapter{model: model, obsSite: o.obsSite, hook: o.hook, workers: o.workers}, nil
}

// Model returns the wrapped generative program.
func (a *Adapter) Model() Model { return a.model }

// ObservationSite returns the name of the observation site.
func (a *Adapter) ObservationSite() string { return a.obsSite }

// run executes the model with the adapter's hook prepended to opts.
func (a *Adapter) run(m Model, opts ...RunOption) (*Trace, error) {
	all := make([]RunOption, 0, len(opts)+1)
	if a.hook != nil {
		all = append(all, WithHook(a.hook))
	}
	all = append(all, opts...)

	return Execute(m, all...)
}

// evaluate runs the model with params substituted for every latent site.
func (a *Adapter) evaluate(params Params) (*Trace, error) {
	return a.run(a.model, WithStrictSubstitutes(params))
}

// LogProb returns the joint log-density at params: every latent site's
// prior log-density plus every observed site's log-density given its data.
//
// Errors: ErrUnknownSite if params misses a latent site or names a site
// that is not latent; ErrShapeMismatch if a value has the wrong length;
// anything the model returns.
//
// Complexity: one model run.
func (a *Adapter) LogProb(params Params) (float64, error) {
	tr, err := a.evaluate(params)
	if err != nil {
		return 0, fmt.Errorf("LogProb: %w", err)
	}

	return tr.LogJoint(), nil
}

// LogLikelihood returns the observation site's log-density at params,
// without prior terms.
//
// Errors: as LogProb; ErrUnknownSite if the program declares no observation
// site; ErrNotObserved if that site carries no data.
func (a *Adapter) LogLikelihood(params Params) (float64, error) {
	tr, err := a.evaluate(params)
	if err != nil {
		return 0, fmt.Errorf("LogLikelihood: %w", err)
	}
	s, ok := tr.Site(a.obsSite)
	if !ok {
		return 0, fmt.Errorf("LogLikelihood: observation site %q not declared: %w", a.obsSite, ErrUnknownSite)
	}
	if !s.Observed {
		return 0, fmt.Errorf("LogLikelihood: %q: %w", a.obsSite, ErrNotObserved)
	}

	return s.LogProb, nil
}

// LogLikelihoodSites returns the log-density of every observed site at
// params, keyed by site name.
//
// Errors: as LogProb.
func (a *Adapter) LogLikelihoodSites(params Params) (map[string]float64, error) {
	tr, err := a.evaluate(params)
	if err != nil {
		return nil, fmt.Errorf("LogLikelihoodSites: %w", err)
	}
	out := make(map[string]float64)
	for _, s := range tr.sites {
		if s.Observed {
			out[s.Name] = s.LogProb
		}
	}

	return out, nil
}

// SeededModel returns the program with every fresh draw derived from seed.
// Running it twice reproduces identical draws. The seed applies inside the
// returned Model and takes precedence over any seed of the enclosing run.
func (a *Adapter) SeededModel(seed int64) Model {
	return func(rt *Runtime) error {
		return a.model(rt.withSeed(seed))
	}
}

// GetTrace runs the seeded program once and returns its full trace.
func (a *Adapter) GetTrace(seed int64) (*Trace, error) {
	tr, err := a.run(a.SeededModel(seed))
	if err != nil {
		return nil, fmt.Errorf("GetTrace(%d): %w", seed, err)
	}

	return tr, nil
}

// GetSample returns the non-observed sites of GetTrace(seed): one draw from
// the joint prior, suitable as a starting point for inference.
func (a *Adapter) GetSample(seed int64) (Params, error) {
	tr, err := a.GetTrace(seed)
	if err != nil {
		return nil, err
	}

	return tr.Latent(), nil
}
