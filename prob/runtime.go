package prob

import (
	"fmt"
	"math"
)

// Model is a generative program. It declares its sample sites through rt and
// returns the first error rt reports (or its own).
//
// A Model must be deterministic given the values rt returns: no hidden
// randomness, no state kept between calls.
type Model func(rt *Runtime) error

// Runtime is the execution context threaded through one run of a Model.
// It decides, site by site, where a value comes from:
//
//  1. a condition on the site (observed),
//  2. data bound with Obs, unless the site is marked for resampling (observed),
//  3. a substituted latent value,
//  4. a fresh draw from the site's own seeded sub-stream.
//
// and records the outcome in a Trace. A Runtime is used by one goroutine.
type Runtime struct {
	seed     int64
	seeded   bool
	subst    Params
	strict   bool
	cond     Params
	resample map[string]bool
	used     map[string]bool
	trace    *Trace
	hook     func(Site)
}

// RunOption configures a Runtime for Execute.
type RunOption func(*Runtime)

// WithSeed keys fresh draws. Without it, a site that needs a draw fails
// with ErrUnseeded.
func WithSeed(seed int64) RunOption {
	return func(rt *Runtime) { rt.seed, rt.seeded = seed, true }
}

// WithSubstitutes supplies values for latent sites. Sites without a value
// are drawn as usual.
func WithSubstitutes(p Params) RunOption {
	return func(rt *Runtime) { rt.subst, rt.strict = p, false }
}

// WithStrictSubstitutes supplies values for latent sites and requires the
// set to match exactly: a latent site without a value, or a value naming no
// latent site, fails with ErrUnknownSite.
func WithStrictSubstitutes(p Params) RunOption {
	return func(rt *Runtime) { rt.subst, rt.strict = p, true }
}

// WithConditions clamps the named sites to fixed values and marks them
// observed. Every name must be declared by the program.
func WithConditions(p Params) RunOption {
	return func(rt *Runtime) { rt.cond = p }
}

// WithResampled makes the named sites ignore their bound Obs data and draw
// from their distribution instead, as predictive simulation requires.
func WithResampled(names ...string) RunOption {
	return func(rt *Runtime) {
		if rt.resample == nil {
			rt.resample = make(map[string]bool, len(names))
		}
		for _, n := range names {
			rt.resample[n] = true
		}
	}
}

// WithHook registers fn to observe every recorded site.
func WithHook(fn func(Site)) RunOption {
	return func(rt *Runtime) { rt.hook = fn }
}

// Execute runs m once under the given options and returns its trace.
//
// Errors: whatever m returns, wrapped; ErrUnknownSite for unused strict
// substitutes or conditions on undeclared sites.
func Execute(m Model, opts ...RunOption) (*Trace, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	rt := &Runtime{trace: newTrace(), used: make(map[string]bool)}
	for _, opt := range opts {
		if opt != nil {
			opt(rt)
		}
	}
	if err := m(rt); err != nil {
		return nil, err
	}
	if rt.strict {
		if err := unused("parameter", rt.subst, rt.used); err != nil {
			return nil, err
		}
	}
	if err := unused("condition", rt.cond, rt.used); err != nil {
		return nil, err
	}

	return rt.trace, nil
}

// unused reports the first (sorted) name of p that no site consumed.
func unused(kind string, p Params, used map[string]bool) error {
	for _, name := range p.Names() {
		if !used[name] {
			return fmt.Errorf("%s %q was not consumed by any site: %w", kind, name, ErrUnknownSite)
		}
	}

	return nil
}

// SiteOption configures one Sample call.
type SiteOption func(*siteConfig)

type siteConfig struct {
	obs []float64
}

// Obs binds observed data to a site. Obs(nil) leaves the site latent.
func Obs(data []float64) SiteOption {
	return func(c *siteConfig) { c.obs = data }
}

// Sample declares the site name with distribution d and returns its value
// for this run. The returned slice is the caller's to keep.
//
// Errors: ErrInvalidSite, ErrDuplicateSite, ErrUnknownSite (strict
// substitution without a value), ErrUnseeded, ErrShapeMismatch,
// ErrInvalidDistribution.
func (rt *Runtime) Sample(name string, d Distribution, opts ...SiteOption) ([]float64, error) {
	if name == "" || d == nil {
		return nil, fmt.Errorf("Sample(%q): %w", name, ErrInvalidSite)
	}
	if rt.trace.has(name) {
		return nil, fmt.Errorf("Sample(%q): %w", name, ErrDuplicateSite)
	}
	var cfg siteConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var (
		value    []float64
		observed bool
	)
	if v, ok := rt.cond[name]; ok {
		value, observed = v, true
		rt.used[name] = true
	} else if cfg.obs != nil && !rt.resample[name] {
		value, observed = cfg.obs, true
	} else if v, ok := rt.subst[name]; ok {
		value = v
		rt.used[name] = true
	} else if rt.strict {
		return nil, fmt.Errorf("Sample(%q): latent site has no value: %w", name, ErrUnknownSite)
	} else if !rt.seeded {
		return nil, fmt.Errorf("Sample(%q): %w", name, ErrUnseeded)
	} else {
		value = d.Sample(NewStream(deriveSeed(rt.seed, siteKey(name))))
	}

	if len(value) != d.Size() {
		return nil, fmt.Errorf("Sample(%q): value has %d elements, distribution %d: %w", name, len(value), d.Size(), ErrShapeMismatch)
	}
	lp := d.LogProb(value)
	if math.IsNaN(lp) {
		return nil, fmt.Errorf("Sample(%q): log-density is NaN: %w", name, ErrInvalidDistribution)
	}
	site := Site{Name: name, Value: cloneValue(value), Observed: observed, LogProb: lp, Dist: d}
	if err := rt.trace.add(site); err != nil {
		return nil, err
	}
	if rt.hook != nil {
		rt.hook(site)
	}

	return cloneValue(value), nil
}

// Seeded reports whether fresh draws are available in this run.
func (rt *Runtime) Seeded() bool { return rt.seeded }

// withSeed returns a copy of rt sharing its trace and bookkeeping but keyed
// by seed.
func (rt *Runtime) withSeed(seed int64) *Runtime {
	inner := *rt
	inner.seed, inner.seeded = seed, true

	return &inner
}
