package prob

import (
	"fmt"
	"runtime"
)

// DefaultObservationSite is the site name LogLikelihood and DrawSamples
// treat as the observation unless WithObservationSite says otherwise.
const DefaultObservationSite = "obs"

// Option configures an Adapter. Invalid values are recorded and surfaced as
// ErrOptionViolation by New.
type Option func(*options)

type options struct {
	obsSite string
	hook    func(Site)
	workers int
	err     error
}

func defaultOptions() options {
	return options{obsSite: DefaultObservationSite, workers: runtime.GOMAXPROCS(0)}
}

// WithObservationSite names the site holding the modeled data.
func WithObservationSite(name string) Option {
	return func(o *options) {
		if name == "" {
			o.err = fmt.Errorf("WithObservationSite(\"\"): %w", ErrOptionViolation)
			return
		}
		o.obsSite = name
	}
}

// WithSiteHook registers fn to observe every site recorded by the adapter's
// runs. DrawSamples calls fn from several goroutines; fn must be safe for
// concurrent use.
func WithSiteHook(fn func(Site)) Option {
	return func(o *options) {
		if fn == nil {
			o.err = fmt.Errorf("WithSiteHook(nil): %w", ErrOptionViolation)
			return
		}
		o.hook = fn
	}
}

// WithConcurrency bounds the number of draws DrawSamples evaluates at once.
// The default is GOMAXPROCS. n must be >= 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("WithConcurrency(%d): %w", n, ErrOptionViolation)
			return
		}
		o.workers = n
	}
}
