package prob

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Site is the record of one sample site in a run.
type Site struct {
	// Name is the site's stable identifier.
	Name string

	// Value is the site's value in this run. Owned by the trace; do not modify.
	Value []float64

	// Observed is true iff Value was supplied from outside the program's
	// randomness: bound data (Obs) or a condition. Substituted latent values
	// are not observed.
	Observed bool

	// LogProb is Dist's log-density at Value.
	LogProb float64

	// Dist is the site's declared distribution.
	Dist Distribution
}

// Trace is the ordered record of every site of one program run.
type Trace struct {
	sites []Site
	index map[string]int
}

func newTrace() *Trace {
	return &Trace{index: make(map[string]int)}
}

// add appends s or fails with ErrDuplicateSite.
func (t *Trace) add(s Site) error {
	if _, dup := t.index[s.Name]; dup {
		return fmt.Errorf("site %q: %w", s.Name, ErrDuplicateSite)
	}
	t.index[s.Name] = len(t.sites)
	t.sites = append(t.sites, s)

	return nil
}

func (t *Trace) has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of sites.
func (t *Trace) Len() int { return len(t.sites) }

// Names returns site names in execution order.
func (t *Trace) Names() []string {
	names := make([]string, len(t.sites))
	for i := range t.sites {
		names[i] = t.sites[i].Name
	}

	return names
}

// Site returns the named site.
func (t *Trace) Site(name string) (Site, bool) {
	i, ok := t.index[name]
	if !ok {
		return Site{}, false
	}

	return t.sites[i], true
}

// Sites returns all sites in execution order.
func (t *Trace) Sites() []Site {
	out := make([]Site, len(t.sites))
	copy(out, t.sites)

	return out
}

// Latent returns copies of the values of every non-observed site: one
// self-consistent draw from the joint prior when the run was seeded.
func (t *Trace) Latent() Params { return t.collect(false) }

// ObservedValues returns copies of the values of every observed site.
func (t *Trace) ObservedValues() Params { return t.collect(true) }

func (t *Trace) collect(observed bool) Params {
	out := Params{}
	for i := range t.sites {
		if t.sites[i].Observed == observed {
			out[t.sites[i].Name] = cloneValue(t.sites[i].Value)
		}
	}

	return out
}

// LogJoint is the sum of every site's log-density.
func (t *Trace) LogJoint() float64 {
	lps := make([]float64, len(t.sites))
	for i := range t.sites {
		lps[i] = t.sites[i].LogProb
	}

	return floats.Sum(lps)
}

// LogPrior is the sum of the non-observed sites' log-densities.
func (t *Trace) LogPrior() float64 { return t.sumWhere(false) }

// LogLikelihood is the sum of the observed sites' log-densities.
func (t *Trace) LogLikelihood() float64 { return t.sumWhere(true) }

func (t *Trace) sumWhere(observed bool) float64 {
	var sum float64
	for i := range t.sites {
		if t.sites[i].Observed == observed {
			sum += t.sites[i].LogProb
		}
	}

	return sum
}
