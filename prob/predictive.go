package prob

import (
	"context"
	"fmt"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// DrawSamples simulates from the joint prior predictive distribution, or
// from the joint distribution with the observation site clamped to obs.
//
// numSamples == 0 gives one un-batched realisation keyed by seed itself.
// numSamples > 0 gives numSamples independent realisations; draw i is keyed
// by DrawSeed(seed, i), so its latent values equal GetSample(DrawSeed(seed, i))
// when obs is nil. Draws run concurrently, bounded by WithConcurrency, and
// the result does not depend on scheduling.
//
// Errors: ErrBadNumSamples for numSamples < 0; ErrUnknownSite if obs is set
// and the program never declares the observation site; ctx.Err() if ctx is
// done before all draws are scheduled; anything a run returns.
func (a *Adapter) DrawSamples(ctx context.Context, numSamples int, obs []float64, seed int64) (*Draws, error) {
	if numSamples < 0 {
		return nil, fmt.Errorf("DrawSamples(%d): %w", numSamples, ErrBadNumSamples)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("DrawSamples: %w", err)
	}
	mode := WithResampled(a.obsSite)
	if obs != nil {
		mode = WithConditions(Params{a.obsSite: cloneValue(obs)})
	}

	if numSamples == 0 {
		tr, err := a.run(a.model, mode, WithSeed(seed))
		if err != nil {
			return nil, fmt.Errorf("DrawSamples: %w", err)
		}

		return collectDraws([]*Trace{tr}, false), nil
	}

	traces := make([]*Trace, numSamples)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i := 0; i < numSamples; i++ {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tr, err := a.run(a.model, mode, WithSeed(DrawSeed(seed, i)))
			if err != nil {
				return fmt.Errorf("draw %d: %w", i, err)
			}
			traces[i] = tr

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("DrawSamples: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("DrawSamples: %w", err)
	}

	return collectDraws(traces, true), nil
}

// Draws holds the site values of a DrawSamples call.
type Draws struct {
	batched bool
	n       int
	names   []string
	sites   map[string][][]float64
}

func collectDraws(traces []*Trace, batched bool) *Draws {
	d := &Draws{batched: batched, n: len(traces), sites: make(map[string][][]float64)}
	for i, tr := range traces {
		for _, s := range tr.sites {
			vals, ok := d.sites[s.Name]
			if !ok {
				d.names = append(d.names, s.Name)
				vals = make([][]float64, len(traces))
			}
			vals[i] = cloneValue(s.Value)
			d.sites[s.Name] = vals
		}
	}

	return d
}

// NumSamples returns the number of realisations held (1 when un-batched).
func (d *Draws) NumSamples() int { return d.n }

// Batched reports whether the draws carry a leading sample axis, i.e. the
// call asked for numSamples > 0.
func (d *Draws) Batched() bool { return d.batched }

// Names returns site names in order of first appearance.
func (d *Draws) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)

	return out
}

// Site returns the values of the named site, indexed by draw. A site a
// draw did not visit has a nil entry.
func (d *Draws) Site(name string) ([][]float64, bool) {
	vals, ok := d.sites[name]
	if !ok {
		return nil, false
	}
	out := make([][]float64, len(vals))
	for i := range vals {
		out[i] = cloneValue(vals[i])
	}

	return out, true
}

// Draw returns the site values of draw i.
func (d *Draws) Draw(i int) Params {
	if i < 0 || i >= d.n {
		return nil
	}
	out := Params{}
	for name, vals := range d.sites {
		if vals[i] != nil {
			out[name] = cloneValue(vals[i])
		}
	}

	return out
}

// Summary holds per-element statistics of one site across draws.
type Summary struct {
	Mean   []float64
	StdDev []float64
	// Lower and Upper are the nearest-rank 16th and 84th percentiles, the
	// one-sigma band for a normal marginal.
	Lower []float64
	Upper []float64
}

// Summarize computes per-element statistics of the named site across draws.
//
// Errors: ErrUnknownSite if no draw holds name; ErrShapeMismatch if draws
// disagree on the site's length.
func (d *Draws) Summarize(name string) (Summary, error) {
	vals, ok := d.sites[name]
	if !ok {
		return Summary{}, fmt.Errorf("Summarize(%q): %w", name, ErrUnknownSite)
	}
	var rows [][]float64
	for _, v := range vals {
		if v != nil {
			rows = append(rows, v)
		}
	}
	size := len(rows[0])
	for _, v := range rows {
		if len(v) != size {
			return Summary{}, fmt.Errorf("Summarize(%q): %w", name, ErrShapeMismatch)
		}
	}

	s := Summary{
		Mean:   make([]float64, size),
		StdDev: make([]float64, size),
		Lower:  make([]float64, size),
		Upper:  make([]float64, size),
	}
	col := make(stats.Float64Data, len(rows))
	for k := 0; k < size; k++ {
		for i, v := range rows {
			col[i] = v[k]
		}
		var err error
		if s.Mean[k], err = stats.Mean(col); err != nil {
			return Summary{}, fmt.Errorf("Summarize(%q): %w", name, err)
		}
		if s.StdDev[k], err = stats.StandardDeviation(col); err != nil {
			return Summary{}, fmt.Errorf("Summarize(%q): %w", name, err)
		}
		if s.Lower[k], err = stats.PercentileNearestRank(col, 16); err != nil {
			return Summary{}, fmt.Errorf("Summarize(%q): %w", name, err)
		}
		if s.Upper[k], err = stats.PercentileNearestRank(col, 84); err != nil {
			return Summary{}, fmt.Errorf("Summarize(%q): %w", name, err)
		}
	}

	return s, nil
}
