package prob_test

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/lvlens/prob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	lineX    = []float64{0, 1, 2, 3, 4}
	lineData = []float64{1.1, 2.9, 5.2, 6.8, 9.1}
)

const lineNoise = 0.5

// lineModel is a straight-line regression with an observed site "obs".
func lineModel(data []float64) prob.Model {
	return func(rt *prob.Runtime) error {
		slope, err := rt.Sample("slope", prob.Normal{Mu: 0, Sigma: 1})
		if err != nil {
			return err
		}
		icpt, err := rt.Sample("intercept", prob.Normal{Mu: 0, Sigma: 2})
		if err != nil {
			return err
		}
		mean := make([]float64, len(lineX))
		for i, x := range lineX {
			mean[i] = slope[0]*x + icpt[0]
		}
		_, err = rt.Sample("obs", prob.DiagNormal{Mean: mean, Sigma: []float64{lineNoise}}, prob.Obs(data))

		return err
	}
}

func newLine(t *testing.T, opts ...prob.Option) *prob.Adapter {
	t.Helper()
	a, err := prob.New(lineModel(lineData), opts...)
	require.NoError(t, err)

	return a
}

// TestGetTrace_Deterministic checks that a seed fixes every draw.
func TestGetTrace_Deterministic(t *testing.T) {
	a := newLine(t)

	t1, err := a.GetTrace(42)
	require.NoError(t, err)
	t2, err := a.GetTrace(42)
	require.NoError(t, err)
	assert.Equal(t, t1.Latent(), t2.Latent(), "same seed must reproduce draws")
	assert.Equal(t, []string{"slope", "intercept", "obs"}, t1.Names())

	t3, err := a.GetTrace(43)
	require.NoError(t, err)
	assert.NotEqual(t, t1.Latent(), t3.Latent(), "different seeds should differ")
}

// TestGetSample_Partition verifies that samples are exactly the latent sites.
func TestGetSample_Partition(t *testing.T) {
	a := newLine(t)

	tr, err := a.GetTrace(prob.DefaultSeed)
	require.NoError(t, err)
	obs, ok := tr.Site("obs")
	require.True(t, ok)
	assert.True(t, obs.Observed)
	assert.Equal(t, lineData, obs.Value)
	assert.Equal(t, prob.Params{"obs": lineData}, tr.ObservedValues())

	s, err := a.GetSample(prob.DefaultSeed)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"intercept", "slope"}, s.Names())
	assert.Equal(t, tr.Latent(), s)
	assert.Equal(t, tr.Len(), len(s)+1)
}

// TestLogProb_Additivity checks LogProb = prior + LogLikelihood against
// densities computed by hand.
func TestLogProb_Additivity(t *testing.T) {
	a := newLine(t)
	p := prob.Params{"slope": {2}, "intercept": {1}}

	lp, err := a.LogProb(p)
	require.NoError(t, err)
	ll, err := a.LogLikelihood(p)
	require.NoError(t, err)

	prior := distuv.Normal{Mu: 0, Sigma: 1}.LogProb(2) + distuv.Normal{Mu: 0, Sigma: 2}.LogProb(1)
	var want float64
	for i, x := range lineX {
		want += distuv.Normal{Mu: 2*x + 1, Sigma: lineNoise}.LogProb(lineData[i])
	}
	assert.InDelta(t, want, ll, 1e-12)
	assert.InDelta(t, prior+ll, lp, 1e-12)

	sites, err := a.LogLikelihoodSites(p)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"obs": ll}, sites)
}

// TestLogProb_Errors covers parameter sets that do not match the latent sites.
func TestLogProb_Errors(t *testing.T) {
	a := newLine(t)

	cases := []struct {
		name   string
		params prob.Params
		want   error
	}{
		{"missing", prob.Params{"slope": {1}}, prob.ErrUnknownSite},
		{"extra", prob.Params{"slope": {1}, "intercept": {0}, "noise": {1}}, prob.ErrUnknownSite},
		{"observed", prob.Params{"slope": {1}, "intercept": {0}, "obs": lineData}, prob.ErrUnknownSite},
		{"shape", prob.Params{"slope": {1, 2}, "intercept": {0}}, prob.ErrShapeMismatch},
		{"nil", nil, prob.ErrUnknownSite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := a.LogProb(tc.params)
			assert.ErrorIs(t, err, tc.want)
			_, err = a.LogLikelihood(tc.params)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestLogProb_OutOfSupport expects -Inf rather than an error.
func TestLogProb_OutOfSupport(t *testing.T) {
	a, err := prob.New(func(rt *prob.Runtime) error {
		_, err := rt.Sample("u", prob.Uniform{Min: 0, Max: 1})
		return err
	})
	require.NoError(t, err)

	lp, err := a.LogProb(prob.Params{"u": {2}})
	require.NoError(t, err)
	assert.True(t, math.IsInf(lp, -1))
}

// TestLogLikelihood_ObservationSite covers a missing or unbound observation.
func TestLogLikelihood_ObservationSite(t *testing.T) {
	p := prob.Params{"slope": {1}, "intercept": {0}}

	a := newLine(t, prob.WithObservationSite("y"))
	assert.Equal(t, "y", a.ObservationSite())
	_, err := a.LogLikelihood(p)
	assert.ErrorIs(t, err, prob.ErrUnknownSite)

	unbound, err := prob.New(lineModel(nil))
	require.NoError(t, err)
	p["obs"] = lineData
	_, err = unbound.LogLikelihood(p)
	assert.ErrorIs(t, err, prob.ErrNotObserved)
}

// TestDrawSamples_Conditioning clamps the observation and resamples the rest.
func TestDrawSamples_Conditioning(t *testing.T) {
	a := newLine(t)
	clamp := []float64{0, 0, 0, 0, 0}

	d, err := a.DrawSamples(context.Background(), 8, clamp, 7)
	require.NoError(t, err)
	assert.True(t, d.Batched())
	assert.Equal(t, 8, d.NumSamples())
	assert.Equal(t, []string{"slope", "intercept", "obs"}, d.Names())

	obs, ok := d.Site("obs")
	require.True(t, ok)
	require.Len(t, obs, 8)
	for i := range obs {
		assert.Equal(t, clamp, obs[i], "draw %d", i)
	}
	slopes, _ := d.Site("slope")
	assert.NotEqual(t, slopes[0], slopes[1], "latent sites must vary across draws")
}

// TestDrawSamples_Predictive resamples the observation site.
func TestDrawSamples_Predictive(t *testing.T) {
	a := newLine(t)

	d, err := a.DrawSamples(context.Background(), 4, nil, 7)
	require.NoError(t, err)
	obs, _ := d.Site("obs")
	for i := range obs {
		assert.Len(t, obs[i], len(lineData))
		assert.NotEqual(t, lineData, obs[i], "draw %d kept the bound data", i)
	}
}

// TestDrawSamples_MatchesGetSample ties draw i to GetSample(DrawSeed(seed, i)).
func TestDrawSamples_MatchesGetSample(t *testing.T) {
	a := newLine(t)
	const seed int64 = 99

	d, err := a.DrawSamples(context.Background(), 5, nil, seed)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		s, err := a.GetSample(prob.DrawSeed(seed, i))
		require.NoError(t, err)
		draw := d.Draw(i)
		assert.Equal(t, s["slope"], draw["slope"], "draw %d", i)
		assert.Equal(t, s["intercept"], draw["intercept"], "draw %d", i)
	}
	assert.Nil(t, d.Draw(5))
}

// TestDrawSamples_Unbatched uses the top-level seed for numSamples == 0.
func TestDrawSamples_Unbatched(t *testing.T) {
	a := newLine(t)

	d, err := a.DrawSamples(context.Background(), 0, nil, 3)
	require.NoError(t, err)
	assert.False(t, d.Batched())
	assert.Equal(t, 1, d.NumSamples())

	s, err := a.GetSample(3)
	require.NoError(t, err)
	draw := d.Draw(0)
	assert.Equal(t, s["slope"], draw["slope"])
	assert.Equal(t, s["intercept"], draw["intercept"])
}

// TestDrawSamples_ConcurrencyIndependent checks that the worker bound does
// not change results.
func TestDrawSamples_ConcurrencyIndependent(t *testing.T) {
	serial := newLine(t, prob.WithConcurrency(1))
	wide := newLine(t, prob.WithConcurrency(16))

	d1, err := serial.DrawSamples(context.Background(), 32, nil, 11)
	require.NoError(t, err)
	d2, err := wide.DrawSamples(context.Background(), 32, nil, 11)
	require.NoError(t, err)
	for _, name := range d1.Names() {
		v1, _ := d1.Site(name)
		v2, _ := d2.Site(name)
		assert.Equal(t, v1, v2, name)
	}
}

// TestDrawSamples_Errors covers argument and context failures.
func TestDrawSamples_Errors(t *testing.T) {
	a := newLine(t)

	_, err := a.DrawSamples(context.Background(), -1, nil, 0)
	assert.ErrorIs(t, err, prob.ErrBadNumSamples)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.DrawSamples(ctx, 4, nil, 0)
	assert.ErrorIs(t, err, context.Canceled)
	d, err := a.DrawSamples(ctx, 0, nil, 0)
	assert.ErrorIs(t, err, context.Canceled, "the un-batched path honours ctx too")
	assert.Nil(t, d)

	other := newLine(t, prob.WithObservationSite("y"))
	_, err = other.DrawSamples(context.Background(), 2, []float64{1}, 0)
	assert.ErrorIs(t, err, prob.ErrUnknownSite, "conditioning an undeclared site")

	_, err = other.DrawSamples(context.Background(), 2, nil, 0)
	assert.NoError(t, err, "resampling an undeclared site is a no-op")
}

// TestSummarize recovers the prior moments from many draws.
func TestSummarize(t *testing.T) {
	a, err := prob.New(func(rt *prob.Runtime) error {
		_, err := rt.Sample("theta", prob.Normal{Mu: 3, Sigma: 0.5, N: 2})
		return err
	})
	require.NoError(t, err)

	d, err := a.DrawSamples(context.Background(), 4000, nil, 1)
	require.NoError(t, err)
	s, err := d.Summarize("theta")
	require.NoError(t, err)
	require.Len(t, s.Mean, 2)
	for k := 0; k < 2; k++ {
		assert.InDelta(t, 3, s.Mean[k], 0.05)
		assert.InDelta(t, 0.5, s.StdDev[k], 0.05)
		assert.InDelta(t, 2.5, s.Lower[k], 0.1)
		assert.InDelta(t, 3.5, s.Upper[k], 0.1)
	}

	_, err = d.Summarize("missing")
	assert.ErrorIs(t, err, prob.ErrUnknownSite)
}

// TestLogProbGrad compares against the analytic gradient of
// mu ~ N(0, 1), y ~ N(mu, 1) with y = 2: d/dmu = -mu + (2 - mu).
func TestLogProbGrad(t *testing.T) {
	a, err := prob.New(func(rt *prob.Runtime) error {
		mu, err := rt.Sample("mu", prob.Normal{Mu: 0, Sigma: 1})
		if err != nil {
			return err
		}
		_, err = rt.Sample("obs", prob.Normal{Mu: mu[0], Sigma: 1}, prob.Obs([]float64{2}))
		return err
	})
	require.NoError(t, err)

	for _, mu := range []float64{-1, 0, 0.5, 3} {
		g, err := a.LogProbGrad(prob.Params{"mu": {mu}})
		require.NoError(t, err)
		assert.InDelta(t, 2-2*mu, g["mu"][0], 1e-5, "mu=%v", mu)
	}

	_, err = a.LogProbGrad(prob.Params{"nu": {0}})
	assert.ErrorIs(t, err, prob.ErrUnknownSite)
}

// TestLogProbGrad_Vector checks the shape of a multi-element gradient.
func TestLogProbGrad_Vector(t *testing.T) {
	a := newLine(t)
	p := prob.Params{"slope": {2}, "intercept": {1}}

	g, err := a.LogProbGrad(p)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"intercept", "slope"}, g.Names())

	// d/dintercept = -b/4 + sum(r)/sigma^2 with r = data - (2x + 1).
	var sum float64
	for i, x := range lineX {
		sum += lineData[i] - (2*x + 1)
	}
	assert.InDelta(t, -1.0/4+sum/(lineNoise*lineNoise), g["intercept"][0], 1e-4)
}

// TestNew_Errors covers constructor validation.
func TestNew_Errors(t *testing.T) {
	_, err := prob.New(nil)
	assert.ErrorIs(t, err, prob.ErrNilModel)

	for name, opt := range map[string]prob.Option{
		"site":        prob.WithObservationSite(""),
		"hook":        prob.WithSiteHook(nil),
		"concurrency": prob.WithConcurrency(0),
	} {
		_, err := prob.New(lineModel(lineData), opt)
		assert.ErrorIs(t, err, prob.ErrOptionViolation, name)
	}
}

// TestSiteHook sees every site of every run.
func TestSiteHook(t *testing.T) {
	var (
		mu    sync.Mutex
		seen  = map[string]int{}
		calls atomic.Int64
	)
	a := newLine(t, prob.WithSiteHook(func(s prob.Site) {
		calls.Add(1)
		mu.Lock()
		seen[s.Name]++
		mu.Unlock()
	}))

	_, err := a.DrawSamples(context.Background(), 10, nil, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 30, calls.Load())
	assert.Equal(t, map[string]int{"slope": 10, "intercept": 10, "obs": 10}, seen)
}

// TestSeededModel_Precedence checks that the inner seed wins.
func TestSeededModel_Precedence(t *testing.T) {
	a := newLine(t)

	inner, err := prob.Execute(a.SeededModel(7), prob.WithSeed(1))
	require.NoError(t, err)
	direct, err := a.GetTrace(7)
	require.NoError(t, err)
	assert.Equal(t, direct.Latent(), inner.Latent())
}
