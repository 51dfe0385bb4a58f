package surface

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whigg/subradar/scattering"
)

func TestInvertDefaults(t *testing.T) {
	// A coherent target of 0 dB (linear 1) exceeds every Fresnel
	// reflectivity, so no permittivity admits a real roughness: every row
	// keeps Sh 0 and Cl NaN, and the forward model is never invoked.
	est, err := Invert(scattering.ModelFresnel, scattering.ApproxGO, 0, -30, InvertConfig{
		Wf:    13.78e9,
		ThMax: 0.008,
	})
	require.NoError(t, err)

	require.Len(t, est.Ep, 50)
	require.Len(t, est.Sh, 50)
	require.Len(t, est.Cl, 50)
	assert.Equal(t, 1.4, est.Ep[0])
	assert.Equal(t, 2.5, est.Ep[49])

	for i := range est.Ep {
		assert.Zero(t, est.Sh[i], "Sh[%d]", i)
		assert.True(t, math.IsNaN(est.Cl[i]), "Cl[%d] = %g, want NaN", i, est.Cl[i])
	}
}

func TestInvertRecoversKnownSurface(t *testing.T) {
	// Generate a power pair from known surface parameters sitting exactly
	// on the search grids, then require the inversion to give them back.
	const (
		wf    = 13.78e9
		thMax = 0.008
		n     = 21
	)
	var (
		epRange    = [2]float64{1.4, 2.5}  // step 0.055; index 10 = 1.95
		clLogRange = [2]float64{-2, 1}     // step 0.15; index 10 = 10^-0.5
		epTrue     = 1.95
		clTrue     = math.Pow(10, -0.5)
		shTrue     = 2e-4
	)

	q := scattering.Query{Ep2: epTrue, Sh: shTrue, Cl: clTrue, Wf: wf}
	res, err := Predict(scattering.ModelFresnel, scattering.ApproxGO, q, PredictConfig{ThMax: thMax})
	require.NoError(t, err)
	require.False(t, math.IsNaN(res.Pc) || math.IsNaN(res.Pn))

	// Nudge the incoherent target just above the prediction so the true
	// grid point itself satisfies the strict crossing condition.
	est, err := Invert(scattering.ModelFresnel, scattering.ApproxGO, res.Pc, res.Pn+0.1, InvertConfig{
		Wf:         wf,
		ThMax:      thMax,
		EpRange:    epRange,
		ClLogRange: clLogRange,
		N:          n,
	})
	require.NoError(t, err)

	assert.InDelta(t, epTrue, est.Ep[10], 1e-9)
	assert.InEpsilon(t, shTrue, est.Sh[10], 1e-2, "recovered rms height")

	require.False(t, math.IsNaN(est.Cl[10]), "no correlation length recovered")
	clStep := (clLogRange[1] - clLogRange[0]) / float64(n-1)
	assert.InDelta(t, math.Log10(clTrue), math.Log10(est.Cl[10]), clStep+1e-9,
		"recovered correlation length beyond one grid step of the truth")
}

func TestInvertNoRealRoughnessRows(t *testing.T) {
	// Rows whose reflectivity cannot reproduce the coherent target keep
	// Sh exactly 0 and are never searched, whatever the cl grid holds.
	est, err := Invert(scattering.ModelFresnel, scattering.ApproxGO, -15, -30, InvertConfig{
		Wf:      13.78e9,
		ThMax:   0.008,
		EpRange: [2]float64{1.05, 2.5},
		N:       30,
	})
	require.NoError(t, err)

	// pc = -15 dB needs r² ≥ 10^-1.5; the lowest permittivities fall short.
	sawEmpty := false
	for i := range est.Ep {
		r := scattering.R(1, est.Ep[i], 1, 1, 0.008)
		if r*r < FromDB(-15) {
			sawEmpty = true
			assert.Zero(t, est.Sh[i], "Sh[%d] for ep=%g", i, est.Ep[i])
			assert.True(t, math.IsNaN(est.Cl[i]), "Cl[%d] for ep=%g", i, est.Ep[i])
		}
	}
	require.True(t, sawEmpty, "test range no longer covers the no-solution regime")
}

func TestInvertLinearTargets(t *testing.T) {
	cfg := InvertConfig{Wf: 13.78e9, ThMax: 0.008, N: 15}

	fromDB, err := Invert(scattering.ModelFresnel, scattering.ApproxGO, -15, -30, cfg)
	require.NoError(t, err)

	cfg.Linear = true
	fromLinear, err := Invert(scattering.ModelFresnel, scattering.ApproxGO, FromDB(-15), FromDB(-30), cfg)
	require.NoError(t, err)

	if diff := cmp.Diff(fromDB, fromLinear, cmpopts.EquateNaNs(), cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Errorf("linear and decibel targets disagree (-dB +linear):\n%s", diff)
	}
}

func TestInvertPropagatesModelErrors(t *testing.T) {
	// The target admits roughness solutions, so the scan reaches the
	// forward model and the resolution error must abort the inversion.
	_, err := Invert("no-such-model", "none", -15, -30, InvertConfig{
		Wf:    13.78e9,
		ThMax: 0.008,
		N:     10,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-model")
}

// Incoherent power must not decrease with correlation length at fixed
// roughness; the descending scan depends on it. A failure flags the model,
// not the solver.
func TestPredictMonotonicInCorrelationLength(t *testing.T) {
	prev := math.Inf(-1)
	for _, cl := range []float64{0.01, 0.03, 0.1, 0.3, 1, 3, 10} {
		q := scattering.Query{Ep2: 1.8, Sh: 1e-3, Cl: cl, Wf: 13.78e9}
		res, err := Predict(scattering.ModelFresnel, scattering.ApproxGO, q, PredictConfig{ThMax: 0.008})
		require.NoError(t, err)
		if res.Pn < prev {
			t.Fatalf("Pn decreased at cl=%g: %g < %g", cl, res.Pn, prev)
		}
		prev = res.Pn
	}
}
