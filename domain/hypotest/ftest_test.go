package hypotest_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolstat/domain/core"
	"schoolstat/domain/hypotest"
)

// varianceSample builds an even-length sample with exact variance: pairs
// around the mean with delta = sqrt(targetVar*(n-1)/n).
func varianceSample(mean, targetVar float64, pairs int) hypotest.Sample {
	n := float64(2 * pairs)
	delta := math.Sqrt(targetVar * (n - 1) / n)
	return pairedSample(mean, delta, pairs)
}

func TestVarianceRatio_SchoolVarianceScenario(t *testing.T) {
	// Variance A 83.1642 vs variance B 47.0979 with n = 50 per group:
	// F = 1.7658 and two-tailed p around 0.04919 (rejects at alpha 0.05).
	a := varianceSample(70, 83.1642, 25)
	b := varianceSample(70, 47.0979, 25)

	res, err := newEngine().VarianceRatio(a, b, hypotest.FTestParams{})
	require.NoError(t, err)

	assert.InDelta(t, 1.7658, res.Statistic, 1e-3)
	assert.InDelta(t, 49.0, res.NumeratorDF, 1e-12)
	assert.InDelta(t, 49.0, res.DenominatorDF, 1e-12)
	assert.InDelta(t, 0.04919, res.PValue, 4e-3)
	assert.True(t, res.RejectNull)
}

func TestVarianceRatio_FixedNumeratorConvention(t *testing.T) {
	// The numerator is always sample A; swapping the samples inverts the
	// statistic but the two-tailed p-value is unchanged.
	e := newEngine()
	a := varianceSample(10, 9.0, 10)
	b := varianceSample(10, 4.0, 10)

	fwd, err := e.VarianceRatio(a, b, hypotest.FTestParams{})
	require.NoError(t, err)
	rev, err := e.VarianceRatio(b, a, hypotest.FTestParams{})
	require.NoError(t, err)

	assert.InDelta(t, 9.0/4.0, fwd.Statistic, 1e-9)
	assert.InDelta(t, 4.0/9.0, rev.Statistic, 1e-9)
	assert.InDelta(t, fwd.PValue, rev.PValue, 1e-9)
}

func TestVarianceRatio_RepeatedCallsAreConsistent(t *testing.T) {
	e := newEngine()
	a := varianceSample(5, 6.25, 8)
	b := varianceSample(5, 2.25, 8)

	first, err := e.VarianceRatio(a, b, hypotest.FTestParams{})
	require.NoError(t, err)
	second, err := e.VarianceRatio(a, b, hypotest.FTestParams{})
	require.NoError(t, err)

	assert.Equal(t, first.Statistic, second.Statistic)
	assert.Equal(t, first.PValue, second.PValue)
}

func TestVarianceRatio_EqualVariancesGiveMaximalP(t *testing.T) {
	e := newEngine()
	a := varianceSample(0, 4.0, 12)
	b := varianceSample(100, 4.0, 12)

	res, err := e.VarianceRatio(a, b, hypotest.FTestParams{})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Statistic, 1e-9)
	assert.InDelta(t, 1.0, res.PValue, 1e-6)
	assert.False(t, res.RejectNull)
}

func TestVarianceRatio_ZeroVariance(t *testing.T) {
	e := newEngine()
	constant := hypotest.Sample{4, 4, 4, 4}
	varied := hypotest.Sample{1, 2, 3, 4}

	_, err := e.VarianceRatio(varied, constant, hypotest.FTestParams{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))

	_, err = e.VarianceRatio(constant, varied, hypotest.FTestParams{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))
}

func TestVarianceRatio_InsufficientData(t *testing.T) {
	_, err := newEngine().VarianceRatio(hypotest.Sample{1}, hypotest.Sample{1, 2, 3}, hypotest.FTestParams{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInsufficientData))
}

func TestLevene_EqualSpreadsFailToReject(t *testing.T) {
	a := hypotest.Sample{4, 5, 6, 7, 8, 9, 10}
	b := hypotest.Sample{54, 55, 56, 57, 58, 59, 60}

	res, err := newEngine().Levene(a, b, 0.05)
	require.NoError(t, err)
	assert.Equal(t, hypotest.TestLevene, res.Test)
	// Identical spread around each median: the between-group term vanishes.
	assert.InDelta(t, 0.0, res.Statistic, 1e-9)
	assert.False(t, res.RejectNull)
}

func TestLevene_DetectsGrosslyUnequalSpread(t *testing.T) {
	a := hypotest.Sample{-30, -20, -10, 0, 10, 20, 30, -25, 25, -15, 15, 5}
	b := hypotest.Sample{-1, -0.5, 0, 0.5, 1, -0.8, 0.8, -0.3, 0.3, 0.1, -0.1, 0.6}

	res, err := newEngine().Levene(a, b, 0.05)
	require.NoError(t, err)
	assert.Greater(t, res.Statistic, 10.0)
	assert.Less(t, res.PValue, 0.01)
	assert.True(t, res.RejectNull)
}

func TestLevene_InsufficientData(t *testing.T) {
	_, err := newEngine().Levene(hypotest.Sample{1}, hypotest.Sample{1, 2}, 0.05)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInsufficientData))
}
