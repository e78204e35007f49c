package hypotest

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolstat/domain/core"
)

func TestMean(t *testing.T) {
	m, err := Mean(Sample{2, 4, 6, 8})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, m, 1e-12)
}

func TestMean_EmptyInput(t *testing.T) {
	_, err := Mean(Sample{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrEmptyInput))
}

func TestMeanAndVariance_ConstantSample(t *testing.T) {
	s := Sample{7.5, 7.5, 7.5, 7.5, 7.5}

	m, err := Mean(s)
	require.NoError(t, err)
	assert.Equal(t, 7.5, m)

	v, err := Variance(s)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestVariance_BesselCorrection(t *testing.T) {
	// Deviations from mean 3 are -2, -1, 0, 1, 2; sum of squares 10, n-1 = 4.
	v, err := Variance(Sample{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, v, 1e-12)
}

func TestVariance_InsufficientData(t *testing.T) {
	_, err := Variance(Sample{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInsufficientData))
}

func TestStandardError(t *testing.T) {
	s := Sample{1, 2, 3, 4, 5}
	se, err := StandardError(s)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2.5/5), se, 1e-12)
}

func TestPooledVariance(t *testing.T) {
	a := Sample{1, 2, 3, 4, 5} // var 2.5, df 4
	b := Sample{10, 14}        // var 8, df 1
	pooled, err := PooledVariance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, (4*2.5+1*8.0)/5.0, pooled, 1e-12)
}

func TestCohenD_MatchesManualPooledForm(t *testing.T) {
	a := Sample{1, 2, 3, 4, 5}
	b := Sample{3, 4, 5, 6, 7}
	d, err := CohenD(a, b)
	require.NoError(t, err)
	// Same variance in both groups, so the pooled SD is sqrt(2.5).
	assert.InDelta(t, -2.0/math.Sqrt(2.5), d, 1e-12)
}

func TestCohenD_ZeroPooledVariance(t *testing.T) {
	_, err := CohenD(Sample{3, 3, 3}, Sample{5, 5, 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))
}

func TestCohenDPaired(t *testing.T) {
	before := Sample{10, 12, 14, 16}
	after := Sample{9, 10, 13, 14}
	// Differences 1, 2, 1, 2: mean 1.5, sample SD sqrt(1/3).
	d, err := CohenDPaired(before, after)
	require.NoError(t, err)
	assert.InDelta(t, 1.5/math.Sqrt(1.0/3.0), d, 1e-9)
}

func TestCohenDPaired_UnequalLengths(t *testing.T) {
	_, err := CohenDPaired(Sample{1, 2, 3}, Sample{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))
}
