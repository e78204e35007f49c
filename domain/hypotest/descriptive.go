package hypotest

import (
	"math"

	"github.com/montanaflynn/stats"

	"schoolstat/domain/core"
)

// Mean returns the arithmetic mean of the sample
func Mean(s Sample) (float64, error) {
	if len(s) == 0 {
		return 0, core.NewEmptyInputError("sample")
	}
	m, err := stats.Mean(stats.Float64Data(s))
	if err != nil {
		return 0, core.NewEmptyInputError("sample")
	}
	return m, nil
}

// Variance returns the sample variance with Bessel's correction (n-1 divisor)
func Variance(s Sample) (float64, error) {
	if len(s) < 2 {
		return 0, core.NewInsufficientDataError("sample", len(s), 2)
	}
	v, err := stats.SampleVariance(stats.Float64Data(s))
	if err != nil {
		return 0, core.NewInsufficientDataError("sample", len(s), 2)
	}
	return v, nil
}

// StdDev returns the sample standard deviation (sqrt of Variance)
func StdDev(s Sample) (float64, error) {
	v, err := Variance(s)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// StandardError returns sqrt(Variance/n), the standard error of the mean
func StandardError(s Sample) (float64, error) {
	v, err := Variance(s)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v / float64(len(s))), nil
}

// PooledVariance returns the df-weighted average of the two sample variances:
// ((n_a-1)*var_a + (n_b-1)*var_b) / (n_a+n_b-2)
func PooledVariance(a, b Sample) (float64, error) {
	varA, err := Variance(a)
	if err != nil {
		return 0, err
	}
	varB, err := Variance(b)
	if err != nil {
		return 0, err
	}
	na, nb := float64(len(a)), float64(len(b))
	return ((na-1)*varA + (nb-1)*varB) / (na + nb - 2), nil
}

// CohenD returns Cohen's d for two independent samples using the pooled
// standard deviation
func CohenD(a, b Sample) (float64, error) {
	meanA, err := Mean(a)
	if err != nil {
		return 0, err
	}
	meanB, err := Mean(b)
	if err != nil {
		return 0, err
	}
	pooled, err := PooledVariance(a, b)
	if err != nil {
		return 0, err
	}
	if pooled == 0 {
		return 0, core.NewInvalidParameterError("pooled variance", "is zero")
	}
	return (meanA - meanB) / math.Sqrt(pooled), nil
}

// CohenDPaired returns Cohen's d for paired samples using the standard
// deviation of the differences
func CohenDPaired(before, after Sample) (float64, error) {
	diff, err := pairedDifferences(before, after)
	if err != nil {
		return 0, err
	}
	meanDiff, err := Mean(diff)
	if err != nil {
		return 0, err
	}
	sdDiff, err := StdDev(diff)
	if err != nil {
		return 0, err
	}
	if sdDiff == 0 {
		return 0, core.NewInvalidParameterError("difference std dev", "is zero")
	}
	return meanDiff / sdDiff, nil
}

func pairedDifferences(before, after Sample) (Sample, error) {
	if len(before) != len(after) {
		return nil, core.NewInvalidParameterError("paired samples", "have unequal lengths")
	}
	if len(before) < 2 {
		return nil, core.NewInsufficientDataError("paired sample", len(before), 2)
	}
	diff := make(Sample, len(before))
	for i := range before {
		diff[i] = before[i] - after[i]
	}
	return diff, nil
}
