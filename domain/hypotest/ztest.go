package hypotest

import (
	"math"

	"schoolstat/domain/core"
)

// OneSampleZ tests whether the sample mean differs from the hypothesized mean,
// given a known population standard deviation.
//
//	z = (mean - mu0) / (sigma / sqrt(n))
//
// Requires n >= 1 and sigma > 0.
func (e *Engine) OneSampleZ(sample Sample, params OneSampleZParams) (*TestResult, error) {
	if params.PopulationStdDev <= 0 {
		return nil, core.NewInvalidParameterError("population std dev", "must be positive")
	}
	mean, err := Mean(sample)
	if err != nil {
		return nil, err
	}

	n := float64(len(sample))
	se := params.PopulationStdDev / math.Sqrt(n)
	z := (mean - params.HypothesizedMean) / se
	p := e.twoTailedNormal(z)

	alpha := effectiveAlpha(params.Alpha)
	return &TestResult{
		Test:             TestOneSampleZ,
		Statistic:        z,
		PValue:           p,
		SampleSizes:      []int{len(sample)},
		Means:            []float64{mean},
		StdError:         se,
		HypothesizedMean: params.HypothesizedMean,
		Alpha:            alpha,
		RejectNull:       p < alpha,
	}, nil
}

// TwoSampleZ tests the difference between two group means given known
// population standard deviations.
//
//	z = (mean_a - mean_b) / sqrt(sigma_a^2/n_a + sigma_b^2/n_b)
//
// Passing sample standard deviations is a documented large-sample
// approximation, not an error.
func (e *Engine) TwoSampleZ(a, b Sample, params TwoSampleZParams) (*TestResult, error) {
	if params.PopulationStdDevA <= 0 {
		return nil, core.NewInvalidParameterError("population std dev A", "must be positive")
	}
	if params.PopulationStdDevB <= 0 {
		return nil, core.NewInvalidParameterError("population std dev B", "must be positive")
	}
	meanA, err := Mean(a)
	if err != nil {
		return nil, err
	}
	meanB, err := Mean(b)
	if err != nil {
		return nil, err
	}

	na, nb := float64(len(a)), float64(len(b))
	varA := params.PopulationStdDevA * params.PopulationStdDevA
	varB := params.PopulationStdDevB * params.PopulationStdDevB
	se := math.Sqrt(varA/na + varB/nb)
	z := (meanA - meanB) / se
	p := e.twoTailedNormal(z)

	alpha := effectiveAlpha(params.Alpha)
	return &TestResult{
		Test:        TestTwoSampleZ,
		Statistic:   z,
		PValue:      p,
		SampleSizes: []int{len(a), len(b)},
		Means:       []float64{meanA, meanB},
		Variances:   []float64{varA, varB},
		StdError:    se,
		Alpha:       alpha,
		RejectNull:  p < alpha,
	}, nil
}
