package hypotest

import (
	"math"

	"schoolstat/domain/core"
)

// OneSampleT tests whether the sample mean differs from the hypothesized mean
// using the sample-estimated standard deviation.
//
//	t = (mean - mu0) / (s / sqrt(n)), df = n - 1
func (e *Engine) OneSampleT(sample Sample, params OneSampleTParams) (*TestResult, error) {
	mean, err := Mean(sample)
	if err != nil {
		return nil, err
	}
	se, err := StandardError(sample)
	if err != nil {
		return nil, err
	}
	if se == 0 {
		return nil, core.NewInvalidParameterError("standard error", "is zero (constant sample)")
	}

	df := float64(len(sample) - 1)
	t := (mean - params.HypothesizedMean) / se
	p := e.twoTailedStudentT(t, df)

	alpha := effectiveAlpha(params.Alpha)
	return &TestResult{
		Test:             TestOneSampleT,
		Statistic:        t,
		PValue:           p,
		DF:               df,
		SampleSizes:      []int{len(sample)},
		Means:            []float64{mean},
		StdError:         se,
		HypothesizedMean: params.HypothesizedMean,
		Alpha:            alpha,
		RejectNull:       p < alpha,
	}, nil
}

// TwoSampleT tests the difference between the means of two independent
// samples. With EqualVariance set, the pooled form is used
// (df = n_a + n_b - 2); otherwise Welch's form with Welch-Satterthwaite
// degrees of freedom.
func (e *Engine) TwoSampleT(a, b Sample, params TwoSampleTParams) (*TestResult, error) {
	meanA, err := Mean(a)
	if err != nil {
		return nil, err
	}
	meanB, err := Mean(b)
	if err != nil {
		return nil, err
	}
	varA, err := Variance(a)
	if err != nil {
		return nil, err
	}
	varB, err := Variance(b)
	if err != nil {
		return nil, err
	}

	na, nb := float64(len(a)), float64(len(b))
	var se, df float64
	if params.EqualVariance {
		pooled := ((na-1)*varA + (nb-1)*varB) / (na + nb - 2)
		se = math.Sqrt(pooled * (1/na + 1/nb))
		df = na + nb - 2
	} else {
		sa, sb := varA/na, varB/nb
		se = math.Sqrt(sa + sb)
		df = (sa + sb) * (sa + sb) / (sa*sa/(na-1) + sb*sb/(nb-1))
	}
	if se == 0 {
		return nil, core.NewInvalidParameterError("standard error", "is zero (both samples constant)")
	}

	t := (meanA - meanB) / se
	p := e.twoTailedStudentT(t, df)

	// Cohen's d is reported on the pooled scale for both variants.
	effect := 0.0
	if pooled := ((na-1)*varA + (nb-1)*varB) / (na + nb - 2); pooled > 0 {
		effect = (meanA - meanB) / math.Sqrt(pooled)
	}

	alpha := effectiveAlpha(params.Alpha)
	return &TestResult{
		Test:        TestTwoSampleT,
		Statistic:   t,
		PValue:      p,
		DF:          df,
		SampleSizes: []int{len(a), len(b)},
		Means:       []float64{meanA, meanB},
		Variances:   []float64{varA, varB},
		StdError:    se,
		EffectSize:  effect,
		EffectUnit:  "d",
		Alpha:       alpha,
		RejectNull:  p < alpha,
	}, nil
}

// PairedT tests whether the mean of before-after differences is zero.
//
//	t = mean(d) / (sd(d) / sqrt(n)), df = n - 1
func (e *Engine) PairedT(before, after Sample, alpha float64) (*TestResult, error) {
	diff, err := pairedDifferences(before, after)
	if err != nil {
		return nil, err
	}
	res, err := e.OneSampleT(diff, OneSampleTParams{HypothesizedMean: 0, Alpha: alpha})
	if err != nil {
		return nil, err
	}
	res.Test = TestPairedT
	res.HypothesizedMean = 0
	if d, derr := CohenDPaired(before, after); derr == nil {
		res.EffectSize = d
		res.EffectUnit = "d"
	}
	return res, nil
}

// PairedZ is the large-sample normal approximation of PairedT: the same
// statistic evaluated against the standard normal CDF.
func (e *Engine) PairedZ(before, after Sample, alpha float64) (*TestResult, error) {
	diff, err := pairedDifferences(before, after)
	if err != nil {
		return nil, err
	}
	meanDiff, err := Mean(diff)
	if err != nil {
		return nil, err
	}
	se, err := StandardError(diff)
	if err != nil {
		return nil, err
	}
	if se == 0 {
		return nil, core.NewInvalidParameterError("standard error", "is zero (constant differences)")
	}

	z := meanDiff / se
	p := e.twoTailedNormal(z)

	a := effectiveAlpha(alpha)
	return &TestResult{
		Test:        TestPairedZ,
		Statistic:   z,
		PValue:      p,
		SampleSizes: []int{len(diff)},
		Means:       []float64{meanDiff},
		StdError:    se,
		Alpha:       a,
		RejectNull:  p < a,
	}, nil
}

// ConfidenceIntervalMean returns the two-sided confidence interval for the
// population mean at the given confidence level, using the Student's T
// quantile with n-1 degrees of freedom.
func (e *Engine) ConfidenceIntervalMean(sample Sample, confidenceLevel float64) (lower, upper float64, err error) {
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return 0, 0, core.NewInvalidParameterError("confidence level", "must be in (0, 1)")
	}
	mean, err := Mean(sample)
	if err != nil {
		return 0, 0, err
	}
	se, err := StandardError(sample)
	if err != nil {
		return 0, 0, err
	}

	df := float64(len(sample) - 1)
	tCrit := e.dist.StudentTQuantile(1-(1-confidenceLevel)/2, df)
	margin := tCrit * se
	return mean - margin, mean + margin, nil
}
