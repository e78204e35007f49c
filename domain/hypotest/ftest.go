package hypotest

import (
	"math"

	"github.com/montanaflynn/stats"

	"schoolstat/domain/core"
)

// VarianceRatio runs the F-test for equality of two variances.
//
// Convention: the numerator is always sample A (F = var_a / var_b), applied
// consistently across calls. The p-value is two-tailed:
//
//	p = 2 * min(F_cdf(F, df_a, df_b), 1 - F_cdf(F, df_a, df_b))
func (e *Engine) VarianceRatio(a, b Sample, params FTestParams) (*TestResult, error) {
	varA, err := Variance(a)
	if err != nil {
		return nil, err
	}
	varB, err := Variance(b)
	if err != nil {
		return nil, err
	}
	if varB == 0 {
		return nil, core.NewInvalidParameterError("denominator variance", "is zero")
	}
	if varA == 0 {
		return nil, core.NewInvalidParameterError("numerator variance", "is zero")
	}

	dfA := float64(len(a) - 1)
	dfB := float64(len(b) - 1)
	f := varA / varB
	cdf := e.dist.FCDF(f, dfA, dfB)
	p := clampP(2 * math.Min(cdf, 1-cdf))

	meanA, _ := Mean(a)
	meanB, _ := Mean(b)

	alpha := effectiveAlpha(params.Alpha)
	return &TestResult{
		Test:          TestVarianceRatio,
		Statistic:     f,
		PValue:        p,
		NumeratorDF:   dfA,
		DenominatorDF: dfB,
		SampleSizes:   []int{len(a), len(b)},
		Means:         []float64{meanA, meanB},
		Variances:     []float64{varA, varB},
		Alpha:         alpha,
		RejectNull:    p < alpha,
	}, nil
}

// Levene runs the Brown-Forsythe variant of Levene's test (median centered)
// for equality of variances across two groups. More robust to non-normality
// than the variance-ratio F-test.
func (e *Engine) Levene(a, b Sample, alpha float64) (*TestResult, error) {
	if len(a) < 2 {
		return nil, core.NewInsufficientDataError("sample A", len(a), 2)
	}
	if len(b) < 2 {
		return nil, core.NewInsufficientDataError("sample B", len(b), 2)
	}

	za, err := absMedianDeviations(a)
	if err != nil {
		return nil, err
	}
	zb, err := absMedianDeviations(b)
	if err != nil {
		return nil, err
	}

	na, nb := float64(len(za)), float64(len(zb))
	n := na + nb
	meanZA, _ := Mean(za)
	meanZB, _ := Mean(zb)
	grand := (na*meanZA + nb*meanZB) / n

	between := na*(meanZA-grand)*(meanZA-grand) + nb*(meanZB-grand)*(meanZB-grand)
	within := 0.0
	for _, z := range za {
		within += (z - meanZA) * (z - meanZA)
	}
	for _, z := range zb {
		within += (z - meanZB) * (z - meanZB)
	}
	if within == 0 {
		return nil, core.NewInvalidParameterError("within-group deviation", "is zero")
	}

	// k = 2 groups: df = (k-1, N-k) = (1, N-2)
	w := (n - 2) / 1 * between / within
	p := clampP(1 - e.dist.FCDF(w, 1, n-2))

	a2 := effectiveAlpha(alpha)
	return &TestResult{
		Test:          TestLevene,
		Statistic:     w,
		PValue:        p,
		NumeratorDF:   1,
		DenominatorDF: n - 2,
		SampleSizes:   []int{len(a), len(b)},
		Means:         []float64{meanZA, meanZB},
		Alpha:         a2,
		RejectNull:    p < a2,
	}, nil
}

func absMedianDeviations(s Sample) (Sample, error) {
	med, err := stats.Median(stats.Float64Data(s))
	if err != nil {
		return nil, core.NewInsufficientDataError("sample", len(s), 2)
	}
	out := make(Sample, len(s))
	for i, v := range s {
		out[i] = math.Abs(v - med)
	}
	return out, nil
}
