package hypotest

// Sample is an ordered sequence of finite real observations.
// Length requirements vary per operation: n >= 1 for means, n >= 2 wherever
// a variance is computed.
type Sample []float64

// TestType identifies the statistical test that produced a result
type TestType string

const (
	TestOneSampleZ    TestType = "one_sample_z"
	TestOneSampleT    TestType = "one_sample_t"
	TestTwoSampleT    TestType = "two_sample_t"
	TestVarianceRatio TestType = "variance_ratio_f"
	TestTwoSampleZ    TestType = "two_sample_z"
	TestPairedT       TestType = "paired_t"
	TestPairedZ       TestType = "paired_z"
	TestLevene        TestType = "levene"
)

// DefaultAlpha is the significance convention applied when a caller leaves
// the per-test Alpha unset.
const DefaultAlpha = 0.05

// TestResult is the immutable record produced by one engine invocation.
// INVARIANTS:
// - PValue always in [0.0, 1.0]
// - degrees of freedom present only where the test defines them
// - descriptive fields reflect the inputs, never mutated afterwards
type TestResult struct {
	Test      TestType `json:"test"`
	Statistic float64  `json:"statistic"`
	PValue    float64  `json:"p_value"`

	// Degrees of freedom. DF is scalar (T family, possibly fractional for
	// Welch); the F-test carries a numerator/denominator pair instead.
	DF            float64 `json:"df,omitempty"`
	NumeratorDF   float64 `json:"df_num,omitempty"`
	DenominatorDF float64 `json:"df_den,omitempty"`

	// Descriptive sub-fields, test specific.
	SampleSizes      []int     `json:"sample_sizes"`
	Means            []float64 `json:"means"`
	Variances        []float64 `json:"variances,omitempty"`
	StdError         float64   `json:"std_error,omitempty"`
	HypothesizedMean float64   `json:"hypothesized_mean,omitempty"`
	EffectSize       float64   `json:"effect_size,omitempty"`
	EffectUnit       string    `json:"effect_unit,omitempty"`

	// Reporting convention.
	Alpha      float64 `json:"alpha"`
	RejectNull bool    `json:"reject_null"`
}

// OneSampleZParams configures the one-sample Z-test. PopulationStdDev must be
// a known (externally estimated) sigma; the engine never substitutes the
// sample standard deviation.
type OneSampleZParams struct {
	HypothesizedMean float64
	PopulationStdDev float64
	Alpha            float64
}

// OneSampleTParams configures the one-sample T-test
type OneSampleTParams struct {
	HypothesizedMean float64
	Alpha            float64
}

// TwoSampleTParams configures the independent two-sample T-test.
// EqualVariance selects the pooled form; otherwise Welch's form is used.
type TwoSampleTParams struct {
	EqualVariance bool
	Alpha         float64
}

// TwoSampleZParams configures the two-sample Z-test for mean difference.
// When population sigmas are not independently known, callers may pass sample
// standard deviations as a large-sample approximation.
type TwoSampleZParams struct {
	PopulationStdDevA float64
	PopulationStdDevB float64
	Alpha             float64
}

// FTestParams configures the variance-ratio F-test. The numerator is always
// sample A; the convention is fixed and applied consistently.
type FTestParams struct {
	Alpha float64
}

// Distributions supplies the CDF/quantile lookups the engine needs.
// Implementations are pure mathematical functions (see adapters/gonumdist).
type Distributions interface {
	// NormalCDF evaluates the standard normal CDF at x.
	NormalCDF(x float64) float64
	// NormalQuantile is the standard normal inverse CDF.
	NormalQuantile(p float64) float64
	// StudentTCDF evaluates the Student's T CDF at x with df degrees of freedom.
	StudentTCDF(x, df float64) float64
	// StudentTQuantile is the Student's T inverse CDF.
	StudentTQuantile(p, df float64) float64
	// FCDF evaluates the F CDF at x with (d1, d2) degrees of freedom.
	FCDF(x, d1, d2 float64) float64
}

func effectiveAlpha(alpha float64) float64 {
	if alpha <= 0 || alpha >= 1 {
		return DefaultAlpha
	}
	return alpha
}

func clampP(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
