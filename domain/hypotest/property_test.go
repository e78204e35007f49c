package hypotest_test

import (
	"testing"

	"pgregory.net/rapid"

	"schoolstat/domain/hypotest"
)

// drawSample generates a finite sample with enough spread that variance-based
// tests are well defined.
func drawSample(t *rapid.T, label string, minLen int) hypotest.Sample {
	n := rapid.IntRange(minLen, 60).Draw(t, label+"_n")
	s := make(hypotest.Sample, n)
	for i := range s {
		s[i] = rapid.Float64Range(-1e6, 1e6).Draw(t, label+"_v")
	}
	return s
}

func hasVariance(s hypotest.Sample) bool {
	for _, v := range s[1:] {
		if v != s[0] {
			return true
		}
	}
	return false
}

func checkBounded(t *rapid.T, res *hypotest.TestResult, err error) {
	if err != nil {
		return // rejected inputs carry no result
	}
	if res.PValue < 0 || res.PValue > 1 {
		t.Fatalf("%s: p-value %v outside [0,1]", res.Test, res.PValue)
	}
}

func TestPValuesAlwaysBounded(t *testing.T) {
	e := newEngine()

	rapid.Check(t, func(rt *rapid.T) {
		a := drawSample(rt, "a", 2)
		b := drawSample(rt, "b", 2)
		mu0 := rapid.Float64Range(-1e6, 1e6).Draw(rt, "mu0")
		sigma := rapid.Float64Range(1e-3, 1e4).Draw(rt, "sigma")

		res, err := e.OneSampleZ(a, hypotest.OneSampleZParams{HypothesizedMean: mu0, PopulationStdDev: sigma})
		checkBounded(rt, res, err)

		res, err = e.OneSampleT(a, hypotest.OneSampleTParams{HypothesizedMean: mu0})
		checkBounded(rt, res, err)

		res, err = e.TwoSampleT(a, b, hypotest.TwoSampleTParams{EqualVariance: true})
		checkBounded(rt, res, err)
		res, err = e.TwoSampleT(a, b, hypotest.TwoSampleTParams{EqualVariance: false})
		checkBounded(rt, res, err)

		res, err = e.VarianceRatio(a, b, hypotest.FTestParams{})
		checkBounded(rt, res, err)

		res, err = e.TwoSampleZ(a, b, hypotest.TwoSampleZParams{PopulationStdDevA: sigma, PopulationStdDevB: sigma})
		checkBounded(rt, res, err)
	})
}

func TestTwoSampleTSwapProperty(t *testing.T) {
	e := newEngine()

	rapid.Check(t, func(rt *rapid.T) {
		a := drawSample(rt, "a", 2)
		b := drawSample(rt, "b", 2)
		if !hasVariance(a) && !hasVariance(b) {
			return // zero pooled variance is a rejected input
		}
		equalVar := rapid.Bool().Draw(rt, "equal_var")
		params := hypotest.TwoSampleTParams{EqualVariance: equalVar}

		fwd, err1 := e.TwoSampleT(a, b, params)
		rev, err2 := e.TwoSampleT(b, a, params)
		if err1 != nil || err2 != nil {
			if (err1 == nil) != (err2 == nil) {
				rt.Fatalf("swap changed error outcome: %v vs %v", err1, err2)
			}
			return
		}

		if diff := fwd.Statistic + rev.Statistic; diff > 1e-9 || diff < -1e-9 {
			rt.Fatalf("statistic not antisymmetric: %v vs %v", fwd.Statistic, rev.Statistic)
		}
		if diff := fwd.PValue - rev.PValue; diff > 1e-9 || diff < -1e-9 {
			rt.Fatalf("p-value changed under swap: %v vs %v", fwd.PValue, rev.PValue)
		}
	})
}

func TestOneSampleStatisticSignProperty(t *testing.T) {
	e := newEngine()

	rapid.Check(t, func(rt *rapid.T) {
		s := drawSample(rt, "s", 2)
		mu0 := rapid.Float64Range(-1e6, 1e6).Draw(rt, "mu0")

		mean, err := hypotest.Mean(s)
		if err != nil {
			rt.Fatalf("mean: %v", err)
		}

		res, err := e.OneSampleT(s, hypotest.OneSampleTParams{HypothesizedMean: mu0})
		if err != nil {
			return
		}
		if mean > mu0 && res.Statistic < 0 {
			rt.Fatalf("mean %v > mu0 %v but t=%v", mean, mu0, res.Statistic)
		}
		if mean < mu0 && res.Statistic > 0 {
			rt.Fatalf("mean %v < mu0 %v but t=%v", mean, mu0, res.Statistic)
		}
	})
}
