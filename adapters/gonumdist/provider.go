// Package gonumdist implements the engine's distribution provider on top of
// gonum's distuv package.
package gonumdist

import (
	"gonum.org/v1/gonum/stat/distuv"

	"schoolstat/domain/hypotest"
)

// Provider supplies standard normal, Student's T and F distribution lookups
type Provider struct{}

var _ hypotest.Distributions = Provider{}

// NewProvider creates a new distribution provider
func NewProvider() Provider {
	return Provider{}
}

// NormalCDF evaluates the standard normal CDF at x
func (Provider) NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormalQuantile is the standard normal inverse CDF
func (Provider) NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

// StudentTCDF evaluates the Student's T CDF at x with df degrees of freedom
func (Provider) StudentTCDF(x, df float64) float64 {
	if df <= 0 {
		return 0.5
	}
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.CDF(x)
}

// StudentTQuantile is the Student's T inverse CDF
func (Provider) StudentTQuantile(p, df float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Quantile(p)
}

// FCDF evaluates the F CDF at x with (d1, d2) degrees of freedom
func (Provider) FCDF(x, d1, d2 float64) float64 {
	if d1 <= 0 || d2 <= 0 {
		return 0
	}
	return distuv.F{D1: d1, D2: d2}.CDF(x)
}
