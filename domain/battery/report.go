// Package battery defines the record types produced by a test battery run
// over a dataset.
package battery

import (
	"schoolstat/domain/core"
	"schoolstat/domain/hypotest"
)

// Plan names the columns and fixed parameters for a battery run.
// Parameters are always caller-supplied, never inferred from data.
type Plan struct {
	ScoreColumn string `json:"score_column"`
	GroupColumn string `json:"group_column"`

	// Optional paired columns; when both are set the paired tests run.
	BeforeColumn string `json:"before_column,omitempty"`
	AfterColumn  string `json:"after_column,omitempty"`

	HypothesizedMean  float64 `json:"hypothesized_mean"`
	PopulationStdDev  float64 `json:"population_std_dev"`
	PopulationStdDevA float64 `json:"population_std_dev_a,omitempty"`
	PopulationStdDevB float64 `json:"population_std_dev_b,omitempty"`
	EqualVariance     bool    `json:"equal_variance"`
	Alpha             float64 `json:"alpha"`
}

// SkippedTest records a test that could not run and why
type SkippedTest struct {
	Test   hypotest.TestType `json:"test"`
	Reason string            `json:"reason"`
}

// Report is the complete outcome of one battery run. Produced once, never
// mutated; owned by the caller.
type Report struct {
	ID        core.ReportID         `json:"id"`
	Dataset   string                `json:"dataset"`
	Plan      Plan                  `json:"plan"`
	Groups    []string              `json:"groups,omitempty"`
	Results   []hypotest.TestResult `json:"results"`
	Skipped   []SkippedTest         `json:"skipped,omitempty"`
	CreatedAt core.Timestamp        `json:"created_at"`
}
