// Package report renders battery reports as text, Markdown, HTML, and JSON.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"schoolstat/domain/battery"
	"schoolstat/domain/hypotest"
)

var testNames = map[hypotest.TestType]string{
	hypotest.TestOneSampleZ:    "One-Sample Z-Test",
	hypotest.TestOneSampleT:    "One-Sample T-Test",
	hypotest.TestTwoSampleT:    "Two-Sample T-Test",
	hypotest.TestVarianceRatio: "F-Test (Variance Ratio)",
	hypotest.TestTwoSampleZ:    "Two-Sample Z-Test",
	hypotest.TestPairedT:       "Paired T-Test",
	hypotest.TestPairedZ:       "Paired Z-Test",
	hypotest.TestLevene:        "Levene's Test (Brown-Forsythe)",
}

// TestName returns a human-readable name for a test type
func TestName(t hypotest.TestType) string {
	if name, ok := testNames[t]; ok {
		return name
	}
	return string(t)
}

func verdict(r hypotest.TestResult) string {
	if r.RejectNull {
		return fmt.Sprintf("reject H0 at alpha=%g", r.Alpha)
	}
	return fmt.Sprintf("fail to reject H0 at alpha=%g", r.Alpha)
}

// RenderText formats a report as the plain-text summary written alongside
// figures.
func RenderText(r *battery.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hypothesis Test Report\n")
	fmt.Fprintf(&b, "======================\n\n")
	fmt.Fprintf(&b, "Dataset: %s\n", r.Dataset)
	if len(r.Groups) > 0 {
		fmt.Fprintf(&b, "Groups (%s): %s\n", r.Plan.GroupColumn, strings.Join(r.Groups, ", "))
	}
	fmt.Fprintf(&b, "Generated: %s\n\n", r.CreatedAt.Format("2006-01-02 15:04:05 UTC"))

	for _, res := range r.Results {
		fmt.Fprintf(&b, "%s\n", TestName(res.Test))
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", len(TestName(res.Test))))
		fmt.Fprintf(&b, "  statistic: %.4f\n", res.Statistic)
		fmt.Fprintf(&b, "  p-value:   %.4g\n", res.PValue)
		switch {
		case res.DF > 0:
			fmt.Fprintf(&b, "  df:        %.4g\n", res.DF)
		case res.NumeratorDF > 0:
			fmt.Fprintf(&b, "  df:        (%.4g, %.4g)\n", res.NumeratorDF, res.DenominatorDF)
		}
		if res.EffectSize != 0 {
			fmt.Fprintf(&b, "  effect:    %.4f (%s)\n", res.EffectSize, res.EffectUnit)
		}
		fmt.Fprintf(&b, "  verdict:   %s\n\n", verdict(res))
	}

	if len(r.Skipped) > 0 {
		fmt.Fprintf(&b, "Skipped Tests\n")
		fmt.Fprintf(&b, "-------------\n")
		for _, s := range r.Skipped {
			fmt.Fprintf(&b, "  %s: %s\n", TestName(s.Test), s.Reason)
		}
	}

	return b.String()
}

// RenderMarkdown formats a report as a Markdown document with a results table
func RenderMarkdown(r *battery.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Hypothesis Test Report\n\n")
	fmt.Fprintf(&b, "**Dataset:** %s  \n", r.Dataset)
	if len(r.Groups) > 0 {
		fmt.Fprintf(&b, "**Groups (%s):** %s  \n", r.Plan.GroupColumn, strings.Join(r.Groups, ", "))
	}
	fmt.Fprintf(&b, "**Generated:** %s\n\n", r.CreatedAt.Format("2006-01-02 15:04:05 UTC"))

	fmt.Fprintf(&b, "## Results\n\n")
	fmt.Fprintf(&b, "| Test | Statistic | p-value | df | Verdict |\n")
	fmt.Fprintf(&b, "|------|-----------|---------|----|---------|\n")
	for _, res := range r.Results {
		df := "-"
		switch {
		case res.DF > 0:
			df = fmt.Sprintf("%.4g", res.DF)
		case res.NumeratorDF > 0:
			df = fmt.Sprintf("(%.4g, %.4g)", res.NumeratorDF, res.DenominatorDF)
		}
		fmt.Fprintf(&b, "| %s | %.4f | %.4g | %s | %s |\n",
			TestName(res.Test), res.Statistic, res.PValue, df, verdict(res))
	}

	if len(r.Skipped) > 0 {
		fmt.Fprintf(&b, "\n## Skipped\n\n")
		for _, s := range r.Skipped {
			fmt.Fprintf(&b, "- **%s**: %s\n", TestName(s.Test), s.Reason)
		}
	}

	return b.String()
}

// RenderHTML converts the Markdown rendering to an HTML document body
func RenderHTML(r *battery.Report) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return markdown.ToHTML([]byte(RenderMarkdown(r)), p, renderer)
}

// RenderJSON marshals the report for API responses and archival
func RenderJSON(r *battery.Report) ([]byte, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return out, nil
}
