// Package plot writes score-distribution figures alongside a battery report.
package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"schoolstat/domain/hypotest"
)

const histogramBins = 20

// Charter writes PNG figures into a directory
type Charter struct {
	dir string
}

// NewCharter creates a charter writing into dir, creating it if needed
func NewCharter(dir string) (*Charter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create figure directory: %w", err)
	}
	return &Charter{dir: dir}, nil
}

// Histogram writes a score histogram for one group and returns the file path
func (c *Charter) Histogram(name string, scores hypotest.Sample) (string, error) {
	if len(scores) == 0 {
		return "", fmt.Errorf("no scores to plot for %q", name)
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Score Distribution: %s", name)
	pl.X.Label.Text = "score"
	pl.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(scores), histogramBins)
	if err != nil {
		return "", fmt.Errorf("failed to build histogram: %w", err)
	}
	pl.Add(h)

	path := filepath.Join(c.dir, fmt.Sprintf("hist_%s.png", name))
	if err := pl.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return "", fmt.Errorf("failed to save histogram: %w", err)
	}
	return path, nil
}

// BoxPlot writes side-by-side box plots for the named groups and returns the
// file path. Group order follows the names slice.
func (c *Charter) BoxPlot(title string, names []string, groups map[string]hypotest.Sample) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("no groups to plot")
	}

	pl := plot.New()
	pl.Title.Text = title
	pl.Y.Label.Text = "score"

	w := vg.Points(40)
	for i, name := range names {
		scores := groups[name]
		if len(scores) == 0 {
			return "", fmt.Errorf("no scores to plot for group %q", name)
		}
		box, err := plotter.NewBoxPlot(w, float64(i), plotter.Values(scores))
		if err != nil {
			return "", fmt.Errorf("failed to build box plot for %q: %w", name, err)
		}
		pl.Add(box)
	}
	pl.NominalX(names...)

	path := filepath.Join(c.dir, "boxplot.png")
	if err := pl.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return "", fmt.Errorf("failed to save box plot: %w", err)
	}
	return path, nil
}
