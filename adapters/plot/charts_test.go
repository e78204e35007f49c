package plot

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolstat/domain/hypotest"
	"schoolstat/internal/testkit"
)

func groupScores(t *testing.T) (names []string, groups map[string]hypotest.Sample) {
	t.Helper()
	tbl, err := testkit.NewScoresGenerator(testkit.DefaultScoresConfig()).Generate()
	require.NoError(t, err)

	names, err = tbl.GroupValues("school")
	require.NoError(t, err)
	raw, err := tbl.SplitNumericBy("score", "school")
	require.NoError(t, err)

	groups = make(map[string]hypotest.Sample, len(raw))
	for name, scores := range raw {
		groups[name] = scores
	}
	return names, groups
}

func TestHistogram(t *testing.T) {
	c, err := NewCharter(t.TempDir())
	require.NoError(t, err)

	_, groups := groupScores(t)
	path, err := c.Histogram("GP", groups["GP"])
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHistogram_EmptySample(t *testing.T) {
	c, err := NewCharter(t.TempDir())
	require.NoError(t, err)

	_, err = c.Histogram("GP", nil)
	require.Error(t, err)
}

func TestBoxPlot(t *testing.T) {
	c, err := NewCharter(t.TempDir())
	require.NoError(t, err)

	names, groups := groupScores(t)
	path, err := c.BoxPlot("Scores by School", names, groups)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestBoxPlot_NoGroups(t *testing.T) {
	c, err := NewCharter(t.TempDir())
	require.NoError(t, err)

	_, err = c.BoxPlot("empty", nil, nil)
	require.Error(t, err)
}
