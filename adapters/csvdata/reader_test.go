package csvdata

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `student_id,school,gender,score
s1,GP,M,70.5
s2,GP,F,68.2
s3,MS,M,72.0
s4,MS,F,
`

func TestParse(t *testing.T) {
	tbl, err := Parse(context.Background(), strings.NewReader(fixture))
	require.NoError(t, err)

	assert.Equal(t, []string{"student_id", "school", "gender", "score"}, tbl.Columns())
	assert.Equal(t, 4, tbl.RowCount())

	scores, err := tbl.NumericColumn("score")
	require.NoError(t, err)
	assert.Equal(t, []float64{70.5, 68.2, 72.0}, scores)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(context.Background(), strings.NewReader(""))
	require.Error(t, err)
}

func TestReader_ReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	r := NewReader(path)
	assert.Equal(t, path, r.Source())

	tbl, err := r.Read(context.Background())
	require.NoError(t, err)

	bySchool, err := tbl.SplitNumericBy("score", "school")
	require.NoError(t, err)
	assert.Equal(t, []float64{70.5, 68.2}, bySchool["GP"])
	assert.Equal(t, []float64{72.0}, bySchool["MS"])
}

func TestReader_MissingFile(t *testing.T) {
	_, err := NewReader("/nonexistent/students.csv").Read(context.Background())
	require.Error(t, err)
}
