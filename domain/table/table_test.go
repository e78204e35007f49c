package table

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolstat/domain/core"
)

func studentTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := New(
		[]string{"student_id", "school", "gender", "score"},
		[][]string{
			{"s1", "GP", "M", "70.5"},
			{"s2", "GP", "F", "68.2"},
			{"s3", "MS", "M", "72.0"},
			{"s4", "MS", "F", "NA"},
			{"s5", "GP", "M", "74.1"},
		},
	)
	require.NoError(t, err)
	return tbl
}

func TestNew_RejectsWideRows(t *testing.T) {
	_, err := New([]string{"a", "b"}, [][]string{{"1", "2", "3"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))
}

func TestNumericColumn_DropsMissing(t *testing.T) {
	tbl := studentTable(t)
	scores, err := tbl.NumericColumn("score")
	require.NoError(t, err)
	assert.Equal(t, []float64{70.5, 68.2, 72.0, 74.1}, scores)
}

func TestNumericColumn_NonNumericCell(t *testing.T) {
	tbl, err := New([]string{"score"}, [][]string{{"12"}, {"oops"}})
	require.NoError(t, err)

	_, err = tbl.NumericColumn("score")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNonNumeric))
}

func TestNumericColumn_UnknownColumn(t *testing.T) {
	_, err := studentTable(t).NumericColumn("grade")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrColumnNotFound))
}

func TestGroupValues_FirstSeenOrder(t *testing.T) {
	groups, err := studentTable(t).GroupValues("school")
	require.NoError(t, err)
	assert.Equal(t, []string{"GP", "MS"}, groups)
}

func TestSplitNumericBy(t *testing.T) {
	tbl := studentTable(t)
	byGender, err := tbl.SplitNumericBy("score", "gender")
	require.NoError(t, err)

	assert.Equal(t, []float64{70.5, 72.0, 74.1}, byGender["M"])
	// The female row with a missing score is dropped.
	assert.Equal(t, []float64{68.2}, byGender["F"])
}

func TestSplitNumericBy_ShortRowsReadAsMissing(t *testing.T) {
	tbl, err := New([]string{"score", "school"}, [][]string{{"10", "GP"}, {"11"}})
	require.NoError(t, err)

	groups, err := tbl.SplitNumericBy("score", "school")
	require.NoError(t, err)
	assert.Equal(t, []float64{10}, groups["GP"])
	assert.Len(t, groups, 1)
}
