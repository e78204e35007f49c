// Package table holds the typed tabular dataset handed to the analysis
// layer. Columns are stored raw; numeric extraction is an explicit, validated
// step so the hypothesis-testing engine only ever sees numeric sequences.
package table

import (
	"strconv"
	"strings"

	"schoolstat/domain/core"
)

// Table is an immutable header-indexed view over string-valued rows
type Table struct {
	headers []string
	index   map[string]int
	rows    [][]string
}

// New builds a table from headers and rows. Short rows are tolerated (the
// missing cells read as empty); rows wider than the header are rejected.
func New(headers []string, rows [][]string) (*Table, error) {
	if len(headers) == 0 {
		return nil, core.NewEmptyInputError("table headers")
	}
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.TrimSpace(h)] = i
	}
	for i, row := range rows {
		if len(row) > len(headers) {
			return nil, core.NewInvalidParameterError("row", "wider than header at index "+strconv.Itoa(i))
		}
	}
	return &Table{headers: headers, index: index, rows: rows}, nil
}

// Columns returns the header names in order
func (t *Table) Columns() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Column returns the raw cells of the named column
func (t *Table) Column(name string) ([]string, error) {
	col, ok := t.index[name]
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = t.cell(row, col)
	}
	return out, nil
}

// NumericColumn extracts the named column as floats. Missing cells (empty,
// "NA", "NaN") are dropped, mirroring the upstream dropna step; any other
// non-numeric cell is an error.
func (t *Table) NumericColumn(name string) ([]float64, error) {
	col, ok := t.index[name]
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	out := make([]float64, 0, len(t.rows))
	for i, row := range t.rows {
		raw := t.cell(row, col)
		if isMissing(raw) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, core.NewNonNumericError(name, i, raw)
		}
		out = append(out, v)
	}
	return out, nil
}

// GroupValues returns the distinct non-missing values of a grouping column in
// first-seen order
func (t *Table) GroupValues(name string) ([]string, error) {
	col, ok := t.index[name]
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	seen := make(map[string]bool)
	var out []string
	for _, row := range t.rows {
		raw := strings.TrimSpace(t.cell(row, col))
		if isMissing(raw) || seen[raw] {
			continue
		}
		seen[raw] = true
		out = append(out, raw)
	}
	return out, nil
}

// SplitNumericBy extracts valueCol as floats partitioned by the values of
// groupCol. Rows where either cell is missing are dropped.
func (t *Table) SplitNumericBy(valueCol, groupCol string) (map[string][]float64, error) {
	vc, ok := t.index[valueCol]
	if !ok {
		return nil, core.NewColumnNotFoundError(valueCol)
	}
	gc, ok := t.index[groupCol]
	if !ok {
		return nil, core.NewColumnNotFoundError(groupCol)
	}

	groups := make(map[string][]float64)
	for i, row := range t.rows {
		group := strings.TrimSpace(t.cell(row, gc))
		raw := t.cell(row, vc)
		if isMissing(group) || isMissing(raw) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, core.NewNonNumericError(valueCol, i, raw)
		}
		groups[group] = append(groups[group], v)
	}
	return groups, nil
}

func (t *Table) cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}

func isMissing(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "na", "nan", "null":
		return true
	}
	return false
}
