// Package csvdata reads student-record CSV files into the typed table handed
// to the analysis layer.
package csvdata

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"schoolstat/domain/core"
	"schoolstat/domain/table"
	"schoolstat/ports"
)

// Reader implements ports.TableReaderPort for CSV files
type Reader struct {
	filePath string
}

var _ ports.TableReaderPort = (*Reader)(nil)

// NewReader creates a CSV table reader for the given path
func NewReader(filePath string) *Reader {
	return &Reader{filePath: filePath}
}

// Source returns the file path the reader was built from
func (r *Reader) Source() string {
	return r.filePath
}

// Read parses the CSV file into a table. The first record is the header.
func (r *Reader) Read(ctx context.Context) (*table.Table, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()
	return Parse(ctx, f)
}

// Parse reads CSV content from an io.Reader into a table
func Parse(ctx context.Context, src io.Reader) (*table.Table, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1 // tolerate ragged rows; the table treats short rows as missing
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, core.NewEmptyInputError("CSV file")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		rows = append(rows, record)
	}

	return table.New(header, rows)
}
