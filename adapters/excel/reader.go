// Package excel reads student-record workbooks into the typed table handed to
// the analysis layer.
package excel

import (
	"context"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"schoolstat/domain/core"
	"schoolstat/domain/table"
	"schoolstat/ports"
)

// DefaultSheet is used when no sheet name is configured
const DefaultSheet = "Sheet1"

// Reader implements ports.TableReaderPort for Excel workbooks
type Reader struct {
	filePath string
	sheet    string
}

var _ ports.TableReaderPort = (*Reader)(nil)

// NewReader creates an Excel table reader for the given path and sheet.
// An empty sheet name falls back to DefaultSheet.
func NewReader(filePath, sheet string) *Reader {
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &Reader{filePath: filePath, sheet: sheet}
}

// Source returns the file path the reader was built from
func (r *Reader) Source() string {
	return r.filePath
}

// Read loads the configured sheet into a table. The first row is the header.
func (r *Reader) Read(ctx context.Context) (*table.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("excel file not found: %s", r.filePath)
	}

	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	return FromFile(ctx, f, r.sheet)
}

// FromFile converts an open workbook sheet into a table
func FromFile(ctx context.Context, f *excelize.File, sheet string) (*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, core.NewEmptyInputError("worksheet " + sheet)
	}
	return table.New(rows[0], rows[1:])
}
