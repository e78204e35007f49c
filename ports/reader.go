package ports

import (
	"context"

	"schoolstat/domain/table"
)

// TableReaderPort yields a typed table from some tabular source (CSV, Excel).
// Readers perform the typed extraction and missing-value handling; the engine
// never parses files itself.
type TableReaderPort interface {
	Read(ctx context.Context) (*table.Table, error)
	// Source describes where the table came from, for report labeling.
	Source() string
}
