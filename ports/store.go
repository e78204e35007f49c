package ports

import (
	"context"

	"schoolstat/domain/battery"
	"schoolstat/domain/core"
)

// ResultStorePort persists battery reports
type ResultStorePort interface {
	SaveReport(ctx context.Context, r *battery.Report) error
	GetReport(ctx context.Context, id core.ReportID) (*battery.Report, error)
	ListReports(ctx context.Context, limit int) ([]*battery.Report, error)
}
