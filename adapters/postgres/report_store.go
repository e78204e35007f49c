// Package postgres persists battery reports.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"schoolstat/domain/battery"
	"schoolstat/domain/core"
	"schoolstat/ports"
)

// reportStore implements the ResultStorePort interface
type reportStore struct {
	db *sqlx.DB
}

// NewReportStore creates a report store backed by the given database
func NewReportStore(db *sqlx.DB) ports.ResultStorePort {
	return &reportStore{db: db}
}

// Connect opens a Postgres connection pool and verifies it
func Connect(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Schema is the DDL for the reports table
const Schema = `
CREATE TABLE IF NOT EXISTS reports (
	id         TEXT PRIMARY KEY,
	dataset    TEXT NOT NULL,
	plan       JSONB NOT NULL,
	groups     JSONB,
	results    JSONB NOT NULL,
	skipped    JSONB,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports (created_at DESC);
`

// Migrate applies the schema
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to migrate reports schema: %w", err)
	}
	return nil
}

// SaveReport inserts a battery report
func (s *reportStore) SaveReport(ctx context.Context, r *battery.Report) error {
	planJSON, err := json.Marshal(r.Plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	groupsJSON, err := json.Marshal(r.Groups)
	if err != nil {
		return fmt.Errorf("failed to marshal groups: %w", err)
	}
	resultsJSON, err := json.Marshal(r.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	skippedJSON, err := json.Marshal(r.Skipped)
	if err != nil {
		return fmt.Errorf("failed to marshal skipped tests: %w", err)
	}

	query := `INSERT INTO reports (
		id, dataset, plan, groups, results, skipped, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = s.db.ExecContext(ctx, query,
		r.ID, r.Dataset, planJSON, groupsJSON, resultsJSON, skippedJSON, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetReport retrieves a report by its ID
func (s *reportStore) GetReport(ctx context.Context, id core.ReportID) (*battery.Report, error) {
	query := `SELECT id, dataset, plan, groups, results, skipped, created_at
	FROM reports WHERE id = $1`

	row := s.db.QueryRowContext(ctx, query, id)
	r, err := scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("report not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return r, nil
}

// ListReports retrieves the most recent reports, newest first
func (s *reportStore) ListReports(ctx context.Context, limit int) ([]*battery.Report, error) {
	query := `SELECT id, dataset, plan, groups, results, skipped, created_at
	FROM reports ORDER BY created_at DESC LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []*battery.Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}
	return reports, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReport(row rowScanner) (*battery.Report, error) {
	var r battery.Report
	var planJSON, groupsJSON, resultsJSON, skippedJSON []byte

	err := row.Scan(&r.ID, &r.Dataset, &planJSON, &groupsJSON, &resultsJSON, &skippedJSON, &r.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(planJSON, &r.Plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}
	if len(groupsJSON) > 0 {
		if err := json.Unmarshal(groupsJSON, &r.Groups); err != nil {
			return nil, fmt.Errorf("failed to unmarshal groups: %w", err)
		}
	}
	if err := json.Unmarshal(resultsJSON, &r.Results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results: %w", err)
	}
	if len(skippedJSON) > 0 {
		if err := json.Unmarshal(skippedJSON, &r.Skipped); err != nil {
			return nil, fmt.Errorf("failed to unmarshal skipped tests: %w", err)
		}
	}
	return &r, nil
}
