package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/ports"
)

// reportRepository implements the ReportRepository interface
type reportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new report run repository
func NewReportRepository(db *sqlx.DB) ports.ReportRepository {
	return &reportRepository{db: db}
}

// Create inserts a new report run record
func (r *reportRepository) Create(ctx context.Context, rec *ports.ReportRecord) error {
	query := `INSERT INTO report_runs (
		id, source_path, output_path, total_records, column_count,
		insight_count, chart_count, status, error_message, generated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
	)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.SourcePath, rec.OutputPath, rec.TotalRecords, rec.ColumnCount,
		rec.InsightCount, rec.ChartCount, rec.Status, rec.ErrorMessage, rec.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create report run: %w", err)
	}
	return nil
}

// List retrieves report runs with pagination, most recent first
func (r *reportRepository) List(ctx context.Context, limit, offset int) ([]*ports.ReportRecord, error) {
	query := `SELECT
		id, source_path, output_path, total_records, column_count,
		insight_count, chart_count, status, COALESCE(error_message, '') as error_message, generated_at
	FROM report_runs
	ORDER BY generated_at DESC
	LIMIT $1 OFFSET $2`

	var records []*ports.ReportRecord
	if err := r.db.SelectContext(ctx, &records, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to query report runs: %w", err)
	}
	return records, nil
}
