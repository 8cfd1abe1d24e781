package ports

import (
	"context"
	"time"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/core"
)

// RunStatus is the terminal state of a report generation run
type RunStatus string

const (
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// ReportRecord is the persisted trace of one pipeline run
type ReportRecord struct {
	ID           core.ReportID `db:"id"`
	SourcePath   string        `db:"source_path"`
	OutputPath   string        `db:"output_path"`
	TotalRecords int           `db:"total_records"`
	ColumnCount  int           `db:"column_count"`
	InsightCount int           `db:"insight_count"`
	ChartCount   int           `db:"chart_count"`
	Status       RunStatus     `db:"status"`
	ErrorMessage string        `db:"error_message"`
	GeneratedAt  time.Time     `db:"generated_at"`
}

// ReportRepository records report runs. The pipeline works without one;
// a nil repository disables persistence.
type ReportRepository interface {
	Create(ctx context.Context, rec *ReportRecord) error
	List(ctx context.Context, limit, offset int) ([]*ReportRecord, error)
}
