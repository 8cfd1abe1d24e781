package ports

import (
	"context"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/report"
)

// DocumentRenderer turns a composed ReportDocument into an output file.
// Implementations must preserve block order and block type semantics,
// including table grids, page breaks and paragraph rich-text markers.
type DocumentRenderer interface {
	Render(ctx context.Context, doc *report.ReportDocument, outputPath string) error
}
