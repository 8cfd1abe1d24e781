package ports

import (
	"context"

	"github.com/MakoShar/AUTOMATED-REPORT-GENERATOR/domain/dataset"
)

// TableLoader reads a tabular file into a Dataset.
//
// Load fails with core.ErrUnsupportedFormat for extensions outside the
// configured set and with a wrapped I/O error for missing or unreadable
// files. A header-only file yields a valid zero-row dataset.
type TableLoader interface {
	Load(ctx context.Context, path string) (*dataset.Dataset, error)
}
