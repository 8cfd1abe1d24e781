package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Fatal pipeline errors
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyDataset      = errors.New("dataset has no columns")
	ErrFileNotFound      = errors.New("data file not found")

	// Column-local soft failures
	ErrDateParse = errors.New("date parse failed")

	// Non-fatal collaborator failures
	ErrChartRender  = errors.New("chart rendering failed")
	ErrAssetCleanup = errors.New("asset cleanup failed")

	// Rendering errors
	ErrRenderFailed = errors.New("document rendering failed")
)

// Error constructors with context
func NewUnsupportedFormatError(extension string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, extension)
}

func NewDateParseError(column, value string) error {
	return fmt.Errorf("%w: column %s, value %q", ErrDateParse, column, value)
}

func NewChartRenderError(kind string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrChartRender, kind, err)
}

func NewAssetCleanupError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrAssetCleanup, path, err)
}

// Error checking helpers
func IsFatalDatasetError(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrEmptyDataset) ||
		errors.Is(err, ErrFileNotFound)
}

func IsSoftFailure(err error) bool {
	return errors.Is(err, ErrDateParse) ||
		errors.Is(err, ErrChartRender) ||
		errors.Is(err, ErrAssetCleanup)
}
