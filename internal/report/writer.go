package report

import (
	"io"

	"github.com/olocus/seolint/internal/model"
)

// Writer defines the interface for report output.
// Implementations write validation results in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or buffers
// with the same API.
type Writer interface {
	// WriteReport outputs one file's validation report.
	// Returns the number of bytes written and any error encountered.
	WriteReport(rep *model.Report) (int, error)

	// WriteSummary outputs the aggregate run summary after all files.
	WriteSummary(summary *model.RunSummary) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
