package report

import (
	"encoding/json"
	"io"

	"github.com/olocus/seolint/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because it is sufficient for our needs and provides
// consistent behavior across Go versions.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteReport outputs one file's report as a JSON object.
func (w *JSONWriter) WriteReport(rep *model.Report) (int, error) {
	return w.writeJSON(rep)
}

// WriteSummary outputs the aggregate summary as a JSON object.
func (w *JSONWriter) WriteSummary(summary *model.RunSummary) (int, error) {
	return w.writeJSON(summary)
}

// RunDocument is the combined JSON form of a whole run: every per-file
// report plus the aggregate summary, emitted as a single object so
// consumers parse one document instead of a stream.
type RunDocument struct {
	// Reports holds one entry per checked file, in check order.
	Reports []*model.Report `json:"reports"`

	// Summary is the aggregate pass/fail summary.
	Summary *model.RunSummary `json:"summary"`
}

// WriteRun outputs the whole run as a single JSON document.
func (w *JSONWriter) WriteRun(reports []*model.Report, summary *model.RunSummary) (int, error) {
	return w.writeJSON(&RunDocument{Reports: reports, Summary: summary})
}

// writeJSON marshals the given value and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
