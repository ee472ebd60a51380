package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/olocus/seolint/internal/model"
)

// sectionWidth is the width of the separator rules in console output.
const sectionWidth = 60

// titleCaser title-cases section labels for display.
var titleCaser = cases.Title(language.English)

// ConsoleWriter outputs human-readable, color-coded reports for terminal
// display. Each file's report is fully written before the next begins, so
// partial output from an interrupted run remains valid.
type ConsoleWriter struct {
	baseWriter

	// style decorates output by outcome kind.
	style Style

	// checklistDoc, when non-empty, is referenced in the summary when at
	// least one file failed, to point the reader at remediation guidance.
	checklistDoc string
}

// ConsoleWriterOption configures a ConsoleWriter.
type ConsoleWriterOption func(*ConsoleWriter)

// WithStyle sets the output style.
func WithStyle(style Style) ConsoleWriterOption {
	return func(w *ConsoleWriter) {
		w.style = style
	}
}

// WithChecklistDoc sets the remediation document referenced on failure.
func WithChecklistDoc(doc string) ConsoleWriterOption {
	return func(w *ConsoleWriter) {
		w.checklistDoc = doc
	}
}

// NewConsoleWriter creates a ConsoleWriter that outputs to the given writer.
func NewConsoleWriter(output io.Writer, opts ...ConsoleWriterOption) *ConsoleWriter {
	w := &ConsoleWriter{
		baseWriter: newBaseWriter(output),
		style:      NewStyle(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteReport outputs one file's report: a header, the pass count, the
// warnings and errors as bulleted lists, and a PASSED/FAILED status line.
func (w *ConsoleWriter) WriteReport(rep *model.Report) (int, error) {
	var sb strings.Builder

	sb.WriteString(w.style.Header(rep.FileName))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", sectionWidth))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("  %s %d checks passed\n",
		w.style.Render(model.OutcomePass, Glyph(model.OutcomePass)), len(rep.Passes)))

	w.writeSection(&sb, "warnings", model.OutcomeWarn, rep.Warnings)
	w.writeSection(&sb, "errors", model.OutcomeError, rep.Errors)

	if rep.Passed() {
		sb.WriteString(fmt.Sprintf("  %s\n\n", w.style.Render(model.OutcomePass, "PASSED")))
	} else {
		sb.WriteString(fmt.Sprintf("  %s\n\n", w.style.Render(model.OutcomeError, "FAILED")))
	}

	return w.output.Write([]byte(sb.String()))
}

// writeSection writes one bulleted outcome section, omitted when empty.
func (w *ConsoleWriter) writeSection(sb *strings.Builder, label string, kind model.Outcome, entries []string) {
	if len(entries) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("  %s (%d):\n", titleCaser.String(label), len(entries)))
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("    %s %s\n", w.style.Render(kind, Glyph(kind)), entry))
	}
}

// WriteSummary outputs the aggregate summary table: one line per file with
// a pass/fail glyph, totals, and a pointer to the remediation checklist
// when anything failed.
func (w *ConsoleWriter) WriteSummary(summary *model.RunSummary) (int, error) {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", sectionWidth))
	sb.WriteString("\n")
	sb.WriteString(w.style.Header("SUMMARY"))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", sectionWidth))
	sb.WriteString("\n")

	for _, res := range summary.Results {
		if res.Passed {
			sb.WriteString(fmt.Sprintf("  %s %s\n",
				w.style.Render(model.OutcomePass, Glyph(model.OutcomePass)), res.FileName))
		} else {
			sb.WriteString(fmt.Sprintf("  %s %s (%d errors)\n",
				w.style.Render(model.OutcomeError, Glyph(model.OutcomeError)), res.FileName, res.ErrorCount))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %d passed, %d failed, %d total\n",
		summary.PassedCount(), summary.FailedCount(), len(summary.Results)))

	if !summary.AllPassed() && w.checklistDoc != "" {
		sb.WriteString(fmt.Sprintf("\n  See %s for remediation guidance.\n", w.checklistDoc))
	}

	return w.output.Write([]byte(sb.String()))
}
