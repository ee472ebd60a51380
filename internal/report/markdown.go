package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/olocus/seolint/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for CI artifacts and documentation.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteReport outputs one file's report as a Markdown section.
func (w *MarkdownWriter) WriteReport(rep *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H2(rep.FileName)
	md.PlainText("")

	if rep.Passed() {
		md.Tipf("Passed with %d checks satisfied.", len(rep.Passes))
	} else {
		md.Cautionf("Failed with %d errors.", len(rep.Errors))
	}
	md.PlainText("")

	if len(rep.Errors) > 0 {
		md.H3("Errors")
		md.PlainText("")
		md.BulletList(rep.Errors...)
		md.PlainText("")
	}

	if len(rep.Warnings) > 0 {
		md.H3("Warnings")
		md.PlainText("")
		md.BulletList(rep.Warnings...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// WriteSummary outputs the aggregate summary as a Markdown table.
func (w *MarkdownWriter) WriteSummary(summary *model.RunSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H2("Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(summary.Results))
	for _, res := range summary.Results {
		status := "✅ passed"
		if !res.Passed {
			status = "❌ failed"
		}
		rows = append(rows, []string{
			res.FileName,
			status,
			strconv.Itoa(res.ErrorCount),
			strconv.Itoa(res.WarningCount),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"File", "Status", "Errors", "Warnings"},
		Rows:   rows,
	})
	md.PlainText("")

	if summary.AllPassed() {
		md.Tipf("All %d files passed.", len(summary.Results))
	} else {
		md.Cautionf("%d of %d files failed.", summary.FailedCount(), len(summary.Results))
	}

	return len(md.String()), md.Build()
}
