package checker

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/olocus/seolint/internal/config"
	"github.com/olocus/seolint/internal/model"
)

// Check inspects one aspect of a parsed document and records its outcomes
// on the report. Checks are independent: each appends to exactly one of the
// report's lists per inspected item and never reads another check's results.
type Check interface {
	// Name returns the check name, used for logging and report sections.
	Name() string

	// Check inspects the document and appends outcomes to the report.
	Check(doc *Document, rules *config.Rules, rep *model.Report)
}

// Checks returns the fixed check sequence.
// The order is stable so report output is deterministic; it does not affect
// correctness since checks are independent.
func Checks() []Check {
	return []Check{
		&MetaTagCheck{},
		&OpenGraphCheck{},
		&TwitterCardCheck{},
		&StructureCheck{},
		&AccessibilityCheck{},
		&StructuredDataCheck{},
		&HeadingCheck{},
		&CanonicalCheck{},
	}
}

// CheckFile reads and validates a single HTML file, returning its report.
// A file that cannot be read (missing, permission denied, not valid UTF-8)
// yields a report with a single error and no further checks; the caller can
// keep processing other files. CheckFile never modifies the file.
func CheckFile(path string, rules *config.Rules) *model.Report {
	rep := model.NewReport(filepath.Base(path))
	rep.Path = path

	data, err := os.ReadFile(path) //nolint:gosec // Checking user-provided paths is the tool's job
	if err != nil {
		rep.AddError(fmt.Sprintf("cannot read file: %v", err))
		return rep
	}

	if !utf8.Valid(data) {
		rep.AddError("cannot read file: content is not valid UTF-8 text")
		return rep
	}

	doc, err := ParseDocument(bytes.NewReader(data))
	if err != nil {
		rep.AddError(fmt.Sprintf("cannot parse HTML: %v", err))
		return rep
	}

	for _, c := range Checks() {
		c.Check(doc, rules, rep)
	}

	return rep
}

// DiscoverFiles finds the HTML files to check under root: every *.html file
// directly in root (non-recursive) plus those in a templates/ subdirectory
// if one exists. Files whose name begins with "_" are partials and skipped.
// The returned paths are in directory order (root first, then templates),
// each level sorted by file name.
func DiscoverFiles(root string) ([]string, error) {
	files, err := htmlFilesIn(root)
	if err != nil {
		return nil, err
	}

	templatesDir := filepath.Join(root, config.DefaultTemplatesDir)
	if info, err := os.Stat(templatesDir); err == nil && info.IsDir() {
		templateFiles, err := htmlFilesIn(templatesDir)
		if err != nil {
			return nil, err
		}
		files = append(files, templateFiles...)
	}

	return files, nil
}

// htmlFilesIn lists the *.html files directly under dir, skipping
// subdirectories and "_"-prefixed names.
func htmlFilesIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "_") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".html") {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	return files, nil
}
