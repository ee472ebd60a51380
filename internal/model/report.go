package model

// Report is the validation result for a single HTML file.
// It is created at the start of processing one file, populated synchronously
// by a fixed sequence of independent checks, and discarded after being
// written. No state persists across files or runs.
//
// Design decision: We keep the three outcome lists as ordered string slices
// rather than structured entries because the check sequence is fixed, so
// ordering alone carries the grouping information, and the report is consumed
// only by writers and the history database.
type Report struct {
	// FileName is the basename of the file that was checked.
	FileName string `json:"file_name"`

	// Path is the file's path as it was checked. Two files can share a
	// basename (root and templates/ both hold an index.html), so anything
	// that keys on files, such as run history, must use Path.
	Path string `json:"path,omitempty"`

	// Passes describes the checks that were satisfied, in check order.
	Passes []string `json:"passes"`

	// Warnings describes non-fatal issues, in check order.
	// Warnings never affect pass/fail status.
	Warnings []string `json:"warnings"`

	// Errors describes fatal issues, in check order.
	Errors []string `json:"errors"`
}

// NewReport creates an empty report for the given file name.
func NewReport(fileName string) *Report {
	return &Report{
		FileName: fileName,
		Passes:   make([]string, 0),
		Warnings: make([]string, 0),
		Errors:   make([]string, 0),
	}
}

// AddPass records a satisfied check.
func (r *Report) AddPass(msg string) {
	r.Passes = append(r.Passes, msg)
}

// AddWarning records an advisory issue.
func (r *Report) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// AddError records a fatal issue.
func (r *Report) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// Passed reports whether the file passed validation.
// A file passes iff its error list is empty; warnings are advisory only.
func (r *Report) Passed() bool {
	return len(r.Errors) == 0
}
