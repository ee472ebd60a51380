package model

// FileResult is the aggregate outcome for one checked file.
// It carries only counts so the summary can be persisted and compared
// without storing full report text.
type FileResult struct {
	// FileName is the basename of the checked file.
	FileName string `json:"file_name"`

	// Path is the checked file's path, used to tell apart files that
	// share a basename.
	Path string `json:"path,omitempty"`

	// Passed is true iff the file's error list was empty.
	Passed bool `json:"passed"`

	// PassCount is the number of satisfied checks.
	PassCount int `json:"pass_count"`

	// WarningCount is the number of advisory issues.
	WarningCount int `json:"warning_count"`

	// ErrorCount is the number of fatal issues.
	ErrorCount int `json:"error_count"`
}

// RunSummary is the ordered list of per-file outcomes for a whole run.
// It is used to render the summary table and to compute the process exit code.
type RunSummary struct {
	// Results holds one entry per checked file, in check order.
	Results []FileResult `json:"results"`
}

// NewRunSummary creates an empty run summary.
func NewRunSummary() *RunSummary {
	return &RunSummary{Results: make([]FileResult, 0)}
}

// Add appends the aggregate outcome of a report to the summary.
func (s *RunSummary) Add(r *Report) {
	s.Results = append(s.Results, FileResult{
		FileName:     r.FileName,
		Path:         r.Path,
		Passed:       r.Passed(),
		PassCount:    len(r.Passes),
		WarningCount: len(r.Warnings),
		ErrorCount:   len(r.Errors),
	})
}

// AllPassed reports whether every checked file passed.
// An empty run passes: there is nothing to fail.
func (s *RunSummary) AllPassed() bool {
	for _, res := range s.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// PassedCount returns the number of files that passed.
func (s *RunSummary) PassedCount() int {
	count := 0
	for _, res := range s.Results {
		if res.Passed {
			count++
		}
	}
	return count
}

// FailedCount returns the number of files that failed.
func (s *RunSummary) FailedCount() int {
	return len(s.Results) - s.PassedCount()
}
