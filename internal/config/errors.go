package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances in Validate(). This allows callers to use errors.Is()
// for programmatic error handling while still providing human-readable
// messages.
var (
	// ErrInvalidJobs is returned when the job count is zero or negative.
	ErrInvalidJobs = errors.New("jobs must be a positive number")

	// ErrConflictingReportFormats is returned when both JSON and Markdown
	// output formats are requested.
	ErrConflictingReportFormats = errors.New("json and markdown report formats are mutually exclusive")

	// ErrNilRules is returned when the configuration has no rule set.
	ErrNilRules = errors.New("rule set is not configured")

	// ErrInvalidDescriptionLimit is returned when the description length
	// threshold is zero or negative.
	ErrInvalidDescriptionLimit = errors.New("description length limit must be a positive number")
)
