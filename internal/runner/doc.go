// Package runner orchestrates validation of a set of HTML files.
//
// The Runner discovers target files, checks each one, and collects reports
// in input order. File-level errors (unreadable files) are captured in the
// per-file report and never abort the run. With Jobs > 1 files are checked
// concurrently while the result order stays deterministic.
package runner
