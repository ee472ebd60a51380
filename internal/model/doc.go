// Package model defines the core data structures used throughout seolint.
//
// This package contains the following main types:
//   - Report: Per-file validation result with passes, warnings, and errors
//   - Outcome: The kind of result a single check produced
//   - RunSummary: Aggregate pass/fail results across all checked files
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (checker, report, database) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
