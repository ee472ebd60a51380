// Package database provides SQLite-based storage of validation run history.
//
// Every check run can be recorded with its per-file outcomes, enabling the
// compare command to diff runs over time. The database lives under the XDG
// data directory and is never required for validation itself: a storage
// failure degrades to a logged warning, not a failed run.
package database
