// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - ConsoleWriter: Color-coded text output for terminal display
//   - MarkdownWriter: GitHub Flavored Markdown for documentation and CI
//   - JSONWriter: Structured JSON output for tool integration
//
// Design decision: We separate report writing from report data structures
// (which are in the model package) to follow the single responsibility
// principle. This allows adding new output formats without modifying
// the core data structures.
//
// Terminal styling lives in an explicit Style value passed to the console
// writer rather than module-level ANSI constants, so formatting is a pure
// function of outcome kind and can be tested independent of the terminal.
package report
