// Package main provides the entry point for the seolint CLI.
//
// seolint validates HTML pages against the Olocus site compliance
// checklist: required meta tags, Open Graph and Twitter Card tags,
// structural landmarks, accessibility hints, and JSON-LD structured data.
//
// Usage:
//
//	seolint check
//	seolint check public/ --markdown -o report.md
//
// See --help for all available options.
package main

// main is the entry point for seolint.
func main() {
	Execute()
}
