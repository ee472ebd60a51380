// Package docsync mirrors Markdown documentation into the Docusaurus tree.
//
// Each source file is copied to the target path with a YAML front-matter
// block prepended, creating parent directories as needed. Files that
// already carry front matter are copied as-is.
package docsync
