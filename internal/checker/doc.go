// Package checker implements the HTML compliance checks.
//
// Each file is parsed once into a Document and then inspected by a fixed
// sequence of independent checks (meta tags, Open Graph, Twitter Card,
// structural elements, accessibility, structured data, heading hierarchy,
// canonical URL). Checks append their outcomes to a model.Report; they never
// interrupt control flow or touch the filesystem.
//
// Design decision: We parse HTML into a DOM tree with golang.org/x/net/html
// and query it with tree walks rather than regular expressions. Regex-based
// inspection breaks on attribute reordering, multi-line tags, and nested
// quotes; the parser handles malformed real-world markup correctly.
package checker
