package checker

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document is the queryable form of one parsed HTML file.
// It is built in a single DOM walk so each check can run without touching
// the tree again.
//
// Design decision: We collect everything the checks need in one pass rather
// than giving each check its own tree walk because:
//  1. A single pass is more efficient
//  2. Related data can be collected together
//  3. Checks stay free of parsing concerns
type Document struct {
	// HasLang is true if the <html> element carries a lang attribute.
	HasLang bool

	// Lang is the value of the lang attribute, if present.
	Lang string

	// Title is the text of the first <title> element.
	Title string

	// HasTitle is true if a <title> element was found.
	HasTitle bool

	// MetaNames maps <meta name="..."> values to their content.
	// Only the first occurrence of a name is kept.
	MetaNames map[string]string

	// MetaProperties maps <meta property="..."> values to their content.
	// Open Graph tags use the property attribute instead of name.
	MetaProperties map[string]string

	// HasCanonical is true if a <link rel="canonical"> element was found.
	HasCanonical bool

	// CanonicalHref is the href of the canonical link, if present.
	CanonicalHref string

	// HasMain is true if a <main> element was found.
	HasMain bool

	// HeadingLevels holds the level (1..6) of every heading element in
	// document order.
	HeadingLevels []int

	// ImageCount is the number of <img> elements.
	ImageCount int

	// ImagesMissingAlt is the number of <img> elements without an alt
	// attribute. An empty alt="" counts as present: it is valid markup
	// for decorative images.
	ImagesMissingAlt int

	// HasSkipLink is true if any element carries the skip-link class.
	HasSkipLink bool

	// HasAriaLabel is true if any element carries an aria-label attribute.
	HasAriaLabel bool

	// JSONLD holds the raw content of every
	// <script type="application/ld+json"> block, in document order.
	JSONLD []string
}

// ParseDocument parses HTML content into a Document.
// The tokenizer recovers from malformed markup, so parse errors are rare;
// they indicate the input could not be read, not merely bad HTML.
func ParseDocument(content io.Reader) (*Document, error) {
	root, err := html.Parse(content)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		MetaNames:      make(map[string]string),
		MetaProperties: make(map[string]string),
		HeadingLevels:  make([]int, 0),
		JSONLD:         make([]string, 0),
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			doc.processElement(n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return doc, nil
}

// processElement records the parts of an element the checks care about.
// The parser lowercases element and attribute names, so tag and attribute
// name matching is case-insensitive; attribute values are compared as-is.
func (d *Document) processElement(n *html.Node) {
	// Attributes checked on any element.
	if hasAttr(n, "aria-label") {
		d.HasAriaLabel = true
	}
	if hasClass(n, "skip-link") {
		d.HasSkipLink = true
	}

	switch n.Data {
	case "html":
		if hasAttr(n, "lang") {
			d.HasLang = true
			d.Lang = getAttr(n, "lang")
		}

	case "title":
		if !d.HasTitle {
			d.HasTitle = true
			d.Title = strings.TrimSpace(textContent(n))
		}

	case "meta":
		if name := getAttr(n, "name"); name != "" {
			if _, ok := d.MetaNames[name]; !ok {
				d.MetaNames[name] = getAttr(n, "content")
			}
		}
		if property := getAttr(n, "property"); property != "" {
			if _, ok := d.MetaProperties[property]; !ok {
				d.MetaProperties[property] = getAttr(n, "content")
			}
		}

	case "link":
		if getAttr(n, "rel") == "canonical" && !d.HasCanonical {
			d.HasCanonical = true
			d.CanonicalHref = getAttr(n, "href")
		}

	case "main":
		d.HasMain = true

	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		d.HeadingLevels = append(d.HeadingLevels, level)

	case "img":
		d.ImageCount++
		if !hasAttr(n, "alt") {
			d.ImagesMissingAlt++
		}

	case "script":
		if strings.TrimSpace(getAttr(n, "type")) == "application/ld+json" {
			d.JSONLD = append(d.JSONLD, textContent(n))
		}
	}
}

// H1Count returns the number of <h1> headings.
func (d *Document) H1Count() int {
	count := 0
	for _, level := range d.HeadingLevels {
		if level == 1 {
			count++
		}
	}
	return count
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// hasAttr reports whether the node carries the attribute at all,
// regardless of its value.
func hasAttr(n *html.Node, key string) bool {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return true
		}
	}
	return false
}

// hasClass reports whether the node's class attribute contains the given
// class token.
func hasClass(n *html.Node, class string) bool {
	for _, token := range strings.Fields(getAttr(n, "class")) {
		if token == class {
			return true
		}
	}
	return false
}

// textContent concatenates the text children of a node.
func textContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}
