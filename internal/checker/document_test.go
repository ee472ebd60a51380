package checker

import (
	"strings"
	"testing"
)

// TestParseDocumentLang tests lang attribute extraction.
func TestParseDocumentLang(t *testing.T) {
	t.Parallel()

	t.Run("detects lang attribute", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html lang="en"><head></head><body></body></html>`)

		if !doc.HasLang {
			t.Error("expected HasLang to be true")
		}
		if doc.Lang != "en" {
			t.Errorf("got lang %q, expected 'en'", doc.Lang)
		}
	})

	t.Run("no lang attribute", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head></head><body></body></html>`)

		if doc.HasLang {
			t.Error("expected HasLang to be false")
		}
	})

	t.Run("empty lang counts as present", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html lang=""><head></head><body></body></html>`)

		if !doc.HasLang {
			t.Error("expected HasLang to be true for empty lang attribute")
		}
	})
}

// TestParseDocumentTitle tests title extraction.
func TestParseDocumentTitle(t *testing.T) {
	t.Parallel()

	t.Run("extracts and trims title text", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head><title>  Olocus Protocol  </title></head></html>`)

		if !doc.HasTitle {
			t.Error("expected HasTitle to be true")
		}
		if doc.Title != "Olocus Protocol" {
			t.Errorf("got title %q, expected 'Olocus Protocol'", doc.Title)
		}
	})

	t.Run("keeps the first title only", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head><title>first</title><title>second</title></head></html>`)

		if doc.Title != "first" {
			t.Errorf("got title %q, expected 'first'", doc.Title)
		}
	})

	t.Run("no title element", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head></head><body></body></html>`)

		if doc.HasTitle {
			t.Error("expected HasTitle to be false")
		}
	})
}

// TestParseDocumentMeta tests meta tag collection by name and property.
func TestParseDocumentMeta(t *testing.T) {
	t.Parallel()

	t.Run("collects name and property separately", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head>
			<meta name="description" content="A page.">
			<meta property="og:title" content="Olocus">
		</head></html>`)

		if got := doc.MetaNames["description"]; got != "A page." {
			t.Errorf("got description %q, expected 'A page.'", got)
		}
		if got := doc.MetaProperties["og:title"]; got != "Olocus" {
			t.Errorf("got og:title %q, expected 'Olocus'", got)
		}
		if _, ok := doc.MetaNames["og:title"]; ok {
			t.Error("property tags must not appear in MetaNames")
		}
	})

	t.Run("first occurrence of a name wins", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head>
			<meta name="description" content="first">
			<meta name="description" content="second">
		</head></html>`)

		if got := doc.MetaNames["description"]; got != "first" {
			t.Errorf("got description %q, expected 'first'", got)
		}
	})

	t.Run("uppercase attribute names are normalized", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head><META NAME="robots" CONTENT="index, follow"></head></html>`)

		if got := doc.MetaNames["robots"]; got != "index, follow" {
			t.Errorf("got robots %q, expected 'index, follow'", got)
		}
	})
}

// TestParseDocumentCanonical tests canonical link detection.
func TestParseDocumentCanonical(t *testing.T) {
	t.Parallel()

	t.Run("detects canonical link", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head><link rel="canonical" href="https://olocus.com/"></head></html>`)

		if !doc.HasCanonical {
			t.Error("expected HasCanonical to be true")
		}
		if doc.CanonicalHref != "https://olocus.com/" {
			t.Errorf("got href %q, expected 'https://olocus.com/'", doc.CanonicalHref)
		}
	})

	t.Run("ignores other link relations", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head><link rel="stylesheet" href="main.css"></head></html>`)

		if doc.HasCanonical {
			t.Error("expected HasCanonical to be false")
		}
	})
}

// TestParseDocumentHeadings tests heading level collection.
func TestParseDocumentHeadings(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<html><body>
		<h1>Title</h1>
		<h2>Section</h2>
		<h3>Subsection</h3>
		<h2>Another section</h2>
		<h1>Second title</h1>
	</body></html>`)

	expected := []int{1, 2, 3, 2, 1}
	if len(doc.HeadingLevels) != len(expected) {
		t.Fatalf("got %d headings, expected %d", len(doc.HeadingLevels), len(expected))
	}
	for i, level := range expected {
		if doc.HeadingLevels[i] != level {
			t.Errorf("heading %d: got level %d, expected %d", i, doc.HeadingLevels[i], level)
		}
	}

	if got := doc.H1Count(); got != 2 {
		t.Errorf("got H1 count %d, expected 2", got)
	}
}

// TestParseDocumentImages tests image alt attribute counting.
func TestParseDocumentImages(t *testing.T) {
	t.Parallel()

	t.Run("counts images missing alt", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body>
			<img src="a.png" alt="Logo">
			<img src="b.png">
			<img src="c.png">
		</body></html>`)

		if doc.ImageCount != 3 {
			t.Errorf("got image count %d, expected 3", doc.ImageCount)
		}
		if doc.ImagesMissingAlt != 2 {
			t.Errorf("got %d images missing alt, expected 2", doc.ImagesMissingAlt)
		}
	})

	t.Run("empty alt counts as present", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body><img src="decorative.png" alt=""></body></html>`)

		if doc.ImagesMissingAlt != 0 {
			t.Errorf("got %d images missing alt, expected 0", doc.ImagesMissingAlt)
		}
	})
}

// TestParseDocumentAccessibility tests skip link and aria-label detection.
func TestParseDocumentAccessibility(t *testing.T) {
	t.Parallel()

	t.Run("detects skip link class token", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body><a class="visually-hidden skip-link" href="#main">Skip</a></body></html>`)

		if !doc.HasSkipLink {
			t.Error("expected HasSkipLink to be true")
		}
	})

	t.Run("substring of another class does not match", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body><a class="skip-links" href="#main">Skip</a></body></html>`)

		if doc.HasSkipLink {
			t.Error("expected HasSkipLink to be false for non-exact class token")
		}
	})

	t.Run("detects aria-label on any element", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body><nav aria-label="Main navigation"></nav></body></html>`)

		if !doc.HasAriaLabel {
			t.Error("expected HasAriaLabel to be true")
		}
	})
}

// TestParseDocumentJSONLD tests JSON-LD script block collection.
func TestParseDocumentJSONLD(t *testing.T) {
	t.Parallel()

	t.Run("collects ld+json blocks in order", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head>
			<script type="application/ld+json">{"@type": "Organization"}</script>
			<script type="application/ld+json">{"@type": "WebSite"}</script>
			<script type="text/javascript">var x = 1;</script>
		</head></html>`)

		if len(doc.JSONLD) != 2 {
			t.Fatalf("got %d JSON-LD blocks, expected 2", len(doc.JSONLD))
		}
		if !strings.Contains(doc.JSONLD[0], "Organization") {
			t.Errorf("first block should come first, got %q", doc.JSONLD[0])
		}
	})

	t.Run("type attribute is trimmed", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head><script type=" application/ld+json ">{}</script></head></html>`)

		if len(doc.JSONLD) != 1 {
			t.Errorf("got %d JSON-LD blocks, expected 1", len(doc.JSONLD))
		}
	})

	t.Run("plain scripts are ignored", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><head><script>var x = 1;</script></head></html>`)

		if len(doc.JSONLD) != 0 {
			t.Errorf("got %d JSON-LD blocks, expected 0", len(doc.JSONLD))
		}
	})
}

// TestParseDocumentMalformed verifies that the parser recovers from
// malformed markup instead of failing.
func TestParseDocumentMalformed(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<html lang="en"><head><title>Broken</head><body><h1>Heading<p>unclosed`)

	if !doc.HasLang {
		t.Error("expected HasLang to survive malformed markup")
	}
	if doc.Title != "Broken" {
		t.Errorf("got title %q, expected 'Broken'", doc.Title)
	}
	if doc.H1Count() != 1 {
		t.Errorf("got H1 count %d, expected 1", doc.H1Count())
	}
}

// mustParse parses HTML content, failing the test on error.
func mustParse(t *testing.T, content string) *Document {
	t.Helper()

	doc, err := ParseDocument(strings.NewReader(content))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return doc
}
