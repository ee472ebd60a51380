package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadRulesFile tests loading and merging a YAML rules file.
func TestLoadRulesFile(t *testing.T) {
	t.Parallel()

	t.Run("overrides merge over defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".seolint")
		content := `
description_max_length: 200
site_origin: https://example.org
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		rules, err := LoadRulesFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if rules.DescriptionMaxLength != 200 {
			t.Errorf("got limit %d, expected 200", rules.DescriptionMaxLength)
		}
		if rules.SiteOrigin != "https://example.org" {
			t.Errorf("got origin %q, expected 'https://example.org'", rules.SiteOrigin)
		}

		// Omitted fields keep their defaults.
		if len(rules.RequiredMetaTags) != 5 {
			t.Errorf("expected default meta tags to survive, got %v", rules.RequiredMetaTags)
		}
		if len(rules.SchemaTypes) != 3 {
			t.Errorf("expected default schema types to survive, got %v", rules.SchemaTypes)
		}
	})

	t.Run("tag lists replace the defaults entirely", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".seolint")
		content := `
required_meta_tags:
  - description
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		rules, err := LoadRulesFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(rules.RequiredMetaTags) != 1 || rules.RequiredMetaTags[0] != "description" {
			t.Errorf("got %v, expected [description]", rules.RequiredMetaTags)
		}
	})

	t.Run("missing file returns ErrRulesNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadRulesFile(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrRulesNotFound) {
			t.Errorf("expected ErrRulesNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".seolint")
		if err := os.WriteFile(path, []byte("description_max_length: [not a number"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadRulesFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindRulesFile tests rules file discovery.
// The cwd and home fallbacks depend on process-wide state, so only the
// explicit-path behavior is covered here.
func TestFindRulesFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned as-is", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("site_origin: https://example.org\n"), 0600); err != nil {
			t.Fatal(err)
		}

		if got := FindRulesFile(path); got != path {
			t.Errorf("got %q, expected %q", got, path)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()

		if got := FindRulesFile(filepath.Join(t.TempDir(), "missing")); got != "" {
			t.Errorf("got %q, expected empty string", got)
		}
	})
}
