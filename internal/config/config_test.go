package config

import (
	"errors"
	"testing"
)

// TestDefaultRules verifies the documented default rule set.
// This serves as living documentation of the defaults; changes to them
// should be intentional.
func TestDefaultRules(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()

	t.Run("default description limit is 155", func(t *testing.T) {
		t.Parallel()
		if rules.DescriptionMaxLength != 155 {
			t.Errorf("expected DescriptionMaxLength to be 155, got %d", rules.DescriptionMaxLength)
		}
	})

	t.Run("default site origin is https://olocus.com", func(t *testing.T) {
		t.Parallel()
		if rules.SiteOrigin != "https://olocus.com" {
			t.Errorf("expected SiteOrigin to be 'https://olocus.com', got '%s'", rules.SiteOrigin)
		}
	})

	t.Run("default meta tags", func(t *testing.T) {
		t.Parallel()
		expected := []string{"description", "keywords", "author", "robots", "viewport"}
		assertStringSlice(t, rules.RequiredMetaTags, expected)
	})

	t.Run("default open graph tags", func(t *testing.T) {
		t.Parallel()
		expected := []string{"og:type", "og:url", "og:title", "og:description", "og:image", "og:site_name"}
		assertStringSlice(t, rules.RequiredOpenGraphTags, expected)
	})

	t.Run("default twitter tags", func(t *testing.T) {
		t.Parallel()
		expected := []string{"twitter:card", "twitter:url", "twitter:title", "twitter:description", "twitter:image"}
		assertStringSlice(t, rules.RequiredTwitterTags, expected)
	})

	t.Run("default schema types", func(t *testing.T) {
		t.Parallel()
		expected := []string{"Organization", "WebSite", "WebPage"}
		assertStringSlice(t, rules.SchemaTypes, expected)
	})

	t.Run("mutating a rule set does not affect a fresh one", func(t *testing.T) {
		t.Parallel()

		mutated := DefaultRules()
		mutated.RequiredMetaTags[0] = "changed"

		fresh := DefaultRules()
		if fresh.RequiredMetaTags[0] != "description" {
			t.Error("default tag sets must be copied, not shared")
		}
	})
}

// TestNewConfig verifies that NewConfig returns a Config with the expected
// default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default Jobs is 1", func(t *testing.T) {
		t.Parallel()
		if cfg.Jobs != 1 {
			t.Errorf("expected Jobs to be 1, got %d", cfg.Jobs)
		}
	})

	t.Run("default Rules is the default rule set", func(t *testing.T) {
		t.Parallel()
		if cfg.Rules == nil {
			t.Fatal("expected Rules to be non-nil")
		}
		if cfg.Rules.DescriptionMaxLength != DefaultDescriptionMaxLength {
			t.Errorf("expected default rules, got limit %d", cfg.Rules.DescriptionMaxLength)
		}
	})

	t.Run("default report format is console", func(t *testing.T) {
		t.Parallel()
		if cfg.JSONReport || cfg.MarkdownReport {
			t.Error("expected JSONReport and MarkdownReport to be false")
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case targets one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid config returns nil", func(t *testing.T) {
		t.Parallel()

		if err := NewConfig().Validate(); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("zero jobs returns ErrInvalidJobs", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Jobs = 0

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidJobs) {
			t.Errorf("expected ErrInvalidJobs, got %v", err)
		}
	})

	t.Run("negative jobs returns ErrInvalidJobs", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Jobs = -1

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidJobs) {
			t.Errorf("expected ErrInvalidJobs, got %v", err)
		}
	})

	t.Run("conflicting formats return ErrConflictingReportFormats", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.JSONReport = true
		cfg.MarkdownReport = true

		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("nil rules return ErrNilRules", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Rules = nil

		if err := cfg.Validate(); !errors.Is(err, ErrNilRules) {
			t.Errorf("expected ErrNilRules, got %v", err)
		}
	})

	t.Run("non-positive description limit returns ErrInvalidDescriptionLimit", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Rules.DescriptionMaxLength = 0

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidDescriptionLimit) {
			t.Errorf("expected ErrInvalidDescriptionLimit, got %v", err)
		}
	})
}

// assertStringSlice fails the test unless got equals expected.
func assertStringSlice(t *testing.T, got, expected []string) {
	t.Helper()

	if len(got) != len(expected) {
		t.Fatalf("got %d entries, expected %d: %v", len(got), len(expected), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("entry %d: got %q, expected %q", i, got[i], expected[i])
		}
	}
}
