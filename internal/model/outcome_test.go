package model

import "testing"

// TestOutcomeString tests the String method for all outcome kinds.
func TestOutcomeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		outcome  Outcome
		expected string
	}{
		{"pass", OutcomePass, "PASS"},
		{"warn", OutcomeWarn, "WARN"},
		{"error", OutcomeError, "ERROR"},
		{"unknown", Outcome(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.outcome.String(); got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}
