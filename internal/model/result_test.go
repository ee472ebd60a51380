package model

import "testing"

// TestRunSummaryAdd verifies that Add captures the report's counts and
// pass/fail state.
func TestRunSummaryAdd(t *testing.T) {
	t.Parallel()

	rep := NewReport("about.html")
	rep.Path = "public/about.html"
	rep.AddPass("one")
	rep.AddPass("two")
	rep.AddWarning("missing canonical link")
	rep.AddError("missing H1")

	summary := NewRunSummary()
	summary.Add(rep)

	if len(summary.Results) != 1 {
		t.Fatalf("got %d results, expected 1", len(summary.Results))
	}

	res := summary.Results[0]
	if res.FileName != "about.html" {
		t.Errorf("got file name %q, expected 'about.html'", res.FileName)
	}
	if res.Path != "public/about.html" {
		t.Errorf("got path %q, expected 'public/about.html'", res.Path)
	}
	if res.Passed {
		t.Error("expected result to be failed")
	}
	if res.PassCount != 2 {
		t.Errorf("got pass count %d, expected 2", res.PassCount)
	}
	if res.WarningCount != 1 {
		t.Errorf("got warning count %d, expected 1", res.WarningCount)
	}
	if res.ErrorCount != 1 {
		t.Errorf("got error count %d, expected 1", res.ErrorCount)
	}
}

// TestRunSummaryAllPassed tests the run-level pass condition.
func TestRunSummaryAllPassed(t *testing.T) {
	t.Parallel()

	t.Run("empty run passes", func(t *testing.T) {
		t.Parallel()

		summary := NewRunSummary()
		if !summary.AllPassed() {
			t.Error("expected empty run to pass")
		}
	})

	t.Run("all files passing passes", func(t *testing.T) {
		t.Parallel()

		summary := NewRunSummary()
		summary.Add(NewReport("index.html"))
		summary.Add(NewReport("about.html"))

		if !summary.AllPassed() {
			t.Error("expected run with only passing files to pass")
		}
	})

	t.Run("one failing file fails the run", func(t *testing.T) {
		t.Parallel()

		failing := NewReport("broken.html")
		failing.AddError("missing <title>")

		summary := NewRunSummary()
		summary.Add(NewReport("index.html"))
		summary.Add(failing)

		if summary.AllPassed() {
			t.Error("expected run with a failing file to fail")
		}
	})
}

// TestRunSummaryCounts tests PassedCount and FailedCount.
func TestRunSummaryCounts(t *testing.T) {
	t.Parallel()

	failing := NewReport("broken.html")
	failing.AddError("missing <main> landmark")

	summary := NewRunSummary()
	summary.Add(NewReport("index.html"))
	summary.Add(NewReport("about.html"))
	summary.Add(failing)

	if got := summary.PassedCount(); got != 2 {
		t.Errorf("got %d passed, expected 2", got)
	}
	if got := summary.FailedCount(); got != 1 {
		t.Errorf("got %d failed, expected 1", got)
	}
}
