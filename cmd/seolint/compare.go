package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/olocus/seolint/internal/config"
	"github.com/olocus/seolint/internal/database"
	"github.com/olocus/seolint/internal/model"
)

// Change direction labels used in comparison output.
const (
	changeRegressed = "regressed"
	changeFixed     = "fixed"
	changeAdded     = "added"
	changeRemoved   = "removed"
)

// errNotEnoughRuns is returned when fewer than two runs are recorded for
// the requested target.
var errNotEnoughRuns = errors.New("need at least two recorded runs to compare (run 'seolint check' first)")

// NewCompareCmd creates the compare command.
// This command compares check results with historical data stored in the
// database.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [path]",
		Short: "Compare the two most recent check runs for a target",
		Long: `Compare shows what changed between the two most recent recorded runs.

Runs are recorded by 'seolint check' in the history database and keyed by
the absolute path of the checked target. The comparison lists files that
regressed (newly failing), files that were fixed, and files added to or
removed from the target since the previous run.

Examples:
  # Compare the two latest runs for the current directory
  seolint compare

  # Compare runs for a build output directory
  seolint compare public/

  # List recorded runs for a target
  seolint compare --list public/

  # List all targets in the database
  seolint compare --list-targets

  # Output the comparison in JSON format
  seolint compare --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompareCmd,
	}

	cmd.Flags().BoolP("list", "l", false,
		"List recorded runs for the target instead of comparing")
	cmd.Flags().BoolP("list-targets", "L", false,
		"List all targets recorded in the database")
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	listRuns, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	listTargets, err := cmd.Flags().GetBool("list-targets")
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	root, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close() //nolint:errcheck // Best effort close

	ctx := context.Background()
	out := cmd.OutOrStdout()

	if listTargets {
		roots, err := db.ListRoots(ctx)
		if err != nil {
			return err
		}
		for _, r := range roots {
			fmt.Fprintln(out, r)
		}
		return nil
	}

	if listRuns {
		runs, err := db.ListRuns(ctx, root, 0)
		if err != nil {
			return err
		}
		for _, run := range runs {
			fmt.Fprintf(out, "#%d  %s  %d files, %d passed, %d failed\n",
				run.ID, run.Timestamp.Format("2006-01-02 15:04:05"),
				run.Total, run.Passed, run.Failed)
		}
		return nil
	}

	runs, err := db.LatestRuns(ctx, root, 2)
	if err != nil {
		return err
	}
	if len(runs) < 2 {
		return errNotEnoughRuns
	}

	// LatestRuns returns newest first.
	diff := compareRuns(runs[1], runs[0])

	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(diff)
	}

	writeComparison(out, diff)
	return nil
}

// FileChange is one file whose outcome changed between two runs.
type FileChange struct {
	// FileName identifies the file: its path relative to the run root,
	// or the basename for rows recorded without a path.
	FileName string `json:"file_name"`

	// Change is the direction of the change.
	Change string `json:"change"`

	// PreviousErrors is the error count in the older run.
	// Zero for files added since the previous run.
	PreviousErrors int `json:"previous_errors"`

	// CurrentErrors is the error count in the newer run.
	// Zero for files removed since the previous run.
	CurrentErrors int `json:"current_errors"`
}

// RunComparison is the difference between two recorded runs.
type RunComparison struct {
	// Root is the compared target.
	Root string `json:"root"`

	// PreviousRunID and CurrentRunID identify the compared runs.
	PreviousRunID int64 `json:"previous_run_id"`
	CurrentRunID  int64 `json:"current_run_id"`

	// Changes lists files whose outcome changed, in current-run order
	// with removed files appended.
	Changes []FileChange `json:"changes"`
}

// compareRuns diffs two runs: previous is the older, current the newer.
// Files are matched by their stored path relative to the run root, so two
// files sharing a basename stay distinct. A file present in only one run
// is reported as added or removed, never as failed.
func compareRuns(previous, current *database.RunRecord) *RunComparison {
	diff := &RunComparison{
		Root:          current.Root,
		PreviousRunID: previous.ID,
		CurrentRunID:  current.ID,
		Changes:       make([]FileChange, 0),
	}

	prevFiles := make(map[string]model.FileResult, len(previous.Files))
	for _, f := range previous.Files {
		prevFiles[fileKey(f)] = f
	}

	currentFiles := make(map[string]bool, len(current.Files))
	for _, f := range current.Files {
		key := fileKey(f)
		currentFiles[key] = true

		prev, known := prevFiles[key]
		if !known {
			diff.Changes = append(diff.Changes, FileChange{
				FileName:      key,
				Change:        changeAdded,
				CurrentErrors: f.ErrorCount,
			})
			continue
		}

		switch {
		case prev.Passed && !f.Passed:
			diff.Changes = append(diff.Changes, FileChange{
				FileName:       key,
				Change:         changeRegressed,
				PreviousErrors: prev.ErrorCount,
				CurrentErrors:  f.ErrorCount,
			})
		case !prev.Passed && f.Passed:
			diff.Changes = append(diff.Changes, FileChange{
				FileName:       key,
				Change:         changeFixed,
				PreviousErrors: prev.ErrorCount,
				CurrentErrors:  f.ErrorCount,
			})
		}
	}

	for _, f := range previous.Files {
		if key := fileKey(f); !currentFiles[key] {
			diff.Changes = append(diff.Changes, FileChange{
				FileName:       key,
				Change:         changeRemoved,
				PreviousErrors: f.ErrorCount,
			})
		}
	}

	return diff
}

// fileKey returns the identity a file result is matched under: its stored
// relative path, or the basename for rows recorded without one.
func fileKey(f model.FileResult) string {
	if f.Path != "" {
		return f.Path
	}
	return f.FileName
}

// writeComparison prints a comparison in human-readable form.
func writeComparison(out io.Writer, diff *RunComparison) {
	fmt.Fprintf(out, "Comparing run #%d with run #%d for %s\n\n",
		diff.CurrentRunID, diff.PreviousRunID, diff.Root)

	if len(diff.Changes) == 0 {
		fmt.Fprintln(out, "No changes between runs.")
		return
	}

	for _, change := range diff.Changes {
		switch change.Change {
		case changeRegressed:
			fmt.Fprintf(out, "  regressed: %s (0 -> %d errors)\n", change.FileName, change.CurrentErrors)
		case changeFixed:
			fmt.Fprintf(out, "  fixed:     %s (%d -> 0 errors)\n", change.FileName, change.PreviousErrors)
		case changeAdded:
			fmt.Fprintf(out, "  added:     %s (%d errors)\n", change.FileName, change.CurrentErrors)
		case changeRemoved:
			fmt.Fprintf(out, "  removed:   %s\n", change.FileName)
		}
	}
}
