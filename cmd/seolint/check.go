package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/olocus/seolint/internal/config"
	"github.com/olocus/seolint/internal/database"
	"github.com/olocus/seolint/internal/model"
	"github.com/olocus/seolint/internal/report"
	"github.com/olocus/seolint/internal/runner"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Validate HTML files for SEO and accessibility compliance",
		Long: `Check validates HTML files against the site compliance checklist.

Each target directory is scanned for *.html files directly inside it and
inside a templates/ subdirectory if one exists; files whose name begins
with "_" are treated as partials and skipped. Targets that are files are
checked as-is. Without arguments the current directory is checked.

A file passes when it has zero errors; warnings are advisory and never
fail a file. The command exits non-zero if any file fails.

Examples:
  # Check the current directory
  seolint check

  # Check a build output directory
  seolint check public/

  # Check specific files
  seolint check index.html about.html

  # Machine-readable output
  seolint check --json public/

  # Markdown report written to a file
  seolint check --markdown -o report.md public/

  # Check files concurrently
  seolint check --jobs 8 public/`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	// Validation flags
	cmd.Flags().IntP("jobs", "j", config.DefaultJobs,
		"Number of files to check concurrently")
	cmd.Flags().StringP("rules", "c", "",
		"Rules file path (default: .seolint in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "J", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("no-color", false,
		"Disable colored console output")

	// History flags
	cmd.Flags().Bool("no-save", false,
		"Do not record this run in the history database")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	verbose := getVerboseFlag(cmd)
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	// Context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCheck(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Jobs, err = cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, err
	}

	cfg.RulesFilePath, err = cmd.Flags().GetString("rules")
	if err != nil {
		return nil, err
	}

	// Load the rules file if one exists.
	// If the user explicitly specified a path, error when it is missing.
	// Otherwise silently fall back to the default rules.
	explicitRulesPath := cfg.RulesFilePath != ""
	rulesPath := config.FindRulesFile(cfg.RulesFilePath)

	if rulesPath != "" {
		cfg.Rules, err = config.LoadRulesFile(rulesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules file %s: %w", rulesPath, err)
		}
	} else if explicitRulesPath {
		return nil, fmt.Errorf("rules file not found: %s", cfg.RulesFilePath)
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.NoColor, err = cmd.Flags().GetBool("no-color")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave
	cfg.DBDir = config.XDGDataDir()

	cfg.Targets = args
	if len(cfg.Targets) == 0 {
		cfg.Targets = []string{"."}
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runCheck executes the validation run.
func runCheck(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting check",
		"targets", cfg.Targets,
		"jobs", cfg.Jobs,
		"saveToDB", cfg.SaveToDB,
	)

	r := runner.New(cfg.Rules,
		runner.WithJobs(cfg.Jobs),
		runner.WithLogger(logger),
	)

	reports, err := r.RunTargets(ctx, cfg.Targets)
	if err != nil {
		return err
	}

	summary := model.NewRunSummary()
	for _, rep := range reports {
		summary.Add(rep)
	}

	if err := outputReports(cfg, reports, summary); err != nil {
		return err
	}

	if cfg.SaveToDB {
		saveRunSummary(ctx, cfg, summary, logger)
	}

	if !summary.AllPassed() {
		return fmt.Errorf("%d of %d files failed validation",
			summary.FailedCount(), len(summary.Results))
	}

	return nil
}

// outputReports writes the per-file reports and the aggregate summary in
// the requested format.
func outputReports(cfg *config.Config, reports []*model.Report, summary *model.RunSummary) error {
	output, closeOutput, err := openReportOutput(cfg)
	if err != nil {
		return err
	}
	defer closeOutput()

	// JSON is emitted as a single combined document.
	if cfg.JSONReport {
		writer := report.NewJSONWriter(output, report.WithPrettyPrint())
		_, err := writer.WriteRun(reports, summary)
		return err
	}

	var writer report.Writer
	if cfg.MarkdownReport {
		writer = report.NewMarkdownWriter(output)
	} else {
		style := report.NewStyle()
		if cfg.NoColor || cfg.ReportFile != "" {
			style = report.NewPlainStyle()
		}
		writer = report.NewConsoleWriter(output,
			report.WithStyle(style),
			report.WithChecklistDoc(config.ChecklistDoc),
		)
	}

	for _, rep := range reports {
		if _, err := writer.WriteReport(rep); err != nil {
			return err
		}
	}

	_, err = writer.WriteSummary(summary)
	return err
}

// openReportOutput resolves the report destination: the configured file
// (parent directories created, owner-only permissions) or stdout.
func openReportOutput(cfg *config.Config) (*os.File, func(), error) {
	if cfg.ReportFile == "" {
		return os.Stdout, func() {}, nil
	}

	if dir := filepath.Dir(cfg.ReportFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, func() { _ = f.Close() }, nil //nolint:errcheck // Best effort close
}

// saveRunSummary records the run in the history database.
// Storage failures degrade to a warning; they never fail the run.
func saveRunSummary(ctx context.Context, cfg *config.Config, summary *model.RunSummary, logger *slog.Logger) {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		logger.Warn("failed to open history database", "error", err)
		return
	}
	defer db.Close() //nolint:errcheck // Best effort close

	root := historyRoot(cfg.Targets)
	runID, err := db.SaveRun(ctx, root, summary)
	if err != nil {
		logger.Warn("failed to save run history", "error", err)
		return
	}

	logger.Info("run recorded", "root", root, "runID", runID)
}

// historyRoot normalizes the run's targets into the key runs are compared
// under: the absolute path of the first target.
func historyRoot(targets []string) string {
	if len(targets) == 0 {
		return "."
	}
	abs, err := filepath.Abs(targets[0])
	if err != nil {
		return targets[0]
	}
	return abs
}
