package runner

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/olocus/seolint/internal/checker"
	"github.com/olocus/seolint/internal/config"
	"github.com/olocus/seolint/internal/model"
)

// Runner validates a set of HTML files against a rule set.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Results are written into a pre-allocated slice by index, so the output
// order matches the input order regardless of the job count.
type Runner struct {
	// rules is the validation rule set applied to every file.
	rules *config.Rules

	// jobs is the maximum number of files checked concurrently.
	jobs int

	// logger is used for run-level logging.
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithJobs sets the maximum number of files checked concurrently.
// Values below 1 are ignored; the default of 1 keeps the run sequential.
func WithJobs(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.jobs = n
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New creates a Runner with the given rule set.
func New(rules *config.Rules, opts ...Option) *Runner {
	r := &Runner{
		rules: rules,
		jobs:  config.DefaultJobs,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Run validates the given files and returns one report per file, in input
// order. Unreadable files produce a failed report; no file aborts the run.
// The only error returned is context cancellation.
func (r *Runner) Run(ctx context.Context, paths []string) ([]*model.Report, error) {
	r.logger.Debug("starting validation run",
		"files", len(paths),
		"jobs", r.jobs,
	)

	reports := make([]*model.Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			r.logger.Debug("checking file", "path", path, "index", i+1, "total", len(paths))
			reports[i] = checker.CheckFile(path, r.rules)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// RunTargets expands each target into its file list and validates them all.
// A target that is a directory is expanded via checker.DiscoverFiles; a
// target that is a file is checked as-is. A target that cannot be listed
// yields a failed report under its own name, consistent with unreadable
// files, so one bad target never aborts the rest of the run.
func (r *Runner) RunTargets(ctx context.Context, targets []string) ([]*model.Report, error) {
	paths := make([]string, 0, len(targets))
	failed := make(map[string]error)

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			failed[target] = err
			paths = append(paths, target)
			continue
		}

		if !info.IsDir() {
			paths = append(paths, target)
			continue
		}

		files, err := checker.DiscoverFiles(target)
		if err != nil {
			failed[target] = err
			paths = append(paths, target)
			continue
		}
		paths = append(paths, files...)
	}

	reports := make([]*model.Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for i, path := range paths {
		i, path := i, path
		if err := failed[path]; err != nil {
			rep := model.NewReport(filepath.Base(path))
			rep.Path = path
			rep.AddError("cannot read target: " + err.Error())
			reports[i] = rep
			r.logger.Warn("target is not readable", "target", path, "error", err)
			continue
		}

		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			r.logger.Debug("checking file", "path", path, "index", i+1, "total", len(paths))
			reports[i] = checker.CheckFile(path, r.rules)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
