package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/urlstatus/internal/checker"
	"github.com/nao1215/urlstatus/internal/model"
	"github.com/nao1215/urlstatus/internal/report"
)

// Runner checks a list of URLs sequentially and reports each result.
type Runner struct {
	// checker performs the request for a single URL.
	checker checker.Checker

	// writer receives every result as soon as it is available.
	writer report.Writer

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Runner.
type Option func(*Runner)

// WithLogger sets a custom logger for the runner.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// New creates a Runner that checks URLs with c and reports to w.
func New(c checker.Checker, w report.Writer, opts ...Option) *Runner {
	r := &Runner{
		checker: c,
		writer:  w,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Run writes the report header, then checks every URL in order.
//
// Every URL is attempted exactly once and a failed check never stops the
// run. Run returns early only when ctx is cancelled, in which case the
// interrupted URL is not reported and ctx.Err() is returned, or when the
// writer fails.
func (r *Runner) Run(ctx context.Context, urls []string) (model.Summary, error) {
	var summary model.Summary

	if err := r.writer.WriteHeader(); err != nil {
		return summary, err
	}

	for i, target := range urls {
		select {
		case <-ctx.Done():
			r.logger.Warn("run cancelled",
				"checked", i,
				"remaining", len(urls)-i,
			)
			return summary, ctx.Err()
		default:
		}

		r.logger.Debug("checking url", "index", i+1, "total", len(urls), "url", target)

		start := time.Now()
		result := r.checker.Check(ctx, target)
		elapsed := time.Since(start)

		// A request aborted by cancellation says nothing about the URL.
		if ctx.Err() != nil && result.Failed() {
			r.logger.Warn("run cancelled",
				"checked", i,
				"remaining", len(urls)-i,
			)
			return summary, ctx.Err()
		}

		r.logResult(result, elapsed)

		if err := r.writer.WriteResult(result); err != nil {
			return summary, fmt.Errorf("failed to report %s: %w", target, err)
		}
		summary.Add(result)
	}

	r.logger.Info("run completed",
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"httpErrors", summary.HTTPErrors,
		"failed", summary.Failed,
	)

	return summary, nil
}

// logResult records the outcome of a single check.
func (r *Runner) logResult(result *model.CheckResult, elapsed time.Duration) {
	if result.Failed() {
		r.logger.Info("check failed",
			"url", result.URL,
			"kind", result.Kind.String(),
			"error", result.Err,
			"elapsed", elapsed.Round(time.Millisecond),
		)
		return
	}

	r.logger.Debug("check completed",
		"url", result.URL,
		"status", result.StatusCode,
		"elapsed", elapsed.Round(time.Millisecond),
	)
}
