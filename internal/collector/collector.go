package collector

import (
	"context"
	"log/slog"
	"time"

	"github.com/routeaudit/routeaudit/internal/routes"
)

// Fetcher queries the route objects of a single namespace. Implementations
// must be safe for concurrent use and must convert all of their own failure
// modes into returned errors.
type Fetcher interface {
	FetchRoutes(ctx context.Context, namespace string) ([]routes.Record, error)
}

// Report maps each audited namespace to its normalized route list. Every
// namespace handed to Collect appears as a key; namespaces whose fetch
// failed map to an empty list, the same as namespaces with no routes.
type Report map[string][]routes.Record

// Collector fans one route fetch per namespace out over a bounded worker
// pool and assembles the complete report. A worker bound of 1 reproduces
// fully sequential collection through the same code path.
type Collector struct {
	workers      int
	fetchTimeout time.Duration
	progress     ProgressFunc
	logger       *slog.Logger
}

// Option is a functional option for configuring a Collector
type Option func(*Collector)

// WithFetchTimeout bounds each individual namespace fetch. A fetch that
// exceeds the timeout is recorded as a failure; it does not stall the run.
// Zero disables the per-fetch bound.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Collector) {
		c.fetchTimeout = d
	}
}

// WithProgress registers a per-namespace progress callback
func WithProgress(fn ProgressFunc) Option {
	return func(c *Collector) {
		c.progress = fn
	}
}

// New creates a collector with the given concurrency bound
func New(workers int, logger *slog.Logger, opts ...Option) *Collector {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Collector{
		workers: workers,
		logger:  logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Collect fetches the routes of every given namespace and returns the
// complete report plus the per-namespace outcomes. The outcomes retain the
// distinction between "fetch failed" and "no routes" that the report
// deliberately flattens.
//
// An empty namespace set performs zero fetches and yields an empty report.
func (c *Collector) Collect(ctx context.Context, fetcher Fetcher, namespaces []string) (Report, []Outcome) {
	namespaces = dedupe(namespaces)

	if len(namespaces) == 0 {
		c.logger.Debug("no namespaces to collect")
		return Report{}, nil
	}

	pool := NewPool(c.workers, c.logger)

	for _, ns := range namespaces {
		namespace := ns
		task := Task{
			Namespace: namespace,
			Fetch: func(ctx context.Context) ([]routes.Record, error) {
				if c.fetchTimeout > 0 {
					var cancel context.CancelFunc
					ctx, cancel = context.WithTimeout(ctx, c.fetchTimeout)
					defer cancel()
				}
				return fetcher.FetchRoutes(ctx, namespace)
			},
		}

		if err := pool.Submit(task); err != nil {
			c.logger.Error("failed to submit fetch", "namespace", namespace, "error", err)
		}
	}

	outcomes := pool.ExecuteWithProgress(ctx, c.progress)

	return BuildReport(namespaces, outcomes), outcomes
}

// BuildReport assembles the namespace-to-routes mapping from the fetch
// outcomes. The report's key set equals the namespace set exactly: failed
// fetches and namespaces with zero routes both map to an empty list, so no
// namespace is silently dropped.
func BuildReport(namespaces []string, outcomes []Outcome) Report {
	report := make(Report, len(namespaces))

	for _, ns := range namespaces {
		report[ns] = []routes.Record{}
	}

	for _, o := range outcomes {
		if _, ok := report[o.Namespace]; !ok {
			continue
		}
		if o.Err == nil && len(o.Records) > 0 {
			report[o.Namespace] = o.Records
		}
	}

	return report
}

// dedupe removes duplicate namespaces, preserving first-seen order
func dedupe(namespaces []string) []string {
	seen := make(map[string]bool, len(namespaces))
	out := make([]string, 0, len(namespaces))

	for _, ns := range namespaces {
		if ns == "" || seen[ns] {
			continue
		}
		seen[ns] = true
		out = append(out, ns)
	}

	return out
}
