package output

import (
	"io"
	"sort"

	"github.com/routeaudit/routeaudit/internal/collector"
	"github.com/routeaudit/routeaudit/internal/routes"
)

// Format represents the output format type
type Format string

const (
	// FormatText outputs the report as grouped human-readable text
	FormatText Format = "text"
	// FormatTable outputs the report as a flat table (kubectl-style)
	FormatTable Format = "table"
	// FormatJSON outputs the report as JSON
	FormatJSON Format = "json"
	// FormatYAML outputs the report as YAML
	FormatYAML Format = "yaml"
)

// Formatter renders a completed audit report. Rendering is deterministic:
// namespaces appear in lexicographic order regardless of the order their
// fetches completed in, and routes keep their within-namespace source order.
type Formatter interface {
	Format(w io.Writer, report collector.Report, outcomes []collector.Outcome) error
}

// Option is a functional option for configuring formatters
type Option func(*Options)

// Options holds configuration for formatters
type Options struct {
	// NoColor disables color output
	NoColor bool

	// NoHeaders disables table headers
	NoHeaders bool
}

// WithNoColor disables color output
func WithNoColor(noColor bool) Option {
	return func(o *Options) {
		o.NoColor = noColor
	}
}

// WithNoHeaders disables table headers
func WithNoHeaders(noHeaders bool) Option {
	return func(o *Options) {
		o.NoHeaders = noHeaders
	}
}

// NewFormatter creates a new formatter for the specified format
func NewFormatter(format Format, opts ...Option) Formatter {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	switch format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		return NewTableFormatter(options)
	case FormatText:
		fallthrough
	default:
		return NewTextFormatter(options)
	}
}

// NamespaceEntry is the per-namespace unit of the machine-readable formats.
// Unlike the human text, it keeps the distinction between a failed fetch
// and a namespace that genuinely has no routes.
type NamespaceEntry struct {
	Namespace string          `json:"namespace" yaml:"namespace"`
	Status    string          `json:"status" yaml:"status"`
	Error     string          `json:"error,omitempty" yaml:"error,omitempty"`
	Routes    []routes.Record `json:"routes" yaml:"routes"`
}

// sortedNamespaces returns the report's keys in lexicographic order
func sortedNamespaces(report collector.Report) []string {
	names := make([]string, 0, len(report))
	for ns := range report {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names
}

// buildEntries assembles sorted per-namespace entries from the report and
// the fetch outcomes
func buildEntries(report collector.Report, outcomes []collector.Outcome) []NamespaceEntry {
	failures := collector.FailureByNamespace(outcomes)

	entries := make([]NamespaceEntry, 0, len(report))
	for _, ns := range sortedNamespaces(report) {
		entry := NamespaceEntry{
			Namespace: ns,
			Status:    "ok",
			Routes:    report[ns],
		}
		if err, ok := failures[ns]; ok {
			entry.Status = "failed"
			entry.Error = err.Error()
		}
		entries = append(entries, entry)
	}

	return entries
}
