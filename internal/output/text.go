package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/routeaudit/routeaudit/internal/collector"
)

// TextFormatter renders the report as grouped human-readable text, one
// block per namespace. This is the canonical audit output.
type TextFormatter struct {
	options *Options
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(opts *Options) *TextFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TextFormatter{
		options: opts,
	}
}

// Format writes the report grouped by namespace. Namespaces are sorted
// lexicographically; a namespace without routes is printed with an explicit
// marker rather than skipped, whether its fetch failed or it simply exposes
// nothing.
func (f *TextFormatter) Format(w io.Writer, report collector.Report, outcomes []collector.Outcome) error {
	colors := NewColorScheme(w, f.options.NoColor)

	for _, ns := range sortedNamespaces(report) {
		records := report[ns]

		fmt.Fprintf(w, "\nNamespace: %s\n", colors.Namespace("%s", ns))

		if len(records) == 0 {
			fmt.Fprintln(w, "  (no routes)")
			continue
		}

		for _, r := range records {
			fmt.Fprintf(w, "  Route: %s\n", r.Name)
			fmt.Fprintf(w, "    Host: %s\n", r.Host)
			fmt.Fprintf(w, "    Path: %s\n", r.Path)
			fmt.Fprintf(w, "    Service: %s\n", r.Service)
			fmt.Fprintf(w, "    TLS Enabled: %t\n", r.TLS)
			fmt.Fprintf(w, "    Ingress Hosts: %s\n", strings.Join(r.IngressHosts, ", "))
			fmt.Fprintln(w, "  ---")
		}
	}

	f.printSummary(w, outcomes, colors)

	return nil
}

// printSummary appends aggregate statistics after the per-namespace blocks
func (f *TextFormatter) printSummary(w io.Writer, outcomes []collector.Outcome, colors *ColorScheme) {
	if len(outcomes) == 0 {
		return
	}

	summary := collector.Summarize(outcomes)

	text := summary.String()
	if !colors.Disabled && summary.Failed > 0 {
		text = colors.Warning("%s", text)
	}

	fmt.Fprintf(w, "\n%s\n", text)
}
