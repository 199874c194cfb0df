package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/routeaudit/routeaudit/internal/collector"
)

// TableFormatter renders the report as a flat table (kubectl-style)
type TableFormatter struct {
	options *Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts *Options) *TableFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TableFormatter{
		options: opts,
	}
}

// Format writes one row per route, namespaces in lexicographic order.
// Namespaces without routes still get a row, marked "(no routes)".
func (f *TableFormatter) Format(w io.Writer, report collector.Report, outcomes []collector.Outcome) error {
	colors := NewColorScheme(w, f.options.NoColor)
	table := f.createTable(w)

	headers := []string{"NAMESPACE", "ROUTE", "HOST", "PATH", "SERVICE", "TLS", "INGRESS"}
	if !f.options.NoHeaders {
		if colors.Disabled {
			table.SetHeader(headers)
		} else {
			coloredHeaders := make([]string, len(headers))
			for i, h := range headers {
				coloredHeaders[i] = colors.Header(h)
			}
			table.SetHeader(coloredHeaders)
		}
	}

	for _, ns := range sortedNamespaces(report) {
		records := report[ns]

		nsCell := ns
		if !colors.Disabled {
			nsCell = colors.Namespace("%s", ns)
		}

		if len(records) == 0 {
			table.Append([]string{nsCell, "(no routes)", "-", "-", "-", "-", "-"})
			continue
		}

		for _, r := range records {
			ingress := "-"
			if len(r.IngressHosts) > 0 {
				ingress = strings.Join(r.IngressHosts, ",")
			}

			table.Append([]string{
				nsCell,
				r.Name,
				r.Host,
				r.Path,
				r.Service,
				fmt.Sprintf("%t", r.TLS),
				ingress,
			})
		}
	}

	table.Render()

	f.printSummary(w, outcomes, colors)

	return nil
}

// createTable creates a new table with kubectl-style configuration
func (f *TableFormatter) createTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	return table
}

// printSummary prints aggregate statistics below the table
func (f *TableFormatter) printSummary(w io.Writer, outcomes []collector.Outcome, colors *ColorScheme) {
	if len(outcomes) == 0 {
		return
	}

	summary := collector.Summarize(outcomes)

	fmt.Fprintln(w, "")

	succeededText := fmt.Sprintf("%d succeeded", summary.Succeeded)
	if !colors.Disabled {
		succeededText = colors.Success("%s", succeededText)
	}

	failedText := fmt.Sprintf("%d failed", summary.Failed)
	if !colors.Disabled && summary.Failed > 0 {
		failedText = colors.Error("%s", failedText)
	}

	fmt.Fprintf(w, "Summary: %d namespaces, %s, %s, %d routes\n",
		summary.Total, succeededText, failedText, summary.Routes)
}
