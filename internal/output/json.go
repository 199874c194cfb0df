package output

import (
	"encoding/json"
	"io"

	"github.com/routeaudit/routeaudit/internal/collector"
)

// JSONFormatter renders the report as JSON
type JSONFormatter struct {
	options *Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(opts *Options) *JSONFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &JSONFormatter{
		options: opts,
	}
}

// Format writes the report as a sorted array of per-namespace entries
func (f *JSONFormatter) Format(w io.Writer, report collector.Report, outcomes []collector.Outcome) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildEntries(report, outcomes))
}
