package output

import (
	"io"

	"github.com/routeaudit/routeaudit/internal/collector"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders the report as YAML
type YAMLFormatter struct {
	options *Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(opts *Options) *YAMLFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &YAMLFormatter{
		options: opts,
	}
}

// Format writes the report as a sorted sequence of per-namespace entries
func (f *YAMLFormatter) Format(w io.Writer, report collector.Report, outcomes []collector.Outcome) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(buildEntries(report, outcomes))
}
