package config

import "time"

// AuditConfig represents the routeaudit configuration file structure
type AuditConfig struct {
	// Context is the kubeconfig context to audit (empty = current context)
	Context string `yaml:"context,omitempty" json:"context,omitempty"`

	// Defaults contains default settings for audit runs
	Defaults DefaultsConfig `yaml:"defaults,omitempty" json:"defaults,omitempty"`
}

// DefaultsConfig contains default configuration values
type DefaultsConfig struct {
	// Concurrency bounds the number of simultaneous namespace fetches.
	// The bound protects the control plane from a request burst when the
	// namespace count is large; it is static, not adaptive.
	Concurrency int `yaml:"concurrency,omitempty" json:"concurrency,omitempty"`

	// Timeout bounds the whole audit run
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`

	// FetchTimeout bounds each individual namespace fetch
	FetchTimeout time.Duration `yaml:"fetchTimeout,omitempty" json:"fetchTimeout,omitempty"`

	// OutputFormat is the default output format (text, table, json, yaml)
	OutputFormat string `yaml:"outputFormat,omitempty" json:"outputFormat,omitempty"`

	// NoColor disables colored output
	NoColor bool `yaml:"noColor,omitempty" json:"noColor,omitempty"`
}
