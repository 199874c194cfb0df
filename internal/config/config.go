package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultConfigName = ".routeaudit"

	// DefaultConcurrency is the standard fan-out bound for namespace fetches
	DefaultConcurrency = 10

	// DefaultTimeout bounds the whole audit run
	DefaultTimeout = 30 * time.Second

	// DefaultFetchTimeout bounds one namespace fetch
	DefaultFetchTimeout = 15 * time.Second
)

// Manager handles the routeaudit configuration file
type Manager struct {
	configPath string
	config     *AuditConfig
	viper      *viper.Viper
}

// NewManager creates a new configuration manager
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		viper:      viper.New(),
		config:     &AuditConfig{},
	}
}

// Load loads the routeaudit configuration from file
func (m *Manager) Load() (*AuditConfig, error) {
	if m.configPath != "" {
		m.viper.SetConfigFile(m.configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		m.viper.AddConfigPath(home)
		m.viper.SetConfigName(defaultConfigName)
		m.viper.SetConfigType("yaml")
	}

	m.viper.SetEnvPrefix("ROUTEAUDIT")
	m.viper.AutomaticEnv()

	m.config = &AuditConfig{}

	if err := m.viper.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		m.applyDefaults()
		return m.config, nil
	}

	if err := m.viper.Unmarshal(m.config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	m.applyDefaults()

	return m.config, nil
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *AuditConfig {
	return m.config
}

// InConfigFile reports whether the key was explicitly present in the loaded
// config file. Values merely filled in by applyDefaults report false, which
// lets callers keep file-provided values distinct from built-in defaults.
func (m *Manager) InConfigFile(key string) bool {
	return m.viper.InConfig(key)
}

// applyDefaults sets default values for configuration
func (m *Manager) applyDefaults() {
	if m.config == nil {
		return
	}

	if m.config.Defaults.Concurrency <= 0 {
		m.config.Defaults.Concurrency = DefaultConcurrency
	}

	if m.config.Defaults.Timeout == 0 {
		m.config.Defaults.Timeout = DefaultTimeout
	}

	if m.config.Defaults.FetchTimeout == 0 {
		m.config.Defaults.FetchTimeout = DefaultFetchTimeout
	}

	if m.config.Defaults.OutputFormat == "" {
		m.config.Defaults.OutputFormat = "text"
	}
}
