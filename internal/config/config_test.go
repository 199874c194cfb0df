package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestManager_Load_Defaults(t *testing.T) {
	// Point at a directory with no config file so pure defaults apply
	m := NewManager(filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := m.Load()
	if err != nil {
		// Viper returns a not-exist error for an explicit missing file,
		// which Load treats as defaults
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Defaults.Concurrency != DefaultConcurrency {
		t.Errorf("expected concurrency %d, got %d", DefaultConcurrency, cfg.Defaults.Concurrency)
	}
	if cfg.Defaults.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %s, got %s", DefaultTimeout, cfg.Defaults.Timeout)
	}
	if cfg.Defaults.FetchTimeout != DefaultFetchTimeout {
		t.Errorf("expected fetch timeout %s, got %s", DefaultFetchTimeout, cfg.Defaults.FetchTimeout)
	}
	if cfg.Defaults.OutputFormat != "text" {
		t.Errorf("expected output format text, got %s", cfg.Defaults.OutputFormat)
	}
}

func TestManager_Load_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `context: prod-east
defaults:
  concurrency: 4
  timeout: 10s
  fetchTimeout: 2s
  outputFormat: json
  noColor: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	m := NewManager(path)
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Context != "prod-east" {
		t.Errorf("expected context prod-east, got %q", cfg.Context)
	}
	if cfg.Defaults.Concurrency != 4 {
		t.Errorf("expected concurrency 4, got %d", cfg.Defaults.Concurrency)
	}
	if cfg.Defaults.Timeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %s", cfg.Defaults.Timeout)
	}
	if cfg.Defaults.FetchTimeout != 2*time.Second {
		t.Errorf("expected fetch timeout 2s, got %s", cfg.Defaults.FetchTimeout)
	}
	if cfg.Defaults.OutputFormat != "json" {
		t.Errorf("expected output format json, got %s", cfg.Defaults.OutputFormat)
	}
	if !cfg.Defaults.NoColor {
		t.Error("expected noColor true")
	}
}

func TestManager_Load_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("defaults:\n  concurrency: 2\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	m := NewManager(path)
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Defaults.Concurrency != 2 {
		t.Errorf("expected concurrency 2, got %d", cfg.Defaults.Concurrency)
	}
	if cfg.Defaults.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %s", cfg.Defaults.Timeout)
	}
	if cfg.Defaults.OutputFormat != "text" {
		t.Errorf("expected default output format, got %s", cfg.Defaults.OutputFormat)
	}
}

func TestManager_InConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("defaults:\n  concurrency: 2\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	m := NewManager(path)
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !m.InConfigFile("defaults.concurrency") {
		t.Error("expected defaults.concurrency to be reported as file-provided")
	}

	// Timeout was filled in by the defaults, not by the file, and must not
	// be reported as file-provided even though the loaded value is non-zero
	if cfg.Defaults.Timeout != DefaultTimeout {
		t.Fatalf("expected default timeout, got %s", cfg.Defaults.Timeout)
	}
	if m.InConfigFile("defaults.timeout") {
		t.Error("expected defaults.timeout to be reported as defaulted, not file-provided")
	}
	if m.InConfigFile("defaults.outputFormat") {
		t.Error("expected defaults.outputFormat to be reported as defaulted, not file-provided")
	}
}

func TestManager_InConfigFile_NoFile(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := m.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, key := range []string{"defaults.concurrency", "defaults.timeout", "context"} {
		if m.InConfigFile(key) {
			t.Errorf("expected %s to be reported as absent without a config file", key)
		}
	}
}

func TestManager_Load_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("defaults: [not a map\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	m := NewManager(path)
	if _, err := m.Load(); err == nil {
		t.Error("expected error for malformed config file")
	}
}
