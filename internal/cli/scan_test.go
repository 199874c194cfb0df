package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestScanCommand(t *testing.T) {
	cmd := newScanCmd()

	if cmd.Use != "scan" {
		t.Errorf("expected use 'scan', got %q", cmd.Use)
	}

	if cmd.RunE == nil {
		t.Error("expected RunE to be set")
	}
}

func TestScanCommand_Help(t *testing.T) {
	cmd := newScanCmd()
	cmd.SetArgs([]string{"--help"})

	output := &bytes.Buffer{}
	cmd.SetOut(output)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	help := output.String()

	expectedStrings := []string{
		"namespace",
		"worker pool",
		"routeaudit scan",
	}

	for _, want := range expectedStrings {
		if !strings.Contains(help, want) {
			t.Errorf("expected help to contain %q", want)
		}
	}
}

func TestNamespacesCommand(t *testing.T) {
	cmd := newNamespacesCmd()

	if cmd.Use != "namespaces" {
		t.Errorf("expected use 'namespaces', got %q", cmd.Use)
	}

	foundAlias := false
	for _, alias := range cmd.Aliases {
		if alias == "ns" {
			foundAlias = true
		}
	}
	if !foundAlias {
		t.Error("expected 'ns' alias to be registered")
	}

	if cmd.RunE == nil {
		t.Error("expected RunE to be set")
	}
}
