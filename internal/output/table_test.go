package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/routeaudit/routeaudit/internal/collector"
	"github.com/routeaudit/routeaudit/internal/routes"
)

func TestTableFormatter_Format(t *testing.T) {
	report, outcomes := auditScenario()

	var buf bytes.Buffer
	f := NewTableFormatter(&Options{NoColor: true})
	if err := f.Format(&buf, report, outcomes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()

	for _, want := range []string{"NAMESPACE", "ROUTE", "HOST", "SERVICE", "TLS", "INGRESS"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected header %q in output:\n%s", want, out)
		}
	}

	if !strings.Contains(out, "web.a.example") {
		t.Errorf("expected route host in output:\n%s", out)
	}

	// Empty namespaces still get a row
	if got := strings.Count(out, "(no routes)"); got != 2 {
		t.Errorf("expected 2 no-routes rows, got %d:\n%s", got, out)
	}

	if !strings.Contains(out, "Summary: 3 namespaces") {
		t.Errorf("expected summary line in output:\n%s", out)
	}
	if !strings.Contains(out, "1 failed") {
		t.Errorf("expected failure count in summary:\n%s", out)
	}
}

func TestTableFormatter_VerbatimNamespaceText(t *testing.T) {
	outcomes := []collector.Outcome{
		{Namespace: "team-100%d", Records: []routes.Record{}},
	}
	report := collector.BuildReport([]string{"team-100%d"}, outcomes)

	var buf bytes.Buffer
	f := NewTableFormatter(&Options{NoColor: true})
	if err := f.Format(&buf, report, outcomes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "team-100%d") {
		t.Errorf("expected namespace to render verbatim:\n%s", out)
	}
	if strings.Contains(out, "%!") {
		t.Errorf("output contains a mangled formatting directive:\n%s", out)
	}
}

func TestTableFormatter_NoHeaders(t *testing.T) {
	report, outcomes := auditScenario()

	var buf bytes.Buffer
	f := NewTableFormatter(&Options{NoColor: true, NoHeaders: true})
	if err := f.Format(&buf, report, outcomes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(buf.String(), "NAMESPACE") {
		t.Errorf("expected no headers in output:\n%s", buf.String())
	}
}
