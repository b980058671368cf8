package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-payform/pkg/testsupport"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(testsupport.Context())
	return stdout.String(), stderr.String(), err
}

func TestMethodsCommand(t *testing.T) {
	out, _, err := execute(t, "methods", filepath.Join("testdata", "methods.yaml"))
	if err != nil {
		t.Fatalf("methods: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got:\n%s", out)
	}
	if fields := strings.Fields(lines[1]); fields[0] != "scheme" || fields[len(fields)-1] != "no" {
		t.Fatalf("unexpected scheme row %q", lines[1])
	}
	if fields := strings.Fields(lines[2]); fields[0] != "mbway" || fields[len(fields)-1] != "yes" {
		t.Fatalf("unexpected mbway row %q", lines[2])
	}
}

func TestMethodsCommandWithoutFile(t *testing.T) {
	if _, _, err := execute(t, "methods"); err == nil {
		t.Fatalf("expected error without a methods file")
	}
}

func TestMBWayJSON(t *testing.T) {
	out, errOut, err := execute(t,
		"--config", filepath.Join("testdata", "payform.yaml"),
		"mbway", "--phone", "+351 912-345-678", "--json",
	)
	if err != nil {
		t.Fatalf("mbway: %v", err)
	}

	golden := filepath.Join("testdata", "mbway_submission.golden")
	if testsupport.WriteMaybeGolden(t, golden, []byte(out)) {
		return
	}
	if diff := testsupport.CompareGolden(testsupport.MustReadGoldenString(t, golden), out); diff != "" {
		t.Fatalf("submission mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(errOut, `payform_analytics_forms_presented_total{component="mbway",environment="test",flavor="components"} 1`) {
		t.Fatalf("expected presented counter in metrics output, got:\n%s", errOut)
	}
}

func TestWriteMetricsEncodesEveryKind(t *testing.T) {
	registry := prometheus.NewRegistry()
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "payform_pending", Help: "Pending submissions."})
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "payform_events_total", Help: "Events."}, []string{"title"})
	registry.MustRegister(gauge, counter)
	gauge.Set(3)
	counter.WithLabelValues(`say "hi"`).Inc()

	var buf bytes.Buffer
	if err := writeMetrics(&buf, registry); err != nil {
		t.Fatalf("write metrics: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# TYPE payform_pending gauge",
		"payform_pending 3\n",
		`payform_events_total{title="say \"hi\""} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestMBWayReceipt(t *testing.T) {
	out, _, err := execute(t, "mbway", "--phone", "912345678", "--name", "MB WAY PT")
	if err != nil {
		t.Fatalf("mbway: %v", err)
	}
	for _, want := range []string{"Method: MB WAY PT (mbway)", "Telephone number: 912345678"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in receipt:\n%s", want, out)
		}
	}
}

func TestMBWayInvalidPhone(t *testing.T) {
	_, _, err := execute(t, "mbway", "--phone", "123")
	if err == nil || !strings.Contains(err.Error(), "Invalid telephone number") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Fatalf("unexpected version %q", out)
	}
}
