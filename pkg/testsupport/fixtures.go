package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-payform/pkg/payment"
)

// MBWayMethod returns the method fixture used across component tests.
func MBWayMethod() payment.Method {
	return payment.Method{Type: payment.TypeMBWay, Name: "MB WAY"}
}

// EuroPayment returns a checkout context of value minor units in EUR.
func EuroPayment(value int64) *payment.Payment {
	return &payment.Payment{
		Amount:      payment.Amount{Value: value, CurrencyCode: "EUR"},
		CountryCode: "PT",
	}
}

// MustLoadMethods decodes a methods fixture, failing the test on error.
func MustLoadMethods(t *testing.T, path string) []payment.Method {
	t.Helper()

	methods, err := LoadMethods(path)
	if err != nil {
		t.Fatalf("load methods: %v", err)
	}
	return methods
}

// LoadMethods reads a JSON or YAML methods fixture without requiring
// testing.T so callers can use it in setup functions.
func LoadMethods(path string) ([]payment.Method, error) {
	if path == "" {
		return nil, errors.New("testsupport: methods path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read methods: %w", err)
	}
	methods, err := payment.DecodeMethods(data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: decode methods: %w", err)
	}
	return methods, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureOutput runs a render function that also writes to an io.Writer and
// returns both the result and the writer contents.
func CaptureOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out, buf.String()
}
