package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-payform/pkg/validation"
)

func TestAll_RequiresEveryValidator(t *testing.T) {
	v := validation.All(validation.Required(), nil, validation.LengthValidator{Min: 2, Max: 4})

	for value, want := range map[string]bool{
		"":      false,
		"   ":   false,
		"a":     false,
		"ab":    true,
		"abcd":  true,
		"abcde": false,
	} {
		if got := v.IsValid(value); got != want {
			t.Fatalf("IsValid(%q): want %v, got %v", value, want, got)
		}
	}
}

func TestLengthValidator_NoUpperBound(t *testing.T) {
	v := validation.LengthValidator{Min: 1}
	if !v.IsValid("a very long value that has no upper bound") {
		t.Fatalf("expected zero Max to disable the upper bound")
	}
	if v.IsValid("") {
		t.Fatalf("expected empty value to fail Min")
	}
}

func TestChain_AppliesInOrder(t *testing.T) {
	upper := validation.FormatterFunc(func(s string) string { return s + "!" })
	f := validation.Chain(validation.PhoneNumberFormatter{}, upper)
	if got := f.Format("+1 2"); got != "+12!" {
		t.Fatalf("unexpected chained output %q", got)
	}
}

func TestResult_AddAndMessages(t *testing.T) {
	result := validation.Result{Valid: true}
	result.Add(" phone ", " Invalid telephone number ")
	result.Add("backup", "Invalid telephone number")
	result.Add("name", "")

	if result.Valid {
		t.Fatalf("expected result to be invalid after Add")
	}
	want := []string{"Invalid telephone number"}
	if diff := cmp.Diff(want, result.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	issue, ok := result.For("phone")
	if !ok || issue.Message != "Invalid telephone number" {
		t.Fatalf("expected trimmed phone issue, got %#v (ok=%v)", issue, ok)
	}
	if _, ok := result.For("missing"); ok {
		t.Fatalf("expected no issue for unknown item")
	}
}
