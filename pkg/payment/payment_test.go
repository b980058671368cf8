package payment_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-payform/pkg/payment"
)

func TestDecodeMethods_JSONAndYAML(t *testing.T) {
	want := []payment.Method{
		{Type: "mbway", Name: "MB WAY"},
		{Type: "scheme", Name: "Credit Card"},
	}

	jsonDoc := []byte(`{"paymentMethods":[{"type":" mbway ","name":"MB WAY"},{"type":"scheme","name":"Credit Card"}]}`)
	got, err := payment.DecodeMethods(jsonDoc)
	if err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("json methods mismatch (-want +got):\n%s", diff)
	}

	yamlDoc := []byte("paymentMethods:\n  - type: mbway\n    name: MB WAY\n  - type: scheme\n    name: Credit Card\n")
	got, err = payment.DecodeMethods(yamlDoc)
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("yaml methods mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeMethods_RejectsIncompleteEntries(t *testing.T) {
	_, err := payment.DecodeMethods([]byte(`{"paymentMethods":[{"type":"mbway"}]}`))
	if !errors.Is(err, payment.ErrInvalidMethod) {
		t.Fatalf("expected ErrInvalidMethod, got %v", err)
	}

	if _, err := payment.DecodeMethods([]byte("   ")); err == nil {
		t.Fatalf("expected empty document error")
	}
}

func TestDecodeMethods_KeepsParseError(t *testing.T) {
	_, err := payment.DecodeMethods([]byte("paymentMethods:\n  type: mbway\n"))
	var typeErr *yaml.TypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected wrapped yaml.TypeError, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line position in error, got %v", err)
	}
}

func TestComponentData_JSON(t *testing.T) {
	method := payment.Method{Type: "mbway", Name: "MB WAY"}
	data := payment.ComponentData{
		PaymentMethodDetails: payment.NewMBWayDetails(method, "+3511233456789"),
	}
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"paymentMethod":{"type":"mbway","telephoneNumber":"+3511233456789"}}`
	if string(raw) != want {
		t.Fatalf("unexpected payload\nwant %s\ngot  %s", want, raw)
	}
}

func TestNewMBWayDetails_DefaultsType(t *testing.T) {
	details := payment.NewMBWayDetails(payment.Method{}, "1")
	if details.MethodType() != payment.TypeMBWay {
		t.Fatalf("expected default type, got %q", details.MethodType())
	}
}
