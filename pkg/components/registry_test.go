package components_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-payform/pkg/component"
	"github.com/goliatone/go-payform/pkg/components"
	"github.com/goliatone/go-payform/pkg/components/mbway"
	"github.com/goliatone/go-payform/pkg/payment"
	"github.com/goliatone/go-payform/pkg/testsupport"
)

func TestDefaultRegistry(t *testing.T) {
	registry := components.Default()
	if diff := cmp.Diff([]string{"mbway"}, registry.List()); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}

	sink := &testsupport.SinkRecorder{}
	c, err := registry.New(testsupport.MBWayMethod(), component.WithAnalytics(sink))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, ok := c.(*mbway.Component); !ok {
		t.Fatalf("expected *mbway.Component, got %T", c)
	}
	if !c.RequiresModalPresentation() {
		t.Fatalf("expected modal presentation")
	}
	if _, err := c.Form(); err != nil {
		t.Fatalf("form: %v", err)
	}
	if got := len(sink.Events()); got != 1 {
		t.Fatalf("expected forwarded analytics sink, got %d events", got)
	}
}

func TestRegistryErrors(t *testing.T) {
	registry := components.NewRegistry()

	if _, err := registry.New(payment.Method{Type: "paypal", Name: "PayPal"}); !errors.Is(err, components.ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
	if _, err := registry.New(payment.Method{Type: "mbway"}); !errors.Is(err, payment.ErrInvalidMethod) {
		t.Fatalf("expected ErrInvalidMethod, got %v", err)
	}
	if err := registry.Register("", components.MBWay); err == nil {
		t.Fatalf("expected error for empty type")
	}
	if err := registry.Register("mbway", nil); err == nil {
		t.Fatalf("expected error for nil factory")
	}
	registry.MustRegister("mbway", components.MBWay)
	if err := registry.Register("mbway", components.MBWay); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestSupports(t *testing.T) {
	methods := testsupport.MustLoadMethods(t, filepath.Join("testdata", "methods.json"))
	supported, unsupported := components.Default().Supports(methods)
	if len(supported) != 1 || supported[0].Name != "MB WAY" {
		t.Fatalf("unexpected supported: %+v", supported)
	}
	if len(unsupported) != 2 {
		t.Fatalf("unexpected unsupported: %+v", unsupported)
	}
}
