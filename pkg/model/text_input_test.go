package model_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-payform/pkg/model"
	"github.com/goliatone/go-payform/pkg/validation"
)

func TestTextInputItem_FormatsOnEveryEdit(t *testing.T) {
	item := model.NewTextInputItem("phone", model.WithFormatter(validation.PhoneNumberFormatter{}))

	if err := item.SetValue("+351 123-345"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if got := item.Value(); got != "+351123345" {
		t.Fatalf("expected formatted value, got %q", got)
	}
	if err := item.SetValue(item.Value() + " 6x"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if got := item.Value(); got != "+3511233456" {
		t.Fatalf("expected formatted value after second edit, got %q", got)
	}
}

func TestTextInputItem_SetFormatterReformatsExistingValue(t *testing.T) {
	item := model.NewTextInputItem("phone")
	_ = item.SetValue("(351) 912")
	item.SetFormatter(validation.PhoneNumberFormatter{})
	if got := item.Value(); got != "351912" {
		t.Fatalf("expected value reformatted on attach, got %q", got)
	}
}

func TestTextInputItem_ValidityCache(t *testing.T) {
	item := model.NewTextInputItem("phone",
		model.WithValidator(validation.PhoneNumberValidator{}),
		model.WithFormatter(validation.PhoneNumberFormatter{}),
	)
	item.ValidationFailureMessage = "Invalid telephone number"

	if _, evaluated := item.Validity(); evaluated {
		t.Fatalf("expected validity to start unevaluated")
	}
	if item.Invalid() {
		t.Fatalf("unevaluated item must not report invalid")
	}

	_ = item.SetValue("123")
	if item.Validate() {
		t.Fatalf("expected short number to be invalid")
	}
	if !item.Invalid() {
		t.Fatalf("expected Invalid after failed validation")
	}
	if item.FailureMessage() != "Invalid telephone number" {
		t.Fatalf("unexpected failure message %q", item.FailureMessage())
	}

	_ = item.SetValue("+3511233456789")
	if _, evaluated := item.Validity(); evaluated {
		t.Fatalf("expected edit to reset validity cache")
	}
	if !item.Validate() {
		t.Fatalf("expected full number to be valid")
	}
	valid, evaluated := item.Validity()
	if !valid || !evaluated {
		t.Fatalf("expected cached valid result, got valid=%v evaluated=%v", valid, evaluated)
	}
}

func TestTextInputItem_NoValidatorIsValid(t *testing.T) {
	item := model.NewTextInputItem("note")
	if !item.Validate() {
		t.Fatalf("item without validator must be vacuously valid")
	}
	if valid, evaluated := item.Validity(); !valid || !evaluated {
		t.Fatalf("expected cached true, got valid=%v evaluated=%v", valid, evaluated)
	}
}

func TestTextInputItem_LockedRejectsEdits(t *testing.T) {
	item := model.NewTextInputItem("phone")
	_ = item.SetValue("1")
	item.SetEnabled(false)

	if err := item.SetValue("2"); !errors.Is(err, model.ErrItemLocked) {
		t.Fatalf("expected ErrItemLocked, got %v", err)
	}
	if item.Value() != "1" {
		t.Fatalf("locked edit must not change value, got %q", item.Value())
	}

	item.SetEnabled(true)
	if err := item.SetValue("2"); err != nil {
		t.Fatalf("unlocked edit failed: %v", err)
	}
}
