package form_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-payform/pkg/form"
	"github.com/goliatone/go-payform/pkg/model"
	"github.com/goliatone/go-payform/pkg/validation"
)

func phoneItem(id, value string) *model.TextInputItem {
	item := model.NewTextInputItem(id,
		model.WithValidator(validation.PhoneNumberValidator{}),
		model.WithFormatter(validation.PhoneNumberFormatter{}),
	)
	item.ValidationFailureMessage = "Invalid telephone number"
	_ = item.SetValue(value)
	return item
}

func TestContainer_ValidateEvaluatesEveryItem(t *testing.T) {
	first := phoneItem("first", "123")
	second := phoneItem("second", "+3511233456789")
	third := phoneItem("third", "42")
	free := model.NewTextInputItem("free")

	c := form.NewContainer("MB WAY")
	for _, item := range []model.Item{&model.HeaderItem{ID: "header"}, first, second, third, free} {
		if err := c.Append(item); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	if c.Validate() {
		t.Fatalf("expected container to be invalid")
	}

	for _, tc := range []struct {
		item *model.TextInputItem
		want bool
	}{
		{first, false},
		{second, true},
		{third, false},
		{free, true},
	} {
		valid, evaluated := tc.item.Validity()
		if !evaluated {
			t.Fatalf("item %q was not evaluated; validation must not short-circuit", tc.item.ID)
		}
		if valid != tc.want {
			t.Fatalf("item %q: want %v, got %v", tc.item.ID, tc.want, valid)
		}
		if v := tc.item.Validator(); v != nil && valid != v.IsValid(tc.item.Value()) {
			t.Fatalf("item %q cache disagrees with validator", tc.item.ID)
		}
	}
}

func TestContainer_ValidateAllValid(t *testing.T) {
	c := form.NewContainer("")
	_ = c.Append(phoneItem("phone", "+3511233456789"))
	_ = c.Append(model.NewButtonItem("pay", nil))
	if !c.Validate() {
		t.Fatalf("expected valid container")
	}

	empty := form.NewContainer("")
	if !empty.Validate() {
		t.Fatalf("empty container is vacuously valid")
	}
}

func TestContainer_Report(t *testing.T) {
	c := form.NewContainer("")
	_ = c.Append(phoneItem("a", "1"))
	_ = c.Append(phoneItem("b", "+3511233456789"))
	_ = c.Append(phoneItem("c", "2"))

	result := c.Report()
	want := validation.Result{
		Valid: false,
		Issues: []validation.Issue{
			{Item: "a", Message: "Invalid telephone number"},
			{Item: "c", Message: "Invalid telephone number"},
		},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestContainer_AppendRejectsDuplicateIdentifiers(t *testing.T) {
	c := form.NewContainer("")
	if err := c.Append(phoneItem("phone", "")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := c.Append(phoneItem("phone", "")); err == nil {
		t.Fatalf("expected duplicate identifier error")
	}
	if err := c.Append(nil); err != nil {
		t.Fatalf("nil append should be ignored: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected one item, got %d", c.Len())
	}
	if _, ok := c.Item("phone"); !ok {
		t.Fatalf("expected lookup by identifier")
	}
}

func TestContainer_SetEnabledLocksItems(t *testing.T) {
	phone := phoneItem("phone", "")
	button := model.NewButtonItem("pay", func() {})

	c := form.NewContainer("")
	_ = c.Append(phone)
	c.SetEnabled(false)
	_ = c.Append(button)

	if c.Enabled() || phone.Enabled() || button.Enabled() {
		t.Fatalf("expected every item locked, including late appends")
	}
	if err := phone.SetValue("1"); !errors.Is(err, model.ErrItemLocked) {
		t.Fatalf("expected locked edit, got %v", err)
	}

	c.SetEnabled(true)
	if !phone.Enabled() || !button.Enabled() {
		t.Fatalf("expected items unlocked")
	}
}

func TestContainer_DecorateWrapsErrors(t *testing.T) {
	c := form.NewContainer("")
	_ = c.Append(phoneItem("phone", ""))
	boom := errors.New("boom")
	err := c.Decorate(nil, model.DecoratorFunc(func(model.Item) error { return boom }))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped decorator error, got %v", err)
	}
}
