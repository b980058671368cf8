package validation_test

import (
	"testing"

	"github.com/goliatone/go-payform/pkg/validation"
)

func TestPhoneNumberFormatter_Format(t *testing.T) {
	cases := map[string]string{
		"+3511233456789":      "+3511233456789",
		"+351 123 345 678":    "+351123345678",
		"(351) 123-456":       "351123456",
		"00351 912 345 678":   "00351912345678",
		"12+34":               "1234",
		"++351":               "+351",
		"abc":                 "",
		"":                    "",
		" +44 (0) 20-7946.00": "+44020794600",
	}
	f := validation.PhoneNumberFormatter{}
	for input, want := range cases {
		if got := f.Format(input); got != want {
			t.Fatalf("format(%q): want %q, got %q", input, want, got)
		}
	}
}

func TestPhoneNumberFormatter_Idempotent(t *testing.T) {
	inputs := []string{
		"", "+", "++", "+-+1", "1+2+3", "+351 912-345-678", "١٢٣",
		"tel:+1 (555) 010-9999", "  ", "+3511233456789",
	}
	f := validation.PhoneNumberFormatter{}
	for _, input := range inputs {
		once := f.Format(input)
		if twice := f.Format(once); twice != once {
			t.Fatalf("format not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestPhoneNumberValidator_Range(t *testing.T) {
	cases := []struct {
		name  string
		v     validation.PhoneNumberValidator
		value string
		want  bool
	}{
		{name: "default accepts full number", value: "+3511233456789", want: true},
		{name: "default rejects short", value: "123", want: false},
		{name: "default lower bound", value: "12345678", want: true},
		{name: "default below lower bound", value: "1234567", want: false},
		{name: "default upper bound", value: "123456789012345", want: true},
		{name: "default above upper bound", value: "1234567890123456", want: false},
		{name: "non digits ignored", value: "+351 (123) 456-789", want: true},
		{name: "empty", value: "", want: false},
		{name: "custom range", v: validation.PhoneNumberValidator{MinDigits: 3, MaxDigits: 4}, value: "123", want: true},
		{name: "custom range too long", v: validation.PhoneNumberValidator{MinDigits: 3, MaxDigits: 4}, value: "12345", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.IsValid(tc.value); got != tc.want {
				t.Fatalf("IsValid(%q): want %v, got %v", tc.value, tc.want, got)
			}
		})
	}
}
