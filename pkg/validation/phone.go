package validation

import "strings"

const (
	// DefaultPhoneMinDigits is the shortest accepted phone number, in digits.
	DefaultPhoneMinDigits = 8
	// DefaultPhoneMaxDigits is the longest accepted phone number (E.164).
	DefaultPhoneMaxDigits = 15
)

// PhoneNumberValidator accepts values carrying between MinDigits and
// MaxDigits digits once every non-digit is stripped. Zero bounds fall back to
// the defaults, so the zero value is ready to use.
type PhoneNumberValidator struct {
	MinDigits int
	MaxDigits int
}

// IsValid implements Validator.
func (v PhoneNumberValidator) IsValid(value string) bool {
	minDigits, maxDigits := v.bounds()
	n := countDigits(value)
	return n >= minDigits && n <= maxDigits
}

func (v PhoneNumberValidator) bounds() (int, int) {
	minDigits := v.MinDigits
	if minDigits <= 0 {
		minDigits = DefaultPhoneMinDigits
	}
	maxDigits := v.MaxDigits
	if maxDigits <= 0 {
		maxDigits = DefaultPhoneMaxDigits
	}
	if maxDigits < minDigits {
		maxDigits = minDigits
	}
	return minDigits, maxDigits
}

// PhoneNumberFormatter keeps digits plus a single leading '+' country-code
// marker. Anything else is dropped; the formatter never rejects input.
type PhoneNumberFormatter struct{}

// Format implements Formatter.
func (PhoneNumberFormatter) Format(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func countDigits(value string) int {
	n := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
