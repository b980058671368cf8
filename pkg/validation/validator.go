package validation

import (
	"strings"
	"unicode/utf8"
)

// Validator decides whether an item value is acceptable.
type Validator interface {
	IsValid(value string) bool
}

// ValidatorFunc adapts a function into a Validator.
type ValidatorFunc func(value string) bool

// IsValid calls the underlying function.
func (fn ValidatorFunc) IsValid(value string) bool {
	return fn(value)
}

// Formatter normalises raw input into its canonical representation.
// Implementations must satisfy Format(Format(x)) == Format(x).
type Formatter interface {
	Format(value string) string
}

// FormatterFunc adapts a function into a Formatter.
type FormatterFunc func(value string) string

// Format calls the underlying function.
func (fn FormatterFunc) Format(value string) string {
	return fn(value)
}

// Required accepts any value that is not blank.
func Required() Validator {
	return ValidatorFunc(func(value string) bool {
		return strings.TrimSpace(value) != ""
	})
}

// LengthValidator accepts values whose rune count falls in [Min, Max]. A zero
// Max disables the upper bound.
type LengthValidator struct {
	Min int
	Max int
}

// IsValid implements Validator.
func (v LengthValidator) IsValid(value string) bool {
	n := utf8.RuneCountInString(value)
	if n < v.Min {
		return false
	}
	if v.Max > 0 && n > v.Max {
		return false
	}
	return true
}

// All combines validators; the result is valid only when every member is.
// Nil members are skipped.
func All(validators ...Validator) Validator {
	return ValidatorFunc(func(value string) bool {
		for _, v := range validators {
			if v == nil {
				continue
			}
			if !v.IsValid(value) {
				return false
			}
		}
		return true
	})
}

// Chain applies formatters left to right.
func Chain(formatters ...Formatter) Formatter {
	return FormatterFunc(func(value string) string {
		for _, f := range formatters {
			if f == nil {
				continue
			}
			value = f.Format(value)
		}
		return value
	})
}
