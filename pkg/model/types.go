package model

import (
	"errors"
	"strings"
)

// ItemKind is the simplified enum for the item types a form can hold.
type ItemKind string

const (
	ItemKindHeader    ItemKind = "header"
	ItemKindTextInput ItemKind = "textInput"
	ItemKindButton    ItemKind = "button"
)

// KeyboardType hints which on-screen keyboard suits a text input.
type KeyboardType string

const (
	KeyboardDefault  KeyboardType = "default"
	KeyboardPhonePad KeyboardType = "phonePad"
	KeyboardNumeric  KeyboardType = "numberPad"
	KeyboardEmail    KeyboardType = "emailAddress"
)

// ErrItemLocked is returned when an edit reaches an item while the owning
// form has user interaction disabled.
var ErrItemLocked = errors.New("model: item is locked")

// Item is a single declarative unit of a form.
type Item interface {
	Identifier() string
	Kind() ItemKind
}

// Validatable is implemented by items that take part in whole-form
// validation.
type Validatable interface {
	Item
	// Validate evaluates the item against its current value and refreshes
	// the validity cache.
	Validate() bool
	// Validity reports the cached outcome; evaluated is false until Validate
	// runs and again after every edit.
	Validity() (valid, evaluated bool)
	FailureMessage() string
}

// Lockable is implemented by items that can reject user interaction.
type Lockable interface {
	SetEnabled(enabled bool)
	Enabled() bool
}

// LocalizationKeys carries translation keys for an item's display strings.
// Decorators resolve them into the item's Title/Placeholder/failure message;
// an empty key leaves the existing string untouched.
type LocalizationKeys struct {
	Title             string
	TitleArgs         []any
	Placeholder       string
	ValidationFailure string
}

// Empty reports whether no key is configured.
func (k LocalizationKeys) Empty() bool {
	return strings.TrimSpace(k.Title) == "" &&
		strings.TrimSpace(k.Placeholder) == "" &&
		strings.TrimSpace(k.ValidationFailure) == ""
}

// Identifier joins a scope and a postfix into the dotted identifier used for
// item lookup, e.g. Identifier("payform.MBWayComponent", "phoneNumberItem").
func Identifier(scope, postfix string) string {
	scope = strings.Trim(strings.TrimSpace(scope), ".")
	postfix = strings.Trim(strings.TrimSpace(postfix), ".")
	switch {
	case scope == "":
		return postfix
	case postfix == "":
		return scope
	default:
		return scope + "." + postfix
	}
}
