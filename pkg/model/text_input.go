package model

import "github.com/goliatone/go-payform/pkg/validation"

// TextInputItem is an editable single-line value. With a formatter attached
// the stored value is always the formatted representation.
type TextInputItem struct {
	ID           string
	Title        string
	Placeholder  string
	KeyboardType KeyboardType
	Keys         LocalizationKeys
	// ValidationFailureMessage is shown next to the item while it is invalid.
	ValidationFailureMessage string

	value     string
	validator validation.Validator
	formatter validation.Formatter
	valid     *bool
	disabled  bool
}

// TextInputOption configures a TextInputItem at construction.
type TextInputOption func(*TextInputItem)

// WithValidator attaches a validator.
func WithValidator(v validation.Validator) TextInputOption {
	return func(item *TextInputItem) {
		item.SetValidator(v)
	}
}

// WithFormatter attaches a formatter.
func WithFormatter(f validation.Formatter) TextInputOption {
	return func(item *TextInputItem) {
		item.SetFormatter(f)
	}
}

// WithKeys sets the localisation keys resolved by decorators.
func WithKeys(keys LocalizationKeys) TextInputOption {
	return func(item *TextInputItem) {
		item.Keys = keys
	}
}

// WithKeyboardType sets the keyboard hint.
func WithKeyboardType(kind KeyboardType) TextInputOption {
	return func(item *TextInputItem) {
		item.KeyboardType = kind
	}
}

// NewTextInputItem constructs an enabled, empty text input.
func NewTextInputItem(id string, options ...TextInputOption) *TextInputItem {
	item := &TextInputItem{
		ID:           id,
		KeyboardType: KeyboardDefault,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(item)
	}
	return item
}

// Identifier implements Item.
func (i *TextInputItem) Identifier() string { return i.ID }

// Kind implements Item.
func (i *TextInputItem) Kind() ItemKind { return ItemKindTextInput }

// Value returns the current (formatted) value.
func (i *TextInputItem) Value() string { return i.value }

// SetValue applies an edit. The formatter runs on every edit and the
// validity cache is invalidated.
func (i *TextInputItem) SetValue(raw string) error {
	if i.disabled {
		return ErrItemLocked
	}
	i.value = i.format(raw)
	i.valid = nil
	return nil
}

// Validator returns the attached validator, if any.
func (i *TextInputItem) Validator() validation.Validator { return i.validator }

// SetValidator replaces the validator and drops the cached validity.
func (i *TextInputItem) SetValidator(v validation.Validator) {
	i.validator = v
	i.valid = nil
}

// Formatter returns the attached formatter, if any.
func (i *TextInputItem) Formatter() validation.Formatter { return i.formatter }

// SetFormatter replaces the formatter and re-formats the current value so
// the stored value stays canonical.
func (i *TextInputItem) SetFormatter(f validation.Formatter) {
	i.formatter = f
	i.value = i.format(i.value)
	i.valid = nil
}

// Validate implements Validatable. Items without a validator are valid.
func (i *TextInputItem) Validate() bool {
	ok := true
	if i.validator != nil {
		ok = i.validator.IsValid(i.value)
	}
	i.valid = &ok
	return ok
}

// Validity implements Validatable.
func (i *TextInputItem) Validity() (bool, bool) {
	if i.valid == nil {
		return false, false
	}
	return *i.valid, true
}

// Invalid reports whether the last validation failed and no edit happened
// since. Renderers use it to decide whether to surface the failure message.
func (i *TextInputItem) Invalid() bool {
	valid, evaluated := i.Validity()
	return evaluated && !valid
}

// FailureMessage implements Validatable.
func (i *TextInputItem) FailureMessage() string { return i.ValidationFailureMessage }

// SetEnabled implements Lockable.
func (i *TextInputItem) SetEnabled(enabled bool) { i.disabled = !enabled }

// Enabled implements Lockable.
func (i *TextInputItem) Enabled() bool { return !i.disabled }

func (i *TextInputItem) format(raw string) string {
	if i.formatter == nil {
		return raw
	}
	return i.formatter.Format(raw)
}
