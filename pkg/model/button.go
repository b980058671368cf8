package model

// ButtonItem is the form's primary action.
type ButtonItem struct {
	ID    string
	Title string
	Keys  LocalizationKeys
	// ShowsActivityIndicator is set while a submission is in flight.
	ShowsActivityIndicator bool

	handler  func()
	disabled bool
}

// NewButtonItem constructs an enabled button.
func NewButtonItem(id string, handler func()) *ButtonItem {
	return &ButtonItem{ID: id, handler: handler}
}

// Identifier implements Item.
func (b *ButtonItem) Identifier() string { return b.ID }

// Kind implements Item.
func (b *ButtonItem) Kind() ItemKind { return ItemKindButton }

// SetSelectionHandler replaces the action invoked by Select.
func (b *ButtonItem) SetSelectionHandler(handler func()) { b.handler = handler }

// Select fires the selection handler. It reports false when the button is
// disabled or has no handler.
func (b *ButtonItem) Select() bool {
	if b.disabled || b.handler == nil {
		return false
	}
	b.handler()
	return true
}

// SetEnabled implements Lockable.
func (b *ButtonItem) SetEnabled(enabled bool) { b.disabled = !enabled }

// Enabled implements Lockable.
func (b *ButtonItem) Enabled() bool { return !b.disabled }
