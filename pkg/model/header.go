package model

// HeaderItem displays the form's large title.
type HeaderItem struct {
	ID    string
	Title string
	Keys  LocalizationKeys
}

// Identifier implements Item.
func (h *HeaderItem) Identifier() string { return h.ID }

// Kind implements Item.
func (h *HeaderItem) Kind() ItemKind { return ItemKindHeader }
