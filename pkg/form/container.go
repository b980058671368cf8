package form

import (
	"fmt"

	"github.com/goliatone/go-payform/pkg/model"
	"github.com/goliatone/go-payform/pkg/validation"
)

// Container is an ordered collection of items. Order is both display order
// and validation order.
type Container struct {
	// Title is shown by hosts that present the form without a header item.
	Title string

	items    []model.Item
	index    map[string]int
	disabled bool
}

// NewContainer constructs an empty container.
func NewContainer(title string) *Container {
	return &Container{
		Title: title,
		index: make(map[string]int),
	}
}

// Append adds an item at the end of the form. Nil items are ignored and
// identifiers must be unique when set.
func (c *Container) Append(item model.Item) error {
	if item == nil {
		return nil
	}
	if id := item.Identifier(); id != "" {
		if _, exists := c.index[id]; exists {
			return fmt.Errorf("form: duplicate item identifier %q", id)
		}
		c.index[id] = len(c.items)
	}
	if lockable, ok := item.(model.Lockable); ok && c.disabled {
		lockable.SetEnabled(false)
	}
	c.items = append(c.items, item)
	return nil
}

// Items returns the items in display order.
func (c *Container) Items() []model.Item {
	return append([]model.Item(nil), c.items...)
}

// Item looks an item up by identifier.
func (c *Container) Item(id string) (model.Item, bool) {
	idx, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return c.items[idx], true
}

// Len reports the number of items.
func (c *Container) Len() int { return len(c.items) }

// Validate evaluates every validatable item and reports whether all of them
// passed. It never short-circuits; each item's validity cache is refreshed.
func (c *Container) Validate() bool {
	valid := true
	for _, item := range c.items {
		v, ok := item.(model.Validatable)
		if !ok {
			continue
		}
		if !v.Validate() {
			valid = false
		}
	}
	return valid
}

// Report runs Validate and returns the outcome with per-item failure
// messages.
func (c *Container) Report() validation.Result {
	result := validation.Result{Valid: true}
	for _, item := range c.items {
		v, ok := item.(model.Validatable)
		if !ok {
			continue
		}
		if !v.Validate() {
			result.Add(v.Identifier(), v.FailureMessage())
		}
	}
	return result
}

// SetEnabled toggles user interaction for every lockable item.
func (c *Container) SetEnabled(enabled bool) {
	c.disabled = !enabled
	for _, item := range c.items {
		if lockable, ok := item.(model.Lockable); ok {
			lockable.SetEnabled(enabled)
		}
	}
}

// Enabled reports whether user interaction is enabled.
func (c *Container) Enabled() bool { return !c.disabled }

// Decorate applies decorators to every item in order, stopping at the first
// error.
func (c *Container) Decorate(decorators ...model.Decorator) error {
	for _, dec := range decorators {
		if dec == nil {
			continue
		}
		for _, item := range c.items {
			if err := dec.Decorate(item); err != nil {
				return fmt.Errorf("form: decorate %q: %w", item.Identifier(), err)
			}
		}
	}
	return nil
}
