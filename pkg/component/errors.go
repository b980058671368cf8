package component

import "errors"

var (
	// ErrNoPayloadBuilder is returned when a controller is constructed
	// without a payload builder.
	ErrNoPayloadBuilder = errors.New("component: payload builder is required")
	// ErrNoItems is returned when the declared form holds no items.
	ErrNoItems = errors.New("component: form declares no items")
)
