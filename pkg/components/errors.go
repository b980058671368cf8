package components

import "errors"

// ErrUnknownMethod is returned when no factory is registered for a payment
// method type.
var ErrUnknownMethod = errors.New("components: unknown payment method")
