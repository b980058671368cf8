package payment

// Details is the method-specific payload produced by a form.
type Details interface {
	MethodType() string
}

// MBWayDetails carries the shopper's phone number for MB Way.
type MBWayDetails struct {
	Type            string `json:"type"`
	TelephoneNumber string `json:"telephoneNumber"`
}

// NewMBWayDetails builds details for the supplied method. An empty method
// type falls back to TypeMBWay.
func NewMBWayDetails(method Method, telephoneNumber string) MBWayDetails {
	kind := method.Normalized().Type
	if kind == "" {
		kind = TypeMBWay
	}
	return MBWayDetails{
		Type:            kind,
		TelephoneNumber: telephoneNumber,
	}
}

// MethodType implements Details.
func (d MBWayDetails) MethodType() string { return d.Type }

// ComponentData is the atomic unit a component hands to its delegate.
type ComponentData struct {
	PaymentMethodDetails Details  `json:"paymentMethod"`
	Payment              *Payment `json:"payment,omitempty"`
}
