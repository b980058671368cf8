package payment

import "strings"

// TypeMBWay identifies the MB Way mobile wallet.
const TypeMBWay = "mbway"

// Method describes a payment method offered to the shopper.
type Method struct {
	Type string `json:"type" yaml:"type" validate:"required"`
	Name string `json:"name" yaml:"name" validate:"required"`
}

// Normalized trims surrounding whitespace from type and name.
func (m Method) Normalized() Method {
	return Method{
		Type: strings.TrimSpace(m.Type),
		Name: strings.TrimSpace(m.Name),
	}
}

// Amount is a minor-unit value in a currency.
type Amount struct {
	Value        int64  `json:"value"`
	CurrencyCode string `json:"currency"`
}

// Payment carries the checkout context a component submits under.
type Payment struct {
	Amount      Amount `json:"amount"`
	CountryCode string `json:"countryCode"`
}
