package payment

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidMethod is returned when a payment method entry is incomplete.
var ErrInvalidMethod = errors.New("payment: invalid payment method")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

type methodsDocument struct {
	PaymentMethods []Method `json:"paymentMethods" yaml:"paymentMethods"`
}

// DecodeMethods parses a payment methods document, JSON or YAML, of the form
// {"paymentMethods": [{"type": "mbway", "name": "MB WAY"}]}. Every entry must
// carry a type and a name.
func DecodeMethods(data []byte) ([]Method, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("payment: methods document is empty")
	}

	var doc methodsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		if yamlErr := yaml.Unmarshal(data, &doc); yamlErr != nil {
			return nil, fmt.Errorf("payment: parse methods: invalid JSON (%v) or YAML: %w", err, yamlErr)
		}
	}

	out := make([]Method, 0, len(doc.PaymentMethods))
	for idx, raw := range doc.PaymentMethods {
		method := raw.Normalized()
		if err := ValidateMethod(method); err != nil {
			return nil, fmt.Errorf("payment: method at index %d: %w", idx, err)
		}
		out = append(out, method)
	}
	return out, nil
}

// ValidateMethod checks the method's required fields.
func ValidateMethod(method Method) error {
	if err := methodValidator().Struct(method); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			names := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				names = append(names, strings.ToLower(fe.Field()))
			}
			return fmt.Errorf("%w: missing %s", ErrInvalidMethod, strings.Join(names, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidMethod, err)
	}
	return nil
}

func methodValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}
