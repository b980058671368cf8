package components

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-payform/pkg/component"
	"github.com/goliatone/go-payform/pkg/components/mbway"
	"github.com/goliatone/go-payform/pkg/form"
	"github.com/goliatone/go-payform/pkg/payment"
)

// Component is the surface hosts drive regardless of payment method.
type Component interface {
	component.PaymentComponent
	SetDelegate(delegate component.Delegate)
	Form() (*form.Container, error)
	Submit() bool
	State() component.State
	RequiresModalPresentation() bool
}

// Factory builds the component for a method. Controller options are
// forwarded to the component's submission controller.
type Factory func(method payment.Method, opts ...component.Option) (Component, error)

// Registry stores factories by payment method type.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Default returns a registry with every built-in component registered.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(payment.TypeMBWay, MBWay)
	return r
}

// MBWay is the Factory for the MB Way component.
func MBWay(method payment.Method, opts ...component.Option) (Component, error) {
	c, err := mbway.New(method, mbway.WithControllerOptions(opts...))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Register adds a factory for a method type. Duplicate types return an error.
func (r *Registry) Register(methodType string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("components: factory is required")
	}
	methodType = strings.TrimSpace(methodType)
	if methodType == "" {
		return fmt.Errorf("components: method type is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[methodType]; exists {
		return fmt.Errorf("components: factory %q already registered", methodType)
	}
	r.factories[methodType] = factory
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(methodType string, factory Factory) {
	if err := r.Register(methodType, factory); err != nil {
		panic(err)
	}
}

// New builds the component registered for method.Type.
func (r *Registry) New(method payment.Method, opts ...component.Option) (Component, error) {
	method = method.Normalized()
	if err := payment.ValidateMethod(method); err != nil {
		return nil, err
	}

	r.mu.RLock()
	factory, ok := r.factories[method.Type]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("components: %q: %w", method.Type, ErrUnknownMethod)
	}
	return factory(method, opts...)
}

// Supports partitions methods into those with a registered factory and the
// rest, preserving input order.
func (r *Registry) Supports(methods []payment.Method) (supported, unsupported []payment.Method) {
	for _, method := range methods {
		if r.Has(method.Normalized().Type) {
			supported = append(supported, method)
		} else {
			unsupported = append(unsupported, method)
		}
	}
	return supported, unsupported
}

// List returns a sorted list of method types.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.factories))
	for methodType := range r.factories {
		types = append(types, methodType)
	}
	sort.Strings(types)
	return types
}

// Has reports whether a factory is registered for the method type.
func (r *Registry) Has(methodType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[methodType]
	return ok
}
