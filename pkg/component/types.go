package component

import (
	"github.com/goliatone/go-payform/pkg/analytics"
	"github.com/goliatone/go-payform/pkg/form"
	"github.com/goliatone/go-payform/pkg/payment"
)

// State is the submission state of a controller.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// HostingMode describes how the component is presented.
type HostingMode int

const (
	// HostingStandalone is a component presented directly by the host.
	HostingStandalone HostingMode = iota
	// HostingEmbedded is a component embedded in a drop-in flow that draws
	// its own title.
	HostingEmbedded
)

func (m HostingMode) String() string {
	if m == HostingEmbedded {
		return "embedded"
	}
	return "standalone"
}

// Flavor maps the hosting mode onto the analytics flavor.
func (m HostingMode) Flavor() analytics.Flavor {
	if m == HostingEmbedded {
		return analytics.FlavorDropIn
	}
	return analytics.FlavorComponents
}

// HeaderVisible combines the header preference with the hosting mode.
// Embedded hosts always draw their own title.
func HeaderVisible(showHeader bool, mode HostingMode) bool {
	return showHeader && mode == HostingStandalone
}

// PaymentComponent is the identity handed to delegates together with the
// submission.
type PaymentComponent interface {
	Method() payment.Method
	StopLoading(success bool, completion func())
}

// Delegate observes successful submissions. It must eventually call
// StopLoading on the component exactly once per submission.
type Delegate interface {
	DidSubmit(data payment.ComponentData, component PaymentComponent)
}

// DelegateFunc adapts a function into a Delegate.
type DelegateFunc func(data payment.ComponentData, component PaymentComponent)

// DidSubmit calls the underlying function.
func (fn DelegateFunc) DidSubmit(data payment.ComponentData, component PaymentComponent) {
	fn(data, component)
}

// PayloadBuilder assembles method details from the validated form.
type PayloadBuilder func(container *form.Container) payment.Details
