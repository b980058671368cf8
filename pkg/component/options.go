package component

import (
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/goliatone/go-payform/pkg/analytics"
	"github.com/goliatone/go-payform/pkg/model"
	"github.com/goliatone/go-payform/pkg/payment"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracer overrides the tracer used for submission spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Controller) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

// WithAnalytics sets the sink notified when the form is first built.
func WithAnalytics(sink analytics.Sink) Option {
	return func(c *Controller) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WithEnvironment labels analytics events.
func WithEnvironment(environment string) Option {
	return func(c *Controller) {
		c.environment = environment
	}
}

// WithHostingMode sets the hosting mode.
func WithHostingMode(mode HostingMode) Option {
	return func(c *Controller) {
		c.hosting = mode
	}
}

// WithComponent sets the identity passed to delegates. Components that wrap
// a Controller pass themselves so delegates see the outer type.
func WithComponent(pc PaymentComponent) Option {
	return func(c *Controller) {
		c.identity = pc
	}
}

// WithSubmitButton selects the button bound to Submit by identifier. By
// default the first button in the form is bound.
func WithSubmitButton(id string) Option {
	return func(c *Controller) {
		c.buttonID = id
	}
}

// WithDecorators adds decorators applied once when the form is built.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(c *Controller) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// WithPayment attaches checkout context to every submission.
func WithPayment(p *payment.Payment) Option {
	return func(c *Controller) {
		c.payment = p
	}
}
