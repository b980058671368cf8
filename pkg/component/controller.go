package component

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/goliatone/go-payform/pkg/analytics"
	"github.com/goliatone/go-payform/pkg/form"
	"github.com/goliatone/go-payform/pkg/model"
	"github.com/goliatone/go-payform/pkg/payment"
)

const tracerName = "github.com/goliatone/go-payform/pkg/component"

// Controller runs the submission transaction for one declared form.
type Controller struct {
	method      payment.Method
	declare     form.BuildFunc
	payload     PayloadBuilder
	builder     *form.Builder
	decorators  []model.Decorator
	payment     *payment.Payment
	identity    PaymentComponent
	buttonID    string
	hosting     HostingMode
	environment string

	logger *zap.Logger
	tracer trace.Tracer
	sink   analytics.Sink

	mu        sync.Mutex
	state     State
	delegate  Delegate
	container *form.Container
	button    *model.ButtonItem
	span      trace.Span
}

// New constructs a controller for method. The declaration runs lazily, the
// first time the form is accessed.
func New(method payment.Method, declare form.BuildFunc, payload PayloadBuilder, opts ...Option) (*Controller, error) {
	if payload == nil {
		return nil, ErrNoPayloadBuilder
	}
	c := &Controller{
		method:  method.Normalized(),
		declare: declare,
		payload: payload,
		logger:  zap.NewNop(),
		tracer:  otel.Tracer(tracerName),
		sink:    analytics.Nop{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.identity == nil {
		c.identity = c
	}
	c.builder = form.NewBuilder(c.build, c.decorators...)
	return c, nil
}

func (c *Controller) build() (*form.Container, error) {
	c.sink.Send(analytics.NewEvent(c.method.Type, c.hosting.Flavor(), c.environment))
	c.logger.Debug("form presented",
		zap.String("component", c.method.Type),
		zap.String("flavor", string(c.hosting.Flavor())),
	)

	container := form.NewContainer(c.method.Name)
	if c.declare != nil {
		declared, err := c.declare()
		if err != nil {
			return nil, fmt.Errorf("component: declare %s form: %w", c.method.Type, err)
		}
		if declared != nil {
			container = declared
		}
	}
	if container.Len() == 0 {
		return nil, fmt.Errorf("component: %s: %w", c.method.Type, ErrNoItems)
	}

	c.button = c.bindButton(container)
	c.container = container
	return container, nil
}

func (c *Controller) bindButton(container *form.Container) *model.ButtonItem {
	if c.buttonID != "" {
		item, ok := container.Item(c.buttonID)
		if !ok {
			return nil
		}
		button, ok := item.(*model.ButtonItem)
		if !ok {
			return nil
		}
		button.SetSelectionHandler(func() { c.Submit() })
		return button
	}
	for _, item := range container.Items() {
		if button, ok := item.(*model.ButtonItem); ok {
			button.SetSelectionHandler(func() { c.Submit() })
			return button
		}
	}
	return nil
}

// Method returns the payment method the controller submits for.
func (c *Controller) Method() payment.Method { return c.method }

// HostingMode reports how the component is presented.
func (c *Controller) HostingMode() HostingMode { return c.hosting }

// Payment returns the checkout context attached to submissions, if any.
func (c *Controller) Payment() *payment.Payment { return c.payment }

// Form returns the memoized form container.
func (c *Controller) Form() (*form.Container, error) {
	return c.builder.Container()
}

// SubmitButton returns the button bound to Submit, or nil when the form has
// none. It builds the form if needed.
func (c *Controller) SubmitButton() *model.ButtonItem {
	if _, err := c.Form(); err != nil {
		return nil
	}
	return c.button
}

// SetDelegate registers the submission observer. Pass nil to clear it.
func (c *Controller) SetDelegate(delegate Delegate) {
	c.mu.Lock()
	c.delegate = delegate
	c.mu.Unlock()
}

// Delegate returns the registered observer.
func (c *Controller) Delegate() Delegate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delegate
}

// State returns the current submission state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsSubmitting reports whether a submission is in flight.
func (c *Controller) IsSubmitting() bool { return c.State() == StateSubmitting }

// Submit is SubmitContext with a background context.
func (c *Controller) Submit() bool {
	return c.SubmitContext(context.Background())
}

// SubmitContext validates every item and, when all pass, locks the form and
// hands the payload to the delegate. It reports whether a submission
// started. Calls while a submission is in flight are ignored. ctx parents the
// submission span.
func (c *Controller) SubmitContext(ctx context.Context) bool {
	container, err := c.Form()
	if err != nil {
		c.logger.Error("submit without form", zap.String("component", c.method.Type), zap.Error(err))
		return false
	}

	if c.IsSubmitting() {
		c.logger.Debug("submit ignored while submitting", zap.String("component", c.method.Type))
		return false
	}
	if !container.Validate() {
		c.logger.Debug("submit rejected by validation", zap.String("component", c.method.Type))
		return false
	}

	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		c.logger.Debug("submit ignored while submitting", zap.String("component", c.method.Type))
		return false
	}
	c.state = StateSubmitting
	container.SetEnabled(false)
	if c.button != nil {
		c.button.ShowsActivityIndicator = true
	}
	_, c.span = c.tracer.Start(ctx, "payform.submit", trace.WithAttributes(
		attribute.String("payform.component", c.method.Type),
		attribute.String("payform.hosting", c.hosting.String()),
	))
	delegate := c.delegate
	c.mu.Unlock()

	// The state flag already rejects a second submit, so the payload is
	// built unlocked and may call back into the controller.
	data := payment.ComponentData{
		PaymentMethodDetails: c.payload(container),
		Payment:              c.payment,
	}

	c.logger.Debug("state changed",
		zap.String("component", c.method.Type),
		zap.Stringer("from", StateIdle),
		zap.Stringer("to", StateSubmitting),
		zap.Bool("delegate", delegate != nil),
	)
	if delegate != nil {
		delegate.DidSubmit(data, c.identity)
	}
	return true
}

// StopLoading ends the in-flight submission: the form is unlocked, the
// activity indicator cleared, and completion (if any) runs once. Calling it
// while idle only runs completion.
func (c *Controller) StopLoading(success bool, completion func()) {
	c.mu.Lock()
	previous := c.state
	if previous == StateSubmitting {
		if c.container != nil {
			c.container.SetEnabled(true)
		}
		if c.button != nil {
			c.button.ShowsActivityIndicator = false
		}
		if c.span != nil {
			c.span.SetAttributes(attribute.Bool("payform.success", success))
			if success {
				c.span.SetStatus(codes.Ok, "")
			} else {
				c.span.SetStatus(codes.Error, "submission failed")
			}
			c.span.End()
			c.span = nil
		}
		c.state = StateIdle
	}
	c.mu.Unlock()

	if previous == StateSubmitting {
		c.logger.Debug("state changed",
			zap.String("component", c.method.Type),
			zap.Stringer("from", StateSubmitting),
			zap.Stringer("to", StateIdle),
			zap.Bool("success", success),
		)
	}
	if completion != nil {
		completion()
	}
}
