package mbway

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-payform/pkg/component"
	"github.com/goliatone/go-payform/pkg/form"
	"github.com/goliatone/go-payform/pkg/localization"
	"github.com/goliatone/go-payform/pkg/model"
	"github.com/goliatone/go-payform/pkg/payment"
	"github.com/goliatone/go-payform/pkg/validation"
)

// Scope prefixes every item identifier of the component.
const Scope = "payform.MBWayComponent"

// Localization keys used by the form.
const (
	KeyPhoneTitle       = "payform.phoneNumber.title"
	KeyPhonePlaceholder = "payform.phoneNumber.placeholder"
	KeyPhoneInvalid     = "payform.phoneNumber.invalid"
	KeyContinueTo       = "payform.continueTo"
)

var (
	PhoneNumberItemID = model.Identifier(Scope, "phoneNumberItem")
	PayButtonItemID   = model.Identifier(Scope, "payButtonItem")
)

// Component is the MB Way form. The embedded controller provides Submit,
// StopLoading, SetDelegate and the state accessors.
type Component struct {
	*component.Controller

	showHeader bool
	provider   localization.Provider
	params     *localization.Params
	validator  validation.PhoneNumberValidator
	logger     *zap.Logger
	controller []component.Option

	header *model.HeaderItem
	phone  *model.TextInputItem
	button *model.ButtonItem
}

// Option configures a Component.
type Option func(*Component)

// WithShowHeader toggles the large title header. Embedded hosts never show
// it regardless of this setting.
func WithShowHeader(show bool) Option {
	return func(c *Component) {
		c.showHeader = show
	}
}

// WithLocalization sets the provider and parameters used for item strings.
func WithLocalization(provider localization.Provider, params *localization.Params) Option {
	return func(c *Component) {
		if provider != nil {
			c.provider = provider
		}
		c.params = params
	}
}

// WithPhoneDigits overrides the accepted digit range.
func WithPhoneDigits(minDigits, maxDigits int) Option {
	return func(c *Component) {
		c.validator = validation.PhoneNumberValidator{MinDigits: minDigits, MaxDigits: maxDigits}
	}
}

// WithLogger sets the logger for the component and its controller.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Component) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithControllerOptions forwards options to the submission controller.
func WithControllerOptions(opts ...component.Option) Option {
	return func(c *Component) {
		c.controller = append(c.controller, opts...)
	}
}

// New constructs the component for method. The form itself is declared on
// first access.
func New(method payment.Method, opts ...Option) (*Component, error) {
	c := &Component{
		showHeader: true,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.provider == nil {
		bundle, err := localization.New(localization.WithLogger(c.logger))
		if err != nil {
			return nil, err
		}
		c.provider = bundle
	}

	controllerOpts := append([]component.Option{
		component.WithLogger(c.logger),
	}, c.controller...)
	controllerOpts = append(controllerOpts,
		component.WithComponent(c),
		component.WithSubmitButton(PayButtonItemID),
		component.WithDecorators(localization.Decorator(c.provider, c.params)),
	)

	controller, err := component.New(method, c.declare, c.details, controllerOpts...)
	if err != nil {
		return nil, err
	}
	c.Controller = controller
	return c, nil
}

// RequiresModalPresentation reports that the form is presented modally.
func (c *Component) RequiresModalPresentation() bool { return true }

// ShowsHeader reports whether the header item is part of the form.
func (c *Component) ShowsHeader() bool {
	return component.HeaderVisible(c.showHeader, c.HostingMode())
}

// LocalizationParameters returns the parameters used for item strings.
func (c *Component) LocalizationParameters() *localization.Params { return c.params }

// Header returns the header item, or nil when the header is hidden.
func (c *Component) Header() *model.HeaderItem {
	c.ensureForm()
	return c.header
}

// PhoneNumberItem returns the telephone number input.
func (c *Component) PhoneNumberItem() *model.TextInputItem {
	c.ensureForm()
	return c.phone
}

// Button returns the submit button.
func (c *Component) Button() *model.ButtonItem {
	c.ensureForm()
	return c.button
}

func (c *Component) ensureForm() {
	if _, err := c.Form(); err != nil {
		c.logger.Error("mbway form", zap.Error(err))
	}
}

func (c *Component) declare() (*form.Container, error) {
	method := c.Method()
	container := form.NewContainer(method.Name)

	if c.ShowsHeader() {
		c.header = &model.HeaderItem{
			ID:    model.Identifier(Scope, method.Name),
			Title: method.Name,
		}
		if err := container.Append(c.header); err != nil {
			return nil, err
		}
	}

	c.phone = model.NewTextInputItem(PhoneNumberItemID,
		model.WithValidator(c.validator),
		model.WithFormatter(validation.PhoneNumberFormatter{}),
		model.WithKeyboardType(model.KeyboardPhonePad),
		model.WithKeys(model.LocalizationKeys{
			Title:             KeyPhoneTitle,
			Placeholder:       KeyPhonePlaceholder,
			ValidationFailure: KeyPhoneInvalid,
		}),
	)
	if err := container.Append(c.phone); err != nil {
		return nil, err
	}

	c.button = model.NewButtonItem(PayButtonItemID, nil)
	c.button.Keys = model.LocalizationKeys{
		Title:     KeyContinueTo,
		TitleArgs: []any{method.Name},
	}
	if err := container.Append(c.button); err != nil {
		return nil, err
	}
	return container, nil
}

func (c *Component) details(container *form.Container) payment.Details {
	var number string
	if item, ok := container.Item(PhoneNumberItemID); ok {
		if input, ok := item.(*model.TextInputItem); ok {
			number = input.Value()
		}
	}
	return payment.NewMBWayDetails(c.Method(), number)
}
