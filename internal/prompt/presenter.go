// Package prompt presents payment forms in a terminal: every text item is
// asked for in display order, the submit button becomes a confirmation, and
// invalid items are asked for again until the form submits.
package prompt

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-payform/pkg/form"
	"github.com/goliatone/go-payform/pkg/model"
)

const defaultMaxAttempts = 3

// Submitter is the part of a payment component the presenter drives.
type Submitter interface {
	Form() (*form.Container, error)
	Submit() bool
}

// Theme captures optional message prefixes.
type Theme struct {
	HeaderPrefix string
	ErrorPrefix  string
}

// Presenter walks a form with a PromptDriver.
type Presenter struct {
	driver      PromptDriver
	theme       Theme
	maxAttempts int
	logger      *zap.Logger
}

// Option configures the presenter.
type Option func(*Presenter)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(p *Presenter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(p *Presenter) {
		p.theme = theme
	}
}

// WithMaxAttempts bounds the number of fill-and-submit rounds.
func WithMaxAttempts(n int) Option {
	return func(p *Presenter) {
		if n > 0 {
			p.maxAttempts = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Presenter) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New constructs a presenter backed by the survey driver unless overridden.
func New(opts ...Option) *Presenter {
	p := &Presenter{
		maxAttempts: defaultMaxAttempts,
		theme:       Theme{HeaderPrefix: "== ", ErrorPrefix: "✗ "},
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.driver == nil {
		p.driver = NewSurveyDriver(nil)
	}
	return p
}

// Run fills the form and submits it. It returns nil once a submission has
// started.
func (p *Presenter) Run(ctx context.Context, s Submitter) error {
	container, err := s.Form()
	if err != nil {
		return fmt.Errorf("prompt: form: %w", err)
	}

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		if err := p.fill(ctx, container, attempt == 1); err != nil {
			return err
		}

		ok, err := p.driver.Confirm(ctx, ConfirmConfig{
			Message: submitLabel(container),
			Default: true,
		})
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
		if s.Submit() {
			p.logger.Debug("form submitted", zap.Int("attempt", attempt))
			return nil
		}

		for _, msg := range container.Report().Messages() {
			if err := p.driver.Info(ctx, p.theme.ErrorPrefix+msg); err != nil {
				return err
			}
		}
		p.logger.Debug("form rejected", zap.Int("attempt", attempt))
	}
	return ErrTooManyAttempts
}

// fill asks for every text item on the first round and only for invalid
// ones afterwards.
func (p *Presenter) fill(ctx context.Context, container *form.Container, first bool) error {
	for _, item := range container.Items() {
		switch typed := item.(type) {
		case *model.HeaderItem:
			if !first {
				continue
			}
			if err := p.driver.Info(ctx, p.theme.HeaderPrefix+typed.Title); err != nil {
				return err
			}
		case *model.TextInputItem:
			if !first && !typed.Invalid() {
				continue
			}
			value, err := p.driver.Input(ctx, InputConfig{
				Message: typed.Title,
				Help:    typed.Placeholder,
				Default: typed.Value(),
			})
			if err != nil {
				return err
			}
			if err := typed.SetValue(value); err != nil {
				return fmt.Errorf("prompt: %s: %w", typed.Identifier(), err)
			}
		}
	}
	return nil
}

func submitLabel(container *form.Container) string {
	for _, item := range container.Items() {
		if button, ok := item.(*model.ButtonItem); ok && button.Title != "" {
			return button.Title
		}
	}
	return "Submit"
}
