// Package config loads the payform CLI settings from defaults, an optional
// config file and PAYFORM_ environment variables.
package config

import (
	"github.com/goliatone/go-payform/pkg/component"
	"github.com/goliatone/go-payform/pkg/localization"
	"github.com/goliatone/go-payform/pkg/payment"
)

// Config is the CLI configuration.
type Config struct {
	Environment  string             `mapstructure:"environment" validate:"required,oneof=test live"`
	Debug        bool               `mapstructure:"debug"`
	Hosting      string             `mapstructure:"hosting" validate:"required,oneof=standalone embedded"`
	ShowHeader   bool               `mapstructure:"show_header"`
	MethodsFile  string             `mapstructure:"methods_file"`
	ReceiptFile  string             `mapstructure:"receipt_file"`
	Localization LocalizationConfig `mapstructure:"localization"`
	Phone        PhoneConfig        `mapstructure:"phone"`
	Payment      PaymentConfig      `mapstructure:"payment"`
	Metrics      MetricsConfig      `mapstructure:"metrics"`
}

// LocalizationConfig selects host translation tables.
type LocalizationConfig struct {
	TablesDir    string `mapstructure:"tables_dir"`
	TableName    string `mapstructure:"table_name"`
	KeySeparator string `mapstructure:"key_separator" validate:"omitempty,max=4"`
}

// PhoneConfig bounds the accepted telephone number length. Zero keeps the
// library defaults.
type PhoneConfig struct {
	MinDigits int `mapstructure:"min_digits" validate:"gte=0,lte=32"`
	MaxDigits int `mapstructure:"max_digits" validate:"gte=0,lte=32"`
}

// PaymentConfig is the checkout context attached to submissions.
type PaymentConfig struct {
	Value       int64  `mapstructure:"value" validate:"gte=0"`
	Currency    string `mapstructure:"currency" validate:"omitempty,len=3,uppercase"`
	CountryCode string `mapstructure:"country_code" validate:"omitempty,len=2,uppercase"`
}

// MetricsConfig names the Prometheus collectors.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace" validate:"required_if=Enabled true"`
	Subsystem string `mapstructure:"subsystem"`
}

// HostingMode maps the configured hosting onto the component type.
func (c *Config) HostingMode() component.HostingMode {
	if c.Hosting == "embedded" {
		return component.HostingEmbedded
	}
	return component.HostingStandalone
}

// LocalizationParams returns lookup parameters, or nil when no host table is
// configured.
func (c *Config) LocalizationParams() *localization.Params {
	if c.Localization.TableName == "" && c.Localization.KeySeparator == "" {
		return nil
	}
	return &localization.Params{
		TableName:    c.Localization.TableName,
		KeySeparator: c.Localization.KeySeparator,
	}
}

// PaymentContext returns the checkout context, or nil when none is set.
func (c *Config) PaymentContext() *payment.Payment {
	p := c.Payment
	if p.Value == 0 && p.Currency == "" && p.CountryCode == "" {
		return nil
	}
	return &payment.Payment{
		Amount:      payment.Amount{Value: p.Value, CurrencyCode: p.Currency},
		CountryCode: p.CountryCode,
	}
}
