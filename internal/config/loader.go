package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PAYFORM_PAYMENT_CURRENCY.
const EnvPrefix = "PAYFORM"

// Load reads configuration in priority order: defaults, the optional file at
// path, then environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct tags and cross-field constraints.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config: invalid: %w", err)
	}
	if cfg.Phone.MaxDigits > 0 && cfg.Phone.MaxDigits < cfg.Phone.MinDigits {
		return fmt.Errorf("config: invalid: phone.max_digits %d below phone.min_digits %d",
			cfg.Phone.MaxDigits, cfg.Phone.MinDigits)
	}
	return nil
}
