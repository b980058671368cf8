package localization

import (
	"strings"

	"github.com/goliatone/go-payform/pkg/model"
)

// Decorator resolves the LocalizationKeys of every item through p. Empty
// keys leave existing strings untouched.
func Decorator(p Provider, params *Params) model.Decorator {
	return model.DecoratorFunc(func(item model.Item) error {
		if p == nil {
			return nil
		}
		switch typed := item.(type) {
		case *model.TextInputItem:
			keys := typed.Keys
			typed.Title = localize(p, params, keys.Title, typed.Title, keys.TitleArgs)
			typed.Placeholder = localize(p, params, keys.Placeholder, typed.Placeholder, nil)
			typed.ValidationFailureMessage = localize(p, params, keys.ValidationFailure, typed.ValidationFailureMessage, nil)
		case *model.HeaderItem:
			typed.Title = localize(p, params, typed.Keys.Title, typed.Title, typed.Keys.TitleArgs)
		case *model.ButtonItem:
			typed.Title = localize(p, params, typed.Keys.Title, typed.Title, typed.Keys.TitleArgs)
		}
		return nil
	})
}

func localize(p Provider, params *Params, key, fallback string, args []any) string {
	if strings.TrimSpace(key) == "" {
		return fallback
	}
	return p.Localize(key, params, args...)
}
