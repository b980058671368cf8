package localization

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips markup from host-supplied strings so item titles stay
// plain text whatever the translation tables contain.
func sanitizeText(raw string) string {
	if !strings.ContainsAny(raw, "<>&") {
		return raw
	}
	return entityRestorer.Replace(textSanitizer().Sanitize(raw))
}

// entityRestorer reverts only the escapes the policy adds to bare text.
// Entities that were already escaped in the input stay escaped.
var entityRestorer = strings.NewReplacer(
	"&amp;", "&",
	"&#39;", "'",
	"&#34;", `"`,
	"&quot;", `"`,
)

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
