package validation

import "strings"

// Issue describes a single item that failed validation.
type Issue struct {
	Item    string `json:"item"`
	Message string `json:"message,omitempty"`
}

// Result captures the outcome of a whole-form validation pass.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Add records a failing item. Blank identifiers are kept so callers still see
// that something failed; messages are trimmed.
func (r *Result) Add(item, message string) {
	if r == nil {
		return
	}
	r.Valid = false
	r.Issues = append(r.Issues, Issue{
		Item:    strings.TrimSpace(item),
		Message: strings.TrimSpace(message),
	})
}

// Messages returns the non-empty failure messages in item order, dropping
// duplicates.
func (r Result) Messages() []string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.Issues))
	seen := make(map[string]struct{}, len(r.Issues))
	for _, issue := range r.Issues {
		if issue.Message == "" {
			continue
		}
		if _, exists := seen[issue.Message]; exists {
			continue
		}
		seen[issue.Message] = struct{}{}
		out = append(out, issue.Message)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// For returns the issue recorded for the supplied item identifier.
func (r Result) For(item string) (Issue, bool) {
	for _, issue := range r.Issues {
		if issue.Item == item {
			return issue, true
		}
	}
	return Issue{}, false
}
