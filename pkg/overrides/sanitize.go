package overrides

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy

	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

// sanitizeLabel strips every tag; labels are plain text.
func sanitizeLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(labelPolicy.Sanitize(trimmed)))
}

// sanitizeDescription keeps user-generated-content markup such as emphasis,
// lists and nofollow links.
func sanitizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	descriptionPolicyOnce.Do(func() {
		descriptionPolicy = bluemonday.UGCPolicy()
	})
	return strings.TrimSpace(descriptionPolicy.Sanitize(trimmed))
}
