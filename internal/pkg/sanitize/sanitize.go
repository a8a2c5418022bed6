// Package sanitize strips markup from free text submitted through public forms.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Text removes every HTML element from s and trims surrounding whitespace.
// Entities escaped by the policy are decoded again so the stored text reads naturally.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// Fields applies Text to each pointer in place.
func Fields(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = Text(*f)
		}
	}
}
