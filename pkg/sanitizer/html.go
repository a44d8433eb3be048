package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicy *bluemonday.Policy
	initOnce   sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Strips every tag; stripped tags leave a space behind so that
		// "<p>a</p><p>b</p>" does not glue words together.
		textPolicy = bluemonday.StrictPolicy()
		textPolicy.AddSpaceWhenStrippingTag(true)
	})
}

// StripTags removes all HTML from s and unescapes entities, leaving plain text.
// Script and style contents are dropped along with their tags.
func StripTags(s string) string {
	initPolicies()
	return html.UnescapeString(textPolicy.Sanitize(s))
}
