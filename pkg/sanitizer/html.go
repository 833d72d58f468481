package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	emailPolicy  *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Notification emails only need headings, paragraphs, emphasis,
		// preformatted text and simple tables.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowStandardURLs()
		emailPolicy.AllowElements(
			"h1", "h2", "h3",
			"p", "br", "hr",
			"strong", "b", "em", "i",
			"pre", "code", "blockquote",
			"table", "thead", "tbody", "tr", "th", "td",
		)
		emailPolicy.AllowAttrs("href").OnElements("a")
		emailPolicy.RequireNoFollowOnLinks(true)
	})
}

// StripHTML removes all markup and returns plain text.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// EmailHTML restricts rendered email HTML to a small allow-list of
// formatting elements. Scripts, styles, event handlers and unknown
// elements are dropped; text stays entity-escaped.
func EmailHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}
