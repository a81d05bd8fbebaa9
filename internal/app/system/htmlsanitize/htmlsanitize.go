// Package htmlsanitize strips unsafe markup from HTML produced for display.
package htmlsanitize

import (
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// interpretationPolicy is bluemonday's UGC policy plus the classes and inline
// table styling the exported interpretations use.
func interpretationPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").OnElements("table", "thead", "tbody", "tr", "th", "td", "pre", "span", "div")
		p.AllowAttrs("style").OnElements("table", "th", "td")
		p.AllowElements("u", "s", "sub", "sup", "mark")
		policy = p
	})
	return policy
}

// Sanitize returns html with scripts, event handlers, unsafe URLs and
// non-content elements removed.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return interpretationPolicy().Sanitize(html)
}

// SanitizeToHTML sanitizes html and marks the result safe for templates.
func SanitizeToHTML(html string) template.HTML {
	return template.HTML(Sanitize(html))
}
