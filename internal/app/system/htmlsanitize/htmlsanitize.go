// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips unsafe markup from admin-supplied rich
// text (event content, about page) before it is stored.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize returns the input with scripts, event handlers, and other
// unsafe constructs removed. Plain text passes through unchanged.
func Sanitize(html string) string {
	return policy.Sanitize(html)
}
