// Package sanitize strips markup from user-generated content. MindBase
// stores plain text only (journal titles and bodies, chat messages, profile
// bios), so the policy removes every HTML element rather than allowlisting
// formatting tags.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// policy is the singleton bluemonday policy for user-generated text.
// Initialized once via sync.Once for thread-safe lazy initialization.
var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, initializing it on first call.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		// StrictPolicy strips all HTML. Journal entries and chat messages
		// are rendered as text, never as markup.
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Text sanitizes user-provided free text before it is stored: all HTML
// elements are removed, entities introduced by the sanitizer are decoded
// back to plain characters, and surrounding whitespace is trimmed.
//
// This MUST be called on all user input (journal title/content, chat text,
// profile name/bio) before it reaches the record store.
func Text(input string) string {
	if input == "" {
		return ""
	}
	cleaned := getPolicy().Sanitize(input)
	// bluemonday entity-escapes characters like & and '. The stored value
	// is plain text, not HTML, so decode them back.
	return strings.TrimSpace(html.UnescapeString(cleaned))
}
