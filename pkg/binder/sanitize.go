package binder

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// FragmentPolicy returns the policy applied to every rendered fragment
// before it is injected. It admits the markup produced by the section
// templates and nothing else.
func FragmentPolicy() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"div", "span", "p", "h3", "h4", "a", "i", "ul", "li", "strong", "em", "br",
		)
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("title", "aria-label").Globally()
		policy.AllowAttrs("aria-hidden").OnElements("i", "span")
		policy.AllowAttrs("href", "target", "rel").OnElements("a")

		policy.RequireParseableURLs(true)
		policy.AllowRelativeURLs(true)
		policy.AllowURLSchemes("mailto", "http", "https")

		fragmentPolicy = policy
	})
	return fragmentPolicy
}

func sanitizeFragment(policy *bluemonday.Policy, markup string) string {
	trimmed := strings.TrimSpace(markup)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(policy.Sanitize(trimmed))
}
