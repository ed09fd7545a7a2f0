package html

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

var classPattern = regexp.MustCompile(`^[a-z0-9 -]+$`)

// sanitizeIconMarkup strips everything from icon markup except a span with a
// class list and the font-size, color and user-select declarations. Colour
// values are checked by bluemonday's CSS handlers, so injected declarations
// and malformed colours are dropped.
func sanitizeIconMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("span")
		policy.AllowAttrs("class").Matching(classPattern).OnElements("span")
		policy.AllowStyles("font-size", "color").OnElements("span")
		policy.AllowStyles("user-select").MatchingEnum("none").OnElements("span")
		iconPolicy = policy
	})
	return iconPolicy
}
