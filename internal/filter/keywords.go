package filter

import (
	"strings"
)

// IsExcludedTitle reports whether the title starts with one of the keywords.
// Only the prefix counts, so "Software Engineer (Senior Mentor)" passes
// while "Leadership Academy" is caught by "lead".
func IsExcludedTitle(title string, keywords []string) bool {
	t := strings.ToLower(strings.TrimSpace(title))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.HasPrefix(t, kw) {
			return true
		}
	}
	return false
}
