package scraper

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanText folds compatibility characters (nbsp, full width forms)
// and collapses every whitespace run into a single space.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(norm.NFKC.String(s)), " ")
}
