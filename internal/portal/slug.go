package portal

import (
	"regexp"
	"strings"
)

// FallbackSlug is returned when the input slugifies to nothing.
const FallbackSlug = "item"

var (
	slugSeparators = regexp.MustCompile(`[\s_]+`)
	slugForbidden  = regexp.MustCompile(`[^\p{L}\p{N}_-]`)
	slugCollapse   = regexp.MustCompile(`-+`)
)

// Slugify derives a filesystem- and URL-safe identifier from free text.
// Whitespace and underscores collapse to single hyphens, anything that is
// not a letter, digit, underscore or hyphen is stripped, and the result is
// lowercased. Empty results fall back to FallbackSlug so a slug is never
// the empty string. The function is idempotent.
func Slugify(value string) string {
	s := slugSeparators.ReplaceAllString(value, "-")
	s = slugForbidden.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-_")
	s = strings.ToLower(s)
	if s == "" {
		return FallbackSlug
	}
	return s
}
