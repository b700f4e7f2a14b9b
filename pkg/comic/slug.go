package comic

import (
	"strings"
	"unicode"
)

// Slugify maps a human title to a stable URL- and filesystem-safe
// identifier: lowercase, with every run of non-letter non-digit
// characters collapsed into a single hyphen and leading/trailing
// hyphens trimmed.
//
// The mapping is deterministic; slugs become persisted directory names
// and map keys, so the same title must always yield the same slug.
// A title with no usable characters slugifies to the empty string.
func Slugify(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(title))
	pendingDash := false
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
