// Package slugify derives URL-safe slugs from article titles.
// The derivation is deterministic: the same title always yields the same slug.
package slugify

import (
	"strings"
	"unicode"
)

// maxSlugLength caps slugs to keep URLs manageable.
const maxSlugLength = 80

// Make converts a title into a lowercase, hyphen-separated, URL-safe slug.
// Non-alphanumeric runs collapse into a single hyphen; leading and trailing
// hyphens are trimmed. An empty or fully non-alphanumeric title yields "".
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	prevHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if r > unicode.MaxASCII {
				// Non-ASCII letters are dropped rather than transliterated.
				continue
			}
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	return slug
}
