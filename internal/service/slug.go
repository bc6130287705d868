package service

import "strings"

// Slugify derives a URL-safe slug from a title: lowercase, runs of
// non-alphanumerics collapsed into single hyphens, trimmed. Slugs are derived
// once on create; updates never recompute them.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
