package service

import "strings"

// slugify lowercases a display name and collapses anything non-alphanumeric
// into single hyphens, mirroring how the existing catalog slugs were formed.
func slugify(name string) string {
	var b strings.Builder
	prevHyphen := true // trim leading hyphens
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
