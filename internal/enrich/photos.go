package enrich

import "strings"

// placeholderPrefix marks sentinel "no real photo" entries that the backend
// stores for listings without uploads. They are never shown to clients.
const placeholderPrefix = "placeholder_"

// SanitizePhotos filters a decoded photo list down to displayable entries:
// non-blank strings that do not carry the placeholder prefix. Order is
// preserved and entries are not trimmed. The result is never nil, and the
// function is idempotent: sanitizing an already-clean list returns an equal
// list.
func SanitizePhotos(photos []string) []string {
	out := make([]string, 0, len(photos))
	for _, p := range photos {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if strings.HasPrefix(p, placeholderPrefix) {
			continue
		}
		out = append(out, p)
	}
	return out
}
