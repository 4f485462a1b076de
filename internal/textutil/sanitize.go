package textutil

import "strings"

// SanitizeFileName makes a name safe for use as a subtitle or report file
// name. Path separators, colons, and asterisks become dashes; the remaining
// reserved characters are dropped. Whitespace at the ends is trimmed.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case '/', '\\', ':', '*':
			b.WriteByte('-')
		case '?', '"', '<', '>', '|':
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// SanitizeToken lowercases a short value, such as a language code, into a
// filesystem-safe token. Anything outside letters, digits, hyphens, and
// underscores becomes an underscore. Returns "unknown" when nothing usable
// remains.
func SanitizeToken(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	token := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, value)
	token = strings.Trim(token, "_-")
	if token == "" {
		return "unknown"
	}
	return token
}
