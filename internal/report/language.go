package report

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayName resolves a BCP-47 language code to its English display name.
// Unparseable or empty codes come back as "Unknown".
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return "Unknown"
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "Unknown"
	}
	name := display.English.Tags().Name(tag)
	if name == "" {
		return "Unknown"
	}
	return name
}
