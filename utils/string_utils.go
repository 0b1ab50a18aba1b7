package utils

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SanitizeFilename reduces an uploaded filename to a safe form: the base name
// with every character outside [a-zA-Z0-9._-] replaced by an underscore.
// Returns "unnamed" if nothing safe remains.
func SanitizeFilename(name string) string {
	// Strip any client-supplied directory components, both separators
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r > unicode.MaxASCII:
			b.WriteRune('_')
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	sanitized := strings.Trim(b.String(), "._")
	if sanitized == "" {
		return "unnamed"
	}
	return sanitized
}
