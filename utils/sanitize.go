package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Blender names are free-form unicode, Defold ids are not. Decompose
// accented runes first so "Héro" becomes "Hero" instead of "Hro".
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func SanitizeID(s string) string {
	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}

	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "_")

	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return "prototype"
	}
	return b.String()
}
