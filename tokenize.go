package wpslug

import (
	"strings"
	"unicode"
)

// tokenize deletes every rune that is not a letter, digit, or whitespace and
// splits what remains on runs of whitespace. The terminal pipeline stage:
// tokens are non-empty and free of whitespace by construction, so joining
// them can never produce boundary or doubled separators.
func tokenize(s string) []string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
	return strings.Fields(s)
}
