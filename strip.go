package wpslug

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicy *bluemonday.Policy
	policyOnce  sync.Once
)

// entityHusk matches named or numeric character references that survived
// decoding, e.g. "&bogus;" or "&#99999999;".
var entityHusk = regexp.MustCompile(`&#?[a-zA-Z0-9]+;`)

func tagPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text. Script and
		// style elements lose their content entirely.
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}

// stripMarkup removes tag constructs and resolves character references so
// only plain text reaches the rest of the pipeline. Entities that stand for
// real characters come back as those characters (so an encoded accented
// letter survives into accent folding); undecodable references are erased.
// Percent-encoded octets are decoded best-effort. Never fails: unterminated
// tags are stripped to end of string, and a lone "<" or "%" stays literal
// text.
func stripMarkup(s string) string {
	s = tagPolicy().Sanitize(s)
	s = html.UnescapeString(s)
	s = entityHusk.ReplaceAllString(s, "")
	return unescapePercent(s)
}

// unescapePercent decodes "%XX" octet runs. Unlike net/url.PathUnescape it
// never returns an error: a "%" not followed by two hex digits is kept
// as-is. Octets that do not form valid UTF-8 fall out later, when the
// punctuation filter drops the replacement runes they decode to.
func unescapePercent(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
