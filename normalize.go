package wpslug

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// softPunct holds typographic noise that is erased outright rather than
// treated as a word boundary: the soft hyphen, inverted and angle/curly
// quotation marks, the bullet, copyright/registered/degree/ellipsis/trademark
// signs, and bare combining accents (for input arriving in decomposed form).
var softPunct = map[rune]bool{
	'­': true,
	'¡': true, '¿': true,
	'«': true, '»': true, '‹': true, '›': true,
	'‘': true, '’': true, '‚': true, '‛': true,
	'“': true, '”': true, '„': true, '‟': true,
	'•': true,
	'©': true, '®': true, '°': true, '…': true, '™': true,
	'´': true, 'ˊ': true, '́': true, '́': true,
	'̀': true, '̄': true, '̌': true,
}

// accentFold maps each accented or decorated Latin letter to its plain
// lowercase base. The table covers the letters of the Latin-1 Supplement and
// Latin Extended-A blocks; letters outside it (Cyrillic, Greek, CJK, and so
// on) pass through untouched, so the pipeline stays Unicode-transparent for
// scripts it does not special-case. The mapping is total and idempotent: no
// value in the table is itself a key.
var accentFold = map[rune]rune{
	// Latin-1 Supplement.
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'À': 'a', 'Á': 'a', 'Â': 'a', 'Ã': 'a', 'Ä': 'a', 'Å': 'a',
	'æ': 'a', 'Æ': 'a',
	'ç': 'c', 'Ç': 'c',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'È': 'e', 'É': 'e', 'Ê': 'e', 'Ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'Ì': 'i', 'Í': 'i', 'Î': 'i', 'Ï': 'i',
	'ð': 'd', 'Ð': 'd',
	'ñ': 'n', 'Ñ': 'n',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o',
	'Ò': 'o', 'Ó': 'o', 'Ô': 'o', 'Õ': 'o', 'Ö': 'o', 'Ø': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'Ù': 'u', 'Ú': 'u', 'Û': 'u', 'Ü': 'u',
	'ý': 'y', 'ÿ': 'y', 'Ý': 'y',
	'þ': 't', 'Þ': 't',
	'ß': 's',
	// Latin Extended-A.
	'Ā': 'a', 'ā': 'a', 'Ă': 'a', 'ă': 'a', 'Ą': 'a', 'ą': 'a',
	'Ć': 'c', 'ć': 'c', 'Ĉ': 'c', 'ĉ': 'c', 'Ċ': 'c', 'ċ': 'c', 'Č': 'c', 'č': 'c',
	'Ď': 'd', 'ď': 'd', 'Đ': 'd', 'đ': 'd',
	'Ē': 'e', 'ē': 'e', 'Ĕ': 'e', 'ĕ': 'e', 'Ė': 'e', 'ė': 'e',
	'Ę': 'e', 'ę': 'e', 'Ě': 'e', 'ě': 'e',
	'Ĝ': 'g', 'ĝ': 'g', 'Ğ': 'g', 'ğ': 'g', 'Ġ': 'g', 'ġ': 'g', 'Ģ': 'g', 'ģ': 'g',
	'Ĥ': 'h', 'ĥ': 'h', 'Ħ': 'h', 'ħ': 'h',
	'Ĩ': 'i', 'ĩ': 'i', 'Ī': 'i', 'ī': 'i', 'Ĭ': 'i', 'ĭ': 'i',
	'Į': 'i', 'į': 'i', 'İ': 'i', 'ı': 'i', 'Ĳ': 'i', 'ĳ': 'i',
	'Ĵ': 'j', 'ĵ': 'j',
	'Ķ': 'k', 'ķ': 'k', 'ĸ': 'k',
	'Ĺ': 'l', 'ĺ': 'l', 'Ļ': 'l', 'ļ': 'l', 'Ľ': 'l', 'ľ': 'l',
	'Ŀ': 'l', 'ŀ': 'l', 'Ł': 'l', 'ł': 'l',
	'Ń': 'n', 'ń': 'n', 'Ņ': 'n', 'ņ': 'n', 'Ň': 'n', 'ň': 'n',
	'ŉ': 'n', 'Ŋ': 'n', 'ŋ': 'n',
	'Ō': 'o', 'ō': 'o', 'Ŏ': 'o', 'ŏ': 'o', 'Ő': 'o', 'ő': 'o',
	'Œ': 'o', 'œ': 'o',
	'Ŕ': 'r', 'ŕ': 'r', 'Ŗ': 'r', 'ŗ': 'r', 'Ř': 'r', 'ř': 'r',
	'Ś': 's', 'ś': 's', 'Ŝ': 's', 'ŝ': 's', 'Ş': 's', 'ş': 's', 'Š': 's', 'š': 's',
	'Ţ': 't', 'ţ': 't', 'Ť': 't', 'ť': 't', 'Ŧ': 't', 'ŧ': 't',
	'Ũ': 'u', 'ũ': 'u', 'Ū': 'u', 'ū': 'u', 'Ŭ': 'u', 'ŭ': 'u',
	'Ů': 'u', 'ů': 'u', 'Ű': 'u', 'ű': 'u', 'Ų': 'u', 'ų': 'u',
	'Ŵ': 'w', 'ŵ': 'w',
	'Ŷ': 'y', 'ŷ': 'y', 'Ÿ': 'y',
	'Ź': 'z', 'ź': 'z', 'Ż': 'z', 'ż': 'z', 'Ž': 'z', 'ž': 'z',
	'ſ': 's',
}

func foldRune(r rune) rune {
	if base, ok := accentFold[r]; ok {
		return base
	}
	return r
}

// normalize erases soft punctuation, folds accented Latin letters through the
// fixed table, and lowercases the result with full Unicode case folding.
// The accent table runs before the fold, so "ß" follows the table ("s")
// rather than the case fold's "ss".
func normalize(s string) string {
	t := transform.Chain(
		runes.Remove(runes.Predicate(func(r rune) bool { return softPunct[r] })),
		runes.Map(foldRune),
		cases.Fold(),
	)
	s, _, _ = transform.String(t, s)
	return s
}
