package wpslug

import "strings"

// symbolWords rewrites punctuation that carries word meaning before the
// punctuation filter can discard it. Ampersands become the word "and";
// hyphens and en/em dashes become word boundaries. Treating dashes as
// boundaries also keeps Slugify idempotent: feeding a slug back in re-splits
// it into the same words.
var symbolWords = strings.NewReplacer(
	"&", " and ",
	"-", " ",
	"–", " ",
	"—", " ",
)

func substituteSymbols(s string) string {
	return symbolWords.Replace(s)
}

// stages is the sanitization pipeline in evaluation order. Every stage is a
// pure text transform; the output of one is the input of the next.
var stages = []func(string) string{
	stripMarkup,
	substituteSymbols,
	normalize,
}

// Sanitize runs the full sanitization pipeline on title and returns the clean
// word tokens in order of first appearance. Words may repeat; digit-only
// words are preserved. Input that contains no word characters at all yields
// an empty slice. This is exposed separately from Slugify because slugified
// words have uses beyond the joined slug: callers may want to cap slug
// length, drop stopwords, or count words before joining.
func Sanitize(title string) []string {
	for _, stage := range stages {
		title = stage(title)
	}
	return tokenize(title)
}

// Slugify sanitizes title and joins the resulting words with single hyphens.
// The result never starts or ends with a hyphen and never contains a double
// hyphen; degenerate input produces the empty string.
func Slugify(title string) string {
	return strings.Join(Sanitize(title), "-")
}
