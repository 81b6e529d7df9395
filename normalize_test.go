package wpslug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elfsternberg/wpslug"
)

func TestAccentFolding(t *testing.T) {
	t.Parallel()

	inputs := []struct {
		char     string
		expected string
	}{
		{"à", "a"}, {"á", "a"}, {"â", "a"}, {"ã", "a"}, {"ä", "a"}, {"å", "a"},
		{"À", "a"}, {"Á", "a"}, {"Â", "a"}, {"Ã", "a"}, {"Ä", "a"}, {"Å", "a"},
		{"è", "e"}, {"é", "e"}, {"ê", "e"}, {"ë", "e"},
		{"È", "e"}, {"É", "e"}, {"Ê", "e"}, {"Ë", "e"},
		{"ì", "i"}, {"í", "i"}, {"î", "i"}, {"ï", "i"},
		{"Ì", "i"}, {"Í", "i"}, {"Î", "i"}, {"Ï", "i"},
		{"ò", "o"}, {"ó", "o"}, {"ô", "o"}, {"õ", "o"}, {"ö", "o"}, {"ø", "o"},
		{"Ò", "o"}, {"Ó", "o"}, {"Ô", "o"}, {"Õ", "o"}, {"Ö", "o"}, {"Ø", "o"},
		{"ù", "u"}, {"ú", "u"}, {"û", "u"}, {"ü", "u"},
		{"Ù", "u"}, {"Ú", "u"}, {"Û", "u"}, {"Ü", "u"},
		{"ñ", "n"}, {"Ñ", "n"},
		{"ç", "c"}, {"Ç", "c"},
		{"ß", "s"},
		{"æ", "a"}, {"Æ", "a"},
		{"œ", "o"}, {"Œ", "o"},
		{"ð", "d"}, {"þ", "t"}, {"ý", "y"}, {"ÿ", "y"},
		{"ą", "a"}, {"ć", "c"}, {"ę", "e"}, {"ł", "l"}, {"ń", "n"},
		{"ś", "s"}, {"ź", "z"}, {"ż", "z"},
		{"č", "c"}, {"ď", "d"}, {"ě", "e"}, {"ř", "r"}, {"š", "s"},
		{"ť", "t"}, {"ů", "u"}, {"ž", "z"},
		{"ğ", "g"}, {"ş", "s"}, {"ı", "i"}, {"İ", "i"},
		{"ő", "o"}, {"ű", "u"},
	}

	for _, tt := range inputs {
		tt := tt
		t.Run(tt.char, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, wpslug.Slugify(tt.char))
		})
	}
}

func TestNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "full unicode case folding",
			input:    "ΚΑΛΗΜΕΡΑ ΚΟΣΜΕ",
			expected: "καλημερα-κοσμε",
		},
		{
			name:     "combining acute dropped from decomposed input",
			input:    "café",
			expected: "cafe",
		},
		{
			name:     "combining caron dropped",
			input:    "česky",
			expected: "cesky",
		},
		{
			name:     "soft hyphen erased inside word",
			input:    "co­operate",
			expected: "cooperate",
		},
		{
			name:     "inverted punctuation erased",
			input:    "¿Qué tal‽",
			expected: "que-tal",
		},
		{
			name:     "angle quotes erased",
			input:    "«guillemets»",
			expected: "guillemets",
		},
		{
			name:     "ellipsis and degree erased",
			input:    "wait… 90°",
			expected: "wait-90",
		},
		{
			name:     "accent fold applied twice is a no-op",
			input:    wpslug.Slugify("Café Münchner"),
			expected: "cafe-munchner",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, wpslug.Slugify(tt.input))
		})
	}
}
