package localize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sixtyseconds/showcase/pkg/pricing"
)

// wordPairs maps British spellings to American ones. Derived forms precede
// their roots.
var wordPairs = [][2]string{
	{"personalisation", "personalization"},
	{"personalised", "personalized"},
	{"personalise", "personalize"},
	{"optimisation", "optimization"},
	{"optimise", "optimize"},
	{"customisation", "customization"},
	{"customise", "customize"},
	{"organisation", "organization"},
	{"organise", "organize"},
	{"utilise", "utilize"},
	{"behavioural", "behavioral"},
	{"behaviour", "behavior"},
	{"realise", "realize"},
	{"colour", "color"},
	{"centre", "center"},
	{"favour", "favor"},
	{"honour", "honor"},
	{"labour", "labor"},
	{"neighbour", "neighbor"},
	{"analyse", "analyze"},
	{"defence", "defense"},
	{"licence", "license"},
	{"offence", "offense"},
	{"grey", "gray"},
	{"programme", "program"},
	{"specialise", "specialize"},
	{"recognise", "recognize"},
	{"emphasise", "emphasize"},
	{"summarise", "summarize"},
	{"categorise", "categorize"},
	{"prioritise", "prioritize"},
	{"minimise", "minimize"},
	{"maximise", "maximize"},
	{"standardise", "standardize"},
	{"modernise", "modernize"},
	{"characterise", "characterize"},
	{"criticise", "criticize"},
	{"apologise", "apologize"},
}

// americanizer replaces both the lowercase and title-case form of each pair
// in a single pass.
var americanizer = newReplacer()

func newReplacer() *strings.Replacer {
	pairs := make([]string, 0, len(wordPairs)*4)
	for _, p := range wordPairs {
		pairs = append(pairs, p[0], p[1], title(p[0]), title(p[1]))
	}
	return strings.NewReplacer(pairs...)
}

func title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Apply localizes text for the given currency. Only USD triggers the
// British→American rewrite; all other currencies return text unchanged.
func Apply(text string, c pricing.Currency) string {
	if c != pricing.USD {
		return text
	}
	return americanizer.Replace(text)
}

// ApplyAll localizes a slice of strings, returning a new slice.
func ApplyAll(texts []string, c pricing.Currency) []string {
	if c != pricing.USD {
		return texts
	}
	out := make([]string, len(texts))
	for i, s := range texts {
		out[i] = americanizer.Replace(s)
	}
	return out
}
