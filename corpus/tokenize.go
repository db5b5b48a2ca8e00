package corpus

import (
	"strings"
	"unicode"
)

// isTerminal reports sentence-ending punctuation.
func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Tokenize splits text into sentences of lowercase word tokens.
// Punctuation is stripped except apostrophes and hyphens inside a word
// ("don't", "well-known"). Empty sentences are dropped.
func Tokenize(text string) [][]string {
	var (
		out      [][]string
		sentence []string
	)
	flush := func() {
		if len(sentence) > 0 {
			out = append(out, sentence)
			sentence = nil
		}
	}

	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r)
	}) {
		// A field may carry several terminals ("end.Next").
		start := 0
		for i, r := range field {
			if isTerminal(r) {
				if tok := clean(field[start:i]); tok != "" {
					sentence = append(sentence, tok)
				}
				flush()
				start = i + 1
			}
		}
		if tok := clean(field[start:]); tok != "" {
			sentence = append(sentence, tok)
		}
	}
	flush()

	return out
}

// clean lowercases s and drops punctuation, keeping word-internal ' and -.
func clean(s string) string {
	s = strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case r == '\'' || r == '’':
			b.WriteByte('\'')
		case r == '-':
			b.WriteByte('-')
		}
	}
	return b.String()
}
