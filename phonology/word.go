// File: word.go
// Role: Word value type, identity key and derived phonological views.
// Determinism:
//   - Key() is a pure function of (Text, Tag, Syllables).
// Concurrency:
//   - Word is immutable after NewWord; copies may be shared freely across goroutines.

package phonology

import "strings"

const (
	// keySep separates the identity components inside Key().
	keySep = "\x1f"
	// syllableSep separates syllables inside the phoneme signature.
	syllableSep = "-"

	stressedMark   = '-'
	unstressedMark = '_'
)

// Word is a normalized token plus its resolved pronunciation.
//
// Identity is (Text, Tag, phoneme signature): two tokens with the same
// spelling but different pronunciations are different words. Fields are
// exported for reading; treat them as immutable and build words with NewWord
// or Dictionary.Word.
type Word struct {
	// Text is the lowercase token.
	Text string

	// Tag is an optional part-of-speech tag; empty when untagged.
	Tag string

	// Syllables holds the pronunciation, one phoneme list per syllable.
	// Empty when the token is absent from the dictionary.
	Syllables [][]string

	key string
}

// NewWord builds a Word, lowercasing text and deep-copying syllables so the
// caller cannot mutate the result afterwards.
func NewWord(text, tag string, syllables [][]string) Word {
	w := Word{
		Text: strings.ToLower(text),
		Tag:  tag,
	}
	if len(syllables) > 0 {
		w.Syllables = make([][]string, 0, len(syllables))
		for _, syl := range syllables {
			if len(syl) == 0 {
				continue
			}
			w.Syllables = append(w.Syllables, append([]string(nil), syl...))
		}
	}
	w.key = buildKey(w.Text, w.Tag, w.Syllables)

	return w
}

func buildKey(text, tag string, syllables [][]string) string {
	var b strings.Builder
	b.WriteString(text)
	b.WriteString(keySep)
	b.WriteString(tag)
	b.WriteString(keySep)
	for i, syl := range syllables {
		if i > 0 {
			b.WriteString(syllableSep)
		}
		b.WriteString(strings.Join(syl, " "))
	}

	return b.String()
}

// Key returns the identity key used to index the word in a graph.
func (w Word) Key() string {
	if w.key != "" {
		return w.key
	}
	return buildKey(w.Text, w.Tag, w.Syllables)
}

// Equal reports identity equality.
func (w Word) Equal(other Word) bool {
	return w.Key() == other.Key()
}

// IsZero reports whether w is the zero Word.
func (w Word) IsZero() bool {
	return w.Text == "" && w.Tag == "" && len(w.Syllables) == 0
}

// String returns the token text.
func (w Word) String() string {
	return w.Text
}

// Phonemes returns the flattened phoneme list.
func (w Word) Phonemes() []string {
	n := 0
	for _, syl := range w.Syllables {
		n += len(syl)
	}
	out := make([]string, 0, n)
	for _, syl := range w.Syllables {
		out = append(out, syl...)
	}

	return out
}

// HasPhonemes reports whether pronunciation data was resolved for w.
func (w Word) HasPhonemes() bool {
	for _, syl := range w.Syllables {
		if len(syl) > 0 {
			return true
		}
	}
	return false
}

// SyllableCount returns the number of syllables (0 when unknown).
func (w Word) SyllableCount() int {
	return len(w.Syllables)
}

// StressPattern renders one mark per syllable: '-' stressed, '_' unstressed.
// Words without pronunciation data yield "".
func (w Word) StressPattern() string {
	if len(w.Syllables) == 0 {
		return ""
	}
	out := make([]byte, 0, len(w.Syllables))
	for _, syl := range w.Syllables {
		if syllableStressed(syl) {
			out = append(out, stressedMark)
		} else {
			out = append(out, unstressedMark)
		}
	}

	return string(out)
}

// MatchesPattern reports whether w fits the given stress pattern exactly.
func (w Word) MatchesPattern(pattern string) bool {
	return w.HasPhonemes() && w.StressPattern() == pattern
}

func syllableStressed(syl []string) bool {
	for _, ph := range syl {
		if IsStressed(ph) {
			return true
		}
	}
	return false
}
