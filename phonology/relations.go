package phonology

import "strings"

// comparable reports whether a phonological comparison between a and b is
// meaningful: both need pronunciation data and the spellings must differ.
func comparable(a, b Word) bool {
	if a.Text == b.Text {
		return false
	}
	return a.HasPhonemes() && b.HasPhonemes()
}

// RhymesWith reports whether a and b share every phoneme from their last
// stressed vowel onward. Stress digits are ignored in the comparison.
func RhymesWith(a, b Word) bool {
	if !comparable(a, b) {
		return false
	}
	ta, tb := rhymeTail(a.Phonemes()), rhymeTail(b.Phonemes())
	if len(ta) != len(tb) {
		return false
	}
	for i := range ta {
		if Base(ta[i]) != Base(tb[i]) {
			return false
		}
	}

	return true
}

// RhymeKey returns the stress-free phonemes from the last stressed vowel on,
// space separated. Two comparable words rhyme exactly when their keys match.
// Words without phonemes yield "".
func RhymeKey(w Word) string {
	if !w.HasPhonemes() {
		return ""
	}
	tail := rhymeTail(w.Phonemes())
	out := make([]string, len(tail))
	for i, ph := range tail {
		out[i] = Base(ph)
	}
	return strings.Join(out, " ")
}

// AlliteratesWith reports whether a and b open on the same consonant.
// Vowel-initial words never alliterate.
func AlliteratesWith(a, b Word) bool {
	if !comparable(a, b) {
		return false
	}
	pa, pb := a.Phonemes(), b.Phonemes()
	if !IsConsonant(pa[0]) || !IsConsonant(pb[0]) {
		return false
	}

	return pa[0] == pb[0]
}

// AssonantWith reports whether the vowels of the last stressed syllables of
// a and b are the same.
func AssonantWith(a, b Word) bool {
	if !comparable(a, b) {
		return false
	}
	va, okA := stressedVowel(a.Phonemes())
	vb, okB := stressedVowel(b.Phonemes())
	if !okA || !okB {
		return false
	}

	return va == vb
}

// StressMatches reports whether a and b have the same stress pattern.
func StressMatches(a, b Word) bool {
	if !comparable(a, b) {
		return false
	}
	return a.StressPattern() == b.StressPattern()
}

// rhymeTail returns the phonemes from the last stressed phoneme to the end.
// Without any stressed phoneme the whole word is the tail.
func rhymeTail(phones []string) []string {
	last := 0
	for i, ph := range phones {
		if IsStressed(ph) {
			last = i
		}
	}
	return phones[last:]
}

// stressedVowel returns the base of the last stressed vowel, falling back to
// the last vowel of any stress.
func stressedVowel(phones []string) (string, bool) {
	fallback, found := "", false
	for i := len(phones) - 1; i >= 0; i-- {
		if !IsVowel(phones[i]) {
			continue
		}
		if IsStressed(phones[i]) {
			return Base(phones[i]), true
		}
		if !found {
			fallback, found = Base(phones[i]), true
		}
	}

	return fallback, found
}
