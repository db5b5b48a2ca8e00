package constraint

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/versegen/phonology"
)

// Match builds a free predicate from an arbitrary test.
func Match(index int, name string, test func(phonology.Word) bool) Predicate {
	return Predicate{Index: index, Name: name, Test: test}
}

// Bind builds a predicate requiring rel(word, anchor) at index.
func Bind(index int, rel Relation, anchor phonology.Word) Predicate {
	return Predicate{
		Index:    index,
		Name:     rel.String() + ":" + anchor.Text,
		Bound:    true,
		Relation: rel,
		Anchor:   anchor,
	}
}

// HasPrefix requires the word text to start with prefix (lowercased).
func HasPrefix(index int, prefix string) Predicate {
	p := strings.ToLower(prefix)
	return Match(index, "prefix:"+p, func(w phonology.Word) bool {
		return strings.HasPrefix(w.Text, p)
	})
}

// StressPattern requires the word's stress marks to equal pattern exactly.
func StressPattern(index int, pattern string) Predicate {
	return Match(index, "stress:"+pattern, func(w phonology.Word) bool {
		return w.MatchesPattern(pattern)
	})
}

// Syllables requires exactly n syllables.
func Syllables(index, n int) Predicate {
	return Match(index, fmt.Sprintf("syllables:%d", n), func(w phonology.Word) bool {
		return w.HasPhonemes() && w.SyllableCount() == n
	})
}

// Is requires the word text to equal text (lowercased).
func Is(index int, text string) Predicate {
	t := strings.ToLower(text)
	return Match(index, "is:"+t, func(w phonology.Word) bool {
		return w.Text == t
	})
}
