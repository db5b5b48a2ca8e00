// Package builder provides word schemes for graph constructors.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/versegen/phonology"
)

// WordFn maps a zero-based vertex index to a word. It must be pure.
type WordFn func(idx int) phonology.Word

// DefaultWordFn returns "w<idx>" without pronunciation data.
func DefaultWordFn(idx int) phonology.Word {
	return phonology.NewWord("w"+strconv.Itoa(idx), "", nil)
}

// VocabularyWordFn returns the idx-th word of words.
// The returned function panics for idx outside [0,len(words)); constructors
// check the bound first via WithVocabulary.
func VocabularyWordFn(words []phonology.Word) WordFn {
	cp := append([]phonology.Word(nil), words...)
	return func(idx int) phonology.Word {
		if idx < 0 || idx >= len(cp) {
			panic(fmt.Sprintf("VocabularyWordFn: idx must be in [0,%d), got %d", len(cp), idx))
		}
		return cp[idx]
	}
}
