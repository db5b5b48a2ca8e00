package constraint

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/versegen/phonology"
)

// Relation is a symmetric phonological comparison between two words.
type Relation int

const (
	// Rhyme holds when both words share phonemes from the last stressed vowel on.
	Rhyme Relation = iota
	// Alliteration holds when both words open on the same consonant.
	Alliteration
	// Assonance holds when the last stressed vowels agree.
	Assonance
	// StressMatch holds when both words carry the same stress pattern.
	StressMatch
)

// relationNames holds canonical names followed by accepted aliases.
// The two-letter aliases are the skeleton operator codes.
var relationNames = map[string]Relation{
	"rhyme":        Rhyme,
	"rh":           Rhyme,
	"alliteration": Alliteration,
	"al":           Alliteration,
	"assonance":    Assonance,
	"as":           Assonance,
	"stress":       StressMatch,
	"st":           StressMatch,
}

// Holds reports whether a and b are related. Comparisons involving a word
// without phoneme data, or a word against its own spelling, are false.
func (r Relation) Holds(a, b phonology.Word) bool {
	switch r {
	case Rhyme:
		return phonology.RhymesWith(a, b)
	case Alliteration:
		return phonology.AlliteratesWith(a, b)
	case Assonance:
		return phonology.AssonantWith(a, b)
	case StressMatch:
		return phonology.StressMatches(a, b)
	default:
		return false
	}
}

// String returns the canonical relation name.
func (r Relation) String() string {
	switch r {
	case Rhyme:
		return "rhyme"
	case Alliteration:
		return "alliteration"
	case Assonance:
		return "assonance"
	case StressMatch:
		return "stress"
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Code returns the two-letter operator code used by skeleton patterns.
func (r Relation) Code() string {
	switch r {
	case Rhyme:
		return "rh"
	case Alliteration:
		return "al"
	case Assonance:
		return "as"
	case StressMatch:
		return "st"
	default:
		return "??"
	}
}

// ParseRelation resolves a canonical name or operator code, case-insensitive.
func ParseRelation(s string) (Relation, error) {
	r, ok := relationNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRelation, s)
	}
	return r, nil
}
