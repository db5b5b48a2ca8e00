// Package constraint owns the Predicate and Constraint types and the logic
// that turns multi-position constraints into position-local predicates.
//
// A Predicate tests the word at one sequence index. A Constraint relates the
// words at several indices (rhyme, alliteration, assonance, stress) and is
// anchored at its lowest index. It stays declarative until the search commits
// to a word at the anchor; Expand then binds that word into one predicate per
// remaining index:
//
//	declared:  rhyme[2 5]
//	branch A picks "cat" at 2  ⇒  Bind(5, Rhyme, cat)
//	branch B picks "dog" at 2  ⇒  Bind(5, Rhyme, dog)
//
// Bound predicates are plain values holding the anchor word, so sibling
// branches never share state. Rebase shifts both sets past words that were
// already placed by an earlier search, materializing constraints whose
// anchors fell into the placed prefix.
//
// A constraint whose anchor is never reached is inert: it never materializes
// and never rejects anything.
package constraint
