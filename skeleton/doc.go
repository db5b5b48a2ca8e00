// Package skeleton parses the small pattern language that describes the
// shape of a generated poem.
//
// Grammar:
//
//	poem    := line { "\n" line }
//	line    := { slot }
//	slot    := "_" | "[" group { group } "]"
//	group   := operator id
//	operator:= "rh" | "al" | "as" | "st"   (rhyme, alliteration, assonance, stress)
//	id      := digit { digit }
//
// Every slot is one word. All slots that share an (operator, id) group form
// one constraint, anchored at the first of them. A rhyming couplet:
//
//	___[rh1]
//	___[rh1]
//
// Spaces and tabs are ignored and '#' comments run to the end of the line.
// Errors are *ParseError values carrying the position and wrapping
// ErrSyntax or ErrUnknownOperator.
package skeleton
