// Package phonology defines the Word value type and the phonological
// comparisons the generator constrains lines with.
//
// A Word couples a normalized token with the pronunciation resolved from a
// syllabified ARPAbet dictionary (CMU style). Each syllable is an ordered list
// of phoneme codes; vowels carry a trailing stress digit (0 unstressed,
// 1 primary, 2 secondary).
//
// Relations:
//
//	RhymesWith       identical phonemes from the last stressed vowel onward
//	AlliteratesWith  identical initial consonant phoneme
//	AssonantWith     identical vowel in the last stressed syllable
//	StressMatches    identical per-syllable stress pattern
//
// Every relation returns false when either word lacks phoneme data or when
// both words share the same spelling. Such pairs are incomparable; they are
// filtered out rather than reported as errors.
//
// Stress patterns are rendered with '-' for a stressed syllable and '_' for
// an unstressed one, so "about" (AH0 - B AW1 T) renders as "_-".
//
// The Dictionary is built explicitly by the host application and shared
// read-only by every Word construction; there is no package-level state.
package phonology
