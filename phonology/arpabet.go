package phonology

import "strings"

// vowels lists ARPAbet vowel bases (stress digit removed). R-coloured vowels
// only exist in rhotic dialects; CMU data is American English.
var vowels = map[string]struct{}{
	// Monophthongs
	"AO": {}, "AA": {}, "IY": {}, "UW": {}, "EH": {}, "IH": {}, "UH": {}, "AH": {}, "AX": {}, "AE": {},
	// Diphthongs
	"EY": {}, "AY": {}, "OW": {}, "AW": {}, "OY": {},
	// R-coloured
	"ER": {}, "AXR": {}, "EHR": {}, "UHR": {}, "AOR": {}, "AAR": {}, "IHR": {}, "IYR": {}, "AWR": {},
}

// consonants lists ARPAbet consonant codes.
var consonants = map[string]struct{}{
	// Stops
	"P": {}, "B": {}, "T": {}, "D": {}, "K": {}, "G": {},
	// Affricates
	"CH": {}, "JH": {},
	// Fricatives
	"F": {}, "V": {}, "TH": {}, "DH": {}, "S": {}, "Z": {}, "SH": {}, "ZH": {}, "HH": {},
	// Nasals
	"M": {}, "EM": {}, "N": {}, "NG": {}, "ENG": {},
	// Liquids
	"L": {}, "EL": {}, "R": {}, "DX": {}, "NX": {},
	// Semivowels
	"Y": {}, "W": {}, "Q": {},
}

// Base strips a trailing stress digit from a phoneme code ("AE1" -> "AE").
func Base(phoneme string) string {
	return strings.TrimRight(phoneme, "012")
}

// IsVowel reports whether phoneme (with or without stress digit) is a vowel.
func IsVowel(phoneme string) bool {
	_, ok := vowels[Base(phoneme)]
	return ok
}

// IsConsonant reports whether phoneme is a consonant.
func IsConsonant(phoneme string) bool {
	_, ok := consonants[Base(phoneme)]
	return ok
}

// IsStressed reports whether phoneme carries primary or secondary stress.
func IsStressed(phoneme string) bool {
	if phoneme == "" {
		return false
	}
	last := phoneme[len(phoneme)-1]
	return last == '1' || last == '2'
}
