package phonology

import "strings"

// Meter names a metrical foot.
type Meter string

// Metrical feet, rendered as stress patterns.
const (
	Iambic       Meter = "iambic"
	Trochaic     Meter = "trochaic"
	Spondaic     Meter = "spondaic"
	Anapestic    Meter = "anapestic"
	Dactylic     Meter = "dactylic"
	Pyrrhic      Meter = "pyrrhic"
	Amphibrachic Meter = "amphibrachic"
)

// feet is ordered so detection is deterministic; longer feet come after the
// two-syllable feet they could be confused with.
var feet = []struct {
	meter   Meter
	pattern string
}{
	{Iambic, "_-"},
	{Trochaic, "-_"},
	{Spondaic, "--"},
	{Pyrrhic, "__"},
	{Anapestic, "__-"},
	{Dactylic, "-__"},
	{Amphibrachic, "_-_"},
}

// Pattern returns the stress pattern of a single foot of m, or "" if unknown.
func (m Meter) Pattern() string {
	for _, f := range feet {
		if f.meter == m {
			return f.pattern
		}
	}
	return ""
}

// LinePattern concatenates the stress patterns of words. Words without
// pronunciation data contribute nothing.
func LinePattern(words []Word) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w.StressPattern())
	}
	return b.String()
}

// FindMeter returns the first meter whose foot tiles the line's stress
// pattern exactly. It reports false for an empty pattern or no match.
func FindMeter(words []Word) (Meter, bool) {
	stresses := LinePattern(words)
	if stresses == "" {
		return "", false
	}
	for _, f := range feet {
		if len(stresses)%len(f.pattern) != 0 {
			continue
		}
		if strings.Count(stresses, f.pattern)*len(f.pattern) == len(stresses) {
			return f.meter, true
		}
	}

	return "", false
}
