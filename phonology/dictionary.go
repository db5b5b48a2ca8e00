// File: dictionary.go
// Role: Syllabified pronunciation dictionary (CMU style) and Word construction.
// Format:
//   - One entry per line: "WORD  PH PH - PH PH"; '-' separates syllables.
//   - Lines starting with '#' or ";;;" are comments; blank lines are skipped.
//   - "WORD(2)" marks an alternate pronunciation of WORD.
// Concurrency:
//   - Build with LoadDictionary/Add, then share read-only. Lookups take no locks.

package phonology

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ErrMalformedEntry reports a dictionary line with a word but no phonemes.
var ErrMalformedEntry = errors.New("phonology: malformed dictionary entry")

// maxLineBytes bounds a single dictionary line.
const maxLineBytes = 1 << 20

// Dictionary maps lowercase spellings to one or more pronunciations.
type Dictionary struct {
	entries map[string][][][]string
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string][][][]string)}
}

// LoadDictionaryFile reads a dictionary from path.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("phonology: open dictionary: %w", err)
	}
	defer f.Close()

	d, err := LoadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("phonology: load %s: %w", path, err)
	}
	return d, nil
}

// LoadDictionary parses dictionary entries from r.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";;;") {
			continue
		}
		word, rest := line, ""
		if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			word, rest = line[:i], line[i:]
		}
		word = stripVariant(word)
		syllables := splitSyllables(rest)
		if len(syllables) == 0 {
			return nil, fmt.Errorf("line %d (%q): %w", lineNo, word, ErrMalformedEntry)
		}
		d.Add(word, syllables)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("phonology: scan dictionary: %w", err)
	}

	return d, nil
}

// stripVariant turns "READ(2)" into "READ".
func stripVariant(word string) string {
	if i := strings.IndexByte(word, '('); i > 0 && strings.HasSuffix(word, ")") {
		return word[:i]
	}
	return word
}

func splitSyllables(rest string) [][]string {
	var out [][]string
	for _, part := range strings.Split(rest, syllableSep) {
		phones := strings.Fields(part)
		if len(phones) > 0 {
			out = append(out, phones)
		}
	}
	return out
}

// Add registers a pronunciation for text. Duplicate pronunciations are ignored.
func (d *Dictionary) Add(text string, syllables [][]string) {
	key := strings.ToLower(text)
	sig := buildKey("", "", syllables)
	for _, existing := range d.entries[key] {
		if buildKey("", "", existing) == sig {
			return
		}
	}
	cp := NewWord(key, "", syllables).Syllables
	d.entries[key] = append(d.entries[key], cp)
}

// Len returns the number of distinct spellings.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Pronunciations returns every pronunciation recorded for text, primary first.
func (d *Dictionary) Pronunciations(text string) [][][]string {
	if d == nil {
		return nil
	}
	prons := d.entries[strings.ToLower(text)]
	out := make([][][]string, 0, len(prons))
	for _, p := range prons {
		out = append(out, NewWord("", "", p).Syllables)
	}
	return out
}

// Lookup resolves text to a Word using its primary pronunciation.
func (d *Dictionary) Lookup(text string) (Word, bool) {
	if d == nil {
		return NewWord(text, "", nil), false
	}
	prons, ok := d.entries[strings.ToLower(text)]
	if !ok || len(prons) == 0 {
		return NewWord(text, "", nil), false
	}
	return NewWord(text, "", prons[0]), true
}

// Word builds a tagged Word for text. Unknown tokens get empty phoneme data
// and therefore compare equal to other words only by spelling.
func (d *Dictionary) Word(text, tag string) Word {
	w, _ := d.Lookup(text)
	if tag == "" {
		return w
	}
	return NewWord(w.Text, tag, w.Syllables)
}
