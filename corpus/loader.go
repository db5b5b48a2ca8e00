// File: loader.go
// Role: Feed tokenized text into a core.Graph.
// Determinism:
//   - LoadDir visits files in lexical path order.
// Concurrency:
//   - A Loader is not safe for concurrent use; the graph itself is.

package corpus

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/katalvlaran/versegen/bfs"
	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/phonology"
)

var (
	// ErrGraphNil is returned when NewLoader gets a nil graph.
	ErrGraphNil = errors.New("corpus: graph is nil")

	// ErrNotUTF8 is returned for input that is not valid UTF-8.
	ErrNotUTF8 = errors.New("corpus: input is not valid UTF-8")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Stats summarizes what one load call added.
type Stats struct {
	Files     int // files read; 0 for LoadText and LoadReader
	Sentences int
	Tokens    int
	Bigrams   int // edge observations recorded
	Unknown   int // tokens without a dictionary entry
}

func (s *Stats) add(o Stats) {
	s.Files += o.Files
	s.Sentences += o.Sentences
	s.Tokens += o.Tokens
	s.Bigrams += o.Bigrams
	s.Unknown += o.Unknown
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger routes load diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithTag tags every loaded word with tag (for example a part of speech).
func WithTag(tag string) Option {
	return func(ld *Loader) {
		ld.tag = tag
	}
}

// Loader reads text into a graph using a pronunciation dictionary.
type Loader struct {
	graph  *core.Graph
	dict   *phonology.Dictionary
	tag    string
	logger *zap.Logger
}

// NewLoader returns a Loader writing into g. A nil dictionary is allowed;
// every word then has empty phoneme data.
func NewLoader(g *core.Graph, d *phonology.Dictionary, opts ...Option) (*Loader, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ld := &Loader{graph: g, dict: d, logger: zap.NewNop()}
	for _, fn := range opts {
		fn(ld)
	}
	return ld, nil
}

// Graph returns the graph being loaded.
func (ld *Loader) Graph() *core.Graph { return ld.graph }

// batch is a fully resolved input, ready to apply.
type batch struct {
	starts []phonology.Word
	pairs  [][2]phonology.Word
	stats  Stats
}

func (ld *Loader) resolve(text string) batch {
	var b batch
	for _, sentence := range Tokenize(text) {
		b.stats.Sentences++
		words := make([]phonology.Word, len(sentence))
		for i, tok := range sentence {
			b.stats.Tokens++
			w, ok := ld.dict.Lookup(tok)
			if !ok {
				b.stats.Unknown++
			}
			if ld.tag != "" {
				w = phonology.NewWord(w.Text, ld.tag, w.Syllables)
			}
			words[i] = w
		}
		b.starts = append(b.starts, words[0])
		for i := 1; i < len(words); i++ {
			b.pairs = append(b.pairs, [2]phonology.Word{words[i-1], words[i]})
		}
	}
	b.stats.Bigrams = len(b.pairs)
	return b
}

func (ld *Loader) apply(b batch) error {
	for _, w := range b.starts {
		if err := ld.graph.AddVertex(w); err != nil {
			return fmt.Errorf("corpus: add %q: %w", w.Text, err)
		}
	}
	for _, p := range b.pairs {
		if _, err := ld.graph.AddOrIncrement(p[0], p[1]); err != nil {
			return fmt.Errorf("corpus: add %q→%q: %w", p[0].Text, p[1].Text, err)
		}
	}
	return nil
}

// LoadText records every bigram of text.
func (ld *Loader) LoadText(text string) (Stats, error) {
	b := ld.resolve(text)
	if err := ld.apply(b); err != nil {
		return Stats{}, err
	}
	return b.stats, nil
}

// LoadReader reads r to the end and loads it. A leading UTF-8 byte order mark
// is skipped; any invalid UTF-8 yields ErrNotUTF8 and nothing is loaded.
func (ld *Loader) LoadReader(r io.Reader) (Stats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Stats{}, fmt.Errorf("corpus: read: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return Stats{}, ErrNotUTF8
	}
	return ld.LoadText(string(data))
}

// LoadFile loads the file at path.
func (ld *Loader) LoadFile(path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("corpus: open: %w", err)
	}
	defer f.Close()

	st, err := ld.LoadReader(f)
	if err != nil {
		return Stats{}, fmt.Errorf("corpus: %s: %w", path, err)
	}
	st.Files = 1
	ld.logger.Debug("corpus file loaded",
		zap.String("path", path),
		zap.Int("sentences", st.Sentences),
		zap.Int("bigrams", st.Bigrams),
		zap.Int("unknown", st.Unknown))

	return st, nil
}

// LoadDir loads every regular file under dir, recursively, in lexical order.
// Hidden files and directories are skipped. The first failing file stops the
// walk; files loaded before it stay in the graph.
func (ld *Loader) LoadDir(ctx context.Context, dir string) (Stats, error) {
	var total Stats
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err = ctx.Err(); err != nil {
			return err
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		st, err := ld.LoadFile(path)
		if err != nil {
			return err
		}
		total.add(st)
		return nil
	})
	if err != nil {
		return total, err
	}

	gs := ld.graph.Stats()
	ld.logger.Info("corpus loaded",
		zap.String("dir", dir),
		zap.Int("files", total.Files),
		zap.Int("sentences", total.Sentences),
		zap.Int("unknown", total.Unknown),
		zap.Int("vertices", gs.VertexCount),
		zap.Int("edges", gs.EdgeCount))

	return total, nil
}

// MarkRhymePartners flags every vertex that can reach a word rhyming with it
// and returns the number of flagged vertices.
func (ld *Loader) MarkRhymePartners() (int, error) {
	n, err := bfs.MarkRhymePartners(ld.graph)
	if err != nil {
		return n, fmt.Errorf("corpus: mark rhyme partners: %w", err)
	}
	ld.logger.Debug("rhyme partners marked", zap.Int("count", n))
	return n, nil
}
