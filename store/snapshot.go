// File: snapshot.go
// Role: Graph ⇄ compressed snapshot codec and file helpers.
// Determinism:
//   - Encode writes words and edges in sorted key order, so equal graphs
//     produce byte-identical snapshots.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/phonology"
)

// SnapshotVersion is the format version written by Encode.
const SnapshotVersion = 1

var (
	// ErrCorruptSnapshot reports a snapshot that decodes but violates graph invariants.
	ErrCorruptSnapshot = errors.New("store: corrupt snapshot")

	// ErrUnsupportedVersion reports a snapshot written by an unknown format version.
	ErrUnsupportedVersion = errors.New("store: unsupported snapshot version")

	// ErrGraphNil is returned when a nil graph is passed for encoding.
	ErrGraphNil = errors.New("store: graph is nil")
)

type snapshot struct {
	Version int          `json:"version"`
	Words   []wordRecord `json:"words"`
	Edges   []edgeRecord `json:"edges"`
}

type wordRecord struct {
	Text         string     `json:"text"`
	Tag          string     `json:"tag,omitempty"`
	Syllables    [][]string `json:"syllables,omitempty"`
	RhymePartner bool       `json:"rhyme_partner,omitempty"`
}

type edgeRecord struct {
	From   int   `json:"from"`
	To     int   `json:"to"`
	Weight int64 `json:"weight"`
}

func toSnapshot(g *core.Graph) snapshot {
	nodes := g.Nodes()
	index := make(map[string]int, len(nodes))
	snap := snapshot{
		Version: SnapshotVersion,
		Words:   make([]wordRecord, len(nodes)),
	}
	for i, w := range nodes {
		index[w.Key()] = i
		snap.Words[i] = wordRecord{
			Text:         w.Text,
			Tag:          w.Tag,
			Syllables:    w.Syllables,
			RhymePartner: g.HasRhymePartner(w),
		}
	}

	edges := g.Edges()
	snap.Edges = make([]edgeRecord, len(edges))
	for i, e := range edges {
		snap.Edges[i] = edgeRecord{From: index[e.From.Key()], To: index[e.To.Key()], Weight: e.Weight}
	}
	return snap
}

// validate checks snap before any graph is built.
func (snap snapshot) validate() error {
	if snap.Version != SnapshotVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, snap.Version)
	}
	for i, w := range snap.Words {
		if w.Text == "" {
			return fmt.Errorf("%w: word %d has empty text", ErrCorruptSnapshot, i)
		}
	}
	n := len(snap.Words)
	for i, e := range snap.Edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d references word outside [0,%d)", ErrCorruptSnapshot, i, n)
		}
		if e.Weight < 1 {
			return fmt.Errorf("%w: edge %d has weight %d", ErrCorruptSnapshot, i, e.Weight)
		}
	}
	return nil
}

func (snap snapshot) graph() (*core.Graph, error) {
	if err := snap.validate(); err != nil {
		return nil, err
	}
	g := core.NewGraph()
	words := make([]phonology.Word, len(snap.Words))
	for i, r := range snap.Words {
		w := phonology.NewWord(r.Text, r.Tag, r.Syllables)
		words[i] = w
		if err := g.AddVertex(w); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
		}
		if r.RhymePartner {
			if err := g.SetRhymePartner(w, true); err != nil {
				return nil, err
			}
		}
	}
	for _, e := range snap.Edges {
		if err := g.SetWeight(words[e.From], words[e.To], e.Weight); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
		}
	}
	return g, nil
}

// Encode writes a compressed snapshot of g to w.
func Encode(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("store: zstd writer: %w", err)
	}
	if err = json.NewEncoder(enc).Encode(toSnapshot(g)); err != nil {
		_ = enc.Close()
		return fmt.Errorf("store: encode snapshot: %w", err)
	}
	if err = enc.Close(); err != nil {
		return fmt.Errorf("store: flush snapshot: %w", err)
	}
	return nil
}

// Decode reads a snapshot written by Encode and rebuilds the graph.
func Decode(r io.Reader) (*core.Graph, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("store: zstd reader: %w", err)
	}
	defer dec.Close()

	var snap snapshot
	if err = json.NewDecoder(dec).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return snap.graph()
}

// SaveFile writes a snapshot of g to path. The file is written to a
// temporary sibling and renamed, so a failed save keeps the old snapshot.
func SaveFile(path string, g *core.Graph) (err error) {
	if g == nil {
		return ErrGraphNil
	}
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, g); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("store: close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store: rename snapshot: %w", err)
	}
	return nil
}

// LoadFile reads the snapshot at path.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open snapshot: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", path, err)
	}
	return g, nil
}
