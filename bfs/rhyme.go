package bfs

import (
	"errors"
	"sort"

	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/phonology"
)

// errStop aborts a walk from inside OnVisit once an answer is known.
var errStop = errors.New("bfs: stop")

// RhymeTable groups every word reachable from w that rhymes with it by its
// BFS distance from w. Words at the same distance are sorted by key.
// Options (depth limit, context, filters) are forwarded to BFS.
func RhymeTable(g *core.Graph, w phonology.Word, opts ...Option) (map[int][]phonology.Word, error) {
	table := make(map[int][]phonology.Word)
	collect := WithOnVisit(func(v phonology.Word, depth int) error {
		if phonology.RhymesWith(w, v) {
			table[depth] = append(table[depth], v)
		}
		return nil
	})
	if _, err := BFS(g, w, append(opts, collect)...); err != nil {
		return nil, err
	}
	for d := range table {
		ws := table[d]
		sort.Slice(ws, func(i, j int) bool { return ws[i].Key() < ws[j].Key() })
	}

	return table, nil
}

// HasRhymePartner reports whether any word reachable from w rhymes with it.
// The walk stops at the first match. Unknown words report false.
func HasRhymePartner(g *core.Graph, w phonology.Word) bool {
	if g == nil || !w.HasPhonemes() {
		return false
	}
	found := false
	stop := WithOnVisit(func(v phonology.Word, _ int) error {
		if phonology.RhymesWith(w, v) {
			found = true
			return errStop
		}
		return nil
	})
	_, _ = BFS(g, w, stop)

	return found
}

// MarkRhymePartners sets the rhyme-partner flag of every vertex of g and
// returns how many vertices have a partner.
//
// Words without phonemes, and words whose rhyme key no other spelling in g
// shares, are flagged false without a walk.
//
// Complexity: O(V·(V+E)) worst case, one BFS per word with a rhyme class.
func MarkRhymePartners(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	nodes := g.Nodes()
	classes := rhymeClasses(nodes)

	marked := 0
	for _, w := range nodes {
		has := w.HasPhonemes() &&
			len(classes[phonology.RhymeKey(w)]) > 1 &&
			HasRhymePartner(g, w)
		if err := g.SetRhymePartner(w, has); err != nil {
			return marked, err
		}
		if has {
			marked++
		}
	}

	return marked, nil
}

// rhymeClasses groups the distinct spellings of words with phonemes by
// rhyme key.
func rhymeClasses(nodes []phonology.Word) map[string]map[string]struct{} {
	classes := make(map[string]map[string]struct{})
	for _, w := range nodes {
		if !w.HasPhonemes() {
			continue
		}
		k := phonology.RhymeKey(w)
		if classes[k] == nil {
			classes[k] = make(map[string]struct{})
		}
		classes[k][w.Text] = struct{}{}
	}
	return classes
}
