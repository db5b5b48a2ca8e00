// File: methods_edges.go
// Role: Edge lifecycle & queries: AddOrIncrement/SetWeight/Weight/Successors/Edges/EdgeCount.
// Determinism:
//   - Successors() sorts by neighbor Word.Key() asc.
//   - Edges() sorts by (From.Key(), To.Key()) asc.
// Concurrency:
//   - Mutations take muVert then muEdgeAdj write locks.
//   - Read queries take read locks in the same order.
// Invariants:
//   - Every stored weight is >= 1; re-adding an edge increments, never duplicates.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/versegen/phonology"
)

// AddOrIncrement records one observed transition from→to, inserting both
// words as vertices when needed. A new edge starts at weight 1; an existing
// edge is incremented. Returns the weight after the update.
//
// Errors:
//   - ErrEmptyWord if either word has empty text.
//
// Complexity: O(1) amortized.
func (g *Graph) AddOrIncrement(from, to phonology.Word) (int64, error) {
	return g.addWeight(from, to, 1)
}

// SetWeight stores an edge with an explicit weight, replacing any existing
// weight. Used when restoring a persisted graph.
//
// Errors:
//   - ErrEmptyWord if either word has empty text.
//   - a wrapped error if weight < 1.
func (g *Graph) SetWeight(from, to phonology.Word, weight int64) error {
	if weight < 1 {
		return fmt.Errorf("core: weight %d for %q→%q must be >= 1", weight, from.Text, to.Text)
	}
	if from.Text == "" || to.Text == "" {
		return ErrEmptyWord
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	inner := g.ensureAdj(from.Key())
	if _, exists := inner[to.Key()]; !exists {
		g.edgeCount++
	}
	inner[to.Key()] = weight

	return nil
}

func (g *Graph) addWeight(from, to phonology.Word, delta int64) (int64, error) {
	if from.Text == "" || to.Text == "" {
		return 0, ErrEmptyWord
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	inner := g.ensureAdj(from.Key())
	w, exists := inner[to.Key()]
	if !exists {
		g.edgeCount++
	}
	w += delta
	inner[to.Key()] = w

	return w, nil
}

// ensureAdj returns adjacency[from], allocating it lazily.
// Caller holds muEdgeAdj write lock.
func (g *Graph) ensureAdj(from string) map[string]int64 {
	inner, ok := g.adjacency[from]
	if !ok {
		inner = make(map[string]int64)
		g.adjacency[from] = inner
	}
	return inner
}

// Weight returns the weight of from→to and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to phonology.Word) (int64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	w, ok := g.adjacency[from.Key()][to.Key()]

	return w, ok
}

// Successors returns the outgoing (neighbor, weight) pairs of w sorted by
// neighbor key. A word without outgoing edges, or one that is not in the
// graph, yields an empty slice: that is a terminal state, not an error.
//
// Complexity: O(d log d) where d is the out-degree of w.
func (g *Graph) Successors(w phonology.Word) []Successor {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	inner := g.adjacency[w.Key()]
	if len(inner) == 0 {
		return []Successor{}
	}
	keys := make([]string, 0, len(inner))
	for k := range inner {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Successor, 0, len(keys))
	for _, k := range keys {
		v, ok := g.vertices[k]
		if !ok {
			continue
		}
		out = append(out, Successor{Word: v.Word, Weight: inner[k]})
	}

	return out
}

// OutDegree returns the number of distinct successors of w.
func (g *Graph) OutDegree(w phonology.Word) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[w.Key()])
}

// Edges returns a snapshot of every edge sorted by (From, To) key.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	froms := make([]string, 0, len(g.adjacency))
	for k := range g.adjacency {
		froms = append(froms, k)
	}
	sort.Strings(froms)

	out := make([]Edge, 0, g.edgeCount)
	for _, fk := range froms {
		inner := g.adjacency[fk]
		tos := make([]string, 0, len(inner))
		for tk := range inner {
			tos = append(tos, tk)
		}
		sort.Strings(tos)
		for _, tk := range tos {
			out = append(out, Edge{
				From:   g.vertices[fk].Word,
				To:     g.vertices[tk].Word,
				Weight: inner[tk],
			})
		}
	}

	return out
}

// EdgeCount returns the number of distinct edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}
