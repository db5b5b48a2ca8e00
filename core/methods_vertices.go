// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertex/Nodes/VertexCount,
//       plus the collection-scoped rhyme-partner flag.
// Determinism:
//   - Nodes() returns words sorted by Word.Key() asc.
// Concurrency:
//   - Mutations under muVert write lock; queries under muVert read lock.

package core

import (
	"sort"

	"github.com/katalvlaran/versegen/phonology"
)

// AddVertex inserts w as a vertex. Adding an existing word is a no-op.
//
// Errors:
//   - ErrEmptyWord if w.Text is empty.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(w phonology.Word) error {
	if w.Text == "" {
		return ErrEmptyWord
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.addVertexLocked(w)

	return nil
}

// addVertexLocked inserts w; caller holds muVert write lock.
func (g *Graph) addVertexLocked(w phonology.Word) {
	key := w.Key()
	if _, exists := g.vertices[key]; exists {
		return
	}
	g.vertices[key] = &Vertex{Word: w}
}

// HasVertex reports whether w is a vertex of the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(w phonology.Word) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[w.Key()]

	return ok
}

// Vertex returns a copy of the vertex stored for w.
//
// Errors:
//   - ErrVertexNotFound if w is not in the graph.
func (g *Graph) Vertex(w phonology.Word) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[w.Key()]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// Nodes returns every word of the graph sorted by key. The result is a fresh
// slice owned by the caller.
// Complexity: O(V log V).
func (g *Graph) Nodes() []phonology.Word {
	g.muVert.RLock()
	keys := make([]string, 0, len(g.vertices))
	for k := range g.vertices {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]phonology.Word, len(keys))
	for i, k := range keys {
		out[i] = g.vertices[k].Word
	}
	g.muVert.RUnlock()

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// SetRhymePartner records whether w has a rhyming partner in the collection.
//
// Errors:
//   - ErrVertexNotFound if w is not in the graph.
func (g *Graph) SetRhymePartner(w phonology.Word, has bool) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[w.Key()]
	if !ok {
		return ErrVertexNotFound
	}
	v.RhymePartner = has

	return nil
}

// HasRhymePartner reports the rhyme-partner flag of w; false for unknown words.
func (g *Graph) HasRhymePartner(w phonology.Word) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[w.Key()]

	return ok && v.RhymePartner
}
