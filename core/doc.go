// Package core provides the thread-safe transition graph the verse generator
// walks.
//
// The Graph G = (V,E) is directed and weighted:
//
//   - V holds phonology.Word values keyed by Word.Key(), so the same spelling
//     with two pronunciations occupies two vertices.
//   - E holds one edge per ordered pair; its int64 weight counts how often the
//     pair was observed adjacent in the corpus (always >= 1).
//   - Adjacency is a nested map adjacency[from][to] = weight, giving O(1)
//     insertion and increment.
//   - Separate sync.RWMutex for vertices (muVert) and adjacency (muEdgeAdj).
//
// Lifecycle:
//
//	build    AddOrIncrement / AddVertex / SetWeight      single writer, while loading
//	generate Successors / Nodes / Weight / HasVertex     concurrent readers
//
// Core Methods:
//
//	AddOrIncrement(from, to Word) (int64, error) // O(1)
//	AddVertex(w Word) error                      // O(1)
//	SetWeight(from, to Word, weight int64) error // O(1), restore path
//	Successors(w Word) []Successor               // O(d·log d), sorted by key
//	Nodes() []Word                               // O(V·log V), sorted by key
//	Weight(from, to Word) (int64, bool)          // O(1)
//	Edges() []Edge                               // O(E·log E)
//	Stats() GraphStats                           // O(V+E)
//
// Deterministic iteration matters: a seeded search only reproduces its output
// if candidate enumeration does not depend on map order.
package core
