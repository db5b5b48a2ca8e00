// Package core defines the transition Graph: a weighted directed graph over
// phonology.Word vertices whose edge weights count observed adjacencies.
//
// Locking follows a fixed order, muVert then muEdgeAdj, for every method
// that needs both. The graph is written once while a corpus is loaded and is
// read concurrently afterwards.
//
// Errors:
//
//	ErrEmptyWord       - the word has no text.
//	ErrVertexNotFound  - requested vertex does not exist.
package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/versegen/phonology"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyWord indicates that the provided Word has empty text.
	ErrEmptyWord = errors.New("core: word is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Vertex is a node of the Graph.
//
// Word is the node identity. RhymePartner is collection-scoped metadata:
// it records whether another word of the current graph rhymes with Word and
// is maintained by the corpus loader, not by the Word itself.
type Vertex struct {
	// Word is the node identity.
	Word phonology.Word

	// RhymePartner reports whether a rhyming word exists in the collection.
	RhymePartner bool
}

// Edge is a read-only snapshot of a directed transition From→To.
type Edge struct {
	// From is the preceding word.
	From phonology.Word

	// To is the following word.
	To phonology.Word

	// Weight counts how often To followed From; always >= 1.
	Weight int64
}

// Successor pairs an outgoing neighbor with the weight of the edge to it.
type Successor struct {
	Word   phonology.Word
	Weight int64
}

// Graph is the in-memory transition graph.
//
// muVert protects vertices; muEdgeAdj protects adjacency and edgeCount.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	vertices map[string]*Vertex // Word.Key() → Vertex

	// adjacency[from.Key()][to.Key()] = weight
	adjacency map[string]map[string]int64
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]int64),
	}
}
