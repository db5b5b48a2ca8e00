// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a Graph for diagnostics and admission checks.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go.

package core

// GraphStats is a snapshot of catalog sizes and weight totals.
type GraphStats struct {
	VertexCount int
	EdgeCount   int

	// TotalWeight is the sum of all edge weights (number of observed bigrams).
	TotalWeight int64

	// MaxWeight is the heaviest single edge.
	MaxWeight int64

	// TerminalCount counts vertices without outgoing edges.
	TerminalCount int

	// RhymePartnerCount counts vertices flagged as having a rhyme partner.
	RhymePartnerCount int
}

// Stats produces a deterministic, read-only snapshot of the graph.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, count vertices and rhyme-partner flags.
//   - Stage 2: Acquire muEdgeAdj.RLock, scan adjacency for weights and terminals.
//
// Determinism:
//   - Deterministic for a fixed graph state.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	stats := GraphStats{VertexCount: len(g.vertices)}
	for _, v := range g.vertices {
		if v.RhymePartner {
			stats.RhymePartnerCount++
		}
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	stats.EdgeCount = g.edgeCount
	for key := range g.vertices {
		inner := g.adjacency[key]
		if len(inner) == 0 {
			stats.TerminalCount++
			continue
		}
		for _, w := range inner {
			stats.TotalWeight += w
			if w > stats.MaxWeight {
				stats.MaxWeight = w
			}
		}
	}

	return stats
}
