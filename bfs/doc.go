// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order,
// plus the rhyme reachability helpers built on top of it.
//
// What
//
//   - Explore words in non-decreasing distance (edge count) from a start word,
//     following edges in their direction.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from word key → distance (edges) from start
//   - Parent: map from word key → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error).
//   - Filtering of individual edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - RhymeTable: rhyming words reachable from a word, grouped by distance.
//   - HasRhymePartner / MarkRhymePartners: the per-vertex flag that tells the
//     line builder which words can open a rhyme group.
//
// Determinism
//
//	core.Graph.Successors returns neighbors sorted by word key and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - BFS, RhymeTable, HasRhymePartner:  Time O(V + E), Memory O(V)
//   - MarkRhymePartners:                 Time O(V·(V + E))
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start word does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
