// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores words in increasing distance from a start word,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/phonology"
)

// queueItem pairs a word with its BFS depth.
type queueItem struct {
	word  phonology.Word
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start, following edges
// in their direction and ignoring weights. Neighbors are enqueued in the
// sorted order of core.Graph.Successors, so the visit order is reproducible.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx errors, or any OnVisit error.
func BFS(g *core.Graph, start phonology.Word, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]phonology.Word, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]phonology.Word, n),
		},
	}

	// Seed queue with start word (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks w visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(word phonology.Word, d int, parent *phonology.Word) {
	key := word.Key()
	w.visited[key] = true
	w.res.Depth[key] = d
	if parent != nil {
		w.res.Parent[key] = *parent
	}
	w.queue = append(w.queue, queueItem{word: word, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the word in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.word)
	if err := w.opts.OnVisit(item.word, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.word.Text, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen successor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, s := range w.graph.Successors(item.word) {
		if !w.opts.FilterNeighbor(item.word, s.Word) {
			continue
		}
		// first time seen?
		if !w.visited[s.Word.Key()] {
			parent := item.word
			w.enqueue(s.Word, nextDepth, &parent)
		}
	}
}
