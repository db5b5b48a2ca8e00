// SPDX-License-Identifier: MIT
// Package: versegen/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/versegen/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return wrapped sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the configuration from bopts
// and applies every constructor in order. Constructors share the graph, so
// composing Path and Cycle over the same word scheme overlays them; repeated
// edges are re-weighted, not duplicated.
//
// Errors are wrapped as "BuildGraph: %w"; branch with errors.Is.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addWords inserts the words of indices 0..n-1 in ascending order.
func addWords(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		w := cfg.wordFn(i)
		if err := g.AddVertex(w); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %v: %w", method, w, err, ErrConstructFailed)
		}
	}
	return nil
}

// addEdge stores i→j with the next configured weight.
func addEdge(method string, g *core.Graph, cfg builderConfig, i, j int) error {
	u, v := cfg.wordFn(i), cfg.wordFn(j)
	w := cfg.weight()
	if err := g.SetWeight(u, v, w); err != nil {
		return fmt.Errorf("%s: SetWeight(%s→%s, w=%d): %v: %w", method, u, v, w, err, ErrConstructFailed)
	}
	return nil
}
