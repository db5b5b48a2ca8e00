// SPDX-License-Identifier: MIT
// Package: versegen/builder
//
// impl_cycle.go - Cycle(n): words 0→1→…→n-1→0.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); n = 2 gives the two-word loop 0⇄1.
//   - Emits edges i→(i+1)%n for i=0..n-1 in increasing order.
//   - Every word has out-degree 1, so a walk never dead-ends.

package builder

import (
	"fmt"

	"github.com/katalvlaran/versegen/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor that builds a directed cycle over n words.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := cfg.checkVocab(methodCycle, n); err != nil {
			return err
		}
		if err := addWords(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}
