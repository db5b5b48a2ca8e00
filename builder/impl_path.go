// SPDX-License-Identifier: MIT
// Package: versegen/builder
//
// impl_path.go - Path(n): words 0→1→…→n-1.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1)→i for i=1..n-1 in increasing order.
//   - The last word is terminal (no successors).

package builder

import (
	"fmt"

	"github.com/katalvlaran/versegen/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a directed path over n words.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := cfg.checkVocab(methodPath, n); err != nil {
			return err
		}
		if err := addWords(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, cfg, i-1, i); err != nil {
				return err
			}
		}
		return nil
	}
}
