// SPDX-License-Identifier: MIT
// Package: versegen/builder
//
// impl_complete.go - Complete(n): every ordered pair i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits n·(n-1) edges, for i asc then j asc; no self-loops.

package builder

import (
	"fmt"

	"github.com/katalvlaran/versegen/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete directed graph over n words.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := cfg.checkVocab(methodComplete, n); err != nil {
			return err
		}
		if err := addWords(methodComplete, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
