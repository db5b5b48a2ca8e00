// SPDX-License-Identifier: MIT
// Package: versegen/builder
//
// impl_star.go - Star(n): word 0 leads to every other word.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges 0→i for i=1..n-1; the leaves are terminal.
//   - Models a sentence opener followed by many alternatives.

package builder

import (
	"fmt"

	"github.com/katalvlaran/versegen/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds an out-star with center word 0.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := cfg.checkVocab(methodStar, n); err != nil {
			return err
		}
		if err := addWords(methodStar, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}
		return nil
	}
}
