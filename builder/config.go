// SPDX-License-Identifier: MIT
// Package: versegen/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • wordFn   = DefaultWordFn       ("w0","w1",…)
//   • rng      = nil                 (pure unless seeded)
//   • weightFn = DefaultWeightFn     (constant 1)
//   • vocab    = 0                   (unbounded word scheme)

package builder

import (
	"fmt"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// wordFn maps a vertex index to its word.
	wordFn WordFn
	// vocab bounds valid indices of wordFn; 0 means unbounded.
	vocab int
	// rng drives stochastic constructors and weight draws.
	rng *rand.Rand
	// weightFn produces edge weights; results below 1 are raised to 1.
	weightFn WeightFn
}

// newBuilderConfig applies options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		wordFn:   DefaultWordFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// checkVocab reports ErrVocabularyTooSmall when n vertices exceed a fixed vocabulary.
func (c builderConfig) checkVocab(method string, n int) error {
	if c.vocab > 0 && n > c.vocab {
		return fmt.Errorf("%s: n=%d > vocabulary=%d: %w", method, n, c.vocab, ErrVocabularyTooSmall)
	}
	return nil
}

// weight draws the next edge weight, never below 1.
func (c builderConfig) weight() int64 {
	w := c.weightFn(c.rng)
	if w < 1 {
		return 1
	}
	return w
}
