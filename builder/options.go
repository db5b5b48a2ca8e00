// SPDX-License-Identifier: MIT
// Package: versegen/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/versegen/phonology"
	"github.com/katalvlaran/versegen/sampler"
)

// BuilderOption customizes a constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithWordFn sets the index → word scheme. Panics on nil.
func WithWordFn(fn WordFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWordFn(nil)")
	}
	return func(c *builderConfig) {
		c.wordFn = fn
		c.vocab = 0
	}
}

// WithVocabulary uses words as vertices, in order. Constructors needing more
// vertices than len(words) fail with ErrVocabularyTooSmall. Panics on an
// empty list.
func WithVocabulary(words ...phonology.Word) BuilderOption {
	if len(words) == 0 {
		panic("builder: WithVocabulary() with no words")
	}
	fn := VocabularyWordFn(words)
	return func(c *builderConfig) {
		c.wordFn = fn
		c.vocab = len(words)
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds the RNG with the sampler seed policy (0 ⇒ sampler.DefaultSeed).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = sampler.NewRand(seed)
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
