// SPDX-License-Identifier: MIT
// Package: versegen/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach the constructor name with %w wrapping.
//   • Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrVocabularyTooSmall indicates that a fixed vocabulary has fewer words
// than the constructor needs vertices.
var ErrVocabularyTooSmall = errors.New("builder: vocabulary too small")

// ErrConstructFailed indicates a construction failure not covered above
// (nil constructor, core rejection).
var ErrConstructFailed = errors.New("builder: construction failed")
