// Package builder provides functional-options constructors for deterministic
// transition-graph fixtures: paths, cycles, complete graphs, stars, random
// sparse graphs and graphs read from text.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, word scheme and weight function.
//   - Word schemes (WordFn implementations):
//     – DefaultWordFn:    synthetic words "w0","w1",… without phonemes.
//     – VocabularyWordFn: the i-th word of a fixed list.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:  constant DefaultEdgeWeight.
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform over [min,max].
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return errors wrapping the sentinels of
//     errors.go, prefixed with the constructor name.
//
// Typical use in tests:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.RandomSparse(30, 0.1),
//	)
package builder
