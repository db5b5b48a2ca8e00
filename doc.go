// Package versegen generates verse by walking a word-transition graph under
// phonological constraints.
//
// 🚀 What is versegen?
//
//	A corpus-trained generator that brings together:
//		• Words with pronunciations: syllables, stress, rhyme keys (phonology)
//		• A weighted directed graph of observed word bigrams (core)
//		• Weighted successor ordering: roulette and uniform (sampler)
//		• Rhyme, alliteration, assonance and stress constraints (constraint)
//		• Backtracking depth-first sequence search (search)
//		• Exact-length lines, rhyme schemes and poem skeletons (line, skeleton)
//		• Reachability and rhyme tables by breadth-first search (bfs)
//
// ✨ How it fits together
//
//   - Load a dictionary and a corpus; every adjacent pair of words in a
//     sentence adds weight to one edge.
//   - Ask for a line of n words with predicates ("starts with s") and
//     constraints ("words 2 and 5 rhyme").
//   - The search binds each constraint to a concrete word as soon as its
//     first position is filled, and backtracks when a branch dead-ends.
//
// Under the hood, everything is organized in flat subpackages:
//
//	phonology/  Word, Dictionary, relations, meter
//	core/       transition Graph, thread-safe primitives
//	sampler/    successor orders, weighted draws, seed policy
//	constraint/ Predicate, Constraint, Expand, Rebase
//	search/     Sequence state machine
//	line/       Builder: Build, Scheme, Block, Skeleton
//	skeleton/   "_ _ [rh1]" pattern lexer and parser
//	bfs/        breadth-first traversal, rhyme tables
//	corpus/     tokenizer and loader
//	store/      snapshots (JSON + zstd), badger named store
//	builder/    deterministic graph fixtures
//	config/     YAML configuration
//	logging/    zap logger construction
//	cmd/versegen command-line interface
//
// Quick example:
//
//	d, _ := phonology.LoadDictionaryFile("cmudict.syl")
//	g := core.NewGraph()
//	ld, _ := corpus.NewLoader(g, d)
//	_, _ = ld.LoadText("The cat sat on the mat. The dog sat on the log.")
//	b, _ := line.NewBuilder(g, line.WithSeed(7))
//	words, _ := b.Build(5, nil, []constraint.Constraint{
//		constraint.MustConstraint(constraint.Rhyme, 1, 4),
//	})
//	fmt.Println(line.Render(words))
package versegen
