// Package line turns the best-effort sequence search into exact-length lines
// and stanzas.
//
// Builder.Build repeats search.Sequence for the slots still missing, shifting
// predicates and constraints past the words already placed, until the line is
// complete or MaxAttempts sub-searches were spent (ErrExhausted, with the
// partial words). On top of it:
//
//   - Scheme(ctx, "AABB", n)  rhyme-scheme stanzas; anchor lines first, then
//     the lines that must rhyme with them, each phase in parallel.
//   - Block(ctx, lines, n)    unconstrained lines in parallel.
//   - Skeleton(poem)          one sequence for a parsed skeleton, cut into lines.
//   - RandomWalk(n)           plain weighted Markov walk, no constraints.
//   - Render / RenderLines    space-joined text with a capitalized first letter.
//
// All randomness derives from Options.Seed; a fixed seed reproduces every
// output, including the parallel helpers.
package line
