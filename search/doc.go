// Package search implements the constrained, backtracking depth-first walk
// that turns a core.Graph into word sequences.
//
// What:
//
//   - Sequence(g, length, preds, cons, opts...) produces at most length words.
//     The root is chosen uniformly among nodes passing the index-0 predicates;
//     each step orders the successors of the popped word with the sampler,
//     keeps those passing the predicates active at the next level, and
//     materializes constraints anchored there per candidate.
//
// State machine:
//
//	Initializing → Searching → { Succeeded | Exhausted | BudgetExceeded }
//
// The loop runs while the stack is non-empty and the last popped path is
// shorter than length. All terminal states report the path of the last popped
// frame, which may be short. That is the contract: exact lengths are the job
// of the line package.
//
// Search tree:
//
//	Frames live in a per-run arena and point to their parent by index, so
//	sibling branches share prefixes without copying. Each frame carries the
//	predicate set of its own branch.
//
// Options:
//
//   - WithRand(r)          explicit random source (not goroutine-safe).
//   - WithSeed(seed)       seed for the default source (0 ⇒ fixed default).
//   - WithPolicy(p)        sampler.Roulette (default) or sampler.Uniform.
//   - WithMaxIterations(n) iteration ceiling, default 6000.
//   - WithLogger(l)        zap logger for per-run debug entries.
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrNegativeLength    length < 0
//   - ErrNoMatchingStart   nothing satisfies the index-0 predicates
//
// Running out of budget is not an error; see Result.State.
//
// Concurrency:
//
//	The graph is only read. Concurrent runs on one graph are safe as long as
//	each has its own random source.
package search
