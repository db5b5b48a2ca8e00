// Package search defines the state machine, options and result types of the
// constrained sequence search.
package search

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/versegen/constraint"
	"github.com/katalvlaran/versegen/phonology"
	"github.com/katalvlaran/versegen/sampler"
)

// DefaultMaxIterations is the iteration ceiling applied when none is given.
const DefaultMaxIterations = 6000

// State is a phase of one search run.
type State int

const (
	Initializing   State = iota // Initializing: choosing the root word.
	Searching                   // Searching: depth-first expansion in progress.
	Succeeded                   // Succeeded: the last popped path reached the target length.
	Exhausted                   // Exhausted: the frontier ran dry before reaching it.
	BudgetExceeded              // BudgetExceeded: the iteration ceiling was hit.
)

// String returns the lower-case state name, used as a metric label.
func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Searching:
		return "searching"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	case BudgetExceeded:
		return "budget_exceeded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Sequence.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrNegativeLength is returned when the requested length is below zero.
	ErrNegativeLength = errors.New("search: negative length")

	// ErrNoMatchingStart indicates that no graph node satisfies the
	// predicates targeting index 0.
	ErrNoMatchingStart = errors.New("search: no node satisfies the index-0 predicates")
)

// Option configures optional behavior of Sequence.
type Option func(*Options)

// Options holds configurable parameters of a search run.
type Options struct {
	// Rand is the random source. When nil, one is built from Seed.
	// A *rand.Rand must not be shared by concurrent searches.
	Rand *rand.Rand

	// Seed seeds the default random source (0 ⇒ sampler.DefaultSeed).
	Seed int64

	// Policy selects the successor ordering. Default Roulette.
	Policy sampler.Policy

	// MaxIterations is the loop ceiling; exceeding it ends the run in
	// BudgetExceeded. Default DefaultMaxIterations.
	MaxIterations int

	// Logger receives one debug entry per run. Default no-op.
	Logger *zap.Logger
}

// DefaultOptions returns Options with:
//   - no explicit random source (seed 0 policy)
//   - Roulette ordering
//   - MaxIterations = DefaultMaxIterations
//   - a no-op logger
func DefaultOptions() Options {
	return Options{
		Rand:          nil,
		Seed:          0,
		Policy:        sampler.Roulette,
		MaxIterations: DefaultMaxIterations,
		Logger:        zap.NewNop(),
	}
}

// WithRand installs an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("search: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed seeds the default random source. Ignored when WithRand is used.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithPolicy selects the successor ordering policy.
func WithPolicy(p sampler.Policy) Option {
	if p != sampler.Roulette && p != sampler.Uniform {
		panic(fmt.Sprintf("search: WithPolicy(%v): unknown policy", p))
	}
	return func(o *Options) {
		o.Policy = p
	}
}

// WithMaxIterations sets the iteration ceiling. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("search: WithMaxIterations(%d): must be >= 1", n))
	}
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithLogger routes run diagnostics to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of one search run.
type Result struct {
	// Words is the path of the last popped frame, root first. It may be
	// shorter than the requested length unless State is Succeeded.
	Words []phonology.Word

	// State is the terminal state: Succeeded, Exhausted or BudgetExceeded.
	State State

	// Iterations counts loop turns, including the one that hit the ceiling.
	Iterations int

	// Rejected counts candidates filtered out by predicates.
	Rejected int
}

// frame is one node of the search tree, stored in an arena and linked to its
// parent by index. Paths share prefixes through parent links.
type frame struct {
	word   phonology.Word
	level  int
	parent int
	preds  []constraint.Predicate
}
