package line

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/versegen/sampler"
	"github.com/katalvlaran/versegen/search"
)

// DefaultMaxAttempts bounds the sub-searches of one Build call.
const DefaultMaxAttempts = 32

var (
	// ErrGraphNil is returned by NewBuilder for a nil graph.
	ErrGraphNil = errors.New("line: graph is nil")

	// ErrExhausted is returned when the attempt ceiling is reached before
	// the requested length. The partial words are returned alongside it.
	ErrExhausted = errors.New("line: attempts exhausted before reaching the requested length")

	// ErrEmptyGraph is returned when a walk needs a word and the graph has none.
	ErrEmptyGraph = errors.New("line: graph has no words")

	// ErrInvalidScheme reports a rhyme scheme that is empty or not letters only.
	ErrInvalidScheme = errors.New("line: invalid rhyme scheme")

	// ErrInvalidLength reports a non-positive word or line count.
	ErrInvalidLength = errors.New("line: invalid length")
)

// Option configures a Builder.
type Option func(*Options)

// Options holds Builder parameters.
type Options struct {
	// Seed drives every random choice (0 ⇒ sampler.DefaultSeed). Concurrent
	// helpers draw a base seed per call from the seeded stream and derive
	// one stream per line from it.
	Seed int64

	// Policy is forwarded to each search.
	Policy sampler.Policy

	// MaxAttempts bounds the sub-searches of one Build. Default 32.
	MaxAttempts int

	// MaxIterations is forwarded to each search. Default search.DefaultMaxIterations.
	MaxIterations int

	// Logger receives build diagnostics. Default no-op.
	Logger *zap.Logger
}

// DefaultOptions returns the Builder defaults.
func DefaultOptions() Options {
	return Options{
		Seed:          0,
		Policy:        sampler.Roulette,
		MaxAttempts:   DefaultMaxAttempts,
		MaxIterations: search.DefaultMaxIterations,
		Logger:        zap.NewNop(),
	}
}

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithPolicy sets the successor ordering policy.
func WithPolicy(p sampler.Policy) Option {
	if p != sampler.Roulette && p != sampler.Uniform {
		panic(fmt.Sprintf("line: WithPolicy(%v): unknown policy", p))
	}
	return func(o *Options) { o.Policy = p }
}

// WithMaxAttempts sets the attempt ceiling. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("line: WithMaxAttempts(%d): must be >= 1", n))
	}
	return func(o *Options) { o.MaxAttempts = n }
}

// WithMaxIterations sets the per-search iteration ceiling. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("line: WithMaxIterations(%d): must be >= 1", n))
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
