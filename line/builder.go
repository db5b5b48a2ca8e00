// File: builder.go
// Role: exact-length line construction on top of the best-effort search.
// Determinism:
//   - A fixed seed reproduces every output, including the concurrent helpers,
//     which draw one base seed per call from the Builder's stream and give
//     each line its own stream derived from (base, line number).
// Concurrency:
//   - Build and RandomWalk share one random stream guarded by a mutex.
//   - Scheme and Block fan out over goroutines; the graph is only read.

package line

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/katalvlaran/versegen/constraint"
	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/phonology"
	"github.com/katalvlaran/versegen/sampler"
	"github.com/katalvlaran/versegen/search"
)

// Builder produces lines of an exact length from a read-only graph.
type Builder struct {
	graph *core.Graph
	opts  Options

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBuilder returns a Builder over g. The graph must not be mutated while
// the Builder is in use.
func NewBuilder(g *core.Graph, opts ...Option) (*Builder, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Builder{graph: g, opts: o, rng: sampler.NewRand(o.Seed)}, nil
}

// Build returns exactly length words satisfying preds and cons.
//
// It runs search.Sequence for the remaining slots, appends whatever comes
// back and repeats with predicates and constraints rebased past the words
// already placed. Constraints whose anchor was placed by an earlier attempt
// are bound to that word. After MaxAttempts sub-searches without reaching
// length it returns the partial words and ErrExhausted.
// search.ErrNoMatchingStart is returned as is, without retrying.
func (b *Builder) Build(length int, preds []constraint.Predicate, cons []constraint.Constraint) ([]phonology.Word, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.build(b.rng, length, preds, cons)
}

func (b *Builder) build(rng *rand.Rand, length int, preds []constraint.Predicate, cons []constraint.Constraint) ([]phonology.Word, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d words", ErrInvalidLength, length)
	}

	acc := make([]phonology.Word, 0, length)
	attempts := 0
	for len(acc) < length {
		if attempts == b.opts.MaxAttempts {
			buildsExhausted.Inc()
			b.opts.Logger.Debug("line: attempts exhausted",
				zap.Int("requested", length),
				zap.Int("placed", len(acc)),
				zap.Int("attempts", attempts))
			return acc, fmt.Errorf("%w: %d of %d words after %d attempts", ErrExhausted, len(acc), length, attempts)
		}
		attempts++

		p, c := constraint.Rebase(preds, cons, acc)
		res, err := search.Sequence(b.graph, length-len(acc), p, c,
			search.WithRand(rng),
			search.WithPolicy(b.opts.Policy),
			search.WithMaxIterations(b.opts.MaxIterations),
			search.WithLogger(b.opts.Logger))
		if err != nil {
			return acc, err
		}
		acc = append(acc, res.Words...)
	}
	buildAttempts.Observe(float64(attempts))

	return acc, nil
}

// RandomWalk returns length words from a plain weighted Markov walk: a random
// first word, then one roulette draw per step. Dead ends restart at a random
// word. No predicates are involved.
func (b *Builder) RandomWalk(length int) ([]phonology.Word, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d words", ErrInvalidLength, length)
	}
	nodes := b.graph.Nodes()
	if length > 0 && len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]phonology.Word, 0, length)
	for len(out) < length {
		if len(out) == 0 {
			out = append(out, nodes[b.rng.Intn(len(nodes))])
			continue
		}
		next, ok := sampler.Draw(b.graph.Successors(out[len(out)-1]), b.rng)
		if !ok {
			next = nodes[b.rng.Intn(len(nodes))]
		}
		out = append(out, next)
	}
	linesTotal.WithLabelValues("walk").Inc()

	return out, nil
}

// callSeed draws the base seed of one concurrent call from the Builder's
// stream, so successive calls differ while a fresh Builder repeats itself.
func (b *Builder) callSeed() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.rng.Int63()
}

// lineRand returns the stream of line number i under base.
func lineRand(base int64, i int) *rand.Rand {
	return sampler.NewRand(sampler.DeriveSeed(base, uint64(i)))
}

// Render joins words with spaces and capitalizes the first letter.
func Render(words []phonology.Word) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
	}
	s := strings.Join(parts, " ")
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// RenderLines renders each line and joins them with newlines.
func RenderLines(lines [][]phonology.Word) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Render(l)
	}
	return strings.Join(out, "\n")
}
