package search

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/versegen/constraint"
	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/phonology"
	"github.com/katalvlaran/versegen/sampler"
)

// seeker holds the mutable state of one run.
type seeker struct {
	graph *core.Graph
	opts  Options
	cons  []constraint.Constraint

	arena []frame
	stack []int
	state State
	res   Result
}

// Sequence walks g depth-first to produce up to length words that satisfy
// preds and cons.
//
// The run is best effort. It stops when the stack is empty, when the last
// popped path reaches length, or when MaxIterations is exceeded, and in every
// case reports the path of the last popped frame. Only State == Succeeded
// guarantees len(Words) == length; callers that need an exact length should
// use the line package.
//
// Errors:
//   - ErrGraphNil          if g is nil.
//   - ErrNegativeLength    if length < 0.
//   - ErrNoMatchingStart   if no node satisfies the index-0 predicates.
//
// Complexity: O(I·d log d) time and O(I·d) arena frames, where I is the
// iteration count and d the largest out-degree visited.
func Sequence(g *core.Graph, length int, preds []constraint.Predicate, cons []constraint.Constraint, opts ...Option) (*Result, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if length < 0 {
		return nil, ErrNegativeLength
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.Rand == nil {
		o.Rand = sampler.NewRand(o.Seed)
	}

	if length == 0 {
		observe(Succeeded, 0)
		return &Result{Words: []phonology.Word{}, State: Succeeded}, nil
	}

	s := &seeker{graph: g, opts: o, cons: cons, state: Initializing}

	// 3. Initializing: choose and push the root
	if err := s.init(preds); err != nil {
		observeNoStart()
		o.Logger.Debug("search: no matching start", zap.Int("length", length), zap.Int("nodes", g.VertexCount()))
		return nil, err
	}

	// 4. Searching: depth-first expansion
	s.run(length)

	o.Logger.Debug("search finished",
		zap.Stringer("state", s.res.State),
		zap.Int("requested", length),
		zap.Int("length", len(s.res.Words)),
		zap.Int("iterations", s.res.Iterations),
		zap.Int("rejected", s.res.Rejected),
		zap.Int("frames", len(s.arena)))
	observe(s.res.State, s.res.Iterations)

	return &s.res, nil
}

// init filters the node set by the index-0 predicates, picks a root uniformly
// and pushes it with the constraints anchored at 0 materialized.
func (s *seeker) init(preds []constraint.Predicate) error {
	start, _ := constraint.StartingPredicates(preds, s.cons)

	nodes := s.graph.Nodes()
	candidates := nodes[:0:0]
	for _, w := range nodes {
		if constraint.Satisfies(w, start) {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return ErrNoMatchingStart
	}

	root := candidates[s.opts.Rand.Intn(len(candidates))]
	s.arena = append(s.arena, frame{
		word:   root,
		level:  0,
		parent: -1,
		preds:  constraint.Expand(root, 0, preds, s.cons),
	})
	s.stack = append(s.stack, 0)
	s.state = Searching

	return nil
}

// run executes the search loop. level is the position the popped frame's
// children would fill; the loop ends once it reaches length.
func (s *seeker) run(length int) {
	last := 0
	level := 0
	iterations := 0

	for len(s.stack) > 0 && level < length {
		iterations++
		if iterations > s.opts.MaxIterations {
			s.state = BudgetExceeded
			break
		}

		// Pop.
		top := len(s.stack) - 1
		idx := s.stack[top]
		s.stack = s.stack[:top]
		last = idx

		cur := s.arena[idx]
		level = cur.level + 1
		if level >= length {
			continue
		}
		s.expand(idx, cur, level)
	}

	if s.state != BudgetExceeded {
		if level >= length {
			s.state = Succeeded
		} else {
			s.state = Exhausted
		}
	}

	s.res = Result{
		Words:      s.path(last),
		State:      s.state,
		Iterations: iterations,
		Rejected:   s.res.Rejected,
	}
}

// expand pushes one frame per successor of cur that satisfies the predicates
// active at level. Children are pushed in reverse so the first candidate of
// the sampler order is popped first.
func (s *seeker) expand(idx int, cur frame, level int) {
	order := sampler.Order(s.graph.Successors(cur.word), s.opts.Policy, s.opts.Rand)

	first := len(s.arena)
	for _, cand := range order {
		if !constraint.SatisfiesAt(cand, level, cur.preds) {
			s.res.Rejected++
			continue
		}
		s.arena = append(s.arena, frame{
			word:   cand,
			level:  level,
			parent: idx,
			preds:  constraint.Expand(cand, level, cur.preds, s.cons),
		})
	}
	for i := len(s.arena) - 1; i >= first; i-- {
		s.stack = append(s.stack, i)
	}
}

// path walks parent links from idx to the root and returns the words root first.
func (s *seeker) path(idx int) []phonology.Word {
	depth := s.arena[idx].level + 1
	out := make([]phonology.Word, depth)
	for i := idx; i >= 0; i = s.arena[i].parent {
		out[s.arena[i].level] = s.arena[i].word
	}
	return out
}
