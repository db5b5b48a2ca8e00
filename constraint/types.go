// File: types.go
// Role: Predicate and Constraint value types plus their constructors.
// Determinism:
//   - NewConstraint sorts and deduplicates indices; equal inputs give equal values.
// Concurrency:
//   - All values are immutable after construction and safe to share.

package constraint

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/versegen/phonology"
)

var (
	// ErrTooFewIndices is returned when a constraint names fewer than two
	// distinct positions.
	ErrTooFewIndices = errors.New("constraint: need at least two distinct indices")

	// ErrNegativeIndex is returned when a constraint names a negative position.
	ErrNegativeIndex = errors.New("constraint: negative index")

	// ErrUnknownRelation is returned by ParseRelation for unknown names.
	ErrUnknownRelation = errors.New("constraint: unknown relation")
)

// Predicate is a test scoped to exactly one sequence position.
//
// A predicate is either free (Test is consulted) or bound (Bound is true and
// the word must satisfy Relation against Anchor). Bound predicates carry the
// anchor word as data, so two branches that chose different anchors hold two
// distinct predicate values.
type Predicate struct {
	// Index is the sequence position the predicate applies to.
	Index int

	// Name describes the predicate in logs and errors.
	Name string

	// Test is the free-form check for unbound predicates. Nil accepts all.
	Test func(phonology.Word) bool

	// Bound marks a materialized constraint predicate.
	Bound bool

	// Relation and Anchor are meaningful only when Bound is true.
	Relation Relation
	Anchor   phonology.Word
}

// Eval reports whether w passes the predicate.
func (p Predicate) Eval(w phonology.Word) bool {
	if p.Bound {
		return p.Relation.Holds(w, p.Anchor)
	}
	if p.Test == nil {
		return true
	}
	return p.Test(w)
}

// Shift returns a copy of p moved n positions towards the start.
func (p Predicate) Shift(n int) Predicate {
	p.Index -= n
	return p
}

// String renders the predicate as "name@index".
func (p Predicate) String() string {
	return fmt.Sprintf("%s@%d", p.Name, p.Index)
}

// Constraint relates every word at Indices pairwise by Relation.
// Indices are sorted ascending; Indices[0] is the anchor.
type Constraint struct {
	Relation Relation
	Indices  []int
}

// NewConstraint validates and normalizes a constraint. Duplicate indices are
// folded; at least two distinct non-negative indices must remain.
func NewConstraint(rel Relation, indices ...int) (Constraint, error) {
	seen := make(map[int]struct{}, len(indices))
	out := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 {
			return Constraint{}, fmt.Errorf("%w: %d", ErrNegativeIndex, idx)
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	if len(out) < 2 {
		return Constraint{}, fmt.Errorf("%w: %v", ErrTooFewIndices, indices)
	}
	sort.Ints(out)

	return Constraint{Relation: rel, Indices: out}, nil
}

// MustConstraint is like NewConstraint but panics on invalid input.
// Intended for literals in tests and examples.
func MustConstraint(rel Relation, indices ...int) Constraint {
	c, err := NewConstraint(rel, indices...)
	if err != nil {
		panic(err)
	}
	return c
}

// Anchor returns the lowest index, where the constraint materializes.
// A zero Constraint reports -1.
func (c Constraint) Anchor() int {
	if len(c.Indices) == 0 {
		return -1
	}
	return c.Indices[0]
}

// Shift returns a copy with every index moved n positions towards the start.
func (c Constraint) Shift(n int) Constraint {
	out := make([]int, len(c.Indices))
	for i, idx := range c.Indices {
		out[i] = idx - n
	}
	return Constraint{Relation: c.Relation, Indices: out}
}

// String renders e.g. "rhyme[3 7]".
func (c Constraint) String() string {
	parts := make([]string, len(c.Indices))
	for i, idx := range c.Indices {
		parts[i] = fmt.Sprint(idx)
	}
	return c.Relation.String() + "[" + strings.Join(parts, " ") + "]"
}
