// File: engine.go
// Role: Constraint materialization and predicate bookkeeping used by the search.
// Determinism:
//   - Pure functions; output order follows input order.
// Concurrency:
//   - Inputs are never mutated; results may be shared read-only.

package constraint

import "github.com/katalvlaran/versegen/phonology"

// StartingPredicates returns the predicates targeting index 0 and the
// constraints anchored at index 0. The constraints cannot be materialized
// until a root word is chosen; pass them to Expand with level 0.
func StartingPredicates(preds []Predicate, cons []Constraint) ([]Predicate, []Constraint) {
	start := At(preds, 0)
	var anchored []Constraint
	for _, c := range cons {
		if c.Anchor() == 0 {
			anchored = append(anchored, c)
		}
	}
	return start, anchored
}

// Expand materializes every declared constraint anchored at level against
// candidate, one bound predicate per remaining index. It returns active plus
// the new predicates. active is never modified; when nothing materializes it
// is returned as is.
//
// Expand must be called once per explored candidate: siblings at the same
// level get predicates bound to their own word.
//
// Complexity: O(|active| + Σ|c.Indices|).
func Expand(candidate phonology.Word, level int, active []Predicate, declared []Constraint) []Predicate {
	var out []Predicate
	for _, c := range declared {
		if c.Anchor() != level {
			continue
		}
		if out == nil {
			out = make([]Predicate, len(active), len(active)+len(c.Indices)-1)
			copy(out, active)
		}
		for _, idx := range c.Indices[1:] {
			out = append(out, Bind(idx, c.Relation, candidate))
		}
	}
	if out == nil {
		return active
	}
	return out
}

// At returns the predicates whose Index equals level.
func At(preds []Predicate, level int) []Predicate {
	var out []Predicate
	for _, p := range preds {
		if p.Index == level {
			out = append(out, p)
		}
	}
	return out
}

// Satisfies reports whether w passes every predicate in preds (conjunction).
// An empty set is satisfied by any word.
func Satisfies(w phonology.Word, preds []Predicate) bool {
	for _, p := range preds {
		if !p.Eval(w) {
			return false
		}
	}
	return true
}

// SatisfiesAt is Satisfies restricted to predicates targeting level, without
// allocating the filtered slice.
func SatisfiesAt(w phonology.Word, level int, preds []Predicate) bool {
	for _, p := range preds {
		if p.Index == level && !p.Eval(w) {
			return false
		}
	}
	return true
}

// Rebase shifts predicates and constraints down by len(placed) so that a
// follow-up search can continue after the already placed words.
//
//   - Predicates for placed positions are dropped.
//   - Constraints anchored at a placed position are materialized against the
//     placed anchor word for their remaining unplaced indices.
//   - Other constraints are shifted; they still anchor at a future position.
func Rebase(preds []Predicate, cons []Constraint, placed []phonology.Word) ([]Predicate, []Constraint) {
	n := len(placed)
	if n == 0 {
		return preds, cons
	}

	outP := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p.Index >= n {
			outP = append(outP, p.Shift(n))
		}
	}

	var outC []Constraint
	for _, c := range cons {
		anchor := c.Anchor()
		if anchor < 0 {
			continue
		}
		if anchor >= n {
			outC = append(outC, c.Shift(n))
			continue
		}
		for _, idx := range c.Indices[1:] {
			if idx >= n {
				outP = append(outP, Bind(idx-n, c.Relation, placed[anchor]))
			}
		}
	}

	return outP, outC
}
