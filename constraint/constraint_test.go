package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/versegen/constraint"
	"github.com/katalvlaran/versegen/internal/fixture"
	"github.com/katalvlaran/versegen/phonology"
)

func words(t *testing.T, texts ...string) map[string]phonology.Word {
	t.Helper()
	d := fixture.Dictionary()
	out := make(map[string]phonology.Word, len(texts))
	for _, s := range texts {
		w, ok := d.Lookup(s)
		require.True(t, ok, s)
		out[s] = w
	}
	return out
}

func TestNewConstraint_Validation(t *testing.T) {
	c, err := constraint.NewConstraint(constraint.Rhyme, 7, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7}, c.Indices)
	assert.Equal(t, 3, c.Anchor())
	assert.Equal(t, "rhyme[3 7]", c.String())

	_, err = constraint.NewConstraint(constraint.Rhyme, 4)
	require.ErrorIs(t, err, constraint.ErrTooFewIndices)

	_, err = constraint.NewConstraint(constraint.Rhyme, 4, 4)
	require.ErrorIs(t, err, constraint.ErrTooFewIndices)

	_, err = constraint.NewConstraint(constraint.Alliteration, -1, 2)
	require.ErrorIs(t, err, constraint.ErrNegativeIndex)

	assert.Equal(t, -1, constraint.Constraint{}.Anchor())
}

func TestParseRelation(t *testing.T) {
	for in, want := range map[string]constraint.Relation{
		"rh":           constraint.Rhyme,
		"Rhyme":        constraint.Rhyme,
		"al":           constraint.Alliteration,
		"assonance":    constraint.Assonance,
		"st":           constraint.StressMatch,
		" alliteration": constraint.Alliteration,
	} {
		got, err := constraint.ParseRelation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, got, mustParse(t, got.Code()))
	}
	_, err := constraint.ParseRelation("xx")
	require.ErrorIs(t, err, constraint.ErrUnknownRelation)
}

func mustParse(t *testing.T, s string) constraint.Relation {
	t.Helper()
	r, err := constraint.ParseRelation(s)
	require.NoError(t, err)
	return r
}

func TestRelation_Holds(t *testing.T) {
	w := words(t, "cat", "mat", "can", "dog", "apple", "about")
	assert.True(t, constraint.Rhyme.Holds(w["cat"], w["mat"]))
	assert.False(t, constraint.Rhyme.Holds(w["cat"], w["dog"]))
	assert.True(t, constraint.Alliteration.Holds(w["cat"], w["can"]))
	assert.True(t, constraint.Assonance.Holds(w["cat"], w["can"]))
	assert.False(t, constraint.StressMatch.Holds(w["apple"], w["about"]))
	assert.False(t, constraint.Rhyme.Holds(w["cat"], w["cat"]), "self comparison")

	unknown := phonology.NewWord("zzz", "", nil)
	assert.False(t, constraint.Rhyme.Holds(w["cat"], unknown), "no phoneme data")
}

// TestExpand_BranchLocal verifies that two candidates at the anchor level get
// predicates bound to themselves, and that the active set is left untouched.
func TestExpand_BranchLocal(t *testing.T) {
	w := words(t, "cat", "dog", "mat", "log")
	declared := []constraint.Constraint{constraint.MustConstraint(constraint.Rhyme, 1, 3)}
	active := []constraint.Predicate{constraint.HasPrefix(2, "s")}

	forCat := constraint.Expand(w["cat"], 1, active, declared)
	forDog := constraint.Expand(w["dog"], 1, active, declared)

	require.Len(t, active, 1, "active must not grow")
	require.Len(t, forCat, 2)
	require.Len(t, forDog, 2)

	assert.Equal(t, 3, forCat[1].Index)
	assert.True(t, forCat[1].Anchor.Equal(w["cat"]))
	assert.True(t, forDog[1].Anchor.Equal(w["dog"]))

	assert.True(t, constraint.SatisfiesAt(w["mat"], 3, forCat))
	assert.False(t, constraint.SatisfiesAt(w["log"], 3, forCat))
	assert.True(t, constraint.SatisfiesAt(w["log"], 3, forDog))
	assert.False(t, constraint.SatisfiesAt(w["mat"], 3, forDog))
}

func TestExpand_OtherLevelUnchanged(t *testing.T) {
	w := words(t, "cat")
	declared := []constraint.Constraint{constraint.MustConstraint(constraint.Rhyme, 2, 4)}
	active := []constraint.Predicate{constraint.HasPrefix(1, "c")}

	got := constraint.Expand(w["cat"], 1, active, declared)
	assert.Len(t, got, 1)
}

func TestExpand_MultipleRemainingIndices(t *testing.T) {
	w := words(t, "cat")
	declared := []constraint.Constraint{
		constraint.MustConstraint(constraint.Rhyme, 0, 2, 5),
		constraint.MustConstraint(constraint.Alliteration, 0, 1),
	}
	got := constraint.Expand(w["cat"], 0, nil, declared)
	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 5, 1}, []int{got[0].Index, got[1].Index, got[2].Index})
	assert.Equal(t, constraint.Alliteration, got[2].Relation)
}

// TestInertConstraint checks that a constraint anchored beyond every visited
// level never materializes and never filters anything.
func TestInertConstraint(t *testing.T) {
	w := words(t, "cat", "dog", "sat")
	declared := []constraint.Constraint{constraint.MustConstraint(constraint.Rhyme, 10, 12)}

	var active []constraint.Predicate
	for level, cand := range []phonology.Word{w["cat"], w["dog"], w["sat"]} {
		active = constraint.Expand(cand, level, active, declared)
		assert.True(t, constraint.SatisfiesAt(cand, level, active))
	}
	assert.Empty(t, active)
}

func TestStartingPredicates(t *testing.T) {
	preds := []constraint.Predicate{
		constraint.HasPrefix(0, "c"),
		constraint.HasPrefix(1, "s"),
		constraint.Syllables(0, 1),
	}
	cons := []constraint.Constraint{
		constraint.MustConstraint(constraint.Rhyme, 0, 3),
		constraint.MustConstraint(constraint.Rhyme, 1, 3),
	}
	start, anchored := constraint.StartingPredicates(preds, cons)
	assert.Len(t, start, 2)
	require.Len(t, anchored, 1)
	assert.Equal(t, 0, anchored[0].Anchor())
}

func TestSatisfies_Conjunction(t *testing.T) {
	w := words(t, "cat", "can", "mat")
	preds := []constraint.Predicate{
		constraint.HasPrefix(0, "c"),
		constraint.Bind(0, constraint.Rhyme, w["mat"]),
	}
	assert.True(t, constraint.Satisfies(w["cat"], preds))
	assert.False(t, constraint.Satisfies(w["can"], preds), "prefix alone is not enough")
	assert.True(t, constraint.Satisfies(w["can"], nil))
}

func TestHelpers(t *testing.T) {
	w := words(t, "apple", "banana", "cat")
	assert.True(t, constraint.StressPattern(0, "-_").Eval(w["apple"]))
	assert.False(t, constraint.StressPattern(0, "-_").Eval(w["cat"]))
	assert.True(t, constraint.Syllables(0, 3).Eval(w["banana"]))
	assert.False(t, constraint.Syllables(0, 1).Eval(phonology.NewWord("zzz", "", nil)))
	assert.True(t, constraint.Is(0, "Cat").Eval(w["cat"]))
	assert.True(t, constraint.Match(0, "any", nil).Eval(w["cat"]))
	assert.Equal(t, "prefix:c@4", constraint.HasPrefix(4, "C").String())
}

func TestRebase(t *testing.T) {
	w := words(t, "cat", "sat", "on", "mat", "log")
	preds := []constraint.Predicate{
		constraint.HasPrefix(0, "c"),
		constraint.HasPrefix(4, "m"),
	}
	cons := []constraint.Constraint{
		constraint.MustConstraint(constraint.Rhyme, 0, 4),
		constraint.MustConstraint(constraint.Alliteration, 3, 5),
		constraint.MustConstraint(constraint.Rhyme, 1, 2),
	}
	placed := []phonology.Word{w["cat"], w["sat"], w["on"]}

	gotP, gotC := constraint.Rebase(preds, cons, placed)

	// prefix@4 → @1, plus rhyme:cat materialized at 4-3=1; rhyme[1 2] is fully placed.
	require.Len(t, gotP, 2)
	assert.Equal(t, 1, gotP[0].Index)
	assert.Equal(t, 1, gotP[1].Index)
	assert.True(t, gotP[1].Bound)
	assert.True(t, gotP[1].Anchor.Equal(w["cat"]))
	assert.True(t, constraint.SatisfiesAt(w["mat"], 1, gotP))
	assert.False(t, constraint.SatisfiesAt(w["log"], 1, gotP))

	require.Len(t, gotC, 1)
	assert.Equal(t, []int{0, 2}, gotC[0].Indices)
	assert.Equal(t, constraint.Alliteration, gotC[0].Relation)

	// Inputs untouched.
	assert.Equal(t, 4, preds[1].Index)
	assert.Equal(t, []int{3, 5}, cons[1].Indices)

	// Nothing placed is the identity.
	p2, c2 := constraint.Rebase(preds, cons, nil)
	assert.Equal(t, len(preds), len(p2))
	assert.Equal(t, len(cons), len(c2))
}
