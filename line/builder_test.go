package line_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/versegen/builder"
	"github.com/katalvlaran/versegen/constraint"
	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/internal/fixture"
	"github.com/katalvlaran/versegen/line"
	"github.com/katalvlaran/versegen/phonology"
	"github.com/katalvlaran/versegen/search"
	"github.com/katalvlaran/versegen/skeleton"
)

// rhymingCorpus gives every word with phonemes at least one rhyme partner.
const rhymingCorpus = "the cat sat on the mat . the dog saw a log . a big pig ran in the fog . the man ran . the frog sat on a hat"

// allRhymeCorpus has no word without a partner, so rebased rhyme
// predicates can always be satisfied.
const allRhymeCorpus = "cat sat mat hat bat . dog log fog frog"

func newBuilder(t *testing.T, text string, opts ...line.Option) (*line.Builder, *core.Graph) {
	t.Helper()
	g := fixture.Graph(fixture.Dictionary(), text)
	b, err := line.NewBuilder(g, opts...)
	require.NoError(t, err)
	return b, g
}

func TestNewBuilder_NilGraph(t *testing.T) {
	_, err := line.NewBuilder(nil)
	require.ErrorIs(t, err, line.ErrGraphNil)
}

func TestBuild_ExactLength(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b, _ := newBuilder(t, "a b c a b c a b c", line.WithSeed(seed))
		ws, err := b.Build(5, nil, nil)
		require.NoError(t, err)
		assert.Len(t, ws, 5)
	}
}

func TestBuild_ZeroLength(t *testing.T) {
	b, _ := newBuilder(t, "a b c")
	ws, err := b.Build(0, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, ws)

	_, err = b.Build(-1, nil, nil)
	require.ErrorIs(t, err, line.ErrInvalidLength)
}

// TestBuild_StitchesShortSearches needs a second search: "cat sat" is a dead
// end, and the rhyme anchored on "cat" must carry over to the next search.
func TestBuild_StitchesShortSearches(t *testing.T) {
	d := fixture.Dictionary()
	preds := []constraint.Predicate{constraint.Is(0, "cat")}
	cons := []constraint.Constraint{constraint.MustConstraint(constraint.Rhyme, 0, 2)}

	for seed := int64(1); seed <= 10; seed++ {
		b, _ := newBuilder(t, "cat sat . on mat", line.WithSeed(seed))
		ws, err := b.Build(3, preds, cons)
		require.NoError(t, err)
		require.Len(t, ws, 3)
		assert.Equal(t, "cat", ws[0].Text)
		assert.True(t, phonology.RhymesWith(d.Word("cat", ""), ws[2]), "got %s", ws[2])
	}
}

func TestBuild_Exhausted(t *testing.T) {
	b, _ := newBuilder(t, "the cat sat", line.WithMaxAttempts(1))
	ws, err := b.Build(10, nil, nil)
	require.ErrorIs(t, err, line.ErrExhausted)
	assert.NotEmpty(t, ws, "partial words are returned")
	assert.Less(t, len(ws), 10)
}

func TestBuild_NoMatchingStartSurfaced(t *testing.T) {
	b, _ := newBuilder(t, "cat sat on a mat")
	_, err := b.Build(3, []constraint.Predicate{constraint.HasPrefix(0, "z")}, nil)
	require.ErrorIs(t, err, search.ErrNoMatchingStart)
}

func TestScheme_AABB(t *testing.T) {
	run := func() [][]phonology.Word {
		b, _ := newBuilder(t, rhymingCorpus, line.WithSeed(99))
		lines, err := b.Scheme(context.Background(), "AABB", 4)
		require.NoError(t, err)
		return lines
	}
	lines := run()
	require.Len(t, lines, 4)
	for _, l := range lines {
		require.Len(t, l, 4)
	}
	assert.True(t, phonology.RhymesWith(lines[0][3], lines[1][3]), "%s / %s", lines[0][3], lines[1][3])
	assert.True(t, phonology.RhymesWith(lines[2][3], lines[3][3]), "%s / %s", lines[2][3], lines[3][3])

	again := run()
	assert.Equal(t, line.RenderLines(lines), line.RenderLines(again), "fixed seed reproduces the stanza")
}

func TestScheme_UsesRhymePartnerFlags(t *testing.T) {
	b, g := newBuilder(t, rhymingCorpus, line.WithSeed(5))
	// Only "mat" may open a rhyme group.
	for _, w := range g.Nodes() {
		require.NoError(t, g.SetRhymePartner(w, w.Text == "mat"))
	}
	lines, err := b.Scheme(context.Background(), "ABA", 3)
	require.NoError(t, err)
	assert.Equal(t, "mat", lines[0][2].Text)
	assert.Equal(t, "mat", lines[1][2].Text)
	assert.True(t, phonology.RhymesWith(lines[0][2], lines[2][2]))
}

func TestScheme_InvalidInput(t *testing.T) {
	b, _ := newBuilder(t, rhymingCorpus)
	_, err := b.Scheme(context.Background(), "A1", 4)
	require.ErrorIs(t, err, line.ErrInvalidScheme)
	_, err = b.Scheme(context.Background(), "  ", 4)
	require.ErrorIs(t, err, line.ErrInvalidScheme)
	_, err = b.Scheme(context.Background(), "AA", 0)
	require.ErrorIs(t, err, line.ErrInvalidLength)
}

func TestScheme_CancelledContext(t *testing.T) {
	b, _ := newBuilder(t, rhymingCorpus)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := b.Scheme(ctx, "AB", 3)
	require.ErrorIs(t, err, context.Canceled)
}

func TestScheme_SuccessiveCallsVary(t *testing.T) {
	stanzas := func(b *line.Builder) []string {
		out := make([]string, 5)
		for i := range out {
			lines, err := b.Scheme(context.Background(), "AABB", 4)
			require.NoError(t, err)
			out[i] = line.RenderLines(lines)
		}
		return out
	}

	b, _ := newBuilder(t, rhymingCorpus, line.WithSeed(99))
	first := stanzas(b)
	distinct := make(map[string]struct{})
	for _, s := range first {
		distinct[s] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1, "one Builder must not repeat a single stanza")

	fresh, _ := newBuilder(t, rhymingCorpus, line.WithSeed(99))
	assert.Equal(t, first, stanzas(fresh), "fresh Builders with one seed agree call by call")
}

func TestBlock_SuccessiveCallsVary(t *testing.T) {
	b, _ := newBuilder(t, rhymingCorpus, line.WithSeed(99))
	distinct := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		lines, err := b.Block(context.Background(), 3, 4)
		require.NoError(t, err)
		distinct[line.RenderLines(lines)] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1)
}

func TestBlock(t *testing.T) {
	b, _ := newBuilder(t, rhymingCorpus, line.WithSeed(3))
	lines, err := b.Block(context.Background(), 3, 4)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Len(t, l, 4)
	}

	b2, _ := newBuilder(t, rhymingCorpus, line.WithSeed(3))
	again, err := b2.Block(context.Background(), 3, 4)
	require.NoError(t, err)
	assert.Equal(t, line.RenderLines(lines), line.RenderLines(again))

	_, err = b.Block(context.Background(), 0, 4)
	require.ErrorIs(t, err, line.ErrInvalidLength)
}

func TestSkeleton_CrossLineRhyme(t *testing.T) {
	poem, err := skeleton.ParsePoem("___[rh1]\n___[rh1]")
	require.NoError(t, err)

	b, _ := newBuilder(t, allRhymeCorpus, line.WithSeed(11))
	lines, err := b.Skeleton(poem)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Len(t, lines[0], 4)
	require.Len(t, lines[1], 4)
	assert.True(t, phonology.RhymesWith(lines[0][3], lines[1][3]), "%s / %s", lines[0][3], lines[1][3])

	empty, err := b.Skeleton(&skeleton.Poem{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRandomWalk(t *testing.T) {
	b, g := newBuilder(t, "a b c a b c", line.WithSeed(8))
	ws, err := b.RandomWalk(6)
	require.NoError(t, err)
	require.Len(t, ws, 6)
	for i := 1; i < len(ws); i++ {
		_, ok := g.Weight(ws[i-1], ws[i])
		assert.True(t, ok)
	}

	empty, err := line.NewBuilder(core.NewGraph())
	require.NoError(t, err)
	_, err = empty.RandomWalk(3)
	require.ErrorIs(t, err, line.ErrEmptyGraph)
}

func TestRender(t *testing.T) {
	d := fixture.Dictionary()
	ws := []phonology.Word{d.Word("the", ""), d.Word("cat", "")}
	assert.Equal(t, "The cat", line.Render(ws))
	assert.Equal(t, "", line.Render(nil))
	assert.Equal(t, "The cat\nThe cat", line.RenderLines([][]phonology.Word{ws, ws}))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { line.WithMaxAttempts(0) })
	assert.Panics(t, func() { line.WithMaxIterations(0) })
	assert.Equal(t, line.DefaultMaxAttempts, line.DefaultOptions().MaxAttempts)
}

// TestBuild_DeadEndPath needs several searches: a three-word path can never
// hold more than three words in one walk.
func TestBuild_DeadEndPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	b, err := line.NewBuilder(g, line.WithSeed(4))
	require.NoError(t, err)

	ws, err := b.Build(7, nil, nil)
	require.NoError(t, err)
	assert.Len(t, ws, 7)
}
