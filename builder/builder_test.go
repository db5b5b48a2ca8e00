// Package builder_test verifies topology, weights and error contracts of the
// graph constructors.
package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/versegen/builder"
	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/internal/fixture"
	"github.com/katalvlaran/versegen/phonology"
)

// edgeKey identifies an edge by its endpoint texts.
type edgeKey struct{ U, V string }

func edgeWeights(g *core.Graph) map[edgeKey]int64 {
	m := make(map[edgeKey]int64)
	for _, e := range g.Edges() {
		m[edgeKey{U: e.From.Text, V: e.To.Text}] = e.Weight
	}
	return m
}

// TestBuilders_Functional runs table-driven topology checks for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, edges map[edgeKey]int64)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, edges map[edgeKey]int64) {
				for _, k := range []edgeKey{{"w0", "w1"}, {"w1", "w2"}, {"w2", "w3"}} {
					if edges[k] != builder.DefaultEdgeWeight {
						t.Errorf("Path: edge %v weight %d", k, edges[k])
					}
				}
			},
		},
		{
			name: "Cycle(3)", ctor: builder.Cycle(3), wantV: 3, wantE: 3,
			check: func(t *testing.T, edges map[edgeKey]int64) {
				if _, ok := edges[edgeKey{"w2", "w0"}]; !ok {
					t.Error("Cycle: missing closing edge w2→w0")
				}
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 12,
			check: func(t *testing.T, edges map[edgeKey]int64) {
				if _, ok := edges[edgeKey{"w1", "w1"}]; ok {
					t.Error("Complete: unexpected self-loop")
				}
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			check: func(t *testing.T, edges map[edgeKey]int64) {
				if _, ok := edges[edgeKey{"w3", "w0"}]; ok {
					t.Error("Star: leaves must be terminal")
				}
			},
		},
		{
			name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 30,
		},
		{
			name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}
			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("vertices = %d; want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("edges = %d; want %d", got, tc.wantE)
			}
			if tc.check != nil {
				tc.check(t, edgeWeights(g))
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	words := []phonology.Word{phonology.NewWord("cat", "", nil), phonology.NewWord("sat", "", nil)}
	tests := []struct {
		name  string
		bopts []builder.BuilderOption
		ctor  builder.Constructor
		want  error
	}{
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(1)", nil, builder.Cycle(1), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"RandomSparse p>1", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"vocabulary", []builder.BuilderOption{builder.WithVocabulary(words...)}, builder.Path(3), builder.ErrVocabularyTooSmall},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		if _, err := builder.BuildGraph(tc.bopts, tc.ctor); !errors.Is(err, tc.want) {
			t.Errorf("%s: want %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) map[edgeKey]int64 {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
			builder.RandomSparse(12, 0.3),
		)
		if err != nil {
			t.Fatalf("BuildGraph: %v", err)
		}
		return edgeWeights(g)
	}

	a, b := build(5), build(5)
	if len(a) != len(b) {
		t.Fatalf("same seed gave %d and %d edges", len(a), len(b))
	}
	for k, w := range a {
		if b[k] != w {
			t.Errorf("edge %v: %d vs %d", k, w, b[k])
		}
		if w < 1 || w > 9 {
			t.Errorf("edge %v: weight %d outside [1,9]", k, w)
		}
	}
	if len(a) == 0 || len(a) == 12*11 {
		t.Errorf("p=0.3 produced a degenerate graph with %d edges", len(a))
	}
}

func TestVocabularyAndWeights(t *testing.T) {
	t.Parallel()

	d := fixture.Dictionary()
	cat, sat, mat := d.Word("cat", ""), d.Word("sat", ""), d.Word("mat", "")
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithVocabulary(cat, sat, mat), builder.WithWeightFn(builder.ConstantWeightFn(4))},
		builder.Cycle(3),
	)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if w, ok := g.Weight(mat, cat); !ok || w != 4 {
		t.Errorf("mat→cat = %d, %v; want 4, true", w, ok)
	}
	for _, w := range g.Nodes() {
		if !w.HasPhonemes() {
			t.Errorf("%s lost its pronunciation", w)
		}
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	d := fixture.Dictionary()
	g, err := builder.BuildGraph(nil,
		builder.Text(d, "The cat sat. The cat ran."),
		builder.Text(d, "the cat sat"),
	)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if w, _ := g.Weight(d.Word("the", ""), d.Word("cat", "")); w != 3 {
		t.Errorf("the→cat = %d; want 3", w)
	}
}

func TestWeightFns(t *testing.T) {
	t.Parallel()

	if got := builder.UniformWeightFn(3, 7)(nil); got != 3 {
		t.Errorf("nil rng: got %d; want min", got)
	}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		if w := builder.UniformWeightFn(3, 7)(r); w < 3 || w > 7 {
			t.Fatalf("weight %d outside [3,7]", w)
		}
	}

	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		f()
	}
	mustPanic("ConstantWeightFn(0)", func() { builder.ConstantWeightFn(0) })
	mustPanic("UniformWeightFn(5,2)", func() { builder.UniformWeightFn(5, 2) })
	mustPanic("WithRand(nil)", func() { builder.WithRand(nil) })
	mustPanic("WithVocabulary()", func() { builder.WithVocabulary() })
	mustPanic("WithWordFn(nil)", func() { builder.WithWordFn(nil) })
	mustPanic("VocabularyWordFn out of range", func() {
		builder.VocabularyWordFn([]phonology.Word{phonology.NewWord("a", "", nil)})(1)
	})
}
