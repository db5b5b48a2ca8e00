package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/versegen/bfs"
	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/internal/fixture"
	"github.com/katalvlaran/versegen/phonology"
)

func build(text string) (*core.Graph, *phonology.Dictionary) {
	d := fixture.Dictionary()
	return fixture.Graph(d, text), d
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	d := fixture.Dictionary()
	// nil graph
	if _, err := bfs.BFS(nil, d.Word("cat", "")); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := core.NewGraph()
	if _, err := bfs.BFS(g, d.Word("cat", "")); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	_ = g.AddVertex(d.Word("cat", ""))
	if _, err := bfs.BFS(g, d.Word("cat", ""), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_OrderAndDepths checks layering and reproducible order on a small chain.
func TestBFS_OrderAndDepths(t *testing.T) {
	g, d := build("the cat sat on the mat . the dog sat")
	res, err := bfs.BFS(g, d.Word("the", ""))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"the", "cat", "dog", "mat", "sat", "on"}
	if got := fixture.Texts(res.Order); !reflect.DeepEqual(got, want) {
		t.Errorf("Order = %v; want %v", got, want)
	}
	if dep, _ := res.DepthOf(d.Word("on", "")); dep != 3 {
		t.Errorf("Depth[on] = %d; want 3", dep)
	}
	path, err := res.PathTo(d.Word("on", ""))
	if err != nil {
		t.Fatal(err)
	}
	if got := fixture.Texts(path); !reflect.DeepEqual(got, []string{"the", "cat", "sat", "on"}) {
		t.Errorf("PathTo(on) = %v", got)
	}
	if _, err := res.PathTo(d.Word("frog", "")); err == nil {
		t.Error("PathTo(unreached) should fail")
	}
}

// TestBFS_DirectedEdges ensures edges are only followed forwards.
func TestBFS_DirectedEdges(t *testing.T) {
	g, d := build("cat sat")
	res, err := bfs.BFS(g, d.Word("sat", ""))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 1 {
		t.Errorf("Order = %v; want only sat", fixture.Texts(res.Order))
	}
}

// TestBFS_MaxDepthAndFilter limits and prunes the walk.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g, d := build("the cat sat on the mat")
	res, err := bfs.BFS(g, d.Word("the", ""), bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if got := fixture.Texts(res.Order); !reflect.DeepEqual(got, []string{"the", "cat", "mat"}) {
		t.Errorf("MaxDepth(1) Order = %v", got)
	}

	skipCat := bfs.WithFilterNeighbor(func(_, nbr phonology.Word) bool { return nbr.Text != "cat" })
	res, err = bfs.BFS(g, d.Word("the", ""), skipCat)
	if err != nil {
		t.Fatal(err)
	}
	if got := fixture.Texts(res.Order); !reflect.DeepEqual(got, []string{"the", "mat"}) {
		t.Errorf("filtered Order = %v", got)
	}
}

// TestBFS_HookAndCancel propagates hook errors and honors a cancelled context.
func TestBFS_HookAndCancel(t *testing.T) {
	g, d := build("the cat sat")
	boom := errors.New("boom")
	_, err := bfs.BFS(g, d.Word("the", ""), bfs.WithOnVisit(func(w phonology.Word, _ int) error {
		if w.Text == "cat" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("hook error: got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = bfs.BFS(g, d.Word("the", ""), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled ctx: got %v", err)
	}
}
