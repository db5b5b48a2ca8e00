package bfs_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/versegen/bfs"
)

// TestRhymeTable groups reachable rhymes by distance.
func TestRhymeTable(t *testing.T) {
	g, d := build("cat sat on the mat . the hat . the dog")
	table, err := bfs.RhymeTable(g, d.Word("cat", ""))
	if err != nil {
		t.Fatal(err)
	}
	// cat→sat (1), on (2), the (3), mat/hat/dog (4)
	if got := texts(table[1]); !reflect.DeepEqual(got, []string{"sat"}) {
		t.Errorf("table[1] = %v", got)
	}
	if got := texts(table[4]); !reflect.DeepEqual(got, []string{"hat", "mat"}) {
		t.Errorf("table[4] = %v", got)
	}
	if _, ok := table[0]; ok {
		t.Error("a word must not rhyme with itself")
	}

	limited, err := bfs.RhymeTable(g, d.Word("cat", ""), bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Errorf("depth-limited table = %v", limited)
	}
}

// TestMarkRhymePartners flags only words with a reachable rhyme.
func TestMarkRhymePartners(t *testing.T) {
	g, d := build("the cat sat on a log . the dog")
	if !bfs.HasRhymePartner(g, d.Word("cat", "")) {
		t.Error("cat reaches sat")
	}
	if bfs.HasRhymePartner(g, d.Word("sat", "")) {
		t.Error("nothing after sat rhymes with it")
	}
	if bfs.HasRhymePartner(g, d.Word("zzz", "")) {
		t.Error("unknown word has no partner")
	}

	n, err := bfs.MarkRhymePartners(g)
	if err != nil {
		t.Fatal(err)
	}
	if !g.HasRhymePartner(d.Word("cat", "")) || g.HasRhymePartner(d.Word("log", "")) {
		t.Error("flags not applied")
	}
	if n < 1 {
		t.Errorf("marked = %d", n)
	}
	if _, err := bfs.MarkRhymePartners(nil); err == nil {
		t.Error("nil graph should fail")
	}
}

// TestMarkRhymePartners_ClearsWordsWithoutClass resets stale flags on words
// that cannot rhyme with anything in the graph.
func TestMarkRhymePartners_ClearsWordsWithoutClass(t *testing.T) {
	g, d := build("the cat sat . zebra dog")
	for _, text := range []string{"dog", "zebra", "the"} {
		if err := g.SetRhymePartner(d.Word(text, ""), true); err != nil {
			t.Fatal(err)
		}
	}

	n, err := bfs.MarkRhymePartners(g)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("marked = %d, want 1 (cat)", n)
	}
	for _, text := range []string{"dog", "zebra", "the", "sat"} {
		if g.HasRhymePartner(d.Word(text, "")) {
			t.Errorf("%s flagged", text)
		}
	}
	if !g.HasRhymePartner(d.Word("cat", "")) {
		t.Error("cat reaches sat")
	}
}
