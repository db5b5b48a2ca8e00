package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/versegen/bfs"
	"github.com/katalvlaran/versegen/internal/fixture"
	"github.com/katalvlaran/versegen/phonology"
)

func texts(ws []phonology.Word) []string { return fixture.Texts(ws) }

// ExampleRhymeTable lists words reachable from "cat" that rhyme with it.
func ExampleRhymeTable() {
	d := fixture.Dictionary()
	g := fixture.Graph(d, "the cat sat on the mat")

	table, err := bfs.RhymeTable(g, d.Word("cat", ""))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for depth := 1; depth <= 4; depth++ {
		fmt.Println(depth, texts(table[depth]))
	}
	// Output:
	// 1 [sat]
	// 2 []
	// 3 []
	// 4 [mat]
}
