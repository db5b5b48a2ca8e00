package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/versegen/bfs"
	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/phonology"
)

var rhymesDepth int

// rhymesCmd lists rhyming words reachable from WORD, grouped by distance.
var rhymesCmd = &cobra.Command{
	Use:   "rhymes WORD",
	Short: "List rhymes reachable from a word in the graph, by distance",
	Args:  cobra.ExactArgs(1),
	RunE:  runRhymes,
}

func init() {
	rhymesCmd.Flags().IntVar(&rhymesDepth, "depth", 0, "Maximum distance (0: unlimited)")
}

// findWord returns the graph vertex spelled text. When several tagged
// variants exist the first in key order wins.
func findWord(g *core.Graph, text string) (phonology.Word, bool) {
	text = strings.ToLower(text)
	for _, w := range g.Nodes() {
		if w.Text == text {
			return w, true
		}
	}
	return phonology.Word{}, false
}

func runRhymes(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}
	w, ok := findWord(g, args[0])
	if !ok {
		return fmt.Errorf("%q is not in the graph", args[0])
	}

	table, err := bfs.RhymeTable(g, w, bfs.WithContext(cmd.Context()), bfs.WithMaxDepth(rhymesDepth))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(table) == 0 {
		fmt.Fprintf(out, "no rhymes reachable from %q\n", w.Text)
		return nil
	}
	depths := make([]int, 0, len(table))
	for d := range table {
		depths = append(depths, d)
	}
	sort.Ints(depths)
	for _, d := range depths {
		texts := make([]string, len(table[d]))
		for i, r := range table[d] {
			texts[i] = r.Text
		}
		fmt.Fprintf(out, "%d: %s\n", d, strings.Join(texts, " "))
	}
	return nil
}
