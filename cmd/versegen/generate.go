package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/versegen/line"
	"github.com/katalvlaran/versegen/phonology"
)

var (
	genScheme string
	genWords  int
	genLines  int
)

// generateCmd prints a rhyme-scheme stanza or a block of unconstrained lines.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a stanza following a rhyme scheme, or a block of lines",
	Long: `Generate a stanza. With --scheme (for example AABB) lines sharing a letter
end in rhyming words. With --lines N, N unconstrained lines are produced.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genScheme, "scheme", "", "Rhyme scheme letters (default: generation.scheme)")
	generateCmd.Flags().IntVar(&genWords, "nwords", 0, "Words per line (default: generation.words)")
	generateCmd.Flags().IntVar(&genLines, "lines", 0, "Generate this many unconstrained lines instead of a scheme")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	nwords := cfg.Generation.Words
	if genWords > 0 {
		nwords = genWords
	}
	scheme := cfg.Generation.Scheme
	if genScheme != "" {
		scheme = genScheme
	}

	g, err := loadGraph()
	if err != nil {
		return err
	}
	b, err := newBuilder(g)
	if err != nil {
		return err
	}

	var lines [][]phonology.Word
	if genLines > 0 {
		lines, err = b.Block(cmd.Context(), genLines, nwords)
	} else {
		lines, err = b.Scheme(cmd.Context(), scheme, nwords)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), line.RenderLines(lines))
	return nil
}
