package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/versegen/line"
	"github.com/katalvlaran/versegen/skeleton"
)

var (
	skelPattern string
	skelFile    string
)

// skeletonCmd fills a constraint skeleton such as "_ _ [rh1]\n_ _ [rh1]".
var skeletonCmd = &cobra.Command{
	Use:   "skeleton",
	Short: "Fill a poem skeleton of slots and constraint groups",
	Long: `Fill a poem skeleton. Each line holds slots: "_" for a free word, or a
bracket of constraint groups such as [rh1] or [al2 as3]. Slots sharing a group
must rhyme (rh), alliterate (al), share a stressed vowel (as) or share a stress
pattern (st). Groups may span lines. A literal "\n" in --pattern separates lines.`,
	Args: cobra.NoArgs,
	RunE: runSkeleton,
}

func init() {
	skeletonCmd.Flags().StringVarP(&skelPattern, "pattern", "p", "", "Skeleton text")
	skeletonCmd.Flags().StringVarP(&skelFile, "file", "f", "", "Read the skeleton from a file")
	skeletonCmd.MarkFlagsMutuallyExclusive("pattern", "file")
	skeletonCmd.MarkFlagsOneRequired("pattern", "file")
}

func runSkeleton(cmd *cobra.Command, args []string) error {
	text := strings.ReplaceAll(skelPattern, `\n`, "\n")
	if skelFile != "" {
		data, err := os.ReadFile(skelFile)
		if err != nil {
			return fmt.Errorf("read skeleton: %w", err)
		}
		text = string(data)
	}

	poem, err := skeleton.ParsePoem(text)
	if err != nil {
		return err
	}
	if len(poem.Unpaired) > 0 {
		logger.Warn("constraint groups used once are ignored", zap.Strings("groups", poem.Unpaired))
	}

	g, err := loadGraph()
	if err != nil {
		return err
	}
	b, err := newBuilder(g)
	if err != nil {
		return err
	}
	lines, err := b.Skeleton(poem)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), line.RenderLines(lines))
	return nil
}
