package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/versegen/corpus"
	"github.com/katalvlaran/versegen/phonology"
)

var meterDict string

// meterCmd prints the stress pattern and metrical foot of a line.
var meterCmd = &cobra.Command{
	Use:   "meter LINE...",
	Short: "Show the stress pattern and meter of a line",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMeter,
}

func init() {
	meterCmd.Flags().StringVar(&meterDict, "dict", "", "Pronunciation dictionary (default: dictionary)")
}

func runMeter(cmd *cobra.Command, args []string) error {
	d, err := loadDictionary(meterDict)
	if err != nil {
		return err
	}

	var (
		words   []phonology.Word
		unknown []string
	)
	for _, sentence := range corpus.Tokenize(strings.Join(args, " ")) {
		for _, tok := range sentence {
			w, ok := d.Lookup(tok)
			if !ok {
				unknown = append(unknown, tok)
			}
			words = append(words, w)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pattern: %s\n", phonology.LinePattern(words))
	if m, ok := phonology.FindMeter(words); ok {
		fmt.Fprintf(out, "meter:   %s\n", m)
	} else {
		fmt.Fprintln(out, "meter:   irregular")
	}
	if len(unknown) > 0 {
		fmt.Fprintf(out, "unknown: %s\n", strings.Join(unknown, " "))
	}
	return nil
}
