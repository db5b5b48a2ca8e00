// SPDX-License-Identifier: MIT
// Package: versegen/builder
//
// impl_text.go - Text(d, text): bigram graph of a literal text.
//
// Contract:
//   - Tokenization and weighting follow the corpus package: sentences split on
//     terminal punctuation, one weight unit per observed bigram.
//   - The word scheme and weight options do not apply.

package builder

import (
	"fmt"

	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/corpus"
	"github.com/katalvlaran/versegen/phonology"
)

const methodText = "Text"

// Text returns a Constructor that loads text into the graph, resolving
// words through d (nil: no phoneme data).
func Text(d *phonology.Dictionary, text string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		ld, err := corpus.NewLoader(g, d)
		if err != nil {
			return fmt.Errorf("%s: %v: %w", methodText, err, ErrConstructFailed)
		}
		if _, err = ld.LoadText(text); err != nil {
			return fmt.Errorf("%s: %v: %w", methodText, err, ErrConstructFailed)
		}
		return nil
	}
}
