// Package fixture provides a small pronunciation dictionary and graph helpers
// shared by package tests.
package fixture

import (
	"strings"

	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/corpus"
	"github.com/katalvlaran/versegen/phonology"
)

// Dict is a syllabified CMU-style dictionary covering the test corpora.
const Dict = `# fixture dictionary
THE  DH AH0
A  AH0
AND  AH0 N D
ON  AA1 N
IN  IH0 N
CAT  K AE1 T
SAT  S AE1 T
MAT  M AE1 T
HAT  HH AE1 T
BAT  B AE1 T
DOG  D AO1 G
LOG  L AO1 G
FOG  F AO1 G
FROG  F R AO1 G
SAW  S AO1
RAN  R AE1 N
MAN  M AE1 N
CAN  K AE1 N
BIG  B IH1 G
PIG  P IH1 G
SUN  S AH1 N
FUN  F AH1 N
RUN  R AH1 N
SEES  S IY1 Z
APPLE  AE1 - P AH0 L
BANANA  B AH0 - N AE1 - N AH0
ABOUT  AH0 - B AW1 T
`

// Dictionary parses Dict. It panics on error since Dict is a constant.
func Dictionary() *phonology.Dictionary {
	d, err := phonology.LoadDictionary(strings.NewReader(Dict))
	if err != nil {
		panic(err)
	}
	return d
}

// Graph loads text into a new transition graph through corpus.Loader, the
// same path the CLI uses. It panics on error since inputs are test constants.
func Graph(d *phonology.Dictionary, text string) *core.Graph {
	g := core.NewGraph()
	ld, err := corpus.NewLoader(g, d)
	if err != nil {
		panic(err)
	}
	if _, err = ld.LoadText(text); err != nil {
		panic(err)
	}
	return g
}

// Texts extracts the word texts.
func Texts(ws []phonology.Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Text
	}
	return out
}
