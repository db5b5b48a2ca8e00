package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/versegen/internal/fixture"
	"github.com/katalvlaran/versegen/phonology"
)

// TestGraph_UsesCorpusTokenizer feeds text only the corpus tokenizer
// normalizes: mixed case, trailing punctuation and "!" terminals.
func TestGraph_UsesCorpusTokenizer(t *testing.T) {
	d := fixture.Dictionary()
	g := fixture.Graph(d, "The cat sat! the CAT, ran. Zebra")

	w, ok := g.Weight(d.Word("the", ""), d.Word("cat", ""))
	require.True(t, ok)
	assert.Equal(t, int64(2), w)

	_, ok = g.Weight(d.Word("sat", ""), d.Word("the", ""))
	assert.False(t, ok, "sentences do not chain")
	assert.True(t, g.HasVertex(d.Word("zebra", "")))
	assert.Equal(t, 5, g.VertexCount())
}

func TestTexts(t *testing.T) {
	d := fixture.Dictionary()
	ws := []phonology.Word{d.Word("cat", ""), d.Word("sat", "")}
	assert.Equal(t, []string{"cat", "sat"}, fixture.Texts(ws))
}
