package skeleton_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/versegen/constraint"
	"github.com/katalvlaran/versegen/skeleton"
)

func TestParseLine_Couplet(t *testing.T) {
	n, cons, err := skeleton.ParseLine("___[rh1]\n___[rh1]")
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	want := []constraint.Constraint{{Relation: constraint.Rhyme, Indices: []int{3, 7}}}
	if diff := cmp.Diff(want, cons); diff != "" {
		t.Errorf("constraints mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePoem_GroupsInFirstAppearanceOrder(t *testing.T) {
	poem, err := skeleton.ParsePoem(`
# opening couplet
_[al2]_[al2] [rh1]

__ [rh1 as4] _[as4]
[rh9]
`)
	require.NoError(t, err)

	want := &skeleton.Poem{
		LineLengths: []int{5, 5, 1},
		Length:      11,
		Constraints: []constraint.Constraint{
			{Relation: constraint.Alliteration, Indices: []int{1, 3}},
			{Relation: constraint.Rhyme, Indices: []int{4, 7}},
			{Relation: constraint.Assonance, Indices: []int{7, 9}},
		},
		Unpaired: []string{"rh9"},
	}
	if diff := cmp.Diff(want, poem); diff != "" {
		t.Errorf("poem mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePoem_OperatorAliases(t *testing.T) {
	poem, err := skeleton.ParsePoem("[RH1][rhyme1][st2]_[st2]")
	require.NoError(t, err)
	require.Len(t, poem.Constraints, 2)
	assert.Equal(t, []int{0, 1}, poem.Constraints[0].Indices)
	assert.Equal(t, constraint.StressMatch, poem.Constraints[1].Relation)
	assert.Equal(t, []int{2, 4}, poem.Constraints[1].Indices)
}

func TestParsePoem_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		pos  string
	}{
		{"unknown operator", "__[zz1]", skeleton.ErrUnknownOperator, "1:4"},
		{"missing id", "_[rh]", skeleton.ErrSyntax, "1:5"},
		{"unclosed", "_[rh1\n_", skeleton.ErrSyntax, "1:2"},
		{"empty brackets", "[]", skeleton.ErrSyntax, "1:2"},
		{"stray operator", "_ rh1", skeleton.ErrSyntax, "1:3"},
		{"illegal character", "__\n_*", skeleton.ErrSyntax, "2:2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := skeleton.ParsePoem(tc.in)
			require.ErrorIs(t, err, tc.want)
			var pe *skeleton.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.pos, pe.Pos.String())
		})
	}
}

func TestParsePoem_Empty(t *testing.T) {
	poem, err := skeleton.ParsePoem("  \n\n")
	require.NoError(t, err)
	assert.Zero(t, poem.Length)
	assert.Empty(t, poem.LineLengths)
	assert.Empty(t, poem.Constraints)
}

func TestSplit(t *testing.T) {
	poem := &skeleton.Poem{LineLengths: []int{2, 3}, Length: 5}
	got := skeleton.Split(poem, []string{"a", "b", "c", "d", "e"})
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d", "e"}}, got)

	short := skeleton.Split(poem, []string{"a", "b", "c"})
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, short)
}

func TestLexer_Tokens(t *testing.T) {
	toks, err := skeleton.NewLexer("_[rh12]\n").Tokenize()
	require.NoError(t, err)
	types := make([]skeleton.TokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	want := []skeleton.TokenType{
		skeleton.TokenBlank, skeleton.TokenLBracket, skeleton.TokenOperator,
		skeleton.TokenIdent, skeleton.TokenRBracket, skeleton.TokenNewline, skeleton.TokenEOF,
	}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("token types (-want +got):\n%s", diff)
	}
	assert.Equal(t, `IDENT("12")`, toks[3].String())
}
