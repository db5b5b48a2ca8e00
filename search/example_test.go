package search_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/versegen/constraint"
	"github.com/katalvlaran/versegen/internal/fixture"
	"github.com/katalvlaran/versegen/search"
)

// ExampleSequence searches a five-word line whose last word must rhyme with
// its first. Only "mat" survives at the last position.
func ExampleSequence() {
	g := fixture.Graph(fixture.Dictionary(), "cat sat on the mat . cat sat on the log")

	preds := []constraint.Predicate{constraint.Is(0, "cat")}
	cons := []constraint.Constraint{constraint.MustConstraint(constraint.Rhyme, 0, 4)}

	res, err := search.Sequence(g, 5, preds, cons, search.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Join(fixture.Texts(res.Words), " "), res.State)
	// Output: cat sat on the mat succeeded
}
