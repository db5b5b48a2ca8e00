package sampler

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/phonology"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("sampler: unknown order policy")

// Policy selects how successors are ordered before the search visits them.
type Policy int

const (
	// Roulette orders successors by exponential keys scaled by 1/weight, so
	// heavier edges tend to come first. Equivalent to repeated roulette-wheel
	// draws without replacement.
	Roulette Policy = iota

	// Uniform ignores weights and shuffles uniformly.
	Uniform
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Roulette:
		return "roulette"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "roulette" / "uniform" (case-insensitive) to a Policy.
// The empty string selects Roulette.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "roulette", "weighted":
		return Roulette, nil
	case "uniform", "random":
		return Uniform, nil
	default:
		return Roulette, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// keyed pairs a word with its sort key.
type keyed struct {
	word phonology.Word
	key  float64
}

// Order returns every successor word in a fresh random order under policy.
// The result is always a permutation of the input; nothing is cached, so two
// calls with the same input yield independent orders.
// If rng==nil, a deterministic default stream is used (seed==0 policy).
//
// Complexity: O(d log d) for Roulette, O(d) for Uniform.
func Order(succ []core.Successor, policy Policy, rng *rand.Rand) []phonology.Word {
	r := rng
	if r == nil {
		r = NewRand(0)
	}
	if policy == Uniform {
		return uniformOrder(succ, r)
	}
	return rouletteOrder(succ, r)
}

// rouletteOrder draws key_i = Exp(1) / w_i and sorts ascending. The smallest
// key wins with probability w_i / Σw, and the same holds recursively for the
// remainder, without ever computing Σw.
func rouletteOrder(succ []core.Successor, r *rand.Rand) []phonology.Word {
	items := make([]keyed, len(succ))
	for i, s := range succ {
		w := float64(s.Weight)
		if w <= 0 {
			w = 1
		}
		items[i] = keyed{word: s.Word, key: r.ExpFloat64() / w}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].key < items[j].key })

	out := make([]phonology.Word, len(items))
	for i := range items {
		out[i] = items[i].word
	}
	return out
}

// uniformOrder performs a Fisher–Yates shuffle on a copy of the words.
func uniformOrder(succ []core.Successor, r *rand.Rand) []phonology.Word {
	out := make([]phonology.Word, len(succ))
	for i, s := range succ {
		out[i] = s.Word
	}
	for i := len(out) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Shuffle shuffles words in place (Fisher–Yates) using rng.
func Shuffle(words []phonology.Word, rng *rand.Rand) {
	r := rng
	if r == nil {
		r = NewRand(0)
	}
	for i := len(words) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		words[i], words[j] = words[j], words[i]
	}
}
