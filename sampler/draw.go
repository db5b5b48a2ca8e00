package sampler

import (
	"math/rand"

	"github.com/katalvlaran/versegen/core"
	"github.com/katalvlaran/versegen/phonology"
)

// Draw performs one roulette-wheel selection: successor i is chosen with
// probability weight_i / Σweight. It reports false when succ is empty.
//
// Complexity: O(d).
func Draw(succ []core.Successor, rng *rand.Rand) (phonology.Word, bool) {
	if len(succ) == 0 {
		return phonology.Word{}, false
	}
	r := rng
	if r == nil {
		r = NewRand(0)
	}

	var total int64
	for _, s := range succ {
		total += positive(s.Weight)
	}
	target := r.Int63n(total)
	for _, s := range succ {
		target -= positive(s.Weight)
		if target < 0 {
			return s.Word, true
		}
	}

	// Unreachable while weights are positive; keep the last word as a guard.
	return succ[len(succ)-1].Word, true
}

func positive(w int64) int64 {
	if w < 1 {
		return 1
	}
	return w
}
