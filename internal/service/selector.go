package service

import (
	"math/rand"

	"github.com/hameda9795/farsi-dutch-bot/internal/domain"
)

// SelectionPolicy holds the strata tuning for recency-biased question
// selection. The shares split the candidate pool by insertion order; the
// weights decide how often each stratum is drawn. The defaults are product
// tuning, not derived values, which is why they live in configuration.
type SelectionPolicy struct {
	OldestShare  float64 // fraction of the pool counted as "oldest" (front)
	NewestShare  float64 // fraction of the pool counted as "newest" (back)
	NewestWeight float64 // probability of drawing from the newest stratum
	MiddleWeight float64 // probability of drawing from the middle stratum
	// the oldest stratum gets the remaining probability mass
}

// DefaultSelectionPolicy biases selection toward recently added words while
// still exercising older ones: 40% newest, 30% middle, 30% oldest.
func DefaultSelectionPolicy() SelectionPolicy {
	return SelectionPolicy{
		OldestShare:  0.3,
		NewestShare:  0.3,
		NewestWeight: 0.4,
		MiddleWeight: 0.3,
	}
}

// Selector picks the next quiz subject from the available pool
type Selector struct {
	policy SelectionPolicy
	rng    *rand.Rand
}

// NewSelector creates a selector. The rand source is injected so tests can
// supply a deterministic sequence.
func NewSelector(policy SelectionPolicy, rng *rand.Rand) *Selector {
	return &Selector{policy: policy, rng: rng}
}

// Pick chooses one word from available, which must be sorted in insertion
// order (oldest first). A stratum that rounds down to empty falls back to
// the whole pool, so Pick always succeeds on a non-empty input.
func (s *Selector) Pick(available []domain.Word) domain.Word {
	n := len(available)
	if n == 1 {
		return available[0]
	}

	oldestEnd := int(float64(n) * s.policy.OldestShare)
	newestStart := int(float64(n) * (1 - s.policy.NewestShare))

	var stratum []domain.Word
	draw := s.rng.Float64()
	switch {
	case draw < s.policy.NewestWeight:
		stratum = available[newestStart:]
	case draw < s.policy.NewestWeight+s.policy.MiddleWeight:
		stratum = available[oldestEnd:newestStart]
	default:
		stratum = available[:oldestEnd]
	}

	if len(stratum) == 0 {
		stratum = available
	}

	return stratum[s.rng.Intn(len(stratum))]
}
