package encounter

import (
	"math"
	"math/rand"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

// selectEncounter filters the monster pool to location/job eligibility and
// probabilistically decides "no encounter" vs. which monster is met.
// Returns nil when nothing is encountered. Pure selection over the pool.
func (r *Resolver) selectEncounter(pool []domain.Monster, locationID, job string, gloamMoon bool) *domain.Monster {
	eligible := make([]domain.Monster, 0, len(pool))
	for i := range pool {
		if pool[i].EligibleAt(locationID, job) {
			eligible = append(eligible, pool[i])
		}
	}

	if len(eligible) == 0 {
		return nil
	}

	if gloamMoon {
		// Heightened threat: every venture meets something, biased high-tier
		return pickTierWeighted(r.rng, eligible, r.cfg.GloamMoon.TierWeightExponent)
	}

	if r.rng.Float64() < r.cfg.Settings.NoEncounterChance {
		return nil
	}

	return &eligible[r.rng.Intn(len(eligible))]
}

// pickTierWeighted draws a monster with weight proportional to tier^exponent.
func pickTierWeighted(rng *rand.Rand, eligible []domain.Monster, exponent float64) *domain.Monster {
	if exponent <= 0 {
		exponent = 1
	}

	var totalWeight float64
	weights := make([]float64, len(eligible))
	for i := range eligible {
		w := math.Pow(float64(eligible[i].Tier), exponent)
		weights[i] = w
		totalWeight += w
	}

	roll := rng.Float64() * totalWeight
	cumulative := 0.0
	for i := range eligible {
		cumulative += weights[i]
		if roll < cumulative {
			return &eligible[i]
		}
	}

	// Fallback: return last candidate
	return &eligible[len(eligible)-1]
}
