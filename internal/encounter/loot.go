package encounter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

// selectLoot draws zero or more loot items for a defeated monster.
// Candidates are filtered by monster association and job inclusion, then one
// item is drawn via rarity-weighted roulette. Higher location tiers may append
// extra independent draws; certain species force a deterministic substitution.
// An empty filtered list yields no loot, never an error.
func (r *Resolver) selectLoot(monster *domain.Monster, candidates []domain.LootCandidate, finalRoll int, job string, locationTier int) []domain.LootItem {
	if item, ok := r.speciesOverride(monster.Name); ok {
		return []domain.LootItem{{ItemName: item, Quantity: 1}}
	}

	eligible := make([]domain.LootCandidate, 0, len(candidates))
	for i := range candidates {
		if candidates[i].DroppedBy(monster.Name) && candidates[i].AllowedForJob(job) {
			eligible = append(eligible, candidates[i])
		}
	}

	if len(eligible) == 0 {
		return nil
	}

	loot := []domain.LootItem{r.drawOne(eligible)}

	// Extra independent draws, not quantity increases on the primary item
	for _, chance := range r.cfg.Loot.BonusDropChances[strconv.Itoa(locationTier)] {
		if r.rng.Float64() < chance {
			loot = append(loot, r.drawOne(eligible))
		}
	}

	if r.cfg.Loot.CriticalRollMin > 0 && finalRoll >= r.cfg.Loot.CriticalRollMin {
		loot = append(loot, r.drawOne(eligible))
	}

	return loot
}

// drawOne performs cumulative-weight roulette selection over the candidates
// and rolls a quantity from the rarity's configured range.
func (r *Resolver) drawOne(eligible []domain.LootCandidate) domain.LootItem {
	var totalWeight float64
	weights := make([]float64, len(eligible))
	for i := range eligible {
		w := r.cfg.rarityWeight(eligible[i].Rarity)
		weights[i] = w
		totalWeight += w
	}

	picked := &eligible[len(eligible)-1]
	roll := r.rng.Float64() * totalWeight
	cumulative := 0.0
	for i := range eligible {
		cumulative += weights[i]
		if roll < cumulative {
			picked = &eligible[i]
			break
		}
	}

	min, max := r.cfg.quantityRange(picked.Rarity)
	quantity := min
	if max > min {
		quantity += r.rng.Intn(max - min + 1)
	}

	return domain.LootItem{ItemName: picked.ItemName, Quantity: quantity}
}

// speciesOverride returns the forced drop for monsters whose name matches a
// configured pattern. Patterns are checked in sorted order so the result is
// stable when several match.
func (r *Resolver) speciesOverride(monsterName string) (string, bool) {
	if len(r.cfg.Loot.SpeciesOverrides) == 0 {
		return "", false
	}

	patterns := make([]string, 0, len(r.cfg.Loot.SpeciesOverrides))
	for p := range r.cfg.Loot.SpeciesOverrides {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)

	lower := strings.ToLower(monsterName)
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return r.cfg.Loot.SpeciesOverrides[p], true
		}
	}

	return "", false
}
