package encounter

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config represents the full encounter balance configuration
type Config struct {
	Version    string                  `json:"version"`
	Settings   Settings                `json:"settings"`
	Locations  map[string]*LocationDef `json:"locations"`
	Thresholds ThresholdDef            `json:"thresholds"`
	Loot       LootSettings            `json:"loot"`
	GloamMoon  GloamMoonDef            `json:"gloam_moon"`
}

// Settings holds tunable parameters for the resolver
type Settings struct {
	NoEncounterChance float64 `json:"no_encounter_chance"`
	// DebuffRollFactor scales the roll downward for debuffed actors.
	// Must be in (0,1) so the penalty strictly worsens outcome likelihood.
	DebuffRollFactor float64 `json:"debuff_roll_factor"`
	// TierBonusMax maps location tier (as string, JSON keys) to the max
	// random roll bonus granted at that tier.
	TierBonusMax map[string]int `json:"tier_bonus_max"`
}

// LocationDef defines one venture location
type LocationDef struct {
	DisplayName string `json:"display_name"`
	Tier        int    `json:"tier"` // 1..3, higher is richer
}

// ThresholdDef holds the game-balance curve for outcome resolution.
// These are tunables, not structural contracts.
type ThresholdDef struct {
	AttackBase      int `json:"attack_base"`
	AttackPerTier   int `json:"attack_per_tier"`
	DefenseBase     int `json:"defense_base"`
	DefensePerTier  int `json:"defense_per_tier"`
	DamageThreshold int `json:"damage_threshold"` // rolls below this take damage
	DamageBase      int `json:"damage_base"`
	DamagePerTier   int `json:"damage_per_tier"`
}

// LootSettings holds the loot weigher tunables
type LootSettings struct {
	// RarityWeights maps rarity (as string) to roulette weight.
	RarityWeights map[string]float64 `json:"rarity_weights"`
	// QuantityRanges maps rarity (as string) to [min,max] quantity.
	QuantityRanges map[string][2]int `json:"quantity_ranges"`
	// BonusDropChances maps location tier (as string) to a list of
	// independent extra-draw probabilities.
	BonusDropChances map[string][]float64 `json:"bonus_drop_chances"`
	// SpeciesOverrides maps a monster-name substring to a forced item.
	SpeciesOverrides map[string]string `json:"species_overrides"`
	// CriticalRollMin: final rolls at or above this grant one extra draw.
	CriticalRollMin int `json:"critical_roll_min"`
}

// GloamMoonDef configures the heightened-threat mode
type GloamMoonDef struct {
	// TierWeightExponent biases the monster draw toward high tiers:
	// weight = tier^exponent.
	TierWeightExponent float64 `json:"tier_weight_exponent"`
	// RaidTierThreshold: monsters at or above this tier signal a raid.
	RaidTierThreshold int `json:"raid_tier_threshold"`
}

// LoadConfig loads and validates the encounter configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read encounter config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse encounter config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid encounter config: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Settings.NoEncounterChance < 0 || cfg.Settings.NoEncounterChance >= 1 {
		return fmt.Errorf("no_encounter_chance must be in [0,1)")
	}

	if cfg.Settings.DebuffRollFactor <= 0 || cfg.Settings.DebuffRollFactor >= 1 {
		return fmt.Errorf("debuff_roll_factor must be in (0,1)")
	}

	if len(cfg.Locations) == 0 {
		return fmt.Errorf("no locations defined")
	}

	for id, loc := range cfg.Locations {
		if loc.Tier < 1 || loc.Tier > 3 {
			return fmt.Errorf("location %q tier %d out of range [1,3]", id, loc.Tier)
		}
	}

	if cfg.Thresholds.DamageThreshold <= 0 || cfg.Thresholds.DamageThreshold > 100 {
		return fmt.Errorf("damage_threshold must be in (0,100]")
	}

	if len(cfg.Loot.RarityWeights) == 0 {
		return fmt.Errorf("no rarity weights defined")
	}

	for rarity, weight := range cfg.Loot.RarityWeights {
		if weight <= 0 {
			return fmt.Errorf("rarity %s weight must be positive", rarity)
		}
	}

	for rarity, r := range cfg.Loot.QuantityRanges {
		if r[0] < 1 || r[1] < r[0] {
			return fmt.Errorf("rarity %s quantity range [%d,%d] invalid", rarity, r[0], r[1])
		}
	}

	for tier, chances := range cfg.Loot.BonusDropChances {
		for _, c := range chances {
			if c < 0 || c > 1 {
				return fmt.Errorf("tier %s bonus drop chance %.2f out of range", tier, c)
			}
		}
	}

	if cfg.GloamMoon.RaidTierThreshold < 1 {
		return fmt.Errorf("raid_tier_threshold must be positive")
	}

	return nil
}

// LocationTier returns the tier of a known location, or 0 if unknown.
func (c *Config) LocationTier(locationID string) int {
	loc, ok := c.Locations[locationID]
	if !ok {
		return 0
	}
	return loc.Tier
}

// rarityWeight returns the roulette weight for a rarity, defaulting to the
// lowest configured weight so unknown rarities stay rare rather than common.
func (c *Config) rarityWeight(rarity int) float64 {
	if w, ok := c.Loot.RarityWeights[strconv.Itoa(rarity)]; ok {
		return w
	}
	lowest := 0.0
	for _, w := range c.Loot.RarityWeights {
		if lowest == 0 || w < lowest {
			lowest = w
		}
	}
	return lowest
}

// quantityRange returns the [min,max] quantity for a rarity, defaulting to a
// single item.
func (c *Config) quantityRange(rarity int) (int, int) {
	if r, ok := c.Loot.QuantityRanges[strconv.Itoa(rarity)]; ok {
		return r[0], r[1]
	}
	return 1, 1
}
