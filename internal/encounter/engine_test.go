package encounter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

func testConfig() *Config {
	return &Config{
		Version: "1.0",
		Settings: Settings{
			NoEncounterChance: 0.15,
			DebuffRollFactor:  0.5,
			TierBonusMax:      map[string]int{"2": 20, "3": 40},
		},
		Locations: map[string]*LocationDef{
			"mirefen_bog":   {DisplayName: "Mirefen Bog", Tier: 1},
			"gloam_hollow":  {DisplayName: "Gloam Hollow", Tier: 2},
			"thorn_reaches": {DisplayName: "Thorn Reaches", Tier: 3},
		},
		Thresholds: ThresholdDef{
			AttackBase:      50,
			AttackPerTier:   10,
			DefenseBase:     90,
			DefensePerTier:  10,
			DamageThreshold: 40,
			DamageBase:      0,
			DamagePerTier:   1,
		},
		Loot: LootSettings{
			RarityWeights:  map[string]float64{"1": 20, "2": 12, "3": 8, "5": 3, "8": 1},
			QuantityRanges: map[string][2]int{"1": {1, 3}, "2": {1, 2}, "3": {1, 1}},
			BonusDropChances: map[string][]float64{
				"2": {0.20},
				"3": {0.30, 0.10},
			},
			SpeciesOverrides: map[string]string{"frost": "frost_gut", "ember": "ember_gut"},
			CriticalRollMin:  98,
		},
		GloamMoon: GloamMoonDef{
			TierWeightExponent: 2.0,
			RaidTierThreshold:  4,
		},
	}
}

func testActor() *domain.Actor {
	return &domain.Actor{
		ID:         "actor-1",
		Username:   "wren",
		Job:        "forager",
		Hearts:     10,
		MaxHearts:  10,
		Stamina:    8,
		MaxStamina: 8,
		Attack:     10,
		Defense:    5,
	}
}

func testPool() []domain.Monster {
	return []domain.Monster{
		{Name: "bog_strider", Tier: 1, Attack: 10, Defense: 5, Locations: []string{"mirefen_bog"}},
		{Name: "frost_lurker", Tier: 2, Attack: 20, Defense: 10, Locations: []string{"mirefen_bog", "gloam_hollow"}},
		{Name: "hollow_tyrant", Tier: 5, Attack: 60, Defense: 40, Locations: []string{"thorn_reaches"}},
	}
}

func testCandidates() []domain.LootCandidate {
	return []domain.LootCandidate{
		{ItemName: "strider_shell", Rarity: 1, Monsters: []string{"bog_strider"}},
		{ItemName: "strider_fang", Rarity: 3, Monsters: []string{"bog_strider"}},
		{ItemName: "tyrant_horn", Rarity: 8, Monsters: []string{"hollow_tyrant"}},
	}
}

func TestResolve_UnknownLocation(t *testing.T) {
	r := NewResolver(testConfig(), 1, nil)

	_, err := r.Resolve(context.Background(), testActor(), "nowhere", testPool(), nil, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownLocation)
}

func TestResolve_EmptyPoolIsNoEncounter(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		r := NewResolver(testConfig(), seed, nil)

		outcome, err := r.Resolve(context.Background(), testActor(), "mirefen_bog", nil, nil, false)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeNoEncounter, outcome.Kind)
	}
}

func TestResolve_OutcomeInvariants(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		r := NewResolver(testConfig(), seed, nil)

		outcome, err := r.Resolve(context.Background(), testActor(), "mirefen_bog", testPool(), testCandidates(), false)
		require.NoError(t, err)

		if outcome.Kind == domain.OutcomeNoEncounter {
			assert.Nil(t, outcome.Monster)
			continue
		}

		assert.GreaterOrEqual(t, outcome.Roll.Final, 1)
		assert.LessOrEqual(t, outcome.Roll.Final, 100)
		assert.NotNil(t, outcome.Monster)

		if outcome.Kind == domain.OutcomeVictory && !outcome.LootPermitted {
			assert.True(t, outcome.DefenseSuccess)
		}
		if outcome.HeartsLost > 0 {
			assert.False(t, outcome.LootPermitted)
		}
	}
}

func TestResolve_GloamMoonRaidSignal(t *testing.T) {
	pool := []domain.Monster{
		{Name: "hollow_tyrant", Tier: 5, Attack: 60, Defense: 40, Locations: []string{"thorn_reaches"}},
	}

	r := NewResolver(testConfig(), 7, nil)

	outcome, err := r.Resolve(context.Background(), testActor(), "thorn_reaches", pool, nil, true)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRaid, outcome.Kind)
	require.NotNil(t, outcome.Monster)
	assert.Equal(t, "hollow_tyrant", outcome.Monster.Name)
	assert.Zero(t, outcome.HeartsLost)
}

func TestResolve_GloamMoonAlwaysEncounters(t *testing.T) {
	pool := []domain.Monster{
		{Name: "bog_strider", Tier: 1, Locations: []string{"mirefen_bog"}},
	}

	for seed := int64(0); seed < 50; seed++ {
		r := NewResolver(testConfig(), seed, nil)

		outcome, err := r.Resolve(context.Background(), testActor(), "mirefen_bog", pool, nil, true)
		require.NoError(t, err)
		assert.NotEqual(t, domain.OutcomeNoEncounter, outcome.Kind, "seed %d", seed)
	}
}

// fakeBoosts implements BoostProvider for tests
type fakeBoosts struct {
	adjustment int
	reroll     bool
}

func (f *fakeBoosts) RollAdjustment(_ context.Context, _ string, roll int) int {
	return roll + f.adjustment
}

func (f *fakeBoosts) FatedRerollActive(_ context.Context, _ string) bool {
	return f.reroll
}

func TestFatedReroll_KeepsLesserDamage(t *testing.T) {
	cfg := testConfig()
	actor := testActor()
	monster := &testPool()[0]

	for seed := int64(0); seed < 100; seed++ {
		r := NewResolver(cfg, seed, nil)

		original := r.resolveAgainst(context.Background(), actor, monster, 1, nil)
		if original.HeartsLost == 0 {
			continue
		}

		// Replay the second pass from the same stream position
		probe := NewResolver(cfg, seed, nil)
		probe.resolveAgainst(context.Background(), actor, monster, 1, nil)
		second := probe.resolveAgainst(context.Background(), actor, monster, 1, nil)

		chosen := r.fatedReroll(context.Background(), actor, monster, 1, nil, original)

		assert.True(t, chosen.Rerolled)
		wantDamage := original.HeartsLost
		if second.HeartsLost < wantDamage {
			wantDamage = second.HeartsLost
		}
		assert.Equal(t, wantDamage, chosen.HeartsLost, "seed %d", seed)
	}
}

func TestFatedReroll_TieBreaksOnHigherRoll(t *testing.T) {
	r := NewResolver(testConfig(), 1, nil)
	monster := &testPool()[0]

	original := domain.EncounterOutcome{
		Kind:       domain.OutcomeDamaged,
		Monster:    monster,
		HeartsLost: 1,
		Roll:       domain.RollTrail{Base: 5, AfterLocation: 5, AfterDebuff: 5, Final: 5},
	}

	chosen := r.fatedReroll(context.Background(), testActor(), monster, 1, nil, original)
	require.True(t, chosen.Rerolled)

	if chosen.HeartsLost == original.HeartsLost {
		// Tie on damage must have kept the higher adjusted roll
		assert.GreaterOrEqual(t, chosen.Roll.Final, original.Roll.Final)
	} else {
		assert.Less(t, chosen.HeartsLost, original.HeartsLost)
	}
}

func TestResolve_RerollOnlyTriggersOnDamage(t *testing.T) {
	boosts := &fakeBoosts{reroll: true, adjustment: 1000}

	// A +1000 boost clamps to roll 100: always a victory, never damage, so
	// the reroll grant must never fire.
	for seed := int64(0); seed < 50; seed++ {
		r := NewResolver(testConfig(), seed, boosts)

		outcome, err := r.Resolve(context.Background(), testActor(), "mirefen_bog", testPool(), testCandidates(), false)
		require.NoError(t, err)
		assert.False(t, outcome.Rerolled, "seed %d", seed)
		assert.Zero(t, outcome.HeartsLost)
	}
}

func TestResolver_TimeInjectable(t *testing.T) {
	r := NewResolver(testConfig(), 1, nil)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed }

	actor := testActor()
	actor.Debuff = &domain.Debuff{Active: true, ExpiresAt: fixed.Add(time.Hour)}

	outcome := r.resolveAgainst(context.Background(), actor, &testPool()[0], 1, nil)
	assert.LessOrEqual(t, outcome.Roll.AfterDebuff, outcome.Roll.AfterLocation)
}
