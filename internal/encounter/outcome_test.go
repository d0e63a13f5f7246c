package encounter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

func trailWithFinal(final int) domain.RollTrail {
	return domain.RollTrail{Base: final, AfterLocation: final, AfterDebuff: final, Final: final}
}

func TestComputeOutcome_HighRollIsVictoryWithLoot(t *testing.T) {
	r := NewResolver(testConfig(), 1, nil)
	monster := &domain.Monster{Name: "bog_strider", Tier: 1}

	// Tier 1, roll 95, no buffs/debuffs: victory, loot permitted
	out := r.computeOutcome(testActor(), monster, trailWithFinal(95), time.Now())

	assert.Equal(t, domain.OutcomeVictory, out.Kind)
	assert.True(t, out.AttackSuccess)
	assert.True(t, out.LootPermitted)
	assert.Zero(t, out.HeartsLost)
}

func TestComputeOutcome_DefenseSuccessBlocksDamage(t *testing.T) {
	r := NewResolver(testConfig(), 1, nil)
	monster := &domain.Monster{Name: "bog_strider", Tier: 1}

	actor := testActor()
	actor.Defense = 80 // defense threshold tier 1 is 100

	// Roll 30 is below the damage threshold, but defense carries the day
	out := r.computeOutcome(actor, monster, trailWithFinal(30), time.Now())

	assert.Equal(t, domain.OutcomeVictory, out.Kind)
	assert.True(t, out.DefenseSuccess)
	assert.Zero(t, out.HeartsLost)
}

func TestComputeOutcome_LowRollTakesDamage(t *testing.T) {
	r := NewResolver(testConfig(), 1, nil)
	monster := &domain.Monster{Name: "frost_lurker", Tier: 2}

	actor := testActor()
	actor.Attack = 0
	actor.Defense = 0

	out := r.computeOutcome(actor, monster, trailWithFinal(10), time.Now())

	assert.Equal(t, domain.OutcomeDamaged, out.Kind)
	assert.Equal(t, 2, out.HeartsLost) // tier 2 monster deals 2 hearts
	assert.False(t, out.LootPermitted)
}

func TestComputeOutcome_DamageExceedingHeartsIsKnockout(t *testing.T) {
	r := NewResolver(testConfig(), 1, nil)
	monster := &domain.Monster{Name: "frost_lurker", Tier: 3}

	actor := testActor()
	actor.Attack = 0
	actor.Defense = 0
	actor.Hearts = 1

	out := r.computeOutcome(actor, monster, trailWithFinal(5), time.Now())

	assert.Equal(t, domain.OutcomeKnockedOut, out.Kind)
	// Recorded loss equals remaining hearts so applied hearts floor at zero
	assert.Equal(t, 1, out.HeartsLost)
}

func TestComputeOutcome_MidRollIsVictory(t *testing.T) {
	r := NewResolver(testConfig(), 1, nil)
	monster := &domain.Monster{Name: "bog_strider", Tier: 1}

	actor := testActor()
	actor.Attack = 0
	actor.Defense = 0

	// Above the damage threshold but below every success threshold
	out := r.computeOutcome(actor, monster, trailWithFinal(45), time.Now())

	assert.Equal(t, domain.OutcomeVictory, out.Kind)
	assert.True(t, out.LootPermitted)
	assert.False(t, out.AttackSuccess)
}

func TestComputeOutcome_BuffsRaiseStats(t *testing.T) {
	r := NewResolver(testConfig(), 1, nil)
	monster := &domain.Monster{Name: "frost_lurker", Tier: 2}
	now := time.Now()

	bare := testActor()
	bare.Attack = 0

	buffed := testActor()
	buffed.Attack = 0
	buffed.Buff = &domain.Buff{Category: domain.BuffCategoryAttack, Magnitude: 30, ExpiresAt: now.Add(time.Hour)}

	// Attack threshold tier 2 is 70: roll 55 fails bare, passes with +30
	assert.False(t, r.computeOutcome(bare, monster, trailWithFinal(55), now).AttackSuccess)
	assert.True(t, r.computeOutcome(buffed, monster, trailWithFinal(55), now).AttackSuccess)
}
