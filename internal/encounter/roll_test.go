package encounter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

func TestAdjustRoll_AlwaysClamped(t *testing.T) {
	now := time.Now()

	boosts := []func(int) int{
		nil,
		func(roll int) int { return roll + 100000 },
		func(roll int) int { return roll - 100000 },
		func(roll int) int { return 0 },
	}

	for seed := int64(0); seed < 20; seed++ {
		for _, boost := range boosts {
			for _, tier := range []int{1, 2, 3} {
				r := NewResolver(testConfig(), seed, nil)
				trail := r.adjustRoll(r.rng.Intn(100)+1, testActor(), tier, boost, now)

				assert.GreaterOrEqual(t, trail.Final, 1)
				assert.LessOrEqual(t, trail.Final, 100)
			}
		}
	}
}

func TestAdjustRoll_LocationTierBonus(t *testing.T) {
	now := time.Now()

	// Tier 1 has no configured bonus; tiers 2 and 3 add a positive bonus
	r := NewResolver(testConfig(), 3, nil)
	trail := r.adjustRoll(50, testActor(), 1, nil, now)
	assert.Equal(t, 50, trail.AfterLocation)

	for seed := int64(0); seed < 30; seed++ {
		r2 := NewResolver(testConfig(), seed, nil)
		t2 := r2.adjustRoll(50, testActor(), 2, nil, now)
		assert.Greater(t, t2.AfterLocation, 50)
		assert.LessOrEqual(t, t2.AfterLocation, 70)

		r3 := NewResolver(testConfig(), seed, nil)
		t3 := r3.adjustRoll(50, testActor(), 3, nil, now)
		assert.Greater(t, t3.AfterLocation, 50)
		assert.LessOrEqual(t, t3.AfterLocation, 90)
	}
}

func TestAdjustRoll_DebuffStrictlyWorsens(t *testing.T) {
	now := time.Now()

	healthy := testActor()
	blighted := testActor()
	blighted.Debuff = &domain.Debuff{Active: true, ExpiresAt: now.Add(time.Hour)}

	for seed := int64(0); seed < 50; seed++ {
		a := NewResolver(testConfig(), seed, nil)
		b := NewResolver(testConfig(), seed, nil)

		baseline := a.adjustRoll(50, healthy, 1, nil, now)
		penalized := b.adjustRoll(50, blighted, 1, nil, now)

		assert.Less(t, penalized.Final, baseline.Final, "seed %d", seed)
	}
}

func TestAdjustRoll_ExpiredDebuffIgnored(t *testing.T) {
	now := time.Now()

	actor := testActor()
	actor.Debuff = &domain.Debuff{Active: true, ExpiresAt: now.Add(-time.Minute)}

	r := NewResolver(testConfig(), 1, nil)
	trail := r.adjustRoll(60, actor, 1, nil, now)
	assert.Equal(t, trail.AfterLocation, trail.AfterDebuff)
}

func TestAdjustRoll_RollBuffApplies(t *testing.T) {
	now := time.Now()

	buffed := testActor()
	buffed.Buff = &domain.Buff{Category: domain.BuffCategoryRoll, Magnitude: 15, ExpiresAt: now.Add(time.Hour)}

	r := NewResolver(testConfig(), 1, nil)
	trail := r.adjustRoll(40, buffed, 1, nil, now)
	assert.Equal(t, 55, trail.AfterLocation)
}

func TestAdjustRoll_TrailRecordsBoostStage(t *testing.T) {
	now := time.Now()

	r := NewResolver(testConfig(), 1, nil)
	trail := r.adjustRoll(30, testActor(), 1, func(roll int) int { return roll + 25 }, now)

	assert.Equal(t, 30, trail.Base)
	assert.Equal(t, 30, trail.AfterDebuff)
	assert.Equal(t, 55, trail.Final)
}
