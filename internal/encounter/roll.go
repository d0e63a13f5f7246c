package encounter

import (
	"strconv"
	"time"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

// adjustRoll applies the roll modifier sequence in fixed order:
//  1. location-tier random bonus (plus any active roll buff)
//  2. debuff penalty (multiplicative reduction, strictly worsening)
//  3. external boost adjustment
//  4. clamp to [1,100]
//
// The order is a balance artifact preserved for audit parity with rendered
// roll trails; every stage is recorded in the returned RollTrail.
func (r *Resolver) adjustRoll(baseRoll int, actor *domain.Actor, locationTier int, boost func(int) int, now time.Time) domain.RollTrail {
	trail := domain.RollTrail{Base: baseRoll}

	roll := baseRoll
	if maxBonus, ok := r.cfg.Settings.TierBonusMax[strconv.Itoa(locationTier)]; ok && maxBonus > 0 {
		roll += r.rng.Intn(maxBonus) + 1
	}
	roll += int(actor.BuffMagnitude(domain.BuffCategoryRoll, now))
	trail.AfterLocation = roll

	if actor.IsDebuffed(now) {
		roll = int(float64(roll) * r.cfg.Settings.DebuffRollFactor)
	}
	trail.AfterDebuff = roll

	if boost != nil {
		roll = boost(roll)
	}
	trail.Final = clampRoll(roll)

	return trail
}

// clampRoll bounds a roll to [1,100] regardless of modifier extremes.
func clampRoll(roll int) int {
	if roll < 1 {
		return 1
	}
	if roll > 100 {
		return 100
	}
	return roll
}
