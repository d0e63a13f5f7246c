package encounter

import (
	"time"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

// computeOutcome maps the adjusted roll plus monster and actor stats to a
// discrete outcome. It is pure: actor state is read, never written. Applying
// the result is the actor service's job, so a reroll can compute twice and
// apply once with no compensating writes.
//
// Decision table, first match wins:
//
//	defense success            -> Victory, no damage
//	attack success             -> Victory, loot permitted
//	low roll, damage >= hearts -> KnockedOut
//	low roll                   -> Damaged
//	otherwise                  -> Victory, loot permitted
func (r *Resolver) computeOutcome(actor *domain.Actor, monster *domain.Monster, trail domain.RollTrail, now time.Time) domain.EncounterOutcome {
	t := r.cfg.Thresholds

	attackSuccess := trail.Final+actor.AttackTotal(now) >= t.AttackBase+monster.Tier*t.AttackPerTier
	defenseSuccess := trail.Final+actor.DefenseTotal(now) >= t.DefenseBase+monster.Tier*t.DefensePerTier

	out := domain.EncounterOutcome{
		Monster:        monster,
		Roll:           trail,
		AttackSuccess:  attackSuccess,
		DefenseSuccess: defenseSuccess,
	}

	switch {
	case defenseSuccess:
		out.Kind = domain.OutcomeVictory
		out.LootPermitted = attackSuccess

	case attackSuccess:
		out.Kind = domain.OutcomeVictory
		out.LootPermitted = true

	case trail.Final < t.DamageThreshold:
		damage := t.DamageBase + monster.Tier*t.DamagePerTier
		if damage < 1 {
			damage = 1
		}
		if damage >= actor.Hearts {
			out.Kind = domain.OutcomeKnockedOut
			out.HeartsLost = actor.Hearts // floors at zero, never negative
		} else {
			out.Kind = domain.OutcomeDamaged
			out.HeartsLost = damage
		}

	default:
		out.Kind = domain.OutcomeVictory
		out.LootPermitted = true
	}

	return out
}
