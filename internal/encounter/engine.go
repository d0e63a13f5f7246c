package encounter

import (
	"context"
	"math/rand"
	"time"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

// BoostProvider supplies externally-granted roll adjustments and reroll
// grants for an actor. Injected so the resolver is testable with fakes.
type BoostProvider interface {
	// RollAdjustment returns the boosted roll for a raw roll value.
	RollAdjustment(ctx context.Context, actorID string, roll int) int
	// FatedRerollActive reports whether the actor holds a fated reroll grant.
	FatedRerollActive(ctx context.Context, actorID string) bool
}

// Resolver runs the encounter pipeline. It is pure logic with no DB or
// service dependencies; all state mutation happens in the actor service.
type Resolver struct {
	cfg    *Config
	rng    *rand.Rand
	boosts BoostProvider
	now    func() time.Time
}

// NewResolver creates a resolver seeded for one resolution pass.
func NewResolver(cfg *Config, seed int64, boosts BoostProvider) *Resolver {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return &Resolver{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		boosts: boosts,
		now:    time.Now,
	}
}

// Resolve runs the full pipeline for one venture:
// selector -> roll adjuster -> outcome resolver -> loot weigher.
// The returned outcome is transient; callers apply it to actor state once.
func (r *Resolver) Resolve(ctx context.Context, actor *domain.Actor, locationID string, pool []domain.Monster, candidates []domain.LootCandidate, gloamMoon bool) (domain.EncounterOutcome, error) {
	tier := r.cfg.LocationTier(locationID)
	if tier == 0 {
		return domain.EncounterOutcome{}, domain.ErrUnknownLocation
	}

	monster := r.selectEncounter(pool, locationID, actor.Job, gloamMoon)
	if monster == nil {
		return domain.EncounterOutcome{Kind: domain.OutcomeNoEncounter}, nil
	}

	if gloamMoon && monster.Tier >= r.cfg.GloamMoon.RaidTierThreshold {
		// Raid orchestration is an external collaborator's job
		return domain.EncounterOutcome{Kind: domain.OutcomeRaid, Monster: monster}, nil
	}

	outcome := r.resolveAgainst(ctx, actor, monster, tier, candidates)

	if outcome.HeartsLost > 0 && r.boosts != nil && r.boosts.FatedRerollActive(ctx, actor.ID) {
		outcome = r.fatedReroll(ctx, actor, monster, tier, candidates, outcome)
	}

	return outcome, nil
}

// resolveAgainst runs roll adjustment, outcome computation, and loot
// selection against an already-chosen monster.
func (r *Resolver) resolveAgainst(ctx context.Context, actor *domain.Actor, monster *domain.Monster, locationTier int, candidates []domain.LootCandidate) domain.EncounterOutcome {
	now := r.now()

	var boost func(int) int
	if r.boosts != nil {
		boost = func(roll int) int {
			return r.boosts.RollAdjustment(ctx, actor.ID, roll)
		}
	}

	baseRoll := r.rng.Intn(100) + 1
	trail := r.adjustRoll(baseRoll, actor, locationTier, boost, now)

	outcome := r.computeOutcome(actor, monster, trail, now)
	if outcome.LootPermitted {
		outcome.Loot = r.selectLoot(monster, candidates, trail.Final, actor.Job, locationTier)
	}

	return outcome
}

// fatedReroll performs one additional full resolution and keeps whichever
// outcome has strictly less damage, tie-broken by higher adjusted roll.
// Both passes are pure computations; the winner is applied exactly once by
// the caller, so no damage reconciliation is needed.
func (r *Resolver) fatedReroll(ctx context.Context, actor *domain.Actor, monster *domain.Monster, locationTier int, candidates []domain.LootCandidate, original domain.EncounterOutcome) domain.EncounterOutcome {
	second := r.resolveAgainst(ctx, actor, monster, locationTier, candidates)

	chosen := original
	if second.HeartsLost < original.HeartsLost ||
		(second.HeartsLost == original.HeartsLost && second.Roll.Final > original.Roll.Final) {
		chosen = second
	}

	chosen.Rerolled = true
	return chosen
}
