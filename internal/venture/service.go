package venture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mirefen/GloamBot_Go/internal/actor"
	"github.com/mirefen/GloamBot_Go/internal/bestiary"
	"github.com/mirefen/GloamBot_Go/internal/cooldown"
	"github.com/mirefen/GloamBot_Go/internal/domain"
	"github.com/mirefen/GloamBot_Go/internal/encounter"
	"github.com/mirefen/GloamBot_Go/internal/event"
	"github.com/mirefen/GloamBot_Go/internal/logger"
	"github.com/mirefen/GloamBot_Go/internal/metrics"
)

// BoostSource extends the resolver's boost view with grant consumption.
type BoostSource interface {
	encounter.BoostProvider
	ConsumeFatedReroll(actorID string) bool
}

// Result is the outcome of one venture, rendered for chat plus the raw
// outcome for API consumers.
type Result struct {
	Message string                  `json:"message"`
	Outcome domain.EncounterOutcome `json:"outcome"`
	Actor   *domain.Actor           `json:"actor"`
}

// Service orchestrates the venture pipeline: cooldown gate, encounter
// resolution, single-site state application, loot award, and events.
type Service interface {
	HandleVenture(ctx context.Context, platform, platformID, username, locationID string) (*Result, error)
	HandleHeal(ctx context.Context, platform, platformID string, hearts int) (*domain.Actor, error)

	// Locations returns location IDs mapped to display names.
	Locations() map[string]string

	// GloamMoonActive reports whether heightened-threat resolution applies.
	GloamMoonActive() bool
}

type service struct {
	cfg       *encounter.Config
	actors    actor.Service
	bestiary  bestiary.Provider
	cooldowns cooldown.Service
	boosts    BoostSource
	publisher event.Bus

	gloamForced bool

	// Injected for determinism in tests
	seedFn func() int64
	nowFn  func() time.Time
}

// NewService creates a venture service.
func NewService(cfg *encounter.Config, actors actor.Service, provider bestiary.Provider, cooldowns cooldown.Service, boosts BoostSource, publisher event.Bus, gloamForced bool) Service {
	return &service{
		cfg:         cfg,
		actors:      actors,
		bestiary:    provider,
		cooldowns:   cooldowns,
		boosts:      boosts,
		publisher:   publisher,
		gloamForced: gloamForced,
		seedFn:      func() int64 { return time.Now().UnixNano() },
		nowFn:       time.Now,
	}
}

func (s *service) Locations() map[string]string {
	locations := make(map[string]string, len(s.cfg.Locations))
	for id, def := range s.cfg.Locations {
		locations[id] = def.DisplayName
	}
	return locations
}

func (s *service) GloamMoonActive() bool {
	if s.gloamForced {
		return true
	}
	days := s.nowFn().UTC().Unix() / (24 * 60 * 60)
	return days%GloamMoonCycleDays == 0
}

// HandleVenture runs one venture for the actor with atomic cooldown
// enforcement. A failed resolution rolls the cooldown back.
func (s *service) HandleVenture(ctx context.Context, platform, platformID, username, locationID string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgVentureCalled, "platform", platform, "platformID", platformID, "location", locationID)

	if s.cfg.LocationTier(locationID) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownLocation, locationID)
	}

	ventureActor, err := s.actors.GetOrRegister(ctx, platform, platformID, username)
	if err != nil {
		return nil, err
	}

	if ventureActor.KnockedOut {
		return &Result{
			Message: fmt.Sprintf(MsgAlreadyDown, ventureActor.Username),
			Outcome: domain.EncounterOutcome{Kind: domain.OutcomeNoEncounter},
			Actor:   ventureActor,
		}, nil
	}

	var result *Result
	err = s.cooldowns.EnforceCooldown(ctx, ventureActor.ID, domain.ActionVenture, func() error {
		var execErr error
		result, execErr = s.executeVenture(ctx, ventureActor, locationID)
		return execErr
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgVentureResolved, "actorID", ventureActor.ID, "kind", result.Outcome.Kind, "roll", result.Outcome.Roll.Final)
	return result, nil
}

func (s *service) executeVenture(ctx context.Context, ventureActor *domain.Actor, locationID string) (*Result, error) {
	log := logger.FromContext(ctx)

	pool := s.bestiary.MonstersAt(locationID, ventureActor.Job)
	candidates := s.bestiary.Candidates()
	gloamMoon := s.GloamMoonActive()

	resolver := encounter.NewResolver(s.cfg, s.seedFn(), s.boosts)
	outcome, err := resolver.Resolve(ctx, ventureActor, locationID, pool, candidates, gloamMoon)
	if err != nil {
		return nil, err
	}

	metrics.VenturesPerformed.Inc()

	if outcome.Rerolled {
		s.boosts.ConsumeFatedReroll(ventureActor.ID)
		log.Info(LogMsgRerollConsumed, "actorID", ventureActor.ID)
		s.publish(ctx, event.NewFatedRerollEvent(ventureActor.ID, locationID))
	}

	// Single write site: the chosen outcome is applied exactly once. A
	// failure here means the reported outcome and stored state diverged.
	updated, err := s.actors.ApplyOutcome(ctx, ventureActor, &outcome)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStateInconsistent, err)
	}

	if outcome.LootPermitted && len(outcome.Loot) > 0 {
		if err := s.actors.AwardLoot(ctx, updated.ID, outcome.Loot); err != nil {
			// Loot is additive; losing it is an annoyance, not an
			// inconsistency with the reported outcome kind.
			log.Error(LogMsgLootAwardFailed, "actorID", updated.ID, "error", err)
		} else {
			s.publish(ctx, event.NewLootAwardedEvent(updated.ID, outcome.Monster.Name, outcome.Loot))
		}
	}

	s.publish(ctx, event.NewEncounterResolvedEvent(updated.ID, locationID, &outcome))
	if outcome.Kind == domain.OutcomeKnockedOut {
		s.publish(ctx, event.NewActorKnockedOutEvent(updated.ID, outcome.Monster.Name, locationID))
	}

	return &Result{
		Message: s.formatMessage(updated, locationID, &outcome),
		Outcome: outcome,
		Actor:   updated,
	}, nil
}

// HandleHeal restores hearts with heal-cooldown enforcement.
func (s *service) HandleHeal(ctx context.Context, platform, platformID string, hearts int) (*domain.Actor, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgHealCalled, "platform", platform, "platformID", platformID, "hearts", hearts)

	healTarget, err := s.actors.FindByPlatformID(ctx, platform, platformID)
	if err != nil {
		return nil, err
	}

	var healed *domain.Actor
	var revived bool
	err = s.cooldowns.EnforceCooldown(ctx, healTarget.ID, domain.ActionHeal, func() error {
		var healErr error
		healed, revived, healErr = s.actors.Heal(ctx, platform, platformID, hearts)
		return healErr
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.NewActorHealedEvent(healed.ID, healed.Hearts, revived))
	return healed, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Event publish failed", "type", evt.Type, "error", err)
	}
}

func (s *service) formatMessage(ventureActor *domain.Actor, locationID string, outcome *domain.EncounterOutcome) string {
	location := locationID
	if def, ok := s.cfg.Locations[locationID]; ok && def.DisplayName != "" {
		location = def.DisplayName
	}

	var msg string
	switch outcome.Kind {
	case domain.OutcomeNoEncounter:
		msg = fmt.Sprintf(MsgNoEncounter, ventureActor.Username, location)

	case domain.OutcomeRaid:
		msg = fmt.Sprintf(MsgRaid, s.bestiary.DisplayName(outcome.Monster.Name), location)

	case domain.OutcomeVictory:
		monster := s.bestiary.DisplayName(outcome.Monster.Name)
		if len(outcome.Loot) > 0 {
			msg = fmt.Sprintf(MsgVictoryLoot, ventureActor.Username, monster, location, outcome.Roll.Final, s.formatLoot(outcome.Loot))
		} else {
			msg = fmt.Sprintf(MsgVictoryEmpty, ventureActor.Username, monster, location, outcome.Roll.Final)
		}

	case domain.OutcomeDamaged:
		msg = fmt.Sprintf(MsgDamaged, s.bestiary.DisplayName(outcome.Monster.Name), location, ventureActor.Username, outcome.HeartsLost, outcome.Roll.Final)

	case domain.OutcomeKnockedOut:
		msg = fmt.Sprintf(MsgKnockedOut, ventureActor.Username, s.bestiary.DisplayName(outcome.Monster.Name), location)
	}

	if outcome.Rerolled {
		msg += MsgRerollNote
	}
	return msg
}

func (s *service) formatLoot(items []domain.LootItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", s.bestiary.DisplayName(item.ItemName), item.Quantity))
	}
	return strings.Join(parts, ", ")
}
