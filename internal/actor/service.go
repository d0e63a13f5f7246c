package actor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mirefen/GloamBot_Go/internal/domain"
	"github.com/mirefen/GloamBot_Go/internal/logger"
	"github.com/mirefen/GloamBot_Go/internal/repository"
)

// Service defines the interface for actor state operations
type Service interface {
	GetOrRegister(ctx context.Context, platform, platformID, username string) (*domain.Actor, error)
	FindByPlatformID(ctx context.Context, platform, platformID string) (*domain.Actor, error)

	// ApplyOutcome persists the state change a resolved encounter calls for.
	// It is the single write site for encounter damage: callers compute an
	// outcome first and apply it exactly once.
	ApplyOutcome(ctx context.Context, actor *domain.Actor, outcome *domain.EncounterOutcome) (*domain.Actor, error)

	Heal(ctx context.Context, platform, platformID string, hearts int) (*domain.Actor, bool, error)
	AwardLoot(ctx context.Context, actorID string, items []domain.LootItem) error
	GetInventory(ctx context.Context, platform, platformID string) (map[string]int, error)
}

type service struct {
	repo repository.Actor
}

// NewService creates an actor service backed by the given repository.
func NewService(repo repository.Actor) Service {
	return &service{repo: repo}
}

func (s *service) GetOrRegister(ctx context.Context, platform, platformID, username string) (*domain.Actor, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidPlatform(platform) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPlatform, platform)
	}

	existing, err := s.repo.GetActorByPlatformID(ctx, platform, platformID)
	if err == nil {
		return existing, nil
	}

	actor := &domain.Actor{
		ID:         uuid.New().String(),
		DiscordID:  platformID,
		Username:   username,
		Job:        DefaultJob,
		Hearts:     DefaultMaxHearts,
		MaxHearts:  DefaultMaxHearts,
		Stamina:    DefaultMaxStamina,
		MaxStamina: DefaultMaxStamina,
		Attack:     DefaultAttack,
		Defense:    DefaultDefense,
		UpdatedAt:  time.Now(),
	}

	if err := s.repo.UpsertActor(ctx, actor); err != nil {
		return nil, fmt.Errorf("failed to register actor: %w", err)
	}

	log.Info(LogMsgActorRegistered, "actorID", actor.ID, "username", username, "platform", platform)
	return actor, nil
}

func (s *service) FindByPlatformID(ctx context.Context, platform, platformID string) (*domain.Actor, error) {
	if !domain.ValidPlatform(platform) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPlatform, platform)
	}
	return s.repo.GetActorByPlatformID(ctx, platform, platformID)
}

// ApplyOutcome is idempotent for knocked-out actors: once an actor is down,
// further outcomes never reduce hearts again.
func (s *service) ApplyOutcome(ctx context.Context, actor *domain.Actor, outcome *domain.EncounterOutcome) (*domain.Actor, error) {
	log := logger.FromContext(ctx)

	if outcome.HeartsLost <= 0 {
		return actor, nil
	}
	if actor.Immune {
		return actor, nil
	}
	if actor.KnockedOut {
		return actor, nil
	}

	updated, err := s.repo.ApplyDamage(ctx, actor.ID, outcome.HeartsLost)
	if err != nil {
		return nil, fmt.Errorf("failed to apply damage: %w", err)
	}

	log.Info(LogMsgDamageApplied, "actorID", actor.ID, "heartsLost", outcome.HeartsLost, "heartsLeft", updated.Hearts)

	if updated.Hearts == 0 && !updated.KnockedOut {
		if err := s.repo.SetKnockedOut(ctx, actor.ID); err != nil {
			return nil, fmt.Errorf("failed to set knockout: %w", err)
		}
		updated.KnockedOut = true
		log.Warn(LogMsgActorKnockedOut, "actorID", actor.ID)
	}

	return updated, nil
}

// Heal restores hearts, capping at max. Healing a knocked-out actor revives
// them; the second return value reports whether a revive happened.
func (s *service) Heal(ctx context.Context, platform, platformID string, hearts int) (*domain.Actor, bool, error) {
	log := logger.FromContext(ctx)

	if hearts <= 0 {
		return nil, false, fmt.Errorf("%w: heal amount must be positive", domain.ErrInvalidInput)
	}

	actor, err := s.FindByPlatformID(ctx, platform, platformID)
	if err != nil {
		return nil, false, err
	}

	wasKnockedOut := actor.KnockedOut
	updated, err := s.repo.Heal(ctx, actor.ID, hearts)
	if err != nil {
		return nil, false, fmt.Errorf("failed to heal actor: %w", err)
	}

	log.Info(LogMsgActorHealed, "actorID", actor.ID, "hearts", updated.Hearts, "revived", wasKnockedOut)
	return updated, wasKnockedOut, nil
}

func (s *service) AwardLoot(ctx context.Context, actorID string, items []domain.LootItem) error {
	if len(items) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)
	if err := s.repo.AddLoot(ctx, actorID, items); err != nil {
		return fmt.Errorf("failed to award loot: %w", err)
	}

	log.Info(LogMsgLootAwarded, "actorID", actorID, "items", len(items))
	return nil
}

func (s *service) GetInventory(ctx context.Context, platform, platformID string) (map[string]int, error) {
	actor, err := s.FindByPlatformID(ctx, platform, platformID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetInventory(ctx, actor.ID)
}
