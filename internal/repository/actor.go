package repository

import (
	"context"
	"time"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

// Actor defines the interface for actor persistence
type Actor interface {
	UpsertActor(ctx context.Context, actor *domain.Actor) error
	GetActorByPlatformID(ctx context.Context, platform, platformID string) (*domain.Actor, error)
	GetActorByID(ctx context.Context, actorID string) (*domain.Actor, error)
	UpdateActor(ctx context.Context, actor domain.Actor) error

	// ApplyDamage subtracts hearts server-side, flooring at zero. The update
	// is conditional on knocked_out = FALSE so a concurrent knockout can
	// never push hearts below zero or double-apply damage.
	ApplyDamage(ctx context.Context, actorID string, hearts int) (*domain.Actor, error)
	SetKnockedOut(ctx context.Context, actorID string) error

	// Heal adds hearts, capping at max_hearts, and clears knocked_out.
	Heal(ctx context.Context, actorID string, hearts int) (*domain.Actor, error)

	AddLoot(ctx context.Context, actorID string, items []domain.LootItem) error
	GetInventory(ctx context.Context, actorID string) (map[string]int, error)

	GetLastCooldown(ctx context.Context, actorID, action string) (*time.Time, error)
	UpdateCooldown(ctx context.Context, actorID, action string, timestamp time.Time) error
}
