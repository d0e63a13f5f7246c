package actor

import (
	"context"
	"time"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of repository.Actor
// for testing. It lives in this package so service tests and the venture
// service tests can share it without an import cycle.
type FakeRepository struct {
	actors      map[string]*domain.Actor // keyed by actor ID
	inventories map[string]map[string]int
	cooldowns   map[string]map[string]*time.Time // actorID -> action -> timestamp

	// Fail toggles let tests exercise error paths
	FailApplyDamage bool
	FailAddLoot     bool
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		actors:      make(map[string]*domain.Actor),
		inventories: make(map[string]map[string]int),
		cooldowns:   make(map[string]map[string]*time.Time),
	}
}

func (f *FakeRepository) UpsertActor(ctx context.Context, actor *domain.Actor) error {
	if actor.ID == "" {
		actor.ID = "actor-" + actor.Username
	}
	copied := *actor
	f.actors[actor.ID] = &copied
	return nil
}

func (f *FakeRepository) GetActorByPlatformID(ctx context.Context, platform, platformID string) (*domain.Actor, error) {
	for _, a := range f.actors {
		if platform == domain.PlatformDiscord && a.DiscordID == platformID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, domain.ErrActorNotFound
}

func (f *FakeRepository) GetActorByID(ctx context.Context, actorID string) (*domain.Actor, error) {
	a, ok := f.actors[actorID]
	if !ok {
		return nil, domain.ErrActorNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *FakeRepository) UpdateActor(ctx context.Context, actor domain.Actor) error {
	if _, ok := f.actors[actor.ID]; !ok {
		return domain.ErrActorNotFound
	}
	copied := actor
	f.actors[actor.ID] = &copied
	return nil
}

func (f *FakeRepository) ApplyDamage(ctx context.Context, actorID string, hearts int) (*domain.Actor, error) {
	if f.FailApplyDamage {
		return nil, domain.ErrDatabaseError
	}
	a, ok := f.actors[actorID]
	if !ok {
		return nil, domain.ErrActorNotFound
	}
	if !a.KnockedOut {
		a.Hearts -= hearts
		if a.Hearts < 0 {
			a.Hearts = 0
		}
		a.UpdatedAt = time.Now()
	}
	copied := *a
	return &copied, nil
}

func (f *FakeRepository) SetKnockedOut(ctx context.Context, actorID string) error {
	a, ok := f.actors[actorID]
	if !ok {
		return domain.ErrActorNotFound
	}
	a.KnockedOut = true
	a.UpdatedAt = time.Now()
	return nil
}

func (f *FakeRepository) Heal(ctx context.Context, actorID string, hearts int) (*domain.Actor, error) {
	a, ok := f.actors[actorID]
	if !ok {
		return nil, domain.ErrActorNotFound
	}
	a.Hearts += hearts
	if a.Hearts > a.MaxHearts {
		a.Hearts = a.MaxHearts
	}
	a.KnockedOut = false
	a.UpdatedAt = time.Now()
	copied := *a
	return &copied, nil
}

func (f *FakeRepository) AddLoot(ctx context.Context, actorID string, items []domain.LootItem) error {
	if f.FailAddLoot {
		return domain.ErrDatabaseError
	}
	inv, ok := f.inventories[actorID]
	if !ok {
		inv = make(map[string]int)
		f.inventories[actorID] = inv
	}
	for _, item := range items {
		inv[item.ItemName] += item.Quantity
	}
	return nil
}

func (f *FakeRepository) GetInventory(ctx context.Context, actorID string) (map[string]int, error) {
	inv := make(map[string]int)
	for name, qty := range f.inventories[actorID] {
		inv[name] = qty
	}
	return inv, nil
}

func (f *FakeRepository) GetLastCooldown(ctx context.Context, actorID, action string) (*time.Time, error) {
	actions, ok := f.cooldowns[actorID]
	if !ok {
		return nil, nil
	}
	return actions[action], nil
}

func (f *FakeRepository) UpdateCooldown(ctx context.Context, actorID, action string, timestamp time.Time) error {
	actions, ok := f.cooldowns[actorID]
	if !ok {
		actions = make(map[string]*time.Time)
		f.cooldowns[actorID] = actions
	}
	actions[action] = &timestamp
	return nil
}
