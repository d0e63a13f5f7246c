package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Event types published by the venture pipeline
const (
	EncounterResolved Type = Type(domain.EventTypeEncounterResolved)
	LootAwarded       Type = Type(domain.EventTypeLootAwarded)
	ActorKnockedOut   Type = Type(domain.EventTypeActorKnockedOut)
	ActorHealed       Type = Type(domain.EventTypeActorHealed)
	FatedReroll       Type = Type(domain.EventTypeFatedReroll)
)

// Type-safe event constructors

// NewEncounterResolvedEvent creates an encounter resolution event
func NewEncounterResolvedEvent(actorID, locationID string, outcome *domain.EncounterOutcome) Event {
	monster := ""
	if outcome.Monster != nil {
		monster = outcome.Monster.Name
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    EncounterResolved,
		Payload: domain.EncounterResolvedPayloadV1{
			ActorID:    actorID,
			LocationID: locationID,
			Monster:    monster,
			Kind:       outcome.Kind,
			FinalRoll:  outcome.Roll.Final,
			HeartsLost: outcome.HeartsLost,
			Rerolled:   outcome.Rerolled,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewLootAwardedEvent creates a loot award event
func NewLootAwardedEvent(actorID, monster string, items []domain.LootItem) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LootAwarded,
		Payload: domain.LootAwardedPayloadV1{
			ActorID:   actorID,
			Monster:   monster,
			Items:     items,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewActorKnockedOutEvent creates a knockout event
func NewActorKnockedOutEvent(actorID, monster, locationID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActorKnockedOut,
		Payload: domain.ActorKnockedOutPayloadV1{
			ActorID:    actorID,
			Monster:    monster,
			LocationID: locationID,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewActorHealedEvent creates a heal event
func NewActorHealedEvent(actorID string, hearts int, revived bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActorHealed,
		Payload: domain.ActorHealedPayloadV1{
			ActorID:   actorID,
			Hearts:    hearts,
			Revived:   revived,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewFatedRerollEvent records that a reroll charm fired during resolution
func NewFatedRerollEvent(actorID, locationID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FatedReroll,
		Payload: map[string]interface{}{
			"actor_id":    actorID,
			"location_id": locationID,
			"timestamp":   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// a failing handler never blocks the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
