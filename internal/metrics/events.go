package metrics

import (
	"context"

	"github.com/mirefen/GloamBot_Go/internal/domain"
	"github.com/mirefen/GloamBot_Go/internal/event"
	"github.com/mirefen/GloamBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events the collector cares about
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.EncounterResolved,
		event.LootAwarded,
		event.ActorKnockedOut,
		event.ActorHealed,
		event.FatedReroll,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.EncounterResolved:
		payload, err := event.DecodePayload[domain.EncounterResolvedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		EncountersResolved.WithLabelValues(string(payload.Kind)).Inc()
		if payload.Rerolled {
			FatedRerollsUsed.Inc()
		}

	case event.LootAwarded:
		payload, err := event.DecodePayload[domain.LootAwardedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		for _, item := range payload.Items {
			LootItemsAwarded.WithLabelValues(item.ItemName).Add(float64(item.Quantity))
		}

	case event.ActorKnockedOut:
		ActorsKnockedOut.Inc()

	case event.ActorHealed:
		ActorsHealed.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
