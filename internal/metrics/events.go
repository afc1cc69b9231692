package metrics

import (
	"context"

	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/event"
	"github.com/osse101/CharacterForge_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all profile events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllProfileEventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.ProfileCreated:
		ProfilesCreated.Inc()

	case event.ProfileDeleted:
		ProfilesDeleted.Inc()

	case event.GlyphSelectionChanged:
		var p domain.GlyphSelectionChangedPayload
		if p, err = event.DecodePayload[domain.GlyphSelectionChangedPayload](evt.Payload); err == nil {
			GlyphSelectionChanges.Inc()
			GlyphSelectionMana.Observe(float64(p.Mana))
		}

	case event.PotionBooksChanged:
		PotionBookChanges.Inc()

	case event.PotionSelectionChanged:
		var p domain.PotionSelectionChangedPayload
		if p, err = event.DecodePayload[domain.PotionSelectionChangedPayload](evt.Payload); err == nil && p.Recipe != "" {
			PotionRecipesMatched.WithLabelValues(p.Recipe).Inc()
		}

	case event.CrystalChanged:
		var p domain.CrystalChangedPayload
		if p, err = event.DecodePayload[domain.CrystalChangedPayload](evt.Payload); err == nil {
			CrystalChanges.Inc()
			CrystalBuildDifficulty.Observe(float64(p.Difficulty))
		}

	case event.CrystalTierRejected:
		var p domain.CrystalTierRejectedPayload
		if p, err = event.DecodePayload[domain.CrystalTierRejectedPayload](evt.Payload); err == nil {
			CrystalTierRejections.WithLabelValues(p.Quality).Inc()
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
