package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CharacterForge_Go/internal/domain"
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

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Profile state event types
const (
	GlyphSkillsChanged     Type = domain.EventTypeGlyphSkillsChanged
	GlyphSelectionChanged  Type = domain.EventTypeGlyphSelectionChanged
	PotionBooksChanged     Type = domain.EventTypePotionBooksChanged
	PotionSelectionChanged Type = domain.EventTypePotionSelectionChanged
	PotionFiltersChanged   Type = domain.EventTypePotionFiltersChanged
	CrystalChanged         Type = domain.EventTypeCrystalChanged
	CrystalTierRejected    Type = domain.EventTypeCrystalTierRejected
	ProfileCreated         Type = domain.EventTypeProfileCreated
	ProfileDeleted         Type = domain.EventTypeProfileDeleted
)

// AllProfileEventTypes lists every type published by the profile services
var AllProfileEventTypes = []Type{
	GlyphSkillsChanged,
	GlyphSelectionChanged,
	PotionBooksChanged,
	PotionSelectionChanged,
	PotionFiltersChanged,
	CrystalChanged,
	CrystalTierRejected,
	ProfileCreated,
	ProfileDeleted,
}

func profileMetadata(profileID string) map[string]interface{} {
	return map[string]interface{}{MetadataKeyProfileID: profileID}
}

// Type-safe event constructors

// NewGlyphSkillsChangedEvent creates a glyph.skills.changed event
func NewGlyphSkillsChangedEvent(profileID string, skills []string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GlyphSkillsChanged,
		Payload: domain.GlyphSkillsChangedPayload{
			ProfileID: profileID,
			Skills:    skills,
			Timestamp: time.Now().Unix(),
		},
		Metadata: profileMetadata(profileID),
	}
}

// NewGlyphSelectionChangedEvent creates a glyph.selection.changed event
func NewGlyphSelectionChangedEvent(profileID string, selection []string, totals domain.GlyphTotals) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GlyphSelectionChanged,
		Payload: domain.GlyphSelectionChangedPayload{
			ProfileID: profileID,
			Selection: selection,
			Mana:      totals.Mana,
			Diff:      totals.Diff,
			Timestamp: time.Now().Unix(),
		},
		Metadata: profileMetadata(profileID),
	}
}

// NewPotionBooksChangedEvent creates a potion.books.changed event
func NewPotionBooksChangedEvent(profileID string, books []string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PotionBooksChanged,
		Payload: domain.PotionBooksChangedPayload{
			ProfileID: profileID,
			Books:     books,
			Timestamp: time.Now().Unix(),
		},
		Metadata: profileMetadata(profileID),
	}
}

// NewPotionSelectionChangedEvent creates a potion.selection.changed event
func NewPotionSelectionChangedEvent(profileID string, sel domain.PotionSelection, result domain.PotionResult) Event {
	payload := domain.PotionSelectionChangedPayload{
		ProfileID:       profileID,
		Selection:       sel,
		TotalDifficulty: result.TotalDifficulty,
		Timestamp:       time.Now().Unix(),
	}
	if result.Recipe != nil {
		payload.Recipe = result.Recipe.Name
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     PotionSelectionChanged,
		Payload:  payload,
		Metadata: profileMetadata(profileID),
	}
}

// NewPotionFiltersChangedEvent creates a potion.filters.changed event
func NewPotionFiltersChangedEvent(profileID string, filters domain.PotionFilters) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PotionFiltersChanged,
		Payload: domain.PotionFiltersChangedPayload{
			ProfileID: profileID,
			Filters:   filters,
			Timestamp: time.Now().Unix(),
		},
		Metadata: profileMetadata(profileID),
	}
}

// NewCrystalChangedEvent creates a crystal.changed event
func NewCrystalChangedEvent(profileID string, state domain.CrystalState, difficulty int, fragility string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CrystalChanged,
		Payload: domain.CrystalChangedPayload{
			ProfileID:  profileID,
			State:      state,
			Difficulty: difficulty,
			Fragility:  fragility,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: profileMetadata(profileID),
	}
}

// NewCrystalTierRejectedEvent creates a crystal.tier.rejected event
func NewCrystalTierRejectedEvent(profileID, quality string, desired, remaining int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CrystalTierRejected,
		Payload: domain.CrystalTierRejectedPayload{
			ProfileID: profileID,
			Quality:   quality,
			Desired:   desired,
			Remaining: remaining,
			Timestamp: time.Now().Unix(),
		},
		Metadata: profileMetadata(profileID),
	}
}

// NewProfileCreatedEvent creates a profile.created event
func NewProfileCreatedEvent(profileID string) Event {
	return newProfileLifecycleEvent(ProfileCreated, profileID)
}

// NewProfileDeletedEvent creates a profile.deleted event
func NewProfileDeletedEvent(profileID string) Event {
	return newProfileLifecycleEvent(ProfileDeleted, profileID)
}

func newProfileLifecycleEvent(typ Type, profileID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    typ,
		Payload: domain.ProfileLifecyclePayload{
			ProfileID: profileID,
			Timestamp: time.Now().Unix(),
		},
		Metadata: profileMetadata(profileID),
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

// Publish publishes an event to all subscribers synchronously
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
