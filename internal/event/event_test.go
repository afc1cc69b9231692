package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := CrystalChanged
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := CrystalChanged
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := CrystalChanged

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestConstructors_CarryProfileMetadata(t *testing.T) {
	events := []Event{
		NewGlyphSkillsChangedEvent("p-1", []string{"Basique 1"}),
		NewGlyphSelectionChangedEvent("p-1", []string{"🔥 Feu"}, domain.GlyphTotals{Mana: 1, Diff: 5}),
		NewPotionBooksChangedEvent("p-1", []string{"Herbier de base"}),
		NewPotionSelectionChangedEvent("p-1", domain.NewPotionSelection(), domain.PotionResult{}),
		NewPotionFiltersChangedEvent("p-1", domain.NewPotionFilters()),
		NewCrystalChangedEvent("p-1", domain.CrystalState{Rank: domain.RankEclat}, 20, "Faible (5)"),
		NewCrystalTierRejectedEvent("p-1", domain.QualityPuissance, 5, 0),
		NewProfileCreatedEvent("p-1"),
		NewProfileDeletedEvent("p-1"),
	}

	require.Len(t, events, len(AllProfileEventTypes))

	for i, evt := range events {
		assert.Equal(t, EventSchemaVersion, evt.Version)
		assert.Equal(t, AllProfileEventTypes[i], evt.Type)
		assert.Equal(t, "p-1", evt.GetMetadataValue(MetadataKeyProfileID))
	}
}

func TestNewPotionSelectionChangedEvent_RecipeName(t *testing.T) {
	recipe := &domain.Recipe{Name: "Potion de soin"}
	evt := NewPotionSelectionChangedEvent("p-1", domain.PotionSelection{Binder: "Eau pure"}, domain.PotionResult{TotalDifficulty: 7, Recipe: recipe})

	payload, err := DecodePayload[domain.PotionSelectionChangedPayload](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "Potion de soin", payload.Recipe)
	assert.Equal(t, 7, payload.TotalDifficulty)
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"profile_id": "p-4", "quality": "portee", "desired": 3}
	payload, err := DecodePayload[domain.CrystalTierRejectedPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, "p-4", payload.ProfileID)
	assert.Equal(t, 3, payload.Desired)
}

func TestDecodePayload_FromStoredJSON(t *testing.T) {
	raw := json.RawMessage(`{"profile_id":"p-5","books":["Herbier"]}`)

	payload, err := DecodePayload[domain.PotionBooksChangedPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Herbier"}, payload.Books)

	payload, err = DecodePayload[domain.PotionBooksChangedPayload]([]byte(`{"books":[]}`))
	require.NoError(t, err)
	assert.Empty(t, payload.Books)
}

func TestDecodePayload_Errors(t *testing.T) {
	_, err := DecodePayload[domain.CrystalChangedPayload](nil)
	assert.ErrorContains(t, err, ErrMsgDecodePayload)

	_, err = DecodePayload[domain.CrystalChangedPayload](json.RawMessage(`{not json`))
	assert.ErrorContains(t, err, ErrMsgDecodePayload)
}

func TestGetMetadataValue_NonMap(t *testing.T) {
	assert.Nil(t, Event{Metadata: "x"}.GetMetadataValue("profile_id"))
	assert.Nil(t, Event{}.GetMetadataValue("profile_id"))
}
