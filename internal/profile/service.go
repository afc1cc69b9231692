package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/CharacterForge_Go/internal/concurrency"
	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/event"
	"github.com/osse101/CharacterForge_Go/internal/logger"
	"github.com/osse101/CharacterForge_Go/internal/repository"
)

// Service defines the interface for profile lifecycle operations
type Service interface {
	Create(ctx context.Context) (*domain.Profile, error)
	Get(ctx context.Context, profileID string) (*domain.Profile, error)
	Delete(ctx context.Context, profileID string) error
	Snapshot(ctx context.Context, profileID string) (*Snapshot, error)
}

// EventPublisher defines the interface for publishing events with retry
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// Snapshot is every stored state document of a profile, keyed by state key.
// Keys that were never written are omitted.
type Snapshot struct {
	Profile domain.Profile             `json:"profile"`
	State   map[string]json.RawMessage `json:"state"`
}

// StateKeys lists the documents included in a snapshot
var StateKeys = []string{
	domain.StateKeyGlyphSkills,
	domain.StateKeyGlyphSelection,
	domain.StateKeyPotionBooks,
	domain.StateKeyPotionSelection,
	domain.StateKeyPotionFilters,
	domain.StateKeyCrystalState,
}

type service struct {
	store     repository.StateStore
	publisher EventPublisher
	locks     *concurrency.LockManager
}

// NewService creates a new profile service. The lock manager should be the
// one shared with the builder services so a delete waits for in-flight edits.
func NewService(store repository.StateStore, publisher EventPublisher, locks *concurrency.LockManager) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{store: store, publisher: publisher, locks: locks}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}

func (s *service) Create(ctx context.Context) (*domain.Profile, error) {
	p, err := s.store.CreateProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	logger.ForProfile(ctx, p.ID).Info("Profile created")
	s.publish(ctx, event.NewProfileCreatedEvent(p.ID))
	return p, nil
}

func (s *service) Get(ctx context.Context, profileID string) (*domain.Profile, error) {
	p, err := s.store.GetProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, profileID string) error {
	unlock := s.locks.Lock(profileID)
	err := s.store.DeleteProfile(ctx, profileID)
	unlock()
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	s.locks.Forget(profileID)

	logger.ForProfile(ctx, profileID).Info("Profile deleted")
	s.publish(ctx, event.NewProfileDeletedEvent(profileID))
	return nil
}

func (s *service) Snapshot(ctx context.Context, profileID string) (*Snapshot, error) {
	p, err := s.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Profile: *p, State: make(map[string]json.RawMessage, len(StateKeys))}
	for _, key := range StateKeys {
		raw, err := s.store.LoadState(ctx, profileID, key)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", key, err)
		}
		if raw == nil {
			continue
		}
		if !json.Valid(raw) {
			logger.ForProfile(ctx, profileID).Debug("Skipping malformed state document", "key", key)
			continue
		}
		snap.State[key] = json.RawMessage(raw)
	}
	return snap, nil
}
