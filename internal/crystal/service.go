package crystal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/CharacterForge_Go/internal/concurrency"
	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/event"
	"github.com/osse101/CharacterForge_Go/internal/logger"
	"github.com/osse101/CharacterForge_Go/internal/repository"
)

// TierResult reports whether a tier change was accepted
type TierResult struct {
	Accepted bool   `json:"accepted"`
	Report   Report `json:"report"`
}

// Service defines the interface for per-profile crystal builds
type Service interface {
	Config() *Config
	Get(ctx context.Context, profileID string) (*Report, error)
	SetRank(ctx context.Context, profileID, rank string) (*Report, error)
	SetRefinement(ctx context.Context, profileID, refine string) (*Report, error)
	SetTier(ctx context.Context, profileID, quality string, tier int) (*TierResult, error)
	Reset(ctx context.Context, profileID string) (*Report, error)
	Export(ctx context.Context, profileID string) (string, error)
	Evaluate(ctx context.Context, rank, refine string, tiers map[string]int) (*Report, error)
}

// EventPublisher defines the interface for publishing events with retry
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

type service struct {
	cfg       *Config
	store     repository.StateStore
	publisher EventPublisher
	locks     *concurrency.LockManager
}

// NewService creates a new crystal service
func NewService(cfg *Config, store repository.StateStore, publisher EventPublisher, locks *concurrency.LockManager) Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{cfg: cfg, store: store, publisher: publisher, locks: locks}
}

func (s *service) Config() *Config { return s.cfg }

func (s *service) load(ctx context.Context, profileID string) (*Allocator, error) {
	raw, err := s.store.LoadState(ctx, profileID, domain.StateKeyCrystalState)
	if err != nil {
		return nil, fmt.Errorf("failed to load crystal state: %w", err)
	}

	a := NewAllocator(s.cfg)
	if raw == nil {
		return a, nil
	}
	state, ok := DecodeState(raw)
	if !ok {
		logger.ForProfile(ctx, profileID).Debug("Malformed crystal state, using defaults")
	}
	a.Restore(state)
	return a, nil
}

func (s *service) save(ctx context.Context, profileID string, a *Allocator) error {
	data, err := json.Marshal(a.State())
	if err != nil {
		return fmt.Errorf("failed to encode crystal state: %w", err)
	}
	if err := s.store.SaveState(ctx, profileID, domain.StateKeyCrystalState, data); err != nil {
		return fmt.Errorf("failed to save crystal state: %w", err)
	}
	return nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}

// mutate runs fn under the profile lock, then persists and publishes the new state
func (s *service) mutate(ctx context.Context, profileID string, fn func(a *Allocator) error) (*Report, error) {
	unlock := s.locks.Lock(profileID)
	defer unlock()

	a, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if err := fn(a); err != nil {
		return nil, err
	}
	if err := s.save(ctx, profileID, a); err != nil {
		return nil, err
	}

	report := a.Report()
	s.publish(ctx, event.NewCrystalChangedEvent(profileID, report.State, report.Difficulty, report.Fragility.Label))
	return &report, nil
}

func (s *service) Get(ctx context.Context, profileID string) (*Report, error) {
	a, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	report := a.Report()
	return &report, nil
}

func (s *service) SetRank(ctx context.Context, profileID, rank string) (*Report, error) {
	return s.mutate(ctx, profileID, func(a *Allocator) error { return a.SetRank(rank) })
}

func (s *service) SetRefinement(ctx context.Context, profileID, refine string) (*Report, error) {
	return s.mutate(ctx, profileID, func(a *Allocator) error { return a.SetRefinement(refine) })
}

var errTierRejected = errors.New("tier rejected")

func (s *service) SetTier(ctx context.Context, profileID, quality string, tier int) (*TierResult, error) {
	if _, ok := s.cfg.Quality(quality); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownQuality, quality)
	}

	report, err := s.mutate(ctx, profileID, func(a *Allocator) error {
		if !a.TrySetTier(quality, tier) {
			return errTierRejected
		}
		return nil
	})
	if err == nil {
		return &TierResult{Accepted: true, Report: *report}, nil
	}
	if !errors.Is(err, errTierRejected) {
		return nil, err
	}

	// Rejected: state unchanged, nothing to persist
	current, err := s.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	logger.ForProfile(ctx, profileID).Info("Crystal tier rejected", "quality", quality, "desired", tier, "remaining", current.PointsRemaining)
	s.publish(ctx, event.NewCrystalTierRejectedEvent(profileID, quality, tier, current.PointsRemaining))
	return &TierResult{Accepted: false, Report: *current}, nil
}

func (s *service) Reset(ctx context.Context, profileID string) (*Report, error) {
	return s.mutate(ctx, profileID, func(a *Allocator) error {
		a.Reset()
		return nil
	})
}

func (s *service) Export(ctx context.Context, profileID string) (string, error) {
	a, err := s.load(ctx, profileID)
	if err != nil {
		return "", err
	}
	return a.Export(), nil
}

func (s *service) Evaluate(_ context.Context, rank, refine string, tiers map[string]int) (*Report, error) {
	report, err := Evaluate(s.cfg, rank, refine, tiers)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
