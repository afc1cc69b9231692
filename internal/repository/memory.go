package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

type memoryProfile struct {
	profile domain.Profile
	state   map[string][]byte
}

// MemoryStateStore is an in-process StateStore. Stored documents are copied
// on the way in and out.
type MemoryStateStore struct {
	mu       sync.RWMutex
	profiles map[string]*memoryProfile
	now      func() time.Time
}

// NewMemoryStateStore creates an empty in-memory store
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		profiles: make(map[string]*memoryProfile),
		now:      time.Now,
	}
}

func (s *MemoryStateStore) CreateProfile(_ context.Context) (*domain.Profile, error) {
	p := domain.Profile{ID: uuid.NewString(), CreatedAt: s.now().UTC()}

	s.mu.Lock()
	s.profiles[p.ID] = &memoryProfile{profile: p, state: make(map[string][]byte)}
	s.mu.Unlock()

	return &p, nil
}

func (s *MemoryStateStore) GetProfile(_ context.Context, profileID string) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mp, ok := s.profiles[profileID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	p := mp.profile
	return &p, nil
}

func (s *MemoryStateStore) DeleteProfile(_ context.Context, profileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[profileID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	delete(s.profiles, profileID)
	return nil
}

func (s *MemoryStateStore) LoadState(_ context.Context, profileID, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mp, ok := s.profiles[profileID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	v, ok := mp.state[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryStateStore) SaveState(_ context.Context, profileID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mp, ok := s.profiles[profileID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	mp.state[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStateStore) Ping(_ context.Context) error { return nil }
