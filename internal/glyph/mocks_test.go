package glyph

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/event"
)

// MockStateStore implements repository.StateStore for testing
type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) CreateProfile(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockStateStore) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockStateStore) DeleteProfile(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockStateStore) LoadState(ctx context.Context, profileID, key string) ([]byte, error) {
	args := m.Called(ctx, profileID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStateStore) SaveState(ctx context.Context, profileID, key string, value []byte) error {
	args := m.Called(ctx, profileID, key, value)
	return args.Error(0)
}

func (m *MockStateStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPublisher implements EventPublisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}

// staticProvider serves a fixed catalog and counts lookups
type staticProvider struct {
	catalog *Catalog
	calls   int
}

func (p *staticProvider) GlyphCatalog(_ context.Context) *Catalog {
	p.calls++
	return p.catalog
}
