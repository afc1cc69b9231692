package repository

import (
	"context"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// StateStore defines the interface for profile and builder state persistence.
// Values are opaque JSON documents addressed by (profile, key).
type StateStore interface {
	CreateProfile(ctx context.Context) (*domain.Profile, error)
	GetProfile(ctx context.Context, profileID string) (*domain.Profile, error)
	DeleteProfile(ctx context.Context, profileID string) error

	// LoadState returns nil, nil when the key has never been written.
	// It returns domain.ErrProfileNotFound when the profile does not exist.
	LoadState(ctx context.Context, profileID, key string) ([]byte, error)
	SaveState(ctx context.Context, profileID, key string, value []byte) error

	Ping(ctx context.Context) error
}
