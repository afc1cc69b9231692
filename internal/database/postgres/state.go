package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CharacterForge_Go/internal/database/generated"
	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// StateRepository implements repository.StateStore on Postgres
type StateRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *pgxpool.Pool) *StateRepository {
	return &StateRepository{
		db: db,
		q:  generated.New(db),
	}
}

// CreateProfile inserts a profile with a fresh ID
func (r *StateRepository) CreateProfile(ctx context.Context) (*domain.Profile, error) {
	row, err := r.q.CreateProfile(ctx, uuid.New())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStateStore, ErrMsgFailedToCreateProfile, err)
	}
	return toProfile(row), nil
}

// GetProfile retrieves a profile by ID
func (r *StateRepository) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	id, err := parseProfileID(profileID)
	if err != nil {
		return nil, err
	}

	row, err := r.q.GetProfile(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStateStore, ErrMsgFailedToGetProfile, err)
	}
	return toProfile(row), nil
}

// DeleteProfile removes a profile and, by cascade, its state
func (r *StateRepository) DeleteProfile(ctx context.Context, profileID string) error {
	id, err := parseProfileID(profileID)
	if err != nil {
		return err
	}

	affected, err := r.q.DeleteProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStateStore, ErrMsgFailedToDeleteProfile, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	return nil
}

// LoadState returns the stored document, or nil when the key was never written
func (r *StateRepository) LoadState(ctx context.Context, profileID, key string) ([]byte, error) {
	id, err := parseProfileID(profileID)
	if err != nil {
		return nil, err
	}

	value, err := r.q.GetProfileState(ctx, generated.GetProfileStateParams{
		ProfileID: id,
		StateKey:  key,
	})
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStateStore, ErrMsgFailedToLoadState, err)
	}

	// No row: either the key was never written or the profile is gone
	exists, err := r.q.ProfileExists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStateStore, ErrMsgFailedToLoadState, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	return nil, nil
}

// SaveState upserts a state document
func (r *StateRepository) SaveState(ctx context.Context, profileID, key string, value []byte) error {
	id, err := parseProfileID(profileID)
	if err != nil {
		return err
	}

	err = r.q.UpsertProfileState(ctx, generated.UpsertProfileStateParams{
		ProfileID: id,
		StateKey:  key,
		Value:     value,
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeForeignKeyViolation {
		return fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStateStore, ErrMsgFailedToSaveState, err)
	}
	return nil
}

// Ping checks the connection
func (r *StateRepository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStateStore, err)
	}
	return nil
}

func toProfile(row generated.Profile) *domain.Profile {
	return &domain.Profile{
		ID:        row.ProfileID.String(),
		CreatedAt: row.CreatedAt.Time,
	}
}

// parseProfileID rejects malformed IDs as unknown profiles instead of sending
// them to the database
func parseProfileID(profileID string) (uuid.UUID, error) {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	return id, nil
}
