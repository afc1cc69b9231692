package profile

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/event"
	"github.com/osse101/CharacterForge_Go/internal/repository"
)

const testProfileID = "4b1f0c8e-0000-4000-8000-000000000004"

func eventOfType(typ event.Type) interface{} {
	return mock.MatchedBy(func(e event.Event) bool { return e.Type == typ })
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	store := new(MockStateStore)
	pub := new(MockPublisher)
	created := &domain.Profile{ID: testProfileID, CreatedAt: time.Now()}

	store.On("CreateProfile", ctx).Return(created, nil)
	pub.On("PublishWithRetry", ctx, eventOfType(event.ProfileCreated)).Return()

	p, err := NewService(store, pub, nil).Create(ctx)

	require.NoError(t, err)
	assert.Equal(t, testProfileID, p.ID)
	store.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestService_CreateStoreError(t *testing.T) {
	ctx := context.Background()
	store := new(MockStateStore)
	pub := new(MockPublisher)
	store.On("CreateProfile", ctx).Return(nil, fmt.Errorf("%w: boom", domain.ErrStateStore))

	_, err := NewService(store, pub, nil).Create(ctx)

	assert.True(t, errors.Is(err, domain.ErrStateStore))
	pub.AssertNotCalled(t, "PublishWithRetry", mock.Anything, mock.Anything)
}

func TestService_GetNotFound(t *testing.T) {
	ctx := context.Background()
	store := new(MockStateStore)
	store.On("GetProfile", ctx, "missing").Return(nil, fmt.Errorf("%w: missing", domain.ErrProfileNotFound))

	_, err := NewService(store, nil, nil).Get(ctx, "missing")

	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))
}

func TestService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		storeErr  error
		wantErr   error
		published bool
	}{
		{"deleted", nil, nil, true},
		{"unknown profile", fmt.Errorf("%w: x", domain.ErrProfileNotFound), domain.ErrProfileNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := new(MockStateStore)
			pub := new(MockPublisher)
			store.On("DeleteProfile", ctx, testProfileID).Return(tt.storeErr)
			if tt.published {
				pub.On("PublishWithRetry", ctx, eventOfType(event.ProfileDeleted)).Return()
			}

			err := NewService(store, pub, nil).Delete(ctx, testProfileID)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				pub.AssertNotCalled(t, "PublishWithRetry", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			pub.AssertExpectations(t)
		})
	}
}

func TestService_Snapshot(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStateStore()
	p, err := store.CreateProfile(ctx)
	require.NoError(t, err)

	require.NoError(t, store.SaveState(ctx, p.ID, domain.StateKeyPotionBooks, []byte(`["Herbier de base"]`)))
	require.NoError(t, store.SaveState(ctx, p.ID, domain.StateKeyGlyphSelection, []byte(`not json`)))

	snap, err := NewService(store, nil, nil).Snapshot(ctx, p.ID)

	require.NoError(t, err)
	assert.Equal(t, p.ID, snap.Profile.ID)
	require.Len(t, snap.State, 1, "unwritten and malformed documents are omitted")
	assert.JSONEq(t, `["Herbier de base"]`, string(snap.State[domain.StateKeyPotionBooks]))
}

func TestService_SnapshotUnknownProfile(t *testing.T) {
	_, err := NewService(repository.NewMemoryStateStore(), nil, nil).Snapshot(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))
}
