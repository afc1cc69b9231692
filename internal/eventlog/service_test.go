package eventlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/event"
)

const testProfileID = "6f1c7c5e-7f4e-4a57-9a35-1d0f3f7a0b11"

func TestService_Subscribe(t *testing.T) {
	bus := new(MockEventBus)
	for _, et := range event.AllProfileEventTypes {
		bus.On("Subscribe", et, mock.Anything).Return()
	}

	err := NewService(new(MockRepository)).Subscribe(bus)

	require.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestService_HandleEvent(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo).(*service)

	repo.On("LogEvent", mock.Anything, mock.MatchedBy(func(e Entry) bool {
		return e.EventType == string(event.PotionBooksChanged) &&
			e.ProfileID == testProfileID &&
			gjson.GetBytes(e.Payload, "books").Raw == `["Herbier"]`
	})).Return(nil)

	evt := event.NewPotionBooksChangedEvent(testProfileID, []string{"Herbier"})
	require.NoError(t, svc.handleEvent(context.Background(), evt))
	repo.AssertExpectations(t)
}

func TestService_HandleEvent_NoProfile(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo).(*service)

	err := svc.handleEvent(context.Background(), event.Event{Type: event.CrystalChanged})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "LogEvent", mock.Anything, mock.Anything)
}

func TestService_HandleEvent_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo).(*service)
	repo.On("LogEvent", mock.Anything, mock.Anything).Return(errors.New("db down"))

	err := svc.handleEvent(context.Background(), event.NewProfileCreatedEvent(testProfileID))

	assert.EqualError(t, err, "db down")
}

func TestService_History(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
		wantErr   bool
	}{
		{name: "default limit", limit: 0, wantLimit: DefaultHistoryLimit},
		{name: "explicit limit", limit: 5, wantLimit: 5},
		{name: "max limit", limit: MaxHistoryLimit, wantLimit: MaxHistoryLimit},
		{name: "negative", limit: -1, wantErr: true},
		{name: "too large", limit: MaxHistoryLimit + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := NewService(repo)

			if !tt.wantErr {
				want := Filter{ProfileID: testProfileID, EventType: "crystal.changed", Limit: tt.wantLimit}
				repo.On("GetEvents", mock.Anything, want).Return([]Entry{{ID: 1}}, nil)
			}

			entries, err := svc.History(context.Background(), testProfileID, "crystal.changed", tt.limit)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Len(t, entries, 1)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_CleanupOldEvents(t *testing.T) {
	repo := new(MockRepository)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := &service{repo: repo, now: func() time.Time { return now }}

	repo.On("CleanupOldEvents", mock.Anything, now.AddDate(0, 0, -30)).Return(int64(4), nil)

	count, err := svc.CleanupOldEvents(context.Background(), 30)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
