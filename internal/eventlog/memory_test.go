package eventlog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryRepository(start time.Time) (*MemoryRepository, *time.Time) {
	clock := start
	repo := NewMemoryRepository()
	repo.now = func() time.Time { return clock }
	return repo, &clock
}

func TestMemoryRepository_GetEvents(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo, clock := newTestMemoryRepository(start)

	log := func(typ, profile string) {
		require.NoError(t, repo.LogEvent(ctx, Entry{EventType: typ, ProfileID: profile, Payload: json.RawMessage(`{}`)}))
		*clock = clock.Add(time.Hour)
	}
	log("profile.created", "a")
	log("crystal.changed", "a")
	log("crystal.changed", "b")
	log("glyph.selection.changed", "a")

	all, err := repo.GetEvents(ctx, Filter{ProfileID: "a"})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "glyph.selection.changed", all[0].EventType, "newest first")
	assert.Equal(t, int64(4), all[0].ID)

	typed, err := repo.GetEvents(ctx, Filter{ProfileID: "a", EventType: "crystal.changed"})
	require.NoError(t, err)
	require.Len(t, typed, 1)
	assert.Equal(t, int64(2), typed[0].ID)

	limited, err := repo.GetEvents(ctx, Filter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	since, err := repo.GetEvents(ctx, Filter{Since: start.Add(2 * time.Hour)})
	require.NoError(t, err)
	assert.Len(t, since, 2)

	none, err := repo.GetEvents(ctx, Filter{ProfileID: "missing"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryRepository_CleanupOldEvents(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo, clock := newTestMemoryRepository(start)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.LogEvent(ctx, Entry{EventType: "crystal.changed", ProfileID: "a"}))
		*clock = clock.AddDate(0, 0, 1)
	}

	removed, err := repo.CleanupOldEvents(ctx, start.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	left, err := repo.GetEvents(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, int64(3), left[0].ID)
}
