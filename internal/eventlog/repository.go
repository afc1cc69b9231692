package eventlog

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is one recorded profile event
type Entry struct {
	ID        int64           `json:"id"`
	EventType string          `json:"event_type"`
	ProfileID string          `json:"profile_id"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Filter narrows a history query. Zero fields do not filter.
type Filter struct {
	ProfileID string
	EventType string
	Since     time.Time
	Limit     int
}

// Repository defines the storage of the profile activity log
type Repository interface {
	// LogEvent appends an entry; ID and CreatedAt are assigned by the store
	LogEvent(ctx context.Context, entry Entry) error

	// GetEvents returns matching entries, newest first
	GetEvents(ctx context.Context, filter Filter) ([]Entry, error)

	// CleanupOldEvents removes entries created before cutoff
	CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error)
}
