package eventlog

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps the activity log in process memory
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []Entry
	nextID  int64
	now     func() time.Time
}

// NewMemoryRepository creates an empty in-memory activity log
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

func (m *MemoryRepository) LogEvent(_ context.Context, entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	entry.ID = m.nextID
	entry.CreatedAt = m.now()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MemoryRepository) GetEvents(_ context.Context, filter Filter) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []Entry{}
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]
		if filter.ProfileID != "" && e.ProfileID != filter.ProfileID {
			continue
		}
		if filter.EventType != "" && e.EventType != filter.EventType {
			continue
		}
		if !filter.Since.IsZero() && e.CreatedAt.Before(filter.Since) {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (m *MemoryRepository) CleanupOldEvents(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.entries[:0]
	for _, e := range m.entries {
		if !e.CreatedAt.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	removed := int64(len(m.entries) - len(kept))
	m.entries = kept
	return removed, nil
}
