package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CharacterForge_Go/internal/database/generated"
	"github.com/osse101/CharacterForge_Go/internal/domain"
	"github.com/osse101/CharacterForge_Go/internal/eventlog"
)

type eventLogRepository struct {
	q *generated.Queries
}

// NewEventLogRepository creates a new PostgreSQL activity log repository
func NewEventLogRepository(db *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{q: generated.New(db)}
}

// LogEvent stores an event in the database
func (r *eventLogRepository) LogEvent(ctx context.Context, entry eventlog.Entry) error {
	payload := entry.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	err := r.q.LogProfileEvent(ctx, generated.LogProfileEventParams{
		EventType: entry.EventType,
		ProfileID: entry.ProfileID,
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStateStore, ErrMsgFailedToLogEvent, err)
	}
	return nil
}

// GetEvents retrieves events based on filter criteria, newest first
func (r *eventLogRepository) GetEvents(ctx context.Context, filter eventlog.Filter) ([]eventlog.Entry, error) {
	params := generated.ListProfileEventsParams{
		ProfileID: pgtype.Text{String: filter.ProfileID, Valid: filter.ProfileID != ""},
		EventType: pgtype.Text{String: filter.EventType, Valid: filter.EventType != ""},
		Since:     pgtype.Timestamptz{Time: filter.Since, Valid: !filter.Since.IsZero()},
	}
	if filter.Limit > 0 {
		params.RowLimit = pgtype.Int4{Int32: int32(filter.Limit), Valid: true}
	}

	rows, err := r.q.ListProfileEvents(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStateStore, ErrMsgFailedToGetEvents, err)
	}

	events := make([]eventlog.Entry, 0, len(rows))
	for _, row := range rows {
		events = append(events, eventlog.Entry{
			ID:        row.ID,
			EventType: row.EventType,
			ProfileID: row.ProfileID,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt.Time,
		})
	}
	return events, nil
}

// CleanupOldEvents removes events created before cutoff
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	removed, err := r.q.DeleteProfileEventsBefore(ctx, pgtype.Timestamptz{Time: cutoff, Valid: true})
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrStateStore, ErrMsgFailedToCleanupEvents, err)
	}
	return removed, nil
}
