// Code generated by sqlc. DO NOT EDIT.
// versions:
//   sqlc v1.30.0
// source: profile_events.sql

package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const deleteProfileEventsBefore = `-- name: DeleteProfileEventsBefore :execrows
DELETE FROM profile_events
WHERE created_at < $1
`

func (q *Queries) DeleteProfileEventsBefore(ctx context.Context, createdAt pgtype.Timestamptz) (int64, error) {
	result, err := q.db.Exec(ctx, deleteProfileEventsBefore, createdAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listProfileEvents = `-- name: ListProfileEvents :many
SELECT id, event_type, profile_id, payload, created_at
FROM profile_events
WHERE ($1::text IS NULL OR profile_id = $1)
  AND ($2::text IS NULL OR event_type = $2)
  AND ($3::timestamptz IS NULL OR created_at >= $3)
ORDER BY created_at DESC, id DESC
LIMIT $4::int
`

type ListProfileEventsParams struct {
	ProfileID pgtype.Text
	EventType pgtype.Text
	Since     pgtype.Timestamptz
	RowLimit  pgtype.Int4
}

func (q *Queries) ListProfileEvents(ctx context.Context, arg ListProfileEventsParams) ([]ProfileEvent, error) {
	rows, err := q.db.Query(ctx, listProfileEvents,
		arg.ProfileID,
		arg.EventType,
		arg.Since,
		arg.RowLimit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ProfileEvent{}
	for rows.Next() {
		var i ProfileEvent
		if err := rows.Scan(
			&i.ID,
			&i.EventType,
			&i.ProfileID,
			&i.Payload,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const logProfileEvent = `-- name: LogProfileEvent :exec
INSERT INTO profile_events (event_type, profile_id, payload)
VALUES ($1, $2, $3)
`

type LogProfileEventParams struct {
	EventType string
	ProfileID string
	Payload   []byte
}

func (q *Queries) LogProfileEvent(ctx context.Context, arg LogProfileEventParams) error {
	_, err := q.db.Exec(ctx, logProfileEvent, arg.EventType, arg.ProfileID, arg.Payload)
	return err
}
