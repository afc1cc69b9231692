// Code generated by sqlc. DO NOT EDIT.
// versions:
//   sqlc v1.30.0

package generated

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Profile struct {
	ProfileID uuid.UUID
	CreatedAt pgtype.Timestamptz
}

type ProfileEvent struct {
	ID        int64
	EventType string
	ProfileID string
	Payload   []byte
	CreatedAt pgtype.Timestamptz
}

type ProfileState struct {
	ProfileID uuid.UUID
	StateKey  string
	Value     []byte
	UpdatedAt pgtype.Timestamptz
}
