// Code generated by sqlc. DO NOT EDIT.
// versions:
//   sqlc v1.30.0
// source: profiles.sql

package generated

import (
	"context"

	"github.com/google/uuid"
)

const createProfile = `-- name: CreateProfile :one
INSERT INTO profiles (profile_id)
VALUES ($1)
RETURNING profile_id, created_at
`

func (q *Queries) CreateProfile(ctx context.Context, profileID uuid.UUID) (Profile, error) {
	row := q.db.QueryRow(ctx, createProfile, profileID)
	var i Profile
	err := row.Scan(&i.ProfileID, &i.CreatedAt)
	return i, err
}

const deleteProfile = `-- name: DeleteProfile :execrows
DELETE FROM profiles
WHERE profile_id = $1
`

func (q *Queries) DeleteProfile(ctx context.Context, profileID uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteProfile, profileID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getProfile = `-- name: GetProfile :one
SELECT profile_id, created_at
FROM profiles
WHERE profile_id = $1
`

func (q *Queries) GetProfile(ctx context.Context, profileID uuid.UUID) (Profile, error) {
	row := q.db.QueryRow(ctx, getProfile, profileID)
	var i Profile
	err := row.Scan(&i.ProfileID, &i.CreatedAt)
	return i, err
}

const getProfileState = `-- name: GetProfileState :one
SELECT value
FROM profile_state
WHERE profile_id = $1 AND state_key = $2
`

type GetProfileStateParams struct {
	ProfileID uuid.UUID
	StateKey  string
}

func (q *Queries) GetProfileState(ctx context.Context, arg GetProfileStateParams) ([]byte, error) {
	row := q.db.QueryRow(ctx, getProfileState, arg.ProfileID, arg.StateKey)
	var value []byte
	err := row.Scan(&value)
	return value, err
}

const profileExists = `-- name: ProfileExists :one
SELECT EXISTS (
    SELECT 1 FROM profiles WHERE profile_id = $1
)
`

func (q *Queries) ProfileExists(ctx context.Context, profileID uuid.UUID) (bool, error) {
	row := q.db.QueryRow(ctx, profileExists, profileID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const upsertProfileState = `-- name: UpsertProfileState :exec
INSERT INTO profile_state (profile_id, state_key, value, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (profile_id, state_key)
DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
`

type UpsertProfileStateParams struct {
	ProfileID uuid.UUID
	StateKey  string
	Value     []byte
}

func (q *Queries) UpsertProfileState(ctx context.Context, arg UpsertProfileStateParams) error {
	_, err := q.db.Exec(ctx, upsertProfileState, arg.ProfileID, arg.StateKey, arg.Value)
	return err
}
