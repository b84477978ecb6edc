package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// PtrToText converts a *string to pgtype.Text (nil -> NULL).
func PtrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// TextToPtr converts a pgtype.Text to *string (NULL -> nil).
func TextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// PtrToTimestamptz converts a *time.Time to pgtype.Timestamptz (nil -> NULL).
func PtrToTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

// TimestamptzToPtr converts a pgtype.Timestamptz to *time.Time (NULL -> nil).
func TimestamptzToPtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	ts := t.Time
	return &ts
}

// PtrToPgUUID converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
// Non-null uuid columns scan into uuid.UUID directly; these helpers cover
// the nullable ones (the five action slots, activity robot_model_id).
func PtrToPgUUID(u *uuid.UUID) pgtype.UUID {
	if u == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *u, Valid: true}
}

// PgUUIDToPtr converts a pgtype.UUID to *uuid.UUID (NULL -> nil).
func PgUUIDToPtr(u pgtype.UUID) *uuid.UUID {
	if !u.Valid {
		return nil
	}
	id := uuid.UUID(u.Bytes)
	return &id
}
