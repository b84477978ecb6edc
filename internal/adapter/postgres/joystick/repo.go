// Package joystick implements persistence for controller button bindings.
package joystick

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alpha-code/activity-service/internal/adapter/postgres"
	"github.com/alpha-code/activity-service/internal/domain"
)

const joystickColumns = `id, account_id, robot_id, button_code, type,
	action_id, dance_id, expression_id, skill_id, extended_action_id,
	status, created_date, last_updated`

const (
	getByIDQuery = `SELECT ` + joystickColumns + ` FROM joystick WHERE id = $1`

	listByOwnerQuery = `SELECT ` + joystickColumns + `
		FROM joystick
		WHERE account_id = $1 AND robot_id = $2 AND status <> $3
		ORDER BY created_date DESC, id`

	findActiveTriggerQuery = `SELECT ` + joystickColumns + `
		FROM joystick
		WHERE account_id = $1 AND robot_id = $2 AND button_code = $3 AND status <> $4`

	createQuery = `INSERT INTO joystick
		(account_id, robot_id, button_code, type,
		 action_id, dance_id, expression_id, skill_id, extended_action_id,
		 status, created_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		RETURNING ` + joystickColumns

	updateQuery = `UPDATE joystick
		SET button_code = $2, type = $3,
		    action_id = $4, dance_id = $5, expression_id = $6,
		    skill_id = $7, extended_action_id = $8,
		    status = $9, last_updated = now()
		WHERE id = $1
		RETURNING ` + joystickColumns
)

// Repo provides joystick binding persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a binding by primary key, regardless of status.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Joystick, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	j, err := scanJoystick(q.QueryRow(ctx, getByIDQuery, id))
	if err != nil {
		return nil, postgres.MapError(err, "joystick", id)
	}
	return j, nil
}

// ListByOwner returns the active bindings of one (account, robot) pair,
// newest first.
func (r *Repo) ListByOwner(ctx context.Context, accountID, robotID uuid.UUID) ([]domain.Joystick, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByOwnerQuery, accountID, robotID, domain.StatusDeleted)
	if err != nil {
		return nil, postgres.MapError(err, "joystick", uuid.Nil)
	}
	defer rows.Close()

	result := []domain.Joystick{}
	for rows.Next() {
		j, err := scanJoystick(rows)
		if err != nil {
			return nil, postgres.MapError(err, "joystick", uuid.Nil)
		}
		result = append(result, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "joystick", uuid.Nil)
	}

	return result, nil
}

// FindActiveTrigger returns the active binding for a trigger key, or nil
// when the key is free. Soft-deleted rows do not occupy the key.
func (r *Repo) FindActiveTrigger(ctx context.Context, accountID, robotID uuid.UUID, buttonCode string) (*domain.Joystick, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	j, err := scanJoystick(q.QueryRow(ctx, findActiveTriggerQuery, accountID, robotID, buttonCode, domain.StatusDeleted))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, postgres.MapError(err, "joystick", uuid.Nil)
	}
	return j, nil
}

// Create inserts a new binding and returns the persisted row.
func (r *Repo) Create(ctx context.Context, j *domain.Joystick) (*domain.Joystick, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createQuery,
		j.AccountID, j.RobotID, j.ButtonCode, j.Type,
		postgres.PtrToPgUUID(j.Ref.ActionID),
		postgres.PtrToPgUUID(j.Ref.DanceID),
		postgres.PtrToPgUUID(j.Ref.ExpressionID),
		postgres.PtrToPgUUID(j.Ref.SkillID),
		postgres.PtrToPgUUID(j.Ref.ExtendedActionID),
		j.Status,
	)

	created, err := scanJoystick(row)
	if err != nil {
		return nil, postgres.MapError(err, "joystick", uuid.Nil)
	}
	return created, nil
}

// Update replaces the mutable columns of a binding and returns the
// persisted row.
func (r *Repo) Update(ctx context.Context, j *domain.Joystick) (*domain.Joystick, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateQuery,
		j.ID, j.ButtonCode, j.Type,
		postgres.PtrToPgUUID(j.Ref.ActionID),
		postgres.PtrToPgUUID(j.Ref.DanceID),
		postgres.PtrToPgUUID(j.Ref.ExpressionID),
		postgres.PtrToPgUUID(j.Ref.SkillID),
		postgres.PtrToPgUUID(j.Ref.ExtendedActionID),
		j.Status,
	)

	updated, err := scanJoystick(row)
	if err != nil {
		return nil, postgres.MapError(err, "joystick", j.ID)
	}
	return updated, nil
}

func scanJoystick(row pgx.Row) (*domain.Joystick, error) {
	var (
		j           domain.Joystick
		action      pgtype.UUID
		dance       pgtype.UUID
		expression  pgtype.UUID
		skill       pgtype.UUID
		extended    pgtype.UUID
		lastUpdated pgtype.Timestamptz
	)

	err := row.Scan(
		&j.ID, &j.AccountID, &j.RobotID, &j.ButtonCode, &j.Type,
		&action, &dance, &expression, &skill, &extended,
		&j.Status, &j.CreatedAt, &lastUpdated,
	)
	if err != nil {
		return nil, err
	}

	j.Ref = domain.ActionRef{
		ActionID:         postgres.PgUUIDToPtr(action),
		DanceID:          postgres.PgUUIDToPtr(dance),
		ExpressionID:     postgres.PgUUIDToPtr(expression),
		SkillID:          postgres.PgUUIDToPtr(skill),
		ExtendedActionID: postgres.PgUUIDToPtr(extended),
	}
	j.UpdatedAt = postgres.TimestamptzToPtr(lastUpdated)

	return &j, nil
}
