// Package osmocard implements persistence for printed card bindings.
package osmocard

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alpha-code/activity-service/internal/adapter/postgres"
	"github.com/alpha-code/activity-service/internal/domain"
)

const cardColumns = `id, name, color,
	action_id, dance_id, expression_id, skill_id, extended_action_id,
	status, created_date, last_updated`

const (
	getByIDQuery = `SELECT ` + cardColumns + ` FROM osmo_card WHERE id = $1`

	listQuery = `SELECT ` + cardColumns + `
		FROM osmo_card
		WHERE status = coalesce($3, status) AND status <> $4
		ORDER BY created_date DESC, id
		LIMIT $1 OFFSET $2`

	countQuery = `SELECT count(*) FROM osmo_card
		WHERE status = coalesce($1, status) AND status <> $2`

	createQuery = `INSERT INTO osmo_card
		(name, color,
		 action_id, dance_id, expression_id, skill_id, extended_action_id,
		 status, created_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING ` + cardColumns

	updateQuery = `UPDATE osmo_card
		SET name = $2, color = $3,
		    action_id = $4, dance_id = $5, expression_id = $6,
		    skill_id = $7, extended_action_id = $8,
		    status = $9, last_updated = now()
		WHERE id = $1
		RETURNING ` + cardColumns
)

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a card by primary key, regardless of status.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.OsmoCard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCard(q.QueryRow(ctx, getByIDQuery, id))
	if err != nil {
		return nil, postgres.MapError(err, "osmo_card", id)
	}
	return c, nil
}

// List returns one page of cards plus the total match count. A nil status
// filter excludes soft-deleted rows only.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.OsmoCard, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countQuery, f.Status, domain.StatusDeleted).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "osmo_card", uuid.Nil)
	}

	rows, err := q.Query(ctx, listQuery, f.Size, (f.Page-1)*f.Size, f.Status, domain.StatusDeleted)
	if err != nil {
		return nil, 0, postgres.MapError(err, "osmo_card", uuid.Nil)
	}
	defer rows.Close()

	result := []domain.OsmoCard{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "osmo_card", uuid.Nil)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "osmo_card", uuid.Nil)
	}

	return result, total, nil
}

// Create inserts a new card and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.OsmoCard) (*domain.OsmoCard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createQuery,
		c.Name, c.Color,
		postgres.PtrToPgUUID(c.Ref.ActionID),
		postgres.PtrToPgUUID(c.Ref.DanceID),
		postgres.PtrToPgUUID(c.Ref.ExpressionID),
		postgres.PtrToPgUUID(c.Ref.SkillID),
		postgres.PtrToPgUUID(c.Ref.ExtendedActionID),
		c.Status,
	)

	created, err := scanCard(row)
	if err != nil {
		return nil, postgres.MapError(err, "osmo_card", uuid.Nil)
	}
	return created, nil
}

// Update replaces the mutable columns of a card and returns the persisted row.
func (r *Repo) Update(ctx context.Context, c *domain.OsmoCard) (*domain.OsmoCard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateQuery,
		c.ID, c.Name, c.Color,
		postgres.PtrToPgUUID(c.Ref.ActionID),
		postgres.PtrToPgUUID(c.Ref.DanceID),
		postgres.PtrToPgUUID(c.Ref.ExpressionID),
		postgres.PtrToPgUUID(c.Ref.SkillID),
		postgres.PtrToPgUUID(c.Ref.ExtendedActionID),
		c.Status,
	)

	updated, err := scanCard(row)
	if err != nil {
		return nil, postgres.MapError(err, "osmo_card", c.ID)
	}
	return updated, nil
}

func scanCard(row pgx.Row) (*domain.OsmoCard, error) {
	var (
		c           domain.OsmoCard
		action      pgtype.UUID
		dance       pgtype.UUID
		expression  pgtype.UUID
		skill       pgtype.UUID
		extended    pgtype.UUID
		lastUpdated pgtype.Timestamptz
	)

	err := row.Scan(
		&c.ID, &c.Name, &c.Color,
		&action, &dance, &expression, &skill, &extended,
		&c.Status, &c.CreatedAt, &lastUpdated,
	)
	if err != nil {
		return nil, err
	}

	c.Ref = domain.ActionRef{
		ActionID:         postgres.PgUUIDToPtr(action),
		DanceID:          postgres.PgUUIDToPtr(dance),
		ExpressionID:     postgres.PgUUIDToPtr(expression),
		SkillID:          postgres.PgUUIDToPtr(skill),
		ExtendedActionID: postgres.PgUUIDToPtr(extended),
	}
	c.UpdatedAt = postgres.TimestamptzToPtr(lastUpdated)

	return &c, nil
}
