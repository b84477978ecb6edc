// Package qrcode implements persistence for scannable code records.
package qrcode

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

const codeColumns = `id, name, code, color, image_url, account_id, activity_id,
	status, created_date, last_updated`

const (
	getByIDQuery = `SELECT ` + codeColumns + ` FROM qr_code WHERE id = $1`

	getByCodeQuery = `SELECT ` + codeColumns + `
		FROM qr_code
		WHERE code = $1 AND status <> $2`

	listQuery = `SELECT ` + codeColumns + `
		FROM qr_code
		WHERE status = coalesce($3, status) AND status <> $4
		ORDER BY created_date DESC, id
		LIMIT $1 OFFSET $2`

	countQuery = `SELECT count(*) FROM qr_code
		WHERE status = coalesce($1, status) AND status <> $2`

	createQuery = `INSERT INTO qr_code
		(name, code, color, image_url, account_id, activity_id, status, created_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING ` + codeColumns

	updateQuery = `UPDATE qr_code
		SET name = $2, code = $3, color = $4, image_url = $5,
		    account_id = $6, activity_id = $7, status = $8, last_updated = now()
		WHERE id = $1
		RETURNING ` + codeColumns
)

// Repo provides code record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a code record by primary key, regardless of status.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.QrCode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanQrCode(q.QueryRow(ctx, getByIDQuery, id))
	if err != nil {
		return nil, postgres.MapError(err, "qr_code", id)
	}
	return c, nil
}

// GetByCode returns the non-deleted record for an exact code string.
func (r *Repo) GetByCode(ctx context.Context, code string) (*domain.QrCode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanQrCode(q.QueryRow(ctx, getByCodeQuery, code, domain.StatusDeleted))
	if err != nil {
		return nil, postgres.MapError(err, "qr_code", uuid.Nil)
	}
	return c, nil
}

// FindByCode is GetByCode without the not-found error: nil means the code
// string is free.
func (r *Repo) FindByCode(ctx context.Context, code string) (*domain.QrCode, error) {
	c, err := r.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// List returns one page of code records plus the total match count. A nil
// status filter excludes soft-deleted rows only.
func (r *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.QrCode, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countQuery, f.Status, domain.StatusDeleted).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "qr_code", uuid.Nil)
	}

	rows, err := q.Query(ctx, listQuery, f.Size, (f.Page-1)*f.Size, f.Status, domain.StatusDeleted)
	if err != nil {
		return nil, 0, postgres.MapError(err, "qr_code", uuid.Nil)
	}
	defer rows.Close()

	result := []domain.QrCode{}
	for rows.Next() {
		c, err := scanQrCode(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "qr_code", uuid.Nil)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "qr_code", uuid.Nil)
	}

	return result, total, nil
}

// Create inserts a new code record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.QrCode) (*domain.QrCode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createQuery,
		c.Name, c.Code, postgres.PtrToText(c.Color), c.ImageURL,
		c.AccountID, c.ActivityID, c.Status,
	)

	created, err := scanQrCode(row)
	if err != nil {
		return nil, postgres.MapError(err, "qr_code", uuid.Nil)
	}
	return created, nil
}

// Update replaces the mutable columns of a code record and returns the
// persisted row.
func (r *Repo) Update(ctx context.Context, c *domain.QrCode) (*domain.QrCode, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateQuery,
		c.ID, c.Name, c.Code, postgres.PtrToText(c.Color), c.ImageURL,
		c.AccountID, c.ActivityID, c.Status,
	)

	updated, err := scanQrCode(row)
	if err != nil {
		return nil, postgres.MapError(err, "qr_code", c.ID)
	}
	return updated, nil
}

func scanQrCode(row pgx.Row) (*domain.QrCode, error) {
	var (
		c           domain.QrCode
		color       pgtype.Text
		lastUpdated pgtype.Timestamptz
	)

	err := row.Scan(
		&c.ID, &c.Name, &c.Code, &color, &c.ImageURL, &c.AccountID,
		&c.ActivityID, &c.Status, &c.CreatedAt, &lastUpdated,
	)
	if err != nil {
		return nil, err
	}

	c.Color = postgres.TextToPtr(color)
	c.UpdatedAt = postgres.TimestamptzToPtr(lastUpdated)

	return &c, nil
}
