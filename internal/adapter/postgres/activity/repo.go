// Package activity implements persistence for playable activity content.
package activity

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alpha-code/activity-service/internal/adapter/postgres"
	"github.com/alpha-code/activity-service/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const activityColumns = "id, name, description, data, type, account_id, robot_model_id, status, created_date, last_updated"

const (
	getByIDQuery = `SELECT ` + activityColumns + ` FROM activity WHERE id = $1`

	createQuery = `INSERT INTO activity
		(name, description, data, type, account_id, robot_model_id, status, created_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING ` + activityColumns

	updateQuery = `UPDATE activity
		SET name = $2, description = $3, data = $4, type = $5,
		    account_id = $6, robot_model_id = $7, status = $8, last_updated = now()
		WHERE id = $1
		RETURNING ` + activityColumns
)

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns an activity by primary key, regardless of status.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanActivity(q.QueryRow(ctx, getByIDQuery, id))
	if err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}
	return a, nil
}

// Search returns one page of activities matching the filter plus the total
// match count. Keyword matches name or description, case-insensitively.
func (r *Repo) Search(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if f.Status != nil {
		where = append(where, sq.Eq{"status": *f.Status})
	} else {
		where = append(where, sq.NotEq{"status": domain.StatusDeleted})
	}
	if f.Keyword != nil {
		pattern := "%" + *f.Keyword + "%"
		where = append(where, sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}
	if f.AccountID != nil {
		where = append(where, sq.Eq{"account_id": *f.AccountID})
	}
	if f.RobotModelID != nil {
		where = append(where, sq.Eq{"robot_model_id": *f.RobotModelID})
	}

	countSQL, countArgs, err := psql.Select("count(*)").From("activity").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count activity: %w", err)
	}

	selectSQL, selectArgs, err := psql.Select(activityColumns).
		From("activity").
		Where(where).
		OrderBy("created_date DESC, id").
		Limit(uint64(f.Size)).
		Offset(uint64((f.Page - 1) * f.Size)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build search query: %w", err)
	}

	rows, err := q.Query(ctx, selectSQL, selectArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("search activity: %w", err)
	}
	defer rows.Close()

	result := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("search activity: %w", err)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("search activity: %w", err)
	}

	return result, total, nil
}

// Create inserts a new activity and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createQuery,
		a.Name, a.Description, []byte(a.Data), a.Type,
		a.AccountID, postgres.PtrToPgUUID(a.RobotModelID), a.Status,
	)

	created, err := scanActivity(row)
	if err != nil {
		return nil, postgres.MapError(err, "activity", uuid.Nil)
	}
	return created, nil
}

// Update replaces the mutable columns of an activity and returns the
// persisted row.
func (r *Repo) Update(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateQuery,
		a.ID, a.Name, a.Description, []byte(a.Data), a.Type,
		a.AccountID, postgres.PtrToPgUUID(a.RobotModelID), a.Status,
	)

	updated, err := scanActivity(row)
	if err != nil {
		return nil, postgres.MapError(err, "activity", a.ID)
	}
	return updated, nil
}

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var (
		a           domain.Activity
		data        []byte
		robotModel  pgtype.UUID
		lastUpdated pgtype.Timestamptz
	)

	err := row.Scan(
		&a.ID, &a.Name, &a.Description, &data, &a.Type,
		&a.AccountID, &robotModel, &a.Status, &a.CreatedAt, &lastUpdated,
	)
	if err != nil {
		return nil, err
	}

	a.Data = data
	a.RobotModelID = postgres.PgUUIDToPtr(robotModel)
	a.UpdatedAt = postgres.TimestamptzToPtr(lastUpdated)

	return &a, nil
}
