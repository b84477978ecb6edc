// Package behavior implements persistence for the five behavior-content
// tables. All five share one column layout, so a single repository serves
// them with the table picked per kind.
package behavior

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alpha-code/activity-service/internal/adapter/postgres"
	"github.com/alpha-code/activity-service/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// kindTables maps a behavior kind to its table. Kinds never reach SQL text
// except through this closed map.
var kindTables = map[domain.BehaviorKind]string{
	domain.KindAction:         "action",
	domain.KindDance:          "dance",
	domain.KindExpression:     "expression",
	domain.KindSkill:          "skill",
	domain.KindExtendedAction: "extended_action",
}

const behaviorColumns = "id, name, description, code, duration, can_interrupt, icon, type, robot_model_id, status, created_date, last_updated"

// Repo provides behavior persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new behavior repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func tableFor(kind domain.BehaviorKind) (string, error) {
	table, ok := kindTables[kind]
	if !ok {
		return "", fmt.Errorf("behavior kind %q: %w", kind, domain.ErrInvalidInput)
	}
	return table, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Search returns one page of behaviors matching the filter plus the total
// match count. A nil status filter excludes soft-deleted rows.
func (r *Repo) Search(ctx context.Context, kind domain.BehaviorKind, f domain.BehaviorFilter) ([]domain.Behavior, int, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, 0, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := searchConditions(f)

	countSQL, countArgs, err := psql.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", table, err)
	}

	selectSQL, selectArgs, err := psql.Select(behaviorColumns).
		From(table).
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
		return nil, 0, fmt.Errorf("search %s: %w", table, err)
	}
	defer rows.Close()

	result, err := scanBehaviors(rows, kind)
	if err != nil {
		return nil, 0, fmt.Errorf("search %s: %w", table, err)
	}

	return result, total, nil
}

// searchConditions builds the WHERE conjunction for Search.
func searchConditions(f domain.BehaviorFilter) sq.And {
	where := sq.And{}

	if f.Status != nil {
		where = append(where, sq.Eq{"status": *f.Status})
	} else {
		where = append(where, sq.NotEq{"status": domain.StatusDeleted})
	}
	if f.Name != nil {
		where = append(where, sq.ILike{"name": "%" + *f.Name + "%"})
	}
	if f.Code != nil {
		where = append(where, sq.ILike{"code": "%" + *f.Code + "%"})
	}
	if f.RobotModelID != nil {
		where = append(where, sq.Eq{"robot_model_id": *f.RobotModelID})
	}
	if f.CanInterrupt != nil {
		where = append(where, sq.Eq{"can_interrupt": *f.CanInterrupt})
	}
	if f.Duration != nil {
		where = append(where, sq.Eq{"duration": *f.Duration})
	}

	return where
}

// GetByID returns a behavior by primary key, regardless of status.
// Returns domain.ErrNotFound if no row exists.
func (r *Repo) GetByID(ctx context.Context, kind domain.BehaviorKind, id uuid.UUID) (*domain.Behavior, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx, "SELECT "+behaviorColumns+" FROM "+table+" WHERE id = $1", id)

	b, err := scanBehavior(row, kind)
	if err != nil {
		return nil, postgres.MapError(err, table, id)
	}
	return b, nil
}

// GetByName returns the non-deleted behavior with the given name
// (case-insensitive exact match).
func (r *Repo) GetByName(ctx context.Context, kind domain.BehaviorKind, name string) (*domain.Behavior, error) {
	return r.getByText(ctx, kind, "name", name)
}

// GetByCode returns the non-deleted behavior with the given code
// (case-insensitive exact match).
func (r *Repo) GetByCode(ctx context.Context, kind domain.BehaviorKind, code string) (*domain.Behavior, error) {
	return r.getByText(ctx, kind, "code", code)
}

func (r *Repo) getByText(ctx context.Context, kind domain.BehaviorKind, column, value string) (*domain.Behavior, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx,
		"SELECT "+behaviorColumns+" FROM "+table+" WHERE lower("+column+") = lower($1) AND status <> $2",
		value, domain.StatusDeleted)

	b, err := scanBehavior(row, kind)
	if err != nil {
		return nil, postgres.MapError(err, table, uuid.Nil)
	}
	return b, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new behavior and returns the persisted row.
// Returns domain.ErrConflict when an active row already holds the name or code.
func (r *Repo) Create(ctx context.Context, kind domain.BehaviorKind, b *domain.Behavior) (*domain.Behavior, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx,
		`INSERT INTO `+table+` (name, description, code, duration, can_interrupt, icon, type, robot_model_id, status, created_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		 RETURNING `+behaviorColumns,
		b.Name,
		postgres.PtrToText(b.Description),
		b.Code,
		b.Duration,
		b.CanInterrupt,
		postgres.PtrToText(b.Icon),
		postgres.PtrToText(b.Type),
		b.RobotModelID,
		b.Status,
	)

	created, err := scanBehavior(row, kind)
	if err != nil {
		return nil, postgres.MapError(err, table, uuid.Nil)
	}
	return created, nil
}

// Update replaces the mutable columns of a behavior and returns the
// persisted row. Returns domain.ErrNotFound if the row does not exist.
func (r *Repo) Update(ctx context.Context, kind domain.BehaviorKind, b *domain.Behavior) (*domain.Behavior, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx,
		`UPDATE `+table+`
		 SET name = $2, description = $3, code = $4, duration = $5, can_interrupt = $6,
		     icon = $7, type = $8, robot_model_id = $9, status = $10, last_updated = now()
		 WHERE id = $1
		 RETURNING `+behaviorColumns,
		b.ID,
		b.Name,
		postgres.PtrToText(b.Description),
		b.Code,
		b.Duration,
		b.CanInterrupt,
		postgres.PtrToText(b.Icon),
		postgres.PtrToText(b.Type),
		b.RobotModelID,
		b.Status,
	)

	updated, err := scanBehavior(row, kind)
	if err != nil {
		return nil, postgres.MapError(err, table, b.ID)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanBehavior(row pgx.Row, kind domain.BehaviorKind) (*domain.Behavior, error) {
	var (
		b           domain.Behavior
		description pgtype.Text
		icon        pgtype.Text
		typ         pgtype.Text
		createdAt   time.Time
		lastUpdated pgtype.Timestamptz
	)

	err := row.Scan(
		&b.ID, &b.Name, &description, &b.Code, &b.Duration, &b.CanInterrupt,
		&icon, &typ, &b.RobotModelID, &b.Status, &createdAt, &lastUpdated,
	)
	if err != nil {
		return nil, err
	}

	b.Kind = kind
	b.Description = postgres.TextToPtr(description)
	b.Icon = postgres.TextToPtr(icon)
	b.Type = postgres.TextToPtr(typ)
	b.CreatedAt = createdAt
	b.UpdatedAt = postgres.TimestamptzToPtr(lastUpdated)

	return &b, nil
}

func scanBehaviors(rows pgx.Rows, kind domain.BehaviorKind) ([]domain.Behavior, error) {
	var result []domain.Behavior
	for rows.Next() {
		b, err := scanBehavior(rows, kind)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Behavior{}
	}

	return result, nil
}
