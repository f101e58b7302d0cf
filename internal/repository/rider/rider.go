package rider

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"zapshift/internal/entities"
	"zapshift/internal/repository"
	riderservice "zapshift/internal/service/rider"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const riderColumns = "id, name, email, phone, district, status, work_status, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, riderModify entities.RiderModify) (int64, error) {
	query := `
		INSERT INTO riders (name, email, phone, district, status, work_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		riderModify.Name,
		riderModify.Email,
		riderModify.Phone,
		riderModify.District,
		riderModify.Status,
		riderModify.WorkStatus,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, riderservice.ErrConflict
		}
		return 0, fmt.Errorf("unexpected rider repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Rider, error) {
	query := `SELECT ` + riderColumns + ` FROM riders WHERE id = $1`

	var riderDB RiderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&riderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, riderservice.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository get error: %w", err)
	}

	return ToDomain(&riderDB), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error) {
	builder := qb.
		Select(riderColumns).
		From("riders")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.District != nil {
		builder = builder.Where(sq.Eq{"district": *filter.District})
	}
	if filter.WorkStatus != nil {
		builder = builder.Where(sq.Eq{"work_status": filter.WorkStatus.String()})
	}

	builder = builder.OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository list error: %w", err)
	}
	defer rows.Close()

	var riders []entities.Rider
	for rows.Next() {
		var riderDB RiderDB
		if err := rows.Scan(scanTargets(&riderDB)...); err != nil {
			return nil, fmt.Errorf("unexpected rider repository scan error: %w", err)
		}
		riders = append(riders, *ToDomain(&riderDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rider repository rows error: %w", err)
	}

	return riders, nil
}

func (r *Repository) Update(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error) {
	builder := qb.
		Update("riders")

	// опциональные поля
	if riderModify.Name != nil {
		builder = builder.Set("name", riderModify.Name)
	}
	if riderModify.Phone != nil {
		builder = builder.Set("phone", riderModify.Phone)
	}
	if riderModify.District != nil {
		builder = builder.Set("district", riderModify.District)
	}
	if riderModify.Status != nil {
		builder = builder.Set("status", riderModify.Status.String())
	}
	if riderModify.WorkStatus != nil {
		builder = builder.Set("work_status", riderModify.WorkStatus.String())
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": riderModify.ID}).
		Suffix("RETURNING " + riderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	var riderDB RiderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&riderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, riderservice.ErrRiderNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, riderservice.ErrConflict
		}
		return nil, fmt.Errorf("unexpected rider repository update error: %w", err)
	}

	return ToDomain(&riderDB), nil
}

func (r *Repository) UpdateWorkStatus(ctx context.Context, id int64, workStatus entities.WorkStatusType) error {
	query := `
		UPDATE riders
		SET work_status = $2,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, workStatus.String())
	if err != nil {
		return fmt.Errorf("unexpected rider repository work status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return riderservice.ErrRiderNotFound
	}
	return nil
}

// UpdateRidersAvailableWhereNoActiveParcel возвращает в available райдеров,
// зависших в in_delivery без активной назначенной посылки.
func (r *Repository) UpdateRidersAvailableWhereNoActiveParcel(ctx context.Context) (int64, error) {
	query := `
		UPDATE riders
		SET work_status = 'available',
		    updated_at = NOW()
		WHERE work_status = 'in_delivery'
		  AND NOT EXISTS (
		      SELECT 1
		      FROM parcels
		      WHERE parcels.rider_id = riders.id
		        AND parcels.delivery_status IN ('driver_assigned', 'rider_arriving')
		  )
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected rider repository release error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanTargets(r *RiderDB) []any {
	return []any{
		&r.ID,
		&r.Name,
		&r.Email,
		&r.Phone,
		&r.District,
		&r.Status,
		&r.WorkStatus,
		&r.CreatedAt,
		&r.UpdatedAt,
	}
}
