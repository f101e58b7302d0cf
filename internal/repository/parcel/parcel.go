package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"zapshift/internal/entities"
	parcelservice "zapshift/internal/service/parcel"
	paymentservice "zapshift/internal/service/payment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const parcelColumns = `id, tracking_id, name, sender_email, rider_id, rider_name, rider_email,
		cost, delivery_status, payment_status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	query := `
		INSERT INTO parcels (tracking_id, name, sender_email, cost, delivery_status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + parcelColumns

	var parcelDB ParcelDB
	err := r.querier.QueryRow(
		ctx,
		query,
		parcelModify.TrackingID,
		parcelModify.Name,
		parcelModify.SenderEmail,
		parcelModify.Cost,
		parcelModify.DeliveryStatus,
		parcelModify.PaymentStatus,
	).Scan(scanTargets(&parcelDB)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(&parcelDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + ` FROM parcels WHERE id = $1`

	var parcelDB ParcelDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&parcelDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcelservice.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository get error: %w", err)
	}

	return ToDomain(&parcelDB), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	builder := qb.
		Select(parcelColumns).
		From("parcels")

	if filter.SenderEmail != nil {
		builder = builder.Where(sq.Eq{"sender_email": *filter.SenderEmail})
	}
	if filter.RiderEmail != nil {
		builder = builder.Where(sq.Eq{"rider_email": *filter.RiderEmail})
	}
	if filter.DeliveryStatus != nil {
		builder = builder.Where(sq.Eq{"delivery_status": filter.DeliveryStatus.String()})
	}
	if filter.ExcludeDelivered {
		builder = builder.Where(sq.NotEq{"delivery_status": entities.ParcelDelivered.String()})
	}

	builder = builder.OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	var parcels []entities.Parcel
	for rows.Next() {
		var parcelDB ParcelDB
		if err := rows.Scan(scanTargets(&parcelDB)...); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository scan error: %w", err)
		}
		parcels = append(parcels, *ToDomain(&parcelDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository rows error: %w", err)
	}

	return parcels, nil
}

// AssignRiderIfPending атомарно: статус меняется только из pending-pickup,
// проигравший гонку не затирает чужое обновление.
func (r *Repository) AssignRiderIfPending(ctx context.Context, assignment entities.ParcelModify) (*entities.Parcel, error) {
	query := `
		UPDATE parcels
		SET rider_id = $2,
		    rider_name = $3,
		    rider_email = $4,
		    delivery_status = $5,
		    updated_at = NOW()
		WHERE id = $1 AND delivery_status = $6
		RETURNING ` + parcelColumns

	var parcelDB ParcelDB
	err := r.querier.QueryRow(
		ctx,
		query,
		assignment.ID,
		assignment.RiderID,
		assignment.RiderName,
		assignment.RiderEmail,
		entities.DriverAssigned.String(),
		entities.PendingPickup.String(),
	).Scan(scanTargets(&parcelDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcelservice.ErrInvalidTransition
		}
		return nil, fmt.Errorf("unexpected parcel repository assign error: %w", err)
	}

	return ToDomain(&parcelDB), nil
}

func (r *Repository) UpdateStatusIf(ctx context.Context, id int64, from, to entities.DeliveryStatusType) (*entities.Parcel, error) {
	query := `
		UPDATE parcels
		SET delivery_status = $3,
		    updated_at = NOW()
		WHERE id = $1 AND delivery_status = $2
		RETURNING ` + parcelColumns

	var parcelDB ParcelDB
	err := r.querier.QueryRow(ctx, query, id, from.String(), to.String()).Scan(scanTargets(&parcelDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcelservice.ErrInvalidTransition
		}
		return nil, fmt.Errorf("unexpected parcel repository status update error: %w", err)
	}

	return ToDomain(&parcelDB), nil
}

// MarkPaidPendingPickup условный переход оплаты, используется движком сверки.
func (r *Repository) MarkPaidPendingPickup(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `
		UPDATE parcels
		SET payment_status = $2,
		    delivery_status = $3,
		    updated_at = NOW()
		WHERE id = $1 AND delivery_status = $4
		RETURNING ` + parcelColumns

	var parcelDB ParcelDB
	err := r.querier.QueryRow(
		ctx,
		query,
		id,
		entities.PaymentPaid.String(),
		entities.PendingPickup.String(),
		entities.ParcelCreated.String(),
	).Scan(scanTargets(&parcelDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, paymentservice.ErrInvalidTransition
		}
		return nil, fmt.Errorf("unexpected parcel repository mark paid error: %w", err)
	}

	return ToDomain(&parcelDB), nil
}

func (r *Repository) StatusCounts(ctx context.Context) ([]entities.StatusCount, error) {
	query := `
		SELECT delivery_status, COUNT(*)
		FROM parcels
		GROUP BY delivery_status
		ORDER BY delivery_status
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository status counts error: %w", err)
	}
	defer rows.Close()

	var counts []entities.StatusCount
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository scan error: %w", err)
		}
		counts = append(counts, entities.StatusCount{
			Status: entities.DeliveryStatusType(status),
			Count:  count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository rows error: %w", err)
	}

	return counts, nil
}

// DeliveredPerDay считает доставки по дням по журналу отслеживания:
// день берется из момента записи parcel_delivered, а не из updated_at посылки.
func (r *Repository) DeliveredPerDay(ctx context.Context, riderEmail string) ([]entities.DeliveredPerDay, error) {
	query := `
		SELECT to_char(t.created_at, 'YYYY-MM-DD') AS delivery_day, COUNT(*)
		FROM parcels p
		JOIN trackings t ON t.tracking_id = p.tracking_id
		WHERE p.rider_email = $1
		  AND p.delivery_status = $2
		  AND t.status = $2
		GROUP BY delivery_day
		ORDER BY delivery_day
	`

	rows, err := r.querier.Query(ctx, query, riderEmail, entities.ParcelDelivered.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository delivered per day error: %w", err)
	}
	defer rows.Close()

	var perDay []entities.DeliveredPerDay
	for rows.Next() {
		var item entities.DeliveredPerDay
		if err := rows.Scan(&item.Day, &item.Count); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository scan error: %w", err)
		}
		perDay = append(perDay, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository rows error: %w", err)
	}

	return perDay, nil
}

func scanTargets(p *ParcelDB) []any {
	return []any{
		&p.ID,
		&p.TrackingID,
		&p.Name,
		&p.SenderEmail,
		&p.RiderID,
		&p.RiderName,
		&p.RiderEmail,
		&p.Cost,
		&p.DeliveryStatus,
		&p.PaymentStatus,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}
