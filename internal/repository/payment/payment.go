package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"zapshift/internal/entities"
	"zapshift/internal/repository"
	paymentservice "zapshift/internal/service/payment"
)

const paymentColumns = `id, transaction_id, parcel_id, parcel_name, tracking_id,
		amount, currency, customer_email, payment_status, paid_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, payment entities.Payment) (*entities.Payment, error) {
	query := `
		INSERT INTO payments (transaction_id, parcel_id, parcel_name, tracking_id,
			amount, currency, customer_email, payment_status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + paymentColumns

	var paymentDB PaymentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		payment.TransactionID,
		payment.ParcelID,
		payment.ParcelName,
		payment.TrackingID,
		payment.Amount,
		payment.Currency,
		payment.CustomerEmail,
		payment.PaymentStatus,
		payment.PaidAt,
	).Scan(scanTargets(&paymentDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, paymentservice.ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return ToDomain(&paymentDB), nil
}

func (r *Repository) GetByTransactionID(ctx context.Context, transactionID string) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = $1`

	var paymentDB PaymentDB
	err := r.querier.QueryRow(ctx, query, transactionID).Scan(scanTargets(&paymentDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, paymentservice.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository get error: %w", err)
	}

	return ToDomain(&paymentDB), nil
}

func (r *Repository) GetAllByCustomer(ctx context.Context, customerEmail string) ([]entities.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE customer_email = $1
		ORDER BY paid_at DESC
	`

	rows, err := r.querier.Query(ctx, query, customerEmail)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
	}
	defer rows.Close()

	var payments []entities.Payment
	for rows.Next() {
		var paymentDB PaymentDB
		if err := rows.Scan(scanTargets(&paymentDB)...); err != nil {
			return nil, fmt.Errorf("unexpected payment repository scan error: %w", err)
		}
		payments = append(payments, *ToDomain(&paymentDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected payment repository rows error: %w", err)
	}

	return payments, nil
}

func scanTargets(p *PaymentDB) []any {
	return []any{
		&p.ID,
		&p.TransactionID,
		&p.ParcelID,
		&p.ParcelName,
		&p.TrackingID,
		&p.Amount,
		&p.Currency,
		&p.CustomerEmail,
		&p.PaymentStatus,
		&p.PaidAt,
	}
}
