//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"zapshift/internal/entities"
)

type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (*entities.CheckoutSession, error)
	ResolveSession(ctx context.Context, sessionID string) (*entities.GatewayConfirmation, error)
}

type Repository interface {
	// Create вставляет неизменяемую запись платежа. Дубликат transaction_id
	// обязан вернуть ErrDuplicateTransaction (уникальный индекс в БД).
	Create(ctx context.Context, payment entities.Payment) (*entities.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*entities.Payment, error)
	GetAllByCustomer(ctx context.Context, customerEmail string) ([]entities.Payment, error)
}

type ParcelRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	// MarkPaidPendingPickup условный переход parcel_created -> pending-pickup
	// с одновременной отметкой оплаты; на любом другом статусе строка не
	// меняется и возвращается ошибка перехода.
	MarkPaidPendingPickup(ctx context.Context, id int64) (*entities.Parcel, error)
}

type TrackingLog interface {
	Append(ctx context.Context, trackingID, status string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
