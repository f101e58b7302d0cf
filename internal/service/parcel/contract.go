//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"zapshift/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	GetAll(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error)

	// AssignRiderIfPending и UpdateStatusIf — условные обновления: строка
	// меняется только если текущий статус равен ожидаемому предшественнику,
	// проигравший гонку получает ErrInvalidTransition.
	AssignRiderIfPending(ctx context.Context, assignment entities.ParcelModify) (*entities.Parcel, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to entities.DeliveryStatusType) (*entities.Parcel, error)

	StatusCounts(ctx context.Context) ([]entities.StatusCount, error)
	DeliveredPerDay(ctx context.Context, riderEmail string) ([]entities.DeliveredPerDay, error)
}

type RiderService interface {
	MarkInDelivery(ctx context.Context, riderID int64) error
	MarkAvailable(ctx context.Context, riderID int64) error
}

type TrackingLog interface {
	Append(ctx context.Context, trackingID, status string) error
}

type TrackingIDFactory interface {
	NewTrackingID() string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
