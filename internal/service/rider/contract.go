//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"

	"zapshift/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, riderModify entities.RiderModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Rider, error)
	GetAll(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error)
	Update(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error)
	UpdateWorkStatus(ctx context.Context, id int64, workStatus entities.WorkStatusType) error

	UpdateRidersAvailableWhereNoActiveParcel(ctx context.Context) (int64, error)
}

type UserService interface {
	PromoteToRider(ctx context.Context, email string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
