//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_assign_patch_test
package parcel_assign_patch

import (
	"context"

	"zapshift/internal/entities"
	"zapshift/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AssignRider(ctx context.Context, parcelID, riderID int64, riderName, riderEmail string) (*entities.Parcel, error)
}

type RiderService interface {
	GetRider(ctx context.Context, id int64) (*entities.Rider, error)
}
