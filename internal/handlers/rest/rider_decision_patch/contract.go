//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_decision_patch_test
package rider_decision_patch

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
	DecideRider(ctx context.Context, id int64, status entities.RiderStatusType, email string) (*entities.Rider, error)
}

type UserService interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}
