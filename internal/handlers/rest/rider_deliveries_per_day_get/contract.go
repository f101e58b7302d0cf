//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_deliveries_per_day_get_test
package rider_deliveries_per_day_get

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
	DeliveredPerDay(ctx context.Context, riderEmail string) ([]entities.DeliveredPerDay, error)
}
