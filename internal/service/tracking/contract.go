//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"zapshift/internal/entities"
)

type Repository interface {
	Append(ctx context.Context, entry entities.TrackingLogEntry) error
	GetByTrackingID(ctx context.Context, trackingID string) ([]entities.TrackingLogEntry, error)
}
