package rider_reconcile

import (
	"context"
	"time"

	"zapshift/pkg/logger"
)

type Service interface {
	ReleaseIdleRiders(ctx context.Context) (int64, error)
}

// RiderReconcile периодически возвращает в available райдеров, зависших в
// in_delivery без активной посылки.
type RiderReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewRiderReconcile(log logger.Logger, service Service, interval time.Duration) *RiderReconcile {
	return &RiderReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *RiderReconcile) TTL() time.Duration {
	return r.interval
}

func (r *RiderReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	rowsAffected, err := r.service.ReleaseIdleRiders(ctxWithTimeout)

	if rowsAffected > 0 {
		r.log.With(
			logger.NewField("released_riders", rowsAffected),
		).Info("rider reconcile")
	}

	return err
}

func (r *RiderReconcile) Info() string {
	return "rider reconcile"
}
