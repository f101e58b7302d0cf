//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_success_patch_test
package payment_success_patch

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
	ReconcilePayment(ctx context.Context, sessionID string) (*entities.Reconciliation, error)
}
