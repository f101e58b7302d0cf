//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"zapshift/internal/entities"
)

type Repository interface {
	GetRoleByEmail(ctx context.Context, email string) (entities.UserRoleType, error)
	UpdateRoleByEmail(ctx context.Context, email string, role entities.UserRoleType) error
}
