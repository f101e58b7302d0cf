package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"zapshift/internal/entities"
	userservice "zapshift/internal/service/user"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetRoleByEmail(ctx context.Context, email string) (entities.UserRoleType, error) {
	query := `SELECT role FROM users WHERE email = $1`

	var role string
	err := r.querier.QueryRow(ctx, query, email).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", userservice.ErrUserNotFound
		}
		return "", fmt.Errorf("unexpected user repository get role error: %w", err)
	}

	return entities.UserRoleType(role), nil
}

func (r *Repository) UpdateRoleByEmail(ctx context.Context, email string, role entities.UserRoleType) error {
	query := `
		UPDATE users
		SET role = $2,
		    updated_at = NOW()
		WHERE email = $1
	`

	result, err := r.querier.Exec(ctx, query, email, role.String())
	if err != nil {
		return fmt.Errorf("unexpected user repository update role error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return userservice.ErrUserNotFound
	}
	return nil
}
