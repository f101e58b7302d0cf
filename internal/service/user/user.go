package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"zapshift/internal/entities"
)

// Service отвечает за роли пользователей: проверку админских прав и
// повышение роли при одобрении райдера. CRUD пользователей живет снаружи.
type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// RoleByEmail возвращает роль пользователя; незнакомый email считается
// обычным пользователем.
func (s *Service) RoleByEmail(ctx context.Context, email string) (entities.UserRoleType, error) {
	if strings.TrimSpace(email) == "" {
		return "", ErrInvalidEmail
	}

	role, err := s.repository.GetRoleByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return entities.RoleUser, nil
		}
		return "", fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := s.RoleByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return role == entities.RoleAdmin, nil
}

// PromoteToRider выставляет роль rider на записи пользователя.
// Вызывается менеджером райдеров при одобрении заявки.
func (s *Service) PromoteToRider(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrInvalidEmail
	}

	err := s.repository.UpdateRoleByEmail(ctx, email, entities.RoleRider)
	if err != nil {
		return fmt.Errorf("promote to rider: %w", err)
	}
	return nil
}
