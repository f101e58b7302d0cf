package rider

import (
	"context"
	"fmt"

	"zapshift/internal/entities"
)

// Manager владеет рабочим состоянием райдеров. workStatus переключают
// только операции жизненного цикла посылки, внешние вызовы менять его
// напрямую не могут.
type Manager struct {
	repository  Repository
	userService UserService
	txManager   TxManager
}

func New(repository Repository, userService UserService, txManager TxManager) *Manager {
	return &Manager{
		repository:  repository,
		userService: userService,
		txManager:   txManager,
	}
}

// CreateRider регистрирует заявку райдера: статус pending, workStatus available.
func (m *Manager) CreateRider(ctx context.Context, riderModify entities.RiderModify) (int64, error) {
	if riderModify.Name == nil ||
		riderModify.Email == nil ||
		riderModify.District == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*riderModify.Name) {
		return 0, ErrMissingRequiredFields
	}
	if !isValidEmail(*riderModify.Email) {
		return 0, ErrInvalidEmail
	}
	if !isValidDistrict(*riderModify.District) {
		return 0, ErrMissingRequiredFields
	}

	pending := entities.RiderPending
	available := entities.WorkAvailable
	riderModify.Status = &pending
	riderModify.WorkStatus = &available

	id, err := m.repository.Create(ctx, riderModify)
	if err != nil {
		return 0, fmt.Errorf("create rider: %w", err)
	}
	return id, nil
}

func (m *Manager) GetRider(ctx context.Context, id int64) (*entities.Rider, error) {
	if id <= 0 {
		return nil, ErrInvalidRiderID
	}

	rider, err := m.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rider: %w", err)
	}
	return rider, nil
}

func (m *Manager) GetRiders(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error) {
	riders, err := m.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get riders: %w", err)
	}
	return riders, nil
}

// DecideRider применяет административное решение по заявке: approved/rejected.
// Одобрение дополнительно повышает роль на записи пользователя.
func (m *Manager) DecideRider(ctx context.Context, id int64, status entities.RiderStatusType, email string) (*entities.Rider, error) {
	if id <= 0 {
		return nil, ErrInvalidRiderID
	}
	if !isDecision(status.String()) {
		return nil, ErrInvalidStatus
	}

	var decided *entities.Rider
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		available := entities.WorkAvailable
		riderModify := entities.RiderModify{
			ID:         &id,
			Status:     &status,
			WorkStatus: &available,
		}

		rider, err := m.repository.Update(ctx, riderModify)
		if err != nil {
			return fmt.Errorf("update rider status: %w", err)
		}

		if status == entities.RiderApproved {
			promoteEmail := rider.Email
			if email != "" {
				promoteEmail = email
			}
			if err := m.userService.PromoteToRider(ctx, promoteEmail); err != nil {
				return fmt.Errorf("promote user: %w", err)
			}
		}

		decided = rider
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decided, nil
}

// MarkInDelivery переводит райдера в in_delivery. Вызывается только машиной
// состояний посылки при назначении.
func (m *Manager) MarkInDelivery(ctx context.Context, riderID int64) error {
	if riderID <= 0 {
		return ErrInvalidRiderID
	}

	err := m.repository.UpdateWorkStatus(ctx, riderID, entities.WorkInDelivery)
	if err != nil {
		return fmt.Errorf("mark rider in delivery: %w", err)
	}
	return nil
}

// MarkAvailable возвращает райдера в available после завершения доставки.
func (m *Manager) MarkAvailable(ctx context.Context, riderID int64) error {
	if riderID <= 0 {
		return ErrInvalidRiderID
	}

	err := m.repository.UpdateWorkStatus(ctx, riderID, entities.WorkAvailable)
	if err != nil {
		return fmt.Errorf("mark rider available: %w", err)
	}
	return nil
}

// ReleaseIdleRiders чинит инвариант: райдер без активной посылки не может
// висеть в in_delivery. Запускается фоновой задачей.
func (m *Manager) ReleaseIdleRiders(ctx context.Context) (int64, error) {
	rowsAffected, err := m.repository.UpdateRidersAvailableWhereNoActiveParcel(ctx)
	if err != nil {
		return 0, fmt.Errorf("release idle riders: %w", err)
	}
	return rowsAffected, nil
}
