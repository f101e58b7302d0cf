package parcel

import (
	"context"
	"fmt"

	"zapshift/internal/entities"
)

// StateMachine владеет жизненным циклом посылки. Статус движется только
// вперед по порядку parcel_created -> pending-pickup -> driver_assigned ->
// rider_arriving -> parcel_delivered; каждый переход пишется в журнал
// отслеживания, назначение и завершение доставки переключают workStatus
// райдера.
type StateMachine struct {
	repository   Repository
	riderService RiderService
	trackingLog  TrackingLog
	idFactory    TrackingIDFactory
	txManager    TxManager
}

func New(
	repository Repository,
	riderService RiderService,
	trackingLog TrackingLog,
	idFactory TrackingIDFactory,
	txManager TxManager,
) *StateMachine {
	return &StateMachine{
		repository:   repository,
		riderService: riderService,
		trackingLog:  trackingLog,
		idFactory:    idFactory,
		txManager:    txManager,
	}
}

// CreateParcel заводит посылку: генерирует trackingId, ставит статусы
// parcel_created/unpaid и пишет первую запись журнала.
func (s *StateMachine) CreateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.SenderEmail == nil || parcelModify.Cost == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(*parcelModify.SenderEmail) {
		return nil, ErrMissingRequiredFields
	}
	if *parcelModify.Cost <= 0 {
		return nil, ErrMissingRequiredFields
	}

	trackingID := s.idFactory.NewTrackingID()
	created := entities.ParcelCreated
	unpaid := entities.PaymentUnpaid
	parcelModify.TrackingID = &trackingID
	parcelModify.DeliveryStatus = &created
	parcelModify.PaymentStatus = &unpaid

	var parcel *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		parcel, err = s.repository.Create(ctx, parcelModify)
		if err != nil {
			return fmt.Errorf("create parcel: %w", err)
		}

		err = s.trackingLog.Append(ctx, trackingID, entities.ParcelCreated.String())
		if err != nil {
			return fmt.Errorf("log parcel created: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return parcel, nil
}

// AssignRider назначает райдера. Разрешено только из pending-pickup:
// порядок статусов структурно отсекает назначение до оплаты и после доставки.
func (s *StateMachine) AssignRider(ctx context.Context, parcelID, riderID int64, riderName, riderEmail string) (*entities.Parcel, error) {
	if parcelID <= 0 {
		return nil, ErrInvalidParcelID
	}
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}

	var assigned *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		if current.DeliveryStatus.IsTerminal() {
			return ErrAlreadyDelivered
		}

		assignment := entities.ParcelModify{
			ID:         &parcelID,
			RiderID:    &riderID,
			RiderName:  &riderName,
			RiderEmail: &riderEmail,
		}

		assigned, err = s.repository.AssignRiderIfPending(ctx, assignment)
		if err != nil {
			return fmt.Errorf("assign rider: %w", err)
		}

		err = s.riderService.MarkInDelivery(ctx, riderID)
		if err != nil {
			// назначение на несуществующего райдера — нарушение контракта,
			// транзакция откатывается целиком
			return fmt.Errorf("mark rider in delivery: %w", err)
		}

		err = s.trackingLog.Append(ctx, assigned.TrackingID, entities.DriverAssigned.String())
		if err != nil {
			return fmt.Errorf("log driver assigned: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

// UpdateDeliveryStatus продвигает статус на один шаг вперед. pending-pickup
// и driver_assigned сюда не принимаются: первый выставляет только сверка
// платежа, второй — назначение райдера.
func (s *StateMachine) UpdateDeliveryStatus(ctx context.Context, parcelID int64, newStatus entities.DeliveryStatusType) (*entities.Parcel, error) {
	if parcelID <= 0 {
		return nil, ErrInvalidParcelID
	}
	if !newStatus.IsValid() {
		return nil, ErrUnknownStatus
	}
	if newStatus == entities.PendingPickup || newStatus == entities.DriverAssigned || newStatus == entities.ParcelCreated {
		return nil, ErrInvalidTransition
	}

	predecessor, ok := newStatus.Predecessor()
	if !ok {
		return nil, ErrInvalidTransition
	}

	var updated *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		if !current.DeliveryStatus.CanTransitionTo(newStatus) {
			return ErrInvalidTransition
		}

		updated, err = s.repository.UpdateStatusIf(ctx, parcelID, predecessor, newStatus)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}

		if newStatus == entities.ParcelDelivered {
			if updated.RiderID == nil {
				return fmt.Errorf("parcel %d has no assigned rider: %w", parcelID, ErrRiderNotFound)
			}
			err = s.riderService.MarkAvailable(ctx, *updated.RiderID)
			if err != nil {
				return fmt.Errorf("mark rider available: %w", err)
			}
		}

		err = s.trackingLog.Append(ctx, updated.TrackingID, newStatus.String())
		if err != nil {
			return fmt.Errorf("log delivery status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *StateMachine) GetParcel(ctx context.Context, id int64) (*entities.Parcel, error) {
	if id <= 0 {
		return nil, ErrInvalidParcelID
	}

	parcel, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	return parcel, nil
}

func (s *StateMachine) GetParcels(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	parcels, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get parcels: %w", err)
	}
	return parcels, nil
}

// StatusCounts агрегирует посылки по статусу доставки: пара (статус, количество)
// для каждого встречающегося значения.
func (s *StateMachine) StatusCounts(ctx context.Context) ([]entities.StatusCount, error) {
	counts, err := s.repository.StatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	return counts, nil
}

// DeliveredPerDay считает доставленные райдером посылки по дням по данным
// журнала отслеживания.
func (s *StateMachine) DeliveredPerDay(ctx context.Context, riderEmail string) ([]entities.DeliveredPerDay, error) {
	if !isValidEmail(riderEmail) {
		return nil, ErrMissingRequiredFields
	}

	perDay, err := s.repository.DeliveredPerDay(ctx, riderEmail)
	if err != nil {
		return nil, fmt.Errorf("delivered per day: %w", err)
	}
	return perDay, nil
}
