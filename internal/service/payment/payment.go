package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"zapshift/internal/entities"
	parcelservice "zapshift/internal/service/parcel"
)

// minorUnitsPerMajor: шлюз считает в минорных единицах валюты,
// запись платежа хранит сумму в мажорных.
const minorUnitsPerMajor = 100

// Engine — движок сверки платежей. Одно подтверждение шлюза обязано дать
// ровно одну запись платежа и ровно один переход посылки в pending-pickup,
// сколько бы раз оно ни было доставлено.
type Engine struct {
	gateway     Gateway
	repository  Repository
	parcelRepo  ParcelRepository
	trackingLog TrackingLog
	txManager   TxManager
}

func New(
	gateway Gateway,
	repository Repository,
	parcelRepo ParcelRepository,
	trackingLog TrackingLog,
	txManager TxManager,
) *Engine {
	return &Engine{
		gateway:     gateway,
		repository:  repository,
		parcelRepo:  parcelRepo,
		trackingLog: trackingLog,
		txManager:   txManager,
	}
}

// CreateCheckout открывает checkout-сессию шлюза для посылки.
// Сумма и метаданные берутся из записи посылки, а не из запроса.
func (e *Engine) CreateCheckout(ctx context.Context, parcelID int64) (*entities.CheckoutSession, error) {
	if parcelID <= 0 {
		return nil, ErrInvalidParcelID
	}

	parcel, err := e.parcelRepo.GetByID(ctx, parcelID)
	if err != nil {
		if errors.Is(err, parcelservice.ErrParcelNotFound) {
			return nil, ErrParcelNotFound
		}
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	req := entities.CheckoutRequest{
		ParcelID:    parcel.ID,
		ParcelName:  parcel.Name,
		TrackingID:  parcel.TrackingID,
		SenderEmail: parcel.SenderEmail,
		Cost:        parcel.Cost,
	}

	session, err := e.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return session, nil
}

// ReconcilePayment превращает подтверждение шлюза в доменные изменения
// ровно один раз:
//
//  1. Сессия разворачивается у шлюза; сбой — ErrGateway, можно ретраить.
//  2. Платеж ищется по transactionId: найден — идемпотентный no-op,
//     возвращается прежний результат.
//  3. Неоплаченная сессия — ErrPaymentNotCompleted без каких-либо мутаций.
//  4. Иначе в одной serializable-транзакции: условный перевод посылки
//     parcel_created -> pending-pickup + paid, вставка платежа,
//     запись parcel_paid в журнал.
//
// Гонку одинаковых подтверждений закрывает уникальный индекс на
// transaction_id: проигравший получает duplicate и уходит по пути no-op.
func (e *Engine) ReconcilePayment(ctx context.Context, sessionID string) (*entities.Reconciliation, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSessionID
	}

	confirmation, err := e.gateway.ResolveSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	var result *entities.Reconciliation
	err = e.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := e.repository.GetByTransactionID(ctx, confirmation.TransactionID)
		if err != nil && !errors.Is(err, ErrPaymentNotFound) {
			return fmt.Errorf("lookup payment: %w", err)
		}
		if existing != nil {
			result = &entities.Reconciliation{
				TransactionID:    existing.TransactionID,
				TrackingID:       existing.TrackingID,
				AlreadyProcessed: true,
			}
			return nil
		}

		if !confirmation.Paid() {
			return ErrPaymentNotCompleted
		}

		parcel, err := e.parcelRepo.GetByID(ctx, confirmation.ParcelID)
		if err != nil {
			if errors.Is(err, parcelservice.ErrParcelNotFound) {
				return ErrParcelNotFound
			}
			return fmt.Errorf("get parcel: %w", err)
		}
		if parcel.DeliveryStatus != entities.ParcelCreated {
			// посылка уже ушла дальше по жизненному циклу, откатывать ее
			// нельзя; платеж не вставляем
			return ErrInvalidTransition
		}

		if _, err := e.parcelRepo.MarkPaidPendingPickup(ctx, confirmation.ParcelID); err != nil {
			return fmt.Errorf("mark parcel paid: %w", err)
		}

		record := entities.Payment{
			TransactionID: confirmation.TransactionID,
			ParcelID:      confirmation.ParcelID,
			ParcelName:    confirmation.ParcelName,
			TrackingID:    confirmation.TrackingID,
			Amount:        float64(confirmation.AmountTotal) / minorUnitsPerMajor,
			Currency:      confirmation.Currency,
			CustomerEmail: confirmation.CustomerEmail,
			PaymentStatus: confirmation.PaymentStatus,
			PaidAt:        time.Now().UTC(),
		}

		inserted, err := e.repository.Create(ctx, record)
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		err = e.trackingLog.Append(ctx, confirmation.TrackingID, "parcel_paid")
		if err != nil {
			return fmt.Errorf("log parcel paid: %w", err)
		}

		result = &entities.Reconciliation{
			TransactionID:    inserted.TransactionID,
			TrackingID:       inserted.TrackingID,
			AlreadyProcessed: false,
		}
		return nil
	})
	if err != nil {
		// конкурентный дубликат того же transactionId: транзакция-неудачник
		// перечитывает уже вставленный платеж и возвращает прежний результат
		if errors.Is(err, ErrDuplicateTransaction) {
			return e.priorResult(ctx, confirmation.TransactionID)
		}
		return nil, err
	}
	return result, nil
}

// History возвращает платежи клиента, новые первыми. Чужая история закрыта.
func (e *Engine) History(ctx context.Context, requesterEmail, customerEmail string) ([]entities.Payment, error) {
	if strings.TrimSpace(customerEmail) == "" {
		return nil, ErrInvalidEmail
	}
	if customerEmail != requesterEmail {
		return nil, ErrForbidden
	}

	payments, err := e.repository.GetAllByCustomer(ctx, customerEmail)
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}
	return payments, nil
}

func (e *Engine) priorResult(ctx context.Context, transactionID string) (*entities.Reconciliation, error) {
	existing, err := e.repository.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("reread duplicate payment: %w", err)
	}
	return &entities.Reconciliation{
		TransactionID:    existing.TransactionID,
		TrackingID:       existing.TrackingID,
		AlreadyProcessed: true,
	}, nil
}
