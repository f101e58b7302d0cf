package payment

import "errors"

var (
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrInvalidParcelID  = errors.New("invalid parcel id")
	ErrInvalidEmail     = errors.New("invalid email")

	// ErrGateway — шлюз недоступен или вернул некорректные данные; можно ретраить.
	ErrGateway = errors.New("payment gateway error")
	// ErrPaymentNotCompleted — шлюз не подтвердил оплату; мутаций не было.
	ErrPaymentNotCompleted = errors.New("payment not completed")
	// ErrDuplicateTransaction — нарушение уникальности transaction_id,
	// служебная ошибка идемпотентного пути.
	ErrDuplicateTransaction = errors.New("duplicate transaction")

	ErrPaymentNotFound   = errors.New("payment not found")
	ErrParcelNotFound    = errors.New("parcel not found")
	ErrInvalidTransition = errors.New("invalid delivery status transition")
	ErrForbidden         = errors.New("forbidden")
)
