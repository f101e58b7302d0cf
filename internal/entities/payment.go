package entities

import "time"

// Payment неизменяемая запись о подтвержденном платеже.
// TransactionID выдается платежным шлюзом и служит ключом дедупликации.
type Payment struct {
	ID            int64
	TransactionID string
	ParcelID      int64
	ParcelName    string
	TrackingID    string
	Amount        float64
	Currency      string
	CustomerEmail string
	PaymentStatus string
	PaidAt        time.Time
}

// GatewayConfirmation распакованный ответ шлюза по checkout-сессии.
type GatewayConfirmation struct {
	TransactionID string
	PaymentStatus string
	// AmountTotal в минорных единицах валюты, как отдает шлюз.
	AmountTotal   int64
	Currency      string
	CustomerEmail string
	ParcelID      int64
	ParcelName    string
	TrackingID    string
}

// Paid сообщает, подтвердил ли шлюз оплату сессии.
func (c GatewayConfirmation) Paid() bool {
	return c.PaymentStatus == "paid"
}

// CheckoutRequest запрос на создание checkout-сессии у шлюза.
type CheckoutRequest struct {
	ParcelID    int64
	ParcelName  string
	TrackingID  string
	SenderEmail string
	// Cost в мажорных единицах, шлюзу уходит Cost*100.
	Cost int64
}

type CheckoutSession struct {
	SessionID string
	URL       string
}

// Reconciliation результат сверки платежа. Повторная доставка того же
// transactionId возвращает прежний результат с AlreadyProcessed=true.
type Reconciliation struct {
	TransactionID    string
	TrackingID       string
	AlreadyProcessed bool
}
