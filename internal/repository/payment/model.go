package payment

import "time"

type PaymentDB struct {
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
