package parcel

import "time"

type ParcelDB struct {
	ID             int64
	TrackingID     string
	Name           string
	SenderEmail    string
	RiderID        *int64
	RiderName      *string
	RiderEmail     *string
	Cost           int64
	DeliveryStatus string
	PaymentStatus  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
