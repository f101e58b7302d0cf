package entities

import "time"

type Parcel struct {
	ID             int64
	TrackingID     string
	Name           string
	SenderEmail    string
	RiderID        *int64
	RiderName      *string
	RiderEmail     *string
	Cost           int64
	DeliveryStatus DeliveryStatusType
	PaymentStatus  PaymentStatusType
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DeliveryStatusType string

// Статусы доставки строго упорядочены, переход возможен только на следующий.
const (
	ParcelCreated   DeliveryStatusType = "parcel_created"
	PendingPickup   DeliveryStatusType = "pending-pickup"
	DriverAssigned  DeliveryStatusType = "driver_assigned"
	RiderArriving   DeliveryStatusType = "rider_arriving"
	ParcelDelivered DeliveryStatusType = "parcel_delivered"
)

// deliveryStatusRank задаёт канонический порядок жизненного цикла.
var deliveryStatusRank = map[DeliveryStatusType]int{
	ParcelCreated:   0,
	PendingPickup:   1,
	DriverAssigned:  2,
	RiderArriving:   3,
	ParcelDelivered: 4,
}

func (s DeliveryStatusType) String() string {
	return string(s)
}

// IsValid сообщает, входит ли значение в перечисление статусов.
func (s DeliveryStatusType) IsValid() bool {
	_, ok := deliveryStatusRank[s]
	return ok
}

// IsTerminal: parcel_delivered конечный статус, из него переходов нет.
func (s DeliveryStatusType) IsTerminal() bool {
	return s == ParcelDelivered
}

// CanTransitionTo разрешает только шаг на соседний статус вперед:
// ни прыжков через статус, ни откатов назад.
func (s DeliveryStatusType) CanTransitionTo(next DeliveryStatusType) bool {
	from, ok := deliveryStatusRank[s]
	if !ok {
		return false
	}
	to, ok := deliveryStatusRank[next]
	if !ok {
		return false
	}
	return to == from+1
}

// Predecessor возвращает единственный легальный предыдущий статус.
func (s DeliveryStatusType) Predecessor() (DeliveryStatusType, bool) {
	rank, ok := deliveryStatusRank[s]
	if !ok || rank == 0 {
		return "", false
	}
	for status, r := range deliveryStatusRank {
		if r == rank-1 {
			return status, true
		}
	}
	return "", false
}

type PaymentStatusType string

const (
	PaymentUnpaid PaymentStatusType = "unpaid"
	PaymentPaid   PaymentStatusType = "paid"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type ParcelModify struct {
	ID             *int64
	TrackingID     *string
	Name           *string
	SenderEmail    *string
	RiderID        *int64
	RiderName      *string
	RiderEmail     *string
	Cost           *int64
	DeliveryStatus *DeliveryStatusType
	PaymentStatus  *PaymentStatusType
}

// ParcelFilter параметры выборки посылок.
type ParcelFilter struct {
	SenderEmail    *string
	RiderEmail     *string
	DeliveryStatus *DeliveryStatusType
	// ExcludeDelivered используется райдером для списка активных посылок.
	ExcludeDelivered bool
}

// StatusCount агрегат количества посылок по статусу доставки.
type StatusCount struct {
	Status DeliveryStatusType
	Count  int64
}

// DeliveredPerDay количество доставленных райдером посылок за день.
type DeliveredPerDay struct {
	Day   string
	Count int64
}
