package entities

import "time"

type Rider struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	District   string
	Status     RiderStatusType
	WorkStatus WorkStatusType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type RiderStatusType string

const (
	RiderPending  RiderStatusType = "pending"
	RiderApproved RiderStatusType = "approved"
	RiderRejected RiderStatusType = "rejected"
)

func (t RiderStatusType) String() string {
	return string(t)
}

type WorkStatusType string

const (
	WorkAvailable  WorkStatusType = "available"
	WorkInDelivery WorkStatusType = "in_delivery"
)

func (t WorkStatusType) String() string {
	return string(t)
}

type RiderModify struct {
	ID         *int64
	Name       *string
	Email      *string
	Phone      *string
	District   *string
	Status     *RiderStatusType
	WorkStatus *WorkStatusType
}

type RiderFilter struct {
	Status     *RiderStatusType
	District   *string
	WorkStatus *WorkStatusType
}
