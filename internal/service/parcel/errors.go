package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidParcelID       = errors.New("invalid parcel id")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrUnknownStatus         = errors.New("unknown delivery status")

	ErrParcelNotFound    = errors.New("parcel not found")
	ErrRiderNotFound     = errors.New("rider not found")
	ErrInvalidTransition = errors.New("invalid delivery status transition")
	ErrAlreadyDelivered  = errors.New("parcel already delivered")
)
