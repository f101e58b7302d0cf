package rider

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrRiderNotFound = errors.New("rider not found")
	ErrConflict      = errors.New("resource already exists")
)
