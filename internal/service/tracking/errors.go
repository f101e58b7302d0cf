package tracking

import "errors"

var (
	ErrInvalidTrackingID = errors.New("invalid tracking id")
	ErrInvalidStatus     = errors.New("invalid status")

	ErrLogNotFound = errors.New("tracking log not found")
)
