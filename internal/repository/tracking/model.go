package tracking

import "time"

type TrackingLogEntryDB struct {
	ID         int64
	TrackingID string
	Status     string
	Details    string
	CreatedAt  time.Time
}
