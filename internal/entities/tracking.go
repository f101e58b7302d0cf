package entities

import "time"

// TrackingLogEntry запись append-only журнала отслеживания.
// Записи никогда не изменяются и не удаляются.
type TrackingLogEntry struct {
	ID         int64
	TrackingID string
	Status     string
	Details    string
	CreatedAt  time.Time
}
