package tracking

import "zapshift/internal/entities"

func ToDomain(e *TrackingLogEntryDB) *entities.TrackingLogEntry {
	if e == nil {
		return nil
	}
	return &entities.TrackingLogEntry{
		ID:         e.ID,
		TrackingID: e.TrackingID,
		Status:     e.Status,
		Details:    e.Details,
		CreatedAt:  e.CreatedAt,
	}
}
