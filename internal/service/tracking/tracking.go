package tracking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"zapshift/internal/entities"
)

// Log append-only журнал статусов посылки. Записи не изменяются и не
// удаляются: журнал обязан восстанавливать точную последовательность
// переходов по trackingId.
type Log struct {
	repository Repository
}

func New(repository Repository) *Log {
	return &Log{
		repository: repository,
	}
}

// Append фиксирует очередной статус. Ошибка записи отдается вызывающему:
// молча терять событие журнала нельзя.
func (l *Log) Append(ctx context.Context, trackingID, status string) error {
	if strings.TrimSpace(trackingID) == "" {
		return ErrInvalidTrackingID
	}
	if strings.TrimSpace(status) == "" {
		return ErrInvalidStatus
	}

	entry := entities.TrackingLogEntry{
		TrackingID: trackingID,
		Status:     status,
		Details:    humanize(status),
		CreatedAt:  time.Now().UTC(),
	}

	err := l.repository.Append(ctx, entry)
	if err != nil {
		return fmt.Errorf("append tracking log: %w", err)
	}
	return nil
}

func (l *Log) GetByTrackingID(ctx context.Context, trackingID string) ([]entities.TrackingLogEntry, error) {
	if strings.TrimSpace(trackingID) == "" {
		return nil, ErrInvalidTrackingID
	}

	entries, err := l.repository.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("get tracking log: %w", err)
	}
	return entries, nil
}

// humanize разворачивает токен статуса в читаемое описание: "parcel_paid" -> "parcel paid".
func humanize(status string) string {
	return strings.Join(strings.Split(status, "_"), " ")
}
