package tracking

import (
	"context"
	"fmt"

	"zapshift/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append только вставляет. UPDATE и DELETE по журналу не существуют.
func (r *Repository) Append(ctx context.Context, entry entities.TrackingLogEntry) error {
	query := `
		INSERT INTO trackings (tracking_id, status, details, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		entry.TrackingID,
		entry.Status,
		entry.Details,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected tracking repository append error: %w", err)
	}

	return nil
}

func (r *Repository) GetByTrackingID(ctx context.Context, trackingID string) ([]entities.TrackingLogEntry, error) {
	query := `
		SELECT id, tracking_id, status, details, created_at
		FROM trackings
		WHERE tracking_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.querier.Query(ctx, query, trackingID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}
	defer rows.Close()

	var entries []entities.TrackingLogEntry
	for rows.Next() {
		var entryDB TrackingLogEntryDB
		if err := rows.Scan(
			&entryDB.ID,
			&entryDB.TrackingID,
			&entryDB.Status,
			&entryDB.Details,
			&entryDB.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("unexpected tracking repository scan error: %w", err)
		}
		entries = append(entries, *ToDomain(&entryDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected tracking repository rows error: %w", err)
	}

	return entries, nil
}
