package repository

import (
	"context"
	"database/sql"
	"fmt"

	"ancientsvc/internal/dataset"
)

var _ dataset.Loader = (*DatasetStore)(nil)

// DatasetStore reads the historical dataset from Postgres. It implements
// dataset.Loader so the engine stays agnostic of where entries come from.
type DatasetStore struct {
	db *sql.DB
}

// NewDatasetStore creates a new DatasetStore.
func NewDatasetStore(db *sql.DB) *DatasetStore {
	return &DatasetStore{db: db}
}

// Load returns all historical entries in display order.
func (s *DatasetStore) Load(ctx context.Context) (*dataset.Dataset, error) {
	query := `SELECT name, unit, year_range, note, image, modern_usd
              FROM historical_entries
              ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query historical entries: %w", err)
	}
	defer rows.Close() //nolint:errcheck // best-effort close

	var entries []dataset.Entry
	for rows.Next() {
		var e dataset.Entry
		if err := rows.Scan(&e.Name, &e.Unit, &e.YearRange, &e.Note, &e.Image, &e.ModernUSD); err != nil {
			return nil, fmt.Errorf("scan historical entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate historical entries: %w", err)
	}

	return &dataset.Dataset{Civilizations: entries}, nil
}
