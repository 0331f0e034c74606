// Package repository implements Postgres-backed access to the historical dataset.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ancientsvc/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver registration
)

const connectTimeout = 5 * time.Second

// NewPostgresDB opens a pooled connection for the dataset store and verifies it
// with a bounded ping before handing it out.
func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeSec) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database at %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return db, nil
}
