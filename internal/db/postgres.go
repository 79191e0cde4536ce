package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Connect opens a Postgres pool via the pgx stdlib driver and verifies
// the connection.
func Connect(dbURL string) (*sql.DB, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database URL is empty")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate bootstraps the products table. The check constraint backs up
// the repository-level validation gate.
func Migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS products (
		id          VARCHAR(36) PRIMARY KEY,
		name        TEXT NOT NULL CHECK (name <> ''),
		price       NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		category    TEXT NOT NULL CHECK (category <> ''),
		tags        JSONB NOT NULL DEFAULT '[]',
		colors      JSONB NOT NULL DEFAULT '[]',
		sizes       JSONB NOT NULL DEFAULT '[]',
		description TEXT NOT NULL DEFAULT '',
		image       TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_products_category ON products (category);`

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate products table: %w", err)
	}
	return nil
}
