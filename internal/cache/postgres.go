package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// PostgresStore keeps parsed messages in a PostgreSQL table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store on an open pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the cache table if needed.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS parsed_messages (
			hash       TEXT PRIMARY KEY,
			source     TEXT NOT NULL,
			ast        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("create parsed_messages table: %w", err)
	}

	log.Info().Msg("Parse cache schema ensured")
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, hash string) ([]byte, bool, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT ast FROM parsed_messages WHERE hash = $1`, hash).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query parsed message: %w", err)
	}
	return data, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, hash, source string, encoded []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO parsed_messages (hash, source, ast)
		VALUES ($1, $2, $3)
		ON CONFLICT (hash) DO UPDATE
		SET ast = EXCLUDED.ast, updated_at = now()
	`, hash, source, encoded)
	if err != nil {
		return fmt.Errorf("upsert parsed message: %w", err)
	}
	return nil
}
