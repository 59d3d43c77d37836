// Package store owns the database handles the rest of the app queries
// through. Construction only configures the handles; no query is issued
// until a flow asks for one.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Store bundles the pgx pool used by the feature repositories and a
// database/sql handle kept for the admin surface and migrations.
type Store struct {
	Pool *pgxpool.Pool
	DB   *sql.DB
}

// Open configures both handles against the given DSN and verifies
// connectivity with a single ping.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("store: empty dsn")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: create pool: %w", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: open db: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return &Store{Pool: pool, DB: db}, nil
}

// Close releases both handles.
func (s *Store) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
	if s.DB != nil {
		s.DB.Close()
	}
}
