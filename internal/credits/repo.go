package credits

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickai0118/OpenLovart/internal/audit"
)

// ErrNotFound reports that no credit row exists for the user yet. Callers
// must treat it as the recoverable "bootstrap" signal, not a failure.
var ErrNotFound = errors.New("credits: balance not found")

type Repository interface {
	// GetBalance returns the stored balance or ErrNotFound.
	GetBalance(ctx context.Context, userID string) (int64, error)

	// InitBalance inserts a row with the given balance and returns the
	// adopted value. A concurrent insert winning the race is not an error;
	// the given balance is adopted as-is.
	InitBalance(ctx context.Context, userID string, balance int64) (int64, error)
}

type PgxRepo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *PgxRepo {
	return &PgxRepo{Pool: pool}
}

func (r *PgxRepo) GetBalance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := r.Pool.QueryRow(ctx,
		`SELECT balance FROM credits WHERE user_id = $1::uuid`,
		userID,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *PgxRepo) InitBalance(ctx context.Context, userID string, balance int64) (int64, error) {
	var adopted int64
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO credits (user_id, balance)
		 VALUES ($1::uuid, $2)
		 ON CONFLICT (user_id) DO NOTHING
		 RETURNING balance`,
		userID, balance,
	).Scan(&adopted)
	if errors.Is(err, pgx.ErrNoRows) {
		// Row already existed; keep the requested default.
		return balance, nil
	}
	if err != nil {
		return 0, err
	}

	_ = audit.Write(ctx, r.Pool, audit.Entry{
		UserID:     &userID,
		Action:     "credits_initialized",
		EntityType: "credits",
		Metadata:   []byte(fmt.Sprintf(`{"balance":%d}`, adopted)),
	})
	return adopted, nil
}
