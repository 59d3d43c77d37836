package projects

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Insert stores a project whose id was generated by the caller and
	// returns the persisted row.
	Insert(ctx context.Context, p *Project) (*Project, error)

	// ListByUser returns all projects owned by the user, most recently
	// updated first.
	ListByUser(ctx context.Context, userID string) ([]Project, error)
}

type PgxRepo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *PgxRepo {
	return &PgxRepo{Pool: pool}
}

func (r *PgxRepo) Insert(ctx context.Context, p *Project) (*Project, error) {
	var out Project
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO projects (id, user_id, title)
		 VALUES ($1::uuid, $2::uuid, $3)
		 RETURNING id::text, user_id::text, title, thumbnail, created_at, updated_at`,
		p.ID, p.UserID, p.Title,
	).Scan(&out.ID, &out.UserID, &out.Title, &out.Thumbnail, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PgxRepo) ListByUser(ctx context.Context, userID string) ([]Project, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id::text, user_id::text, title, thumbnail, created_at, updated_at
		 FROM projects
		 WHERE user_id = $1::uuid
		 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Thumbnail, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
