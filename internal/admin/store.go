package admin

import (
	"context"
	"database/sql"
	"time"
)

// Store reads operator-facing aggregates. It runs on the database/sql
// handle rather than the pgx pool so it stays usable from plain tooling.
type Store struct {
	DB *sql.DB
}

type LatestUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type LatestProject struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

type Overview struct {
	UsersTotal     int64           `json:"users_total"`
	ProjectsTotal  int64           `json:"projects_total"`
	CreditsIssued  int64           `json:"credits_issued"`
	LatestUsers    []LatestUser    `json:"latest_users"`
	LatestProjects []LatestProject `json:"latest_projects"`
}

func (s *Store) Overview(ctx context.Context) (Overview, error) {
	var out Overview

	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&out.UsersTotal); err != nil {
		return Overview{}, err
	}
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&out.ProjectsTotal); err != nil {
		return Overview{}, err
	}
	if err := s.DB.QueryRowContext(ctx, `SELECT COALESCE(SUM(balance), 0)::bigint FROM credits`).Scan(&out.CreditsIssued); err != nil {
		return Overview{}, err
	}

	users, err := s.latestUsers(ctx)
	if err != nil {
		return Overview{}, err
	}
	out.LatestUsers = users

	projects, err := s.latestProjects(ctx)
	if err != nil {
		return Overview{}, err
	}
	out.LatestProjects = projects

	return out, nil
}

func (s *Store) latestUsers(ctx context.Context) ([]LatestUser, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id::text, email, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT 20`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LatestUser
	for rows.Next() {
		var u LatestUser
		var created time.Time
		if err := rows.Scan(&u.ID, &u.Email, &created); err != nil {
			return nil, err
		}
		u.CreatedAt = created.Format(time.RFC3339)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Store) latestProjects(ctx context.Context) ([]LatestProject, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id::text, user_id::text, title, created_at
		FROM projects
		ORDER BY created_at DESC
		LIMIT 20`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LatestProject
	for rows.Next() {
		var p LatestProject
		var created time.Time
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &created); err != nil {
			return nil, err
		}
		p.CreatedAt = created.Format(time.RFC3339)
		out = append(out, p)
	}
	return out, rows.Err()
}
