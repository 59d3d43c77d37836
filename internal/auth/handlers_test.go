package auth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	if !isUniqueViolation(dup) {
		t.Fatalf("expected 23505 to be a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("insert: %w", dup)) {
		t.Fatalf("expected wrapped 23505 to be a unique violation")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign-key violation must not match")
	}
	if isUniqueViolation(errors.New("network error")) {
		t.Fatalf("plain errors must not match")
	}
}
