package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestTranslateErr(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	if !errors.Is(translateErr(uniqueErr), ErrDuplicateUsername) {
		t.Fatalf("expected unique violation mapped to ErrDuplicateUsername")
	}

	otherPg := &pgconn.PgError{Code: "23502"}
	if errors.Is(translateErr(otherPg), ErrDuplicateUsername) {
		t.Fatalf("unexpected mapping for non-unique violation")
	}

	plain := errors.New("connection refused")
	if translateErr(plain) != plain {
		t.Fatalf("expected unrelated errors passed through")
	}
}
