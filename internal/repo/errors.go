package repo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/people-registry/internal/domain"
)

// NicknameConstraint is the name of the unique constraint on people.nickname,
// declared in migrations/00001_create_people.sql.
const NicknameConstraint = "people_nickname_key"

// sqlStateUniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const sqlStateUniqueViolation = "23505"

// storeError is the part of a PostgreSQL error the repo makes decisions on.
type storeError struct {
	uniqueViolation bool
	constraint      string
}

// parseStoreError extracts a storeError from err.
// ok is false when err does not carry a structured server error
// (network failures, scan errors, context cancellation).
func parseStoreError(err error) (se storeError, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return storeError{}, false
	}
	return storeError{
		uniqueViolation: pgErr.Code == sqlStateUniqueViolation,
		constraint:      pgErr.ConstraintName,
	}, true
}

// classifyInsertError maps an INSERT failure onto the domain taxonomy.
// Only a unique violation of NicknameConstraint becomes domain.ErrConflict;
// everything else keeps its original error so it surfaces as a storage failure.
func classifyInsertError(err error) error {
	if se, ok := parseStoreError(err); ok && se.uniqueViolation && se.constraint == NicknameConstraint {
		return fmt.Errorf("%w: nickname already taken", domain.ErrConflict)
	}
	return classifyConnError(err)
}

// classifyConnError marks failures to reach the database as
// domain.ErrUnavailable and returns every other error unchanged.
// An error already marked by withConn is not marked again.
func classifyConnError(err error) error {
	if errors.Is(err, domain.ErrUnavailable) {
		return err
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return err
}
