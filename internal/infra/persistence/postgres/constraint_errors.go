package postgres

import (
	"peeko/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgUniqueViolation
}

// violatedConstraint returns the constraint or index name of a unique violation, or "" when unknown.
func violatedConstraint(err error) string {
	if pgErr, ok := pgError(err); ok && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName
	}

	return ""
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgNotNullViolation
}
