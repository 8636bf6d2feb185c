package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error kinds returned by the core services. Controllers map these onto HTTP
// status codes; everything else is treated as an internal error.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
)

// IsUniqueViolation reports whether err is a Postgres duplicate-key error
// (code 23505), e.g. a duplicate email or a clashing bill number.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
