package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToConnect       = errors.New("failed to open postgres connection")
	ErrFailedToParseConfig   = errors.New("failed to parse postgres config")
	ErrHealthcheckFailed     = errors.New("postgres healthcheck failed")
	ErrFailedToMigrate       = errors.New("failed to apply migrations")
	ErrMigrationsDirNotFound = errors.New("migrations directory not found")
	ErrMigrationsPathNotSet  = errors.New("migrations path not set")
)

// IsNotFoundError reports whether err is a pgx no-rows result, so query
// code can map it to its own not-found sentinel.
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports a unique constraint violation (SQLSTATE 23505).
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
