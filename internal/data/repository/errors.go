package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicate marks a unique constraint violation.
	ErrDuplicate = errors.New("duplicate key")
	// ErrNotFound marks an update or delete that matched no row.
	ErrNotFound = errors.New("record not found")
)

const uniqueViolation = "23505"

// classify maps driver errors onto the repository sentinels.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w (%s): %w", ErrDuplicate, pgErr.ConstraintName, err)
	}
	return err
}
