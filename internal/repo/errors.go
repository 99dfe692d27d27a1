package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicatedValueUnique is returned when a write violates a unique constraint.
var ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")

// ErrForeignKey is returned when a write references a row that does not exist.
var ErrForeignKey = errors.New("referenced record does not exist")

// ErrOutOfRange is returned when a value does not fit its column.
var ErrOutOfRange = errors.New("value out of range")

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicatedValueUnique
		case "23503":
			return ErrForeignKey
		case "22003":
			return ErrOutOfRange
		}
	}
	return err
}
