package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicateUsername is returned by CreateUser when the username is already taken.
var ErrDuplicateUsername = errors.New("username already exists")

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign key
// violation, e.g. an exercise referencing a user that does not exist.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
