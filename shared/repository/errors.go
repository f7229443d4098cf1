package repository

import (
	"errors"
	"slices"

	"github.com/lib/pq"
)

// IsViolation reports whether err wraps a Postgres error with one of the given SQLSTATE codes.
func IsViolation(err error, codes ...string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return slices.Contains(codes, string(pqErr.Code))
}
