// Package mysqlerr translates MySQL driver errors into the signals the
// usecase layer cares about. Uniqueness invariants (appointment slots,
// one active consultation per patient) live in the database; the
// resulting 1062 errors are the conflict signal.
package mysqlerr

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	codeDuplicateEntry = 1062
	codeForeignKey     = 1452
)

// IsDuplicateKey reports whether err is a unique constraint violation.
func IsDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == codeDuplicateEntry
	}
	return false
}

// IsForeignKey reports whether err is a foreign key violation.
func IsForeignKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == codeForeignKey
	}
	return false
}
