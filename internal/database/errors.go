package database

import (
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound is returned by repositories when no row matches the given id.
var ErrNotFound = errors.New("record not found")

// ConstraintError wraps a SQLite constraint violation (foreign key, not null,
// unique, ...). It is a client-caused storage failure rather than a bug.
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string {
	return "constraint violation: " + e.Err.Error()
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// ForeignKey reports whether the violated constraint is a foreign key.
func (e *ConstraintError) ForeignKey() bool {
	var sqliteErr sqlite3.Error
	if errors.As(e.Err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}

// Classify maps driver and ORM errors onto the persistence error taxonomy:
// ErrNotFound, *ConstraintError, or the original error with a stack attached.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return &ConstraintError{Err: err}
	}
	return errors.WithStack(err)
}
