package database

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// IsUniqueViolation reports whether err is a UNIQUE (or primary key)
// constraint failure. The supervisor inbox relies on this to treat a
// duplicate event_id insert as benign deduplication.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
			se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	// ent wraps driver errors; its constraint classification is coarser
	// but a UNIQUE index is the only constraint the inbox can trip.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsMissingSchema reports whether err means the database or a table does
// not exist yet. First use before schema init must return empty results,
// not fault. SQLite surfaces this only as a generic error string.
func IsMissingSchema(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "unable to open database file")
}
