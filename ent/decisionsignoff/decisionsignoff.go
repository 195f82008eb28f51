// Code generated by ent, DO NOT EDIT.

package decisionsignoff

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the decisionsignoff type in the database.
	Label = "decision_signoff"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDecisionID holds the string denoting the decision_id field in the database.
	FieldDecisionID = "decision_id"
	// FieldSigner holds the string denoting the signer field in the database.
	FieldSigner = "signer"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldSignedAt holds the string denoting the signed_at field in the database.
	FieldSignedAt = "signed_at"
	// Table holds the table name of the decisionsignoff in the database.
	Table = "decision_signoffs"
)

// Columns holds all SQL columns for decisionsignoff fields.
var Columns = []string{
	FieldID,
	FieldDecisionID,
	FieldSigner,
	FieldNote,
	FieldSignedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSignedAt holds the default value on creation for the "signed_at" field.
	DefaultSignedAt func() time.Time
)

// OrderOption defines the ordering options for the DecisionSignoff queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDecisionID orders the results by the decision_id field.
func ByDecisionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionID, opts...).ToFunc()
}

// BySigner orders the results by the signer field.
func BySigner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSigner, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// BySignedAt orders the results by the signed_at field.
func BySignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignedAt, opts...).ToFunc()
}
