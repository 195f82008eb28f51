// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/decisionsignoff"
)

// DecisionSignoff is the model entity for the DecisionSignoff schema.
type DecisionSignoff struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DecisionID holds the value of the "decision_id" field.
	DecisionID string `json:"decision_id,omitempty"`
	// Signer holds the value of the "signer" field.
	Signer string `json:"signer,omitempty"`
	// Note holds the value of the "note" field.
	Note string `json:"note,omitempty"`
	// SignedAt holds the value of the "signed_at" field.
	SignedAt     time.Time `json:"signed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DecisionSignoff) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case decisionsignoff.FieldID:
			values[i] = new(sql.NullInt64)
		case decisionsignoff.FieldDecisionID, decisionsignoff.FieldSigner, decisionsignoff.FieldNote:
			values[i] = new(sql.NullString)
		case decisionsignoff.FieldSignedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DecisionSignoff fields.
func (_m *DecisionSignoff) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case decisionsignoff.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case decisionsignoff.FieldDecisionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision_id", values[i])
			} else if value.Valid {
				_m.DecisionID = value.String
			}
		case decisionsignoff.FieldSigner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signer", values[i])
			} else if value.Valid {
				_m.Signer = value.String
			}
		case decisionsignoff.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case decisionsignoff.FieldSignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field signed_at", values[i])
			} else if value.Valid {
				_m.SignedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DecisionSignoff.
// This includes values selected through modifiers, order, etc.
func (_m *DecisionSignoff) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DecisionSignoff.
// Note that you need to call DecisionSignoff.Unwrap() before calling this method if this DecisionSignoff
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DecisionSignoff) Update() *DecisionSignoffUpdateOne {
	return NewDecisionSignoffClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DecisionSignoff entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DecisionSignoff) Unwrap() *DecisionSignoff {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DecisionSignoff is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DecisionSignoff) String() string {
	var builder strings.Builder
	builder.WriteString("DecisionSignoff(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("decision_id=")
	builder.WriteString(_m.DecisionID)
	builder.WriteString(", ")
	builder.WriteString("signer=")
	builder.WriteString(_m.Signer)
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
	builder.WriteString(", ")
	builder.WriteString("signed_at=")
	builder.WriteString(_m.SignedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DecisionSignoffs is a parsable slice of DecisionSignoff.
type DecisionSignoffs []*DecisionSignoff
