// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/decisionrecord"
)

// DecisionRecord is the model entity for the DecisionRecord schema.
type DecisionRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DecisionType holds the value of the "decision_type" field.
	DecisionType decisionrecord.DecisionType `json:"decision_type,omitempty"`
	// Deterministic replay seed
	Seed string `json:"seed,omitempty"`
	// Inputs holds the value of the "inputs" field.
	Inputs map[string]interface{} `json:"inputs,omitempty"`
	// Outputs holds the value of the "outputs" field.
	Outputs map[string]interface{} `json:"outputs,omitempty"`
	// RulesTriggered holds the value of the "rules_triggered" field.
	RulesTriggered []string `json:"rules_triggered,omitempty"`
	// FinalVerdict holds the value of the "final_verdict" field.
	FinalVerdict decisionrecord.FinalVerdict `json:"final_verdict,omitempty"`
	// 0..1
	Confidence float64 `json:"confidence,omitempty"`
	// Status holds the value of the "status" field.
	Status decisionrecord.Status `json:"status,omitempty"`
	// SHA-256 over canonical JSON of the sealed field set
	RecordHash string `json:"record_hash,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DecisionRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case decisionrecord.FieldInputs, decisionrecord.FieldOutputs, decisionrecord.FieldRulesTriggered:
			values[i] = new([]byte)
		case decisionrecord.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case decisionrecord.FieldID, decisionrecord.FieldDecisionType, decisionrecord.FieldSeed, decisionrecord.FieldFinalVerdict, decisionrecord.FieldStatus, decisionrecord.FieldRecordHash:
			values[i] = new(sql.NullString)
		case decisionrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DecisionRecord fields.
func (_m *DecisionRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case decisionrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case decisionrecord.FieldDecisionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision_type", values[i])
			} else if value.Valid {
				_m.DecisionType = decisionrecord.DecisionType(value.String)
			}
		case decisionrecord.FieldSeed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seed", values[i])
			} else if value.Valid {
				_m.Seed = value.String
			}
		case decisionrecord.FieldInputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field inputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Inputs); err != nil {
					return fmt.Errorf("unmarshal field inputs: %w", err)
				}
			}
		case decisionrecord.FieldOutputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Outputs); err != nil {
					return fmt.Errorf("unmarshal field outputs: %w", err)
				}
			}
		case decisionrecord.FieldRulesTriggered:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rules_triggered", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RulesTriggered); err != nil {
					return fmt.Errorf("unmarshal field rules_triggered: %w", err)
				}
			}
		case decisionrecord.FieldFinalVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_verdict", values[i])
			} else if value.Valid {
				_m.FinalVerdict = decisionrecord.FinalVerdict(value.String)
			}
		case decisionrecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case decisionrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = decisionrecord.Status(value.String)
			}
		case decisionrecord.FieldRecordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_hash", values[i])
			} else if value.Valid {
				_m.RecordHash = value.String
			}
		case decisionrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DecisionRecord.
// This includes values selected through modifiers, order, etc.
func (_m *DecisionRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DecisionRecord.
// Note that you need to call DecisionRecord.Unwrap() before calling this method if this DecisionRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DecisionRecord) Update() *DecisionRecordUpdateOne {
	return NewDecisionRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DecisionRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DecisionRecord) Unwrap() *DecisionRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DecisionRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DecisionRecord) String() string {
	var builder strings.Builder
	builder.WriteString("DecisionRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("decision_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.DecisionType))
	builder.WriteString(", ")
	builder.WriteString("seed=")
	builder.WriteString(_m.Seed)
	builder.WriteString(", ")
	builder.WriteString("inputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Inputs))
	builder.WriteString(", ")
	builder.WriteString("outputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outputs))
	builder.WriteString(", ")
	builder.WriteString("rules_triggered=")
	builder.WriteString(fmt.Sprintf("%v", _m.RulesTriggered))
	builder.WriteString(", ")
	builder.WriteString("final_verdict=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalVerdict))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("record_hash=")
	builder.WriteString(_m.RecordHash)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DecisionRecords is a parsable slice of DecisionRecord.
type DecisionRecords []*DecisionRecord
