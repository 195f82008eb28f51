// Code generated by ent, DO NOT EDIT.

package decisionrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the decisionrecord type in the database.
	Label = "decision_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "decision_id"
	// FieldDecisionType holds the string denoting the decision_type field in the database.
	FieldDecisionType = "decision_type"
	// FieldSeed holds the string denoting the seed field in the database.
	FieldSeed = "seed"
	// FieldInputs holds the string denoting the inputs field in the database.
	FieldInputs = "inputs"
	// FieldOutputs holds the string denoting the outputs field in the database.
	FieldOutputs = "outputs"
	// FieldRulesTriggered holds the string denoting the rules_triggered field in the database.
	FieldRulesTriggered = "rules_triggered"
	// FieldFinalVerdict holds the string denoting the final_verdict field in the database.
	FieldFinalVerdict = "final_verdict"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRecordHash holds the string denoting the record_hash field in the database.
	FieldRecordHash = "record_hash"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the decisionrecord in the database.
	Table = "decision_records"
)

// Columns holds all SQL columns for decisionrecord fields.
var Columns = []string{
	FieldID,
	FieldDecisionType,
	FieldSeed,
	FieldInputs,
	FieldOutputs,
	FieldRulesTriggered,
	FieldFinalVerdict,
	FieldConfidence,
	FieldStatus,
	FieldRecordHash,
	FieldCreatedAt,
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
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// DecisionType defines the type for the "decision_type" enum field.
type DecisionType string

// DecisionType values.
const (
	DecisionTypeNAVIGATION DecisionType = "NAVIGATION"
	DecisionTypeCOMPARE    DecisionType = "COMPARE"
	DecisionTypeHEALTH     DecisionType = "HEALTH"
	DecisionTypePOLICY     DecisionType = "POLICY"
)

func (dt DecisionType) String() string {
	return string(dt)
}

// DecisionTypeValidator is a validator for the "decision_type" field enum values. It is called by the builders before save.
func DecisionTypeValidator(dt DecisionType) error {
	switch dt {
	case DecisionTypeNAVIGATION, DecisionTypeCOMPARE, DecisionTypeHEALTH, DecisionTypePOLICY:
		return nil
	default:
		return fmt.Errorf("decisionrecord: invalid enum value for decision_type field: %q", dt)
	}
}

// FinalVerdict defines the type for the "final_verdict" enum field.
type FinalVerdict string

// FinalVerdict values.
const (
	FinalVerdictALLOW           FinalVerdict = "ALLOW"
	FinalVerdictWARN            FinalVerdict = "WARN"
	FinalVerdictREQUIRE_SIGNOFF FinalVerdict = "REQUIRE_SIGNOFF"
	FinalVerdictBLOCK           FinalVerdict = "BLOCK"
)

func (fv FinalVerdict) String() string {
	return string(fv)
}

// FinalVerdictValidator is a validator for the "final_verdict" field enum values. It is called by the builders before save.
func FinalVerdictValidator(fv FinalVerdict) error {
	switch fv {
	case FinalVerdictALLOW, FinalVerdictWARN, FinalVerdictREQUIRE_SIGNOFF, FinalVerdictBLOCK:
		return nil
	default:
		return fmt.Errorf("decisionrecord: invalid enum value for final_verdict field: %q", fv)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusRECORDED is the default value of the Status enum.
const DefaultStatus = StatusRECORDED

// Status values.
const (
	StatusRECORDED Status = "RECORDED"
	StatusSIGNED   Status = "SIGNED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRECORDED, StatusSIGNED:
		return nil
	default:
		return fmt.Errorf("decisionrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DecisionRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDecisionType orders the results by the decision_type field.
func ByDecisionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionType, opts...).ToFunc()
}

// BySeed orders the results by the seed field.
func BySeed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeed, opts...).ToFunc()
}

// ByFinalVerdict orders the results by the final_verdict field.
func ByFinalVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalVerdict, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRecordHash orders the results by the record_hash field.
func ByRecordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordHash, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
