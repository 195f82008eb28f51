// Code generated by ent, DO NOT EDIT.

package decisionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldContainsFold(FieldID, id))
}

// Seed applies equality check predicate on the "seed" field. It's identical to SeedEQ.
func Seed(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEQ(FieldSeed, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEQ(FieldConfidence, v))
}

// RecordHash applies equality check predicate on the "record_hash" field. It's identical to RecordHashEQ.
func RecordHash(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEQ(FieldRecordHash, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// DecisionTypeEQ applies the EQ predicate on the "decision_type" field.
func DecisionTypeEQ(v DecisionType) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEQ(FieldDecisionType, v))
}

// DecisionTypeNEQ applies the NEQ predicate on the "decision_type" field.
func DecisionTypeNEQ(v DecisionType) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNEQ(FieldDecisionType, v))
}

// DecisionTypeIn applies the In predicate on the "decision_type" field.
func DecisionTypeIn(vs ...DecisionType) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldIn(FieldDecisionType, vs...))
}

// DecisionTypeNotIn applies the NotIn predicate on the "decision_type" field.
func DecisionTypeNotIn(vs ...DecisionType) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNotIn(FieldDecisionType, vs...))
}

// SeedEQ applies the EQ predicate on the "seed" field.
func SeedEQ(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEQ(FieldSeed, v))
}

// SeedNEQ applies the NEQ predicate on the "seed" field.
func SeedNEQ(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNEQ(FieldSeed, v))
}

// SeedIn applies the In predicate on the "seed" field.
func SeedIn(vs ...string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldIn(FieldSeed, vs...))
}

// SeedNotIn applies the NotIn predicate on the "seed" field.
func SeedNotIn(vs ...string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNotIn(FieldSeed, vs...))
}

// SeedGT applies the GT predicate on the "seed" field.
func SeedGT(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldGT(FieldSeed, v))
}

// SeedGTE applies the GTE predicate on the "seed" field.
func SeedGTE(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldGTE(FieldSeed, v))
}

// SeedLT applies the LT predicate on the "seed" field.
func SeedLT(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldLT(FieldSeed, v))
}

// SeedLTE applies the LTE predicate on the "seed" field.
func SeedLTE(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldLTE(FieldSeed, v))
}

// SeedContains applies the Contains predicate on the "seed" field.
func SeedContains(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldContains(FieldSeed, v))
}

// SeedHasPrefix applies the HasPrefix predicate on the "seed" field.
func SeedHasPrefix(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldHasPrefix(FieldSeed, v))
}

// SeedHasSuffix applies the HasSuffix predicate on the "seed" field.
func SeedHasSuffix(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldHasSuffix(FieldSeed, v))
}

// SeedEqualFold applies the EqualFold predicate on the "seed" field.
func SeedEqualFold(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEqualFold(FieldSeed, v))
}

// SeedContainsFold applies the ContainsFold predicate on the "seed" field.
func SeedContainsFold(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldContainsFold(FieldSeed, v))
}

// InputsIsNil applies the IsNil predicate on the "inputs" field.
func InputsIsNil() predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldIsNull(FieldInputs))
}

// InputsNotNil applies the NotNil predicate on the "inputs" field.
func InputsNotNil() predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNotNull(FieldInputs))
}

// OutputsIsNil applies the IsNil predicate on the "outputs" field.
func OutputsIsNil() predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldIsNull(FieldOutputs))
}

// OutputsNotNil applies the NotNil predicate on the "outputs" field.
func OutputsNotNil() predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNotNull(FieldOutputs))
}

// RulesTriggeredIsNil applies the IsNil predicate on the "rules_triggered" field.
func RulesTriggeredIsNil() predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldIsNull(FieldRulesTriggered))
}

// RulesTriggeredNotNil applies the NotNil predicate on the "rules_triggered" field.
func RulesTriggeredNotNil() predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNotNull(FieldRulesTriggered))
}

// FinalVerdictEQ applies the EQ predicate on the "final_verdict" field.
func FinalVerdictEQ(v FinalVerdict) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEQ(FieldFinalVerdict, v))
}

// FinalVerdictNEQ applies the NEQ predicate on the "final_verdict" field.
func FinalVerdictNEQ(v FinalVerdict) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNEQ(FieldFinalVerdict, v))
}

// FinalVerdictIn applies the In predicate on the "final_verdict" field.
func FinalVerdictIn(vs ...FinalVerdict) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldIn(FieldFinalVerdict, vs...))
}

// FinalVerdictNotIn applies the NotIn predicate on the "final_verdict" field.
func FinalVerdictNotIn(vs ...FinalVerdict) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNotIn(FieldFinalVerdict, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldLTE(FieldConfidence, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// RecordHashEQ applies the EQ predicate on the "record_hash" field.
func RecordHashEQ(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEQ(FieldRecordHash, v))
}

// RecordHashNEQ applies the NEQ predicate on the "record_hash" field.
func RecordHashNEQ(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNEQ(FieldRecordHash, v))
}

// RecordHashIn applies the In predicate on the "record_hash" field.
func RecordHashIn(vs ...string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldIn(FieldRecordHash, vs...))
}

// RecordHashNotIn applies the NotIn predicate on the "record_hash" field.
func RecordHashNotIn(vs ...string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNotIn(FieldRecordHash, vs...))
}

// RecordHashGT applies the GT predicate on the "record_hash" field.
func RecordHashGT(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldGT(FieldRecordHash, v))
}

// RecordHashGTE applies the GTE predicate on the "record_hash" field.
func RecordHashGTE(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldGTE(FieldRecordHash, v))
}

// RecordHashLT applies the LT predicate on the "record_hash" field.
func RecordHashLT(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldLT(FieldRecordHash, v))
}

// RecordHashLTE applies the LTE predicate on the "record_hash" field.
func RecordHashLTE(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldLTE(FieldRecordHash, v))
}

// RecordHashContains applies the Contains predicate on the "record_hash" field.
func RecordHashContains(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldContains(FieldRecordHash, v))
}

// RecordHashHasPrefix applies the HasPrefix predicate on the "record_hash" field.
func RecordHashHasPrefix(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldHasPrefix(FieldRecordHash, v))
}

// RecordHashHasSuffix applies the HasSuffix predicate on the "record_hash" field.
func RecordHashHasSuffix(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldHasSuffix(FieldRecordHash, v))
}

// RecordHashEqualFold applies the EqualFold predicate on the "record_hash" field.
func RecordHashEqualFold(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEqualFold(FieldRecordHash, v))
}

// RecordHashContainsFold applies the ContainsFold predicate on the "record_hash" field.
func RecordHashContainsFold(v string) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldContainsFold(FieldRecordHash, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DecisionRecord) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DecisionRecord) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DecisionRecord) predicate.DecisionRecord {
	return predicate.DecisionRecord(sql.NotPredicates(p))
}
