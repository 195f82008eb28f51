// Code generated by ent, DO NOT EDIT.

package decisionsignoff

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldLTE(FieldID, id))
}

// DecisionID applies equality check predicate on the "decision_id" field. It's identical to DecisionIDEQ.
func DecisionID(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldEQ(FieldDecisionID, v))
}

// Signer applies equality check predicate on the "signer" field. It's identical to SignerEQ.
func Signer(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldEQ(FieldSigner, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldEQ(FieldNote, v))
}

// SignedAt applies equality check predicate on the "signed_at" field. It's identical to SignedAtEQ.
func SignedAt(v time.Time) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldEQ(FieldSignedAt, v))
}

// DecisionIDEQ applies the EQ predicate on the "decision_id" field.
func DecisionIDEQ(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldEQ(FieldDecisionID, v))
}

// DecisionIDNEQ applies the NEQ predicate on the "decision_id" field.
func DecisionIDNEQ(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldNEQ(FieldDecisionID, v))
}

// DecisionIDIn applies the In predicate on the "decision_id" field.
func DecisionIDIn(vs ...string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldIn(FieldDecisionID, vs...))
}

// DecisionIDNotIn applies the NotIn predicate on the "decision_id" field.
func DecisionIDNotIn(vs ...string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldNotIn(FieldDecisionID, vs...))
}

// DecisionIDGT applies the GT predicate on the "decision_id" field.
func DecisionIDGT(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldGT(FieldDecisionID, v))
}

// DecisionIDGTE applies the GTE predicate on the "decision_id" field.
func DecisionIDGTE(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldGTE(FieldDecisionID, v))
}

// DecisionIDLT applies the LT predicate on the "decision_id" field.
func DecisionIDLT(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldLT(FieldDecisionID, v))
}

// DecisionIDLTE applies the LTE predicate on the "decision_id" field.
func DecisionIDLTE(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldLTE(FieldDecisionID, v))
}

// DecisionIDContains applies the Contains predicate on the "decision_id" field.
func DecisionIDContains(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldContains(FieldDecisionID, v))
}

// DecisionIDHasPrefix applies the HasPrefix predicate on the "decision_id" field.
func DecisionIDHasPrefix(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldHasPrefix(FieldDecisionID, v))
}

// DecisionIDHasSuffix applies the HasSuffix predicate on the "decision_id" field.
func DecisionIDHasSuffix(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldHasSuffix(FieldDecisionID, v))
}

// DecisionIDEqualFold applies the EqualFold predicate on the "decision_id" field.
func DecisionIDEqualFold(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldEqualFold(FieldDecisionID, v))
}

// DecisionIDContainsFold applies the ContainsFold predicate on the "decision_id" field.
func DecisionIDContainsFold(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldContainsFold(FieldDecisionID, v))
}

// SignerEQ applies the EQ predicate on the "signer" field.
func SignerEQ(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldEQ(FieldSigner, v))
}

// SignerNEQ applies the NEQ predicate on the "signer" field.
func SignerNEQ(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldNEQ(FieldSigner, v))
}

// SignerIn applies the In predicate on the "signer" field.
func SignerIn(vs ...string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldIn(FieldSigner, vs...))
}

// SignerNotIn applies the NotIn predicate on the "signer" field.
func SignerNotIn(vs ...string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldNotIn(FieldSigner, vs...))
}

// SignerGT applies the GT predicate on the "signer" field.
func SignerGT(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldGT(FieldSigner, v))
}

// SignerGTE applies the GTE predicate on the "signer" field.
func SignerGTE(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldGTE(FieldSigner, v))
}

// SignerLT applies the LT predicate on the "signer" field.
func SignerLT(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldLT(FieldSigner, v))
}

// SignerLTE applies the LTE predicate on the "signer" field.
func SignerLTE(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldLTE(FieldSigner, v))
}

// SignerContains applies the Contains predicate on the "signer" field.
func SignerContains(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldContains(FieldSigner, v))
}

// SignerHasPrefix applies the HasPrefix predicate on the "signer" field.
func SignerHasPrefix(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldHasPrefix(FieldSigner, v))
}

// SignerHasSuffix applies the HasSuffix predicate on the "signer" field.
func SignerHasSuffix(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldHasSuffix(FieldSigner, v))
}

// SignerEqualFold applies the EqualFold predicate on the "signer" field.
func SignerEqualFold(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldEqualFold(FieldSigner, v))
}

// SignerContainsFold applies the ContainsFold predicate on the "signer" field.
func SignerContainsFold(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldContainsFold(FieldSigner, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldContainsFold(FieldNote, v))
}

// SignedAtEQ applies the EQ predicate on the "signed_at" field.
func SignedAtEQ(v time.Time) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldEQ(FieldSignedAt, v))
}

// SignedAtNEQ applies the NEQ predicate on the "signed_at" field.
func SignedAtNEQ(v time.Time) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldNEQ(FieldSignedAt, v))
}

// SignedAtIn applies the In predicate on the "signed_at" field.
func SignedAtIn(vs ...time.Time) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldIn(FieldSignedAt, vs...))
}

// SignedAtNotIn applies the NotIn predicate on the "signed_at" field.
func SignedAtNotIn(vs ...time.Time) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldNotIn(FieldSignedAt, vs...))
}

// SignedAtGT applies the GT predicate on the "signed_at" field.
func SignedAtGT(v time.Time) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldGT(FieldSignedAt, v))
}

// SignedAtGTE applies the GTE predicate on the "signed_at" field.
func SignedAtGTE(v time.Time) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldGTE(FieldSignedAt, v))
}

// SignedAtLT applies the LT predicate on the "signed_at" field.
func SignedAtLT(v time.Time) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldLT(FieldSignedAt, v))
}

// SignedAtLTE applies the LTE predicate on the "signed_at" field.
func SignedAtLTE(v time.Time) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.FieldLTE(FieldSignedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DecisionSignoff) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DecisionSignoff) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DecisionSignoff) predicate.DecisionSignoff {
	return predicate.DecisionSignoff(sql.NotPredicates(p))
}
