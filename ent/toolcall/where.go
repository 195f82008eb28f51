// Code generated by ent, DO NOT EDIT.

package toolcall

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldTaskID, v))
}

// Tool applies equality check predicate on the "tool" field. It's identical to ToolEQ.
func Tool(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldTool, v))
}

// ErrorCategory applies equality check predicate on the "error_category" field. It's identical to ErrorCategoryEQ.
func ErrorCategory(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldErrorCategory, v))
}

// Endpoint applies equality check predicate on the "endpoint" field. It's identical to EndpointEQ.
func Endpoint(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldEndpoint, v))
}

// OutputKind applies equality check predicate on the "output_kind" field. It's identical to OutputKindEQ.
func OutputKind(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldOutputKind, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldModelID, v))
}

// MockUsed applies equality check predicate on the "mock_used" field. It's identical to MockUsedEQ.
func MockUsed(v bool) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldMockUsed, v))
}

// OutputText applies equality check predicate on the "output_text" field. It's identical to OutputTextEQ.
func OutputText(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldOutputText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldTaskID, v))
}

// ToolEQ applies the EQ predicate on the "tool" field.
func ToolEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldTool, v))
}

// ToolNEQ applies the NEQ predicate on the "tool" field.
func ToolNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldTool, v))
}

// ToolIn applies the In predicate on the "tool" field.
func ToolIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldTool, vs...))
}

// ToolNotIn applies the NotIn predicate on the "tool" field.
func ToolNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldTool, vs...))
}

// ToolGT applies the GT predicate on the "tool" field.
func ToolGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldTool, v))
}

// ToolGTE applies the GTE predicate on the "tool" field.
func ToolGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldTool, v))
}

// ToolLT applies the LT predicate on the "tool" field.
func ToolLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldTool, v))
}

// ToolLTE applies the LTE predicate on the "tool" field.
func ToolLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldTool, v))
}

// ToolContains applies the Contains predicate on the "tool" field.
func ToolContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldTool, v))
}

// ToolHasPrefix applies the HasPrefix predicate on the "tool" field.
func ToolHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldTool, v))
}

// ToolHasSuffix applies the HasSuffix predicate on the "tool" field.
func ToolHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldTool, v))
}

// ToolEqualFold applies the EqualFold predicate on the "tool" field.
func ToolEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldTool, v))
}

// ToolContainsFold applies the ContainsFold predicate on the "tool" field.
func ToolContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldTool, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorCategoryEQ applies the EQ predicate on the "error_category" field.
func ErrorCategoryEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldErrorCategory, v))
}

// ErrorCategoryNEQ applies the NEQ predicate on the "error_category" field.
func ErrorCategoryNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldErrorCategory, v))
}

// ErrorCategoryIn applies the In predicate on the "error_category" field.
func ErrorCategoryIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldErrorCategory, vs...))
}

// ErrorCategoryNotIn applies the NotIn predicate on the "error_category" field.
func ErrorCategoryNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldErrorCategory, vs...))
}

// ErrorCategoryGT applies the GT predicate on the "error_category" field.
func ErrorCategoryGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldErrorCategory, v))
}

// ErrorCategoryGTE applies the GTE predicate on the "error_category" field.
func ErrorCategoryGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldErrorCategory, v))
}

// ErrorCategoryLT applies the LT predicate on the "error_category" field.
func ErrorCategoryLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldErrorCategory, v))
}

// ErrorCategoryLTE applies the LTE predicate on the "error_category" field.
func ErrorCategoryLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldErrorCategory, v))
}

// ErrorCategoryContains applies the Contains predicate on the "error_category" field.
func ErrorCategoryContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldErrorCategory, v))
}

// ErrorCategoryHasPrefix applies the HasPrefix predicate on the "error_category" field.
func ErrorCategoryHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldErrorCategory, v))
}

// ErrorCategoryHasSuffix applies the HasSuffix predicate on the "error_category" field.
func ErrorCategoryHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldErrorCategory, v))
}

// ErrorCategoryIsNil applies the IsNil predicate on the "error_category" field.
func ErrorCategoryIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldErrorCategory))
}

// ErrorCategoryNotNil applies the NotNil predicate on the "error_category" field.
func ErrorCategoryNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldErrorCategory))
}

// ErrorCategoryEqualFold applies the EqualFold predicate on the "error_category" field.
func ErrorCategoryEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldErrorCategory, v))
}

// ErrorCategoryContainsFold applies the ContainsFold predicate on the "error_category" field.
func ErrorCategoryContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldErrorCategory, v))
}

// EndpointEQ applies the EQ predicate on the "endpoint" field.
func EndpointEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldEndpoint, v))
}

// EndpointNEQ applies the NEQ predicate on the "endpoint" field.
func EndpointNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldEndpoint, v))
}

// EndpointIn applies the In predicate on the "endpoint" field.
func EndpointIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldEndpoint, vs...))
}

// EndpointNotIn applies the NotIn predicate on the "endpoint" field.
func EndpointNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldEndpoint, vs...))
}

// EndpointGT applies the GT predicate on the "endpoint" field.
func EndpointGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldEndpoint, v))
}

// EndpointGTE applies the GTE predicate on the "endpoint" field.
func EndpointGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldEndpoint, v))
}

// EndpointLT applies the LT predicate on the "endpoint" field.
func EndpointLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldEndpoint, v))
}

// EndpointLTE applies the LTE predicate on the "endpoint" field.
func EndpointLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldEndpoint, v))
}

// EndpointContains applies the Contains predicate on the "endpoint" field.
func EndpointContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldEndpoint, v))
}

// EndpointHasPrefix applies the HasPrefix predicate on the "endpoint" field.
func EndpointHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldEndpoint, v))
}

// EndpointHasSuffix applies the HasSuffix predicate on the "endpoint" field.
func EndpointHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldEndpoint, v))
}

// EndpointIsNil applies the IsNil predicate on the "endpoint" field.
func EndpointIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldEndpoint))
}

// EndpointNotNil applies the NotNil predicate on the "endpoint" field.
func EndpointNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldEndpoint))
}

// EndpointEqualFold applies the EqualFold predicate on the "endpoint" field.
func EndpointEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldEndpoint, v))
}

// EndpointContainsFold applies the ContainsFold predicate on the "endpoint" field.
func EndpointContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldEndpoint, v))
}

// OutputKindEQ applies the EQ predicate on the "output_kind" field.
func OutputKindEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldOutputKind, v))
}

// OutputKindNEQ applies the NEQ predicate on the "output_kind" field.
func OutputKindNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldOutputKind, v))
}

// OutputKindIn applies the In predicate on the "output_kind" field.
func OutputKindIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldOutputKind, vs...))
}

// OutputKindNotIn applies the NotIn predicate on the "output_kind" field.
func OutputKindNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldOutputKind, vs...))
}

// OutputKindGT applies the GT predicate on the "output_kind" field.
func OutputKindGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldOutputKind, v))
}

// OutputKindGTE applies the GTE predicate on the "output_kind" field.
func OutputKindGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldOutputKind, v))
}

// OutputKindLT applies the LT predicate on the "output_kind" field.
func OutputKindLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldOutputKind, v))
}

// OutputKindLTE applies the LTE predicate on the "output_kind" field.
func OutputKindLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldOutputKind, v))
}

// OutputKindContains applies the Contains predicate on the "output_kind" field.
func OutputKindContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldOutputKind, v))
}

// OutputKindHasPrefix applies the HasPrefix predicate on the "output_kind" field.
func OutputKindHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldOutputKind, v))
}

// OutputKindHasSuffix applies the HasSuffix predicate on the "output_kind" field.
func OutputKindHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldOutputKind, v))
}

// OutputKindIsNil applies the IsNil predicate on the "output_kind" field.
func OutputKindIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldOutputKind))
}

// OutputKindNotNil applies the NotNil predicate on the "output_kind" field.
func OutputKindNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldOutputKind))
}

// OutputKindEqualFold applies the EqualFold predicate on the "output_kind" field.
func OutputKindEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldOutputKind, v))
}

// OutputKindContainsFold applies the ContainsFold predicate on the "output_kind" field.
func OutputKindContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldOutputKind, v))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDIsNil applies the IsNil predicate on the "model_id" field.
func ModelIDIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldModelID))
}

// ModelIDNotNil applies the NotNil predicate on the "model_id" field.
func ModelIDNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldModelID))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldModelID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v Provider) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v Provider) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...Provider) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...Provider) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderIsNil applies the IsNil predicate on the "provider" field.
func ProviderIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldProvider))
}

// ProviderNotNil applies the NotNil predicate on the "provider" field.
func ProviderNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldProvider))
}

// MockUsedEQ applies the EQ predicate on the "mock_used" field.
func MockUsedEQ(v bool) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldMockUsed, v))
}

// MockUsedNEQ applies the NEQ predicate on the "mock_used" field.
func MockUsedNEQ(v bool) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldMockUsed, v))
}

// OutputTextEQ applies the EQ predicate on the "output_text" field.
func OutputTextEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldOutputText, v))
}

// OutputTextNEQ applies the NEQ predicate on the "output_text" field.
func OutputTextNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldOutputText, v))
}

// OutputTextIn applies the In predicate on the "output_text" field.
func OutputTextIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldOutputText, vs...))
}

// OutputTextNotIn applies the NotIn predicate on the "output_text" field.
func OutputTextNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldOutputText, vs...))
}

// OutputTextGT applies the GT predicate on the "output_text" field.
func OutputTextGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldOutputText, v))
}

// OutputTextGTE applies the GTE predicate on the "output_text" field.
func OutputTextGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldOutputText, v))
}

// OutputTextLT applies the LT predicate on the "output_text" field.
func OutputTextLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldOutputText, v))
}

// OutputTextLTE applies the LTE predicate on the "output_text" field.
func OutputTextLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldOutputText, v))
}

// OutputTextContains applies the Contains predicate on the "output_text" field.
func OutputTextContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldOutputText, v))
}

// OutputTextHasPrefix applies the HasPrefix predicate on the "output_text" field.
func OutputTextHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldOutputText, v))
}

// OutputTextHasSuffix applies the HasSuffix predicate on the "output_text" field.
func OutputTextHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldOutputText, v))
}

// OutputTextIsNil applies the IsNil predicate on the "output_text" field.
func OutputTextIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldOutputText))
}

// OutputTextNotNil applies the NotNil predicate on the "output_text" field.
func OutputTextNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldOutputText))
}

// OutputTextEqualFold applies the EqualFold predicate on the "output_text" field.
func OutputTextEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldOutputText, v))
}

// OutputTextContainsFold applies the ContainsFold predicate on the "output_text" field.
func OutputTextContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldOutputText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.ToolCall {
	return predicate.ToolCall(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.ToolCall {
	return predicate.ToolCall(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToolCall) predicate.ToolCall {
	return predicate.ToolCall(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToolCall) predicate.ToolCall {
	return predicate.ToolCall(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToolCall) predicate.ToolCall {
	return predicate.ToolCall(sql.NotPredicates(p))
}
