// Package tools is the adapter runtime for external models and tools:
// a uniform contract, health taxonomy, the diff-only invariant, and
// evidence capture for audit.
package tools

import "github.com/codeready-toolchain/warden/pkg/config"

// HealthState classifies an adapter's reachability.
type HealthState string

// Health states.
const (
	HealthConnected      HealthState = "connected"
	HealthNotConfigured  HealthState = "not_configured"
	HealthInvalidToken   HealthState = "invalid_token"
	HealthUnreachable    HealthState = "unreachable"
	HealthModelMissing   HealthState = "model_missing"
	HealthSchemaMismatch HealthState = "schema_mismatch"
)

// Healthy reports whether the adapter is usable.
func (s HealthState) Healthy() bool { return s == HealthConnected }

// ErrorCategory is the auditable failure classification, mandatory on
// every failed tool result (the H2 assertion).
type ErrorCategory string

// Error categories.
const (
	CategoryConfig  ErrorCategory = "config"
	CategoryAuth    ErrorCategory = "auth"
	CategoryNetwork ErrorCategory = "network"
	CategoryModel   ErrorCategory = "model"
	CategorySchema  ErrorCategory = "schema"
	CategoryRuntime ErrorCategory = "runtime"
)

// CategoryForHealth derives the error category from a health state when
// an adapter failed without classifying itself.
func CategoryForHealth(s HealthState) ErrorCategory {
	switch s {
	case HealthNotConfigured:
		return CategoryConfig
	case HealthInvalidToken:
		return CategoryAuth
	case HealthUnreachable:
		return CategoryNetwork
	case HealthModelMissing:
		return CategoryModel
	case HealthSchemaMismatch:
		return CategorySchema
	default:
		return CategoryRuntime
	}
}

// HealthReport is the result of an adapter health check.
type HealthReport struct {
	Status        HealthState   `json:"status"`
	Details       string        `json:"details,omitempty"`
	ErrorCategory ErrorCategory `json:"error_category,omitempty"`
}

// CallStatus is the outcome of one adapter run.
type CallStatus string

// Call statuses.
const (
	StatusSuccess        CallStatus = "success"
	StatusPartialSuccess CallStatus = "partial_success"
	StatusFailed         CallStatus = "failed"
	StatusTimeout        CallStatus = "timeout"
)

// OutputKind declares what a tool result contains.
type OutputKind string

// Output kinds.
const (
	OutputDiff        OutputKind = "diff"
	OutputPlan        OutputKind = "plan"
	OutputAnalysis    OutputKind = "analysis"
	OutputExplanation OutputKind = "explanation"
	OutputDiagnosis   OutputKind = "diagnosis"
)

// DiffValidation summarises the diff-only checks applied to a result.
type DiffValidation struct {
	Parseable    bool     `json:"parseable"`
	FilesTouched []string `json:"files_touched,omitempty"`
	LineCount    int      `json:"line_count"`
	AllowListOK  bool     `json:"allow_list_ok"`
	Errors       []string `json:"errors,omitempty"`
}

// Request is the unit of work handed to an adapter.
type Request struct {
	TaskID     string     `json:"task_id"`
	Prompt     string     `json:"prompt"`
	OutputKind OutputKind `json:"output_kind"`
	WorkingDir string     `json:"working_dir,omitempty"`
}

// Result is what every adapter returns. WroteFiles and Committed are
// declarations: adapters never mutate the working tree or commit, and
// the runtime fails any result claiming otherwise.
type Result struct {
	Tool           string               `json:"tool"`
	Status         CallStatus           `json:"status"`
	Diff           string               `json:"diff,omitempty"`
	FilesTouched   []string             `json:"files_touched,omitempty"`
	LineCount      int                  `json:"line_count"`
	ToolRunID      string               `json:"tool_run_id"`
	ModelID        string               `json:"model_id,omitempty"`
	Provider       config.ExecutionMode `json:"provider,omitempty"`
	OutputKind     OutputKind           `json:"output_kind"`
	ErrorCategory  ErrorCategory        `json:"error_category,omitempty"`
	Endpoint       string               `json:"endpoint,omitempty"`
	Stdout         string               `json:"stdout,omitempty"`
	Stderr         string               `json:"stderr,omitempty"`
	ErrorMessage   string               `json:"error_message,omitempty"`
	DiffValidation *DiffValidation      `json:"diff_validation,omitempty"`
	WroteFiles     bool                 `json:"wrote_files"`
	Committed      bool                 `json:"committed"`
	MockUsed       bool                 `json:"_mock_used,omitempty"`
	MockReason     string               `json:"_mock_reason,omitempty"`
}

// Failed reports whether the call did not succeed.
func (r *Result) Failed() bool {
	return r.Status == StatusFailed || r.Status == StatusTimeout
}
