// Package models holds domain types shared across warden subsystems:
// task metadata views, work items, evidence, bus events, and governance
// verdicts. Persistence lives in ent; these types are the in-memory and
// JSON shapes layered on top of it.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExitReason is the terminal explanation written to the task row.
type ExitReason string

// Exit reasons.
const (
	ExitReasonDone          ExitReason = "done"
	ExitReasonBlocked       ExitReason = "blocked"
	ExitReasonUserCancelled ExitReason = "user_cancelled"
	ExitReasonTimeout       ExitReason = "timeout"
	ExitReasonFatalError    ExitReason = "fatal_error"
	ExitReasonMaxIterations ExitReason = "max_iterations"
)

// IsValid checks if the exit reason is one of the declared values.
func (r ExitReason) IsValid() bool {
	switch r {
	case ExitReasonDone, ExitReasonBlocked, ExitReasonUserCancelled,
		ExitReasonTimeout, ExitReasonFatalError, ExitReasonMaxIterations:
		return true
	default:
		return false
	}
}

// RunMode controls how much human oversight a task gets.
type RunMode string

// Run modes.
const (
	RunModeInteractive RunMode = "interactive"
	RunModeAssisted    RunMode = "assisted"
	RunModeAutonomous  RunMode = "autonomous"
)

// IsValid checks if the run mode is one of the declared values.
func (m RunMode) IsValid() bool {
	switch m {
	case RunModeInteractive, RunModeAssisted, RunModeAutonomous:
		return true
	default:
		return false
	}
}

// Metadata keys used in the task metadata JSON column. Each key maps to a
// typed view below; anything else lives in the free-form extension map.
const (
	MetaKeyPauseState         = "pause_state"
	MetaKeyPauseCheckpoint    = "pause_checkpoint"
	MetaKeyPauseReason        = "pause_reason"
	MetaKeyRetryCount         = "retry_count"
	MetaKeyMaxRetries         = "max_retries"
	MetaKeyGates              = "gates"
	MetaKeyWorkItems          = "work_items"
	MetaKeyRoutePlan          = "route_plan"
	MetaKeyGateFailureContext = "gate_failure_context"
	MetaKeyProjectID          = "project_id"
	MetaKeyTimeout            = "timeout"
	MetaKeyTimeoutState       = "timeout_state"
	MetaKeyCancelRequested    = "cancel_requested"
	MetaKeyNLRequest          = "nl_request"
	MetaKeyIteration          = "iteration"
)

// PauseState records why and where a task is suspended awaiting approval.
type PauseState struct {
	Checkpoint string    `json:"checkpoint"`
	Reason     string    `json:"reason,omitempty"`
	PausedAt   time.Time `json:"paused_at"`
}

// TimeoutConfig is the per-task timeout budget. WarningAfter emits an
// audit warning; HardLimit terminates the task with exit_reason=timeout.
type TimeoutConfig struct {
	WarningAfter Duration `json:"warning_after,omitempty"`
	HardLimit    Duration `json:"hard_limit,omitempty"`
}

// TimeoutState tracks progress against the timeout budget.
type TimeoutState struct {
	StartedAt   time.Time `json:"started_at"`
	WarnedAt    time.Time `json:"warned_at,omitempty"`
	LastChecked time.Time `json:"last_checked,omitempty"`
}

// RoutePlan is the provider routing decision made during planning.
// FallbackChain lists adapters to try, in order, if Primary is unhealthy.
type RoutePlan struct {
	Primary       string   `json:"primary"`
	FallbackChain []string `json:"fallback_chain,omitempty"`
	Reason        string   `json:"reason,omitempty"`
	DecidedAt     string   `json:"decided_at,omitempty"`
}

// GateFailureContext carries DONE-gate failure details back into the next
// planning iteration.
type GateFailureContext struct {
	GateName   string `json:"gate_name"`
	ExitCode   int    `json:"exit_code"`
	Stdout     string `json:"stdout,omitempty"`
	Stderr     string `json:"stderr,omitempty"`
	Attempt    int    `json:"attempt"`
	OccurredAt string `json:"occurred_at"`
}

// Metadata is a typed view over the task metadata JSON column.
// Decode with TaskMetadataFrom; mutate through the typed fields and write
// back with ToMap. Unknown keys survive round trips via Extra.
type Metadata struct {
	raw map[string]any
}

// TaskMetadataFrom wraps a raw metadata map. A nil map is treated as empty.
func TaskMetadataFrom(raw map[string]any) *Metadata {
	if raw == nil {
		raw = make(map[string]any)
	}
	return &Metadata{raw: raw}
}

// ToMap returns the underlying map for persistence.
func (m *Metadata) ToMap() map[string]any { return m.raw }

// Get returns a raw metadata value.
func (m *Metadata) Get(key string) (any, bool) {
	v, ok := m.raw[key]
	return v, ok
}

// Set stores a raw metadata value.
func (m *Metadata) Set(key string, value any) { m.raw[key] = value }

// Delete removes a metadata key.
func (m *Metadata) Delete(key string) { delete(m.raw, key) }

// decode unmarshals the value at key into out through a JSON round trip.
// Values read back from the store arrive as map[string]any regardless of
// how they were written, so this is the only safe decoding path.
func (m *Metadata) decode(key string, out any) (bool, error) {
	v, ok := m.raw[key]
	if !ok || v == nil {
		return false, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return false, fmt.Errorf("encode metadata %q: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode metadata %q: %w", key, err)
	}
	return true, nil
}

// PauseState returns the pause state, if present.
func (m *Metadata) PauseState() (*PauseState, error) {
	var ps PauseState
	ok, err := m.decode(MetaKeyPauseState, &ps)
	if err != nil || !ok {
		return nil, err
	}
	return &ps, nil
}

// SetPauseState stores the pause state.
func (m *Metadata) SetPauseState(ps PauseState) { m.raw[MetaKeyPauseState] = ps }

// TimeoutConfig returns the timeout budget, if configured.
func (m *Metadata) TimeoutConfig() (*TimeoutConfig, error) {
	var tc TimeoutConfig
	ok, err := m.decode(MetaKeyTimeout, &tc)
	if err != nil || !ok {
		return nil, err
	}
	return &tc, nil
}

// SetTimeoutConfig stores the timeout budget.
func (m *Metadata) SetTimeoutConfig(tc TimeoutConfig) { m.raw[MetaKeyTimeout] = tc }

// TimeoutState returns the timeout tracking state, if present.
func (m *Metadata) TimeoutState() (*TimeoutState, error) {
	var ts TimeoutState
	ok, err := m.decode(MetaKeyTimeoutState, &ts)
	if err != nil || !ok {
		return nil, err
	}
	return &ts, nil
}

// SetTimeoutState stores the timeout tracking state.
func (m *Metadata) SetTimeoutState(ts TimeoutState) { m.raw[MetaKeyTimeoutState] = ts }

// RoutePlan returns the stored route plan, if present.
func (m *Metadata) RoutePlan() (*RoutePlan, error) {
	var rp RoutePlan
	ok, err := m.decode(MetaKeyRoutePlan, &rp)
	if err != nil || !ok {
		return nil, err
	}
	return &rp, nil
}

// SetRoutePlan stores the route plan.
func (m *Metadata) SetRoutePlan(rp RoutePlan) { m.raw[MetaKeyRoutePlan] = rp }

// WorkItems returns the declared work items, in execution order.
func (m *Metadata) WorkItems() ([]WorkItem, error) {
	var items []WorkItem
	if _, err := m.decode(MetaKeyWorkItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetWorkItems stores the work item list.
func (m *Metadata) SetWorkItems(items []WorkItem) { m.raw[MetaKeyWorkItems] = items }

// GateFailureContext returns the last DONE-gate failure, if present.
func (m *Metadata) GateFailureContext() (*GateFailureContext, error) {
	var gfc GateFailureContext
	ok, err := m.decode(MetaKeyGateFailureContext, &gfc)
	if err != nil || !ok {
		return nil, err
	}
	return &gfc, nil
}

// SetGateFailureContext stores the DONE-gate failure context.
func (m *Metadata) SetGateFailureContext(gfc GateFailureContext) {
	m.raw[MetaKeyGateFailureContext] = gfc
}

// ClearGateFailureContext removes the failure context after a successful
// re-plan consumed it.
func (m *Metadata) ClearGateFailureContext() { delete(m.raw, MetaKeyGateFailureContext) }

// Gates returns the DONE gate names for this task (empty = defaults apply).
func (m *Metadata) Gates() []string {
	var gates []string
	if ok, err := m.decode(MetaKeyGates, &gates); err != nil || !ok {
		return nil
	}
	return gates
}

// SetGates stores the DONE gate list.
func (m *Metadata) SetGates(gates []string) { m.raw[MetaKeyGates] = gates }

// RetryCount returns the current retry count (0 when unset).
func (m *Metadata) RetryCount() int { return m.intAt(MetaKeyRetryCount, 0) }

// MaxRetries returns the retry budget (defaultMax when unset).
func (m *Metadata) MaxRetries(defaultMax int) int { return m.intAt(MetaKeyMaxRetries, defaultMax) }

// SetRetryCount stores the retry count.
func (m *Metadata) SetRetryCount(n int) { m.raw[MetaKeyRetryCount] = n }

// Iteration returns the persisted iteration counter (0 when unset).
func (m *Metadata) Iteration() int { return m.intAt(MetaKeyIteration, 0) }

// SetIteration stores the iteration counter.
func (m *Metadata) SetIteration(n int) { m.raw[MetaKeyIteration] = n }

// CancelRequested reports whether the cooperative cancel signal is set.
func (m *Metadata) CancelRequested() bool {
	v, ok := m.raw[MetaKeyCancelRequested]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// SetCancelRequested sets the cooperative cancel signal.
func (m *Metadata) SetCancelRequested(v bool) { m.raw[MetaKeyCancelRequested] = v }

// ProjectID returns the owning project, if any.
func (m *Metadata) ProjectID() string { return m.stringAt(MetaKeyProjectID) }

// NLRequest returns the original natural-language request, if present.
func (m *Metadata) NLRequest() string { return m.stringAt(MetaKeyNLRequest) }

func (m *Metadata) stringAt(key string) string {
	v, ok := m.raw[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// intAt tolerates both int and float64 (JSON numbers decode as float64).
func (m *Metadata) intAt(key string, def int) int {
	v, ok := m.raw[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}

// Duration wraps time.Duration with JSON string encoding ("90s", "5m").
type Duration time.Duration

// MarshalJSON encodes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON accepts either a duration string or nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, perr := time.ParseDuration(s)
		if perr != nil {
			return fmt.Errorf("invalid duration %q: %w", s, perr)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid duration %s", data)
	}
	*d = Duration(n)
	return nil
}

// Std returns the standard library duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }
