package gates

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/codeready-toolchain/warden/pkg/artifacts"
	"github.com/codeready-toolchain/warden/pkg/config"
)

// DefaultGateTimeout bounds a single gate command when the gate config
// does not set one.
const DefaultGateTimeout = 10 * time.Minute

// Gate execution statuses.
const (
	GateStatusPassed = "passed"
	GateStatusFailed = "failed"
)

// GateExecution records one gate command run.
type GateExecution struct {
	GateName        string  `json:"gate_name"`
	Status          string  `json:"status"`
	ExitCode        int     `json:"exit_code"`
	Stdout          string  `json:"stdout,omitempty"`
	Stderr          string  `json:"stderr,omitempty"`
	DurationSeconds float64 `json:"duration_seconds"`
	ErrorMessage    string  `json:"error_message,omitempty"`
}

// GateResults is the structured outcome of a DONE gate pass, persisted
// as gate_results.json.
type GateResults struct {
	TaskID               string          `json:"task_id"`
	GatesExecuted        []GateExecution `json:"gates_executed"`
	OverallStatus        string          `json:"overall_status"`
	TotalDurationSeconds float64         `json:"total_duration_seconds"`
	ExecutedAt           time.Time       `json:"executed_at"`
}

// Passed reports whether every executed gate passed.
func (r *GateResults) Passed() bool { return r.OverallStatus == GateStatusPassed }

// FirstFailure returns the first failing execution, or nil.
func (r *GateResults) FirstFailure() *GateExecution {
	for i := range r.GatesExecuted {
		if r.GatesExecuted[i].Status == GateStatusFailed {
			return &r.GatesExecuted[i]
		}
	}
	return nil
}

// DoneGateRunner executes a task's DONE gates sequentially, fail-fast,
// and writes the result artifact.
type DoneGateRunner struct {
	gates      map[string]config.GateConfig
	writer     *artifacts.Writer
	workingDir string
	logger     *slog.Logger
}

// NewDoneGateRunner creates a runner over the configured gate commands.
// workingDir may be empty to inherit the process directory.
func NewDoneGateRunner(gates map[string]config.GateConfig, writer *artifacts.Writer, workingDir string) *DoneGateRunner {
	return &DoneGateRunner{
		gates:      gates,
		writer:     writer,
		workingDir: workingDir,
		logger:     slog.Default(),
	}
}

// Run executes the named gates in order, stopping at the first failure.
// An unconfigured gate name fails that gate rather than faulting. The
// results artifact is written even on failure.
func (r *DoneGateRunner) Run(ctx context.Context, taskID string, gateNames []string) (*GateResults, error) {
	results := &GateResults{
		TaskID:        taskID,
		OverallStatus: GateStatusPassed,
		ExecutedAt:    time.Now().UTC(),
	}
	start := time.Now()

	for _, name := range gateNames {
		exec := r.runGate(ctx, name)
		results.GatesExecuted = append(results.GatesExecuted, exec)
		if exec.Status == GateStatusFailed {
			results.OverallStatus = GateStatusFailed
			break // fail-fast
		}
	}
	results.TotalDurationSeconds = time.Since(start).Seconds()

	if r.writer != nil {
		if _, err := r.writer.WriteJSON(taskID, artifacts.FileGateResults, results); err != nil {
			r.logger.Warn("Failed to write gate results artifact",
				"task_id", taskID, "error", err)
		}
	}

	r.logger.Info("DONE gates finished",
		"task_id", taskID,
		"gates", len(results.GatesExecuted),
		"overall", results.OverallStatus,
		"duration", time.Since(start))
	return results, nil
}

func (r *DoneGateRunner) runGate(ctx context.Context, name string) GateExecution {
	cfg, ok := r.gates[name]
	if !ok {
		return GateExecution{
			GateName:     name,
			Status:       GateStatusFailed,
			ExitCode:     -1,
			ErrorMessage: fmt.Sprintf("%v: %s", config.ErrGateNotFound, name),
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultGateTimeout
	}
	gateCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(gateCtx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = r.workingDir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	result := GateExecution{
		GateName:        name,
		Stdout:          stdout.String(),
		Stderr:          stderr.String(),
		DurationSeconds: duration.Seconds(),
	}

	switch {
	case gateCtx.Err() == context.DeadlineExceeded:
		result.Status = GateStatusFailed
		result.ExitCode = -1
		result.ErrorMessage = fmt.Sprintf("gate %q timed out after %s", name, timeout)
	case err != nil:
		result.Status = GateStatusFailed
		result.ExitCode = -1
		if cmd.ProcessState != nil {
			result.ExitCode = cmd.ProcessState.ExitCode()
		}
		result.ErrorMessage = err.Error()
	default:
		result.Status = GateStatusPassed
		result.ExitCode = 0
	}
	return result
}
