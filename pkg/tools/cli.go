package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/codeready-toolchain/warden/pkg/config"
)

// cliTerminationGrace is how long a cancelled CLI subprocess gets after
// SIGTERM before SIGKILL.
const cliTerminationGrace = 5 * time.Second

// CLIAdapter shells out to a cloud CLI tool. The prompt goes to stdin;
// stdout is the tool's output.
type CLIAdapter struct {
	name string
	cfg  *config.ToolAdapterConfig
}

// NewCLIAdapter creates a CLI adapter from its config.
func NewCLIAdapter(name string, cfg *config.ToolAdapterConfig) *CLIAdapter {
	return &CLIAdapter{name: name, cfg: cfg}
}

func (a *CLIAdapter) Name() string { return a.name }

func (a *CLIAdapter) Supports() config.ToolCapabilities { return a.cfg.Capabilities }

// HealthCheck verifies the binary exists on PATH.
func (a *CLIAdapter) HealthCheck(_ context.Context) HealthReport {
	if len(a.cfg.Command) == 0 {
		return HealthReport{Status: HealthNotConfigured, Details: "no command configured", ErrorCategory: CategoryConfig}
	}
	if _, err := exec.LookPath(a.cfg.Command[0]); err != nil {
		return HealthReport{
			Status:        HealthNotConfigured,
			Details:       fmt.Sprintf("binary %q not found", a.cfg.Command[0]),
			ErrorCategory: CategoryConfig,
		}
	}
	return HealthReport{Status: HealthConnected}
}

// Run executes the CLI with graceful-then-kill termination. On timeout
// the mock fallback applies only when permitted by the runtime.
func (a *CLIAdapter) Run(ctx context.Context, req Request, allowMock bool) (*Result, error) {
	runCtx, cancel := context.WithTimeout(ctx, time.Duration(a.cfg.Timeout())*time.Millisecond)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, a.cfg.Command[0], a.cfg.Command[1:]...)
	cmd.Stdin = bytes.NewBufferString(req.Prompt)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Dir = req.WorkingDir
	cmd.Env = os.Environ()
	for k, v := range a.cfg.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	cmd.Cancel = func() error { return cmd.Process.Signal(syscall.SIGTERM) }
	cmd.WaitDelay = cliTerminationGrace

	err := cmd.Run()

	if runCtx.Err() == context.DeadlineExceeded {
		if allowMock {
			return MockResult(a.name, a.cfg, req, "cli timeout in gate mode"), nil
		}
		return &Result{
			Status:       StatusTimeout,
			OutputKind:   req.OutputKind,
			Stderr:       stderr.String(),
			ErrorMessage: fmt.Sprintf("cli tool timed out after %dms", a.cfg.Timeout()),
		}, nil
	}
	if err != nil {
		var exitErr *exec.ExitError
		category := CategoryRuntime
		if !errors.As(err, &exitErr) {
			category = CategoryConfig // failed to start
		}
		return &Result{
			Status:        StatusFailed,
			OutputKind:    req.OutputKind,
			Stdout:        stdout.String(),
			Stderr:        stderr.String(),
			ErrorCategory: category,
			ErrorMessage:  err.Error(),
		}, nil
	}

	res := &Result{
		Status:     StatusSuccess,
		OutputKind: req.OutputKind,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
	}
	if req.OutputKind == OutputDiff {
		res.Diff = stdout.String()
	}
	return res, nil
}
