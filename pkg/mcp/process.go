package mcp

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// process wraps a spawned MCP server: Write goes to its stdin, Read
// comes from its stdout. Close asks the process to exit with SIGTERM
// and escalates to SIGKILL after ShutdownGrace.
type process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
	waitCh chan error
	logger *slog.Logger
}

// spawn starts the server command with the configured environment.
// Stderr is drained to debug logs so a noisy server cannot block.
func spawn(server string, command []string, env map[string]string) (*process, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("server %q has no command", server)
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe for %q: %w", server, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe for %q: %w", server, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe for %q: %w", server, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %q: %w", server, err)
	}

	logger := slog.Default()
	go func() {
		sc := bufio.NewScanner(stderr)
		for sc.Scan() {
			logger.Debug("MCP server stderr", "server", server, "line", sc.Text())
		}
	}()

	p := &process{
		cmd:    cmd,
		stdin:  stdin,
		stdout: stdout,
		waitCh: make(chan error, 1),
		logger: logger,
	}
	go func() { p.waitCh <- cmd.Wait() }()
	return p, nil
}

func (p *process) Read(b []byte) (int, error)  { return p.stdout.Read(b) }
func (p *process) Write(b []byte) (int, error) { return p.stdin.Write(b) }

// Close shuts the process down: close stdin (the conventional stdio
// shutdown signal), then SIGTERM, then SIGKILL after the grace period.
func (p *process) Close() error {
	_ = p.stdin.Close()

	if p.cmd.Process != nil {
		_ = p.cmd.Process.Signal(syscall.SIGTERM)
	}

	select {
	case <-p.waitCh:
		return nil
	case <-time.After(ShutdownGrace):
	}

	p.logger.Warn("MCP server ignored SIGTERM, killing", "pid", p.cmd.Process.Pid)
	_ = p.cmd.Process.Kill()
	<-p.waitCh
	return nil
}
