package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "warden.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitialize(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		dir := writeConfig(t, `
mcp_servers:
  - id: repo-tools
    command: ["npx", "repo-mcp"]
    allow_tools: ["read_file", "grep"]
  - id: disabled-one
    enabled: false
    command: ["true"]
tool_adapters:
  cloud-coder:
    kind: http
    execution_mode: cloud
    endpoint: https://api.example.com/v1
    model: coder-large
    capabilities:
      chat: true
      supports_diff: true
      diff_quality: high
  local-llm:
    kind: grpc
    execution_mode: local
    endpoint: localhost:50051
gates:
  doctor:
    command: ["make", "doctor"]
runner:
  worker_count: 4
  max_iterations: 10
supervisor:
  poll_interval: 1s
projects:
  acme:
    working_dir: /srv/acme
`)
		cfg, err := Initialize(dir)
		require.NoError(t, err)

		assert.Equal(t, []string{"repo-tools"}, cfg.MCPServerRegistry.ServerIDs())
		srv, err := cfg.MCPServerRegistry.Get("repo-tools")
		require.NoError(t, err)
		assert.Equal(t, TransportStdio, srv.Transport)
		assert.Equal(t, DefaultMCPTimeoutMS, srv.TimeoutMS)
		assert.True(t, srv.ToolAllowed("grep"))
		assert.False(t, srv.ToolAllowed("rm"))

		a, err := cfg.AdapterRegistry.Get("cloud-coder")
		require.NoError(t, err)
		assert.Equal(t, DiffQualityHigh, a.Capabilities.DiffQuality)

		// Overrides merged onto defaults.
		assert.Equal(t, 4, cfg.Runner.WorkerCount)
		assert.Equal(t, 10, cfg.Runner.MaxIterations)
		assert.Equal(t, []string{"doctor"}, cfg.Runner.DefaultGates)
		assert.Equal(t, time.Second, cfg.Supervisor.PollInterval)
		assert.Equal(t, 7*24*time.Hour, cfg.Supervisor.Retention)

		assert.Equal(t, "/srv/acme", cfg.Project("acme").WorkingDir)
		assert.Equal(t, ProjectSettings{}, cfg.Project("unknown"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Initialize(t.TempDir())
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := writeConfig(t, "mcp_servers: [whoops")
		_, err := Initialize(dir)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("WARDEN_TEST_TOKEN", "sekrit")
		dir := writeConfig(t, `
tool_adapters:
  api:
    kind: http
    execution_mode: cloud
    endpoint: https://api.example.com
    env:
      TOKEN: "{{.WARDEN_TEST_TOKEN}}"
`)
		cfg, err := Initialize(dir)
		require.NoError(t, err)
		a, err := cfg.AdapterRegistry.Get("api")
		require.NoError(t, err)
		assert.Equal(t, "sekrit", a.Env["TOKEN"])
	})
}

func TestValidate(t *testing.T) {
	t.Run("collects all violations", func(t *testing.T) {
		dir := writeConfig(t, `
mcp_servers:
  - id: a
  - id: a
    command: ["x"]
tool_adapters:
  bad:
    kind: banana
    execution_mode: cloud
  mcp-ref:
    kind: mcp
    execution_mode: local
    mcp_server: nonexistent
    mcp_tool: t
gates:
  empty: {}
`)
		_, err := Initialize(dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "duplicate id")
		assert.Contains(t, err.Error(), "banana")
		assert.Contains(t, err.Error(), "nonexistent")
		assert.Contains(t, err.Error(), "gate")
	})

	t.Run("cli adapter requires command", func(t *testing.T) {
		dir := writeConfig(t, `
tool_adapters:
  shell:
    kind: cli
    execution_mode: local
`)
		_, err := Initialize(dir)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})
}
