package config

import "time"

// Documented defaults.
const (
	// DefaultMCPTimeoutMS is the per-server MCP request timeout.
	DefaultMCPTimeoutMS = 30000

	// DefaultAdapterTimeoutMS is the tool adapter call timeout.
	DefaultAdapterTimeoutMS = 120000

	// DefaultMaxIterations is the runner's runaway-loop safety net.
	// A configurable cap, not a business rule.
	DefaultMaxIterations = 100

	// DefaultMaxRetries bounds supervisor-advised retries per task.
	DefaultMaxRetries = 3
)

// RunnerConfig tunes the task runner pool.
type RunnerConfig struct {
	WorkerCount             int           `yaml:"worker_count"`
	MaxIterations           int           `yaml:"max_iterations"`
	IterationSleep          time.Duration `yaml:"iteration_sleep"`
	HeartbeatInterval       time.Duration `yaml:"heartbeat_interval"`
	LeaseTTL                time.Duration `yaml:"lease_ttl"`
	OrphanThreshold         time.Duration `yaml:"orphan_threshold"`
	OrphanScanInterval      time.Duration `yaml:"orphan_scan_interval"`
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
	ArtifactsDir            string        `yaml:"artifacts_dir"`
	DefaultGates            []string      `yaml:"default_gates"`
	RoutePlanning           bool          `yaml:"route_planning"`
}

// SupervisorConfig tunes the supervisor loop.
type SupervisorConfig struct {
	PollInterval      time.Duration `yaml:"poll_interval"`
	BacklogSlowdownAt int           `yaml:"backlog_slowdown_at"`
	BacklogSLO        time.Duration `yaml:"backlog_slo"`
	Retention         time.Duration `yaml:"retention"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"`
	RiskErrorRate     float64       `yaml:"risk_error_rate"`
	RiskResourceUsage float64       `yaml:"risk_resource_usage"`
	RiskSecurityScore float64       `yaml:"risk_security_score"`
}

// MCPHealthConfig tunes the MCP health monitor.
type MCPHealthConfig struct {
	FailureThreshold    int           `yaml:"failure_threshold"`
	DegradedThresholdMS int           `yaml:"degraded_threshold_ms"`
	CheckInterval       time.Duration `yaml:"check_interval"`
}

// GateConfig maps a DONE gate name to the command it runs.
type GateConfig struct {
	Command []string      `yaml:"command"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// ProjectSettings are per-project overrides the runner inherits before
// execution.
type ProjectSettings struct {
	Runner     string `yaml:"runner,omitempty"`
	WorkingDir string `yaml:"working_dir,omitempty"`
}

// defaultRunnerConfig returns the baseline runner tuning; warden.yaml
// values are merged on top.
func defaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		WorkerCount:             2,
		MaxIterations:           DefaultMaxIterations,
		IterationSleep:          200 * time.Millisecond,
		HeartbeatInterval:       10 * time.Second,
		LeaseTTL:                2 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		OrphanScanInterval:      time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
		ArtifactsDir:            "artifacts",
		DefaultGates:            []string{"doctor"},
		RoutePlanning:           true,
	}
}

func defaultSupervisorConfig() SupervisorConfig {
	return SupervisorConfig{
		PollInterval:      5 * time.Second,
		BacklogSlowdownAt: 500,
		BacklogSLO:        time.Minute,
		Retention:         7 * 24 * time.Hour,
		CleanupInterval:   time.Hour,
		RiskErrorRate:     0.25,
		RiskResourceUsage: 0.90,
		RiskSecurityScore: 0.50,
	}
}

func defaultMCPHealthConfig() MCPHealthConfig {
	return MCPHealthConfig{
		FailureThreshold:    3,
		DegradedThresholdMS: 2000,
		CheckInterval:       30 * time.Second,
	}
}
