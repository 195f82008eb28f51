package mcp

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/warden/pkg/config"
)

// HealthState is a server's current health classification.
type HealthState string

const (
	// HealthUnknown: no probe has completed yet.
	HealthUnknown HealthState = "unknown"
	// HealthHealthy: last probe succeeded within the latency budget.
	HealthHealthy HealthState = "healthy"
	// HealthDegraded: probes succeed but exceed the latency threshold.
	HealthDegraded HealthState = "degraded"
	// HealthUnhealthy: failure_threshold consecutive probes failed.
	HealthUnhealthy HealthState = "unhealthy"
)

// HealthStatus captures one server's monitored state.
type HealthStatus struct {
	ServerID            string      `json:"server_id"`
	State               HealthState `json:"state"`
	LastCheck           time.Time   `json:"last_check"`
	LastLatency         string      `json:"last_latency,omitempty"`
	ConsecutiveFailures int         `json:"consecutive_failures"`
	Error               string      `json:"error,omitempty"`
	ToolCount           int         `json:"tool_count"`
}

// HealthMonitor periodically probes each server with tools/list.
// A server goes unhealthy after failure_threshold consecutive
// failures; fewer failures mark it degraded, and a single success
// resets the counter. Successful probes slower than the degraded
// threshold also mark the server degraded. State changes are logged
// once per transition, not per probe.
type HealthMonitor struct {
	client   *Client
	registry *config.MCPServerRegistry
	cfg      config.MCPHealthConfig

	statuses   map[string]*HealthStatus
	statusesMu sync.RWMutex

	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger
}

// NewHealthMonitor creates a monitor over an already-connected client.
func NewHealthMonitor(client *Client, registry *config.MCPServerRegistry, cfg config.MCPHealthConfig) *HealthMonitor {
	return &HealthMonitor{
		client:   client,
		registry: registry,
		cfg:      cfg,
		statuses: make(map[string]*HealthStatus),
		logger:   slog.Default(),
	}
}

// Start launches the background probe loop.
// Calling Start on an already-running monitor is a no-op.
func (m *HealthMonitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return // already started
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	go m.loop(ctx)
}

// Stop shuts the monitor down and clears state so a subsequent Start
// begins with a clean slate.
func (m *HealthMonitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	if m.done != nil {
		<-m.done
	}

	m.statusesMu.Lock()
	m.statuses = make(map[string]*HealthStatus)
	m.statusesMu.Unlock()

	m.cancel = nil
	m.done = nil
}

func (m *HealthMonitor) loop(ctx context.Context) {
	defer close(m.done)

	m.CheckAll(ctx)

	ticker := time.NewTicker(m.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CheckAll(ctx)
		}
	}
}

// CheckAll probes every enabled server once.
func (m *HealthMonitor) CheckAll(ctx context.Context) {
	for _, serverID := range m.registry.ServerIDs() {
		m.checkServer(ctx, serverID)
	}
}

func (m *HealthMonitor) checkServer(ctx context.Context, serverID string) {
	// Invalidate so the probe touches the wire instead of the cache.
	m.client.InvalidateToolCache(serverID)

	start := time.Now()
	tools, err := m.client.ListTools(ctx, serverID)
	latency := time.Since(start)

	if err != nil {
		m.recordFailure(serverID, err)
		return
	}
	m.recordSuccess(serverID, latency, len(tools))
}

func (m *HealthMonitor) recordFailure(serverID string, err error) {
	m.statusesMu.Lock()
	defer m.statusesMu.Unlock()

	s := m.status(serverID)
	s.ConsecutiveFailures++
	s.LastCheck = time.Now()
	s.Error = err.Error()

	prev := s.State
	if s.ConsecutiveFailures >= m.cfg.FailureThreshold {
		s.State = HealthUnhealthy
	} else {
		s.State = HealthDegraded
	}
	if s.State != prev {
		m.logger.Warn("MCP server health changed",
			"server", serverID, "from", prev, "to", s.State,
			"consecutive_failures", s.ConsecutiveFailures,
			"error", err)
	}
}

func (m *HealthMonitor) recordSuccess(serverID string, latency time.Duration, toolCount int) {
	m.statusesMu.Lock()
	defer m.statusesMu.Unlock()

	s := m.status(serverID)
	s.ConsecutiveFailures = 0
	s.LastCheck = time.Now()
	s.LastLatency = latency.String()
	s.Error = ""
	s.ToolCount = toolCount

	prev := s.State
	if latency > time.Duration(m.cfg.DegradedThresholdMS)*time.Millisecond {
		s.State = HealthDegraded
	} else {
		s.State = HealthHealthy
	}
	if s.State != prev {
		m.logger.Info("MCP server health changed",
			"server", serverID, "from", prev, "to", s.State,
			"latency", latency)
	}
}

// status returns the entry for a server, creating it in the unknown
// state. Caller holds statusesMu.
func (m *HealthMonitor) status(serverID string) *HealthStatus {
	s, ok := m.statuses[serverID]
	if !ok {
		s = &HealthStatus{ServerID: serverID, State: HealthUnknown}
		m.statuses[serverID] = s
	}
	return s
}

// Statuses returns a copy of the current per-server states.
func (m *HealthMonitor) Statuses() map[string]*HealthStatus {
	m.statusesMu.RLock()
	defer m.statusesMu.RUnlock()
	result := make(map[string]*HealthStatus, len(m.statuses))
	for k, v := range m.statuses {
		cp := *v
		result[k] = &cp
	}
	return result
}

// IsHealthy reports whether every monitored server is healthy or
// degraded. Returns false before the first probe completes.
func (m *HealthMonitor) IsHealthy() bool {
	m.statusesMu.RLock()
	defer m.statusesMu.RUnlock()
	if len(m.statuses) == 0 {
		return false
	}
	for _, s := range m.statuses {
		if s.State == HealthUnhealthy || s.State == HealthUnknown {
			return false
		}
	}
	return true
}
