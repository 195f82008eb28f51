package mcp

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/pkg/config"
)

func healthTestSetup(t *testing.T, failing *atomic.Bool) (*Client, *HealthMonitor) {
	t.Helper()
	srv := &scriptedServer{tools: []*Tool{{Name: "probe"}}}
	cfg := config.MCPServerConfig{ID: "repo", Command: []string{"unused"}}
	c := NewClient(testRegistry(cfg))
	c.dial = func(serverID string, _ *config.MCPServerConfig) (*Conn, error) {
		if failing.Load() {
			return nil, &ConnectionError{Server: serverID}
		}
		clientSide, serverSide := net.Pipe()
		go srv.serve(serverSide)
		return NewConn(serverID, clientSide), nil
	}
	t.Cleanup(func() { _ = c.Close() })

	m := NewHealthMonitor(c, c.registry, config.MCPHealthConfig{
		FailureThreshold:    3,
		DegradedThresholdMS: 60000,
		CheckInterval:       time.Hour, // loop never fires in tests; CheckAll is driven directly
	})
	return c, m
}

// breakSession closes the live connection so the next probe fails.
func breakSession(t *testing.T, c *Client) {
	t.Helper()
	c.mu.Lock()
	conn, ok := c.conns["repo"]
	delete(c.conns, "repo")
	c.mu.Unlock()
	require.True(t, ok)
	require.NoError(t, conn.Close())
}

func TestHealthMonitorThreshold(t *testing.T) {
	var failing atomic.Bool
	c, m := healthTestSetup(t, &failing)
	require.NoError(t, c.ConnectServer(context.Background(), "repo"))

	m.CheckAll(context.Background())
	require.Equal(t, HealthHealthy, m.Statuses()["repo"].State)
	assert.True(t, m.IsHealthy())

	breakSession(t, c)

	// Failures 1 and 2 stay below the threshold of 3.
	m.CheckAll(context.Background())
	m.CheckAll(context.Background())
	s := m.Statuses()["repo"]
	assert.Equal(t, 2, s.ConsecutiveFailures)
	assert.Equal(t, HealthDegraded, s.State, "below threshold degrades, not unhealthy")
	assert.True(t, m.IsHealthy(), "degraded servers still count as available")

	// Failure 3 crosses it.
	m.CheckAll(context.Background())
	s = m.Statuses()["repo"]
	assert.Equal(t, 3, s.ConsecutiveFailures)
	assert.Equal(t, HealthUnhealthy, s.State)
	assert.False(t, m.IsHealthy())
}

func TestHealthMonitorFirstFailureDegrades(t *testing.T) {
	var failing atomic.Bool
	failing.Store(true)
	_, m := healthTestSetup(t, &failing)

	m.CheckAll(context.Background())
	s := m.Statuses()["repo"]
	assert.Equal(t, 1, s.ConsecutiveFailures)
	assert.Equal(t, HealthDegraded, s.State)
}

func TestHealthMonitorRecovery(t *testing.T) {
	var failing atomic.Bool
	c, m := healthTestSetup(t, &failing)
	require.NoError(t, c.ConnectServer(context.Background(), "repo"))

	breakSession(t, c)
	for i := 0; i < 3; i++ {
		m.CheckAll(context.Background())
	}
	require.Equal(t, HealthUnhealthy, m.Statuses()["repo"].State)

	// Reconnect; one success resets the counter and the state.
	require.NoError(t, c.ConnectServer(context.Background(), "repo"))
	m.CheckAll(context.Background())
	s := m.Statuses()["repo"]
	assert.Equal(t, HealthHealthy, s.State)
	assert.Equal(t, 0, s.ConsecutiveFailures)
	assert.Equal(t, 1, s.ToolCount)
	assert.True(t, m.IsHealthy())
}

func TestHealthMonitorUnknownBeforeFirstProbe(t *testing.T) {
	var failing atomic.Bool
	_, m := healthTestSetup(t, &failing)
	assert.False(t, m.IsHealthy())
	assert.Empty(t, m.Statuses())
}

func TestHealthMonitorStartStop(t *testing.T) {
	var failing atomic.Bool
	c, m := healthTestSetup(t, &failing)
	require.NoError(t, c.ConnectServer(context.Background(), "repo"))

	m.Start(context.Background())
	m.Start(context.Background()) // second Start is a no-op

	// The initial probe runs on Start.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(m.Statuses()) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.NotEmpty(t, m.Statuses())

	m.Stop()
	assert.Empty(t, m.Statuses(), "Stop clears state for a clean restart")

	m.Start(context.Background())
	m.Stop()
}
