package mcp

import "time"

// Timeouts and retry tuning for MCP operations.
const (
	// InitTimeout bounds the initialize handshake with a freshly
	// spawned server.
	InitTimeout = 10 * time.Second

	// ReinitTimeout bounds session recreation during recovery.
	ReinitTimeout = 15 * time.Second

	// ShutdownGrace is how long Disconnect waits after SIGTERM before
	// escalating to SIGKILL.
	ShutdownGrace = 5 * time.Second

	// RetryBackoffMin and RetryBackoffMax bound the jittered backoff
	// before the single CallTool retry.
	RetryBackoffMin = 200 * time.Millisecond
	RetryBackoffMax = 1200 * time.Millisecond
)

// protocolVersion is the MCP protocol revision sent in the initialize
// handshake.
const protocolVersion = "2025-03-26"
