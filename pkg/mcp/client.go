// Package mcp implements the Model Context Protocol client side:
// spawning stdio servers, the newline-delimited JSON-RPC transport, and
// session lifecycle with recovery and health monitoring.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/version"
)

// dialFunc opens a connection to one server. Swappable in tests so the
// client can be exercised without spawning real processes.
type dialFunc func(serverID string, cfg *config.MCPServerConfig) (*Conn, error)

func dialStdio(serverID string, cfg *config.MCPServerConfig) (*Conn, error) {
	proc, err := spawn(serverID, cfg.Command, cfg.Env)
	if err != nil {
		return nil, &ConnectionError{Server: serverID, Err: err}
	}
	return NewConn(serverID, proc), nil
}

// Client manages sessions for multiple MCP servers.
// Thread-safe: sessions may be used from multiple goroutines.
type Client struct {
	registry *config.MCPServerRegistry
	dial     dialFunc

	mu            sync.RWMutex
	conns         map[string]*Conn
	failedServers map[string]string

	toolCache   map[string][]*Tool
	toolCacheMu sync.RWMutex

	// Per-server mutex for session recreation to prevent thundering herd
	reinitMu sync.Map // serverID → *sync.Mutex

	logger *slog.Logger
}

// NewClient creates a client over the registry. No connections are made
// until Connect or ConnectServer.
func NewClient(registry *config.MCPServerRegistry) *Client {
	return &Client{
		registry:      registry,
		dial:          dialStdio,
		conns:         make(map[string]*Conn),
		failedServers: make(map[string]string),
		toolCache:     make(map[string][]*Tool),
		logger:        slog.Default(),
	}
}

// Connect establishes sessions to all listed servers. Servers that fail
// are recorded in FailedServers; the caller decides whether partial
// connectivity is fatal.
func (c *Client) Connect(ctx context.Context, serverIDs []string) {
	for _, serverID := range serverIDs {
		if err := c.ConnectServer(ctx, serverID); err != nil {
			c.mu.Lock()
			c.failedServers[serverID] = err.Error()
			c.mu.Unlock()
			c.logger.Warn("MCP server failed to connect",
				"server", serverID, "error", err)
		}
	}
}

// ConnectServer connects a single server: spawn, initialize handshake,
// initialized notification. Returns nil if already connected. A
// per-server mutex serializes concurrent attempts.
func (c *Client) ConnectServer(ctx context.Context, serverID string) error {
	muI, _ := c.reinitMu.LoadOrStore(serverID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	return c.connectServerLocked(ctx, serverID)
}

// connectServerLocked does the actual connect. Caller holds the
// per-server reinit mutex.
func (c *Client) connectServerLocked(ctx context.Context, serverID string) error {
	c.mu.RLock()
	if _, exists := c.conns[serverID]; exists {
		c.mu.RUnlock()
		return nil
	}
	c.mu.RUnlock()

	serverCfg, err := c.registry.Get(serverID)
	if err != nil {
		return err
	}
	if serverCfg.Transport != config.TransportStdio {
		return fmt.Errorf("server %q: transport %q not supported", serverID, serverCfg.Transport)
	}

	conn, err := c.dial(serverID, serverCfg)
	if err != nil {
		return err
	}

	initCtx, cancel := context.WithTimeout(ctx, InitTimeout)
	defer cancel()

	var initRes initializeResult
	err = conn.Call(initCtx, "initialize", initializeParams{
		ProtocolVersion: protocolVersion,
		Capabilities:    map[string]any{},
		ClientInfo:      implementation{Name: version.AppName, Version: version.GitCommit},
	}, &initRes)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("initialize %q: %w", serverID, err)
	}
	if err := conn.Notify("notifications/initialized", struct{}{}); err != nil {
		_ = conn.Close()
		return fmt.Errorf("initialized notification to %q: %w", serverID, err)
	}

	c.mu.Lock()
	c.conns[serverID] = conn
	delete(c.failedServers, serverID)
	c.mu.Unlock()

	c.logger.Info("MCP server connected",
		"server", serverID,
		"server_name", initRes.ServerInfo.Name,
		"protocol", initRes.ProtocolVersion)
	return nil
}

func (c *Client) conn(serverID string) (*Conn, error) {
	c.mu.RLock()
	conn, exists := c.conns[serverID]
	c.mu.RUnlock()
	if !exists {
		return nil, &ConnectionError{Server: serverID, Err: fmt.Errorf("no session")}
	}
	return conn, nil
}

// ListTools returns the server's tools, filtered by the config allow
// list and deny_side_effect_tags. Uses the cache when populated.
func (c *Client) ListTools(ctx context.Context, serverID string) ([]*Tool, error) {
	// Lock ordering: never acquire c.mu while holding toolCacheMu.
	c.toolCacheMu.RLock()
	if cached, ok := c.toolCache[serverID]; ok {
		c.toolCacheMu.RUnlock()
		return cached, nil
	}
	c.toolCacheMu.RUnlock()

	conn, err := c.conn(serverID)
	if err != nil {
		return nil, err
	}
	serverCfg, err := c.registry.Get(serverID)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, time.Duration(serverCfg.TimeoutMS)*time.Millisecond)
	defer cancel()

	var res listToolsResult
	if err := conn.Call(opCtx, "tools/list", struct{}{}, &res); err != nil {
		return nil, err
	}

	tools := filterTools(res.Tools, serverCfg)

	c.toolCacheMu.Lock()
	c.toolCache[serverID] = tools
	c.toolCacheMu.Unlock()
	return tools, nil
}

// filterTools applies allow_tools and deny_side_effect_tags.
func filterTools(tools []*Tool, cfg *config.MCPServerConfig) []*Tool {
	out := make([]*Tool, 0, len(tools))
	for _, t := range tools {
		if !cfg.ToolAllowed(t.Name) {
			continue
		}
		if t.Annotations != nil && tagDenied(t.Annotations.SideEffectTags, cfg.DenySideEffectTags) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func tagDenied(tags, denied []string) bool {
	for _, tag := range tags {
		if slices.Contains(denied, tag) {
			return true
		}
	}
	return false
}

// CallTool executes a tool on a server. A denied or unlisted tool fails
// without touching the wire. On transport failure the call is retried
// once after a jittered backoff, reconnecting first when the transport
// is broken.
func (c *Client) CallTool(ctx context.Context, serverID, toolName string, args map[string]any) (*CallToolResult, error) {
	serverCfg, err := c.registry.Get(serverID)
	if err != nil {
		return nil, err
	}
	if !serverCfg.ToolAllowed(toolName) {
		return nil, fmt.Errorf("tool %q not allowed on server %q", toolName, serverID)
	}

	result, err := c.callToolOnce(ctx, serverID, serverCfg, toolName, args)
	if err == nil {
		return result, nil
	}

	action := ClassifyError(err)
	if action == NoRetry {
		return nil, err
	}

	c.logger.Info("MCP call failed, retrying",
		"server", serverID, "tool", toolName,
		"action", action.String(), "error", err)

	backoff := RetryBackoffMin + time.Duration(rand.Int64N(int64(RetryBackoffMax-RetryBackoffMin)))
	select {
	case <-time.After(backoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if action == RetryNewSession {
		if err := c.recreateSession(ctx, serverID); err != nil {
			return nil, fmt.Errorf("session recreation failed for %q: %w", serverID, err)
		}
	}

	result, err = c.callToolOnce(ctx, serverID, serverCfg, toolName, args)
	if err != nil {
		return nil, fmt.Errorf("retry failed for %q.%s: %w", serverID, toolName, err)
	}
	return result, nil
}

func (c *Client) callToolOnce(ctx context.Context, serverID string, serverCfg *config.MCPServerConfig, toolName string, args map[string]any) (*CallToolResult, error) {
	conn, err := c.conn(serverID)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, time.Duration(serverCfg.TimeoutMS)*time.Millisecond)
	defer cancel()

	var res CallToolResult
	if err := conn.Call(opCtx, "tools/call", callToolParams{Name: toolName, Arguments: args}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// recreateSession tears down and reconnects one server. Per-server
// mutex prevents concurrent recreation; if two goroutines race in, the
// second does one redundant recreation, which is acceptable.
func (c *Client) recreateSession(ctx context.Context, serverID string) error {
	muI, _ := c.reinitMu.LoadOrStore(serverID, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	c.mu.Lock()
	if conn, exists := c.conns[serverID]; exists {
		_ = conn.Close()
		delete(c.conns, serverID)
	}
	c.mu.Unlock()

	c.InvalidateToolCache(serverID)

	reinitCtx, cancel := context.WithTimeout(ctx, ReinitTimeout)
	defer cancel()
	return c.connectServerLocked(reinitCtx, serverID)
}

// InvalidateToolCache forces the next ListTools to re-probe the server.
func (c *Client) InvalidateToolCache(serverID string) {
	c.toolCacheMu.Lock()
	delete(c.toolCache, serverID)
	c.toolCacheMu.Unlock()
}

// HasSession checks if a server has an active session.
func (c *Client) HasSession(serverID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.conns[serverID]
	return exists
}

// FailedServers returns servers that failed their last connect attempt.
func (c *Client) FailedServers() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[string]string, len(c.failedServers))
	for k, v := range c.failedServers {
		result[k] = v
	}
	return result
}

// Close shuts down all sessions.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for id, conn := range c.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close session %q: %w", id, err)
		}
	}
	c.conns = make(map[string]*Conn)
	c.failedServers = make(map[string]string)

	c.toolCacheMu.Lock()
	c.toolCache = make(map[string][]*Tool)
	c.toolCacheMu.Unlock()

	return firstErr
}
