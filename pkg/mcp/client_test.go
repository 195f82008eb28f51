package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/pkg/config"
)

// scriptedServer answers initialize, tools/list, and tools/call like a
// minimal MCP server.
type scriptedServer struct {
	tools     []*Tool
	callCount atomic.Int64
	failCalls atomic.Bool // respond to tools/call by dropping the connection
}

func (s *scriptedServer) serve(conn net.Conn) {
	defer conn.Close()
	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	for sc.Scan() {
		var req jsonrpcRequest
		if err := json.Unmarshal(sc.Bytes(), &req); err != nil {
			continue
		}
		if req.ID == nil {
			continue // notification
		}
		var result any
		switch req.Method {
		case "initialize":
			result = initializeResult{
				ProtocolVersion: protocolVersion,
				ServerInfo:      implementation{Name: "scripted", Version: "1"},
			}
		case "tools/list":
			result = listToolsResult{Tools: s.tools}
		case "tools/call":
			s.callCount.Add(1)
			if s.failCalls.Load() {
				return // hard drop
			}
			result = CallToolResult{Content: []ContentBlock{{Type: "text", Text: "ok"}}}
		default:
			continue
		}
		data, _ := json.Marshal(result)
		fmt.Fprintf(conn, `{"jsonrpc":"2.0","id":%d,"result":%s}`+"\n", *req.ID, data)
	}
}

func testRegistry(servers ...config.MCPServerConfig) *config.MCPServerRegistry {
	return config.NewMCPServerRegistry(servers)
}

// newTestClient wires a Client to an in-memory scripted server.
func newTestClient(t *testing.T, srv *scriptedServer, serverCfg config.MCPServerConfig) *Client {
	t.Helper()
	c := NewClient(testRegistry(serverCfg))
	c.dial = func(serverID string, _ *config.MCPServerConfig) (*Conn, error) {
		clientSide, serverSide := net.Pipe()
		go srv.serve(serverSide)
		return NewConn(serverID, clientSide), nil
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClientConnectAndListTools(t *testing.T) {
	srv := &scriptedServer{tools: []*Tool{
		{Name: "read_file"},
		{Name: "write_file"},
	}}
	c := newTestClient(t, srv, config.MCPServerConfig{
		ID:      "repo",
		Command: []string{"unused"},
	})

	require.NoError(t, c.ConnectServer(context.Background(), "repo"))
	assert.True(t, c.HasSession("repo"))
	assert.Empty(t, c.FailedServers())

	tools, err := c.ListTools(context.Background(), "repo")
	require.NoError(t, err)
	assert.Len(t, tools, 2)
}

func TestClientToolFiltering(t *testing.T) {
	srv := &scriptedServer{tools: []*Tool{
		{Name: "read_file"},
		{Name: "delete_repo", Annotations: &ToolAnnotations{SideEffectTags: []string{"destructive"}}},
		{Name: "grep"},
	}}
	c := newTestClient(t, srv, config.MCPServerConfig{
		ID:                 "repo",
		Command:            []string{"unused"},
		AllowTools:         []string{"read_file", "delete_repo"},
		DenySideEffectTags: []string{"destructive"},
	})
	require.NoError(t, c.ConnectServer(context.Background(), "repo"))

	tools, err := c.ListTools(context.Background(), "repo")
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "read_file", tools[0].Name)
}

func TestClientCallTool(t *testing.T) {
	srv := &scriptedServer{tools: []*Tool{{Name: "echo"}}}
	c := newTestClient(t, srv, config.MCPServerConfig{
		ID: "repo", Command: []string{"unused"},
	})
	require.NoError(t, c.ConnectServer(context.Background(), "repo"))

	res, err := c.CallTool(context.Background(), "repo", "echo", map[string]any{"msg": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Text())
	assert.False(t, res.IsError)
}

func TestClientCallToolDeniedBeforeWire(t *testing.T) {
	srv := &scriptedServer{}
	c := newTestClient(t, srv, config.MCPServerConfig{
		ID: "repo", Command: []string{"unused"},
		AllowTools: []string{"only_this"},
	})
	require.NoError(t, c.ConnectServer(context.Background(), "repo"))

	_, err := c.CallTool(context.Background(), "repo", "forbidden", nil)
	require.Error(t, err)
	assert.Zero(t, srv.callCount.Load(), "denied call must not reach the server")
}

func TestClientCallToolReconnectsOnConnectionLoss(t *testing.T) {
	srv := &scriptedServer{tools: []*Tool{{Name: "echo"}}}
	c := newTestClient(t, srv, config.MCPServerConfig{
		ID: "repo", Command: []string{"unused"},
	})
	require.NoError(t, c.ConnectServer(context.Background(), "repo"))

	// First call drops the connection mid-request; the retry path must
	// reconnect and succeed.
	srv.failCalls.Store(true)
	go func() {
		// Allow the retry (post-reconnect) to succeed.
		for srv.callCount.Load() < 1 {
			time.Sleep(5 * time.Millisecond)
		}
		srv.failCalls.Store(false)
	}()

	res, err := c.CallTool(context.Background(), "repo", "echo", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Text())
	assert.GreaterOrEqual(t, srv.callCount.Load(), int64(2))
}

func TestClientConnectRecordsFailures(t *testing.T) {
	c := NewClient(testRegistry(config.MCPServerConfig{
		ID: "broken", Command: []string{"unused"},
	}))
	c.dial = func(serverID string, _ *config.MCPServerConfig) (*Conn, error) {
		return nil, &ConnectionError{Server: serverID, Err: fmt.Errorf("spawn failed")}
	}

	c.Connect(context.Background(), []string{"broken"})
	assert.False(t, c.HasSession("broken"))
	assert.Contains(t, c.FailedServers(), "broken")
}

func TestClassifyError(t *testing.T) {
	assert.Equal(t, RetryNewSession, ClassifyError(&ConnectionError{Server: "s"}))
	assert.Equal(t, RetrySameSession, ClassifyError(&TimeoutError{Server: "s"}))
	assert.Equal(t, NoRetry, ClassifyError(&ProtocolError{Server: "s"}))
	assert.Equal(t, NoRetry, ClassifyError(context.Canceled))
	assert.Equal(t, NoRetry, ClassifyError(nil))
}
