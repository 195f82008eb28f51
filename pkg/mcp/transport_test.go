package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer scripts the remote side of a Conn over an in-memory pipe.
type fakeServer struct {
	conn net.Conn
	sc   *bufio.Scanner
}

func newFakePair(t *testing.T) (*Conn, *fakeServer) {
	t.Helper()
	client, server := net.Pipe()
	c := NewConn("fake", client)
	t.Cleanup(func() { _ = c.Close(); _ = server.Close() })
	sc := bufio.NewScanner(server)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	return c, &fakeServer{conn: server, sc: sc}
}

// readRequest blocks until the next request line arrives.
func (s *fakeServer) readRequest(t *testing.T) jsonrpcRequest {
	t.Helper()
	require.True(t, s.sc.Scan(), "expected a request line")
	var req jsonrpcRequest
	require.NoError(t, json.Unmarshal(s.sc.Bytes(), &req))
	return req
}

func (s *fakeServer) writeLine(t *testing.T, line string) {
	t.Helper()
	_, err := s.conn.Write([]byte(line + "\n"))
	require.NoError(t, err)
}

func (s *fakeServer) respond(t *testing.T, id int64, result string) {
	s.writeLine(t, fmt.Sprintf(`{"jsonrpc":"2.0","id":%d,"result":%s}`, id, result))
}

func TestConnCall(t *testing.T) {
	c, srv := newFakePair(t)

	done := make(chan error, 1)
	var out struct {
		Value string `json:"value"`
	}
	go func() {
		done <- c.Call(context.Background(), "ping", map[string]any{"x": 1}, &out)
	}()

	req := srv.readRequest(t)
	assert.Equal(t, "2.0", req.JSONRPC)
	assert.Equal(t, "ping", req.Method)
	require.NotNil(t, req.ID)

	srv.respond(t, *req.ID, `{"value":"pong"}`)
	require.NoError(t, <-done)
	assert.Equal(t, "pong", out.Value)
}

func TestConnCallProtocolError(t *testing.T) {
	c, srv := newFakePair(t)

	done := make(chan error, 1)
	go func() { done <- c.Call(context.Background(), "tools/call", nil, nil) }()

	req := srv.readRequest(t)
	srv.writeLine(t, fmt.Sprintf(`{"jsonrpc":"2.0","id":%d,"error":{"code":-32602,"message":"bad params"}}`, *req.ID))

	err := <-done
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, -32602, protoErr.Code)
	assert.Equal(t, "bad params", protoErr.Message)
}

func TestConnSkipsMalformedLines(t *testing.T) {
	c, srv := newFakePair(t)

	done := make(chan error, 1)
	go func() { done <- c.Call(context.Background(), "ping", nil, nil) }()

	req := srv.readRequest(t)
	// Diagnostic noise on stdout must not kill the session.
	srv.writeLine(t, "starting up...")
	srv.writeLine(t, `{"not":"jsonrpc"}`)
	srv.respond(t, *req.ID, `{}`)

	require.NoError(t, <-done)
}

func TestConnLogsServerNotifications(t *testing.T) {
	c, srv := newFakePair(t)
	var logBuf bytes.Buffer
	c.logger = slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	done := make(chan error, 1)
	go func() { done <- c.Call(context.Background(), "ping", nil, nil) }()

	req := srv.readRequest(t)
	srv.writeLine(t, `{"jsonrpc":"2.0","method":"notifications/tools/list_changed"}`)
	srv.respond(t, *req.ID, `{}`)
	require.NoError(t, <-done)

	assert.Contains(t, logBuf.String(), "MCP server notification")
	assert.Contains(t, logBuf.String(), "notifications/tools/list_changed")
}

func TestConnCallTimeout(t *testing.T) {
	c, srv := newFakePair(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.Call(ctx, "slow", nil, nil) }()

	srv.readRequest(t) // server never answers

	err := <-done
	var toErr *TimeoutError
	require.ErrorAs(t, err, &toErr)
	assert.Equal(t, "slow", toErr.Method)
}

func TestConnCloseFailsInflight(t *testing.T) {
	c, srv := newFakePair(t)

	done := make(chan error, 1)
	go func() { done <- c.Call(context.Background(), "ping", nil, nil) }()
	srv.readRequest(t)

	require.NoError(t, c.Close())

	err := <-done
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)

	// Further calls fail immediately.
	err = c.Call(context.Background(), "ping", nil, nil)
	require.ErrorAs(t, err, &connErr)
}

func TestConnServerEOF(t *testing.T) {
	c, srv := newFakePair(t)

	done := make(chan error, 1)
	go func() { done <- c.Call(context.Background(), "ping", nil, nil) }()
	srv.readRequest(t)

	require.NoError(t, srv.conn.Close())

	err := <-done
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)

	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Done not closed after server EOF")
	}
}

func TestConnIgnoresUnknownIDs(t *testing.T) {
	c, srv := newFakePair(t)

	done := make(chan error, 1)
	go func() { done <- c.Call(context.Background(), "ping", nil, nil) }()

	req := srv.readRequest(t)
	srv.respond(t, *req.ID+100, `{}`) // stale id, dropped
	srv.respond(t, *req.ID, `{}`)

	require.NoError(t, <-done)
}
