package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
)

// maxLineBytes caps a single JSON-RPC line. Tool results can be large
// but a multi-megabyte line is almost certainly a broken server.
const maxLineBytes = 16 * 1024 * 1024

type jsonrpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      *int64 `json:"id,omitempty"` // nil for notifications
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type jsonrpcError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type jsonrpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *int64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *jsonrpcError   `json:"error"`
}

// Conn speaks newline-delimited JSON-RPC 2.0 over a byte stream,
// typically a child process's stdin/stdout pair. One reader goroutine
// routes responses to in-flight calls by request id; writes are
// serialized. Server notifications are logged and dropped.
type Conn struct {
	server string
	rwc    io.ReadWriteCloser
	logger *slog.Logger

	writeMu sync.Mutex

	nextID atomic.Int64

	pendingMu sync.Mutex
	pending   map[int64]chan *jsonrpcResponse

	closeOnce sync.Once
	closed    chan struct{}
}

// NewConn wraps a stream and starts the reader loop. The Conn owns the
// stream and closes it on Close.
func NewConn(server string, rwc io.ReadWriteCloser) *Conn {
	c := &Conn{
		server:  server,
		rwc:     rwc,
		logger:  slog.Default(),
		pending: make(map[int64]chan *jsonrpcResponse),
		closed:  make(chan struct{}),
	}
	go c.readLoop()
	return c
}

// Call sends a request and decodes the matching response's result into
// out (which may be nil to discard). Returns TimeoutError on deadline,
// ConnectionError if the stream dies, ProtocolError on a JSON-RPC error
// response.
func (c *Conn) Call(ctx context.Context, method string, params, out any) error {
	select {
	case <-c.closed:
		return &ConnectionError{Server: c.server, Err: io.ErrClosedPipe}
	default:
	}

	id := c.nextID.Add(1)
	ch := make(chan *jsonrpcResponse, 1)

	c.pendingMu.Lock()
	c.pending[id] = ch
	c.pendingMu.Unlock()
	defer func() {
		c.pendingMu.Lock()
		delete(c.pending, id)
		c.pendingMu.Unlock()
	}()

	if err := c.write(jsonrpcRequest{JSONRPC: "2.0", ID: &id, Method: method, Params: params}); err != nil {
		return &ConnectionError{Server: c.server, Err: err}
	}

	select {
	case resp := <-ch:
		if resp.Error != nil {
			return &ProtocolError{Server: c.server, Method: method, Code: resp.Error.Code, Message: resp.Error.Message}
		}
		if out != nil && len(resp.Result) > 0 {
			if err := json.Unmarshal(resp.Result, out); err != nil {
				return fmt.Errorf("decode %s result from %q: %w", method, c.server, err)
			}
		}
		return nil
	case <-c.closed:
		return &ConnectionError{Server: c.server, Err: io.ErrUnexpectedEOF}
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return &TimeoutError{Server: c.server, Method: method}
		}
		return ctx.Err()
	}
}

// Notify sends a notification (no id, no response expected).
func (c *Conn) Notify(method string, params any) error {
	if err := c.write(jsonrpcRequest{JSONRPC: "2.0", Method: method, Params: params}); err != nil {
		return &ConnectionError{Server: c.server, Err: err}
	}
	return nil
}

func (c *Conn) write(req jsonrpcRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	data = append(data, '\n')

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_, err = c.rwc.Write(data)
	return err
}

// readLoop runs until the stream errors or Close is called. Lines that
// are not valid JSON-RPC are skipped, not fatal: a chatty server that
// prints diagnostics to stdout should not kill the session.
func (c *Conn) readLoop() {
	defer c.failPending()

	scanner := bufio.NewScanner(c.rwc)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var resp jsonrpcResponse
		if err := json.Unmarshal(line, &resp); err != nil || resp.JSONRPC != "2.0" {
			c.logger.Warn("Skipping malformed MCP line",
				"server", c.server, "bytes", len(line))
			continue
		}
		if resp.ID == nil {
			// Server notification; logged but not consumed.
			var note struct {
				Method string `json:"method"`
			}
			_ = json.Unmarshal(line, &note)
			c.logger.Debug("MCP server notification",
				"server", c.server, "method", note.Method)
			continue
		}

		c.pendingMu.Lock()
		ch, ok := c.pending[*resp.ID]
		c.pendingMu.Unlock()
		if !ok {
			c.logger.Debug("Dropping MCP response with unknown id",
				"server", c.server, "id", *resp.ID)
			continue
		}
		ch <- &resp
	}

	if err := scanner.Err(); err != nil {
		c.logger.Debug("MCP read loop ended", "server", c.server, "error", err)
	}
}

// failPending closes the conn state so every in-flight and future Call
// gets a ConnectionError instead of hanging.
func (c *Conn) failPending() {
	c.closeOnce.Do(func() { close(c.closed) })
}

// Close tears down the stream. In-flight calls fail with ConnectionError.
func (c *Conn) Close() error {
	c.failPending()
	return c.rwc.Close()
}

// Done is closed when the connection is no longer usable.
func (c *Conn) Done() <-chan struct{} { return c.closed }
