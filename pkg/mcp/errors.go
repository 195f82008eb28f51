package mcp

import (
	"context"
	"errors"
	"fmt"
)

// ConnectionError indicates the transport to a server is broken: the
// child process died, stdin/stdout closed, or the connection was never
// established.
type ConnectionError struct {
	Server string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("mcp connection to %q: %v", e.Server, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// TimeoutError indicates a request did not receive a response within its
// deadline. The connection itself may still be healthy.
type TimeoutError struct {
	Server string
	Method string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("mcp request %s to %q timed out", e.Method, e.Server)
}

// ProtocolError carries a JSON-RPC error object returned by the server.
// The server is reachable; the request itself was rejected.
type ProtocolError struct {
	Server  string
	Method  string
	Code    int
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("mcp %s on %q failed: %s (code %d)", e.Method, e.Server, e.Message, e.Code)
}

// RecoveryAction tells CallTool how to handle a failure.
type RecoveryAction int

const (
	// NoRetry: the error is deterministic, retrying cannot help.
	NoRetry RecoveryAction = iota
	// RetrySameSession: transient, the session is still usable.
	RetrySameSession
	// RetryNewSession: the transport is broken, reconnect first.
	RetryNewSession
)

func (a RecoveryAction) String() string {
	switch a {
	case RetrySameSession:
		return "retry"
	case RetryNewSession:
		return "retry_new_session"
	default:
		return "no_retry"
	}
}

// ClassifyError maps an error to a recovery action. Protocol errors and
// context cancellation are never retried; timeouts get one retry on the
// same session; connection failures get a reconnect.
func ClassifyError(err error) RecoveryAction {
	if err == nil {
		return NoRetry
	}
	if errors.Is(err, context.Canceled) {
		return NoRetry
	}

	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return RetryNewSession
	}
	var toErr *TimeoutError
	if errors.As(err, &toErr) {
		return RetrySameSession
	}
	var protoErr *ProtocolError
	if errors.As(err, &protoErr) {
		return NoRetry
	}
	return NoRetry
}
