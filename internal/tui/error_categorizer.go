package tui

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"strings"
	"syscall"

	"github.com/studiowebux/tcpjson/internal/transport"
)

// categorizeExchangeError maps error text from a TCP exchange to an
// actionable, user-friendly message
func categorizeExchangeError(errStr string) string {
	if errStr == "" {
		return ""
	}

	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "context canceled") {
		return "Send cancelled"
	}

	// DNS resolution errors
	if strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "dial tcp: lookup") {
		return "DNS resolution failed - verify the host name"
	}

	// Connection refused (server not running)
	if strings.Contains(errLower, "connection refused") {
		return "Connection refused - check that the server is running and the port is correct"
	}

	if strings.Contains(errLower, "connection reset") {
		return "Connection reset by server - the peer closed the connection abruptly"
	}

	if strings.Contains(errLower, "broken pipe") {
		return "Write failed - the peer closed the connection before reading"
	}

	if strings.Contains(errLower, "network is unreachable") ||
		strings.Contains(errLower, "no route to host") {
		return "Network unreachable - check network connection and firewall settings"
	}

	// EOF (peer closed without replying)
	if strings.Contains(errLower, "eof") {
		return "Connection closed - the server sent no response"
	}

	if strings.Contains(errLower, "timeout") ||
		strings.Contains(errLower, "deadline exceeded") ||
		strings.Contains(errLower, "timed out") {
		return "Timeout - the server took too long, try --connect-timeout or --read-timeout"
	}

	return "Send failed: " + errStr
}

// categorizeError inspects the error chain before falling back to the text
func categorizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.Canceled) {
		return "Send cancelled"
	}

	var exErr *transport.ExchangeError
	isRead := errors.As(err, &exErr) && exErr.Op == "read"

	if errors.Is(err, io.EOF) && isRead {
		return "Connection closed - the server sent no response"
	}

	if errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		if errors.Is(err, transport.ErrConnect) {
			return "Connect timeout - the server did not accept the connection, try --connect-timeout"
		}
		return "Read timeout - the server did not reply in time, try --read-timeout"
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if msg := categorizeNetError(opErr); msg != "" {
			return msg
		}
	}

	return categorizeExchangeError(err.Error())
}

// categorizeNetError handles syscall errors carried by a net.OpError
func categorizeNetError(e *net.OpError) string {
	var errno syscall.Errno
	if !errors.As(e.Err, &errno) {
		return ""
	}

	switch errno {
	case syscall.ECONNREFUSED:
		return "Connection refused - check that the server is running and the port is correct"
	case syscall.ECONNRESET:
		return "Connection reset by server - the peer closed the connection abruptly"
	case syscall.EPIPE:
		return "Write failed - the peer closed the connection before reading"
	case syscall.ENETUNREACH:
		return "Network unreachable - check network connection and firewall settings"
	case syscall.EHOSTUNREACH:
		return "Host unreachable - check that the server is online and accessible"
	}
	return ""
}
