package transport

import (
	"errors"
	"fmt"
)

// ConnectFailureMessage is shown in place of a response when the peer
// cannot be reached
const ConnectFailureMessage = "Failed to connect to server"

// ErrConnect matches any *ConnectError via errors.Is
var ErrConnect = errors.New("connect failed")

// ConnectError reports that no connection could be established
type ConnectError struct {
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect to %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

func (e *ConnectError) Is(target error) bool { return target == ErrConnect }

// ExchangeError reports a failure after the connection was established
type ExchangeError struct {
	Op   string // "write" or "read"
	Addr string
	Err  error
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

func (e *ExchangeError) Unwrap() error { return e.Err }
