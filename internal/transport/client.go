package transport

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/studiowebux/tcpjson/internal/config"
)

// Client sends one payload per connection to a fixed endpoint
type Client struct {
	address        string
	dialTimeout    time.Duration
	readTimeout    time.Duration
	readBufferSize int
}

// NewClient creates a client from the given configuration
func NewClient(cfg config.Config) *Client {
	bufSize := cfg.ReadBufferSize
	if bufSize <= 0 {
		bufSize = config.DefaultReadBufferSize
	}
	return &Client{
		address:        cfg.Address(),
		dialTimeout:    cfg.DialTimeout,
		readTimeout:    cfg.ReadTimeout,
		readBufferSize: bufSize,
	}
}

// Address returns the endpoint the client dials
func (c *Client) Address() string {
	return c.address
}

// Exchange is the outcome of a single send
type Exchange struct {
	ID            string
	Address       string
	Response      []byte
	BytesSent     int
	BytesReceived int
	StartedAt     time.Time
	Duration      time.Duration
}

// Send dials a fresh connection, writes the whole payload and performs a
// single read. Whatever that read returns is the response: a reply split
// across several TCP segments is not reassembled. The connection is closed
// before Send returns.
func (c *Client) Send(ctx context.Context, payload []byte) (*Exchange, error) {
	ex := &Exchange{
		ID:        uuid.NewString(),
		Address:   c.address,
		StartedAt: time.Now(),
	}

	dialer := net.Dialer{Timeout: c.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		log.Printf("exchange %s: connect to %s failed: %v", ex.ID, c.address, err)
		return nil, &ConnectError{Addr: c.address, Err: err}
	}
	defer conn.Close()

	// Unblock any pending I/O when the caller gives up
	stop := context.AfterFunc(ctx, func() {
		conn.SetDeadline(time.Now())
	})
	defer stop()

	n, err := conn.Write(payload)
	ex.BytesSent = n
	if err != nil {
		return nil, &ExchangeError{Op: "write", Addr: c.address, Err: err}
	}
	log.Printf("exchange %s: sent %d bytes to %s", ex.ID, n, c.address)

	if c.readTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
			return nil, &ExchangeError{Op: "read", Addr: c.address, Err: err}
		}
	}

	buf := make([]byte, c.readBufferSize)
	n, err = conn.Read(buf)
	if n == 0 {
		if err == nil {
			err = io.ErrNoProgress
		}
		if ctx.Err() != nil {
			err = fmt.Errorf("%w: %v", ctx.Err(), err)
		}
		return nil, &ExchangeError{Op: "read", Addr: c.address, Err: err}
	}

	ex.Response = buf[:n]
	ex.BytesReceived = n
	ex.Duration = time.Since(ex.StartedAt)
	log.Printf("exchange %s: received %d bytes in %s", ex.ID, n, FormatDuration(ex.Duration))

	return ex, nil
}

// FormatDuration formats a duration to a short human-readable string
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// FormatSize formats byte size to human-readable string
func FormatSize(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.2fKB", float64(bytes)/1024.0)
	}
	return fmt.Sprintf("%.2fMB", float64(bytes)/(1024.0*1024.0))
}
