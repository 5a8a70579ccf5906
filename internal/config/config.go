package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

const (
	// DefaultHost is the loopback address the client talks to
	DefaultHost = "127.0.0.1"
	// DefaultPort is the TCP port of the peer
	DefaultPort = 8080

	// DefaultDialTimeout bounds the blocking connect step
	DefaultDialTimeout = 30 * time.Second
	// DefaultReadTimeout bounds the wait for the first response bytes
	DefaultReadTimeout = 30 * time.Second
	// DefaultDebounceDelay is how long the send control stays disabled after a send
	DefaultDebounceDelay = 1000 * time.Millisecond
	// DefaultReadBufferSize is the size of the single read performed per exchange
	DefaultReadBufferSize = 64 * 1024

	// DebugLogFile is written when debug tracing is enabled
	DebugLogFile = "debug.log"
)

// Config holds the client settings. Every field has a usable default;
// command-line flags may override them.
type Config struct {
	Host           string
	Port           int
	DialTimeout    time.Duration
	ReadTimeout    time.Duration // 0 disables the read deadline
	DebounceDelay  time.Duration
	ReadBufferSize int

	// EscapeStrings renders JSON strings escaped instead of verbatim
	EscapeStrings bool
	// Highlight enables syntax highlighting of the response area
	Highlight bool
	// Debug enables trace logging to DebugLogFile
	Debug bool
}

// Default returns the configuration used when no flag overrides anything
func Default() Config {
	return Config{
		Host:           DefaultHost,
		Port:           DefaultPort,
		DialTimeout:    DefaultDialTimeout,
		ReadTimeout:    DefaultReadTimeout,
		DebounceDelay:  DefaultDebounceDelay,
		ReadBufferSize: DefaultReadBufferSize,
		Highlight:      true,
	}
}

// Address returns host:port suitable for net.Dial
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate checks that the configuration can be used to dial a peer
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", c.Port)
	}
	if c.DialTimeout <= 0 {
		return fmt.Errorf("connect timeout must be positive, got %s", c.DialTimeout)
	}
	if c.ReadTimeout < 0 {
		return fmt.Errorf("read timeout must not be negative, got %s", c.ReadTimeout)
	}
	if c.DebounceDelay < 0 {
		return fmt.Errorf("debounce delay must not be negative, got %s", c.DebounceDelay)
	}
	if c.ReadBufferSize <= 0 {
		return fmt.Errorf("read buffer size must be positive, got %d", c.ReadBufferSize)
	}
	return nil
}
