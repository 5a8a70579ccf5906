package mock

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultReadSize = 64 * 1024
	maxLogs         = 1000
	stopTimeout     = 5 * time.Second
)

// Server is a TCP peer that answers each connection's first payload with a
// configured reply and then closes the connection
type Server struct {
	config    *Config
	listener  net.Listener
	logs      []ExchangeLog
	logsMutex sync.RWMutex
	workdir   string
	notifyCh  chan struct{} // Channel to notify when new log arrives
	wg        sync.WaitGroup
}

// NewServer creates a new mock peer. Port 0 picks a free port; use Addr
// after Start to learn it.
func NewServer(config *Config, workdir string) *Server {
	if config.Host == "" {
		config.Host = "127.0.0.1"
	}
	if config.ReadSize <= 0 {
		config.ReadSize = defaultReadSize
	}

	return &Server{
		config:   config,
		logs:     make([]ExchangeLog, 0),
		workdir:  workdir,
		notifyCh: make(chan struct{}, 100), // Buffered channel for notifications
	}
}

// Start binds the listener and serves connections in the background
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = ln

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.acceptLoop()
	}()

	return nil
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				log.Printf("Mock peer accept error: %v", err)
			}
			return
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(conn)
		}()
	}
}

// Stop closes the listener and waits for in-flight connections
func (s *Server) Stop() error {
	if s.listener == nil {
		return nil
	}

	err := s.listener.Close()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(stopTimeout):
		return fmt.Errorf("timed out waiting for connections to finish")
	}

	if err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

// handleConn reads one payload, writes the matching reply and closes
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()
	start := time.Now()

	buf := make([]byte, s.config.ReadSize)
	n, err := conn.Read(buf)
	if n == 0 && err != nil {
		return
	}
	payload := string(buf[:n])

	resp := s.findMatchingResponse(payload)

	var reply []byte
	matchedRule := "echo"
	if resp == nil {
		reply = echoReply(payload)
	} else {
		if resp.Delay > 0 {
			time.Sleep(time.Duration(resp.Delay) * time.Millisecond)
		}

		reply, err = s.replyBody(resp)
		if err != nil {
			reply = []byte(fmt.Sprintf(`{"error": %q}`, err.Error()))
		}

		matchedRule = resp.Name
		if matchedRule == "" {
			matchedRule = fmt.Sprintf("%s %s", matchType(resp), resp.Pattern)
		}
	}

	if err := writeReply(conn, reply, resp); err != nil {
		log.Printf("Mock peer write error: %v", err)
	}

	if s.config.Logging {
		s.logExchange(ExchangeLog{
			ID:          uuid.NewString(),
			Timestamp:   start,
			Remote:      conn.RemoteAddr().String(),
			Payload:     payload,
			MatchedRule: matchedRule,
			Reply:       string(reply),
			Duration:    time.Since(start),
		})
	}
}

// writeReply sends reply, in two chunks when resp asks for a split
func writeReply(conn net.Conn, reply []byte, resp *Response) error {
	if resp == nil || resp.SplitAt <= 0 || resp.SplitAt >= len(reply) {
		_, err := conn.Write(reply)
		return err
	}

	if _, err := conn.Write(reply[:resp.SplitAt]); err != nil {
		return err
	}
	time.Sleep(time.Duration(resp.SplitWait) * time.Millisecond)
	_, err := conn.Write(reply[resp.SplitAt:])
	return err
}

func (s *Server) replyBody(resp *Response) ([]byte, error) {
	if resp.BodyFile == "" {
		return []byte(resp.Body), nil
	}

	filePath := resp.BodyFile
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(s.workdir, filePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read body file %s: %w", resp.BodyFile, err)
	}
	return data, nil
}

func echoReply(payload string) []byte {
	data, _ := json.Marshal(struct {
		Echo  string `json:"echo"`
		Bytes int    `json:"bytes"`
	}{Echo: payload, Bytes: len(payload)})
	return data
}

func matchType(resp *Response) string {
	if resp.Match == "" {
		return "exact"
	}
	return resp.Match
}

// findMatchingResponse finds the first response rule that matches the payload
func (s *Server) findMatchingResponse(payload string) *Response {
	trimmed := strings.TrimRight(payload, "\r\n")

	for i := range s.config.Responses {
		resp := &s.config.Responses[i]

		matched := false
		switch matchType(resp) {
		case "any":
			matched = true
		case "exact":
			matched = resp.Pattern == trimmed
		case "prefix":
			matched = strings.HasPrefix(trimmed, resp.Pattern)
		case "regex":
			if re, err := regexp.Compile(resp.Pattern); err == nil {
				matched = re.MatchString(trimmed)
			}
		}

		if matched {
			return resp
		}
	}

	return nil
}

// logExchange adds an exchange to the log
func (s *Server) logExchange(entry ExchangeLog) {
	s.logsMutex.Lock()
	defer s.logsMutex.Unlock()

	s.logs = append(s.logs, entry)

	if len(s.logs) > maxLogs {
		s.logs = s.logs[len(s.logs)-maxLogs:]
	}

	// Notify listeners (non-blocking)
	select {
	case s.notifyCh <- struct{}{}:
	default:
		// Channel full, skip notification
	}
}

// NotifyChannel returns the notification channel
func (s *Server) NotifyChannel() <-chan struct{} {
	return s.notifyCh
}

// GetLogs returns all logged exchanges
func (s *Server) GetLogs() []ExchangeLog {
	s.logsMutex.RLock()
	defer s.logsMutex.RUnlock()

	logs := make([]ExchangeLog, len(s.logs))
	copy(logs, s.logs)
	return logs
}

// ClearLogs clears all logged exchanges
func (s *Server) ClearLogs() {
	s.logsMutex.Lock()
	defer s.logsMutex.Unlock()

	s.logs = make([]ExchangeLog, 0)
}

// DrainLogs returns all logged exchanges and clears them under one lock,
// so entries logged between a read and a clear are not lost
func (s *Server) DrainLogs() []ExchangeLog {
	s.logsMutex.Lock()
	defer s.logsMutex.Unlock()

	logs := s.logs
	s.logs = make([]ExchangeLog, 0)
	return logs
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}
