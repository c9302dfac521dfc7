package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

const (
	dialTimeout   = 2 * time.Second
	writeTimeout  = time.Second
	retryInterval = 5 * time.Second
)

// TCPSink mirrors log lines to a TCP log collector without ever blocking the
// caller. It holds one connection open; while the collector is unreachable,
// writes are dropped and reconnects are rate-limited to one per retry window.
type TCPSink struct {
	addr string

	mu        sync.Mutex
	conn      net.Conn
	nextRetry time.Time
	closed    bool
}

func NewTCPSink(addr string) (*TCPSink, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logging: empty sink address")
	}
	return &TCPSink{addr: addr}, nil
}

// Write implements io.Writer. Network failures are swallowed; the log line is
// reported as written either way so the standard logger never sees an error.
func (s *TCPSink) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	line := make([]byte, len(p))
	copy(line, p)
	if line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, io.ErrClosedPipe
	}
	if !s.connectLocked() {
		return len(p), nil
	}

	_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if _, err := s.conn.Write(line); err != nil {
		_ = s.conn.Close()
		s.conn = nil
		s.nextRetry = time.Now().Add(retryInterval)
	}
	return len(p), nil
}

func (s *TCPSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

func (s *TCPSink) connectLocked() bool {
	if s.conn != nil {
		return true
	}
	if !s.nextRetry.IsZero() && time.Now().Before(s.nextRetry) {
		return false
	}

	conn, err := net.DialTimeout("tcp", s.addr, dialTimeout)
	if err != nil {
		s.nextRetry = time.Now().Add(retryInterval)
		return false
	}
	s.conn = conn
	s.nextRetry = time.Time{}
	return true
}
