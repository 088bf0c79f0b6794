// Package tcphistory implements a TCP server that remembers every message it
// receives and answers each one with the full history.
package tcphistory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultAddr is the address the server listens on by default.
	DefaultAddr = "localhost:12345"

	// MaxMessageSize is the largest message read from one connection.
	MaxMessageSize = 1024

	connTimeout = 30 * time.Second
)

// Server stores received messages in memory.
type Server struct {
	logger *slog.Logger

	mu      sync.Mutex
	history []string

	wg sync.WaitGroup
}

// NewServer creates a server with an empty history.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{logger: logger.With(slog.String("component", "tcp_history"))}
}

// History returns a copy of the received messages in arrival order.
func (s *Server) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.history...)
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. It closes ln and
// waits for open connections before returning.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("tcp history server started", slog.String("addr", ln.Addr().String()))

	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()
	defer s.wg.Wait()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.logger.Info("tcp history server stopped")
				return nil
			}
			return fmt.Errorf("accept failed: %w", err)
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(conn)
		}()
	}
}

func (s *Server) handle(conn net.Conn) {
	defer func() { _ = conn.Close() }()
	log := s.logger.With(slog.String("remote_addr", conn.RemoteAddr().String()))
	log.Info("client connected")

	_ = conn.SetDeadline(time.Now().Add(connTimeout))

	buf := make([]byte, MaxMessageSize)
	n, err := conn.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		log.Warn("failed to read message", slog.String("error", err.Error()))
		return
	}
	message := string(buf[:n])
	log.Info("message received", slog.String("message", message))

	s.mu.Lock()
	s.history = append(s.history, message)
	reply := strings.Join(s.history, "\n")
	s.mu.Unlock()

	if _, err := io.WriteString(conn, reply); err != nil {
		log.Warn("failed to send history", slog.String("error", err.Error()))
	}
}

// Send delivers message to the server at addr and returns the history it
// answers with.
func Send(ctx context.Context, addr, message string) (string, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	if _, err := io.WriteString(conn, message); err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	reply, err := io.ReadAll(conn)
	if err != nil {
		return "", fmt.Errorf("failed to read history: %w", err)
	}
	return string(reply), nil
}
