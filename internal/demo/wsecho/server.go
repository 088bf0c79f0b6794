// Package wsecho implements a WebSocket server that answers every text
// message with a fixed number of numbered echoes, and a client for it.
package wsecho

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// DefaultAddr is the address the server listens on by default.
	DefaultAddr = "localhost:8765"

	// RepliesPerMessage is the number of echoes sent for each message.
	RepliesPerMessage = 5

	writeTimeout = 10 * time.Second
)

// Reply formats the i-th echo of message.
func Reply(i int, message string) string {
	return fmt.Sprintf("%d Сообщение от сервера: %s", i, message)
}

// Handler upgrades requests to WebSocket connections and echoes messages.
// Upgraded connections are hijacked from net/http, so the handler tracks
// them itself and Close ends them.
type Handler struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	closed bool
	wg     sync.WaitGroup
}

// NewHandler creates an echo handler. Cross-origin connections are accepted.
func NewHandler(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger: logger.With(slog.String("component", "ws_echo")),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// track registers conn, or reports false once the handler is closed.
func (h *Handler) track(conn *websocket.Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.conns[conn] = struct{}{}
	h.wg.Add(1)
	return true
}

func (h *Handler) untrack(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	h.wg.Done()
}

// Close sends a going-away close frame to every open connection, closes
// them and waits for their echo loops to return. Later upgrades are closed
// straight away.
func (h *Handler) Close() {
	h.mu.Lock()
	h.closed = true
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for _, conn := range conns {
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		_ = conn.Close()
	}
	h.wg.Wait()
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer func() { _ = conn.Close() }()

	if !h.track(conn) {
		return
	}
	defer h.untrack(conn)

	log := h.logger.With(slog.String("remote_addr", r.RemoteAddr))
	log.Info("client connected")

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Info("client disconnected")
			} else {
				log.Warn("read failed", slog.String("error", err.Error()))
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		message := string(data)
		log.Info("message received", slog.String("message", message))
		for i := 1; i <= RepliesPerMessage; i++ {
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(Reply(i, message))); err != nil {
				log.Warn("write failed", slog.String("error", err.Error()))
				return
			}
		}
	}
}

// ListenAndServe serves the echo handler on addr until ctx is cancelled,
// then closes open WebSocket connections.
func ListenAndServe(ctx context.Context, addr string, logger *slog.Logger) error {
	handler := NewHandler(logger)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		handler.Close()
		if err != nil {
			return fmt.Errorf("websocket server shutdown failed: %w", err)
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
