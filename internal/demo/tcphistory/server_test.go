package tcphistory

import (
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursekit/course-api/internal/platform/logger"
)

func startServer(t *testing.T) (*Server, string) {
	t.Helper()
	log, _ := logger.GetTestLogger(t)
	srv := NewServer(log)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})
	return srv, ln.Addr().String()
}

func send(t *testing.T, addr, message string) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	reply, err := Send(ctx, addr, message)
	require.NoError(t, err)
	return reply
}

func TestHistoryGrows(t *testing.T) {
	srv, addr := startServer(t)

	assert.Equal(t, "first", send(t, addr, "first"))
	assert.Equal(t, "first\nsecond", send(t, addr, "second"))
	assert.Equal(t, "first\nsecond\nthird", send(t, addr, "third"))
	assert.Equal(t, []string{"first", "second", "third"}, srv.History())
}

func TestMaxSizeMessage(t *testing.T) {
	srv, addr := startServer(t)

	message := strings.Repeat("x", MaxMessageSize)
	assert.Equal(t, message, send(t, addr, message))
	assert.Equal(t, []string{message}, srv.History())
}

func TestConcurrentClients(t *testing.T) {
	srv, addr := startServer(t)

	const clients = 10
	var wg sync.WaitGroup
	for range clients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_, err := Send(ctx, addr, "hello")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, srv.History(), clients)
}

func TestSendToClosedPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = Send(context.Background(), addr, "hello")
	assert.Error(t, err)
}
