package main

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursekit/course-api/internal/demo/grpccourse"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestServeAndGet(t *testing.T) {
	addr := freeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- newApp().RunContext(ctx, []string{"grpc-course", "--addr", addr, "--log-level", "error", "serve"})
	}()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	require.Eventually(t, func() bool {
		out.Reset()
		return app.RunContext(context.Background(), []string{"grpc-course", "--addr", addr, "get", "42"}) == nil
	}, 5*time.Second, 50*time.Millisecond)

	assert.Contains(t, out.String(), `course_id: "42"`)
	assert.Contains(t, out.String(), grpccourse.CourseTitle)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
