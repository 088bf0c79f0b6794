package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserID(ctx)
	assert.False(t, ok)
	assert.Empty(t, GetTraceID(ctx))

	userID := uuid.New()
	ctx = WithUserID(WithTraceID(ctx, "trace-1"), userID)

	got, ok := GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, userID, got)
	assert.Equal(t, "trace-1", GetTraceID(ctx))
}

func TestNewTraceID(t *testing.T) {
	a, b := NewTraceID(), NewTraceID()
	assert.Len(t, a, TraceIDLength*2)
	assert.NotEqual(t, a, b)
}
