package logging

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Run("generation", func(t *testing.T) {
		id := NewTraceID()
		_, err := ulid.Parse(id)
		require.NoError(t, err)

		assert.NotEqual(t, id, NewTraceID())
	})

	t.Run("context round trip", func(t *testing.T) {
		ctx := context.Background()
		assert.Empty(t, TraceIDFromContext(ctx))

		ctx = ContextWithTraceID(ctx, "abc")
		assert.Equal(t, "abc", TraceIDFromContext(ctx))
	})

	t.Run("get or generate", func(t *testing.T) {
		ctx := ContextWithTraceID(context.Background(), "abc")
		assert.Equal(t, "abc", GetOrGenerateTraceID(ctx))

		generated := GetOrGenerateTraceID(context.Background())
		_, err := ulid.Parse(generated)
		assert.NoError(t, err)
	})
}
