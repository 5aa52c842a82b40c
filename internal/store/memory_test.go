package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Read("k")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, s.Write("k", []byte("v1")))

		got, err := s.Read("k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), got)

		require.NoError(t, s.Write("k", []byte("v2")))
		got, err = s.Read("k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, s.Remove("k"))
		_, err := s.Read("k")
		assert.ErrorIs(t, err, ErrNotFound)

		// Idempotent.
		assert.NoError(t, s.Remove("k"))
	})

	t.Run("empty key rejected", func(t *testing.T) {
		_, err := s.Read("")
		assert.ErrorIs(t, err, ErrInvalidKey)
		assert.ErrorIs(t, s.Write("", nil), ErrInvalidKey)
		assert.ErrorIs(t, s.Remove(""), ErrInvalidKey)
	})
}
