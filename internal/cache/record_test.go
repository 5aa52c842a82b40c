package cache

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	rec := NewRecord(map[string]string{"name": "A"}, now)

	assert.Equal(t, now.UnixMilli(), rec.Timestamp)
	assert.Equal(t, now, rec.WrittenAt())
	assert.Equal(t, time.Duration(0), rec.Age(now))

	t.Run("Age", func(t *testing.T) {
		later := now.Add(90 * time.Second)
		assert.Equal(t, 90*time.Second, rec.Age(later))
	})

	t.Run("Expired", func(t *testing.T) {
		ttl := 24 * time.Hour
		assert.False(t, rec.Expired(ttl, now))
		assert.False(t, rec.Expired(ttl, now.Add(ttl-time.Millisecond)))
		// Validity is strict: age == TTL is already expired.
		assert.True(t, rec.Expired(ttl, now.Add(ttl)))
		assert.True(t, rec.Expired(ttl, now.Add(ttl+time.Millisecond)))
	})

	t.Run("JSON", func(t *testing.T) {
		encoded, err := json.Marshal(rec)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":{"name":"A"},"timestamp":1700000000000}`, string(encoded))

		var decoded Record[map[string]string]
		require.NoError(t, json.Unmarshal(encoded, &decoded))
		assert.Equal(t, rec, decoded)
	})
}
