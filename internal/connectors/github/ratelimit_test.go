package github

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Run("unpaced never blocks", func(t *testing.T) {
		r := NewRateLimiter(0)

		for i := 0; i < 100; i++ {
			require.NoError(t, r.Wait(context.Background()))
		}
		assert.False(t, r.Paced())
	})

	t.Run("unpaced honours cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, NewRateLimiter(0).Wait(ctx), context.Canceled)
	})

	t.Run("paced spaces requests", func(t *testing.T) {
		r := NewRateLimiter(20)

		start := time.Now()
		for i := 0; i < 3; i++ {
			require.NoError(t, r.Wait(context.Background()))
		}

		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})
}

func TestRateLimiter_UpdateFromResponse(t *testing.T) {
	r := NewRateLimiter(0)
	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set(HeaderRateLimit, "60")
	resp.Header.Set(HeaderRateRemaining, "12")
	resp.Header.Set(HeaderRateReset, "1893456000")

	r.UpdateFromResponse(resp)

	q, ok := r.Observed()
	require.True(t, ok)
	assert.Equal(t, 60, q.Limit)
	assert.Equal(t, 12, q.Remaining)
	assert.Equal(t, int64(1893456000), q.ResetAt.Unix())

	t.Run("ignores malformed headers", func(t *testing.T) {
		bad := &http.Response{Header: http.Header{}}
		bad.Header.Set(HeaderRateRemaining, "lots")

		r.UpdateFromResponse(bad)
		r.UpdateFromResponse(nil)

		q, _ := r.Observed()
		assert.Equal(t, 12, q.Remaining)
	})
}
