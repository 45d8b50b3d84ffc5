package ratelimiter_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sentiment/pkg/ratelimiter"
)

// acquireAsync runs Acquire in a goroutine and waits until it is parked on the fake clock.
func acquireAsync(t *testing.T, clock *clockwork.FakeClock, b *ratelimiter.Bucket, cost float64) <-chan error {
	t.Helper()

	done := make(chan error, 1)
	go func() {
		done <- b.Acquire(context.Background(), cost)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	return done
}

func TestNewBucket_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		capacity float64
		rate     float64
	}{
		{"zero capacity", 0, 1},
		{"negative capacity", -1, 1},
		{"zero rate", 1, 0},
		{"negative rate", 1, -2},
		{"nan capacity", math.NaN(), 1},
		{"infinite rate", 1, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ratelimiter.NewBucket(tt.capacity, tt.rate)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}
}

func TestNewBucketFromConfig(t *testing.T) {
	t.Parallel()

	b, err := ratelimiter.NewBucketFromConfig(ratelimiter.Config{Capacity: 10, RefillRate: 2})
	require.NoError(t, err)
	assert.Equal(t, 10.0, b.Capacity())
	assert.Equal(t, 2.0, b.Rate())
	assert.Equal(t, 10.0, b.Tokens())
}

func TestBucket_Acquire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("starts full and grants capacity without blocking", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		b, err := ratelimiter.NewBucket(5, 1, ratelimiter.WithClock(clock))
		require.NoError(t, err)

		require.NoError(t, b.Acquire(ctx, 5))
		assert.Equal(t, 0.0, b.Tokens())

		stats := b.Stats()
		assert.Equal(t, int64(1), stats.Granted)
		assert.Equal(t, int64(0), stats.Waited)
	})

	t.Run("accrued tokens never block", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		b, err := ratelimiter.NewBucket(1, 10, ratelimiter.WithClock(clock))
		require.NoError(t, err)

		for range 5 {
			require.NoError(t, b.Acquire(ctx, 1))
			clock.Advance(200 * time.Millisecond)
		}

		assert.Equal(t, int64(5), b.Stats().Granted)
		assert.Equal(t, int64(0), b.Stats().Waited)
	})

	t.Run("refill is capped at capacity", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		b, err := ratelimiter.NewBucket(3, 2, ratelimiter.WithClock(clock))
		require.NoError(t, err)

		require.NoError(t, b.Acquire(ctx, 2))
		assert.InDelta(t, 1.0, b.Tokens(), 1e-9)

		clock.Advance(time.Hour)
		assert.InDelta(t, 3.0, b.Tokens(), 1e-9)
	})

	t.Run("fractional refill", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		b, err := ratelimiter.NewBucket(2, 2, ratelimiter.WithClock(clock))
		require.NoError(t, err)

		require.NoError(t, b.Acquire(ctx, 2))
		clock.Advance(250 * time.Millisecond)
		assert.InDelta(t, 0.5, b.Tokens(), 1e-9)
	})

	t.Run("rejects invalid cost", func(t *testing.T) {
		b, err := ratelimiter.NewBucket(1, 1)
		require.NoError(t, err)

		for _, cost := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			assert.ErrorIs(t, b.Acquire(ctx, cost), ratelimiter.ErrInvalidTokenCount)
		}
		assert.Equal(t, 1.0, b.Tokens())
	})
}

func TestBucket_AcquireWaits(t *testing.T) {
	t.Parallel()

	t.Run("blocks for cost over rate then succeeds", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		b, err := ratelimiter.NewBucket(2, 2, ratelimiter.WithClock(clock))
		require.NoError(t, err)

		require.NoError(t, b.Acquire(context.Background(), 2))

		done := acquireAsync(t, clock, b, 1)

		clock.Advance(499 * time.Millisecond)
		select {
		case <-done:
			t.Fatal("acquire returned before cost/rate elapsed")
		default:
		}

		clock.Advance(time.Millisecond)
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("acquire did not return after wait")
		}

		assert.InDelta(t, 0.0, b.Tokens(), 1e-9)

		stats := b.Stats()
		assert.Equal(t, int64(1), stats.Granted)
		assert.Equal(t, int64(1), stats.Waited)
		assert.Equal(t, 500*time.Millisecond, stats.TotalWait)
	})

	t.Run("wait ignores partial level", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		b, err := ratelimiter.NewBucket(1, 1, ratelimiter.WithClock(clock))
		require.NoError(t, err)

		require.NoError(t, b.Acquire(context.Background(), 0.5))

		// 0.5 tokens remain, but the wait is the full cost/rate.
		done := acquireAsync(t, clock, b, 1)
		clock.Advance(999 * time.Millisecond)
		select {
		case <-done:
			t.Fatal("acquire returned early")
		default:
		}
		clock.Advance(time.Millisecond)
		require.NoError(t, <-done)

		assert.InDelta(t, 0.0, b.Tokens(), 1e-9)
	})

	t.Run("cost above capacity is still granted", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		b, err := ratelimiter.NewBucket(1, 1, ratelimiter.WithClock(clock))
		require.NoError(t, err)

		done := acquireAsync(t, clock, b, 3)
		clock.Advance(3 * time.Second)
		require.NoError(t, <-done)

		// Level never drops below zero.
		assert.Equal(t, 0.0, b.Tokens())
	})
}

func TestBucket_AcquireCancelled(t *testing.T) {
	t.Parallel()

	t.Run("cancel during wait consumes nothing", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		b, err := ratelimiter.NewBucket(1, 1, ratelimiter.WithClock(clock))
		require.NoError(t, err)
		require.NoError(t, b.Acquire(context.Background(), 0.5))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- b.Acquire(ctx, 1) }()

		waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer waitCancel()
		require.NoError(t, clock.BlockUntilContext(waitCtx, 1))

		cancel()
		err = <-done
		assert.ErrorIs(t, err, ratelimiter.ErrContextCancelled)
		assert.ErrorIs(t, err, context.Canceled)

		assert.InDelta(t, 0.5, b.Tokens(), 1e-9)
		assert.Equal(t, int64(1), b.Stats().Cancelled)
	})

	t.Run("already cancelled context", func(t *testing.T) {
		b, err := ratelimiter.NewBucket(1, 1)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, b.Wait(ctx), ratelimiter.ErrContextCancelled)
		assert.InDelta(t, 1.0, b.Tokens(), 1e-6)
	})
}

func TestBucket_RealClockWait(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping wall clock test in short mode")
	}
	t.Parallel()

	b, err := ratelimiter.NewBucket(1, 20)
	require.NoError(t, err)

	require.NoError(t, b.Wait(context.Background()))

	start := time.Now()
	require.NoError(t, b.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}
