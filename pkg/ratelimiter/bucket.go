package ratelimiter

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dmitrymomot/sentiment/core/logger"
)

// Config holds bucket parameters. Field tags allow loading it with core/config.
type Config struct {
	Capacity   float64 `env:"RATE_LIMIT_CAPACITY" envDefault:"10"`
	RefillRate float64 `env:"RATE_LIMIT_REFILL_RATE" envDefault:"2"` // tokens per second
}

// Validate reports whether the configuration can build a bucket.
func (c Config) Validate() error {
	if !(c.Capacity > 0) || math.IsInf(c.Capacity, 0) {
		return fmt.Errorf("%w: capacity must be a positive finite number, got %v", ErrInvalidConfig, c.Capacity)
	}
	if !(c.RefillRate > 0) || math.IsInf(c.RefillRate, 0) {
		return fmt.Errorf("%w: refill rate must be a positive finite number, got %v", ErrInvalidConfig, c.RefillRate)
	}
	return nil
}

// Bucket is a continuously refilling token bucket guarding outbound calls.
//
// Acquire never rejects for lack of tokens: a caller that finds the bucket
// short waits for cost/rate and is then granted. The mutex covers only the
// refill-and-decide step and the commit after a wait, never the wait itself.
type Bucket struct {
	mu         sync.Mutex
	capacity   float64
	rate       float64
	tokens     float64
	lastRefill time.Time

	clock  clockwork.Clock
	logger *slog.Logger

	granted   atomic.Int64
	waited    atomic.Int64
	cancelled atomic.Int64
	waitNanos atomic.Int64
}

// Stats provides observability counters for a bucket.
type Stats struct {
	Granted   int64         // Acquire calls served from available tokens
	Waited    int64         // Acquire calls that blocked before being granted
	Cancelled int64         // Acquire calls abandoned through their context
	TotalWait time.Duration // Sum of completed waits
}

// Option configures a Bucket.
type Option func(*Bucket)

// WithClock replaces the wall clock. Tests pass a clockwork fake clock.
func WithClock(clock clockwork.Clock) Option {
	return func(b *Bucket) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// WithLogger sets the logger for wait diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bucket) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBucket creates a full bucket holding up to capacity tokens and refilling
// at rate tokens per second.
func NewBucket(capacity, rate float64, opts ...Option) (*Bucket, error) {
	return NewBucketFromConfig(Config{Capacity: capacity, RefillRate: rate}, opts...)
}

// NewBucketFromConfig creates a full bucket from cfg.
func NewBucketFromConfig(cfg Config, opts ...Option) (*Bucket, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Bucket{
		capacity: cfg.Capacity,
		rate:     cfg.RefillRate,
		tokens:   cfg.Capacity,
		clock:    clockwork.NewRealClock(),
		logger:   logger.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.lastRefill = b.clock.Now()

	return b, nil
}

// Wait acquires a single token.
func (b *Bucket) Wait(ctx context.Context) error {
	return b.Acquire(ctx, 1)
}

// Acquire takes cost tokens, blocking for cost/rate when the bucket is short.
// The only failures are an invalid cost and a context that ends before the
// grant; in both cases no tokens are consumed.
func (b *Bucket) Acquire(ctx context.Context, cost float64) error {
	if !(cost > 0) || math.IsInf(cost, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTokenCount, cost)
	}
	if err := ctx.Err(); err != nil {
		b.cancelled.Add(1)
		return fmt.Errorf("%w: %w", ErrContextCancelled, err)
	}

	b.mu.Lock()
	b.refillLocked()
	if b.tokens >= cost {
		b.tokens -= cost
		b.mu.Unlock()
		b.granted.Add(1)
		return nil
	}
	level := b.tokens
	b.mu.Unlock()

	// Time to accrue cost tokens from empty. Concurrent refill during the
	// wait is not credited.
	wait := time.Duration(cost / b.rate * float64(time.Second))

	b.logger.DebugContext(ctx, "rate limiter waiting for tokens",
		logger.Component("ratelimiter"),
		slog.Float64("cost", cost),
		slog.Float64("level", level),
		logger.Wait(wait),
	)

	timer := b.clock.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		b.cancelled.Add(1)
		return fmt.Errorf("%w: %w", ErrContextCancelled, ctx.Err())
	case <-timer.Chan():
	}

	b.mu.Lock()
	b.refillLocked()
	b.tokens = max(0, b.tokens-cost)
	b.mu.Unlock()

	b.waited.Add(1)
	b.waitNanos.Add(int64(wait))
	return nil
}

// Tokens returns the current level after refill.
func (b *Bucket) Tokens() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refillLocked()
	return b.tokens
}

// Capacity returns the maximum number of tokens.
func (b *Bucket) Capacity() float64 {
	return b.capacity
}

// Rate returns the refill rate in tokens per second.
func (b *Bucket) Rate() float64 {
	return b.rate
}

// Stats returns a snapshot of the bucket counters. Safe to call at any time.
func (b *Bucket) Stats() Stats {
	return Stats{
		Granted:   b.granted.Load(),
		Waited:    b.waited.Load(),
		Cancelled: b.cancelled.Load(),
		TotalWait: time.Duration(b.waitNanos.Load()),
	}
}

// refillLocked adds elapsed*rate tokens, capped at capacity.
// Must be called with mu held.
func (b *Bucket) refillLocked() {
	now := b.clock.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	b.tokens = min(b.capacity, b.tokens+elapsed*b.rate)
	b.lastRefill = now
}
