// Package ratelimiter provides a blocking token bucket for throttling outbound calls.
//
// A Bucket holds up to Capacity tokens and refills continuously at RefillRate
// tokens per second. It starts full, so a burst of Capacity calls goes through
// immediately.
//
// # Contract
//
// Acquire never rejects for lack of tokens. When the bucket is short, the
// caller waits cost/rate seconds (the time to accrue cost tokens from empty,
// without crediting refill that happens during the wait), then the cost is
// committed and the call is granted. Callers get no bound on wait time under
// sustained overload; they get a long-run admitted rate that converges to the
// refill rate.
//
// The only errors are construction errors (ErrInvalidConfig), a non-positive
// cost (ErrInvalidTokenCount) and a context that ends before the grant
// (ErrContextCancelled, which also wraps the context error). A cancelled
// caller consumes nothing.
//
// # Concurrency
//
// Bucket state is guarded by a single mutex held only for the refill-and-decide
// step and the short commit after a wait. The wait itself happens outside the
// lock, so one blocked caller never stalls accounting for the others.
//
// # Usage
//
//	bucket, err := ratelimiter.NewBucket(10, 2) // burst 10, 2 calls/second
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := bucket.Wait(ctx); err != nil {
//		return err // only when ctx ends first
//	}
//	callModel(ctx)
//
// Loading parameters from the environment:
//
//	var cfg ratelimiter.Config // RATE_LIMIT_CAPACITY, RATE_LIMIT_REFILL_RATE
//	config.MustLoad(&cfg)
//	bucket, err := ratelimiter.NewBucketFromConfig(cfg, ratelimiter.WithLogger(log))
//
// # Testing
//
// WithClock accepts any clockwork.Clock. With a fake clock, waits are driven
// by Advance:
//
//	clock := clockwork.NewFakeClock()
//	bucket, _ := ratelimiter.NewBucket(1, 1, ratelimiter.WithClock(clock))
//	_ = bucket.Wait(ctx) // drains the bucket
//	go bucket.Wait(ctx)  // parks on a 1s timer
//	clock.BlockUntilContext(ctx, 1)
//	clock.Advance(time.Second)
//
// # Observability
//
// Stats reports how many calls were granted immediately, how many waited,
// how many were cancelled and the total completed wait time.
package ratelimiter
