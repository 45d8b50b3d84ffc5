package ratelimiter

import "errors"

var (
	// ErrInvalidConfig is returned for a capacity or refill rate that is not a
	// positive finite number.
	ErrInvalidConfig = errors.New("ratelimiter: invalid configuration")

	// ErrInvalidTokenCount is returned by Acquire for a cost that is not a
	// positive finite number.
	ErrInvalidTokenCount = errors.New("ratelimiter: invalid token cost")

	// ErrContextCancelled wraps the context error when a wait ends early.
	ErrContextCancelled = errors.New("ratelimiter: wait cancelled")
)
