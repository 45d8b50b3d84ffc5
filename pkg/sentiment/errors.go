package sentiment

import "errors"

var (
	// ErrNilModel is returned by New when no model is provided.
	ErrNilModel = errors.New("sentiment: model is required")

	// ErrNilLimiter is returned by New when no limiter is provided.
	ErrNilLimiter = errors.New("sentiment: limiter is required")

	// ErrNilGrammar is returned by New when WithGrammar receives nil.
	ErrNilGrammar = errors.New("sentiment: grammar is required")
)
