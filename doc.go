// Package sentimentkit is the index of a small toolkit that classifies free
// text as Positive, Negative or Neutral with a hosted large language model.
// Outbound model calls are throttled by a token bucket and the model's
// free-form reply is parsed into a structured verdict of category, reason
// and score.
//
// # Getting Documentation
//
//	go doc github.com/dmitrymomot/sentiment/pkg/sentiment
//	go doc -all github.com/dmitrymomot/sentiment/pkg/ratelimiter
//
// # Domain Packages
//
//	github.com/dmitrymomot/sentiment/pkg/sentiment    - Interpreter, prompts, reply grammars, batches, metrics
//	github.com/dmitrymomot/sentiment/pkg/ratelimiter  - Blocking token bucket for outbound calls
//
// # Core Packages
//
//	github.com/dmitrymomot/sentiment/core/cache   - Thread-safe generic LRU cache
//	github.com/dmitrymomot/sentiment/core/config  - Type-safe environment variable loading
//	github.com/dmitrymomot/sentiment/core/logger  - Structured logging built on slog
//
// # Model Integrations
//
//	github.com/dmitrymomot/sentiment/integration/llm/gemini     - Google Gemini via google.golang.org/genai
//	github.com/dmitrymomot/sentiment/integration/llm/openai     - OpenAI chat completions via openai-go
//	github.com/dmitrymomot/sentiment/integration/llm/anthropic  - Anthropic messages via anthropic-sdk-go
//
// # Command
//
//	github.com/dmitrymomot/sentiment/cmd/sentiment  - CLI for single and bulk analysis
//
// # Wiring
//
//	bucket, err := ratelimiter.NewBucket(10, 2)
//	if err != nil {
//		return err
//	}
//	session, err := gemini.NewSession(ctx, apiKey)
//	if err != nil {
//		return err
//	}
//	interp, err := sentiment.New(session, bucket, sentiment.WithCache(256))
//	if err != nil {
//		return err
//	}
//
//	category, reason, score := interp.AnalyzeText(ctx, text, "", false)
package sentimentkit
