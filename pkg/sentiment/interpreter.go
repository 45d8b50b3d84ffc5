package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sentiment/core/cache"
	"github.com/dmitrymomot/sentiment/core/logger"
)

// Model is the conversational model collaborator. Implementations are
// constructed once, seeded with the instruction history, and shared by all
// calls. Send must be safe for concurrent use.
type Model interface {
	Send(ctx context.Context, prompt string) (string, error)
}

// ModelFunc adapts a function to Model.
type ModelFunc func(ctx context.Context, prompt string) (string, error)

// Send implements Model.
func (f ModelFunc) Send(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Limiter throttles outbound model calls. *ratelimiter.Bucket satisfies it.
// Acquire blocks until the call may proceed and fails only when ctx ends.
type Limiter interface {
	Acquire(ctx context.Context, cost float64) error
}

// Interpreter turns text into a structured verdict: it waits on the limiter,
// asks the model and parses the reply. It is safe for concurrent use.
type Interpreter struct {
	model       Model
	limiter     Limiter
	grammar     Grammar
	logger      *slog.Logger
	metrics     *Metrics
	cache       *cache.LRUCache[Request, Result]
	cost        float64
	concurrency int
	newID       func() string
}

// Option configures an Interpreter.
type Option func(*Interpreter) error

// WithGrammar replaces the default LabeledGrammar.
func WithGrammar(g Grammar) Option {
	return func(i *Interpreter) error {
		if g == nil {
			return ErrNilGrammar
		}
		i.grammar = g
		return nil
	}
}

// WithLogger sets the logger. Warnings are emitted for malformed replies,
// score fallbacks and transport failures.
func WithLogger(l *slog.Logger) Option {
	return func(i *Interpreter) error {
		if l != nil {
			i.logger = l
		}
		return nil
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(i *Interpreter) error {
		i.metrics = m
		return nil
	}
}

// WithCache memoizes successful verdicts for up to size distinct requests.
// Cache hits skip both the limiter and the model. Size 0 disables caching.
func WithCache(size int) Option {
	return func(i *Interpreter) error {
		if size < 0 {
			return fmt.Errorf("sentiment: cache size must be >= 0, got %d", size)
		}
		if size == 0 {
			i.cache = nil
			return nil
		}
		i.cache = cache.NewLRUCache[Request, Result](size)
		return nil
	}
}

// WithCost sets the tokens taken from the limiter per model call. Default 1.
func WithCost(cost float64) Option {
	return func(i *Interpreter) error {
		if !(cost > 0) {
			return fmt.Errorf("sentiment: cost must be > 0, got %v", cost)
		}
		i.cost = cost
		return nil
	}
}

// WithConcurrency sets how many batch items are analyzed at once.
// Default 1 (sequential).
func WithConcurrency(n int) Option {
	return func(i *Interpreter) error {
		if n < 1 {
			return fmt.Errorf("sentiment: concurrency must be >= 1, got %d", n)
		}
		i.concurrency = n
		return nil
	}
}

// WithIDGenerator replaces the uuid-based analysis id generator.
func WithIDGenerator(fn func() string) Option {
	return func(i *Interpreter) error {
		if fn != nil {
			i.newID = fn
		}
		return nil
	}
}

// New creates an Interpreter over model, throttled by limiter.
func New(model Model, limiter Limiter, opts ...Option) (*Interpreter, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if limiter == nil {
		return nil, ErrNilLimiter
	}

	i := &Interpreter{
		model:       model,
		limiter:     limiter,
		grammar:     LabeledGrammar{},
		logger:      logger.NewNop(),
		cost:        1,
		concurrency: 1,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}

	return i, nil
}

// AnalyzeText is the plain caller surface: it returns category, reason and
// score and never fails. Failures are reported as category "Error".
func (i *Interpreter) AnalyzeText(ctx context.Context, text, contextNote string, sarcasm bool) (string, string, float64) {
	res := i.Analyze(ctx, Request{Text: text, Context: contextNote, Sarcasm: sarcasm})
	return res.Category, res.Reason, res.Score
}

// Analyze runs one analysis. It always returns a well-formed Result.
func (i *Interpreter) Analyze(ctx context.Context, req Request) Result {
	res, _ := i.analyze(ctx, req)
	return res
}

func (i *Interpreter) analyze(ctx context.Context, req Request) (res Result, outcome Outcome) {
	id := i.newID()
	ctx = WithAnalysisID(ctx, id)
	log := i.logger.With(logger.Component("interpreter"), logger.AnalysisID(id))
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "analysis panicked", slog.Any("panic", r))
			res, outcome = errorResult(fmt.Sprintf("An error occurred during analysis: %v", r)), OutcomeTransportFailure
		}
		i.metrics.observeOutcome(outcome)
		log.DebugContext(ctx, "analysis finished",
			logger.Outcome(string(outcome)),
			logger.Category(res.Category),
			logger.Score(res.Score),
			logger.Elapsed(start),
		)
	}()

	if i.cache != nil {
		if cached, ok := i.cache.Get(req); ok {
			return cached, OutcomeCacheHit
		}
	}

	waitStart := time.Now()
	if err := i.limiter.Acquire(ctx, i.cost); err != nil {
		log.WarnContext(ctx, "rate limiter wait aborted", logger.Error(err))
		return errorResult(fmt.Sprintf("An error occurred during analysis: %v", err)), OutcomeCancelled
	}
	i.metrics.observeLimiterWait(time.Since(waitStart))

	callStart := time.Now()
	reply, err := i.model.Send(ctx, BuildPrompt(req))
	i.metrics.observeModelCall(time.Since(callStart))
	if err != nil {
		log.ErrorContext(ctx, "model call failed", logger.Error(err), logger.Outcome(string(OutcomeTransportFailure)))
		return errorResult(fmt.Sprintf("An error occurred during analysis: %v", err)), OutcomeTransportFailure
	}

	parsed := Parse(i.grammar, reply)
	switch parsed.Outcome {
	case OutcomeMalformedReply:
		log.WarnContext(ctx, "unexpected response format",
			logger.Outcome(string(parsed.Outcome)),
			logger.Reply(reply, 500),
		)
	case OutcomeScoreUnparseable:
		log.WarnContext(ctx, "could not parse sentiment score, using 0.0",
			logger.Outcome(string(parsed.Outcome)),
			logger.RawScore(parsed.Fields.Score),
		)
	case OutcomeScoreOutOfRange:
		log.WarnContext(ctx, "sentiment score out of range (-1.0 to 1.0), using 0.0",
			logger.Outcome(string(parsed.Outcome)),
			logger.RawScore(parsed.Fields.Score),
		)
	}

	if i.cache != nil && !parsed.Result.Failed() {
		i.cache.Put(req, parsed.Result)
	}

	return parsed.Result, parsed.Outcome
}
