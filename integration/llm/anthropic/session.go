package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dmitrymomot/sentiment/core/logger"
	"github.com/dmitrymomot/sentiment/pkg/sentiment"
)

// DefaultModel is the Claude model used when WithModel is not given.
const DefaultModel = "claude-haiku-4-5"

const defaultMaxTokens int64 = 1024

// Session sends sentiment prompts to the Anthropic messages API. The seed
// exchange is replayed as a user turn and an assistant turn ahead of every
// prompt. Session is safe for concurrent use.
type Session struct {
	client      sdk.Client
	model       sdk.Model
	seed        []sdk.MessageParam
	logger      *slog.Logger
	instruction string
	temperature *float64
	maxTokens   int64
	reqOpts     []option.RequestOption
}

var _ sentiment.Model = (*Session)(nil)

// Option configures a Session.
type Option func(*Session)

// WithModel sets the model.
func WithModel(model string) Option {
	return func(s *Session) {
		if model != "" {
			s.model = sdk.Model(model)
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(s *Session) {
		s.temperature = &t
	}
}

// WithMaxOutputTokens sets max_tokens. Default 1024.
func WithMaxOutputTokens(n int64) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxTokens = n
		}
	}
}

// WithBaseURL points the client at a different endpoint.
func WithBaseURL(url string) Option {
	return func(s *Session) {
		if url != "" {
			s.reqOpts = append(s.reqOpts, option.WithBaseURL(url))
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Session) {
		if c != nil {
			s.reqOpts = append(s.reqOpts, option.WithHTTPClient(c))
		}
	}
}

// WithMaxRetries sets how many times the SDK retries failed requests.
func WithMaxRetries(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.reqOpts = append(s.reqOpts, option.WithMaxRetries(n))
		}
	}
}

// WithInstruction replaces the seeded instruction.
func WithInstruction(instruction string) Option {
	return func(s *Session) {
		if instruction != "" {
			s.instruction = instruction
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates an Anthropic session.
func NewSession(apiKey string, opts ...Option) (*Session, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	s := &Session{
		model:       sdk.Model(DefaultModel),
		logger:      logger.NewNop(),
		instruction: sentiment.SystemInstruction,
		maxTokens:   defaultMaxTokens,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = sdk.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, s.reqOpts...)...)

	for _, turn := range sentiment.SeedWith(s.instruction) {
		block := sdk.NewTextBlock(turn.Text)
		if turn.Role == sentiment.RoleModel {
			s.seed = append(s.seed, sdk.NewAssistantMessage(block))
		} else {
			s.seed = append(s.seed, sdk.NewUserMessage(block))
		}
	}

	return s, nil
}

// Model returns the model name.
func (s *Session) Model() string {
	return string(s.model)
}

// Send implements sentiment.Model.
func (s *Session) Send(ctx context.Context, prompt string) (string, error) {
	messages := make([]sdk.MessageParam, 0, len(s.seed)+1)
	messages = append(messages, s.seed...)
	messages = append(messages, sdk.NewUserMessage(sdk.NewTextBlock(prompt)))

	params := sdk.MessageNewParams{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages:  messages,
	}
	if s.temperature != nil {
		params.Temperature = sdk.Float(*s.temperature)
	}

	resp, err := s.client.Messages.New(ctx, params)
	if err != nil {
		s.logger.ErrorContext(ctx, "anthropic request failed",
			logger.Component("anthropic"),
			logger.Provider("anthropic"),
			logger.Model(string(s.model)),
			logger.AnalysisID(sentiment.AnalysisIDFromContext(ctx)),
			logger.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrMessageFailed, err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrEmptyReply
	}

	s.logger.DebugContext(ctx, "anthropic reply received",
		logger.Provider("anthropic"),
		logger.Model(string(s.model)),
		logger.AnalysisID(sentiment.AnalysisIDFromContext(ctx)),
		logger.Reply(text, 200),
	)

	return text, nil
}
