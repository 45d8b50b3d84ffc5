package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/dmitrymomot/sentiment/core/logger"
	"github.com/dmitrymomot/sentiment/pkg/sentiment"
)

// DefaultModel is the chat model used when WithModel is not given.
const DefaultModel = oai.ChatModelGPT4oMini

// Session runs sentiment prompts through OpenAI chat completions. The
// instruction goes in as the system message, followed by the seeded
// acknowledgement exchange and the prompt. Session is safe for concurrent use.
type Session struct {
	client      oai.Client
	model       oai.ChatModel
	seed        []oai.ChatCompletionMessageParamUnion
	logger      *slog.Logger
	instruction string
	temperature *float64
	maxTokens   int64
	reqOpts     []option.RequestOption
}

var _ sentiment.Model = (*Session)(nil)

// Option configures a Session.
type Option func(*Session)

// WithModel sets the chat model.
func WithModel(model string) Option {
	return func(s *Session) {
		if model != "" {
			s.model = oai.ChatModel(model)
		}
	}
}

// WithTemperature sets the sampling temperature. The API default is used otherwise.
func WithTemperature(t float64) Option {
	return func(s *Session) {
		s.temperature = &t
	}
}

// WithMaxOutputTokens caps the completion length.
func WithMaxOutputTokens(n int64) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxTokens = n
		}
	}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint.
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

// WithInstruction replaces the system instruction.
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

// NewSession creates an OpenAI chat session.
func NewSession(apiKey string, opts ...Option) (*Session, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	s := &Session{
		model:       DefaultModel,
		logger:      logger.NewNop(),
		instruction: sentiment.SystemInstruction,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = oai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, s.reqOpts...)...)

	for _, turn := range sentiment.SeedWith(s.instruction) {
		switch turn.Role {
		case sentiment.RoleUser:
			s.seed = append(s.seed, oai.SystemMessage(turn.Text))
		case sentiment.RoleModel:
			s.seed = append(s.seed, oai.AssistantMessage(turn.Text))
		}
	}

	return s, nil
}

// Model returns the chat model name.
func (s *Session) Model() string {
	return string(s.model)
}

// Send implements sentiment.Model.
func (s *Session) Send(ctx context.Context, prompt string) (string, error) {
	messages := make([]oai.ChatCompletionMessageParamUnion, 0, len(s.seed)+1)
	messages = append(messages, s.seed...)
	messages = append(messages, oai.UserMessage(prompt))

	params := oai.ChatCompletionNewParams{
		Model:    s.model,
		Messages: messages,
	}
	if s.temperature != nil {
		params.Temperature = oai.Float(*s.temperature)
	}
	if s.maxTokens > 0 {
		params.MaxCompletionTokens = oai.Int(s.maxTokens)
	}

	resp, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		s.logger.ErrorContext(ctx, "openai request failed",
			logger.Component("openai"),
			logger.Provider("openai"),
			logger.Model(string(s.model)),
			logger.AnalysisID(sentiment.AnalysisIDFromContext(ctx)),
			logger.Error(err),
		)
		return "", fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyReply
	}

	s.logger.DebugContext(ctx, "openai reply received",
		logger.Provider("openai"),
		logger.Model(string(s.model)),
		logger.AnalysisID(sentiment.AnalysisIDFromContext(ctx)),
		logger.Reply(text, 200),
	)

	return text, nil
}
